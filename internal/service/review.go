package service

import (
	"context"

	"scholarhub/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.InsertResult, error)
	List(ctx context.Context) ([]*model.Review, error)
}

type ReviewService struct {
	reviewRepository ReviewRepository
}

func NewReviewService(reviewRepository ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepository: reviewRepository}
}

func (s *ReviewService) Create(ctx context.Context, review *model.Review) (*model.InsertResult, error) {
	return s.reviewRepository.Create(ctx, review)
}

func (s *ReviewService) List(ctx context.Context) ([]*model.Review, error) {
	return s.reviewRepository.List(ctx)
}
