package service

import (
	"context"
	"fmt"

	"scholarhub/internal/errdefs"
	"scholarhub/internal/model"
)

type BookedSessionRepository interface {
	Create(ctx context.Context, booking *model.BookedSession) (*model.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]*model.BookedSession, error)
}

type BookingService struct {
	bookingRepository BookedSessionRepository
}

func NewBookingService(bookingRepository BookedSessionRepository) *BookingService {
	return &BookingService{bookingRepository: bookingRepository}
}

func (s *BookingService) Create(ctx context.Context, booking *model.BookedSession) (*model.InsertResult, error) {
	if booking.Email == "" {
		return nil, fmt.Errorf("%w: email is required", errdefs.ErrValidation)
	}
	return s.bookingRepository.Create(ctx, booking)
}

func (s *BookingService) ListByEmail(ctx context.Context, email string) ([]*model.BookedSession, error) {
	return s.bookingRepository.ListByEmail(ctx, email)
}
