package service

import (
	"context"
	"fmt"

	"scholarhub/internal/ctxdata"
	"scholarhub/internal/data"
	"scholarhub/internal/errdefs"
	"scholarhub/internal/model"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *model.Material) (*model.InsertResult, error)
	GetByID(ctx context.Context, id string) (*model.Material, error)
	List(ctx context.Context, skip, limit int64) ([]*model.Material, error)
	Count(ctx context.Context) (int64, error)
	ListByTutor(ctx context.Context, tutorEmail string) ([]*model.Material, error)
	Update(ctx context.Context, id string, input *model.UpdateMaterialInput, mode data.UpdateMode) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type MaterialService struct {
	materialRepository MaterialRepository
}

func NewMaterialService(materialRepository MaterialRepository) *MaterialService {
	return &MaterialService{materialRepository: materialRepository}
}

func (s *MaterialService) Create(ctx context.Context, material *model.Material) (*model.InsertResult, error) {
	if material.TutorEmail == "" {
		if email, ok := ctxdata.GetUserEmail(ctx); ok {
			material.TutorEmail = email
		}
	}
	if material.Title == "" {
		return nil, fmt.Errorf("%w: title is required", errdefs.ErrValidation)
	}
	return s.materialRepository.Create(ctx, material)
}

func (s *MaterialService) GetByID(ctx context.Context, id string) (*model.Material, error) {
	return s.materialRepository.GetByID(ctx, id)
}

// List returns one page of materials. Pages are 1-indexed at the interface
// and converted to a skip offset here.
func (s *MaterialService) List(ctx context.Context, page, size int64) ([]*model.Material, error) {
	if page < 1 || size < 1 {
		return nil, fmt.Errorf("%w: page and size must be positive", errdefs.ErrValidation)
	}
	return s.materialRepository.List(ctx, (page-1)*size, size)
}

func (s *MaterialService) Count(ctx context.Context) (int64, error) {
	return s.materialRepository.Count(ctx)
}

func (s *MaterialService) ListByTutor(ctx context.Context, tutorEmail string) ([]*model.Material, error) {
	return s.materialRepository.ListByTutor(ctx, tutorEmail)
}

func (s *MaterialService) Update(ctx context.Context, id string, input *model.UpdateMaterialInput) (*model.UpdateResult, error) {
	return s.materialRepository.Update(ctx, id, input, data.Upsert)
}

func (s *MaterialService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.materialRepository.Delete(ctx, id)
}
