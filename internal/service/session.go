package service

import (
	"context"
	"fmt"

	"scholarhub/internal/data"
	"scholarhub/internal/errdefs"
	"scholarhub/internal/model"
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) (*model.InsertResult, error)
	List(ctx context.Context) ([]*model.Session, error)
	Count(ctx context.Context) (int64, error)
	ListByTutor(ctx context.Context, tutorEmail string, skip, limit int64) ([]*model.Session, error)
	UpdateStatus(ctx context.Context, id string, input *model.UpdateSessionStatusInput, mode data.UpdateMode) (*model.UpdateResult, error)
	Update(ctx context.Context, id string, input *model.UpdateSessionInput, mode data.UpdateMode) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type SessionService struct {
	sessionRepository SessionRepository
}

func NewSessionService(sessionRepository SessionRepository) *SessionService {
	return &SessionService{sessionRepository: sessionRepository}
}

func (s *SessionService) Create(ctx context.Context, session *model.Session) (*model.InsertResult, error) {
	if session.Title == "" {
		return nil, fmt.Errorf("%w: session_title is required", errdefs.ErrValidation)
	}
	if session.Status == "" {
		session.Status = model.SessionStatusPending
	}
	return s.sessionRepository.Create(ctx, session)
}

func (s *SessionService) List(ctx context.Context) ([]*model.Session, error) {
	return s.sessionRepository.List(ctx)
}

func (s *SessionService) Count(ctx context.Context) (int64, error) {
	return s.sessionRepository.Count(ctx)
}

// ListByTutor returns one page of the tutor's own sessions. Pages are
// 1-indexed at the interface and converted to a skip offset here.
func (s *SessionService) ListByTutor(ctx context.Context, tutorEmail string, page, size int64) ([]*model.Session, error) {
	if err := requireSelf(ctx, tutorEmail); err != nil {
		return nil, err
	}
	if page < 1 || size < 1 {
		return nil, fmt.Errorf("%w: page and size must be positive", errdefs.ErrValidation)
	}
	return s.sessionRepository.ListByTutor(ctx, tutorEmail, (page-1)*size, size)
}

func (s *SessionService) UpdateStatus(ctx context.Context, id string, input *model.UpdateSessionStatusInput) (*model.UpdateResult, error) {
	return s.sessionRepository.UpdateStatus(ctx, id, input, data.Upsert)
}

func (s *SessionService) Update(ctx context.Context, id string, input *model.UpdateSessionInput) (*model.UpdateResult, error) {
	return s.sessionRepository.Update(ctx, id, input, data.Upsert)
}

func (s *SessionService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.sessionRepository.Delete(ctx, id)
}
