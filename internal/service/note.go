package service

import (
	"context"
	"fmt"

	"scholarhub/internal/ctxdata"
	"scholarhub/internal/data"
	"scholarhub/internal/errdefs"
	"scholarhub/internal/model"
)

type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) (*model.InsertResult, error)
	GetByID(ctx context.Context, id string) (*model.Note, error)
	ListByOwner(ctx context.Context, email string) ([]*model.Note, error)
	Update(ctx context.Context, id string, input *model.UpdateNoteInput, mode data.UpdateMode) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type NoteService struct {
	noteRepository NoteRepository
}

func NewNoteService(noteRepository NoteRepository) *NoteService {
	return &NoteService{noteRepository: noteRepository}
}

func (s *NoteService) Create(ctx context.Context, note *model.Note) (*model.InsertResult, error) {
	if note.Email == "" {
		if email, ok := ctxdata.GetUserEmail(ctx); ok {
			note.Email = email
		}
	}
	if note.Email == "" {
		return nil, fmt.Errorf("%w: email is required", errdefs.ErrValidation)
	}
	return s.noteRepository.Create(ctx, note)
}

func (s *NoteService) GetByID(ctx context.Context, id string) (*model.Note, error) {
	return s.noteRepository.GetByID(ctx, id)
}

// ListByOwner is owner-scoped: the path email must match the caller.
func (s *NoteService) ListByOwner(ctx context.Context, email string) ([]*model.Note, error) {
	if err := requireSelf(ctx, email); err != nil {
		return nil, err
	}
	return s.noteRepository.ListByOwner(ctx, email)
}

func (s *NoteService) Update(ctx context.Context, id string, input *model.UpdateNoteInput) (*model.UpdateResult, error) {
	return s.noteRepository.Update(ctx, id, input, data.Upsert)
}

func (s *NoteService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.noteRepository.Delete(ctx, id)
}
