package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scholarhub/internal/ctxdata"
	"scholarhub/internal/data"
	"scholarhub/internal/errdefs"
	"scholarhub/internal/model"
)

// MockSessionRepository is a testify mock for SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *model.Session) (*model.InsertResult, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InsertResult), args.Error(1)
}

func (m *MockSessionRepository) List(ctx context.Context) ([]*model.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Session), args.Error(1)
}

func (m *MockSessionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) ListByTutor(ctx context.Context, tutorEmail string, skip, limit int64) ([]*model.Session, error) {
	args := m.Called(ctx, tutorEmail, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Session), args.Error(1)
}

func (m *MockSessionRepository) UpdateStatus(ctx context.Context, id string, input *model.UpdateSessionStatusInput, mode data.UpdateMode) (*model.UpdateResult, error) {
	args := m.Called(ctx, id, input, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UpdateResult), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, id string, input *model.UpdateSessionInput, mode data.UpdateMode) (*model.UpdateResult, error) {
	args := m.Called(ctx, id, input, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UpdateResult), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteResult), args.Error(1)
}

func tutorCtx(email string) context.Context {
	return ctxdata.WithUserEmail(context.Background(), email)
}

func TestListByTutor_SkipOffset(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	svc := NewSessionService(mockRepo)

	mockRepo.On("ListByTutor", mock.Anything, "t@x.com", int64(10), int64(10)).
		Return([]*model.Session{}, nil)

	_, err := svc.ListByTutor(tutorCtx("t@x.com"), "t@x.com", 2, 10)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestListByTutor_FirstPage(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	svc := NewSessionService(mockRepo)

	mockRepo.On("ListByTutor", mock.Anything, "t@x.com", int64(0), int64(5)).
		Return([]*model.Session{}, nil)

	_, err := svc.ListByTutor(tutorCtx("t@x.com"), "t@x.com", 1, 5)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestListByTutor_InvalidPagination(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	svc := NewSessionService(mockRepo)

	_, err := svc.ListByTutor(tutorCtx("t@x.com"), "t@x.com", 0, 10)
	assert.True(t, errors.Is(err, errdefs.ErrValidation))

	_, err = svc.ListByTutor(tutorCtx("t@x.com"), "t@x.com", 1, 0)
	assert.True(t, errors.Is(err, errdefs.ErrValidation))

	mockRepo.AssertNotCalled(t, "ListByTutor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListByTutor_CrossIdentityForbidden(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	svc := NewSessionService(mockRepo)

	_, err := svc.ListByTutor(tutorCtx("a@x.com"), "b@x.com", 1, 10)

	assert.True(t, errors.Is(err, errdefs.ErrPermissionDenied))
	mockRepo.AssertNotCalled(t, "ListByTutor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSession_DefaultsToPending(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	svc := NewSessionService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
		return s.Status == model.SessionStatusPending
	})).Return(&model.InsertResult{InsertedId: "abc"}, nil)

	_, err := svc.Create(context.Background(), &model.Session{Title: "Algebra", TutorEmail: "t@x.com"})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateSession_MissingTitle(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	svc := NewSessionService(mockRepo)

	_, err := svc.Create(context.Background(), &model.Session{TutorEmail: "t@x.com"})

	assert.True(t, errors.Is(err, errdefs.ErrValidation))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateStatus_UsesUpsert(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	svc := NewSessionService(mockRepo)

	input := &model.UpdateSessionStatusInput{Status: model.SessionStatusApproved, RegistrationFee: 25}
	upserted := "abc123"
	mockRepo.On("UpdateStatus", mock.Anything, "abc123", input, data.Upsert).
		Return(&model.UpdateResult{MatchedCount: 0, UpsertedId: &upserted}, nil)

	result, err := svc.UpdateStatus(context.Background(), "abc123", input)

	require.NoError(t, err)
	require.NotNil(t, result.UpsertedId)
	assert.Equal(t, "abc123", *result.UpsertedId)
	mockRepo.AssertExpectations(t)
}
