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

// MockUserRepository is a testify mock for UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*model.InsertResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InsertResult), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) SearchByName(ctx context.Context, search string) ([]*model.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, id string, role model.Role, mode data.UpdateMode) (*model.UpdateResult, error) {
	args := m.Called(ctx, id, role, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UpdateResult), args.Error(1)
}

func TestRegister_NewUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "t@x.com").Return(nil, errdefs.ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "t@x.com" && u.Name == "Tutor"
	})).Return(&model.InsertResult{InsertedId: "abc123"}, nil)

	result, err := svc.Register(context.Background(), &model.RegisterUserInput{Email: "t@x.com", Name: "Tutor"})

	require.NoError(t, err)
	require.NotNil(t, result.InsertedId)
	assert.Equal(t, "abc123", *result.InsertedId)
	mockRepo.AssertExpectations(t)
}

func TestRegister_ExistingUserIsNoOp(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "t@x.com").Return(&model.User{Email: "t@x.com"}, nil)

	result, err := svc.Register(context.Background(), &model.RegisterUserInput{Email: "t@x.com"})

	require.NoError(t, err)
	assert.Nil(t, result.InsertedId)
	assert.Equal(t, "user already exists", result.Message)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_MissingEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	_, err := svc.Register(context.Background(), &model.RegisterUserInput{Name: "No Email"})

	assert.True(t, errors.Is(err, errdefs.ErrValidation))
	mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestProbeRole_CrossIdentityForbidden(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	ctx := ctxdata.WithUserEmail(context.Background(), "a@x.com")
	_, err := svc.ProbeRole(ctx, "b@x.com", model.RoleTutor)

	assert.True(t, errors.Is(err, errdefs.ErrPermissionDenied))
	mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestProbeRole_UnauthenticatedContext(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	_, err := svc.ProbeRole(context.Background(), "a@x.com", model.RoleTutor)

	assert.True(t, errors.Is(err, errdefs.ErrAuthentication))
}

func TestProbeRole_UnknownUserIsFalse(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	ctx := ctxdata.WithUserEmail(context.Background(), "t@x.com")
	mockRepo.On("GetByEmail", mock.Anything, "t@x.com").Return(nil, errdefs.ErrNotFound)

	holds, err := svc.ProbeRole(ctx, "t@x.com", model.RoleTutor)

	require.NoError(t, err)
	assert.False(t, holds)
}

func TestProbeRole_RoleMatch(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	ctx := ctxdata.WithUserEmail(context.Background(), "t@x.com")
	mockRepo.On("GetByEmail", mock.Anything, "t@x.com").Return(&model.User{Email: "t@x.com", Role: model.RoleTutor}, nil)

	holds, err := svc.ProbeRole(ctx, "t@x.com", model.RoleTutor)
	require.NoError(t, err)
	assert.True(t, holds)

	holds, err = svc.ProbeRole(ctx, "t@x.com", model.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, holds)
}

func TestSetRole_InvalidRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	_, err := svc.SetRole(context.Background(), "abc123", model.Role("Wizard"))

	assert.True(t, errors.Is(err, errdefs.ErrValidation))
	mockRepo.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetRole_Upserts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("SetRole", mock.Anything, "abc123", model.RoleTutor, data.Upsert).
		Return(&model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	result, err := svc.SetRole(context.Background(), "abc123", model.RoleTutor)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)
	mockRepo.AssertExpectations(t)
}
