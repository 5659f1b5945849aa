package service

import (
	"context"
	"errors"
	"fmt"

	"scholarhub/internal/data"
	"scholarhub/internal/errdefs"
	"scholarhub/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.InsertResult, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	SearchByName(ctx context.Context, search string) ([]*model.User, error)
	SetRole(ctx context.Context, id string, role model.Role, mode data.UpdateMode) (*model.UpdateResult, error)
}

type UserService struct {
	userRepository UserRepository
}

func NewUserService(userRepository UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// Register is idempotent: registering an already-known email writes nothing
// and reports the existing record through the result sentinel.
func (s *UserService) Register(ctx context.Context, input *model.RegisterUserInput) (*model.RegisterResult, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", errdefs.ErrValidation)
	}

	_, err := s.userRepository.GetByEmail(ctx, input.Email)
	if err == nil {
		return &model.RegisterResult{Message: "user already exists", InsertedId: nil}, nil
	}
	if !errors.Is(err, errdefs.ErrNotFound) {
		return nil, err
	}

	user := &model.User{
		Email: input.Email,
		Name:  input.Name,
		Photo: input.Photo,
		Role:  input.Role,
	}
	res, err := s.userRepository.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return &model.RegisterResult{InsertedId: &res.InsertedId}, nil
}

// ProbeRole reports whether the given user currently holds the given role.
// Callers may only probe their own email.
func (s *UserService) ProbeRole(ctx context.Context, email string, role model.Role) (bool, error) {
	if err := requireSelf(ctx, email); err != nil {
		return false, err
	}

	user, err := s.userRepository.GetByEmail(ctx, email)
	if errors.Is(err, errdefs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == role, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

func (s *UserService) Search(ctx context.Context, search string) ([]*model.User, error) {
	return s.userRepository.SearchByName(ctx, search)
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepository.List(ctx)
}

func (s *UserService) SetRole(ctx context.Context, id string, role model.Role) (*model.UpdateResult, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role %q", errdefs.ErrValidation, role)
	}
	return s.userRepository.SetRole(ctx, id, role, data.Upsert)
}
