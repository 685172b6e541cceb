package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/repository"
)

// defaultPassword is assigned to directory-created users when the admin
// leaves the field blank, so the account can still sign in and change it.
const defaultPassword = "pass"

// UserService defines the interface for user directory operations
type UserService interface {
	List(ctx context.Context, filter repository.UserFilter) ([]dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id int64) (*dto.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users      repository.UserRepository
	policy     *domain.RolePolicy
	bcryptCost int
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository, policy *domain.RolePolicy, bcryptCost int) UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{users: users, policy: policy, bcryptCost: bcryptCost}
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u, s.policy))
	}
	return out, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	password := req.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleEmployee
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        domain.NormalizeEmail(req.Email),
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	resp := dto.ToUserResponse(user, s.policy)
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	resp := dto.ToUserResponse(user, s.policy)
	return &resp, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	resp := dto.ToUserResponse(user, s.policy)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = domain.NormalizeEmail(*req.Email)
	}
	if req.Role != nil {
		user.Role = domain.Role(*req.Role)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.ToUserResponse(user, s.policy)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, id)
}
