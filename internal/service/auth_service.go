package service

import (
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/jwt"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrEmailExists        = errors.New("User already exists")
	ErrUserNotFound       = errors.New("User not found")
	ErrUserNotRegistered  = errors.New("User not registered")
	ErrInvalidCredentials = errors.New("User email or password is wrong")
)

type AuthService interface {
	Register(req *RegisterRequest) error
	Login(email, password string) (*LoginResult, error)
	CurrentUser(userID uuid.UUID) (*model.User, error)
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResult carries the signed session token plus the caller's role, both
// of which go back in the response body alongside the cookie.
type LoginResult struct {
	Token string
	Role  string
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *RegisterRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	// Reject before insert so a duplicate email maps to a clean conflict.
	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return ErrEmailExists
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return errors.New("failed to hash password")
	}

	return s.userRepo.Create(user)
}

func (s *authService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrUserNotRegistered
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Email, user.Role, user.CreatedAt)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResult{Token: token, Role: user.Role}, nil
}

func (s *authService) CurrentUser(userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
