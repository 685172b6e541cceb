package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/repository"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	JWTSecret         string
	AccessTokenExpiry time.Duration
	SessionTTL        time.Duration
	Issuer            string
	BcryptCost        int
	RolePolicy        *domain.RolePolicy
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates an account and establishes a session
	Register(ctx context.Context, req *dto.RegisterRequest, userAgent, ip string) (*dto.AuthResponse, error)
	// Login authenticates a user and establishes a session
	Login(ctx context.Context, req *dto.LoginRequest, userAgent, ip string) (*dto.AuthResponse, error)
	// Refresh exchanges a structurally valid (possibly expired) access token
	// for a fresh one, provided the user still has a live session
	Refresh(ctx context.Context, rawToken string) (*dto.AuthResponse, error)
	// Logout tears down every session for the token's user. It never fails:
	// an unreadable token simply means there is nothing to tear down.
	Logout(ctx context.Context, rawToken string)
	// ValidateToken verifies an access token and returns its claims
	ValidateToken(ctx context.Context, rawToken string) (*domain.Claims, error)
	// Profile returns the identity record for a user ID
	Profile(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	config   *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, config *AuthServiceConfig) AuthService {
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	if config.AccessTokenExpiry == 0 {
		config.AccessTokenExpiry = 15 * time.Minute
	}
	if config.SessionTTL == 0 {
		config.SessionTTL = 7 * 24 * time.Hour
	}
	return &authService{users: users, sessions: sessions, config: config}
}

// accessClaims is the JWT payload of an access token
type accessClaims struct {
	UserID int64       `json:"uid"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest, userAgent, ip string) (*dto.AuthResponse, error) {
	email := domain.NormalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        email,
		Role:         s.config.RolePolicy.Effective(email, domain.RoleEmployee),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return s.establishSession(ctx, user, userAgent, ip)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, userAgent, ip string) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.establishSession(ctx, user, userAgent, ip)
}

func (s *authService) Refresh(ctx context.Context, rawToken string) (*dto.AuthResponse, error) {
	// Refresh accepts an expired token; only the signature must hold.
	claims, err := s.parseToken(rawToken, true)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	live, err := s.sessions.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(live) == 0 {
		return nil, ErrSessionNotFound
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user, s.config.RolePolicy),
	}, nil
}

func (s *authService) Logout(ctx context.Context, rawToken string) {
	claims, err := s.parseToken(rawToken, true)
	if err != nil {
		return
	}
	_ = s.sessions.DeleteByUserID(ctx, claims.UserID)
}

func (s *authService) ValidateToken(ctx context.Context, rawToken string) (*domain.Claims, error) {
	claims, err := s.parseToken(rawToken, false)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &domain.Claims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

func (s *authService) Profile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	resp := dto.ToUserResponse(user, s.config.RolePolicy)
	return &resp, nil
}

func (s *authService) establishSession(ctx context.Context, user *domain.User, userAgent, ip string) (*dto.AuthResponse, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: now.Add(s.config.SessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user, s.config.RolePolicy),
	}, nil
}

func (s *authService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   s.config.RolePolicy.Effective(user.Email, user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenExpiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWTSecret))
}

// parseToken verifies the signature and, unless allowExpired is set, the
// registered claims.
func (s *authService) parseToken(rawToken string, allowExpired bool) (*accessClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if allowExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
