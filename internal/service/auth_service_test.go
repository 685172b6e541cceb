package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/repository"
)

func newTestAuthService(accessTTL time.Duration) (AuthService, repository.UserRepository, repository.SessionRepository) {
	userRepo := repository.NewMemoryUserRepository()
	sessionRepo := repository.NewMemorySessionRepository()
	svc := NewAuthService(userRepo, sessionRepo, &AuthServiceConfig{
		JWTSecret:         "test-secret-key",
		AccessTokenExpiry: accessTTL,
		SessionTTL:        7 * 24 * time.Hour,
		Issuer:            "hrmis-test",
		BcryptCost:        4, // Lower cost for faster tests
		RolePolicy:        domain.NewRolePolicy([]string{"memona@hrmis.com"}),
	})
	return svc, userRepo, sessionRepo
}

func TestAuthService_Register(t *testing.T) {
	svc, _, _ := newTestAuthService(15 * time.Minute)

	t.Run("successful registration", func(t *testing.T) {
		req := &dto.RegisterRequest{
			Name:     "Test User",
			Email:    "Test@Example.com",
			Password: "Password1!",
		}

		resp, err := svc.Register(context.Background(), req, "go-test", "127.0.0.1")
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		if resp.AccessToken == "" {
			t.Error("Register() AccessToken is empty")
		}
		if resp.User.Email != "test@example.com" {
			t.Errorf("Register() User.Email = %v, want test@example.com", resp.User.Email)
		}
		if resp.User.Role != string(domain.RoleEmployee) {
			t.Errorf("Register() User.Role = %v, want %v", resp.User.Role, domain.RoleEmployee)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := &dto.RegisterRequest{
			Name:     "Another User",
			Email:    "test@example.com",
			Password: "Password2!",
		}

		_, err := svc.Register(context.Background(), req, "go-test", "127.0.0.1")
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Errorf("Register() error = %v, want %v", err, ErrUserAlreadyExists)
		}
	})

	t.Run("admin override email gets Admin role", func(t *testing.T) {
		req := &dto.RegisterRequest{
			Name:     "Memona",
			Email:    "memona@hrmis.com",
			Password: "password123",
		}

		resp, err := svc.Register(context.Background(), req, "go-test", "127.0.0.1")
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if resp.User.Role != string(domain.RoleAdmin) {
			t.Errorf("Register() User.Role = %v, want %v", resp.User.Role, domain.RoleAdmin)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newTestAuthService(15 * time.Minute)

	seed := &dto.RegisterRequest{Name: "Login Test", Email: "login@example.com", Password: "Password1!"}
	if _, err := svc.Register(context.Background(), seed, "go-test", "127.0.0.1"); err != nil {
		t.Fatalf("seed Register() error = %v", err)
	}

	t.Run("successful login", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "login@example.com",
			Password: "Password1!",
		}, "go-test", "127.0.0.1")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if resp.AccessToken == "" {
			t.Error("Login() AccessToken is empty")
		}

		claims, err := svc.ValidateToken(context.Background(), resp.AccessToken)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if claims.Email != "login@example.com" {
			t.Errorf("ValidateToken() Email = %v, want login@example.com", claims.Email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "login@example.com",
			Password: "wrong",
		}, "go-test", "127.0.0.1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want %v", err, ErrInvalidCredentials)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		}, "go-test", "127.0.0.1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want %v", err, ErrInvalidCredentials)
		}
	})
}

func TestAuthService_Refresh(t *testing.T) {
	// Tokens expire immediately so every refresh exercises the
	// expired-but-authentic path.
	svc, _, _ := newTestAuthService(-time.Minute)

	seed := &dto.RegisterRequest{Name: "Refresh Test", Email: "refresh@example.com", Password: "Password1!"}
	resp, err := svc.Register(context.Background(), seed, "go-test", "127.0.0.1")
	if err != nil {
		t.Fatalf("seed Register() error = %v", err)
	}

	t.Run("expired token still validates", func(t *testing.T) {
		if _, err := svc.ValidateToken(context.Background(), resp.AccessToken); err == nil {
			t.Fatal("ValidateToken() accepted an expired token")
		}
	})

	t.Run("expired token refreshes while session lives", func(t *testing.T) {
		fresh, err := svc.Refresh(context.Background(), resp.AccessToken)
		if err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
		if fresh.AccessToken == "" {
			t.Error("Refresh() AccessToken is empty")
		}
		if fresh.User.Email != "refresh@example.com" {
			t.Errorf("Refresh() User.Email = %v, want refresh@example.com", fresh.User.Email)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), "not-a-jwt")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Refresh() error = %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("refresh after logout", func(t *testing.T) {
		svc.Logout(context.Background(), resp.AccessToken)

		_, err := svc.Refresh(context.Background(), resp.AccessToken)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("Refresh() error = %v, want %v", err, ErrSessionNotFound)
		}
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessionRepo := newTestAuthService(15 * time.Minute)

	seed := &dto.RegisterRequest{Name: "Logout Test", Email: "logout@example.com", Password: "Password1!"}
	resp, err := svc.Register(context.Background(), seed, "go-test", "127.0.0.1")
	if err != nil {
		t.Fatalf("seed Register() error = %v", err)
	}

	svc.Logout(context.Background(), resp.AccessToken)

	live, err := sessionRepo.GetByUserID(context.Background(), resp.User.ID)
	if err != nil {
		t.Fatalf("GetByUserID() error = %v", err)
	}
	if len(live) != 0 {
		t.Errorf("sessions after logout = %d, want 0", len(live))
	}

	// Logging out with garbage must not panic or error.
	svc.Logout(context.Background(), "not-a-jwt")
}

func TestAuthService_Profile(t *testing.T) {
	svc, _, _ := newTestAuthService(15 * time.Minute)

	seed := &dto.RegisterRequest{Name: "Profile Test", Email: "profile@example.com", Password: "Password1!"}
	resp, err := svc.Register(context.Background(), seed, "go-test", "127.0.0.1")
	if err != nil {
		t.Fatalf("seed Register() error = %v", err)
	}

	out, err := svc.Profile(context.Background(), resp.User.ID)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if out.Email != "profile@example.com" {
		t.Errorf("Profile() Email = %v, want profile@example.com", out.Email)
	}

	if _, err := svc.Profile(context.Background(), 9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Profile() error = %v, want %v", err, ErrUserNotFound)
	}
}
