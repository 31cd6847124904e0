package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskvault/internal/core/domain"
	"taskvault/internal/core/ports"
	"taskvault/pkg/token"
)

const bcryptCost = 12

var (
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned when the password is shorter than 8 characters.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrPasswordTooLong guards bcrypt's 72-byte input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
)

type AuthService struct {
	userRepository ports.UserRepository
	tokens         *token.Manager
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		tokens:         tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidEmail
	}

	if len(password) < 8 {
		return domain.User{}, ErrWeakPassword
	}
	if len(password) > 72 {
		return domain.User{}, ErrPasswordTooLong
	}

	if _, err := s.userRepository.FindByEmail(ctx, email); err == nil {
		return domain.User{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	return s.userRepository.Insert(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{Token: signed, ExpiresIn: s.tokens.TTLSeconds()}, nil
}

// VerifyToken resolves a bearer token into the caller identity the task
// routes scope on. A signed token for an account that no longer exists is
// rejected the same as a forged one.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return "", err
	}

	if _, err := s.userRepository.FindByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	return claims.UserID, nil
}
