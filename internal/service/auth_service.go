package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// AuthService handles registration, login and bearer-token authentication.
type AuthService struct {
	authRepo repository.Authorization
	tokens   *TokenManager
	hasher   passwordHasher

	// compared against on unknown emails so both login failures cost the same
	dummyHash string
}

func NewAuthService(repo repository.Authorization, tokens *TokenManager, bcryptCost int) *AuthService {
	h := newPasswordHasher(bcryptCost)
	dummy, err := h.hash("not-a-real-password")
	if err != nil {
		// only reachable with a broken bcrypt cost, which newPasswordHasher rules out
		panic(fmt.Sprintf("prepare dummy hash: %v", err))
	}
	return &AuthService{authRepo: repo, tokens: tokens, hasher: h, dummyHash: dummy}
}

// Register creates a user. The returned user never carries the hash to callers
// because models.User hides it from JSON.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.User{}, invalid("email must not be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = models.DefaultUserName
	}

	existing, err := s.authRepo.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrConflict
	}

	hash, err := s.hasher.hash(password)
	if err != nil {
		return models.User{}, err
	}

	u, err := s.authRepo.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return models.User{}, ErrConflict
		}
		return models.User{}, err
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.authRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", err
	}
	if u == nil {
		s.hasher.verify(s.dummyHash, password)
		return "", ErrInvalidCredentials
	}
	if !s.hasher.verify(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.ID)
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}
	id, err := s.tokens.Parse(token)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.authRepo.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, fmt.Errorf("%w: user %d no longer exists", ErrUnauthorized, id)
	}
	return *u, nil
}
