package services

import (
	"context"
	"errors"

	"github.com/playforge/rewards-backend/internal/models"
	"github.com/playforge/rewards-backend/internal/repositories"
	"github.com/playforge/rewards-backend/pkg/tokens"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned when registering with an email that already has an account.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the local token issuer operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error) // Returns a signed bearer token
}

type authService struct {
	accountRepo repositories.AccountRepository
	tokenSvc    *tokens.Service
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(accountRepo repositories.AccountRepository, tokenSvc *tokens.Service) AuthService {
	return &authService{
		accountRepo: accountRepo,
		tokenSvc:    tokenSvc,
	}
}

// Register creates an account whose player id becomes the subject of issued tokens
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error) {
	_, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:        req.Email,
		PasswordHash: string(hash),
		PlayerID:     req.PlayerID,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and issues a bearer token for the account's player id
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokenSvc.Issue(account.PlayerID)
}
