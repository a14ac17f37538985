package services

import (
	"context"
	"testing"
	"time"

	"github.com/playforge/rewards-backend/internal/models"
	"github.com/playforge/rewards-backend/internal/repositories"
	"github.com/playforge/rewards-backend/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeAccountRepo struct {
	byEmail map[string]*models.Account
}

var _ repositories.AccountRepository = (*fakeAccountRepo)(nil)

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*models.Account)}
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	account, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return account, nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	tokenSvc := tokens.NewService("test-secret", time.Hour)
	svc := NewAuthService(repo, tokenSvc)

	account, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "player@example.com",
		Password: "hunter2hunter2",
		PlayerID: "player-7",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", account.PasswordHash)

	token, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "player@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	subject, err := tokenSvc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "player-7", subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, tokens.NewService("test-secret", time.Hour))

	req := &models.RegisterRequest{Email: "player@example.com", Password: "hunter2hunter2", PlayerID: "p1"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, tokens.NewService("test-secret", time.Hour))

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email: "player@example.com", Password: "hunter2hunter2", PlayerID: "p1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email: "player@example.com", Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, tokens.NewService("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
