package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"taskmanager-be/internal/entities"
	"taskmanager-be/internal/models"
)

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	users     map[string]*entities.User
	lastLimit int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *entities.User) (string, error) {
	stored := *user
	f.users[user.Email] = &stored
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeUserRepo) List(_ context.Context, limit int64) ([]models.UserSummary, error) {
	f.lastLimit = limit
	summaries := make([]models.UserSummary, 0, len(f.users))
	for _, user := range f.users {
		if int64(len(summaries)) == limit {
			break
		}
		summaries = append(summaries, models.UserSummary{
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
			Age:   user.Age,
			Phone: user.Phone,
		})
	}
	return summaries, nil
}

func validUser() *entities.User {
	return &entities.User{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
		Role:     "developer",
		Age:      29,
		Phone:    "9876543210",
	}
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	details, err := svc.Signup(context.Background(), validUser())
	require.NoError(t, err)
	require.Equal(t, "asha@example.com", details.Email)
	require.Equal(t, "Asha Rao", details.Name)

	stored := repo.users["asha@example.com"]
	require.NotNil(t, stored)
	require.NotEqual(t, "s3cret-pass", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), validUser())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), validUser())
	require.ErrorIs(t, err, entities.ErrEmailExists)
	require.Len(t, repo.users, 1)
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), validUser())
	require.NoError(t, err)

	details, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.Equal(t, "asha@example.com", details.Email)
	require.Equal(t, "developer", details.Role)
	require.Equal(t, 29, details.Age)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), validUser())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-pass",
	})
	require.ErrorIs(t, err, entities.ErrInvalidPassword)
}
