package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nattcha/hotel-booking-service/internal/middleware"
	"github.com/nattcha/hotel-booking-service/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*models.User{}}
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// --- Tests ---

var testSecret = []byte("test-secret")

func newTestAuthService(repo *mockUserRepo) AuthService {
	return NewAuthService(repo, testSecret, 30*24*time.Hour)
}

func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	user, token, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NotEmpty(t, token)

	// password is stored hashed, never in the clear
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	// the token round-trips to the user's id
	claims := &middleware.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return testSecret, nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123")
	assert.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Other User", "test@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123")
	assert.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "test@example.com", "password123")

	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123")
	assert.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "test@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
