package usecase

import (
	"context"
	"testing"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/dto/request"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range f.users {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func testAuthConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func newTestAuthService(users *fakeUserRepo) AuthService {
	return NewAuthService(users, testAuthConfig(), zap.NewNop())
}

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	})

	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", resp.Email)
	// role tidak pernah dari input — selalu MEMBER
	assert.Equal(t, string(entity.RoleMember), resp.Role)

	// password tersimpan sebagai hash, bukan plaintext
	for _, user := range users.users {
		assert.NotEqual(t, "rahasia123", user.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("rahasia123", user.PasswordHash))
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	req := &request.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_Invalid(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	tests := []struct {
		name string
		req  *request.RegisterRequest
	}{
		{"missing email", &request.RegisterRequest{Name: "Budi", Password: "rahasia123"}},
		{"bad email", &request.RegisterRequest{Name: "Budi", Email: "nope", Password: "rahasia123"}},
		{"short password", &request.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	auth, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "budi@example.com",
		Password: "rahasia123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "budi@example.com", auth.User.Email)

	// token bisa divalidasi balik dengan secret yang sama
	claims, err := utils.ValidateToken(auth.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, auth.User.ID, claims.UserID)
	assert.Equal(t, string(entity.RoleMember), claims.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "budi@example.com",
			Password: "salah",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		// jawaban sama dengan password salah
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "siapa@example.com",
			Password: "rahasia123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	newName := "Budi Santoso"
	newPassword := "rahasiabaru"
	updated, err := svc.UpdateProfile(context.Background(), resp.ID, &request.UpdateProfileRequest{
		Name:     &newName,
		Password: &newPassword,
	})

	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name)

	// login pakai password baru
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "budi@example.com",
		Password: "rahasiabaru",
	})
	require.NoError(t, err)
}

func TestUpdateProfile_UserNotFound(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	newName := "Budi"
	_, err := svc.UpdateProfile(context.Background(), uuid.New().String(), &request.UpdateProfileRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
