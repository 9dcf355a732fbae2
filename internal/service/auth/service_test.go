package auth

import (
	"context"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUserRepo struct {
	users  []user.User
	nextID int
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func newTestAuthService(repo *fakeUserRepo) *AuthServiceImpl {
	return &AuthServiceImpl{
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
		UserRepository: repo,
		Service:        jwt.NewJWTService(testSecret, "1h"),
	}
}

func registerRequest(email string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:       "John Doe",
		Email:      email,
		Password:   "employee123",
		Department: "Engineering",
	}
}

func TestRegisterAssignsSequentialEmployeeCodes(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	first, err := svc.Register(ctx, registerRequest("john@test.com"))
	require.NoError(t, err)
	require.NotNil(t, first.User.EmployeeCode)
	assert.Equal(t, "EMP001", *first.User.EmployeeCode)
	assert.Equal(t, "employee", first.User.Role)

	second, err := svc.Register(ctx, registerRequest("jane@test.com"))
	require.NoError(t, err)
	require.NotNil(t, second.User.EmployeeCode)
	assert.Equal(t, "EMP002", *second.User.EmployeeCode)
}

func TestRegisterManagerGetsNoEmployeeCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	req := registerRequest("manager@test.com")
	req.Role = "manager"

	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, resp.User.EmployeeCode)
	assert.Equal(t, "manager", resp.User.Role)
}

func TestRegisterManagerDoesNotAdvanceSequence(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	mgr := registerRequest("manager@test.com")
	mgr.Role = "manager"
	_, err := svc.Register(ctx, mgr)
	require.NoError(t, err)

	emp, err := svc.Register(ctx, registerRequest("john@test.com"))
	require.NoError(t, err)
	require.NotNil(t, emp.User.EmployeeCode)
	assert.Equal(t, "EMP001", *emp.User.EmployeeCode)
}

func TestRegisterReturnsToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	resp, err := svc.Register(ctx, registerRequest("john@test.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotZero(t, resp.AccessTokenExpiresAt)
}

func TestRegisterRejectsInvalidRequest(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	req := registerRequest("john@test.com")
	req.Password = "short"

	_, err := svc.Register(ctx, req)
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	_, err := svc.Register(ctx, registerRequest("john@test.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest("john@test.com"))
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	_, err := svc.Register(ctx, registerRequest("john@test.com"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "john@test.com", Password: "employee123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "john@test.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	_, err := svc.Register(ctx, registerRequest("john@test.com"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "john@test.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@test.com", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&fakeUserRepo{})

	registered, err := svc.Register(ctx, registerRequest("john@test.com"))
	require.NoError(t, err)

	profile, err := svc.Me(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "john@test.com", profile.Email)

	_, err = svc.Me(ctx, "missing-id")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
