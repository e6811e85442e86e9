package auth

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/entity"
	repo "github.com/foliohq/folio/internal/repository/user"
	"github.com/foliohq/folio/pkg/errorbank"
)

type stubRepo struct {
	users     map[string]*entity.User
	created   []*entity.User
	createErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[string]*entity.User)}
}

func (s *stubRepo) Create(_ context.Context, user *entity.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = int64(len(s.created) + 1)
	s.created = append(s.created, user)
	s.users[user.Username] = user
	return nil
}

func (s *stubRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return user, nil
}

func newTestService(r *stubRepo) *Service {
	cfg := config.Auth{JWTSecret: "test-secret", TokenTTL: 24 * time.Hour}
	return newService(r, cfg, zap.NewNop())
}

func seedAdmin(t *testing.T, r *stubRepo, username, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{ID: 9, Username: username, PasswordHash: string(hash), Role: "admin"}
	r.users[username] = user
	return user
}

func TestLoginIssuesToken(t *testing.T) {
	r := newStubRepo()
	seedAdmin(t, r, "admin", "hunter2")
	svc := newTestService(r)

	result, err := svc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.User.Username)

	claims, err := svc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, strconv.FormatInt(result.User.ID, 10), claims.Subject)
}

func TestLoginTokenExpiresAfterTTL(t *testing.T) {
	r := newStubRepo()
	seedAdmin(t, r, "admin", "hunter2")
	svc := newTestService(r)

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	result, err := svc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	claims, err := svc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())

	// Past the TTL the same token no longer parses.
	svc.now = func() time.Time { return issued.Add(25 * time.Hour) }
	_, err = svc.ParseToken(result.Token)
	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindUnauthorized, appErr.Kind())
}

func TestLoginWrongPassword(t *testing.T) {
	r := newStubRepo()
	seedAdmin(t, r, "admin", "hunter2")
	svc := newTestService(r)

	result, err := svc.Login(context.Background(), "admin", "wrong")

	assert.Nil(t, result)
	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
	assert.Equal(t, "invalid credentials", appErr.Message())
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(newStubRepo())

	_, err := svc.Login(context.Background(), "ghost", "whatever")

	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindNotFound, appErr.Kind())
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := newTestService(newStubRepo())

	_, err := svc.Login(context.Background(), "", "")

	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
}

func TestRegisterAdminHashesPassword(t *testing.T) {
	r := newStubRepo()
	svc := newTestService(r)

	user, err := svc.RegisterAdmin(context.Background(), "admin", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	assert.NotEqual(t, "hunter2", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
}

func TestRegisterAdminRepositoryError(t *testing.T) {
	r := newStubRepo()
	r.createErr = errors.New("duplicate key")
	svc := newTestService(r)

	_, err := svc.RegisterAdmin(context.Background(), "admin", "hunter2")

	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
}

func TestParseTokenRejectsForgedToken(t *testing.T) {
	r := newStubRepo()
	seedAdmin(t, r, "admin", "hunter2")
	svc := newTestService(r)

	result, err := svc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	other := newService(r, config.Auth{JWTSecret: "different-secret", TokenTTL: 24 * time.Hour}, zap.NewNop())
	_, err = other.ParseToken(result.Token)

	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindUnauthorized, appErr.Kind())
}
