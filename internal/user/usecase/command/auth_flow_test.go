package command

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/book-inventory/internal/user/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	seq     int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*domain.User{}, byEmail: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byEmail[strings.ToLower(user.Email)]; ok {
		return domain.ErrEmailTaken
	}
	if user.ID == "" {
		f.seq++
		user.ID = fmt.Sprintf("user-%d", f.seq)
	}
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[strings.ToLower(user.Email)] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[strings.ToLower(user.Email)] = &copied
	return nil
}

var _ domain.UserRepository = (*fakeUserRepo)(nil)

type fakeRevoker struct {
	revoked map[string]time.Time
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: map[string]time.Time{}}
}

func (f *fakeRevoker) Revoke(_ context.Context, jti string, until time.Time) error {
	f.revoked[jti] = until
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := f.revoked[jti]
	return ok, nil
}

var _ domain.TokenRevoker = (*fakeRevoker)(nil)

func registerUser(t *testing.T, repo *fakeUserRepo, email, password string) *domain.User {
	t.Helper()
	user, err := NewRegisterUserHandler(repo).Handle(context.Background(), RegisterUserCommand{
		Email:    email,
		Password: password,
		FullName: "Test User",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterNormalizesEmailAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()

	user := registerUser(t, repo, "  Reader@Example.COM ", "correct horse")

	assert.Equal(t, "reader@example.com", user.Email)
	assert.Equal(t, []string{domain.RoleUser}, []string(user.Roles))
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	registerUser(t, repo, "reader@example.com", "correct horse")

	_, err := NewRegisterUserHandler(repo).Handle(context.Background(), RegisterUserCommand{
		Email:    "READER@example.com",
		Password: "different pass",
		FullName: "Impostor",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	_, err := NewRegisterUserHandler(newFakeUserRepo()).Handle(context.Background(), RegisterUserCommand{
		Email:    "not-an-email",
		Password: "short",
	})

	require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	details := apperrors.Get(err).Details
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
	assert.Contains(t, details, "full_name")
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	registerUser(t, repo, "reader@example.com", "correct horse")

	resp, err := NewLoginUserHandler(repo).Handle(context.Background(), LoginUserCommand{
		Email:    "reader@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "reader@example.com", resp.User.Email)
}

func TestLoginUniformErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	registerUser(t, repo, "reader@example.com", "correct horse")
	handler := NewLoginUserHandler(repo)

	_, unknownErr := handler.Handle(context.Background(), LoginUserCommand{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	_, wrongErr := handler.Handle(context.Background(), LoginUserCommand{
		Email:    "reader@example.com",
		Password: "wrong horse",
	})

	assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domain.ErrInvalidCredentials)
	// Same message either way, nothing to enumerate accounts with.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginDisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	user := registerUser(t, repo, "reader@example.com", "correct horse")

	user.IsActive = false
	require.NoError(t, repo.Update(context.Background(), user))

	_, err := NewLoginUserHandler(repo).Handle(context.Background(), LoginUserCommand{
		Email:    "reader@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestRefreshTokenSingleUse(t *testing.T) {
	repo := newFakeUserRepo()
	registerUser(t, repo, "reader@example.com", "correct horse")

	resp, err := NewLoginUserHandler(repo).Handle(context.Background(), LoginUserCommand{
		Email:    "reader@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	revoker := newFakeRevoker()
	refresh := NewRefreshTokenHandler(repo, revoker)

	pair, err := refresh.Handle(context.Background(), RefreshTokenCommand{RefreshToken: resp.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// The spent token is revoked; replaying it fails.
	_, err = refresh.Handle(context.Background(), RefreshTokenCommand{RefreshToken: resp.Tokens.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	registerUser(t, repo, "reader@example.com", "correct horse")

	resp, err := NewLoginUserHandler(repo).Handle(context.Background(), LoginUserCommand{
		Email:    "reader@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refresh := NewRefreshTokenHandler(repo, newFakeRevoker())
	_, err = refresh.Handle(context.Background(), RefreshTokenCommand{RefreshToken: resp.Tokens.AccessToken})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshPicksUpRoleChanges(t *testing.T) {
	repo := newFakeUserRepo()
	user := registerUser(t, repo, "reader@example.com", "correct horse")

	resp, err := NewLoginUserHandler(repo).Handle(context.Background(), LoginUserCommand{
		Email:    "reader@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	updated, err := NewSetRolesHandler(repo).Handle(context.Background(), SetRolesCommand{
		UserID: user.ID,
		Roles:  []string{domain.RoleUser, domain.RoleAdmin},
	})
	require.NoError(t, err)
	assert.Contains(t, []string(updated.Roles), domain.RoleAdmin)

	refresh := NewRefreshTokenHandler(repo, newFakeRevoker())
	pair, err := refresh.Handle(context.Background(), RefreshTokenCommand{RefreshToken: resp.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestSetRolesRejectsUnknownRole(t *testing.T) {
	repo := newFakeUserRepo()
	user := registerUser(t, repo, "reader@example.com", "correct horse")

	_, err := NewSetRolesHandler(repo).Handle(context.Background(), SetRolesCommand{
		UserID: user.ID,
		Roles:  []string{"superuser"},
	})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
