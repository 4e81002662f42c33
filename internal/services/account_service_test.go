package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebuilds/internal/infra"
	"carebuilds/internal/models/request_models"
	"carebuilds/internal/testutil"
	"carebuilds/pkg/utils"
)

func testConfig() infra.Config {
	return infra.Config{
		AdminEmail: "admin@demo.com",
		AdminName:  "Admin User",
		AdminPass:  "admin123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	svc := env.accountService(t, testConfig())

	auth, err := svc.Register(ctx, request_models.SignUpRequest{
		Name:     "Jane",
		Email:    "  Jane@Example.com ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "jane@example.com", auth.User.Email)
	assert.False(t, auth.User.IsAdmin)
	assert.Equal(t, "en", auth.User.Language)
	assert.Empty(t, auth.User.Goals)
	assert.True(t, auth.User.IsActive)

	claims, err := env.tokens.ValidateToken(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.User.ID.String(), claims.UserID)
	assert.Equal(t, utils.RoleUser, claims.Role)

	_, err = svc.Register(ctx, request_models.SignUpRequest{Name: "J", Email: "jane@example.com", Password: "other123"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	login, err := svc.Login(ctx, request_models.LoginRequest{Email: "JANE@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotNil(t, login.User.LastLogin)
	assert.True(t, testutil.Now.Equal(*login.User.LastLogin))

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestRegisterAdminEmailGetsAdmin(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()

	auth, err := env.accountService(t, testConfig()).Register(ctx, request_models.SignUpRequest{
		Name: "Boss", Email: "ADMIN@demo.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, auth.User.IsAdmin)

	claims, err := env.tokens.ValidateToken(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, utils.RoleAdmin, claims.Role)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "off@example.com")
	require.NoError(t, env.db.Model(user).Update("is_active", false).Error)

	_, err := env.accountService(t, testConfig()).Login(ctx, request_models.LoginRequest{
		Email: "off@example.com", Password: testutil.Password,
	})
	assert.ErrorIs(t, err, utils.ErrAccountDisabled)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	svc := env.accountService(t, testConfig())

	auth, err := svc.Register(ctx, request_models.SignUpRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	claims, err := env.tokens.ValidateToken(auth.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims))
	revoked, err := env.revoked.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, svc.Logout(ctx, nil), utils.ErrUnauthenticated)
}

func TestOnboardingAndProfile(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	svc := env.accountService(t, testConfig())

	got, err := svc.CompleteOnboarding(ctx, user.ID, request_models.OnboardingRequest{
		Language: strPtr("es"),
		AgeGroup: strPtr("25-34"),
		Goals:    []string{"sleep better", " ", "less stress"},
	})
	require.NoError(t, err)
	assert.Equal(t, "es", got.Language)
	assert.Equal(t, "25-34", got.AgeGroup)
	assert.Equal(t, []string{"sleep better", "less stress"}, got.Goals)

	got, err = svc.UpdateProfile(ctx, user.ID, request_models.UpdateProfileRequest{Name: strPtr("New Name")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "es", got.Language)
	assert.Equal(t, []string{"sleep better", "less stress"}, got.Goals)

	_, err = svc.UpdateProfile(ctx, user.ID, request_models.UpdateProfileRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	me, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", me.Name)
	assert.Equal(t, []string{"sleep better", "less stress"}, me.Goals)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	svc := env.accountService(t, testConfig())

	require.NoError(t, svc.EnsureDefaultAdmin(ctx))
	require.NoError(t, svc.EnsureDefaultAdmin(ctx))

	admin, err := env.accountRepo.FindByEmail(ctx, nil, "admin@demo.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "Admin User", admin.Name)

	ok, err := svc.IsActiveAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	auth, err := svc.Login(ctx, request_models.LoginRequest{Email: "admin@demo.com", Password: "admin123"})
	require.NoError(t, err)
	assert.True(t, auth.User.IsAdmin)

	require.NoError(t, env.db.Model(admin).Update("is_active", false).Error)
	ok, err = svc.IsActiveAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
