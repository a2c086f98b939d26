package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	"github.com/ficmh/techfest-api/internal/auth"
	"github.com/ficmh/techfest-api/internal/config"
	"github.com/ficmh/techfest-api/internal/domain"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func newTestAdminService(t *testing.T, repo *fakeAdminRepo) (*AdminService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	svc := NewAdminService(testConfig(), AdminDependencies{
		AdminRepo: repo,
		Logger:    zap.New(core),
	})
	return svc, logs
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func seedSuperAdmin(t *testing.T, repo *fakeAdminRepo, email, password string) *domain.Admin {
	t.Helper()
	return repo.seed(domain.Admin{
		Username:     "root",
		Email:        email,
		PasswordHash: hashFor(t, password),
		Role:         domain.RoleSuperAdmin,
	})
}

func domainCode(t *testing.T, err error) (string, string) {
	t.Helper()
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	return de.Code, de.Message
}

func TestLoginEmbedsStoredRole(t *testing.T) {
	repo := newFakeAdminRepo()
	super := seedSuperAdmin(t, repo, "a@x.com", "pw-one")
	svc, _ := newTestAdminService(t, repo)

	admin, token, exp, err := svc.Login(context.Background(), "a@x.com", "pw-one")
	require.NoError(t, err)
	assert.Equal(t, super.ID, admin.ID)
	assert.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, super.ID, claims.AdminID)
	assert.Equal(t, domain.RoleSuperAdmin, claims.Role)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	repo := newFakeAdminRepo()
	seedSuperAdmin(t, repo, "Admin@X.com", "pw-one")
	svc, _ := newTestAdminService(t, repo)

	_, _, _, err := svc.Login(context.Background(), "admin@x.com", "pw-one")
	require.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAdminRepo()
	seedSuperAdmin(t, repo, "a@x.com", "pw-one")
	svc, _ := newTestAdminService(t, repo)

	_, _, _, wrongPassword := svc.Login(context.Background(), "a@x.com", "nope")
	_, _, _, unknownEmail := svc.Login(context.Background(), "ghost@x.com", "nope")

	wpCode, wpMsg := domainCode(t, wrongPassword)
	ueCode, ueMsg := domainCode(t, unknownEmail)
	assert.Equal(t, "INVALID_CREDENTIALS", wpCode)
	assert.Equal(t, wpCode, ueCode)
	assert.Equal(t, wpMsg, ueMsg)
}

func TestAddAdminAlwaysCreatesPlainAdmin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc, _ := newTestAdminService(t, repo)

	created, err := svc.AddAdmin(context.Background(), "new-op", "b@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "password1", created.PasswordHash)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, stored.Role)
}

func TestAddAdminRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAdminRepo()
	svc, _ := newTestAdminService(t, repo)
	ctx := context.Background()

	_, err := svc.AddAdmin(ctx, "one", "dup@x.com", "password1")
	require.NoError(t, err)

	_, err = svc.AddAdmin(ctx, "two", "DUP@X.com", "password2")
	code, _ := domainCode(t, err)
	assert.Equal(t, "DUPLICATE_EMAIL", code)

	admins, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestHandoverTransfersExactlyOneRole(t *testing.T) {
	repo := newFakeAdminRepo()
	super := seedSuperAdmin(t, repo, "a@x.com", "pw")
	target := repo.seed(domain.Admin{Username: "next", Email: "b@x.com", Role: domain.RoleAdmin})
	svc, _ := newTestAdminService(t, repo)
	ctx := context.Background()

	newSuper, err := svc.HandoverSuperAdmin(ctx, super.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.ID, newSuper.ID)
	assert.Equal(t, domain.RoleSuperAdmin, newSuper.Role)

	assert.Equal(t, domain.RoleSuperAdmin, repo.roleOf(target.ID))
	assert.Equal(t, domain.RoleAdmin, repo.roleOf(super.ID))

	count, err := repo.CountByRole(ctx, domain.RoleSuperAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestHandoverCrashLeavesTwoSuperadminsNeverZero(t *testing.T) {
	repo := newFakeAdminRepo()
	super := seedSuperAdmin(t, repo, "a@x.com", "pw")
	target := repo.seed(domain.Admin{Username: "next", Email: "b@x.com", Role: domain.RoleAdmin})
	// Fail the second update (the caller's demotion) to simulate a crash
	// between the two steps.
	repo.updateRoleErr = func(id string) error {
		if id == super.ID {
			return errors.New("connection lost")
		}
		return nil
	}
	svc, _ := newTestAdminService(t, repo)
	ctx := context.Background()

	_, err := svc.HandoverSuperAdmin(ctx, super.ID, target.ID)
	code, _ := domainCode(t, err)
	assert.Equal(t, "STORE_UNAVAILABLE", code)

	count, countErr := repo.CountByRole(ctx, domain.RoleSuperAdmin)
	require.NoError(t, countErr)
	assert.EqualValues(t, 2, count, "interrupted handover must bias toward duplicates, not lockout")
}

func TestHandoverRejectsSelf(t *testing.T) {
	repo := newFakeAdminRepo()
	super := seedSuperAdmin(t, repo, "a@x.com", "pw")
	svc, _ := newTestAdminService(t, repo)

	_, err := svc.HandoverSuperAdmin(context.Background(), super.ID, super.ID)
	code, _ := domainCode(t, err)
	assert.Equal(t, "NO_SELF_HANDOVER", code)
	assert.Equal(t, domain.RoleSuperAdmin, repo.roleOf(super.ID))
}

func TestHandoverUnknownTarget(t *testing.T) {
	repo := newFakeAdminRepo()
	super := seedSuperAdmin(t, repo, "a@x.com", "pw")
	svc, _ := newTestAdminService(t, repo)

	_, err := svc.HandoverSuperAdmin(context.Background(), super.ID, "missing-id")
	code, _ := domainCode(t, err)
	assert.Equal(t, "NOT_FOUND", code)
	assert.Equal(t, domain.RoleSuperAdmin, repo.roleOf(super.ID))
}

func TestInvariantCheckReportsWithoutMutating(t *testing.T) {
	ctx := context.Background()

	t.Run("zero superadmins", func(t *testing.T) {
		repo := newFakeAdminRepo()
		repo.seed(domain.Admin{Username: "only", Email: "a@x.com", Role: domain.RoleAdmin})
		svc, logs := newTestAdminService(t, repo)

		svc.CheckSuperadminInvariant(ctx)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "no superadmin exists", logs.All()[0].Message)
	})

	t.Run("multiple superadmins", func(t *testing.T) {
		repo := newFakeAdminRepo()
		repo.seed(domain.Admin{Username: "s1", Email: "a@x.com", Role: domain.RoleSuperAdmin})
		repo.seed(domain.Admin{Username: "s2", Email: "b@x.com", Role: domain.RoleSuperAdmin})
		svc, logs := newTestAdminService(t, repo)

		svc.CheckSuperadminInvariant(ctx)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "multiple superadmins found; resolve manually", logs.All()[0].Message)

		count, err := repo.CountByRole(ctx, domain.RoleSuperAdmin)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count, "check must never repair")
	})

	t.Run("exactly one superadmin", func(t *testing.T) {
		repo := newFakeAdminRepo()
		repo.seed(domain.Admin{Username: "s1", Email: "a@x.com", Role: domain.RoleSuperAdmin})
		svc, logs := newTestAdminService(t, repo)

		svc.CheckSuperadminInvariant(ctx)

		assert.Zero(t, logs.Len())
	})
}

func TestAdminLifecycleScenario(t *testing.T) {
	repo := newFakeAdminRepo()
	super := seedSuperAdmin(t, repo, "a@x.com", "pw")
	other := repo.seed(domain.Admin{
		Username:     "deputy",
		Email:        "b@x.com",
		PasswordHash: hashFor(t, "pw2"),
		Role:         domain.RoleAdmin,
	})
	svc, _ := newTestAdminService(t, repo)
	ctx := context.Background()

	_, tokenS, _, err := svc.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	created, err := svc.AddAdmin(ctx, "C", "c@x.com", "password3")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, created.Role)

	newSuper, err := svc.HandoverSuperAdmin(ctx, super.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, newSuper.ID)

	// The old superadmin can still log in, now with the plain role.
	admin, _, _, err := svc.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	// The pre-handover token still carries the superadmin claim; the gate
	// trusts it until expiry. That staleness window is the documented
	// trade-off of not re-reading the store per request.
	claims, err := svc.TokenManager().ParseToken(tokenS)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, claims.Role)

	count, err := repo.CountByRole(ctx, domain.RoleSuperAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
