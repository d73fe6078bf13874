package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/errors"
)

func setupAdminTest(t *testing.T) *AdminService {
	t.Helper()
	return NewAdminService(setupTestStore(t), testLogger())
}

func TestCreateAdmin_Defaults(t *testing.T) {
	svc := setupAdminTest(t)

	admin, err := svc.CreateAdmin(context.Background(), &domain.Admin{
		Email:       "ops@example.com",
		DisplayName: "Ops",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(admin.UID, "admin-"))
	assert.Equal(t, domain.AdminRoleAdmin, admin.Role)
	assert.Equal(t, domain.DefaultAdminPermissions, admin.Permissions)
	assert.False(t, admin.CreatedAt.IsZero())
}

func TestCreateAdmin_InvalidRole(t *testing.T) {
	svc := setupAdminTest(t)

	_, err := svc.CreateAdmin(context.Background(), &domain.Admin{
		Email: "ops@example.com",
		Role:  domain.AdminRole("root"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestCreateAdmin_RequiresEmail(t *testing.T) {
	svc := setupAdminTest(t)

	_, err := svc.CreateAdmin(context.Background(), &domain.Admin{DisplayName: "No Email"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestRecordLogin(t *testing.T) {
	svc := setupAdminTest(t)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, &domain.Admin{Email: "ops@example.com"})
	require.NoError(t, err)
	require.True(t, admin.LastLogin.IsZero())

	stamped, err := svc.RecordLogin(ctx, admin.UID)
	require.NoError(t, err)
	assert.False(t, stamped.LastLogin.IsZero())
}

func TestUpdateAdmin_RoleChange(t *testing.T) {
	svc := setupAdminTest(t)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, &domain.Admin{Email: "ops@example.com"})
	require.NoError(t, err)

	super := domain.AdminRoleSuper
	updated, err := svc.UpdateAdmin(ctx, admin.UID, domain.AdminPatch{Role: &super})
	require.NoError(t, err)

	assert.Equal(t, domain.AdminRoleSuper, updated.Role)
	assert.True(t, updated.HasPermission("anything"))
}

func TestDeleteAdmin(t *testing.T) {
	svc := setupAdminTest(t)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, &domain.Admin{Email: "ops@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdmin(ctx, admin.UID))

	_, err = svc.GetAdmin(ctx, admin.UID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
