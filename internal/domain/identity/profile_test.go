package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultProfile(t *testing.T) {
	t.Run("applies default role and permission", func(t *testing.T) {
		userID := uuid.New()
		profile, err := NewDefaultProfile(userID)
		require.NoError(t, err)
		assert.Equal(t, userID, profile.UserID)
		assert.Equal(t, RoleResponsibleHeir, profile.Role)
		assert.Equal(t, PermissionFullEdit, profile.Permission)
		assert.True(t, profile.CanEdit())
	})

	t.Run("fails with nil user ID", func(t *testing.T) {
		_, err := NewDefaultProfile(uuid.Nil)
		require.Error(t, err)
	})
}

func TestProfileUpdateDetails(t *testing.T) {
	profile, err := NewDefaultProfile(uuid.New())
	require.NoError(t, err)

	t.Run("updates fields", func(t *testing.T) {
		err := profile.UpdateDetails("Kari Nordmann", "+47 912 34 567", "https://cdn.example.no/a.png")
		require.NoError(t, err)
		assert.Equal(t, "Kari Nordmann", profile.FullName)
		assert.Equal(t, "+47 912 34 567", profile.Phone)
	})

	t.Run("rejects overly long phone", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = '1'
		}
		err := profile.UpdateDetails("Kari", string(long), "")
		require.Error(t, err)
	})
}

func TestProfileRoleAndPermission(t *testing.T) {
	profile, err := NewDefaultProfile(uuid.New())
	require.NoError(t, err)

	t.Run("change to valid role", func(t *testing.T) {
		require.NoError(t, profile.ChangeRole(RoleAdministrator))
		assert.Equal(t, RoleAdministrator, profile.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		require.Error(t, profile.ChangeRole(ProfileRole("executor")))
	})

	t.Run("view only blocks edit", func(t *testing.T) {
		require.NoError(t, profile.ChangePermission(PermissionViewOnly))
		assert.False(t, profile.CanEdit())
	})

	t.Run("rejects unknown permission", func(t *testing.T) {
		require.Error(t, profile.ChangePermission(ProfilePermission("write")))
	})
}
