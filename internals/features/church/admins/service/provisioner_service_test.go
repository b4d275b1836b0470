package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepcam_backend/internals/constants"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Jane", "Doe", "jane.doe"},
		{"JANE", "DOE", "jane.doe"},
		{"  Ade ", " Ojo ", "ade.ojo"},
		{"Tolu", "Adeyemi-Cole", "tolu.adeyemi-cole"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveUsername(tt.first, tt.last))
	}
}

func TestResolveUsernameCollision(t *testing.T) {
	t.Run("free base is used as-is", func(t *testing.T) {
		got, err := ResolveUsernameCollision("jane.doe", func(string) (bool, error) {
			return false, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "jane.doe", got)
	})

	t.Run("first collision appends 1", func(t *testing.T) {
		taken := map[string]bool{"jane.doe": true}
		got, err := ResolveUsernameCollision("jane.doe", func(candidate string) (bool, error) {
			return taken[candidate], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "jane.doe1", got)
	})

	t.Run("counter keeps climbing", func(t *testing.T) {
		taken := map[string]bool{"jane.doe": true, "jane.doe1": true, "jane.doe2": true}
		got, err := ResolveUsernameCollision("jane.doe", func(candidate string) (bool, error) {
			return taken[candidate], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "jane.doe3", got)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		_, err := ResolveUsernameCollision("jane.doe", func(string) (bool, error) {
			return false, assert.AnError
		})
		assert.Error(t, err)
	})
}

func TestFallbackPassword(t *testing.T) {
	assert.Equal(t, "Janesepcam", FallbackPassword("Jane"))
	assert.Equal(t, "sepcam", FallbackPassword(""))
}

func TestValidateLevelCell(t *testing.T) {
	t.Run("cell level requires a cell", func(t *testing.T) {
		assert.ErrorIs(t, ValidateLevelCell(constants.LevelCell, false), ErrAdminLevelCellRequired)
		assert.NoError(t, ValidateLevelCell(constants.LevelCell, true))
	})

	t.Run("assembly-wide levels must not carry a cell", func(t *testing.T) {
		assert.ErrorIs(t, ValidateLevelCell(constants.LevelSuperAdmin, true), ErrAdminCellNotAllowed)
		assert.ErrorIs(t, ValidateLevelCell(constants.LevelModerator, true), ErrAdminCellNotAllowed)
		assert.NoError(t, ValidateLevelCell(constants.LevelSuperAdmin, false))
		assert.NoError(t, ValidateLevelCell(constants.LevelModerator, false))
	})
}

func TestValidateCellAssembly(t *testing.T) {
	home := uuid.New()
	foreign := uuid.New()

	assert.NoError(t, ValidateCellAssembly(home, home))
	assert.ErrorIs(t, ValidateCellAssembly(foreign, home), ErrAdminCellForeignAssembly)
}

func TestCellSyncTarget(t *testing.T) {
	cellA := uuid.New()
	cellB := uuid.New()

	t.Run("cell admin pulls member into its cell", func(t *testing.T) {
		target, ok := CellSyncTarget(&cellA, &cellB)
		require.True(t, ok)
		assert.Equal(t, cellA, target)
	})

	t.Run("member with no cell gets enrolled", func(t *testing.T) {
		target, ok := CellSyncTarget(&cellA, nil)
		require.True(t, ok)
		assert.Equal(t, cellA, target)
	})

	t.Run("member already in the admin's cell stays put", func(t *testing.T) {
		_, ok := CellSyncTarget(&cellA, &cellA)
		assert.False(t, ok)
	})

	t.Run("cell-less admin never moves the member", func(t *testing.T) {
		_, ok := CellSyncTarget(nil, &cellB)
		assert.False(t, ok)
		_, ok = CellSyncTarget(nil, nil)
		assert.False(t, ok)
	})
}
