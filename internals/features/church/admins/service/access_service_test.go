package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	adminModel "sepcam_backend/internals/features/church/admins/model"
	memberModel "sepcam_backend/internals/features/church/members/model"
	"sepcam_backend/internals/constants"
)

func newAdmin(level string, assemblyID uuid.UUID, cellID *uuid.UUID) *adminModel.AdminModel {
	return &adminModel.AdminModel{
		AdminID:         uuid.New(),
		AdminAssemblyID: assemblyID,
		AdminCellID:     cellID,
		AdminLevel:      level,
	}
}

func newMember(assemblyID uuid.UUID, cellID *uuid.UUID) *memberModel.MemberModel {
	return &memberModel.MemberModel{
		MemberID:         uuid.New(),
		MemberAssemblyID: assemblyID,
		MemberCellID:     cellID,
	}
}

func TestCanAccessMember(t *testing.T) {
	assemblyA := uuid.New()
	assemblyB := uuid.New()
	cell1 := uuid.New()
	cell2 := uuid.New()

	tests := []struct {
		name   string
		admin  *adminModel.AdminModel
		member *memberModel.MemberModel
		want   bool
	}{
		{
			name:   "superadmin sees own assembly",
			admin:  newAdmin(constants.LevelSuperAdmin, assemblyA, nil),
			member: newMember(assemblyA, nil),
			want:   true,
		},
		{
			name:   "superadmin blocked from other assembly",
			admin:  newAdmin(constants.LevelSuperAdmin, assemblyA, nil),
			member: newMember(assemblyB, nil),
			want:   false,
		},
		{
			name:   "moderator sees own assembly",
			admin:  newAdmin(constants.LevelModerator, assemblyA, nil),
			member: newMember(assemblyA, &cell2),
			want:   true,
		},
		{
			name:   "cell admin sees member in own cell",
			admin:  newAdmin(constants.LevelCell, assemblyA, &cell1),
			member: newMember(assemblyA, &cell1),
			want:   true,
		},
		{
			name:   "cell admin blocked from other cell",
			admin:  newAdmin(constants.LevelCell, assemblyA, &cell1),
			member: newMember(assemblyA, &cell2),
			want:   false,
		},
		{
			name:   "cell admin blocked from member with no cell",
			admin:  newAdmin(constants.LevelCell, assemblyA, &cell1),
			member: newMember(assemblyA, nil),
			want:   false,
		},
		{
			name:   "cell admin without a cell manages nobody",
			admin:  newAdmin(constants.LevelCell, assemblyA, nil),
			member: newMember(assemblyA, &cell1),
			want:   false,
		},
		{
			name:   "unknown level fails closed",
			admin:  newAdmin("INTERN", assemblyA, nil),
			member: newMember(assemblyA, nil),
			want:   false,
		},
		{
			name:   "nil admin fails closed",
			admin:  nil,
			member: newMember(assemblyA, nil),
			want:   false,
		},
		{
			name:   "nil member is never accessible",
			admin:  newAdmin(constants.LevelSuperAdmin, assemblyA, nil),
			member: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessMember(tt.admin, tt.member))
		})
	}
}

// CanAccessMember and GetManagedMembers both dispatch through resolveScope;
// this pins down the dispatch itself so the two surfaces cannot disagree.
func TestResolveScope(t *testing.T) {
	assemblyA := uuid.New()
	cell1 := uuid.New()

	t.Run("assembly-wide levels", func(t *testing.T) {
		for _, level := range constants.AssemblyWideLevels {
			scope, ok := resolveScope(newAdmin(level, assemblyA, nil))
			assert.True(t, ok, level)
			assert.True(t, scope.assemblyOnly, level)
			assert.False(t, scope.cellScoped, level)
		}
	})

	t.Run("cell level with cell", func(t *testing.T) {
		scope, ok := resolveScope(newAdmin(constants.LevelCell, assemblyA, &cell1))
		assert.True(t, ok)
		assert.True(t, scope.cellScoped)
	})

	t.Run("cell level without cell fails closed", func(t *testing.T) {
		_, ok := resolveScope(newAdmin(constants.LevelCell, assemblyA, nil))
		assert.False(t, ok)
	})

	t.Run("unrecognized level fails closed", func(t *testing.T) {
		_, ok := resolveScope(newAdmin("superadmin", assemblyA, nil)) // wrong case
		assert.False(t, ok)
	})
}
