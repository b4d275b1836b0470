package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	Member "sepcam_backend/internals/features/church/members/model"
)

// CommitteeModel is a named working group of members. The leader must
// already hold a membership in the committee; the controller enforces that.
type CommitteeModel struct {
	// PK
	CommitteeID uuid.UUID `gorm:"column:committee_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"committee_id"`

	CommitteeName        string `gorm:"column:committee_name;size:200;not null;index" json:"committee_name"`
	CommitteeDescription string `gorm:"column:committee_description;type:text" json:"committee_description"`

	// Optional leader; SET NULL on member deletion.
	CommitteeLeaderID *uuid.UUID          `gorm:"column:committee_leader_id;type:uuid;index" json:"committee_leader_id,omitempty"`
	Leader            *Member.MemberModel `gorm:"foreignKey:CommitteeLeaderID;references:MemberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"leader,omitempty"`

	Memberships []CommitteeMembershipModel `gorm:"foreignKey:CommitteeMembershipCommitteeID;references:CommitteeID" json:"memberships,omitempty"`

	CommitteeCreatedAt time.Time      `gorm:"column:committee_created_at;autoCreateTime" json:"committee_created_at"`
	CommitteeUpdatedAt time.Time      `gorm:"column:committee_updated_at;autoUpdateTime" json:"committee_updated_at"`
	CommitteeDeletedAt gorm.DeletedAt `gorm:"column:committee_deleted_at;index" json:"committee_deleted_at,omitempty"`
}

func (CommitteeModel) TableName() string {
	return "committees"
}

// CommitteeMembershipModel: one member on one committee, with role strings
// ("Secretary", "Treasurer", ...). Unique per (committee, member).
type CommitteeMembershipModel struct {
	// PK
	CommitteeMembershipID uuid.UUID `gorm:"column:committee_membership_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"committee_membership_id"`

	// FK
	CommitteeMembershipCommitteeID uuid.UUID `gorm:"column:committee_membership_committee_id;type:uuid;not null;uniqueIndex:uq_committee_member" json:"committee_membership_committee_id"`
	CommitteeMembershipMemberID    uuid.UUID `gorm:"column:committee_membership_member_id;type:uuid;not null;uniqueIndex:uq_committee_member" json:"committee_membership_member_id"`

	Member Member.MemberModel `gorm:"foreignKey:CommitteeMembershipMemberID;references:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"member,omitempty"`

	CommitteeMembershipRoles pq.StringArray `gorm:"column:committee_membership_roles;type:text[]" json:"committee_membership_roles"`

	CommitteeMembershipCreatedAt time.Time `gorm:"column:committee_membership_created_at;autoCreateTime" json:"committee_membership_created_at"`
}

func (CommitteeMembershipModel) TableName() string {
	return "committee_memberships"
}
