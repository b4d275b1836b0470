package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"sepcam_backend/internals/features/church/committees/model"
)

var validate = validator.New()

type CommitteeRequest struct {
	CommitteeName        string     `json:"committee_name" validate:"required,max=200"`
	CommitteeDescription string     `json:"committee_description"`
	CommitteeLeaderID    *uuid.UUID `json:"committee_leader_id,omitempty"`
}

func (r *CommitteeRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CommitteeRequest) ToModelCreate() *model.CommitteeModel {
	return &model.CommitteeModel{
		CommitteeName:        r.CommitteeName,
		CommitteeDescription: r.CommitteeDescription,
		CommitteeLeaderID:    r.CommitteeLeaderID,
	}
}

type MembershipRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Roles    []string  `json:"roles" validate:"omitempty,dive,max=100"`
}

func (r *MembershipRequest) Validate() error {
	return validate.Struct(r)
}

func (r *MembershipRequest) ToModel(committeeID uuid.UUID) *model.CommitteeMembershipModel {
	return &model.CommitteeMembershipModel{
		CommitteeMembershipCommitteeID: committeeID,
		CommitteeMembershipMemberID:    r.MemberID,
		CommitteeMembershipRoles:       pq.StringArray(r.Roles),
	}
}
