package services

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
)

// MemberReaderSvc defines read operations for members.
type MemberReaderSvc interface {
	// GetMemberByID retrieves a member by primary key.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// GetMemberByNumber retrieves a member by their member number.
	GetMemberByNumber(ctx context.Context, memberNumber string) (*domain.Member, error)

	// ListMembers retrieves members, optionally filtered by status.
	ListMembers(ctx context.Context, params dto.ListMembersParams) (*dto.ListMembersResponse, error)
}

// MemberWriterSvc defines onboarding operations for members.
type MemberWriterSvc interface {
	// RegisterMember persists a new pending registration.
	RegisterMember(ctx context.Context, req dto.RegisterMemberRequest) (*domain.Member, error)

	// ApproveMember activates a pending registration and assigns the next
	// sequential member number. Gated on the approve_member permission.
	ApproveMember(ctx context.Context, memberID string, actor domain.Reviewer) (*domain.Member, error)

	// RejectMember removes a pending registration. Gated on the reject_member
	// permission.
	RejectMember(ctx context.Context, memberID string, actor domain.Reviewer) error
}

// MemberSvcFacade combines all member service interfaces.
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
