package repositories

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// MemberReader defines read operations for member data.
type MemberReader interface {
	// FindMemberByID retrieves a member by primary key.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMemberByNumber retrieves a member by the human-facing member number.
	FindMemberByNumber(ctx context.Context, memberNumber string) (*domain.Member, error)

	// ListMembers retrieves members, optionally filtered by status, ordered by
	// join date.
	ListMembers(ctx context.Context, status *domain.MemberStatus) ([]domain.Member, error)

	// CountActiveMembers returns the number of active members; used to derive
	// the next sequential member number.
	CountActiveMembers(ctx context.Context) (int, error)
}

// MemberWriter defines write operations for member data.
type MemberWriter interface {
	// SaveMember persists a new member registration.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMember persists changes to an existing member.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member record. Only pending registrations are
	// ever deleted.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberRepositoryFacade combines all member repository interfaces.
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
