package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
)

// memberService handles member onboarding: public registration followed by an
// office holder's approval or rejection.
type memberService struct {
	BaseService
	memberRepo  portsrepo.MemberRepositoryFacade
	activitySvc portssvc.ActivitySvcFacade
}

// NewMemberService creates a new member service.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, activitySvc portssvc.ActivitySvcFacade) portssvc.MemberSvcFacade {
	return &memberService{
		memberRepo:  memberRepo,
		activitySvc: activitySvc,
	}
}

// Ensure memberService implements the portssvc.MemberSvcFacade interface
var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// RegisterMember persists a new pending registration. The member number is
// only assigned once an office holder approves.
func (s *memberService) RegisterMember(ctx context.Context, req dto.RegisterMemberRequest) (*domain.Member, error) {
	now := time.Now()
	memberID := uuid.NewString()

	member := domain.Member{
		MemberID:    memberID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		City:        req.City,
		County:      req.County,
		PostalCode:  req.PostalCode,
		NationalID:  req.NationalID,
		TaxPIN:      req.TaxPIN,
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
		BankBranch:  req.BankBranch,
		NomineeName: req.NomineeName,
		NomineeRel:  req.NomineeRel,
		JoinedAt:    now,
		Status:      domain.MemberPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     memberID,
			LastUpdatedAt: now,
			LastUpdatedBy: memberID,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member registration", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to save member registration: %w", err)
	}

	s.recordActivity(ctx, domain.ActivityMemberJoined,
		fmt.Sprintf("%s registered to join the group", member.FullName()))

	s.LogInfo(ctx, "Member registered", slog.String("member_id", memberID))
	return &member, nil
}

// ApproveMember activates a pending registration and assigns the next
// sequential member number.
func (s *memberService) ApproveMember(ctx context.Context, memberID string, actor domain.Reviewer) (*domain.Member, error) {
	if err := s.Authorize(ctx, actor, domain.ActionApproveMember); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.Status != domain.MemberPending {
		return nil, fmt.Errorf("%w: member is %s, only pending registrations can be approved",
			apperrors.ErrValidation, member.Status)
	}

	activeCount, err := s.memberRepo.CountActiveMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count members for numbering: %w", err)
	}

	now := time.Now()
	member.MemberNumber = fmt.Sprintf("STG%04d", activeCount+1)
	member.Status = domain.MemberActive
	member.LastUpdatedAt = now
	member.LastUpdatedBy = actor.UserID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to approve member", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to approve member: %w", err)
	}

	s.recordActivity(ctx, domain.ActivityMemberApproved,
		fmt.Sprintf("%s was admitted as member %s", member.FullName(), member.MemberNumber))

	s.LogInfo(ctx, "Member approved",
		slog.String("member_id", memberID),
		slog.String("member_number", member.MemberNumber),
		slog.String("approved_by", actor.UserID))
	return member, nil
}

// RejectMember removes a pending registration.
func (s *memberService) RejectMember(ctx context.Context, memberID string, actor domain.Reviewer) error {
	if err := s.Authorize(ctx, actor, domain.ActionRejectMember); err != nil {
		return err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member.Status != domain.MemberPending {
		return fmt.Errorf("%w: member is %s, only pending registrations can be rejected",
			apperrors.ErrValidation, member.Status)
	}

	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		s.LogError(ctx, err, "Failed to reject member", slog.String("member_id", memberID))
		return fmt.Errorf("failed to reject member: %w", err)
	}

	s.LogInfo(ctx, "Member registration rejected",
		slog.String("member_id", memberID),
		slog.String("rejected_by", actor.UserID))
	return nil
}

// GetMemberByID retrieves a member by primary key.
func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByID(ctx, memberID)
}

// GetMemberByNumber retrieves a member by their member number.
func (s *memberService) GetMemberByNumber(ctx context.Context, memberNumber string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByNumber(ctx, memberNumber)
}

// ListMembers retrieves members, optionally filtered by status.
func (s *memberService) ListMembers(ctx context.Context, params dto.ListMembersParams) (*dto.ListMembersResponse, error) {
	members, err := s.memberRepo.ListMembers(ctx, params.Status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return &dto.ListMembersResponse{Members: dto.ToMemberResponses(members)}, nil
}

func (s *memberService) recordActivity(ctx context.Context, activityType domain.ActivityType, description string) {
	if s.activitySvc == nil {
		return
	}
	if err := s.activitySvc.Record(ctx, activityType, description); err != nil {
		s.LogError(ctx, err, "Failed to record activity", slog.String("activity_type", string(activityType)))
	}
}
