// Package services provides business logic implementations.
package services

import (
	"context"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/repository"
)

// MemberService handles member business logic
type MemberService interface {
	// Join registers a new member after duplicate-name validation
	Join(ctx context.Context, member *models.Member) (uint, error)

	// UpdateName renames an existing member
	UpdateName(ctx context.Context, id uint, name string) error

	// Get retrieves a member by ID
	Get(ctx context.Context, id uint) (*models.Member, error)

	// List returns all members
	List(ctx context.Context) ([]models.Member, error)
}

// memberService implements MemberService
type memberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

// Join registers a new member
// #BUSINESS_RULE: Member names are unique; the check-then-insert race is
// closed by the unique email index, names are best-effort validated here.
func (s *memberService) Join(ctx context.Context, member *models.Member) (uint, error) {
	existing, err := s.memberRepo.FindByName(ctx, member.Name)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, models.ErrDuplicateMember
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return 0, err
	}
	return member.ID, nil
}

// UpdateName renames a member. The entity is loaded, changed and written
// back in the same request; no detached snapshot is merged.
func (s *memberService) UpdateName(ctx context.Context, id uint, name string) error {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	member.Name = name
	return s.memberRepo.Update(ctx, member)
}

// Get retrieves a member by ID
func (s *memberService) Get(ctx context.Context, id uint) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

// List returns all members
func (s *memberService) List(ctx context.Context) ([]models.Member, error) {
	return s.memberRepo.List(ctx)
}
