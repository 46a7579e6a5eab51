package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

// GormMemberRepository implements MemberRepository on GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// Create creates a new member
func (r *GormMemberRepository) Create(ctx context.Context, member *models.Member) error {
	err := r.db.WithContext(ctx).Omit("Orders").Create(member).Error
	if err != nil && isUniqueViolation(err) {
		return models.ErrEmailAlreadyExists
	}
	return err
}

// GetByID finds a member by ID
func (r *GormMemberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail finds a member by email
func (r *GormMemberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByName finds members with an exact name match
func (r *GormMemberRepository) FindByName(ctx context.Context, name string) ([]models.Member, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).Where("name = ?", name).Find(&members).Error
	return members, err
}

// Update persists changes to an existing member
func (r *GormMemberRepository) Update(ctx context.Context, member *models.Member) error {
	result := r.db.WithContext(ctx).Omit("Orders").Save(member)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return models.ErrEmailAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrMemberNotFound
	}
	return nil
}

// List returns all members
func (r *GormMemberRepository) List(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).Order("id").Find(&members).Error
	return members, err
}

// Delete removes a member
func (r *GormMemberRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Member{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrMemberNotFound
	}
	return nil
}

// isUniqueViolation reports whether err came from a unique index.
// SQLite surfaces these as "UNIQUE constraint failed" without a typed error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Ensure GormMemberRepository implements MemberRepository
var _ MemberRepository = (*GormMemberRepository)(nil)
