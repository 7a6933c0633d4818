package persistence

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMemberRepository implements MemberRepository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// Save creates or updates a membership row
func (r *GormMemberRepository) Save(ctx context.Context, member *estate.Member) error {
	model := models.MemberModelFromDomain(member)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a membership row by ID
func (r *GormMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MemberModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds a member by ID within an estate
func (r *GormMemberRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*estate.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).
		Where("estate_id = ? AND id = ?", estateID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEstateAndUser finds the membership of a user within an estate
func (r *GormMemberRepository) FindByEstateAndUser(ctx context.Context, estateID, userID uuid.UUID) (*estate.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).
		Where("estate_id = ? AND user_id = ?", estateID, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForEstate returns all members of an estate
func (r *GormMemberRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID) ([]estate.Member, error) {
	var rows []models.MemberModel
	if err := r.db.WithContext(ctx).
		Where("estate_id = ?", estateID).
		Order("joined_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]estate.Member, 0, len(rows))
	for i := range rows {
		members = append(members, *rows[i].ToDomain())
	}
	return members, nil
}

// CountByRole counts members of an estate holding the given role
func (r *GormMemberRepository) CountByRole(ctx context.Context, estateID uuid.UUID, role estate.MemberRole) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MemberModel{}).
		Where("estate_id = ? AND role = ?", estateID, role).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormMemberRepository implements MemberRepository
var _ estate.MemberRepository = (*GormMemberRepository)(nil)
