package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvitationRepository implements InvitationRepository using GORM
type GormInvitationRepository struct {
	db *gorm.DB
}

// NewGormInvitationRepository creates a new GormInvitationRepository
func NewGormInvitationRepository(db *gorm.DB) *GormInvitationRepository {
	return &GormInvitationRepository{db: db}
}

// Save creates or updates an invitation
func (r *GormInvitationRepository) Save(ctx context.Context, invitation *estate.Invitation) error {
	model := models.InvitationModelFromDomain(invitation)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an invitation by ID
func (r *GormInvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvitationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds an invitation by ID within an estate
func (r *GormInvitationRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*estate.Invitation, error) {
	var model models.InvitationModel
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

// FindByToken finds an invitation by its opaque token
func (r *GormInvitationRepository) FindByToken(ctx context.Context, token string) (*estate.Invitation, error) {
	var model models.InvitationModel
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForEstate returns invitations for an estate
func (r *GormInvitationRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]estate.Invitation, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.InvitationModel{}).
		Where("estate_id = ?", estateID)

	base = applySearch(base, filter.Search, "email")
	if status, ok := filter.Filters["status"]; ok {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.InvitationModel
	query := applyOrder(base, filter, CommonSortFields, "created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	invitations := make([]estate.Invitation, 0, len(rows))
	for i := range rows {
		invitations = append(invitations, *rows[i].ToDomain())
	}
	return invitations, total, nil
}

// FindPendingByEstateAndEmail finds a pending invitation for an email within an estate
func (r *GormInvitationRepository) FindPendingByEstateAndEmail(ctx context.Context, estateID uuid.UUID, email string) (*estate.Invitation, error) {
	var model models.InvitationModel
	if err := r.db.WithContext(ctx).
		Where("estate_id = ? AND LOWER(email) = ? AND status = ?",
			estateID, strings.ToLower(email), estate.InvitationStatusPending).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormInvitationRepository implements InvitationRepository
var _ estate.InvitationRepository = (*GormInvitationRepository)(nil)
