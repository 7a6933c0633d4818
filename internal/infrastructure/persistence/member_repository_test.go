package persistence

import (
	"testing"
	"time"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MemberModelSQLite mirrors MemberModel with SQLite-friendly column types
type MemberModelSQLite struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int    `gorm:"not null;default:1"`
	EstateID  string `gorm:"not null;uniqueIndex:idx_members_estate_user"`
	UserID    string `gorm:"not null;uniqueIndex:idx_members_estate_user"`
	Role      string `gorm:"not null"`
	JoinedAt  time.Time
}

func (MemberModelSQLite) TableName() string {
	return "estate_members"
}

func setupMemberTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&MemberModelSQLite{}))
	return db
}

func newMember(t *testing.T, estateID, userID uuid.UUID, role estate.MemberRole) *estate.Member {
	t.Helper()
	m, err := estate.NewMember(estateID, userID, role)
	require.NoError(t, err)
	return m
}

func TestGormMemberRepository_SaveAndFind(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)
	ctx := t.Context()

	estateID := uuid.New()
	userID := uuid.New()

	member := newMember(t, estateID, userID, estate.MemberRoleHeir)
	require.NoError(t, repo.Save(ctx, member))

	found, err := repo.FindByEstateAndUser(ctx, estateID, userID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, found.ID)
	assert.Equal(t, estate.MemberRoleHeir, found.Role)

	byID, err := repo.FindByIDForEstate(ctx, estateID, member.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, byID.UserID)
}

func TestGormMemberRepository_FindByEstateAndUser_NotFound(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)

	_, err := repo.FindByEstateAndUser(t.Context(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormMemberRepository_FindAllForEstate(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)
	ctx := t.Context()

	estateID := uuid.New()
	otherEstateID := uuid.New()

	first := newMember(t, estateID, uuid.New(), estate.MemberRoleResponsibleHeir)
	first.JoinedAt = time.Now().Add(-2 * time.Hour)
	second := newMember(t, estateID, uuid.New(), estate.MemberRoleHeir)
	second.JoinedAt = time.Now().Add(-1 * time.Hour)
	outsider := newMember(t, otherEstateID, uuid.New(), estate.MemberRoleHeir)

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, outsider))

	members, err := repo.FindAllForEstate(ctx, estateID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// Ordered by join time
	assert.Equal(t, first.ID, members[0].ID)
	assert.Equal(t, second.ID, members[1].ID)
}

func TestGormMemberRepository_CountByRole(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)
	ctx := t.Context()

	estateID := uuid.New()

	require.NoError(t, repo.Save(ctx, newMember(t, estateID, uuid.New(), estate.MemberRoleResponsibleHeir)))
	require.NoError(t, repo.Save(ctx, newMember(t, estateID, uuid.New(), estate.MemberRoleHeir)))
	require.NoError(t, repo.Save(ctx, newMember(t, estateID, uuid.New(), estate.MemberRoleHeir)))

	heirs, err := repo.CountByRole(ctx, estateID, estate.MemberRoleHeir)
	require.NoError(t, err)
	assert.Equal(t, int64(2), heirs)

	admins, err := repo.CountByRole(ctx, estateID, estate.MemberRoleAdministrator)
	require.NoError(t, err)
	assert.Equal(t, int64(0), admins)
}

func TestGormMemberRepository_Delete(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)
	ctx := t.Context()

	member := newMember(t, uuid.New(), uuid.New(), estate.MemberRoleViewer)
	require.NoError(t, repo.Save(ctx, member))

	require.NoError(t, repo.Delete(ctx, member.ID))
	assert.ErrorIs(t, repo.Delete(ctx, member.ID), shared.ErrNotFound)
}
