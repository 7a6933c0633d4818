package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDocumentRepository_FindByTagForEstate(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormDocumentRepository(gormDB)

	estateID := uuid.New()
	tagID := uuid.New()
	docID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "documents" JOIN document_tag_relations ON document_tag_relations\.document_id = documents\.id WHERE documents\.estate_id = \$1 AND document_tag_relations\.tag_id = \$2`).
		WithArgs(estateID, tagID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM "documents" JOIN document_tag_relations ON document_tag_relations\.document_id = documents\.id WHERE documents\.estate_id = \$1 AND document_tag_relations\.tag_id = \$2 ORDER BY documents\.created_at DESC`).
		WithArgs(estateID, tagID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "estate_id", "title", "file_name", "content_type", "size_bytes", "storage_key", "status", "uploaded_by"}).
			AddRow(docID, estateID, "Skifteattest", "skifteattest.pdf", "application/pdf", 120000, "estates/key", "available", uuid.New()))

	docs, total, err := repo.FindByTagForEstate(context.Background(), estateID, tagID, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, docs, 1)
	assert.Equal(t, docID, docs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDocumentRepository_FindByIDForEstate_NotFound(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormDocumentRepository(gormDB)

	estateID := uuid.New()
	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "documents" WHERE estate_id = \$1 AND id = \$2`).
		WithArgs(estateID, id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByIDForEstate(context.Background(), estateID, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
