package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arvebo/backend/internal/domain/document"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockDocumentRepository is a mock implementation of document.DocumentRepository
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Save(ctx context.Context, doc *document.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*document.Document, error) {
	args := m.Called(ctx, estateID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]document.Document, int64, error) {
	args := m.Called(ctx, estateID, filter)
	return args.Get(0).([]document.Document), args.Get(1).(int64), args.Error(2)
}

func (m *MockDocumentRepository) FindByTagForEstate(ctx context.Context, estateID, tagID uuid.UUID, filter shared.Filter) ([]document.Document, int64, error) {
	args := m.Called(ctx, estateID, tagID, filter)
	return args.Get(0).([]document.Document), args.Get(1).(int64), args.Error(2)
}

// MockTagRepository is a mock implementation of document.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Save(ctx context.Context, tag *document.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTagRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*document.Tag, error) {
	args := m.Called(ctx, estateID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByNameForEstate(ctx context.Context, estateID uuid.UUID, name string) (*document.Tag, error) {
	args := m.Called(ctx, estateID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Tag), args.Error(1)
}

func (m *MockTagRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID) ([]document.Tag, error) {
	args := m.Called(ctx, estateID)
	return args.Get(0).([]document.Tag), args.Error(1)
}

func (m *MockTagRepository) AttachToDocument(ctx context.Context, documentID, tagID uuid.UUID) error {
	args := m.Called(ctx, documentID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) DetachFromDocument(ctx context.Context, documentID, tagID uuid.UUID) error {
	args := m.Called(ctx, documentID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) FindByDocument(ctx context.Context, documentID uuid.UUID) ([]document.Tag, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).([]document.Tag), args.Error(1)
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func createTestDocument(t *testing.T, estateID uuid.UUID) *document.Document {
	t.Helper()
	doc, err := document.NewDocument(estateID, "Skifteattest", "skifteattest.pdf", "application/pdf", 120_000, uuid.New())
	require.NoError(t, err)
	return doc
}

func newDocumentService(docRepo *MockDocumentRepository, tagRepo *MockTagRepository, storage *MockObjectStorage) *DocumentService {
	return NewDocumentService(docRepo, tagRepo, storage, zap.NewNop())
}

func TestDocumentService_InitiateUpload_Success(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)
	storage := new(MockObjectStorage)

	estateID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)

	docRepo.On("Save", ctx, mock.AnythingOfType("*document.Document")).Return(nil)
	storage.On("GenerateUploadURL", ctx, mock.AnythingOfType("string"), "application/pdf", time.Duration(0)).
		Return("https://storage.example.no/upload", expiresAt, nil)

	service := newDocumentService(docRepo, new(MockTagRepository), storage)

	result, err := service.InitiateUpload(ctx, InitiateUploadInput{
		EstateID:    estateID,
		Title:       "Skifteattest",
		FileName:    "skifteattest.pdf",
		ContentType: "application/pdf",
		SizeBytes:   120_000,
		UploadedBy:  uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.no/upload", result.UploadURL)
	assert.Equal(t, "pending", result.Document.Status)
	assert.Equal(t, expiresAt, result.ExpiresAt)

	docRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestDocumentService_InitiateUpload_RemovesRecordOnPresignFailure(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)
	storage := new(MockObjectStorage)

	docRepo.On("Save", ctx, mock.AnythingOfType("*document.Document")).Return(nil)
	storage.On("GenerateUploadURL", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", time.Time{}, errors.New("storage unavailable"))
	docRepo.On("Delete", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)

	service := newDocumentService(docRepo, new(MockTagRepository), storage)

	_, err := service.InitiateUpload(ctx, InitiateUploadInput{
		EstateID:    uuid.New(),
		Title:       "Skifteattest",
		FileName:    "skifteattest.pdf",
		ContentType: "application/pdf",
		SizeBytes:   120_000,
		UploadedBy:  uuid.New(),
	})

	require.Error(t, err)
	docRepo.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("uuid.UUID"))
}

func TestDocumentService_InitiateUpload_RejectsDisallowedContentType(t *testing.T) {
	ctx := context.Background()
	service := newDocumentService(new(MockDocumentRepository), new(MockTagRepository), new(MockObjectStorage))

	_, err := service.InitiateUpload(ctx, InitiateUploadInput{
		EstateID:    uuid.New(),
		Title:       "Video",
		FileName:    "video.mp4",
		ContentType: "video/mp4",
		SizeBytes:   1000,
		UploadedBy:  uuid.New(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CONTENT_TYPE", domainErr.Code)
}

func TestDocumentService_ConfirmUpload_Success(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)
	storage := new(MockObjectStorage)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)
	storage.On("ObjectExists", ctx, doc.StorageKey).Return(true, nil)
	docRepo.On("Save", ctx, doc).Return(nil)

	service := newDocumentService(docRepo, new(MockTagRepository), storage)

	result, err := service.ConfirmUpload(ctx, estateID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "available", result.Status)
}

func TestDocumentService_ConfirmUpload_ObjectMissing(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)
	storage := new(MockObjectStorage)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)
	storage.On("ObjectExists", ctx, doc.StorageKey).Return(false, nil)

	service := newDocumentService(docRepo, new(MockTagRepository), storage)

	_, err := service.ConfirmUpload(ctx, estateID, doc.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UPLOAD_NOT_FOUND", domainErr.Code)
	assert.Equal(t, document.DocumentStatusPending, doc.Status)
}

func TestDocumentService_Download_RequiresAvailable(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)

	service := newDocumentService(docRepo, new(MockTagRepository), new(MockObjectStorage))

	_, err := service.Download(ctx, estateID, doc.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestDocumentService_Rename_UpdatesTitleAndSortOrder(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)
	docRepo.On("Save", ctx, doc).Return(nil)

	service := newDocumentService(docRepo, new(MockTagRepository), new(MockObjectStorage))

	order := 2
	result, err := service.Rename(ctx, RenameInput{
		EstateID:   estateID,
		DocumentID: doc.ID,
		Title:      "Skifteattest 2024",
		SortOrder:  &order,
	})

	require.NoError(t, err)
	assert.Equal(t, "Skifteattest 2024", result.Title)
	assert.Equal(t, 2, result.SortOrder)
	docRepo.AssertExpectations(t)
}

func TestDocumentService_Rename_RejectsNegativeSortOrder(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)

	service := newDocumentService(docRepo, new(MockTagRepository), new(MockObjectStorage))

	order := -1
	_, err := service.Rename(ctx, RenameInput{
		EstateID:   estateID,
		DocumentID: doc.ID,
		Title:      "Skifteattest",
		SortOrder:  &order,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_SORT_ORDER", domainErr.Code)
	docRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDocumentService_Delete_RemovesObjectFirst(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)
	storage := new(MockObjectStorage)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)
	storage.On("DeleteObject", ctx, doc.StorageKey).Return(nil)
	docRepo.On("Delete", ctx, doc.ID).Return(nil)

	service := newDocumentService(docRepo, new(MockTagRepository), storage)

	err := service.Delete(ctx, estateID, doc.ID)
	require.NoError(t, err)
	storage.AssertExpectations(t)
	docRepo.AssertExpectations(t)
}

func TestDocumentService_Delete_KeepsRecordWhenStorageFails(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)
	storage := new(MockObjectStorage)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)
	storage.On("DeleteObject", ctx, doc.StorageKey).Return(errors.New("storage unavailable"))

	service := newDocumentService(docRepo, new(MockTagRepository), storage)

	err := service.Delete(ctx, estateID, doc.ID)
	require.Error(t, err)
	docRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDocumentService_AttachTag_CreatesTagOnFirstUse(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)
	tagRepo := new(MockTagRepository)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)
	tagRepo.On("FindByNameForEstate", ctx, estateID, "Arv").Return(nil, shared.ErrNotFound)
	tagRepo.On("Save", ctx, mock.AnythingOfType("*document.Tag")).Return(nil)
	tagRepo.On("AttachToDocument", ctx, doc.ID, mock.AnythingOfType("uuid.UUID")).Return(nil)

	service := newDocumentService(docRepo, tagRepo, new(MockObjectStorage))

	result, err := service.AttachTag(ctx, AttachTagInput{
		EstateID:   estateID,
		DocumentID: doc.ID,
		TagName:    "Arv",
	})

	require.NoError(t, err)
	assert.Equal(t, "arv", result.Name)
	tagRepo.AssertExpectations(t)
}

func TestDocumentService_AttachTag_ReusesExistingTag(t *testing.T) {
	ctx := context.Background()
	docRepo := new(MockDocumentRepository)
	tagRepo := new(MockTagRepository)

	estateID := uuid.New()
	doc := createTestDocument(t, estateID)
	tag, err := document.NewTag(estateID, "arv")
	require.NoError(t, err)

	docRepo.On("FindByIDForEstate", ctx, estateID, doc.ID).Return(doc, nil)
	tagRepo.On("FindByNameForEstate", ctx, estateID, "arv").Return(tag, nil)
	tagRepo.On("AttachToDocument", ctx, doc.ID, tag.ID).Return(nil)

	service := newDocumentService(docRepo, tagRepo, new(MockObjectStorage))

	result, err := service.AttachTag(ctx, AttachTagInput{
		EstateID:   estateID,
		DocumentID: doc.ID,
		TagName:    "arv",
	})

	require.NoError(t, err)
	assert.Equal(t, tag.ID, result.ID)
	tagRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDocumentService_ListTags_NorwegianOrder(t *testing.T) {
	ctx := context.Background()
	tagRepo := new(MockTagRepository)

	estateID := uuid.New()
	tags := make([]document.Tag, 0, 4)
	for _, name := range []string{"ål", "økonomi", "arv", "bolig"} {
		tag, err := document.NewTag(estateID, name)
		require.NoError(t, err)
		tags = append(tags, *tag)
	}
	tagRepo.On("FindAllForEstate", ctx, estateID).Return(tags, nil)

	service := newDocumentService(new(MockDocumentRepository), tagRepo, new(MockObjectStorage))

	result, err := service.ListTags(ctx, estateID)
	require.NoError(t, err)
	require.Len(t, result, 4)

	names := make([]string, 0, len(result))
	for _, tag := range result {
		names = append(names, tag.Name)
	}
	// ø and å sort after z in Norwegian, with å last
	assert.Equal(t, []string{"arv", "bolig", "økonomi", "ål"}, names)
}
