package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Save(ctx context.Context, member *estate.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*estate.Member, error) {
	args := m.Called(ctx, estateID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estate.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByEstateAndUser(ctx context.Context, estateID, userID uuid.UUID) (*estate.Member, error) {
	args := m.Called(ctx, estateID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estate.Member), args.Error(1)
}

func (m *MockMemberRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID) ([]estate.Member, error) {
	args := m.Called(ctx, estateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]estate.Member), args.Error(1)
}

func (m *MockMemberRepository) CountByRole(ctx context.Context, estateID uuid.UUID, role estate.MemberRole) (int64, error) {
	args := m.Called(ctx, estateID, role)
	return args.Get(0).(int64), args.Error(1)
}

func newEstateTestRouter(repo estate.MemberRepository, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(JWTUserIDKey, userID.String())
	})
	group := r.Group("/api/v1/estates/:estate_id")
	group.Use(EstateGuard(repo))
	group.GET("/tasks", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": string(GetEstateRole(c))})
	})
	group.POST("/tasks", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	group.DELETE("/members/:id", RequireRoleManagement(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func testMember(t *testing.T, estateID, userID uuid.UUID, role estate.MemberRole) *estate.Member {
	t.Helper()
	member, err := estate.NewMember(estateID, userID, role)
	require.NoError(t, err)
	return member
}

func TestEstateGuard_MemberPasses(t *testing.T) {
	estateID := uuid.New()
	userID := uuid.New()
	repo := new(MockMemberRepository)
	repo.On("FindByEstateAndUser", mock.Anything, estateID, userID).
		Return(testMember(t, estateID, userID, estate.MemberRoleHeir), nil)

	r := newEstateTestRouter(repo, userID)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/estates/"+estateID.String()+"/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "heir")
}

func TestEstateGuard_NonMemberGetsNotFound(t *testing.T) {
	estateID := uuid.New()
	userID := uuid.New()
	repo := new(MockMemberRepository)
	repo.On("FindByEstateAndUser", mock.Anything, estateID, userID).
		Return(nil, shared.ErrNotFound)

	r := newEstateTestRouter(repo, userID)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/estates/"+estateID.String()+"/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
}

func TestEstateGuard_ViewerBlockedFromWrites(t *testing.T) {
	estateID := uuid.New()
	userID := uuid.New()
	repo := new(MockMemberRepository)
	repo.On("FindByEstateAndUser", mock.Anything, estateID, userID).
		Return(testMember(t, estateID, userID, estate.MemberRoleViewer), nil)

	r := newEstateTestRouter(repo, userID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/estates/"+estateID.String()+"/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Reads stay open to viewers
	req = httptest.NewRequest(http.MethodGet, "/api/v1/estates/"+estateID.String()+"/tasks", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEstateGuard_InvalidEstateID(t *testing.T) {
	repo := new(MockMemberRepository)
	r := newEstateTestRouter(repo, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/estates/not-a-uuid/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "FindByEstateAndUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequireRoleManagement_HeirBlocked(t *testing.T) {
	estateID := uuid.New()
	userID := uuid.New()
	repo := new(MockMemberRepository)
	repo.On("FindByEstateAndUser", mock.Anything, estateID, userID).
		Return(testMember(t, estateID, userID, estate.MemberRoleHeir), nil)

	r := newEstateTestRouter(repo, userID)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/estates/"+estateID.String()+"/members/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleManagement_AdministratorAllowed(t *testing.T) {
	estateID := uuid.New()
	userID := uuid.New()
	repo := new(MockMemberRepository)
	repo.On("FindByEstateAndUser", mock.Anything, estateID, userID).
		Return(testMember(t, estateID, userID, estate.MemberRoleAdministrator), nil)

	r := newEstateTestRouter(repo, userID)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/estates/"+estateID.String()+"/members/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
