package middleware

import (
	"errors"
	"net/http"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Estate membership context keys
const (
	EstateIDKey     = "estate_id"
	EstateRoleKey   = "estate_member_role"
	EstateMemberKey = "estate_member"
)

// EstateGuardConfig holds configuration for the estate membership guard
type EstateGuardConfig struct {
	// Members is required to resolve the caller's membership
	Members estate.MemberRepository
	// ParamName is the path parameter holding the estate ID (default "estate_id")
	ParamName string
	// Logger for guard logging
	Logger *zap.Logger
}

// EstateGuard returns middleware that resolves the caller's membership in
// the estate named by the path parameter. Non-members get 404 so that
// estate IDs don't leak. Members with the viewer role are blocked from
// mutating methods.
func EstateGuard(members estate.MemberRepository) gin.HandlerFunc {
	return EstateGuardWithConfig(EstateGuardConfig{Members: members})
}

// EstateGuardWithConfig returns the estate membership guard with custom config
func EstateGuardWithConfig(cfg EstateGuardConfig) gin.HandlerFunc {
	paramName := cfg.ParamName
	if paramName == "" {
		paramName = "estate_id"
	}

	return func(c *gin.Context) {
		estateID, err := uuid.Parse(c.Param(paramName))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_VALIDATION",
					"message": "Invalid estate ID",
				},
			})
			return
		}

		userID, err := uuid.Parse(GetJWTUserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		member, err := cfg.Members.FindByEstateAndUser(c.Request.Context(), estateID, userID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// Same response whether the estate is missing or the
				// caller simply isn't a member of it
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "ERR_NOT_FOUND",
						"message": "Estate not found",
					},
				})
				return
			}
			if cfg.Logger != nil {
				cfg.Logger.Error("Failed to resolve estate membership",
					zap.String("estate_id", estateID.String()),
					zap.String("user_id", userID.String()),
					zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_INTERNAL",
					"message": "An internal error occurred",
				},
			})
			return
		}

		if isWriteMethod(c.Request.Method) && !member.Role.CanEdit() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_FORBIDDEN",
					"message": "Viewers cannot modify the estate",
				},
			})
			return
		}

		c.Set(EstateIDKey, estateID)
		c.Set(EstateRoleKey, member.Role)
		c.Set(EstateMemberKey, member)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithEstateID(ctx, log, estateID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// GetEstateID retrieves the resolved estate ID from gin.Context
func GetEstateID(c *gin.Context) uuid.UUID {
	if id, exists := c.Get(EstateIDKey); exists {
		if estateID, ok := id.(uuid.UUID); ok {
			return estateID
		}
	}
	return uuid.Nil
}

// GetEstateRole retrieves the caller's member role from gin.Context
func GetEstateRole(c *gin.Context) estate.MemberRole {
	if role, exists := c.Get(EstateRoleKey); exists {
		if memberRole, ok := role.(estate.MemberRole); ok {
			return memberRole
		}
	}
	return ""
}

// GetEstateMember retrieves the caller's membership from gin.Context
func GetEstateMember(c *gin.Context) *estate.Member {
	if m, exists := c.Get(EstateMemberKey); exists {
		if member, ok := m.(*estate.Member); ok {
			return member
		}
	}
	return nil
}

// RequireRoleManagement blocks callers whose member role cannot manage
// members. Must run after EstateGuard.
func RequireRoleManagement() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetEstateRole(c).CanManageMembers() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_FORBIDDEN",
					"message": "Only administrators and responsible heirs can manage members",
				},
			})
			return
		}
		c.Next()
	}
}
