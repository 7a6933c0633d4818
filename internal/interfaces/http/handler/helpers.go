package handler

import (
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/interfaces/http/dto"
	"github.com/arvebo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindListFilter binds pagination query parameters, responding with 400
// on failure. The bool result reports whether binding succeeded.
func (h *BaseHandler) bindListFilter(c *gin.Context) (shared.Filter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return shared.Filter{}, false
	}
	return req.ToFilter(), true
}

// bindIDParam parses the :id path parameter as a UUID, responding with
// 400 on failure
func (h *BaseHandler) bindIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// middlewareCanManage reports whether the caller's estate role may
// manage members and estate lifecycle
func middlewareCanManage(c *gin.Context) bool {
	return middleware.GetEstateRole(c).CanManageMembers()
}
