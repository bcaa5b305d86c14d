package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/VanderIG123/stylists-api/internal/domain/account"
	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/httpresp"
	ucAccount "github.com/VanderIG123/stylists-api/internal/usecase/account"
)

type UserHandler struct {
	get    *ucAccount.GetUser
	update *ucAccount.UpdateUser
	log    *zap.Logger
}

func NewUserHandler(get *ucAccount.GetUser, update *ucAccount.UpdateUser, log *zap.Logger) *UserHandler {
	return &UserHandler{get: get, update: update, log: log}
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), actor(c), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBinding(c, err)
		return
	}

	u, err := h.update.Execute(c.Request.Context(), actor(c), id, patch)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, u)
}
