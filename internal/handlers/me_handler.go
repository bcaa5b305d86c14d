package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/httpresp"
	"github.com/VanderIG123/stylists-api/internal/models"
	ucAccount "github.com/VanderIG123/stylists-api/internal/usecase/account"
)

type MeHandler struct {
	stylist *ucAccount.GetStylist
	user    *ucAccount.GetUser
	log     *zap.Logger
}

func NewMeHandler(stylist *ucAccount.GetStylist, user *ucAccount.GetUser, log *zap.Logger) *MeHandler {
	return &MeHandler{stylist: stylist, user: user, log: log}
}

type meResponse struct {
	Type    models.AccountKind `json:"type"`
	Stylist *models.Stylist    `json:"stylist,omitempty"`
	User    *models.User       `json:"user,omitempty"`
}

// GetMe returns the profile behind the bearer token.
func (h *MeHandler) GetMe(c *gin.Context) {
	p := actor(c)
	resp := meResponse{Type: p.Type}

	var err error
	switch p.Type {
	case models.KindStylist:
		resp.Stylist, err = h.stylist.Execute(c.Request.Context(), p.ID)
	default:
		resp.User, err = h.user.Execute(c.Request.Context(), p, p.ID)
	}
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, resp)
}
