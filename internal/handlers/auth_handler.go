package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/dto"
	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/httpresp"
	"github.com/VanderIG123/stylists-api/internal/models"
	ucAccount "github.com/VanderIG123/stylists-api/internal/usecase/account"
)

type AuthHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
	log      *zap.Logger
}

func NewAuthHandler(register *ucAccount.Register, login *ucAccount.Login, log *zap.Logger) *AuthHandler {
	return &AuthHandler{register: register, login: login, log: log}
}

// --------- Register ---------

func (h *AuthHandler) RegisterStylist(c *gin.Context) {
	var req dto.RegisterStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}

	session, err := h.register.Stylist(c.Request.Context(), req.Input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, session)
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}

	session, err := h.register.User(c.Request.Context(), req.Input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, session)
}

// --------- Login ---------

func (h *AuthHandler) LoginStylist(c *gin.Context) {
	h.loginAs(c, models.KindStylist)
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	h.loginAs(c, models.KindUser)
}

func (h *AuthHandler) loginAs(c *gin.Context, kind models.AccountKind) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}

	session, err := h.login.Execute(c.Request.Context(), kind, req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, session)
}
