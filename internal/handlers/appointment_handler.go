package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/dto"
	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/httpresp"
	"github.com/VanderIG123/stylists-api/internal/models"
	ucAppointment "github.com/VanderIG123/stylists-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create           *ucAppointment.CreateAppointment
	accept           *ucAppointment.AcceptAppointment
	reject           *ucAppointment.RejectAppointment
	suggest          *ucAppointment.SuggestAlternative
	acceptSuggestion *ucAppointment.AcceptSuggestion
	rejectSuggestion *ucAppointment.RejectSuggestion
	list             *ucAppointment.ListAppointments
	log              *zap.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	accept *ucAppointment.AcceptAppointment,
	reject *ucAppointment.RejectAppointment,
	suggest *ucAppointment.SuggestAlternative,
	acceptSuggestion *ucAppointment.AcceptSuggestion,
	rejectSuggestion *ucAppointment.RejectSuggestion,
	list *ucAppointment.ListAppointments,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:           create,
		accept:           accept,
		reject:           reject,
		suggest:          suggest,
		acceptSuggestion: acceptSuggestion,
		rejectSuggestion: rejectSuggestion,
		list:             list,
		log:              log,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), req.Input(actor(c)))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var q dto.AppointmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badBinding(c, err)
		return
	}

	filter, err := q.Filter()
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	aps, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Accept(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ap, err := h.accept.Execute(c.Request.Context(), actor(c), id)
	h.write(c, ap, err)
}

func (h *AppointmentHandler) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ap, err := h.reject.Execute(c.Request.Context(), actor(c), id)
	h.write(c, ap, err)
}

func (h *AppointmentHandler) Suggest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SuggestAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}

	ap, err := h.suggest.Execute(c.Request.Context(), ucAppointment.SuggestAppointmentInput{
		Actor:         actor(c),
		AppointmentID: id,
		SuggestedDate: req.SuggestedDate,
		SuggestedTime: req.SuggestedTime,
	})
	h.write(c, ap, err)
}

func (h *AppointmentHandler) AcceptSuggestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ap, err := h.acceptSuggestion.Execute(c.Request.Context(), actor(c), id)
	h.write(c, ap, err)
}

func (h *AppointmentHandler) RejectSuggestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ap, err := h.rejectSuggestion.Execute(c.Request.Context(), actor(c), id)
	h.write(c, ap, err)
}

func (h *AppointmentHandler) write(c *gin.Context, ap *models.Appointment, err error) {
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}
