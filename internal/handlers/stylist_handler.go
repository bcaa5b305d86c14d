package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/VanderIG123/stylists-api/internal/domain/account"
	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/httpresp"
	"github.com/VanderIG123/stylists-api/internal/media"
	ucAccount "github.com/VanderIG123/stylists-api/internal/usecase/account"
)

type StylistHandler struct {
	list      *ucAccount.ListStylists
	get       *ucAccount.GetStylist
	update    *ucAccount.UpdateStylist
	portfolio *ucAccount.UploadPortfolio
	log       *zap.Logger
}

func NewStylistHandler(
	list *ucAccount.ListStylists,
	get *ucAccount.GetStylist,
	update *ucAccount.UpdateStylist,
	portfolio *ucAccount.UploadPortfolio,
	log *zap.Logger,
) *StylistHandler {
	return &StylistHandler{list: list, get: get, update: update, portfolio: portfolio, log: log}
}

func (h *StylistHandler) List(c *gin.Context) {
	stylists, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, stylists)
}

func (h *StylistHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	st, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, st)
}

func (h *StylistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch domain.StylistPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBinding(c, err)
		return
	}

	st, err := h.update.Execute(c.Request.Context(), actor(c), id, patch)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, st)
}

// UploadPortfolio accepts one multipart "image" field.
func (h *StylistHandler) UploadPortfolio(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+1<<20)
	fh, err := c.FormFile("image")
	if err != nil {
		httperr.Respond(c, h.log, media.ErrInvalidImage)
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.Respond(c, h.log, media.ErrInvalidImage)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxUploadBytes+1))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	st, err := h.portfolio.Execute(c.Request.Context(), actor(c), id, data)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, st)
}
