package handler

import (
	"net/http"

	"workshop-invoicing-backend/internal/services/workshop"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WorkshopHandler struct {
	workshop *workshop.WorkshopService
	log      logrus.FieldLogger
}

func NewWorkshopHandler(w *workshop.WorkshopService, log logrus.FieldLogger) *WorkshopHandler {
	return &WorkshopHandler{workshop: w, log: log}
}

func (h *WorkshopHandler) Get(c *gin.Context) {
	info, err := h.workshop.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Update upserts the workshop info. Fields missing from the body keep their
// stored value.
func (h *WorkshopHandler) Update(c *gin.Context) {
	var payload workshop.UpdateInput
	if !bindJSON(c, &payload) {
		return
	}

	info, err := h.workshop.Update(c.Request.Context(), currentUserID(c), payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
