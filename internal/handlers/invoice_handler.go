package handler

import (
	"net/http"

	"workshop-invoicing-backend/internal/metrics"
	"workshop-invoicing-backend/internal/services/invoicing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type InvoiceHandler struct {
	invoices *invoicing.InvoiceService
	log      logrus.FieldLogger
}

func NewInvoiceHandler(invoices *invoicing.InvoiceService, log logrus.FieldLogger) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, log: log}
}

func invoiceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid invoice ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoices.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload invoicing.CreateInput
	if !bindJSON(c, &payload) {
		return
	}

	invoice, err := h.invoices.Create(c.Request.Context(), currentUserID(c), payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	metrics.RecordInvoiceCreated()
	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	invoice, err := h.invoices.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	if err := h.invoices.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	metrics.RecordInvoiceDeleted()
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
