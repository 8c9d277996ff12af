package handler

import (
	"bytes"
	"errors"
	"mime"
	"net/http"

	"workshop-invoicing-backend/internal/metrics"
	"workshop-invoicing-backend/internal/models"
	"workshop-invoicing-backend/internal/services/export"
	"workshop-invoicing-backend/internal/services/invoicing"
	"workshop-invoicing-backend/internal/services/workshop"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type ExportHandler struct {
	invoices *invoicing.InvoiceService
	workshop *workshop.WorkshopService
	currency string
	log      logrus.FieldLogger
}

func NewExportHandler(invoices *invoicing.InvoiceService, w *workshop.WorkshopService, currency string, log logrus.FieldLogger) *ExportHandler {
	return &ExportHandler{invoices: invoices, workshop: w, currency: currency, log: log}
}

// load fetches the invoice and the workshop header in parallel. A user
// without workshop info gets a nil header rather than an error.
func (h *ExportHandler) load(c *gin.Context) (*models.Invoice, *models.WorkshopInfo, bool) {
	id, ok := invoiceID(c)
	if !ok {
		return nil, nil, false
	}
	userID := currentUserID(c)

	var (
		invoice *models.Invoice
		info    *models.WorkshopInfo
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		invoice, err = h.invoices.Get(ctx, userID, id)
		return err
	})
	g.Go(func() error {
		var err error
		info, err = h.workshop.Get(ctx, userID)
		if errors.Is(err, workshop.ErrNotFound) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(c, h.log, err)
		return nil, nil, false
	}
	return invoice, info, true
}

func (h *ExportHandler) PDF(c *gin.Context) {
	invoice, info, ok := h.load(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.RenderPDF(&buf, export.NewDocument(invoice, info, h.currency)); err != nil {
		respondError(c, h.log, err)
		return
	}
	metrics.RecordExport("pdf")
	sendAttachment(c, export.Filename(invoice, "pdf"), "application/pdf", buf.Bytes())
}

func (h *ExportHandler) Image(c *gin.Context) {
	invoice, info, ok := h.load(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.RenderPNG(&buf, export.NewDocument(invoice, info, h.currency)); err != nil {
		respondError(c, h.log, err)
		return
	}
	metrics.RecordExport("png")
	sendAttachment(c, export.Filename(invoice, "png"), "image/png", buf.Bytes())
}

func (h *ExportHandler) Share(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	invoice, err := h.invoices.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	metrics.RecordExport("share")
	c.JSON(http.StatusOK, export.Share(invoice, h.currency))
}

func sendAttachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, contentType, body)
}
