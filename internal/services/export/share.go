package export

import (
	"fmt"
	"strings"

	"workshop-invoicing-backend/internal/models"
)

// SharePayload is what a client hands to the platform share sheet. Text goes
// to the share sheet, FallbackText to the clipboard when sharing is
// unavailable.
type SharePayload struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	FallbackText string `json:"fallbackText"`
}

func Share(invoice *models.Invoice, currency string) SharePayload {
	total := Money(currency, invoice.Total)
	return SharePayload{
		Title:        fmt.Sprintf("Invoice #%s - %s", invoice.SNo, invoice.CustomerName),
		Text:         fmt.Sprintf("Invoice for %s - Total: %s", invoice.CustomerName, total),
		FallbackText: fmt.Sprintf("Invoice #%s for %s - Total: %s", invoice.SNo, invoice.CustomerName, total),
	}
}

var filenameReplacer = strings.NewReplacer("/", "_", `\`, "_", `"`, "_", "\r", "", "\n", "")

// Filename returns the download name for an exported invoice, e.g.
// "invoice-007-Ali Khan.pdf".
func Filename(invoice *models.Invoice, ext string) string {
	name := filenameReplacer.Replace(strings.TrimSpace(invoice.CustomerName))
	return fmt.Sprintf("invoice-%s-%s.%s", invoice.SNo, name, ext)
}
