package export

import (
	"fmt"
	"strings"

	"workshop-invoicing-backend/internal/models"
)

// MinTableRows is the number of rows the service table is padded to so short
// invoices keep the printed form's shape.
const MinTableRows = 5

const blank = "________________"

// Row is one rendered line of the service table.
type Row struct {
	Description string
	Rate        string
	Amount      string
}

// Document is the renderer-neutral layout of an invoice. PDF and PNG output
// are both drawn from it so they carry the same text.
type Document struct {
	WorkshopName string
	Tagline      string
	References   []string
	ServicesLine string

	SNo      string
	Customer string
	Date     string

	Rows  []Row
	Total string

	Footer []string
}

// NewDocument lays out invoice for printing. workshop may be nil, in which
// case the header and footer are left empty.
func NewDocument(invoice *models.Invoice, workshop *models.WorkshopInfo, currency string) Document {
	doc := Document{
		SNo:      invoice.SNo,
		Customer: orBlank(invoice.CustomerName),
		Date:     invoice.Date,
		Total:    fmt.Sprintf("TOTAL: %s", Money(currency, invoice.Total)),
	}

	for _, s := range invoice.Services {
		doc.Rows = append(doc.Rows, Row{
			Description: orBlank(s.Description),
			Rate:        Money(currency, s.Rate),
			Amount:      Money(currency, s.Amount),
		})
	}
	for len(doc.Rows) < MinTableRows {
		doc.Rows = append(doc.Rows, Row{})
	}

	if workshop == nil {
		return doc
	}

	doc.WorkshopName = workshop.Name
	if workshop.Tagline != "" {
		doc.Tagline = "-" + workshop.Tagline + "-"
	}
	doc.References = []string{
		"Reference No: " + workshop.ReferenceNo,
		"Vendor No: " + workshop.VendorNo,
		"STRN: " + workshop.STRN,
	}
	if len(workshop.ServiceList) > 0 {
		doc.ServicesLine = "Services: " + strings.Join(workshop.ServiceList, " | ")
	}

	contact := strings.TrimSpace(workshop.ContactPerson + " " + workshop.Phone)
	for _, line := range []string{contact, workshop.Email, workshop.Address, workshop.Facebook, workshop.Instagram} {
		if line != "" {
			doc.Footer = append(doc.Footer, line)
		}
	}
	return doc
}

// Money formats an amount the way it is printed on invoices, e.g. "PKR 1500.00".
func Money(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

func orBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return blank
	}
	return s
}
