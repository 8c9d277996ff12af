package export

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"

	"workshop-invoicing-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice(items int) *models.Invoice {
	inv := &models.Invoice{SNo: "007", CustomerName: "Ali Khan", Date: "07/03/2025"}
	for i := 0; i < items; i++ {
		rate := float64(100 * (i + 1))
		inv.Services = append(inv.Services, models.Service{
			Description: fmt.Sprintf("Service %d", i+1),
			Rate:        rate,
			Amount:      rate,
		})
		inv.Total += rate
	}
	return inv
}

func sampleWorkshop() *models.WorkshopInfo {
	return &models.WorkshopInfo{
		Name:          "AUTO MASTER",
		Tagline:       "Denting & Painting",
		ReferenceNo:   "R-1",
		VendorNo:      "V-2",
		STRN:          "S-3",
		ContactPerson: "Latif",
		Phone:         "0300-0000000",
		Email:         "autokashif@example.com",
		ServiceList:   []string{"Denting", "Painting", "Mechanic"},
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(sampleInvoice(2), sampleWorkshop(), "PKR")

	assert.Equal(t, "AUTO MASTER", doc.WorkshopName)
	assert.Equal(t, "-Denting & Painting-", doc.Tagline)
	assert.Equal(t, []string{"Reference No: R-1", "Vendor No: V-2", "STRN: S-3"}, doc.References)
	assert.Equal(t, "Services: Denting | Painting | Mechanic", doc.ServicesLine)
	assert.Equal(t, "TOTAL: PKR 300.00", doc.Total)
	assert.Equal(t, []string{"Latif 0300-0000000", "autokashif@example.com"}, doc.Footer)

	require.Len(t, doc.Rows, MinTableRows)
	assert.Equal(t, Row{Description: "Service 2", Rate: "PKR 200.00", Amount: "PKR 200.00"}, doc.Rows[1])
	assert.Equal(t, Row{}, doc.Rows[4])
}

func TestNewDocument_WithoutWorkshop(t *testing.T) {
	inv := sampleInvoice(7)
	inv.CustomerName = ""
	doc := NewDocument(inv, nil, "USD")

	assert.Empty(t, doc.WorkshopName)
	assert.Empty(t, doc.References)
	assert.Empty(t, doc.Footer)
	assert.Equal(t, blank, doc.Customer)
	assert.Len(t, doc.Rows, 7)
	assert.Equal(t, "USD 100.00", doc.Rows[0].Rate)
}

func TestShare(t *testing.T) {
	inv := sampleInvoice(3)

	got := Share(inv, "PKR")
	assert.Equal(t, SharePayload{
		Title:        "Invoice #007 - Ali Khan",
		Text:         "Invoice for Ali Khan - Total: PKR 600.00",
		FallbackText: "Invoice #007 for Ali Khan - Total: PKR 600.00",
	}, got)
}

func TestFilename(t *testing.T) {
	inv := sampleInvoice(0)
	assert.Equal(t, "invoice-007-Ali Khan.pdf", Filename(inv, "pdf"))

	inv.CustomerName = `a/b\c"d`
	assert.Equal(t, "invoice-007-a_b_c_d.png", Filename(inv, "png"))
}

func TestRenderPDF(t *testing.T) {
	var small, large bytes.Buffer
	require.NoError(t, RenderPDF(&small, NewDocument(sampleInvoice(3), sampleWorkshop(), "PKR")))
	require.NoError(t, RenderPDF(&large, NewDocument(sampleInvoice(80), nil, "PKR")))

	assert.True(t, bytes.HasPrefix(small.Bytes(), []byte("%PDF-")))
	assert.Contains(t, small.String(), "/Count 1")
	assert.Contains(t, large.String(), "/Count 3")
}

func TestRenderPNG(t *testing.T) {
	doc := NewDocument(sampleInvoice(3), sampleWorkshop(), "PKR")

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, doc))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, canvasWidth*ImageScale, b.Dx())
	assert.Equal(t, layoutImage(doc).y*ImageScale, b.Dy())

	r, g, bl, _ := img.At(0, b.Dy()/2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, bl}, "table area is on white")
	r, g, bl, _ = img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{220 * 0x101, 38 * 0x101, 38 * 0x101}, [3]uint32{r, g, bl}, "header band is red")
}
