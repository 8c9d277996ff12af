package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Instrument())
	r.GET("/api/invoices/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/invoices/:id", "200"))
	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/invoices/"+id, nil))
	}
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/invoices/:id", "200"))

	assert.Equal(t, 2.0, after-before)
}

func TestRecorders(t *testing.T) {
	created := testutil.ToFloat64(invoiceEvents.WithLabelValues("created"))
	RecordInvoiceCreated()
	assert.Equal(t, created+1, testutil.ToFloat64(invoiceEvents.WithLabelValues("created")))

	failed := testutil.ToFloat64(loginAttempts.WithLabelValues("failure"))
	RecordLogin(false)
	assert.Equal(t, failed+1, testutil.ToFloat64(loginAttempts.WithLabelValues("failure")))

	pdf := testutil.ToFloat64(exports.WithLabelValues("pdf"))
	RecordExport("pdf")
	assert.Equal(t, pdf+1, testutil.ToFloat64(exports.WithLabelValues("pdf")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordInvoiceDeleted()
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "workshop_invoicing_invoices_events_total")
}

func TestRegistry_IncludesRuntimeCollectors(t *testing.T) {
	families, err := Registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
	assert.True(t, names["go_memstats_alloc_bytes"])
}
