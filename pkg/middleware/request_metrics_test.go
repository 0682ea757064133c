package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hellodesc/hellodesc/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics_CountsByRouteAndStatus(t *testing.T) {
	r := gin.New()
	r.Use(RequestMetrics())
	r.GET("/ok/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/go", func(c *gin.Context) { c.Redirect(http.StatusFound, "/") })

	okBefore := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/ok/:id", "200"))
	redirBefore := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/go", "302"))
	missBefore := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("unmatched", "404"))

	for _, p := range []string{"/ok/1", "/ok/2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/go", nil))
	require.Equal(t, http.StatusFound, w.Code)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	require.Equal(t, okBefore+2, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/ok/:id", "200")))
	require.Equal(t, redirBefore+1, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/go", "302")))
	require.Equal(t, missBefore+1, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("unmatched", "404")))
}
