package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
)

// HeaderUserID is the header carrying the identifier the identity
// provider assigned to the user.
const HeaderUserID = "X-User-ID"

var errUserIDMissing = fmt.Errorf("the %s header must be set", HeaderUserID)

type errorResponse struct {
	Error string `json:"error" example:"the X-User-ID header must be set"`
}

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.ContextURL), url.String())
		c.Next()
	}
}

// IdentityMiddleware stores the user identifier of the request in the
// context. Requests without one are rejected, except for OPTIONS requests.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderUserID))

		if id == "" && c.Request.Method != http.MethodOptions {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Error: errUserIDMissing.Error(),
			})
			return
		}

		c.Set(string(models.ContextUserID), id)
		c.Next()
	}
}

// LocaleSelector returns the locale a user selected.
type LocaleSelector interface {
	Selected(ctx context.Context, userID string) (i18n.Locale, bool, error)
	Default() i18n.Locale
}

// LocaleMiddleware resolves the locale of the request and stores it in the
// context.
//
// The first of these wins: a valid "locale" query parameter, the selection
// stored for the user, a supported language in the Accept-Language header,
// the default locale.
func LocaleMiddleware(selector LocaleSelector) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := resolveLocale(c, selector)

		c.Set(string(models.ContextLocale), string(locale))
		c.Header("Content-Language", string(locale))
		c.Next()
	}
}

func resolveLocale(c *gin.Context, selector LocaleSelector) i18n.Locale {
	if param, ok := c.GetQuery("locale"); ok {
		if locale, err := i18n.ParseLocale(param); err == nil {
			return locale
		}
	}

	userID := c.GetString(string(models.ContextUserID))
	if userID != "" {
		locale, ok, err := selector.Selected(c.Request.Context(), userID)
		if err != nil {
			// Fall through to the headers
			log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("LocaleMiddleware")
		} else if ok {
			return locale
		}
	}

	if locale, ok := i18n.MatchAcceptLanguage(c.GetHeader("Accept-Language")); ok {
		return locale
	}

	return selector.Default()
}

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
func registerPrometheusMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed to cleanly exit.
func unregisterPrometheusMetrics() bool {
	for _, c := range metrics {
		if ok := prometheus.Unregister(c); !ok {
			return false
		}
	}

	return true
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Use the route pattern to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.FullPath()
		if url == "" {
			url = "unmatched"
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
