package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTracing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var sawSpan bool
	router := gin.New()
	router.Use(Tracing("test"))
	router.GET("/goals/:id", func(c *gin.Context) {
		sawSpan = trace.SpanFromContext(c.Request.Context()).SpanContext().IsValid()
		c.Status(http.StatusOK)
	})
	router.GET("/fail", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	for _, path := range []string{"/goals/42", "/fail"} {
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.True(t, sawSpan, "handler should run inside the request span")

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "GET /goals/:id", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.status_code", 200))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
