package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(GinMiddleware())
	engine.GET("/api/careers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/api/careers/:id", "200"))
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/careers/7", nil))
	after := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/api/careers/:id", "200"))

	assert.Equal(t, before+1, after)
}

func TestStatusTransition(t *testing.T) {
	before := testutil.ToFloat64(statusTransitions.WithLabelValues("reviewing", "true"))
	StatusTransition("reviewing", true)
	assert.Equal(t, before+1, testutil.ToFloat64(statusTransitions.WithLabelValues("reviewing", "true")))
}

func TestAsynqMetricsMiddleware(t *testing.T) {
	failing := AsynqMetricsMiddleware()(asynq.HandlerFunc(func(context.Context, *asynq.Task) error {
		return errors.New("boom")
	}))

	before := testutil.ToFloat64(taskFailedTotal.WithLabelValues("test:fail"))
	assert.Error(t, failing.ProcessTask(context.Background(), asynq.NewTask("test:fail", nil)))
	assert.Equal(t, before+1, testutil.ToFloat64(taskFailedTotal.WithLabelValues("test:fail")))
}
