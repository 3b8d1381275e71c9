package tracer

import (
	"context"
	"testing"

	"novamind-be/internal/config"
	"novamind-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabled(t *testing.T) {
	cfg := &config.Config{}

	shutdown := InitTracer(cfg, logger.NewNopLogger())

	assert.NoError(t, shutdown(context.Background()))
}
