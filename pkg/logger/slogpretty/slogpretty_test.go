package slogpretty

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler_Handle(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := setupPrettySlog(&buf)

	log.With(slog.String("op", "test")).
		WithGroup("employee").
		Info("employee created", slog.String("employee_id", "e-1"))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "employee created")
	assert.Contains(t, out, `"op": "test"`)
	assert.Contains(t, out, `"employee": {`)
	assert.Contains(t, out, `"employee_id": "e-1"`)
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{envLocal, envDev, envProd, "unknown"} {
		assert.NotNil(t, SetupLogger(env), env)
	}
}
