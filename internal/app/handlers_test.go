package app

import (
	"bytes"
	"io"
	"testing"

	"eventdemo/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHandleActivateWritesSingleLine(t *testing.T) {
	out := &bytes.Buffer{}
	log := logger.NewZerolog(io.Discard, zerolog.Disabled)
	h := NewHandlers(out, log)

	h.HandleActivate()

	assert.Equal(t, "¡Botón clickeado!\n", out.String())
}

func TestHandleActivateOncePerCall(t *testing.T) {
	out := &bytes.Buffer{}
	log := logger.NewZerolog(io.Discard, zerolog.Disabled)
	h := NewHandlers(out, log)

	h.HandleActivate()
	h.HandleActivate()

	assert.Equal(t, ClickMessage+"\n"+ClickMessage+"\n", out.String())
}
