package app

import (
	"fmt"
	"io"

	"eventdemo/internal/logger"
)

// ClickMessage is the single line written per activation.
const ClickMessage = "¡Botón clickeado!"

// Handlers holds the event handlers for user interactions. Output goes to
// the injected writer, stdout in production.
type Handlers struct {
	out    io.Writer
	logger logger.Logger
}

func NewHandlers(out io.Writer, log logger.Logger) *Handlers {
	return &Handlers{
		out:    out,
		logger: log,
	}
}

// HandleActivate runs once per button activation, on the event-loop
// thread.
func (h *Handlers) HandleActivate() {
	fmt.Fprintln(h.out, ClickMessage)
	h.logger.Debug("Handlers", "control activated", nil)
}
