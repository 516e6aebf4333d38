package app

import (
	"eventdemo/internal/logger"
	"eventdemo/internal/shell"
)

type Lifecycle struct {
	shell      *shell.Shell
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(sh *shell.Shell, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		shell:      sh,
		logger:     log,
		isShutdown: false,
	}
}

// Shutdown closes the window and is safe to call more than once.
func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	l.shell.Shutdown()

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
