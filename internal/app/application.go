package app

import (
	"io"
	"os"

	"eventdemo/internal/logger"
	"eventdemo/internal/shell"
	"eventdemo/internal/shutdown"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName     = "Ejemplo de programación basada en eventos"
	AppID       = "com.eventdemo.eventdemo"
	AppVersion  = "1.0.0"
	ButtonLabel = "Haz clic aquí"
)

type Application struct {
	fyneApp     fyne.App
	shell       *shell.Shell
	handlers    *Handlers
	lifecycle   *Lifecycle
	shutdownMgr *shutdown.Manager
	logger      logger.Logger
}

// NewApplication wires the full desktop application: window, control,
// activation handler and shutdown path. Fails with
// shell.ErrDisplayUnavailable in a headless environment.
func NewApplication() (*Application, error) {
	log := logger.NewConsoleLogger(logger.LevelFromEnv())

	log.Info("Application", "starting application", map[string]interface{}{
		"version": AppVersion,
	})

	fyneApp := fyneapp.NewWithID(AppID)

	sh, err := shell.NewDesktop(fyneApp, AppName, log)
	if err != nil {
		return nil, err
	}

	return newApplication(fyneApp, sh, os.Stdout, log), nil
}

func newApplication(fyneApp fyne.App, sh *shell.Shell, out io.Writer, log logger.Logger) *Application {
	handlers := NewHandlers(out, log)
	sh.AttachControl(ButtonLabel, handlers.HandleActivate)

	lifecycle := NewLifecycle(sh, log)

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(lifecycle)

	application := &Application{
		fyneApp:     fyneApp,
		shell:       sh,
		handlers:    handlers,
		lifecycle:   lifecycle,
		shutdownMgr: shutdownMgr,
		logger:      log,
	}

	log.Info("Application", "initialization complete", nil)
	return application
}

// Run blocks in the event loop until the window is closed or a shutdown
// signal arrives.
func (a *Application) Run() error {
	a.shell.Window().SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
	})

	a.shutdownMgr.Listen()
	go func() {
		<-a.shutdownMgr.Done()
		a.fyneApp.Quit()
	}()

	a.shell.Run()
	return nil
}
