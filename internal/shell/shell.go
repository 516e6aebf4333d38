package shell

import (
	"fmt"
	"sync"

	"eventdemo/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// State tracks the window lifecycle. The only transition is open to
// closed, and it is terminal.
type State int

const (
	StateOpen State = iota
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Shell owns the single window, the single control and the dispatch of
// activation events to the registered handler. Handlers run synchronously
// on the event-loop thread, one activation at a time.
type Shell struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	mu         sync.Mutex
	state      State
	control    *widget.Button
	onActivate func()
}

// New creates a shell with its window titled as given. The display is not
// probed; use NewDesktop for production startup.
func New(fyneApp fyne.App, title string, log logger.Logger) *Shell {
	window := fyneApp.NewWindow(title)
	window.SetMaster()

	s := &Shell{
		fyneApp: fyneApp,
		window:  window,
		logger:  log,
		state:   StateOpen,
	}

	window.SetOnClosed(s.handleClosed)

	log.Info("Shell", "window created", map[string]interface{}{
		"title": title,
	})

	return s
}

// NewDesktop probes for a reachable windowing session before creating the
// shell. Without one it fails with ErrDisplayUnavailable.
func NewDesktop(fyneApp fyne.App, title string, log logger.Logger) (*Shell, error) {
	if !sessionAvailable() {
		return nil, fmt.Errorf("creating window %q: %w", title, ErrDisplayUnavailable)
	}
	return New(fyneApp, title, log), nil
}

// AttachControl creates the button and binds onActivate as its activation
// handler. The control fills the window with default packing.
func (s *Shell) AttachControl(label string, onActivate func()) {
	s.mu.Lock()
	s.onActivate = onActivate
	s.control = widget.NewButton(label, s.dispatchActivation)
	s.mu.Unlock()

	s.window.SetContent(container.NewVBox(s.control))

	s.logger.Info("Shell", "control attached", map[string]interface{}{
		"label": label,
	})
}

// Run shows the window and blocks in the event loop until the window is
// closed.
func (s *Shell) Run() {
	s.logger.Info("Shell", "entering event loop", nil)
	s.window.Show()
	s.fyneApp.Run()
	s.logger.Info("Shell", "event loop finished", nil)
}

func (s *Shell) Window() fyne.Window {
	return s.window
}

func (s *Shell) Control() *widget.Button {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.control
}

func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Shutdown closes the window if it is still open. Safe to call more than
// once and from any goroutine; the closed state is terminal either way.
func (s *Shell) Shutdown() {
	s.mu.Lock()
	open := s.state == StateOpen
	s.mu.Unlock()

	if open {
		fyne.Do(func() {
			s.window.Close()
		})
	}
}

// dispatchActivation is the single point through which every activation
// event reaches the handler. Activations arriving after the window closed
// are dropped.
func (s *Shell) dispatchActivation() {
	s.mu.Lock()
	if s.state != StateOpen {
		s.mu.Unlock()
		s.logger.Debug("Shell", "activation ignored after close", nil)
		return
	}
	handler := s.onActivate
	s.mu.Unlock()

	if handler == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Shell", fmt.Errorf("activation handler panic: %v", r), nil)
		}
	}()

	handler()
}

func (s *Shell) handleClosed() {
	s.mu.Lock()
	already := s.state == StateClosed
	s.state = StateClosed
	s.mu.Unlock()

	if already {
		return
	}

	s.logger.Info("Shell", "window closed", nil)
}
