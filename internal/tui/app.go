package tui

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/multicheck/internal/baseline"
	"github.com/Iron-Ham/multicheck/internal/errors"
	"github.com/Iron-Ham/multicheck/internal/event"
	"github.com/Iron-Ham/multicheck/internal/logging"
	"github.com/Iron-Ham/multicheck/internal/tui/keymap"
)

// App wraps the Bubbletea program
type App struct {
	program   *tea.Program
	model     Model
	logger    *logging.Logger
	bus       *event.Bus
	altScreen bool
	watchPath string
	input     io.Reader
	output    io.Writer
}

// AppOption configures an App.
type AppOption func(*App)

// WithAltScreen runs the program in the alternate screen buffer.
func WithAltScreen(enabled bool) AppOption {
	return func(a *App) {
		a.altScreen = enabled
	}
}

// WithBaselineFile re-applies the baseline whenever path changes on disk.
func WithBaselineFile(path string) AppOption {
	return func(a *App) {
		a.watchPath = path
	}
}

// WithIO overrides the terminal streams.
func WithIO(in io.Reader, out io.Writer) AppOption {
	return func(a *App) {
		a.input = in
		a.output = out
	}
}

// WithEventBus publishes baseline reloads and failures from the file watcher.
func WithEventBus(bus *event.Bus) AppOption {
	return func(a *App) {
		a.bus = bus
	}
}

// WithAppLogger sets the logger for program diagnostics.
func WithAppLogger(logger *logging.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates a new TUI application
func New(model Model, opts ...AppOption) *App {
	a := &App{
		model:  model,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.WithComponent("app")
	return a
}

// Run starts the TUI application and returns the final model once the user
// confirms, cancels, or ctx ends.
func (a *App) Run(ctx context.Context) (Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.input != nil {
		opts = append(opts, tea.WithInput(a.input))
	}
	if a.output != nil {
		opts = append(opts, tea.WithOutput(a.output))
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	defer func() {
		signal.Stop(sigChan)
		close(done)
	}()

	go func() {
		select {
		case <-sigChan:
			a.program.Send(cancelMsg{})
		case <-done:
		}
	}()

	// Forward baseline file changes into the event loop
	if a.watchPath != "" {
		watcher, err := baseline.NewWatcher(a.watchPath,
			func(values []string) {
				a.publish(event.NewBaselineReloadedEvent(a.watchPath, values))
				a.program.Send(BaselineMsg{Values: values, Present: true})
			},
			func(err error) {
				a.publish(event.NewBaselineFailedEvent(a.watchPath, err))
				a.program.Send(BaselineErrorMsg{Err: err})
			},
			baseline.WithWatcherLogger(a.logger),
		)
		if err != nil {
			return a.model, errors.Wrapf(err, "watch %s", a.watchPath)
		}
		watcher.Start()
		defer watcher.Stop()
		a.logger.Info("watching baseline file", "path", watcher.Path())
	}

	final, err := a.program.Run()
	if m, ok := final.(Model); ok {
		a.model = m
	}
	return a.model, err
}

func (a *App) publish(e event.Event) {
	if a.bus != nil {
		a.bus.Publish(e)
	}
}

// Messages

// BaselineMsg supplies a new baseline. The group resets only when it differs
// from the one last applied. Present false withdraws the baseline.
type BaselineMsg struct {
	Values  []string
	Present bool
}

// BaselineErrorMsg reports a baseline that could not be loaded. The current
// selection is kept. A permanent error means the file is no longer watched.
type BaselineErrorMsg struct {
	Err error
}

// cancelMsg is sent when the process receives a termination signal.
type cancelMsg struct{}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case BaselineMsg:
		values := msg.Values
		if !msg.Present {
			values = nil
		} else if values == nil {
			values = []string{}
		}
		if m.tracker.Sync(values) {
			m.keymap.SetResetEnabled(m.tracker.Present())
			m.statusMessage = "baseline reloaded"
			m.errorMessage = ""
			m.logger.Info("baseline applied", "values", len(values), "present", msg.Present)
		}
		return m, nil

	case BaselineErrorMsg:
		if msg.Err != nil {
			m.errorMessage = msg.Err.Error()
			if !errors.IsRetryable(msg.Err) {
				m.errorMessage += " (no longer watching)"
			}
			m.statusMessage = ""
			m.logger.Warn("baseline not applied", "error", msg.Err.Error(), "retryable", errors.IsRetryable(msg.Err))
		}
		return m, nil

	case cancelMsg:
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKeypress processes keyboard input
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done() {
		return m, nil
	}

	cmd, ok := m.keymap.Lookup(msg)
	if !ok {
		return m, nil
	}
	m.statusMessage = ""

	switch cmd {
	case keymap.CmdUp:
		m.moveUp()
	case keymap.CmdDown:
		m.moveDown()
	case keymap.CmdLeft:
		m.moveColumn(-1)
	case keymap.CmdRight:
		m.moveColumn(1)

	case keymap.CmdToggle:
		if m.cursor.OnSelectAll() {
			m.controller.SetAll(!m.controller.AllSelected())
		} else if opt, ok := m.focusedOption(); ok {
			m.controller.Toggle(opt.Value)
		}
	case keymap.CmdSelectAll:
		m.controller.SetAll(!m.controller.AllSelected())
	case keymap.CmdReset:
		if m.tracker.Reset() {
			m.statusMessage = "selection reset"
		}

	case keymap.CmdToggleHelp:
		m.help.ShowAll = !m.help.ShowAll

	case keymap.CmdConfirm:
		m.confirmed = true
		m.logger.Debug("selection confirmed", "selected", len(m.controller.Selected()))
		return m, tea.Quit
	case keymap.CmdCancel:
		m.cancelled = true
		m.logger.Debug("selection cancelled")
		return m, tea.Quit
	}

	return m, nil
}
