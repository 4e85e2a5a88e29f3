package tui

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/Iron-Ham/multicheck/internal/logging"
	"github.com/Iron-Ham/multicheck/internal/multicheck"
	"github.com/Iron-Ham/multicheck/internal/tui/keymap"
	"github.com/Iron-Ham/multicheck/internal/tui/styles"
	"github.com/Iron-Ham/multicheck/internal/tui/view"
)

// ModelConfig describes the checkbox group the Model drives.
type ModelConfig struct {
	Label    string
	Options  []multicheck.Option
	Columns  int
	Baseline []string // nil leaves the group uncontrolled

	Theme     styles.ThemeName
	ShowHelp  bool
	ColumnGap int

	OnChange multicheck.ChangeFunc
	Observer func(multicheck.Change)
	Logger   *logging.Logger
}

// Model holds the TUI application state
type Model struct {
	// Core components
	controller *multicheck.Controller
	tracker    *multicheck.BaselineTracker
	logger     *logging.Logger

	// Layout, fixed for the lifetime of the model
	label     string
	columns   [][]multicheck.Option
	columnGap int

	// UI state
	cursor        view.Cursor
	keymap        *keymap.Keymap
	help          help.Model
	styles        *styles.Styles
	showHelp      bool
	width         int
	height        int
	statusMessage string
	errorMessage  string

	// Outcome
	confirmed bool
	cancelled bool
}

// NewModel creates a new TUI model. The controller is constructed here, so
// the initial change notification fires before this returns.
func NewModel(cfg ModelConfig) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	opts := []multicheck.ControllerOption{multicheck.WithLogger(logger)}
	if cfg.OnChange != nil {
		opts = append(opts, multicheck.WithOnChange(cfg.OnChange))
	}
	if cfg.Observer != nil {
		opts = append(opts, multicheck.WithObserver(cfg.Observer))
	}
	controller := multicheck.New(cfg.Options, cfg.Baseline, opts...)

	km := keymap.Default()
	km.SetResetEnabled(cfg.Baseline != nil)

	st := styles.New(cfg.Theme)
	h := help.New()
	h.Styles.ShortKey = st.HelpKey
	h.Styles.ShortDesc = st.HelpDesc
	h.Styles.ShortSeparator = st.HelpSeparator
	h.Styles.FullKey = st.HelpKey
	h.Styles.FullDesc = st.HelpDesc
	h.Styles.FullSeparator = st.HelpSeparator

	return Model{
		controller: controller,
		tracker:    multicheck.NewBaselineTracker(controller, cfg.Baseline),
		logger:     logger.WithComponent("tui"),
		label:      cfg.Label,
		columns:    multicheck.SplitIntoColumns(controller.Options(), cfg.Columns),
		columnGap:  cfg.ColumnGap,
		cursor:     view.Cursor{Column: 0, Row: view.SelectAllRow},
		keymap:     km,
		help:       h,
		styles:     st,
		showHelp:   cfg.ShowHelp,
	}
}

// Controller returns the selection controller behind the model.
func (m Model) Controller() *multicheck.Controller {
	return m.controller
}

// Cursor returns the focused checkbox.
func (m Model) Cursor() view.Cursor {
	return m.cursor
}

// Confirmed reports whether the user accepted the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user dismissed the program.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Selected returns the current selection in option order.
func (m Model) Selected() []multicheck.Option {
	return m.controller.Selected()
}

// done reports whether the program is shutting down.
func (m Model) done() bool {
	return m.confirmed || m.cancelled
}

// focusedOption returns the option under the cursor, if any.
func (m Model) focusedOption() (multicheck.Option, bool) {
	if m.cursor.OnSelectAll() {
		return multicheck.Option{}, false
	}
	if m.cursor.Column < 0 || m.cursor.Column >= len(m.columns) {
		return multicheck.Option{}, false
	}
	column := m.columns[m.cursor.Column]
	if m.cursor.Row < 0 || m.cursor.Row >= len(column) {
		return multicheck.Option{}, false
	}
	opt := column[m.cursor.Row]
	if opt.IsPlaceholder() {
		return multicheck.Option{}, false
	}
	return opt, true
}
