package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/multicheck/internal/config"
	"github.com/Iron-Ham/multicheck/internal/event"
	"github.com/Iron-Ham/multicheck/internal/logging"
	"github.com/Iron-Ham/multicheck/internal/multicheck"
)

// session bundles what every command needs: the validated configuration,
// the resolved baseline, a logger, and the event bus carrying change
// notifications.
type session struct {
	cfg      *config.Config
	baseline []string
	logger   *logging.Logger
	bus      *event.Bus
}

// openSession loads configuration and wires logging and events. Interactive
// sessions never log to stderr, which the picker draws on.
func openSession(cmd *cobra.Command, interactive bool) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	baseline, err := cfg.MultiCheck.ResolveBaseline()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd, cfg.Logging, interactive)
	if err != nil {
		return nil, err
	}
	logger = logger.WithComponent("cmd").With("command", cmd.Name())

	s := &session{
		cfg:      cfg,
		baseline: baseline,
		logger:   logger,
		bus:      event.NewBus(logger),
	}
	s.bus.SubscribeAll(s.logEvent)

	logger.Debug("session opened",
		"options", len(cfg.MultiCheck.Options),
		"columns", cfg.MultiCheck.ColumnCount(),
		"controlled", baseline != nil,
	)
	return s, nil
}

func newLogger(cmd *cobra.Command, cfg config.LoggingConfig, interactive bool) (*logging.Logger, error) {
	switch {
	case !cfg.Enabled:
		return logging.NopLogger(), nil
	case cfg.Dir != "":
		return logging.NewLogger(cfg.Dir, cfg.Level, logging.WithRotation(cfg.Rotation()))
	case interactive:
		return logging.NopLogger(), nil
	default:
		return logging.NewLoggerTo(cmd.ErrOrStderr(), cfg.Level), nil
	}
}

// newController builds the checkbox group from the session's configuration.
// Every change is published on the bus.
func (s *session) newController() *multicheck.Controller {
	return multicheck.New(s.cfg.MultiCheck.Options, s.baseline,
		multicheck.WithObserver(s.publishChange),
		multicheck.WithLogger(s.logger),
	)
}

func (s *session) publishChange(change multicheck.Change) {
	s.bus.Publish(event.NewSelectionChangedEvent(change))
}

func (s *session) logEvent(e event.Event) {
	switch e := e.(type) {
	case event.SelectionChangedEvent:
		s.logger.Debug("selection changed", "reason", string(e.Reason), "selected", len(e.Selected))
	case event.SelectionConfirmedEvent:
		s.logger.Info("selection confirmed", "selected", len(e.Selected))
	case event.BaselineReloadedEvent:
		s.logger.Info("baseline reloaded", "path", e.Path, "values", len(e.Values))
	case event.BaselineFailedEvent:
		s.logger.Warn("baseline reload failed", "path", e.Path, "error", e.Err.Error())
	default:
		s.logger.Debug("event", "type", e.EventType())
	}
}

func (s *session) close() {
	s.logger.Debug("session closed", "subscriptions", s.bus.SubscriptionCount())
	s.bus.Clear()
	_ = s.logger.Close()
}
