// Package app wires the settings tree, persistence, menu, and TUI into
// the running application.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"

	"github.com/balltrack/cfgmenu/internal/config"
	"github.com/balltrack/cfgmenu/internal/config/store"
	"github.com/balltrack/cfgmenu/internal/log"
	"github.com/balltrack/cfgmenu/internal/menu"
	"github.com/balltrack/cfgmenu/internal/tui"
)

// Options configures the application shell from the environment.
type Options struct {
	// StorePath is the backing file for persisted settings.
	StorePath string `env:"CFGMENU_STORE_PATH, default=settings.xml"`
	// StoreScope is the root scope name inside the store.
	StoreScope string `env:"CFGMENU_STORE_SCOPE, default=settings"`
	// Backend selects the store format: xml, toml, json, or yaml.
	Backend string `env:"CFGMENU_STORE_BACKEND, default=xml"`
	// Log configures the application logger.
	Log log.Config `env:", prefix=CFGMENU_LOG_"`
}

// LoadOptions reads Options from the environment.
func LoadOptions(ctx context.Context) (Options, error) {
	var opts Options
	if err := envconfig.Process(ctx, &opts); err != nil {
		return opts, fmt.Errorf("reading environment: %w", err)
	}
	return opts, nil
}

// App owns the settings tree and the menu built over it for the full
// process lifetime.
type App struct {
	opts      Options
	log       *zap.SugaredLogger
	tree      *config.Tree
	menu      *menu.Menu
	persister *config.Persister
}

// New builds the application: defaults, overridden by anything persisted,
// with the operator menu registered over the tree.
func New(opts Options) (*App, error) {
	logger, err := log.New(opts.Log)
	if err != nil {
		return nil, err
	}

	st, err := store.New(opts.Backend)
	if err != nil {
		return nil, err
	}

	tree := config.Defaults()
	persister := config.NewPersister(st, opts.StorePath, opts.StoreScope).
		WithLogger(logger)
	if err := persister.Load(tree); err != nil {
		return nil, err
	}

	a := &App{
		opts:      opts,
		log:       logger,
		tree:      tree,
		menu:      menu.New(),
		persister: persister,
	}
	if err := a.registerMenu(); err != nil {
		return nil, err
	}
	return a, nil
}

// registerMenu binds the operator subset of the tree into the menu.
// Actions fire after a value is committed, so they observe the new
// value.
func (a *App) registerMenu() error {
	t := a.tree

	serialChanged := func() {
		a.log.Infow("serial link reconfigured",
			"enabled", t.Serial.Enabled.ConvertBool(),
			"baudrate", t.Serial.Baudrate.ConvertInt())
	}
	gainsChanged := func() {
		a.log.Infow("controller gains updated",
			"kp", t.PID.Kp.ConvertFloat64(),
			"ki", t.PID.Ki.ConvertFloat64(),
			"kd", t.PID.Kd.ConvertFloat64())
	}
	cameraChanged := func() {
		a.log.Infow("camera reconfigured",
			"frame", t.Camera.Frame.Size(1))
	}

	bindings := []struct {
		key    byte
		item   *config.Item
		action menu.Action
	}{
		{'w', &t.Screen.Width, nil},
		{'h', &t.Screen.Height, nil},
		{'r', &t.Screen.Rate, nil},
		{'s', &t.Serial.Enabled, serialChanged},
		{'b', &t.Serial.Baudrate, serialChanged},
		{'p', &t.PID.Kp, gainsChanged},
		{'i', &t.PID.Ki, gainsChanged},
		{'d', &t.PID.Kd, gainsChanged},
		{'t', &t.Vision.TrackBall, nil},
		{'n', &t.Vision.BallRadius.Min, nil},
		{'x', &t.Vision.BallRadius.Max, nil},
		{'e', &t.Camera.Exposure, cameraChanged},
		{'g', &t.Camera.Gain, cameraChanged},
		{'a', &t.Camera.AutoGain, cameraChanged},
	}

	for _, b := range bindings {
		if err := a.menu.Add(b.key, b.item, b.action); err != nil {
			return err
		}
	}
	return nil
}

// Run drives the interactive menu until the operator quits, then
// persists the (possibly mutated) tree.
func (a *App) Run() error {
	model := tui.NewMenuModel(a.menu, a.tree, a.persister, a.log)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return a.persister.Save(a.tree)
}

// Shutdown flushes the logger.
func (a *App) Shutdown() {
	_ = a.log.Sync()
}
