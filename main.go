package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/app"
	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	mgr, err := store.Open()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer mgr.Close()

	settings := cfg.Settings()
	if saved, err := mgr.GetSettings(); err == nil && saved != nil {
		settings = saved.Restore()
	}

	notifier, err := notify.New()
	if err != nil {
		return fmt.Errorf("init notifications: %w", err)
	}

	// MPRIS commands arrive on D-Bus goroutines and are funneled into
	// the update loop through Send.
	var program *tea.Program
	adapter, err := mpris.New(func(action appstate.AppAction) {
		if program != nil {
			program.Send(app.ActionMsg{Action: action})
		}
	})
	if err != nil {
		return fmt.Errorf("init mpris: %w", err)
	}
	defer adapter.Close()

	m, err := app.New(app.Options{
		Store:      mgr,
		Notifier:   notifier,
		Mpris:      adapter,
		Settings:   settings,
		InitialURI: uriArg(os.Args[1:]),
	})
	if err != nil {
		return err
	}

	program = tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// uriArg picks the first spotify: URI from the command line, the
// terminal stand-in for desktop URI activation.
func uriArg(args []string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, "spotify:") {
			return arg
		}
	}
	return ""
}
