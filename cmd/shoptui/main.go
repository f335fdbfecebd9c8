package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"shoptui/internal/api"
	"shoptui/internal/config"
	"shoptui/internal/tui"
	"shoptui/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout(), logger)
	env := store.Env{
		FetchProducts: client.FetchProducts,
		SendOrder:     client.SendOrder,
		Logger:        logger,
	}

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(tui.New(env, cfg), opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "shoptui: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes structured logs to a file; the terminal belongs to the TUI.
func newLogger() (*slog.Logger, func(), error) {
	dir := filepath.Join(os.Getenv("HOME"), ".local", "state", "shoptui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "shoptui.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
