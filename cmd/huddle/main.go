package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/huddle/internal/api"
	"github.com/jask/huddle/internal/config"
	"github.com/jask/huddle/internal/feed"
	"github.com/jask/huddle/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := openLogger(cfg.Log.Path)
	if err != nil {
		log.Fatalf("log sink: %v", err)
	}
	defer closeLog()

	client, err := feed.Dial(cfg.Host.FeedURL, logger)
	if err != nil {
		log.Fatalf("feed: %v", err)
	}
	defer client.Close()
	go client.Run()

	backend := api.New(cfg.Host.APIURL, logger)

	p := tea.NewProgram(tui.New(cfg, backend, logger), tea.WithAltScreen())

	// Pump host pushes into the single update loop, in arrival order.
	go func() {
		for ev := range client.Events() {
			if msg := tui.FeedMsg(ev); msg != nil {
				p.Send(msg)
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		log.Fatalf("huddle: %v", err)
	}
}

// openLogger points zerolog at the diagnostic file; the TUI owns the
// terminal.
func openLogger(path string) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
