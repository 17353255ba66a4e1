package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/keycalc/internal/batch"
	"github.com/jask/keycalc/internal/config"
	"github.com/jask/keycalc/internal/keymap"
	"github.com/jask/keycalc/internal/logging"
	"github.com/jask/keycalc/internal/tui"
)

func main() {
	expr := flag.String("e", "", "evaluate a key sequence such as \"2+3*4=\" and print the display")
	trace := flag.Bool("trace", false, "with -e, print every display change")
	writeConfig := flag.Bool("write-config", false, "write the effective configuration and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *writeConfig {
		if err := config.Save(cfg); err != nil {
			log.Fatalf("save config: %v", err)
		}
		fmt.Println(config.Path())
		return
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	if *expr != "" {
		r := &batch.Runner{Out: os.Stdout, Trace: *trace, ErrorMarker: cfg.UI.ErrorMarker, Log: logger}
		display, err := r.RunString(ctx, *expr)
		if err != nil {
			log.Fatalf("evaluate: %v", err)
		}
		if !*trace {
			fmt.Println(display)
		}
		return
	}

	logger.Info("session started")
	p := tea.NewProgram(tui.New(cfg, loadKeys(cfg.Keys, logger), logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
	logger.Info("session ended")
}

// loadKeys returns the default bindings with any configured overrides
// applied. A broken override file is logged and skipped.
func loadKeys(cfg config.KeysConfig, logger *logrus.Entry) *keymap.Registry {
	keys := keymap.New()
	if cfg.File == "" {
		return keys
	}
	overrides, err := keymap.LoadOverrides(cfg.File)
	if err == nil {
		err = keys.ApplyOverrides(overrides)
	}
	if err != nil {
		logger.WithError(err).WithField("file", cfg.File).Warn("keybinding overrides ignored")
	}
	return keys
}
