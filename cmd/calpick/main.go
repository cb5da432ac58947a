package main

import (
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/calpick/internal/config"
	"github.com/jask/calpick/internal/keys"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "calpick")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	}

	for _, w := range cfg.Validate() {
		log.Printf("warn: %s", w)
	}

	pickerCfg, err := cfg.Calendar(time.Local)
	if err != nil {
		log.Fatalf("picker config: %v", err)
	}
	reg, err := cfg.Keys()
	if err != nil {
		log.Fatalf("keys: %v", err)
	}

	if cfg.Log.File == "" {
		log.SetOutput(io.Discard)
	}

	saveKeys := func(overrides []keys.Override) error {
		cfg.Keybinding = overrides
		return config.Save(cfg)
	}

	p := tea.NewProgram(newHost(pickerCfg, reg, cfg.Styles(), log.Printf, saveKeys), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
