package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nzaccagnino/devnotes/internal/ui"
)

func runTUI() error {
	a, err := openApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	m := ui.NewModel(a.store, a.scratchpad, a.cfg, a.logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	stop := ui.Forward(p, a.store, a.scratchpad)
	defer stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}
