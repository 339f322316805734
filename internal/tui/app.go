package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/accelboard/internal/dashboard"
)

// Run starts the terminal dashboard and blocks until the user quits.
func Run(d *dashboard.Dashboard, pageSize int) error {
	p := tea.NewProgram(NewDashboardModel(d, pageSize), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
