package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pitchside/predictor-api/internal/logic"
	"github.com/pitchside/predictor-api/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive prediction form",
	Long: `Tui opens a terminal form pre-filled with an example fixture. Edit the
numbers and press enter to predict; the result updates in place.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("tui needs a terminal; use predict for scripted runs")
	}

	params, err := loadParams(cmd)
	if err != nil {
		return err
	}
	predictor, err := logic.NewPredictor(params)
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewFormModel(predictor), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
