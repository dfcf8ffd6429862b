package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/buildings/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw the inventory in the terminal",
	Long:  `Runs the startup schedule and draws the inventory column until a key is pressed.`,
	RunE:  runPreview,
}

func runPreview(cmd *cobra.Command, _ []string) error {
	w, container, closer, err := startSession(cmd)
	defer closer()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	// Runs while a panic unwinds, so the terminal is sane before main reports it
	defer screen.Fini()

	render.NewPreview(screen, w).Run(container)
	return nil
}
