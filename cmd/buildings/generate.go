package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/buildings/core"
	"github.com/lixenwraith/buildings/engine"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draw an inventory and print it",
	Long:  `Runs the startup schedule and prints one line per slot: index, shape, size, color and resolved scale.`,
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	w, container, closer, err := startSession(cmd)
	defer closer()
	if err != nil {
		return err
	}
	return printInventory(cmd.OutOrStdout(), w, container)
}

// printInventory writes one line per slot in slot order
func printInventory(out io.Writer, w *engine.World, container core.Entity) error {
	inv, ok := w.Inventories.Get(container)
	if !ok {
		return fmt.Errorf("entity %d is not an inventory", container)
	}

	fmt.Fprintf(out, "# seed %d pass %s\n", inv.Seed, inv.PassID)
	for i, e := range inv.Items {
		b, ok := w.Buildings.Get(e)
		if !ok {
			return fmt.Errorf("slot %d: entity %d has no building", i, e)
		}
		v, ok := w.Visuals.Get(e)
		if !ok {
			return fmt.Errorf("slot %d: entity %d was not resolved", i, e)
		}
		fmt.Fprintf(out, "%d %s %s %s %.2f\n", i, b.Shape(), b.Size(), b.Color(), v.Scale)
	}
	return nil
}
