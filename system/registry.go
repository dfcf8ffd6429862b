package system

import (
	"fmt"
	"log"

	"github.com/lixenwraith/buildings/asset"
	"github.com/lixenwraith/buildings/engine"
)

// InitializeRegistry returns the startup step that builds the visual asset
// registry into lib and publishes both as world resources
// Re-running replaces the previous registry
func InitializeRegistry(lib *asset.Library) engine.StepFunc {
	return func(w *engine.World) error {
		reg, err := asset.NewDefaultRegistry(lib)
		if err != nil {
			return fmt.Errorf("failed to build asset registry: %w", err)
		}
		engine.AddResource(w.Resources, lib)
		engine.AddResource(w.Resources, reg)
		log.Printf("asset registry ready: %d mesh(es), %d material(s)", lib.MeshCount(), lib.MaterialCount())
		return nil
	}
}
