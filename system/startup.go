package system

import (
	"github.com/lixenwraith/buildings/asset"
	"github.com/lixenwraith/buildings/config"
	"github.com/lixenwraith/buildings/engine"
)

// Startup step names
const (
	StepInitializeRegistry = "initialize_registry"
	StepGenerateInventory  = "generate_inventory"
)

// RegisterStartup declares the building startup steps on s
// Inventory generation runs after registry construction
func RegisterStartup(s *engine.Schedule, lib *asset.Library) {
	s.Add(StepInitializeRegistry, InitializeRegistry(lib))
	s.Add(StepGenerateInventory, GenerateInventory).After(StepInitializeRegistry)
}

// NewSession returns a world carrying cfg, with the startup schedule run
func NewSession(cfg *config.Config) (*engine.World, error) {
	w := engine.NewWorld()
	engine.AddResource(w.Resources, cfg)

	s := engine.NewSchedule()
	RegisterStartup(s, asset.NewLibrary())
	if err := s.Run(w); err != nil {
		return nil, err
	}
	return w, nil
}

