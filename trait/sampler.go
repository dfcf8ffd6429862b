package trait

import (
	"fmt"

	"github.com/lixenwraith/buildings/component"
)

// Sampler draws building descriptors from three independent tables
// Axis order is Shape, Size, Color; changing it changes seeded output
type Sampler struct {
	Shapes Table[component.Shape]
	Sizes  Table[component.Size]
	Colors Table[component.Color]
}

// NewDefaultSampler returns a sampler over the default weight tables
func NewDefaultSampler() *Sampler {
	return &Sampler{
		Shapes: ShapeWeights,
		Sizes:  SizeWeights,
		Colors: ColorWeights,
	}
}

// Validate checks all three tables
func (s *Sampler) Validate() error {
	if err := s.Shapes.Validate(); err != nil {
		return fmt.Errorf("shape table: %w", err)
	}
	if err := s.Sizes.Validate(); err != nil {
		return fmt.Errorf("size table: %w", err)
	}
	if err := s.Colors.Validate(); err != nil {
		return fmt.Errorf("color table: %w", err)
	}
	return nil
}

// Sample draws one value per axis and composes them
func (s *Sampler) Sample(src Source) (component.BuildingComponent, error) {
	shape, err := Draw(src, s.Shapes)
	if err != nil {
		return component.BuildingComponent{}, fmt.Errorf("shape table: %w", err)
	}
	size, err := Draw(src, s.Sizes)
	if err != nil {
		return component.BuildingComponent{}, fmt.Errorf("size table: %w", err)
	}
	color, err := Draw(src, s.Colors)
	if err != nil {
		return component.BuildingComponent{}, fmt.Errorf("color table: %w", err)
	}
	return component.NewBuilding(shape, size, color), nil
}

// SampleN draws n descriptors in order, aborting on the first failure
func (s *Sampler) SampleN(src Source, n int) ([]component.BuildingComponent, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]component.BuildingComponent, 0, n)
	for i := 0; i < n; i++ {
		b, err := s.Sample(src)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}
