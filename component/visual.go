package component

// MeshHandle references a mesh in an asset library, 0 is the null handle
type MeshHandle uint32

// MaterialHandle references a material in an asset library, 0 is the null handle
type MaterialHandle uint32

// VisualComponent is the resolved renderable form of a building
// Attached after the asset registry exists, never at spawn
type VisualComponent struct {
	Mesh     MeshHandle
	Scale    float64 // Uniform scale in screen units
	Material MaterialHandle
}
