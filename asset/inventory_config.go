package asset

// DefaultInventoryConfig returns the default inventory generation TOML configuration
const DefaultInventoryConfig = `
# === Inventory generation ===
[inventory]
seed = 0
count = 6

# === Layout ===
[layout]
base_visual_size = 64.0
column_x = -350.0
slot_gap = 10.0

# === Diagnostics ===
[debug]
enabled = false
`
