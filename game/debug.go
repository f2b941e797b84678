package game

// DebugState holds debug overlay flags
type DebugState struct {
	ShowPlayerInfo bool // Per-player id, hp and position text
	ShowHUD        bool // FPS and bullet counters in the corner
}

// Toggle flips the player info overlay
func (d *DebugState) Toggle() {
	d.ShowPlayerInfo = !d.ShowPlayerInfo
}
