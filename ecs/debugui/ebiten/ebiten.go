// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Register it as a world resource so systems and the game loop share one
// backend instance.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
