package components

import "github.com/yohamta/donburi"

// DisplayData is the presentation state the renderer reads. Gameplay never
// branches on it.
type DisplayData struct {
	Texture string
	ScaleX  float64
	ScaleY  float64
	Angle   float64
	Visible bool
	Tinted  bool
	FlipX   bool
}

var Display = donburi.NewComponentType[DisplayData]()

// NewDisplay returns a visible, unscaled display.
func NewDisplay(texture string) DisplayData {
	return DisplayData{Texture: texture, ScaleX: 1, ScaleY: 1, Visible: true}
}
