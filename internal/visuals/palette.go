package visuals

import "image/color"

// palette mirrors the default deck theme so procedural fallbacks blend in
// with generated imagery.
var palette = struct {
	Background color.NRGBA
	Primary    color.NRGBA
	Secondary  color.NRGBA
	Accent     color.NRGBA
	Light      color.NRGBA
	Card       color.NRGBA
	Text       color.NRGBA
	TextLight  color.NRGBA
}{
	Background: color.NRGBA{R: 245, G: 247, B: 252, A: 255},
	Primary:    color.NRGBA{R: 43, G: 87, B: 154, A: 255},
	Secondary:  color.NRGBA{R: 68, G: 114, B: 196, A: 255},
	Accent:     color.NRGBA{R: 91, G: 155, B: 213, A: 255},
	Light:      color.NRGBA{R: 180, G: 210, B: 240, A: 255},
	Card:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	Text:       color.NRGBA{R: 60, G: 60, B: 70, A: 255},
	TextLight:  color.NRGBA{R: 120, G: 130, B: 150, A: 255},
}

// iconCycle is the accent rotation used for card icons and chart bars.
var iconCycle = []color.NRGBA{
	palette.Primary,
	palette.Secondary,
	palette.Accent,
	palette.Light,
}
