// internal/defs/aliens.go
package defs

import "image/color"

// AlienDefinition holds the static data for one alien type (one formation row).
type AlienDefinition struct {
	Type    int          `json:"type"`
	Name    string       `json:"name"`
	Points  int          `json:"points"`
	Glyphs  [2]string    `json:"glyphs"` // два кадра анимации для терминала
	Visuals AlienVisuals `json:"visuals"`
}

// AlienVisuals describes how an alien is drawn in the window frontend.
// Each pose is a pixel mask where '#' marks a filled cell.
type AlienVisuals struct {
	Color color.RGBA  `json:"color"`
	Poses [2][]string `json:"poses"`
}

// AlienDefs is the library of alien definitions, keyed by type.
var AlienDefs = map[int]AlienDefinition{
	1: {
		Type:   1,
		Name:   "squid",
		Points: 1,
		Glyphs: [2]string{"/oo\\", "\\oo/"},
		Visuals: AlienVisuals{
			Color: color.RGBA{255, 255, 255, 255},
			Poses: [2][]string{
				{
					"    ##    ",
					"   ####   ",
					"  ######  ",
					" ## ## ## ",
					" ######## ",
					"  # ## #  ",
					" #      # ",
					"  #    #  ",
				},
				{
					"    ##    ",
					"   ####   ",
					"  ######  ",
					" ## ## ## ",
					" ######## ",
					"   #  #   ",
					"  # ## #  ",
					" # #  # # ",
				},
			},
		},
	},
	2: {
		Type:   2,
		Name:   "crab",
		Points: 1,
		Glyphs: [2]string{"{@@}", "}@@{"},
		Visuals: AlienVisuals{
			Color: color.RGBA{80, 200, 255, 255},
			Poses: [2][]string{
				{
					"  #     #  ",
					"   #   #   ",
					"  #######  ",
					" ## ### ## ",
					"###########",
					"# ####### #",
					"# #     # #",
					"   ## ##   ",
				},
				{
					"  #     #  ",
					"#  #   #  #",
					"# ####### #",
					"### ### ###",
					"###########",
					" ######### ",
					"  #     #  ",
					" #       # ",
				},
			},
		},
	},
	3: {
		Type:   3,
		Name:   "octopus",
		Points: 1,
		Glyphs: [2]string{"<##>", ">##<"},
		Visuals: AlienVisuals{
			Color: color.RGBA{255, 80, 200, 255},
			Poses: [2][]string{
				{
					"    ####    ",
					" ########## ",
					"############",
					"###  ##  ###",
					"############",
					"  ###  ###  ",
					" ##  ##  ## ",
					"  ##    ##  ",
				},
				{
					"    ####    ",
					" ########## ",
					"############",
					"###  ##  ###",
					"############",
					"   ##  ##   ",
					"  ## ## ##  ",
					"##        ##",
				},
			},
		},
	},
}

// Alien returns the definition for an alien type. Types without a definition
// (formations with more rows than defined types) reuse the last defined type.
func Alien(t int) AlienDefinition {
	if def, ok := AlienDefs[t]; ok {
		return def
	}
	best := 0
	for k := range AlienDefs {
		if k > best && k < t {
			best = k
		}
	}
	if def, ok := AlienDefs[best]; ok {
		return def
	}
	return AlienDefinition{Type: t, Points: 1, Glyphs: [2]string{"<oo>", ">oo<"}}
}

// Points returns how much destroying an alien of type t is worth.
func Points(t int) int {
	p := Alien(t).Points
	if p <= 0 {
		return 1
	}
	return p
}
