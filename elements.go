package molviz

import (
	"image/color"
	"strings"
)

// Element is the per-element lookup row used to size and color atoms.
type Element struct {
	Symbol         string
	Color          color.RGBA
	CovalentRadius float32 // Å
	VdwRadius      float32 // Å
}

var unknownElement = Element{
	Symbol:         "X",
	Color:          color.RGBA{R: 255, G: 20, B: 147, A: 255},
	CovalentRadius: 0.77,
	VdwRadius:      1.70,
}

// CPK colors, Cordero covalent radii and Bondi van der Waals radii.
var elements = map[string]Element{
	"H":  {"H", color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.31, 1.20},
	"C":  {"C", color.RGBA{R: 80, G: 80, B: 80, A: 255}, 0.76, 1.70},
	"N":  {"N", color.RGBA{R: 48, G: 80, B: 248, A: 255}, 0.71, 1.55},
	"O":  {"O", color.RGBA{R: 255, G: 13, B: 13, A: 255}, 0.66, 1.52},
	"F":  {"F", color.RGBA{R: 144, G: 224, B: 80, A: 255}, 0.57, 1.47},
	"NA": {"Na", color.RGBA{R: 171, G: 92, B: 242, A: 255}, 1.66, 2.27},
	"MG": {"Mg", color.RGBA{R: 138, G: 255, B: 0, A: 255}, 1.41, 1.73},
	"P":  {"P", color.RGBA{R: 255, G: 128, B: 0, A: 255}, 1.07, 1.80},
	"S":  {"S", color.RGBA{R: 255, G: 255, B: 48, A: 255}, 1.05, 1.80},
	"CL": {"Cl", color.RGBA{R: 31, G: 240, B: 31, A: 255}, 1.02, 1.75},
	"K":  {"K", color.RGBA{R: 143, G: 64, B: 212, A: 255}, 2.03, 2.75},
	"CA": {"Ca", color.RGBA{R: 61, G: 255, B: 0, A: 255}, 1.76, 2.31},
	"MN": {"Mn", color.RGBA{R: 156, G: 122, B: 199, A: 255}, 1.39, 2.00},
	"FE": {"Fe", color.RGBA{R: 224, G: 102, B: 51, A: 255}, 1.32, 2.00},
	"CO": {"Co", color.RGBA{R: 240, G: 144, B: 160, A: 255}, 1.26, 2.00},
	"NI": {"Ni", color.RGBA{R: 80, G: 208, B: 80, A: 255}, 1.24, 1.63},
	"CU": {"Cu", color.RGBA{R: 200, G: 128, B: 51, A: 255}, 1.32, 1.40},
	"ZN": {"Zn", color.RGBA{R: 125, G: 128, B: 176, A: 255}, 1.22, 1.39},
	"SE": {"Se", color.RGBA{R: 255, G: 161, B: 0, A: 255}, 1.20, 1.90},
	"BR": {"Br", color.RGBA{R: 166, G: 41, B: 41, A: 255}, 1.20, 1.85},
	"I":  {"I", color.RGBA{R: 148, G: 0, B: 148, A: 255}, 1.39, 1.98},
}

// LookupElement is case insensitive and falls back to a magenta placeholder
// for anything it does not know.
func LookupElement(symbol string) Element {
	if e, ok := elements[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return e
	}
	return unknownElement
}

func KnownElement(symbol string) bool {
	_, ok := elements[strings.ToUpper(strings.TrimSpace(symbol))]
	return ok
}
