package entity

import "github.com/shopspring/decimal"

// Area types (indoor/outdoor work).
const (
	AreaTypeIndoor  = "indoor"
	AreaTypeOutdoor = "outdoor"
)

// Surface types a crew can prep and paint.
const (
	SurfaceDrywall  = "drywall"
	SurfaceWood     = "wood"
	SurfaceMetal    = "metal"
	SurfaceBrick    = "brick"
	SurfaceStucco   = "stucco"
	SurfaceConcrete = "concrete"
)

// Paint finishes, from least to most sheen.
const (
	FinishFlat      = "flat"
	FinishEggshell  = "eggshell"
	FinishSatin     = "satin"
	FinishSemiGloss = "semi-gloss"
	FinishGloss     = "gloss"
)

// Coat count bounds for a single area.
const (
	MinCoats = 1
	MaxCoats = 10
)

// ProjectArea is one paintable surface/room within an estimate or invoice.
// It carries its own cost and material attributes and is owned exclusively
// by the document that contains it.
type ProjectArea struct {
	ID               string
	AreaName         string
	AreaType         string
	SurfaceType      string
	SquareFootage    float64
	CeilingHeight    float64
	PrepRequirements string
	PaintType        string
	PaintBrand       string
	PaintColor       string
	PaintFinish      string
	NumberOfCoats    int
	LaborCost        decimal.Decimal
	MaterialCost     decimal.Decimal
	Notes            string
}

// NewProjectArea returns the default-initialized area appended by the
// editor's "add area" action: an unnamed indoor drywall area, two coats
// of eggshell, zero costs.
func NewProjectArea() ProjectArea {
	return ProjectArea{
		AreaType:      AreaTypeIndoor,
		SurfaceType:   SurfaceDrywall,
		PaintFinish:   FinishEggshell,
		NumberOfCoats: 2,
		LaborCost:     decimal.Zero,
		MaterialCost:  decimal.Zero,
	}
}

// ValidAreaType reports whether s is a known area type.
func ValidAreaType(s string) bool {
	return s == AreaTypeIndoor || s == AreaTypeOutdoor
}

// ValidSurfaceType reports whether s is a known surface type.
func ValidSurfaceType(s string) bool {
	switch s {
	case SurfaceDrywall, SurfaceWood, SurfaceMetal, SurfaceBrick, SurfaceStucco, SurfaceConcrete:
		return true
	}
	return false
}

// ValidPaintFinish reports whether s is a known finish.
func ValidPaintFinish(s string) bool {
	switch s {
	case FinishFlat, FinishEggshell, FinishSatin, FinishSemiGloss, FinishGloss:
		return true
	}
	return false
}
