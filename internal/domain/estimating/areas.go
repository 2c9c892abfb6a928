// Package estimating contains the domain services shared by estimates and
// invoices: the ordered project-area list with its editing operations, and
// cost aggregation over those areas. Everything here is pure; callers own
// persistence and validation.
package estimating

import (
	"github.com/shopspring/decimal"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
)

// AreaList is the ordered collection of project areas attached to a draft
// estimate or invoice. All editing operations return a new list and leave
// the receiver untouched, so stale references never see later edits.
type AreaList []entity.ProjectArea

// Clone returns an independent copy of the list.
func (l AreaList) Clone() AreaList {
	if l == nil {
		return nil
	}
	out := make(AreaList, len(l))
	copy(out, l)
	return out
}

// Add appends a default-initialized area.
func (l AreaList) Add() AreaList {
	out := make(AreaList, len(l), len(l)+1)
	copy(out, l)
	return append(out, entity.NewProjectArea())
}

// Remove deletes the area at index i. The list never shrinks below one
// element; that removal, like an out-of-range index, is ignored.
func (l AreaList) Remove(i int) AreaList {
	if i < 0 || i >= len(l) || len(l) <= 1 {
		return l
	}
	out := make(AreaList, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// Apply replaces the fields set on patch for the area at index i and
// returns the updated list. Out-of-range indexes are ignored.
func (l AreaList) Apply(i int, patch AreaPatch) AreaList {
	if i < 0 || i >= len(l) {
		return l
	}
	out := l.Clone()
	patch.applyTo(&out[i])
	return out
}

// AreaPatch is a single-area field update. Nil fields are left unchanged,
// which gives the editor typed field-level updates instead of stringly
// keyed ones.
type AreaPatch struct {
	AreaName         *string
	AreaType         *string
	SurfaceType      *string
	SquareFootage    *float64
	CeilingHeight    *float64
	PrepRequirements *string
	PaintType        *string
	PaintBrand       *string
	PaintColor       *string
	PaintFinish      *string
	NumberOfCoats    *int
	LaborCost        *decimal.Decimal
	MaterialCost     *decimal.Decimal
	Notes            *string
}

func (p AreaPatch) applyTo(a *entity.ProjectArea) {
	if p.AreaName != nil {
		a.AreaName = *p.AreaName
	}
	if p.AreaType != nil {
		a.AreaType = *p.AreaType
	}
	if p.SurfaceType != nil {
		a.SurfaceType = *p.SurfaceType
	}
	if p.SquareFootage != nil {
		a.SquareFootage = *p.SquareFootage
	}
	if p.CeilingHeight != nil {
		a.CeilingHeight = *p.CeilingHeight
	}
	if p.PrepRequirements != nil {
		a.PrepRequirements = *p.PrepRequirements
	}
	if p.PaintType != nil {
		a.PaintType = *p.PaintType
	}
	if p.PaintBrand != nil {
		a.PaintBrand = *p.PaintBrand
	}
	if p.PaintColor != nil {
		a.PaintColor = *p.PaintColor
	}
	if p.PaintFinish != nil {
		a.PaintFinish = *p.PaintFinish
	}
	if p.NumberOfCoats != nil {
		a.NumberOfCoats = *p.NumberOfCoats
	}
	if p.LaborCost != nil {
		a.LaborCost = *p.LaborCost
	}
	if p.MaterialCost != nil {
		a.MaterialCost = *p.MaterialCost
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}
