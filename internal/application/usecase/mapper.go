package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/estimating"
)

const dateOnly = "2006-01-02"

// parseDate parses an optional YYYY-MM-DD field. Empty means "not set".
func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: must be YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateOnly)
}

func areasFromPayload(in []dto.AreaPayload) []entity.ProjectArea {
	out := make([]entity.ProjectArea, 0, len(in))
	for _, a := range in {
		out = append(out, entity.ProjectArea{
			AreaName:         a.AreaName,
			AreaType:         a.AreaType,
			SurfaceType:      a.SurfaceType,
			SquareFootage:    a.SquareFootage,
			CeilingHeight:    a.CeilingHeight,
			PrepRequirements: a.PrepRequirements,
			PaintType:        a.PaintType,
			PaintBrand:       a.PaintBrand,
			PaintColor:       a.PaintColor,
			PaintFinish:      a.PaintFinish,
			NumberOfCoats:    a.NumberOfCoats,
			LaborCost:        a.LaborCost,
			MaterialCost:     a.MaterialCost,
			Notes:            a.Notes,
		})
	}
	return out
}

func areasToPayload(in []entity.ProjectArea) []dto.AreaPayload {
	out := make([]dto.AreaPayload, 0, len(in))
	for _, a := range in {
		out = append(out, dto.AreaPayload{
			ID:               a.ID,
			AreaName:         a.AreaName,
			AreaType:         a.AreaType,
			SurfaceType:      a.SurfaceType,
			SquareFootage:    a.SquareFootage,
			CeilingHeight:    a.CeilingHeight,
			PrepRequirements: a.PrepRequirements,
			PaintType:        a.PaintType,
			PaintBrand:       a.PaintBrand,
			PaintColor:       a.PaintColor,
			PaintFinish:      a.PaintFinish,
			NumberOfCoats:    a.NumberOfCoats,
			LaborCost:        a.LaborCost,
			MaterialCost:     a.MaterialCost,
			Notes:            a.Notes,
		})
	}
	return out
}

// resolveTotals computes the stored totals for a document. Labor and
// material always come from the areas; the grand total is either derived
// from them or pinned to the manual amount.
func resolveTotals(areas []entity.ProjectArea, manual bool, pinned decimal.Decimal) estimating.Totals {
	t := estimating.ComputeTotals(areas)
	if manual {
		t.Total = pinned
	}
	return t
}

// adjustmentDTO is present only on manually priced documents whose pinned
// total differs from the computed one.
func adjustmentDTO(manual bool, areas []entity.ProjectArea, pinnedTotal decimal.Decimal) *dto.AdjustmentDTO {
	if !manual {
		return nil
	}
	adj := estimating.AdjustmentFor(estimating.ComputeTotals(areas).Total, pinnedTotal)
	if adj.IsZero() {
		return nil
	}
	return &dto.AdjustmentDTO{Kind: adj.Kind, Amount: adj.Amount}
}
