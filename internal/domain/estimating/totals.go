package estimating

import (
	"github.com/shopspring/decimal"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
)

// Totals is the cost breakdown derived from a document's project areas.
type Totals struct {
	Labor    decimal.Decimal
	Material decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums labor and material costs over the areas in a single
// pass. The zero value of decimal.Decimal is zero, so absent costs simply
// do not contribute. It is recomputed on every edit and on every write;
// with at most a handful of areas per document there is nothing to cache.
func ComputeTotals(areas []entity.ProjectArea) Totals {
	var labor, material decimal.Decimal
	for _, a := range areas {
		labor = labor.Add(a.LaborCost)
		material = material.Add(a.MaterialCost)
	}
	return Totals{
		Labor:    labor,
		Material: material,
		Total:    labor.Add(material),
	}
}

// Adjustment kinds for a manually overridden total.
const (
	AdjustmentDiscount = "discount"
	AdjustmentIncrease = "increase"
)

// Adjustment is the delta between a document's stored total and a manual
// override, as shown next to the manual-total editor.
type Adjustment struct {
	Kind   string
	Amount decimal.Decimal
}

// AdjustmentFor compares the original stored total with a manual override.
// Overriding 500 with 400 yields a 100 discount; with 600, a 100 increase.
func AdjustmentFor(original, override decimal.Decimal) Adjustment {
	switch diff := original.Sub(override); {
	case diff.IsPositive():
		return Adjustment{Kind: AdjustmentDiscount, Amount: diff}
	case diff.IsNegative():
		return Adjustment{Kind: AdjustmentIncrease, Amount: diff.Neg()}
	default:
		return Adjustment{Amount: decimal.Zero}
	}
}

// IsZero reports whether the override matches the original amount.
func (a Adjustment) IsZero() bool {
	return a.Kind == ""
}

// String renders the adjustment the way the invoice editor displays it,
// e.g. "100 discount". Zero adjustments render empty.
func (a Adjustment) String() string {
	if a.IsZero() {
		return ""
	}
	return a.Amount.String() + " " + a.Kind
}
