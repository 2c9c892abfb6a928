package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
)

// project_areas rows belong to either an invoice or an estimate; parent_kind
// tells them apart and position keeps the user's ordering.
const (
	areaParentInvoice  = "invoice"
	areaParentEstimate = "estimate"
)

func insertAreas(ctx context.Context, q Querier, parentKind, parentID string, areas []entity.ProjectArea) error {
	query := `
		INSERT INTO project_areas (
			id, parent_kind, parent_id, position,
			area_name, area_type, surface_type, square_footage, ceiling_height,
			prep_requirements, paint_type, paint_brand, paint_color, paint_finish,
			number_of_coats, labor_cost, material_cost, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	for i := range areas {
		a := &areas[i]
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		_, err := q.Exec(ctx, query,
			a.ID, parentKind, parentID, i,
			a.AreaName, a.AreaType, a.SurfaceType, a.SquareFootage, a.CeilingHeight,
			nullIfEmpty(a.PrepRequirements), nullIfEmpty(a.PaintType), nullIfEmpty(a.PaintBrand),
			nullIfEmpty(a.PaintColor), a.PaintFinish,
			a.NumberOfCoats, a.LaborCost, a.MaterialCost, nullIfEmpty(a.Notes),
		)
		if err != nil {
			return fmt.Errorf("insert project area %d: %w", i, err)
		}
	}
	return nil
}

// replaceAreas rewrites the parent's area list wholesale, in request order.
func replaceAreas(ctx context.Context, q Querier, parentKind, parentID string, areas []entity.ProjectArea) error {
	if _, err := q.Exec(ctx,
		`DELETE FROM project_areas WHERE parent_kind = $1 AND parent_id = $2`,
		parentKind, parentID,
	); err != nil {
		return fmt.Errorf("delete project areas: %w", err)
	}
	return insertAreas(ctx, q, parentKind, parentID, areas)
}

func loadAreas(ctx context.Context, q Querier, parentKind, parentID string) ([]entity.ProjectArea, error) {
	query := `
		SELECT id, area_name, area_type, surface_type, square_footage, ceiling_height,
		       prep_requirements, paint_type, paint_brand, paint_color, paint_finish,
		       number_of_coats, labor_cost, material_cost, notes
		FROM project_areas
		WHERE parent_kind = $1 AND parent_id = $2
		ORDER BY position`
	rows, err := q.Query(ctx, query, parentKind, parentID)
	if err != nil {
		return nil, fmt.Errorf("load project areas: %w", err)
	}
	defer rows.Close()

	areas := make([]entity.ProjectArea, 0, 4)
	for rows.Next() {
		var a entity.ProjectArea
		var prep, paintType, paintBrand, paintColor, notes *string
		if err := rows.Scan(
			&a.ID, &a.AreaName, &a.AreaType, &a.SurfaceType, &a.SquareFootage, &a.CeilingHeight,
			&prep, &paintType, &paintBrand, &paintColor, &a.PaintFinish,
			&a.NumberOfCoats, &a.LaborCost, &a.MaterialCost, &notes,
		); err != nil {
			return nil, fmt.Errorf("scan project area: %w", err)
		}
		a.PrepRequirements = derefStr(prep)
		a.PaintType = derefStr(paintType)
		a.PaintBrand = derefStr(paintBrand)
		a.PaintColor = derefStr(paintColor)
		a.Notes = derefStr(notes)
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

// nextDocumentNumber yields the next "PREFIX-YYYY-NNNN" number for the
// given table. The sequence restarts every year; the unique index on the
// number column catches the rare concurrent duplicate.
func nextDocumentNumber(ctx context.Context, q Querier, table, column, prefix string) (string, error) {
	year := time.Now().Year()
	like := fmt.Sprintf("%s-%d-%%", prefix, year)
	query := fmt.Sprintf(
		`SELECT COALESCE(MAX(CAST(SUBSTRING(%s FROM 10) AS INTEGER)), 0) FROM %s WHERE %s LIKE $1`,
		column, table, column,
	)
	var last int
	if err := q.QueryRow(ctx, query, like).Scan(&last); err != nil {
		return "", fmt.Errorf("next %s number: %w", prefix, err)
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, last+1), nil
}
