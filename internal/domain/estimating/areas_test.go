package estimating_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/estimating"
)

func namedArea(name string) entity.ProjectArea {
	a := entity.NewProjectArea()
	a.AreaName = name
	return a
}

func TestAreaList_AddAppendsDefaultArea(t *testing.T) {
	list := estimating.AreaList{namedArea("Living Room")}

	got := list.Add()

	require.Len(t, got, 2)
	added := got[1]
	assert.Equal(t, "", added.AreaName)
	assert.Equal(t, entity.AreaTypeIndoor, added.AreaType)
	assert.Equal(t, entity.SurfaceDrywall, added.SurfaceType)
	assert.Equal(t, 2, added.NumberOfCoats)
	assert.True(t, added.LaborCost.IsZero())
	assert.True(t, added.MaterialCost.IsZero())

	assert.Len(t, list, 1, "Add must not touch the original list")
}

func TestAreaList_RemoveKeepsAtLeastOneArea(t *testing.T) {
	list := estimating.AreaList{namedArea("Only")}

	got := list.Remove(0)

	require.Len(t, got, 1, "the last remaining area is not removable")
	assert.Equal(t, "Only", got[0].AreaName)
}

func TestAreaList_RemoveDeletesAtIndexPreservingOrder(t *testing.T) {
	list := estimating.AreaList{namedArea("A"), namedArea("B"), namedArea("C")}

	got := list.Remove(1)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].AreaName)
	assert.Equal(t, "C", got[1].AreaName)
	assert.Len(t, list, 3, "Remove must not touch the original list")
}

func TestAreaList_RemoveOutOfRangeIsIgnored(t *testing.T) {
	list := estimating.AreaList{namedArea("A"), namedArea("B")}

	assert.Len(t, list.Remove(-1), 2)
	assert.Len(t, list.Remove(7), 2)
}

func TestAreaList_ApplyPatchesSingleFieldImmutably(t *testing.T) {
	list := estimating.AreaList{namedArea("Kitchen"), namedArea("Hall")}

	labor := decimal.NewFromInt(250)
	got := list.Apply(0, estimating.AreaPatch{LaborCost: &labor})

	assert.Equal(t, "250", got[0].LaborCost.String())
	assert.Equal(t, "Kitchen", got[0].AreaName, "untouched fields keep their values")
	assert.True(t, list[0].LaborCost.IsZero(), "Apply must not mutate the original list")
	assert.Equal(t, "Hall", got[1].AreaName, "other entries are carried over")
}

func TestAreaList_ApplyMultipleFields(t *testing.T) {
	list := estimating.AreaList{namedArea("Deck")}

	outdoor := entity.AreaTypeOutdoor
	wood := entity.SurfaceWood
	coats := 3
	got := list.Apply(0, estimating.AreaPatch{
		AreaType:      &outdoor,
		SurfaceType:   &wood,
		NumberOfCoats: &coats,
	})

	assert.Equal(t, entity.AreaTypeOutdoor, got[0].AreaType)
	assert.Equal(t, entity.SurfaceWood, got[0].SurfaceType)
	assert.Equal(t, 3, got[0].NumberOfCoats)
}

func TestAreaList_ApplyOutOfRangeIsIgnored(t *testing.T) {
	list := estimating.AreaList{namedArea("A")}

	name := "B"
	got := list.Apply(3, estimating.AreaPatch{AreaName: &name})

	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].AreaName)
}

func TestAreaList_CloneIsIndependent(t *testing.T) {
	list := estimating.AreaList{namedArea("A")}

	clone := list.Clone()
	clone[0].AreaName = "changed"

	assert.Equal(t, "A", list[0].AreaName)
}
