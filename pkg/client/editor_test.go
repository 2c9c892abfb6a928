package client_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cindychcheng/paintpro-manager-sub001/pkg/client"
)

func wireArea(name string, labor, material int64) client.ProjectArea {
	return client.ProjectArea{
		AreaName:      name,
		AreaType:      "indoor",
		SurfaceType:   "drywall",
		PaintFinish:   "eggshell",
		NumberOfCoats: 2,
		LaborCost:     decimal.NewFromInt(labor),
		MaterialCost:  decimal.NewFromInt(material),
	}
}

// canonicalInvoice is the record an editor is seeded from: two areas whose
// costs sum to 500.
func canonicalInvoice() *client.Invoice {
	return &client.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-2026-0007",
		Title:         "Two rooms",
		Status:        "draft",
		PaymentTerms:  "Net 30",
		TotalLabor:    decimal.NewFromInt(380),
		TotalMaterial: decimal.NewFromInt(120),
		TotalAmount:   decimal.NewFromInt(500),
		Areas: []client.ProjectArea{
			wireArea("Kitchen", 300, 100),
			wireArea("Bedroom", 80, 20),
		},
	}
}

func newEditor() *client.InvoiceEditor {
	return client.NewInvoiceEditor(client.New("http://127.0.0.1:0"), canonicalInvoice())
}

// ──────────────────────────────────────────────────────────────────────────────
// Draft editing
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_DraftSeededFromCanonicalRecord(t *testing.T) {
	e := newEditor()

	draft := e.Draft()
	assert.Equal(t, "Two rooms", draft.Title)
	assert.Equal(t, "Net 30", draft.PaymentTerms)
	require.Len(t, draft.Areas, 2)

	draft.Areas[0].AreaName = "scribbled over"
	assert.Equal(t, "Kitchen", e.Draft().Areas[0].AreaName,
		"Draft returns a copy, not a window into the editor")
}

func TestEditor_AddArea_AppendsDefault(t *testing.T) {
	e := newEditor()

	e.AddArea()

	areas := e.Draft().Areas
	require.Len(t, areas, 3)
	added := areas[2]
	assert.Equal(t, "", added.AreaName)
	assert.Equal(t, "indoor", added.AreaType)
	assert.Equal(t, "drywall", added.SurfaceType)
	assert.Equal(t, 2, added.NumberOfCoats)
	assert.True(t, added.LaborCost.IsZero())
}

func TestEditor_RemoveArea_NeverBelowOne(t *testing.T) {
	e := newEditor()

	e.RemoveArea(0)
	require.Len(t, e.Draft().Areas, 1)
	assert.Equal(t, "Bedroom", e.Draft().Areas[0].AreaName)

	e.RemoveArea(0)
	require.Len(t, e.Draft().Areas, 1, "the last area is not removable")

	e.RemoveArea(5)
	assert.Len(t, e.Draft().Areas, 1, "out-of-range removals are ignored")
}

func TestEditor_UpdateArea_PatchesSingleField(t *testing.T) {
	e := newEditor()

	labor := decimal.NewFromInt(350)
	e.UpdateArea(0, client.AreaPatch{LaborCost: &labor})

	areas := e.Draft().Areas
	assert.Equal(t, "350", areas[0].LaborCost.String())
	assert.Equal(t, "Kitchen", areas[0].AreaName, "untouched fields keep their values")
	assert.Equal(t, "Bedroom", areas[1].AreaName)

	e.UpdateArea(9, client.AreaPatch{LaborCost: &labor})
	assert.Len(t, e.Draft().Areas, 2, "out-of-range updates are ignored")
}

// ──────────────────────────────────────────────────────────────────────────────
// Totals and adjustments
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_Totals_SumLaborAndMaterial(t *testing.T) {
	e := client.NewInvoiceEditor(client.New("http://127.0.0.1:0"), &client.Invoice{
		ID:    "inv-2",
		Title: "Add two areas",
		Areas: []client.ProjectArea{
			wireArea("A", 100, 50),
			wireArea("B", 200, 75),
		},
	})

	totals := e.Totals()
	assert.Equal(t, "300", totals.Labor.String())
	assert.Equal(t, "125", totals.Material.String())
	assert.Equal(t, "425", totals.Total.String())
}

func TestEditor_ManualTotalAdjustments(t *testing.T) {
	e := newEditor() // derived total 500

	e.SetManualTotal(decimal.NewFromInt(400))
	adj := e.Adjustment()
	require.NotNil(t, adj)
	assert.Equal(t, "discount", adj.Kind)
	assert.Equal(t, "100", adj.Amount.String())
	assert.Equal(t, "400", e.Totals().Total.String(), "the manual amount pins the total")

	e.SetManualTotal(decimal.NewFromInt(600))
	adj = e.Adjustment()
	require.NotNil(t, adj)
	assert.Equal(t, "increase", adj.Kind)
	assert.Equal(t, "100", adj.Amount.String())

	e.UseComputedTotal()
	assert.Nil(t, e.Adjustment())
	assert.Equal(t, "500", e.Totals().Total.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validation
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_Validate(t *testing.T) {
	e := newEditor()
	assert.Empty(t, e.Validate(), "the seeded draft is valid")

	e.SetTitle("   ")
	errs := e.Validate()
	assert.Equal(t, "Title is required", errs["title"])

	e.SetTitle("Two rooms")
	e.AddArea() // unnamed
	errs = e.Validate()
	assert.Contains(t, errs, "areas[2].area_name")

	e.RemoveArea(2)
	e.SetManualTotal(decimal.Zero)
	errs = e.Validate()
	assert.Equal(t, "Total amount must be greater than 0", errs["total_amount"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Submission state machine
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_Submit_ReplacesDraftWithServerRecord(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/invoices/inv-1", r.URL.Path)
		writeJSON(w, http.StatusOK, `{
			"success": true,
			"data": {
				"id": "inv-1",
				"invoice_number": "INV-2026-0007",
				"title": "Two rooms",
				"status": "sent",
				"total_labor": "380",
				"total_material": "120",
				"total_amount": "500",
				"areas": [{"id":"area-1","area_name":"Kitchen","area_type":"indoor","surface_type":"drywall","paint_finish":"eggshell","number_of_coats":2,"labor_cost":"300","material_cost":"100"}]
			}
		}`)
	})
	e := client.NewInvoiceEditor(api, canonicalInvoice())
	e.SetStatus("sent")

	inv, err := e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sent", inv.Status)

	assert.Equal(t, client.StateIdle, e.State(), "a finished submit returns to idle")
	assert.Equal(t, "sent", e.Invoice().Status, "the canonical record is installed")
	require.Len(t, e.Draft().Areas, 1)
	assert.Equal(t, "area-1", e.Draft().Areas[0].ID,
		"the draft is rebuilt from the server's record, including stored area ids")
}

func TestEditor_Submit_ValidationFailureSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{}}`)
	})
	e := client.NewInvoiceEditor(api, canonicalInvoice())
	e.SetTitle("")

	_, err := e.Submit(context.Background())
	require.Error(t, err)

	var vErr *client.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Title is required", vErr.Fields["title"])
	assert.EqualValues(t, 0, calls.Load(), "invalid drafts never reach the network")
}

func TestEditor_Submit_ServerErrorLeavesDraft(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"success":false,"error":"due_date: must be YYYY-MM-DD"}`)
	})
	e := client.NewInvoiceEditor(api, canonicalInvoice())
	e.SetTitle("Two rooms, revised")

	_, err := e.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "due_date: must be YYYY-MM-DD", err.Error())

	assert.Equal(t, client.StateIdle, e.State(), "a failed submit returns to idle")
	assert.Equal(t, "Two rooms, revised", e.Draft().Title,
		"the draft survives so the user can resubmit")
}

func TestEditor_Submit_RefusesConcurrentSubmission(t *testing.T) {
	release := make(chan struct{})
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeJSON(w, http.StatusOK, `{
			"success": true,
			"data": {"id":"inv-1","invoice_number":"INV-2026-0007","title":"Two rooms","status":"draft","areas":[]}
		}`)
	})
	e := client.NewInvoiceEditor(api, canonicalInvoice())

	done := make(chan error, 1)
	go func() {
		_, err := e.Submit(context.Background())
		done <- err
	}()

	require.Eventually(t, func() bool {
		return e.State() == client.StateSubmitting
	}, 2*time.Second, 5*time.Millisecond, "the first submit must reach the in-flight state")

	_, err := e.Submit(context.Background())
	assert.ErrorIs(t, err, client.ErrSubmitInProgress,
		"submissions are not concurrent and not abortable")

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, client.StateIdle, e.State())
}
