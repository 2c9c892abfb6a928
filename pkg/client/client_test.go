package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cindychcheng/paintpro-manager-sub001/pkg/client"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*client.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL), srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envelope decoding and error surfacing
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateInvoice_ReturnsCanonicalRecord(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/invoices/inv-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Repaint hallway", draft["title"], "the full editable set travels in the body")

		writeJSON(w, http.StatusOK, `{
			"success": true,
			"data": {
				"id": "inv-1",
				"invoice_number": "INV-2026-0007",
				"title": "Repaint hallway",
				"status": "draft",
				"total_labor": "300",
				"total_material": "125",
				"total_amount": "425",
				"areas": [{"id":"area-1","area_name":"Hallway","area_type":"indoor","surface_type":"drywall","paint_finish":"eggshell","number_of_coats":2,"labor_cost":"300","material_cost":"125"}]
			}
		}`)
	})

	inv, err := api.UpdateInvoice(context.Background(), "inv-1", client.InvoiceDraft{Title: "Repaint hallway"})
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-0007", inv.InvoiceNumber)
	assert.Equal(t, "425", inv.TotalAmount.String(), "computed fields come from the server")
	require.Len(t, inv.Areas, 1)
	assert.Equal(t, "area-1", inv.Areas[0].ID)
}

// A success:false envelope must surface the server's message verbatim, no
// matter which status code carried it.
func TestServerError_SurfacedVerbatim(t *testing.T) {
	cases := []struct {
		name   string
		status int
	}{
		{"enveloped 400", http.StatusBadRequest},
		{"success false on 200", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, `{"success":false,"error":"X"}`)
			})

			_, err := api.UpdateInvoice(context.Background(), "inv-1", client.InvoiceDraft{Title: "t"})
			require.Error(t, err)
			assert.Equal(t, "X", err.Error(), "the server's message travels unchanged")

			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
		})
	}
}

func TestTransportFailure_GenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	api := client.New(srv.URL)
	srv.Close() // connection refused from here on

	_, err := api.UpdateInvoice(context.Background(), "inv-1", client.InvoiceDraft{Title: "t"})
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrRequestFailed)
	assert.Contains(t, err.Error(), "request failed, please try again",
		"network failures surface the generic message, not a raw dial error alone")
}

func TestNon2xxWithoutEnvelope_GenericMessage(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
	})

	err := api.Health(context.Background())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "request failed, please try again", apiErr.Message)
}

func TestHealth(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"status":"ok"}}`)
	})
	assert.NoError(t, api.Health(context.Background()))

	down, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, `{"success":false,"error":"database unreachable"}`)
	})
	err := down.Health(context.Background())
	require.Error(t, err)
	assert.Equal(t, "database unreachable", err.Error())
}

func TestCreateClient(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/clients", r.URL.Path)
		writeJSON(w, http.StatusCreated, `{"success":true,"data":{"id":"c-1","name":"Harbor View Homes"}}`)
	})

	rec, err := api.CreateClient(context.Background(), client.ClientRecord{Name: "Harbor View Homes"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", rec.ID)
	assert.Equal(t, "Harbor View Homes", rec.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estimate search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearchEstimates_BuildsQueryAndDecodesPage(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/estimates", r.URL.Path)
		assert.Equal(t, "deck", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, `{
			"success": true,
			"data": {
				"estimates": [{"id":"e-1","estimate_number":"EST-2026-0001","title":"Deck refinish","status":"sent","total_amount":"310"}],
				"pagination": {"page":2,"limit":10,"total":11,"total_pages":2}
			}
		}`)
	})

	page, err := api.SearchEstimates(context.Background(), "deck", 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Estimates, 1)
	assert.Equal(t, "EST-2026-0001", page.Estimates[0].EstimateNumber)
	assert.Equal(t, 11, page.Pagination.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logo upload and the two-step settings save
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadLogo_SendsMultipartAndReturnsURL(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload-logo", r.URL.Path)

		file, header, err := r.FormFile("logo")
		require.NoError(t, err, "the image travels in the multipart field \"logo\"")
		defer file.Close()
		assert.Equal(t, "brand.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		payload, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(payload))

		writeJSON(w, http.StatusOK, `{"success":true,"url":"/uploads/8a2f.png"}`)
	})

	url, err := api.UploadLogo(context.Background(), "brand.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/8a2f.png", url)
}

func TestSaveCompanySettings_UploadsLogoFirst(t *testing.T) {
	var (
		mu    sync.Mutex
		steps []string
	)
	record := func(step string) {
		mu.Lock()
		defer mu.Unlock()
		steps = append(steps, step)
	}
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/upload-logo":
			record("upload")
			writeJSON(w, http.StatusOK, `{"success":true,"url":"/uploads/new-logo.png"}`)
		case "/api/company-settings":
			record("save")
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "/uploads/new-logo.png", body["logo_url"],
				"the settings payload references the freshly uploaded image")
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":"s-1","company_name":"ProCoat Painting","logo_url":"/uploads/new-logo.png"}}`)
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	})

	saved, err := api.SaveCompanySettings(context.Background(),
		client.CompanySettings{
			CompanyName:    "ProCoat Painting",
			CompanyAddress: "18 Mill Road",
			CompanyPhone:   "604-555-0188",
			CompanyEmail:   "office@procoat.example",
		},
		&client.LogoUpload{Filename: "logo.png", Reader: strings.NewReader("png bytes")},
	)
	require.NoError(t, err)
	mu.Lock()
	assert.Equal(t, []string{"upload", "save"}, steps, "the upload strictly precedes the save")
	mu.Unlock()
	assert.Equal(t, "/uploads/new-logo.png", saved.LogoURL)
}

func TestSaveCompanySettings_UploadFailureAbortsSave(t *testing.T) {
	var saveCalls atomic.Int32
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/upload-logo":
			writeJSON(w, http.StatusBadRequest, `{"success":false,"error":"logo file type not allowed: got \"application/pdf\", want jpeg, png or gif"}`)
		case "/api/company-settings":
			saveCalls.Add(1)
			writeJSON(w, http.StatusOK, `{"success":true,"data":{}}`)
		}
	})

	_, err := api.SaveCompanySettings(context.Background(),
		client.CompanySettings{CompanyName: "ProCoat Painting"},
		&client.LogoUpload{Filename: "contract.pdf", Reader: strings.NewReader("%PDF-1.4")},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrLogoUpload, "the upload step fails with its own error")
	assert.Contains(t, err.Error(), "logo file type not allowed")
	assert.EqualValues(t, 0, saveCalls.Load(), "a failed upload aborts the whole save")
}

func TestSaveCompanySettings_NoLogoSkipsUpload(t *testing.T) {
	var uploads atomic.Int32
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/upload-logo":
			uploads.Add(1)
			writeJSON(w, http.StatusOK, `{"success":true,"url":"/uploads/x.png"}`)
		case "/api/company-settings":
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":"s-1","company_name":"ProCoat Painting"}}`)
		}
	})

	saved, err := api.SaveCompanySettings(context.Background(),
		client.CompanySettings{CompanyName: "ProCoat Painting"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "s-1", saved.ID)
	assert.EqualValues(t, 0, uploads.Load())
}

func TestGetCompanySettings_NilBeforeFirstSave(t *testing.T) {
	api, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":null}`)
	})

	settings, err := api.GetCompanySettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}
