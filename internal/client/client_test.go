package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/admin-nexus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestResourceListAndGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/categories":
			writeEnvelope(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    []map[string]interface{}{{"id": "c1", "name": "Tech", "slug": "tech"}},
			})
		case "/api/categories/c1":
			writeEnvelope(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"id": "c1", "name": "Tech", "slug": "tech"},
			})
		default:
			writeEnvelope(w, http.StatusNotFound, map[string]interface{}{"success": false, "error": "Category not found"})
		}
	}))
	defer srv.Close()

	res := NewResource[models.Category](New(srv.URL), "categories")

	items, err := res.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "tech", items[0].Slug)

	item, err := res.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Tech", item.Name)

	_, err = res.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Category not found", apiErr.Message)
}

func TestResourceEmptyListIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": true, "data": []interface{}{}})
	}))
	defer srv.Close()

	items, err := NewResource[models.User](New(srv.URL), "users").List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestResourceWritesSendJSONAndToken(t *testing.T) {
	var gotMethod, gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": "p1", "name": "Renamed"},
		})
	}))
	defer srv.Close()

	res := NewResource[models.Product](New(srv.URL, WithToken("tok")), "products")
	item, err := res.Update(context.Background(), "p1", Patch{"name": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "Renamed", gotBody["name"])
	assert.Equal(t, "Renamed", item.Name)
}

func TestStatusUpdateReturnsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/t1/status", r.URL.Path)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Transaction status updated successfully"})
	}))
	defer srv.Close()

	msg, err := NewResource[models.Transaction](New(srv.URL), "transactions").SetStatus(context.Background(), "t1", "completed")
	require.NoError(t, err)
	assert.Equal(t, "Transaction status updated successfully", msg)
}

func TestDoRejectsNonEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Do(context.Background(), http.MethodGet, "/api/users", nil, nil, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestAddXPAndDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/u1/add-xp":
			var body map[string]int64
			_ = json.NewDecoder(r.Body).Decode(&body)
			writeEnvelope(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"id": "u1", "total_xp": body["xpAmount"]},
			})
		case "/api/waitlist/export":
			assert.Equal(t, "csv", r.URL.Query().Get("format"))
			w.Header().Set("Content-Disposition", `attachment; filename="waitlist-2026-01-02.csv"`)
			_, _ = w.Write([]byte("\"Email\"\n"))
		}
	}))
	defer srv.Close()

	api := NewAPI(New(srv.URL))
	user, err := api.AddXP(context.Background(), "u1", 75)
	require.NoError(t, err)
	assert.EqualValues(t, 75, user.TotalXP)

	data, name, err := api.ExportWaitlist(context.Background(), "csv", nil)
	require.NoError(t, err)
	assert.Equal(t, "waitlist-2026-01-02.csv", name)
	assert.Equal(t, "\"Email\"\n", string(data))
}
