package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist/internal/wire"
)

func TestAPIClientAttachesIdentity(t *testing.T) {
	var gotIdentity string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity = r.Header.Get("x-user-identity")
		json.NewEncoder(w).Encode(wire.ShoppingList{ID: "x", Name: "n", State: "active"})
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, "alice")
	_, err := c.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "alice", gotIdentity)

	c.UpdateConfig(srv.URL, "bob")
	_, err = c.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "bob", gotIdentity)
}

func TestAPIClientParsesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(wire.NewError(wire.KindNotFound, "Shopping list not found", map[string]any{"id": "x"}))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, "alice")
	_, err := c.Get(context.Background(), "x")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, wire.KindNotFound, apiErr.Kind)
	assert.Equal(t, "Shopping list not found", apiErr.Message)
	assert.Equal(t, "Shopping list not found", apiErr.Error())
}

func TestAPIClientGenericFailureWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream blew up"))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, "alice")
	_, err := c.Get(context.Background(), "x")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "HTTP 502", apiErr.Error())
}

func TestAPIClientListWidensSummaries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shoppingList/myList", r.URL.Path)
		json.NewEncoder(w).Encode(wire.SummaryPage{
			ItemList: []wire.ListSummary{{ID: "a", Awid: "aw", Name: "n", State: "active", ItemCount: 4}},
			PageInfo: wire.PageInfo{PageIndex: 0, PageSize: 10, Total: 1, TotalPages: 1},
		})
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, "alice")
	page, err := c.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, page.ItemList, 1)
	assert.Equal(t, "a", page.ItemList[0].ID)
	assert.Empty(t, page.ItemList[0].Items)
	assert.Equal(t, 1, page.PageInfo.Total)
}

func TestAPIClientProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))

	c := NewAPIClient(srv.URL, "alice")
	assert.NoError(t, c.Probe(context.Background()))

	srv.Close()
	assert.Error(t, c.Probe(context.Background()))
}
