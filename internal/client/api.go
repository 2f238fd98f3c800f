package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"shoplist/internal/wire"
)

// APIError is a failure reported by the backend itself, as opposed to a
// transport-level failure (connection refused, timeout, garbage body).
type APIError struct {
	Status  int
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// APIClient talks to the REST backend. It attaches the configured identity
// to every call and normalizes error responses into *APIError.
type APIClient struct {
	mu       sync.Mutex
	baseURL  string
	identity string
	http     *http.Client
}

func NewAPIClient(baseURL, identity string) *APIClient {
	return &APIClient{
		baseURL:  baseURL,
		identity: identity,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// UpdateConfig swaps the target URL and identity; in-flight requests keep
// the values they started with.
func (c *APIClient) UpdateConfig(baseURL, identity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = baseURL
	c.identity = identity
}

func (c *APIClient) target() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.baseURL, c.identity
}

func (c *APIClient) request(ctx context.Context, method, path string, body, out any) error {
	base, identity := c.target()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-user-identity", identity)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env wire.ErrorEnvelope
		if jerr := json.Unmarshal(data, &env); jerr == nil {
			if kind, detail, ok := env.First(); ok {
				return &APIError{Status: resp.StatusCode, Kind: kind, Message: detail.Message}
			}
		}
		return &APIError{Status: resp.StatusCode}
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *APIClient) Create(ctx context.Context, name, category string) (*wire.ShoppingList, error) {
	in := map[string]string{"name": name}
	if category != "" {
		in["category"] = category
	}
	var out wire.ShoppingList
	if err := c.request(ctx, http.MethodPost, "/shoppingList/create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Get(ctx context.Context, id string) (*wire.ShoppingList, error) {
	var out wire.ShoppingList
	if err := c.request(ctx, http.MethodGet, "/shoppingList/get?id="+url.QueryEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) List(ctx context.Context, pageIndex, pageSize int) (*wire.ListPage, error) {
	path := "/shoppingList/myList?pageIndex=" + strconv.Itoa(pageIndex) + "&pageSize=" + strconv.Itoa(pageSize)
	var page wire.SummaryPage
	if err := c.request(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}

	// myList carries summaries only; widen to records with empty items so
	// both backends hand the selector the same shape.
	out := &wire.ListPage{PageInfo: page.PageInfo, ItemList: make([]wire.ShoppingList, 0, len(page.ItemList))}
	for _, s := range page.ItemList {
		out.ItemList = append(out.ItemList, wire.ShoppingList{
			Awid:      s.Awid,
			ID:        s.ID,
			Name:      s.Name,
			State:     s.State,
			OwnerID:   s.OwnerID,
			Items:     []wire.Item{},
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return out, nil
}

func (c *APIClient) Update(ctx context.Context, id, name string, done *bool) (*wire.ShoppingList, error) {
	in := map[string]any{"id": id, "name": name}
	if done != nil {
		in["done"] = *done
	}
	var out wire.ShoppingList
	if err := c.request(ctx, http.MethodPut, "/shoppingList/update", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Delete(ctx context.Context, id string) (*wire.DeleteResult, error) {
	var out wire.DeleteResult
	if err := c.request(ctx, http.MethodDelete, "/shoppingList/delete", map[string]string{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Probe hits the liveness path. It needs no valid application data to
// exist; any 2xx means reachable.
func (c *APIClient) Probe(ctx context.Context) error {
	return c.request(ctx, http.MethodGet, "/health", nil, nil)
}
