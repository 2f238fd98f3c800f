// Package client is the consumer-facing side of the application: a remote
// adapter for the REST backend, an in-memory fallback store, and the
// selector layer that decides per call which of the two serves an
// operation.
package client

import (
	"context"

	"shoplist/internal/wire"
)

// Backend is the operation surface shared by the remote adapter and the
// local fallback store. The selector layer picks one per call.
type Backend interface {
	Create(ctx context.Context, name, category string) (*wire.ShoppingList, error)
	Get(ctx context.Context, id string) (*wire.ShoppingList, error)
	List(ctx context.Context, pageIndex, pageSize int) (*wire.ListPage, error)
	Update(ctx context.Context, id, name string, done *bool) (*wire.ShoppingList, error)
	Delete(ctx context.Context, id string) (*wire.DeleteResult, error)
	Probe(ctx context.Context) error
}

var (
	_ Backend = (*APIClient)(nil)
	_ Backend = (*MockStore)(nil)
)

// DisplayList is the simplified view handed to callers. Ingredients keep
// only the item names; completion and timestamps per item are dropped.
type DisplayList struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Ingredients   []string `json:"ingredients"`
	Done          bool     `json:"done"`
	CreatedOnHome bool     `json:"createdOnHome"`
}

// ConnectionStatus is recomputed on demand, never persisted.
type ConnectionStatus struct {
	IsOnline  bool   `json:"isOnline"`
	UsingMock bool   `json:"usingMock"`
	Service   string `json:"service"`
}
