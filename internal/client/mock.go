package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shoplist/internal/domain"
	"shoplist/internal/wire"
)

// MockIdentity is the fixed pseudo-identity that owns every record in the
// fallback store.
const MockIdentity = "frontend-user"

// mockDelay keeps timing-sensitive callers on the same code paths they
// would exercise against a real network.
const mockDelay = 300 * time.Millisecond

// MockStore is the in-memory substitute backend used when the remote is
// disabled or unreachable. Seeded with fixture lists so the application is
// usable offline from the first call.
type MockStore struct {
	mu    sync.Mutex
	lists []wire.ShoppingList
	delay time.Duration
}

func NewMockStore() *MockStore {
	return &MockStore{lists: fixtureLists(), delay: mockDelay}
}

func fixtureLists() []wire.ShoppingList {
	now := time.Now().UTC()
	ts := func(d time.Duration) string { return now.Add(-d).Format(time.RFC3339) }
	item := func(name string, completed bool) wire.Item {
		return wire.Item{ID: uuid.NewString(), Name: name, Completed: completed, AddedAt: ts(0)}
	}
	return []wire.ShoppingList{
		{
			Awid: uuid.NewString(), ID: "1", Name: "týdenní nákup", Category: "běžné věci",
			State: domain.StateActive, OwnerID: MockIdentity,
			Items: []wire.Item{
				item("rohlíky", false), item("máslo", false), item("jogurt", true),
				item("banány", false), item("šunka", false),
			},
			Done: false, CreatedAt: ts(24 * time.Hour), UpdatedAt: ts(time.Hour),
		},
		{
			Awid: uuid.NewString(), ID: "2", Name: "party supplies", Category: "zábava",
			State: domain.StateActive, OwnerID: MockIdentity,
			Items: []wire.Item{
				item("čipsy", false), item("cola", false), item("pizza", true),
			},
			Done: true, CreatedAt: ts(48 * time.Hour), UpdatedAt: ts(2 * time.Hour),
		},
		{
			Awid: uuid.NewString(), ID: "3", Name: "zdravé jídlo", Category: "zdraví",
			State: domain.StateActive, OwnerID: MockIdentity,
			Items: []wire.Item{
				item("brokolice", false), item("quinoa", false), item("avokádo", false),
				item("losos", true),
			},
			Done: false, CreatedAt: ts(72 * time.Hour), UpdatedAt: ts(3 * time.Hour),
		},
	}
}

func (m *MockStore) sleep(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}
	t := time.NewTimer(m.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// find returns the index of a non-deleted record matching id or awid.
func (m *MockStore) find(id string) int {
	for i, l := range m.lists {
		if (l.ID == id || l.Awid == id) && l.State != domain.StateDeleted {
			return i
		}
	}
	return -1
}

func (m *MockStore) Create(ctx context.Context, name, category string) (*wire.ShoppingList, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	category = strings.TrimSpace(category)
	if category == "" {
		category = domain.DefaultCategory
	}
	now := time.Now().UTC().Format(time.RFC3339)
	l := wire.ShoppingList{
		Awid:      uuid.NewString(),
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Category:  category,
		State:     domain.StateActive,
		OwnerID:   MockIdentity,
		Items:     []wire.Item{},
		Done:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.lists = append(m.lists, l)
	return &l, nil
}

func (m *MockStore) Get(ctx context.Context, id string) (*wire.ShoppingList, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.find(id)
	if i < 0 {
		return nil, &APIError{Status: 404, Kind: wire.KindNotFound, Message: "Shopping list not found"}
	}
	l := m.lists[i]
	return &l, nil
}

func (m *MockStore) List(ctx context.Context, pageIndex, pageSize int) (*wire.ListPage, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	var active []wire.ShoppingList
	for _, l := range m.lists {
		if l.State == domain.StateActive {
			active = append(active, l)
		}
	}

	start := pageIndex * pageSize
	end := start + pageSize
	if start > len(active) {
		start = len(active)
	}
	if end > len(active) {
		end = len(active)
	}

	return &wire.ListPage{
		ItemList: append([]wire.ShoppingList{}, active[start:end]...),
		PageInfo: wire.PageInfo{
			PageIndex:  pageIndex,
			PageSize:   pageSize,
			Total:      len(active),
			TotalPages: (len(active) + pageSize - 1) / pageSize,
		},
	}, nil
}

func (m *MockStore) Update(ctx context.Context, id, name string, done *bool) (*wire.ShoppingList, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.find(id)
	if i < 0 {
		return nil, &APIError{Status: 404, Kind: wire.KindNotFound, Message: "Shopping list not found"}
	}
	m.lists[i].Name = strings.TrimSpace(name)
	if done != nil {
		m.lists[i].Done = *done
	}
	m.lists[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	l := m.lists[i]
	return &l, nil
}

func (m *MockStore) Delete(ctx context.Context, id string) (*wire.DeleteResult, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.find(id)
	if i < 0 {
		return nil, &APIError{Status: 404, Kind: wire.KindNotFound, Message: "Shopping list not found"}
	}
	m.lists[i].State = domain.StateDeleted
	m.lists[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return &wire.DeleteResult{Success: true, ID: m.lists[i].ID, Awid: m.lists[i].Awid}, nil
}

// Probe always succeeds; the fallback store is never unreachable.
func (m *MockStore) Probe(ctx context.Context) error {
	return m.sleep(ctx)
}

// Reset restores the fixture data. Test hook.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists = fixtureLists()
}
