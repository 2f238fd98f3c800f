package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist/internal/wire"
)

// unreachableURL points at a port nothing listens on; probes against it
// fail fast with connection refused.
const unreachableURL = "http://127.0.0.1:1"

func newTestService(t *testing.T, cfg AppConfig) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, cfg.Save(path))
	s := NewService(path)
	s.mock.delay = 0
	return s
}

func fakeRemote(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/shoppingList/myList", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(wire.SummaryPage{
			ItemList: []wire.ListSummary{{ID: "r1", Awid: "raw1", Name: "remote list", State: "active", ItemCount: 2}},
			PageInfo: wire.PageInfo{PageIndex: 0, PageSize: 100, Total: 1, TotalPages: 1},
		})
	})
	mux.HandleFunc("/shoppingList/get", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(wire.ShoppingList{
			ID: "r1", Awid: "raw1", Name: "remote list", State: "active",
			Items: []wire.Item{{ID: "i1", Name: "mléko"}},
		})
	})
	mux.HandleFunc("/shoppingList/update", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Done *bool  `json:"done"`
		}
		json.NewDecoder(r.Body).Decode(&in)
		out := wire.ShoppingList{ID: in.ID, Name: in.Name, State: "active", Items: []wire.Item{}}
		if in.Done != nil {
			out.Done = *in.Done
		}
		json.NewEncoder(w).Encode(out)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMockModeForcesFallback(t *testing.T) {
	srv := fakeRemote(t)
	s := newTestService(t, AppConfig{UseMockData: true, APIBaseURL: srv.URL, UserIdentity: "alice"})
	ctx := context.Background()

	// With mock mode on the remote is never probed: isOnline pinned false.
	assert.False(t, s.RefreshConnection(ctx))

	st := s.ConnectionStatus()
	assert.False(t, st.IsOnline)
	assert.True(t, st.UsingMock)
	assert.Equal(t, "Mock Service", st.Service)

	lists, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, lists, 3) // fixture data, not the remote's single list
	for _, l := range lists {
		assert.True(t, l.CreatedOnHome)
	}
}

func TestFallbackWhenUnreachable(t *testing.T) {
	s := newTestService(t, AppConfig{UseMockData: false, APIBaseURL: unreachableURL, UserIdentity: "alice"})
	ctx := context.Background()

	assert.False(t, s.RefreshConnection(ctx))
	assert.True(t, s.ConnectionStatus().UsingMock)

	created, err := s.Create(ctx, "offline seznam", "")
	require.NoError(t, err)
	assert.True(t, created.CreatedOnHome)

	lists, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, lists, 4) // three fixtures plus the new one
}

func TestRemoteSelectedWhenOnline(t *testing.T) {
	srv := fakeRemote(t)
	s := newTestService(t, AppConfig{UseMockData: false, APIBaseURL: srv.URL, UserIdentity: "alice"})
	ctx := context.Background()

	assert.True(t, s.RefreshConnection(ctx))
	st := s.ConnectionStatus()
	assert.True(t, st.IsOnline)
	assert.False(t, st.UsingMock)
	assert.Equal(t, "API Service", st.Service)

	lists, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "remote list", lists[0].Name)
	// Summaries carry no items and no category; the view falls back
	assert.Empty(t, lists[0].Ingredients)
	assert.Equal(t, "Obecné", lists[0].Category)
	assert.False(t, lists[0].CreatedOnHome)
}

func TestToggleDoneAgainstFallback(t *testing.T) {
	s := newTestService(t, AppConfig{UseMockData: true})
	ctx := context.Background()
	s.RefreshConnection(ctx)

	l, err := s.ToggleDone(ctx, "1", false)
	require.NoError(t, err)
	assert.True(t, l.Done)
	assert.Equal(t, "týdenní nákup", l.Name)

	l, err = s.ToggleDone(ctx, "1", true)
	require.NoError(t, err)
	assert.False(t, l.Done)
}

func TestToggleDoneAgainstRemote(t *testing.T) {
	srv := fakeRemote(t)
	s := newTestService(t, AppConfig{UseMockData: false, APIBaseURL: srv.URL, UserIdentity: "alice"})
	ctx := context.Background()
	require.True(t, s.RefreshConnection(ctx))

	l, err := s.ToggleDone(ctx, "r1", false)
	require.NoError(t, err)
	assert.True(t, l.Done)
	// Name was read back and resupplied on the write
	assert.Equal(t, "remote list", l.Name)
}

func TestFixedFailureMessages(t *testing.T) {
	s := newTestService(t, AppConfig{UseMockData: true})
	ctx := context.Background()
	s.RefreshConnection(ctx)

	_, err := s.Get(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrGetFailed)

	_, err = s.Update(ctx, "does-not-exist", "name", nil)
	assert.ErrorIs(t, err, ErrUpdateFailed)

	assert.ErrorIs(t, s.Delete(ctx, "does-not-exist"), ErrDeleteFailed)

	_, err = s.ToggleDone(ctx, "does-not-exist", false)
	assert.ErrorIs(t, err, ErrToggleFailed)

	// Update with no name fails before touching any backend
	_, err = s.Update(ctx, "1", "  ", nil)
	assert.ErrorIs(t, err, ErrUpdateFailed)
}

func TestSetConfigPersistsAndRetargets(t *testing.T) {
	s := newTestService(t, AppConfig{UseMockData: true})

	identity := "bob"
	useMock := false
	require.NoError(t, s.SetConfig(ConfigUpdate{UserIdentity: &identity, UseMockData: &useMock}))

	// The merge is persisted for the next session
	saved := LoadAppConfig(s.cfgPath)
	assert.Equal(t, "bob", saved.UserIdentity)
	assert.False(t, saved.UseMockData)
	assert.Equal(t, "bob", s.Config().UserIdentity)
}

func TestSnapshotWrittenOnGetAll(t *testing.T) {
	s := newTestService(t, AppConfig{UseMockData: true})
	ctx := context.Background()
	s.RefreshConnection(ctx)

	lists, err := s.GetAll(ctx)
	require.NoError(t, err)

	cached, err := s.CachedLists()
	require.NoError(t, err)
	assert.Equal(t, lists, cached)
}
