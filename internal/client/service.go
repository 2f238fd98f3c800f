package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"shoplist/internal/domain"
	applog "shoplist/internal/log"
	"shoplist/internal/wire"
)

// Fixed user-facing failure messages. The original cause is logged and
// discarded; callers only ever see these.
var (
	ErrCreateFailed = errors.New("Nepodařilo se vytvořit nákupní seznam")
	ErrGetFailed    = errors.New("Nepodařilo se načíst nákupní seznam")
	ErrListFailed   = errors.New("Nepodařilo se načíst nákupní seznamy")
	ErrUpdateFailed = errors.New("Nepodařilo se aktualizovat nákupní seznam")
	ErrDeleteFailed = errors.New("Nepodařilo se smazat nákupní seznam")
	ErrToggleFailed = errors.New("Nepodařilo se změnit stav seznamu")
)

// A hung probe would otherwise stall the first data operation forever.
const probeTimeout = 3 * time.Second

const listFetchSize = 100

// Service is the selector layer: it owns the client configuration and the
// last known connectivity, picks the backend for every operation, and
// converts wire records into DisplayLists.
type Service struct {
	mu                sync.Mutex
	cfg               AppConfig
	cfgPath           string
	snapshotPath      string
	isOnline          bool
	connectionChecked bool

	api  *APIClient
	mock *MockStore
}

// NewService loads the persisted config and kicks off a background
// connectivity probe, mirroring a page-load connection check. Operations
// that arrive before it finishes run the check themselves.
func NewService(cfgPath string) *Service {
	if cfgPath == "" {
		cfgPath = DefaultConfigPath()
	}
	cfg := LoadAppConfig(cfgPath)
	s := &Service{
		cfg:          cfg,
		cfgPath:      cfgPath,
		snapshotPath: filepath.Join(filepath.Dir(cfgPath), "lists.json"),
		api:          NewAPIClient(cfg.APIBaseURL, cfg.UserIdentity),
		mock:         NewMockStore(),
	}
	go func() {
		s.checkConnection(context.Background())
		s.mu.Lock()
		s.connectionChecked = true
		s.mu.Unlock()
	}()
	return s
}

// checkConnection refreshes the cached reachability. With mock mode on the
// remote is never probed and isOnline is pinned false. Probe failures are
// swallowed into isOnline=false, never surfaced.
func (s *Service) checkConnection(ctx context.Context) {
	s.mu.Lock()
	useMock := s.cfg.UseMockData
	s.mu.Unlock()

	if useMock {
		s.mu.Lock()
		s.isOnline = false
		s.mu.Unlock()
		return
	}

	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	err := s.api.Probe(pctx)

	s.mu.Lock()
	s.isOnline = err == nil
	s.mu.Unlock()
	if err != nil {
		applog.AppWarn("client.probe.fail", err, nil)
	}
}

// ensureConnection lazily completes the first probe; it never re-probes
// once one has finished.
func (s *Service) ensureConnection(ctx context.Context) {
	s.mu.Lock()
	done := s.connectionChecked || s.cfg.UseMockData
	s.mu.Unlock()
	if done {
		return
	}
	s.checkConnection(ctx)
	s.mu.Lock()
	s.connectionChecked = true
	s.mu.Unlock()
}

// activeBackend is re-evaluated on every call; a session can migrate
// between backends between two consecutive operations.
func (s *Service) activeBackend() Backend {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.UseMockData || !s.isOnline {
		return s.mock
	}
	return s.api
}

func (s *Service) IsUsingMockData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.UseMockData || !s.isOnline
}

func (s *Service) ConnectionStatus() ConnectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	usingMock := s.cfg.UseMockData || !s.isOnline
	name := "API Service"
	if usingMock {
		name = "Mock Service"
	}
	return ConnectionStatus{IsOnline: s.isOnline, UsingMock: usingMock, Service: name}
}

// RefreshConnection re-probes synchronously and reports the result.
func (s *Service) RefreshConnection(ctx context.Context) bool {
	s.checkConnection(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectionChecked = true
	return s.isOnline
}

func (s *Service) Config() AppConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig merges a partial update, persists it, and re-probes in the
// background unless the update switched mock mode on. Callers that need a
// fresh status must call RefreshConnection themselves.
func (s *Service) SetConfig(u ConfigUpdate) error {
	s.mu.Lock()
	if u.UseMockData != nil {
		s.cfg.UseMockData = *u.UseMockData
	}
	if u.APIBaseURL != nil {
		s.cfg.APIBaseURL = *u.APIBaseURL
	}
	if u.UserIdentity != nil {
		s.cfg.UserIdentity = *u.UserIdentity
	}
	cfg := s.cfg
	s.mu.Unlock()

	if u.APIBaseURL != nil || u.UserIdentity != nil {
		s.api.UpdateConfig(cfg.APIBaseURL, cfg.UserIdentity)
	}

	err := cfg.Save(s.cfgPath)
	if err != nil {
		applog.AppWarn("client.config.save.fail", err, map[string]any{"path": s.cfgPath})
	}

	if u.UseMockData == nil || !*u.UseMockData {
		go s.checkConnection(context.Background())
	}
	return err
}

func (s *Service) convert(rec *wire.ShoppingList) DisplayList {
	ingredients := make([]string, 0, len(rec.Items))
	for _, it := range rec.Items {
		ingredients = append(ingredients, it.Name)
	}
	name := rec.Name
	if name == "" {
		name = "Unnamed List"
	}
	category := rec.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	return DisplayList{
		ID:          rec.ID,
		Name:        name,
		Category:    category,
		Ingredients: ingredients,
		Done:        rec.Done,
		// Reflects the mode at conversion time, not where the record was
		// actually born. Kept as-is.
		CreatedOnHome: s.IsUsingMockData(),
	}
}

func (s *Service) Create(ctx context.Context, name, category string) (DisplayList, error) {
	s.ensureConnection(ctx)
	rec, err := s.activeBackend().Create(ctx, name, category)
	if err != nil {
		applog.AppError("client.create.fail", err, nil)
		return DisplayList{}, ErrCreateFailed
	}
	return s.convert(rec), nil
}

func (s *Service) Get(ctx context.Context, id string) (DisplayList, error) {
	s.ensureConnection(ctx)
	rec, err := s.activeBackend().Get(ctx, id)
	if err != nil {
		applog.AppError("client.get.fail", err, map[string]any{"id": id})
		return DisplayList{}, ErrGetFailed
	}
	return s.convert(rec), nil
}

// GetAll fetches the first hundred lists and snapshots the result locally
// for offline inspection.
func (s *Service) GetAll(ctx context.Context) ([]DisplayList, error) {
	s.ensureConnection(ctx)
	page, err := s.activeBackend().List(ctx, 0, listFetchSize)
	if err != nil {
		applog.AppError("client.list.fail", err, nil)
		return nil, ErrListFailed
	}
	out := make([]DisplayList, 0, len(page.ItemList))
	for i := range page.ItemList {
		out = append(out, s.convert(&page.ItemList[i]))
	}
	s.writeSnapshot(out)
	return out, nil
}

func (s *Service) Update(ctx context.Context, id, name string, done *bool) (DisplayList, error) {
	s.ensureConnection(ctx)
	if strings.TrimSpace(name) == "" {
		applog.AppError("client.update.fail", errors.New("name is required for update"), map[string]any{"id": id})
		return DisplayList{}, ErrUpdateFailed
	}
	rec, err := s.activeBackend().Update(ctx, id, name, done)
	if err != nil {
		applog.AppError("client.update.fail", err, map[string]any{"id": id})
		return DisplayList{}, ErrUpdateFailed
	}
	return s.convert(rec), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.ensureConnection(ctx)
	if _, err := s.activeBackend().Delete(ctx, id); err != nil {
		applog.AppError("client.delete.fail", err, map[string]any{"id": id})
		return ErrDeleteFailed
	}
	return nil
}

// ToggleDone reads the list back to recover its name (update requires the
// name to be resupplied), then writes the flipped flag. The read and the
// write are two separate operations: a concurrent update in between is
// silently overwritten with the stale read. Known race, kept as-is.
func (s *Service) ToggleDone(ctx context.Context, id string, currentDone bool) (DisplayList, error) {
	s.ensureConnection(ctx)
	rec, err := s.activeBackend().Get(ctx, id)
	if err == nil {
		next := !currentDone
		rec, err = s.activeBackend().Update(ctx, id, rec.Name, &next)
	}
	if err != nil {
		applog.AppError("client.toggle.fail", err, map[string]any{"id": id})
		return DisplayList{}, ErrToggleFailed
	}
	return s.convert(rec), nil
}

// writeSnapshot persists the last good list result beside the config file.
// Best effort; failures are logged and ignored.
func (s *Service) writeSnapshot(lists []DisplayList) {
	if s.snapshotPath == "" {
		return
	}
	data, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.snapshotPath), 0o755); err != nil {
		return
	}
	if err := os.WriteFile(s.snapshotPath, data, 0o600); err != nil {
		applog.AppWarn("client.snapshot.fail", err, map[string]any{"path": s.snapshotPath})
	}
}

// CachedLists returns the last snapshot written by GetAll, if any.
func (s *Service) CachedLists() ([]DisplayList, error) {
	data, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		return nil, err
	}
	var lists []DisplayList
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}
