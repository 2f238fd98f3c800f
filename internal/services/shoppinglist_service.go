package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"shoplist/internal/domain"
	"shoplist/internal/repos"
)

var (
	ErrNotFound     = errors.New("shopping list not found")
	ErrUnauthorized = errors.New("only the owner can modify this shopping list")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type ShoppingListService struct {
	Repo *repos.ShoppingListRepo
}

func NewShoppingListService(r *repos.ShoppingListRepo) *ShoppingListService {
	return &ShoppingListService{Repo: r}
}

func (s *ShoppingListService) Create(ownerID, name, category string) (domain.ShoppingList, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = domain.DefaultCategory
	}
	ts := time.Now().UTC().Format(time.RFC3339)
	l := domain.ShoppingList{
		ID:        uuid.NewString(),
		Awid:      uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Category:  category,
		State:     domain.StateActive,
		OwnerID:   ownerID,
		ItemsJSON: "[]",
		Done:      false,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := s.Repo.Insert(l); err != nil {
		return domain.ShoppingList{}, err
	}
	return l, nil
}

// Get resolves by id or awid. Reads are not owner-gated; only mutation is.
func (s *ShoppingListService) Get(idOrAwid string) (domain.ShoppingList, error) {
	l, err := s.Repo.FindActive(idOrAwid)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ShoppingList{}, ErrNotFound
	}
	return l, err
}

type ListPage struct {
	Items      []domain.ShoppingList
	PageIndex  int
	PageSize   int
	Total      int
	TotalPages int
}

func (s *ShoppingListService) MyList(ownerID string, pageIndex, pageSize int) (ListPage, error) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	items, total, err := s.Repo.PageByOwner(ownerID, pageIndex, pageSize)
	if err != nil {
		return ListPage{}, err
	}
	totalPages := (total + pageSize - 1) / pageSize
	return ListPage{
		Items:      items,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Update renames a list and optionally flips its done flag. Only the owner
// may mutate; deleted records behave as not found.
func (s *ShoppingListService) Update(idOrAwid, ownerID, name string, done *bool) (domain.ShoppingList, error) {
	l, err := s.Get(idOrAwid)
	if err != nil {
		return domain.ShoppingList{}, err
	}
	if l.OwnerID != ownerID {
		return domain.ShoppingList{}, ErrUnauthorized
	}
	l.Name = strings.TrimSpace(name)
	if done != nil {
		l.Done = *done
	}
	ts, err := s.Repo.UpdateNameDone(l.ID, l.Name, l.Done)
	if err != nil {
		return domain.ShoppingList{}, err
	}
	l.UpdatedAt = ts
	return l, nil
}

// Delete soft-deletes. A second delete of the same record reports not
// found, same as deleting a record that never existed.
func (s *ShoppingListService) Delete(idOrAwid, ownerID string) (domain.ShoppingList, error) {
	l, err := s.Get(idOrAwid)
	if err != nil {
		return domain.ShoppingList{}, err
	}
	if l.OwnerID != ownerID {
		return domain.ShoppingList{}, ErrUnauthorized
	}
	ts, err := s.Repo.SoftDelete(l.ID)
	if err != nil {
		return domain.ShoppingList{}, err
	}
	l.State = domain.StateDeleted
	l.UpdatedAt = ts
	return l, nil
}
