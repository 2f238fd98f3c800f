package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"shoplist/internal/domain"
)

type ShoppingListRepo struct{ db *sqlx.DB }

func NewShoppingListRepo(db *sqlx.DB) *ShoppingListRepo { return &ShoppingListRepo{db: db} }

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func (r *ShoppingListRepo) Insert(l domain.ShoppingList) error {
	_, err := r.db.Exec(`
	  INSERT INTO shopping_lists(id, awid, name, category, state, owner_id, items_json, done, created_at, updated_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, l.ID, l.Awid, l.Name, l.Category, l.State, l.OwnerID, l.ItemsJSON, l.Done, l.CreatedAt, l.UpdatedAt)
	return err
}

// FindActive looks a record up by id or awid, excluding soft-deleted rows.
// Returns sql.ErrNoRows when nothing matches.
func (r *ShoppingListRepo) FindActive(idOrAwid string) (domain.ShoppingList, error) {
	var l domain.ShoppingList
	err := r.db.Get(&l, `
	  SELECT id, awid, name, category, state, owner_id, items_json, done,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM shopping_lists
	  WHERE (id = ? OR awid = ?) AND state != 'deleted'
	`, idOrAwid, idOrAwid)
	return l, err
}

// PageByOwner returns one page of the owner's non-deleted lists, most
// recently updated first, plus the total count before paging. Timestamps
// have second resolution, so id breaks ties to keep LIMIT/OFFSET pages
// disjoint.
func (r *ShoppingListRepo) PageByOwner(ownerID string, pageIndex, pageSize int) ([]domain.ShoppingList, int, error) {
	var total int
	if err := r.db.Get(&total, `
	  SELECT COUNT(*) FROM shopping_lists WHERE owner_id = ? AND state != 'deleted'
	`, ownerID); err != nil {
		return nil, 0, err
	}

	var out []domain.ShoppingList
	err := r.db.Select(&out, `
	  SELECT id, awid, name, category, state, owner_id, items_json, done,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM shopping_lists
	  WHERE owner_id = ? AND state != 'deleted'
	  ORDER BY updated_at DESC, created_at DESC, id DESC
	  LIMIT ? OFFSET ?
	`, ownerID, pageSize, pageIndex*pageSize)
	return out, total, err
}

func (r *ShoppingListRepo) UpdateNameDone(id, name string, done bool) (string, error) {
	ts := now()
	_, err := r.db.Exec(`
	  UPDATE shopping_lists SET name = ?, done = ?, updated_at = ? WHERE id = ?
	`, name, done, ts, id)
	return ts, err
}

func (r *ShoppingListRepo) SoftDelete(id string) (string, error) {
	ts := now()
	_, err := r.db.Exec(`
	  UPDATE shopping_lists SET state = 'deleted', updated_at = ? WHERE id = ?
	`, ts, id)
	return ts, err
}
