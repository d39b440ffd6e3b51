package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeshop-api/internal/user"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrStatusConflict means the guarded status update matched no row: the
	// order changed state between read and write.
	ErrStatusConflict = errors.New("order status conflict")
)

// Repository persists orders. Methods taking an ownerID scope the lookup to
// that owner; an empty ownerID means admin access (any order).
type Repository interface {
	Create(ctx context.Context, o *Order, items []Item, rewardPoints int) error
	GetByID(ctx context.Context, id, ownerID string) (*WithItems, error)
	List(ctx context.Context, ownerID string) ([]WithItems, error)
	UpdateStatus(ctx context.Context, id, from, to string) error
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create persists the order header, its lines and the owner's reward-point
// grant in one transaction. Either everything lands or nothing does.
func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item, rewardPoints int) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, user_id, status, total, order_date, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
  `, o.ID, o.UserID, o.Status, o.Total, o.OrderDate); err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, menu_item_id, quantity, price, size, customizations, created_at)
      VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
    `, it.ID, o.ID, it.MenuItemID, it.Quantity, it.Price, it.Size, it.Customizations); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx, `
    UPDATE users SET reward_points = reward_points + $2, updated_at = NOW() WHERE id = $1
  `, o.UserID, rewardPoints)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id, ownerID string) (*WithItems, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var w WithItems
	var u user.Summary
	err := r.db.QueryRow(ctx, `
    SELECT o.id, o.user_id, o.status, o.total::text, o.order_date, o.created_at, o.updated_at,
           u.id, u.name, u.email
    FROM orders o JOIN users u ON u.id = o.user_id
    WHERE o.id = $1 AND ($2 = '' OR o.user_id = $2)
  `, id, ownerID).Scan(&w.ID, &w.UserID, &w.Status, &w.Total, &w.OrderDate, &w.CreatedAt, &w.UpdatedAt,
		&u.ID, &u.Name, &u.Email)
	if err != nil {
		return nil, ErrNotFound
	}
	w.User = &u

	items, err := r.itemsFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	w.Items = items[id]
	if w.Items == nil {
		w.Items = []Item{}
	}
	return &w, nil
}

func (r *PGRepo) List(ctx context.Context, ownerID string) ([]WithItems, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT o.id, o.user_id, o.status, o.total::text, o.order_date, o.created_at, o.updated_at,
           u.id, u.name, u.email
    FROM orders o JOIN users u ON u.id = o.user_id
    WHERE ($1 = '' OR o.user_id = $1)
    ORDER BY o.order_date DESC
  `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WithItems
	var ids []string
	for rows.Next() {
		var w WithItems
		var u user.Summary
		if err := rows.Scan(&w.ID, &w.UserID, &w.Status, &w.Total, &w.OrderDate, &w.CreatedAt, &w.UpdatedAt,
			&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		w.User = &u
		w.Items = []Item{}
		out = append(out, w)
		ids = append(ids, w.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		items, err := r.itemsFor(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range out {
			if its := items[out[i].ID]; its != nil {
				out[i].Items = its
			}
		}
	}
	return out, nil
}

func (r *PGRepo) itemsFor(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, menu_item_id, quantity, price::text, COALESCE(size,''), customizations, created_at
    FROM order_items
    WHERE order_id = ANY($1)
    ORDER BY created_at ASC
  `, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]Item)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.Price, &it.Size, &it.Customizations, &it.CreatedAt); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

// UpdateStatus is guarded on the current status so two admins racing on the
// same order cannot both win.
func (r *PGRepo) UpdateStatus(ctx context.Context, id, from, to string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $3, updated_at = NOW()
    WHERE id = $1 AND status = $2
  `, id, from, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStatusConflict
	}
	return nil
}

// Delete removes the order and all of its lines.
func (r *PGRepo) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    DELETE FROM order_items
    WHERE order_id IN (SELECT id FROM orders WHERE id = $1 AND ($2 = '' OR user_id = $2))
  `, id, ownerID); err != nil {
		return false, err
	}
	tag, err := tx.Exec(ctx, `
    DELETE FROM orders WHERE id = $1 AND ($2 = '' OR user_id = $2)
  `, id, ownerID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	return true, tx.Commit(ctx)
}
