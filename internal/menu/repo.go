// Package menu provides the repository interface and PostgreSQL implementation for the catalog.
package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("menu item not found")

type Query struct {
	Category string
	Popular  bool
}

type Repository interface {
	Create(ctx context.Context, m *MenuItem) error
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	List(ctx context.Context, q Query) ([]MenuItem, error)
	Update(ctx context.Context, m *MenuItem, updatePrice bool) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const itemCols = `id, name, description, price::text, image, category, sizes, customizations, popular, created_at, updated_at`

func scanItem(row interface{ Scan(dest ...any) error }, m *MenuItem) error {
	return row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Image, &m.Category,
		&m.Sizes, &m.Customizations, &m.Popular, &m.CreatedAt, &m.UpdatedAt)
}

func (r *PGRepo) Create(ctx context.Context, m *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, image, category, sizes, customizations, popular, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
	`, m.ID, m.Name, m.Description, m.Price, m.Image, m.Category, m.Sizes, m.Customizations, m.Popular)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m MenuItem
	if err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemCols+` FROM menu_items WHERE id=$1`, id), &m); err != nil {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+itemCols+`
		FROM menu_items
		WHERE ($1 = '' OR category = $1)
		  AND (NOT $2 OR popular)
		ORDER BY created_at ASC
	`, q.Category, q.Popular)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		if err := scanItem(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, m *MenuItem, updatePrice bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if updatePrice {
		tag, err := r.db.Exec(ctx, `
			UPDATE menu_items
			SET name = COALESCE(NULLIF($2,''), name),
			    description = COALESCE(NULLIF($3,''), description),
			    price = $4,
			    image = COALESCE(NULLIF($5,''), image),
			    category = COALESCE(NULLIF($6,''), category),
			    sizes = $7,
			    customizations = $8,
			    popular = $9,
			    updated_at = NOW()
			WHERE id = $1
		`, m.ID, m.Name, m.Description, m.Price, m.Image, m.Category, m.Sizes, m.Customizations, m.Popular)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = COALESCE(NULLIF($2,''), name),
		    description = COALESCE(NULLIF($3,''), description),
		    image = COALESCE(NULLIF($4,''), image),
		    category = COALESCE(NULLIF($5,''), category),
		    sizes = $6,
		    customizations = $7,
		    popular = $8,
		    updated_at = NOW()
		WHERE id = $1
	`, m.ID, m.Name, m.Description, m.Image, m.Category, m.Sizes, m.Customizations, m.Popular)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
