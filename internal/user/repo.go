package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrAlreadyExist = errors.New("user already exists")
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	AddRewardPoints(ctx context.Context, id string, points int) (int, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const userCols = `id, name, email, phone, address, password_hash, is_admin, reward_points, member_since, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }, u *User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash,
		&u.IsAdmin, &u.RewardPoints, &u.MemberSince, &u.CreatedAt, &u.UpdatedAt)
}

func (r *PGRepo) Create(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, phone, address, password_hash, is_admin, reward_points, member_since, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
	`, u.ID, u.Name, u.Email, u.Phone, u.Address, u.PasswordHash, u.IsAdmin, u.RewardPoints, u.MemberSince)
	if err != nil {
		// UNIQUE(email) is the only constraint that can trip here
		return ErrAlreadyExist
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	if err := scanUser(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id=$1`, id), &u); err != nil {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	if err := scanUser(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email=$1`, email), &u); err != nil {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *PGRepo) List(ctx context.Context) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = COALESCE(NULLIF($2,''), name),
		    email = COALESCE(NULLIF($3,''), email),
		    phone = COALESCE(NULLIF($4,''), phone),
		    address = COALESCE(NULLIF($5,''), address),
		    is_admin = $6,
		    updated_at = NOW()
		WHERE id = $1
	`, u.ID, u.Name, u.Email, u.Phone, u.Address, u.IsAdmin)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddRewardPoints increments the balance in a single statement so concurrent
// grants to the same user cannot lose updates. Returns the new balance.
func (r *PGRepo) AddRewardPoints(ctx context.Context, id string, points int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var balance int
	err := r.db.QueryRow(ctx, `
		UPDATE users
		SET reward_points = reward_points + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING reward_points
	`, id, points).Scan(&balance)
	if err != nil {
		return 0, ErrNotFound
	}
	return balance, nil
}
