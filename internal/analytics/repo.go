// Package analytics is the read side of the admin dashboard: plain SQL
// aggregation over persisted orders, no invariants of its own.
package analytics

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeshop-api/internal/order"
)

type MonthlySales struct {
	Month string `json:"month"`
	Sales string `json:"sales"`
}

type MonthlyOrders struct {
	Month  string `json:"month"`
	Orders int    `json:"orders"`
}

type TopCustomer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TotalSpent string `json:"total_spent"`
}

type Dashboard struct {
	TotalRevenue    string            `json:"total_revenue"`
	TotalOrders     int               `json:"total_orders"`
	PendingOrders   int               `json:"pending_orders"`
	ReadyOrders     int               `json:"ready_orders"`
	DeliveredOrders int               `json:"delivered_orders"`
	MonthlySales    []MonthlySales    `json:"monthly_sales"`
	MonthlyOrders   []MonthlyOrders   `json:"monthly_orders"`
	RecentOrders    []order.WithItems `json:"recent_orders"`
	TopCustomers    []TopCustomer     `json:"top_customers"`
}

type Repository interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type PGRepo struct {
	db     *pgxpool.Pool
	orders order.Repository
}

func NewPGRepo(db *pgxpool.Pool, orders order.Repository) *PGRepo {
	return &PGRepo{db: db, orders: orders}
}

func (r *PGRepo) Dashboard(ctx context.Context) (*Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	d := &Dashboard{
		MonthlySales:  []MonthlySales{},
		MonthlyOrders: []MonthlyOrders{},
		RecentOrders:  []order.WithItems{},
		TopCustomers:  []TopCustomer{},
	}

	if err := r.db.QueryRow(ctx, `
    SELECT COALESCE(SUM(total) FILTER (WHERE status = 'delivered'), 0)::text,
           COUNT(*),
           COUNT(*) FILTER (WHERE status = 'preparing'),
           COUNT(*) FILTER (WHERE status = 'ready'),
           COUNT(*) FILTER (WHERE status = 'delivered')
    FROM orders
  `).Scan(&d.TotalRevenue, &d.TotalOrders, &d.PendingOrders, &d.ReadyOrders, &d.DeliveredOrders); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
    SELECT to_char(order_date, 'YYYY-MM') AS month, SUM(total)::text
    FROM orders
    WHERE status = 'delivered' AND order_date >= NOW() - INTERVAL '6 months'
    GROUP BY month ORDER BY month
  `)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var m MonthlySales
		if err := rows.Scan(&m.Month, &m.Sales); err != nil {
			rows.Close()
			return nil, err
		}
		d.MonthlySales = append(d.MonthlySales, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `
    SELECT to_char(order_date, 'YYYY-MM') AS month, COUNT(*)
    FROM orders
    WHERE order_date >= NOW() - INTERVAL '6 months'
    GROUP BY month ORDER BY month
  `)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var m MonthlyOrders
		if err := rows.Scan(&m.Month, &m.Orders); err != nil {
			rows.Close()
			return nil, err
		}
		d.MonthlyOrders = append(d.MonthlyOrders, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `
    SELECT u.id, u.name, u.email, SUM(o.total)::text AS total_spent
    FROM users u JOIN orders o ON o.user_id = u.id
    WHERE o.status = 'delivered'
    GROUP BY u.id, u.name, u.email
    ORDER BY SUM(o.total) DESC
    LIMIT 5
  `)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var c TopCustomer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.TotalSpent); err != nil {
			rows.Close()
			return nil, err
		}
		d.TopCustomers = append(d.TopCustomers, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	all, err := r.orders.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(all) > 5 {
		all = all[:5]
	}
	d.RecentOrders = all

	return d, nil
}
