// @title           Coffee Shop API
// @version         1.0
// @description     REST backend for the coffee-shop storefront and admin console.
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"coffeeshop-api/internal/analytics"
	"coffeeshop-api/internal/config"
	"coffeeshop-api/internal/menu"
	"coffeeshop-api/internal/order"
	"coffeeshop-api/internal/user"
)

func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	var catalog menu.Repository = menu.NewPGRepo(pool)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		catalog = menu.NewCachedRepo(catalog, rdb, 5*time.Minute)
		log.Printf("[cache] menu cache enabled via %s", cfg.RedisAddr)
	}

	orders := order.NewPGRepo(pool)

	r := buildRouter(deps{
		users:    user.NewPGRepo(pool),
		catalog:  catalog,
		orders:   orders,
		stats:    analytics.NewPGRepo(pool, orders),
		secret:   cfg.JWTSecret,
		tokenTTL: cfg.TokenTTL,
	})

	log.Printf("api listening on %s", cfg.APIAddr)
	log.Fatal(r.Run(cfg.APIAddr))
}
