package db

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = envInt32("DB_MAX_CONNS", 10)
	config.MinConns = envInt32("DB_MIN_CONNS", 2)
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// envInt32 reads an integer env var, falling back to def when the
// variable is unset or not a positive integer.
func envInt32(name string, def int32) int32 {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 1 {
		log.Printf("Ignoring %s=%q, using %d", name, raw, def)
		return def
	}
	return int32(n)
}

// initSchema creates the catalog and order tables.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	pizzasSQL := `
		CREATE TABLE IF NOT EXISTS pizzas (
			id TEXT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			ingredients TEXT[] NOT NULL DEFAULT '{}',
			price DOUBLE PRECISION NOT NULL
		)
	`
	if _, err := db.Exec(ctx, pizzasSQL); err != nil {
		return err
	}

	drinksSQL := `
		CREATE TABLE IF NOT EXISTS drinks (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			size VARCHAR(50) NOT NULL DEFAULT '',
			with_alcohol BOOLEAN NOT NULL DEFAULT FALSE,
			available BOOLEAN NOT NULL DEFAULT TRUE
		)
	`
	if _, err := db.Exec(ctx, drinksSQL); err != nil {
		return err
	}

	dessertsSQL := `
		CREATE TABLE IF NOT EXISTS desserts (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE
		)
	`
	if _, err := db.Exec(ctx, dessertsSQL); err != nil {
		return err
	}

	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			pizzas TEXT[] NOT NULL DEFAULT '{}',
			drinks INT[] NOT NULL DEFAULT '{}',
			desserts INT[] NOT NULL DEFAULT '{}',
			total_price DOUBLE PRECISION NOT NULL,
			processed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
