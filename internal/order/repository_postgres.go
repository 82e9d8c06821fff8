package order

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(o *Order) error {
	query := `
		INSERT INTO orders (pizzas, drinks, desserts, total_price, processed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return r.db.QueryRow(
		context.Background(),
		query,
		o.Pizzas,
		o.Drinks,
		o.Desserts,
		o.TotalPrice,
		o.Processed,
		o.CreatedAt,
	).Scan(&o.ID)
}

func (r *PostgresRepository) List() ([]Order, error) {
	query := `
		SELECT id, pizzas, drinks, desserts, total_price, processed, created_at
		FROM orders
		ORDER BY id ASC
	`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Pizzas, &o.Drinks, &o.Desserts, &o.TotalPrice, &o.Processed, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) FindByID(id int) (*Order, error) {
	query := `
		SELECT id, pizzas, drinks, desserts, total_price, processed, created_at
		FROM orders
		WHERE id = $1
	`

	var o Order
	err := r.db.QueryRow(context.Background(), query, id).
		Scan(&o.ID, &o.Pizzas, &o.Drinks, &o.Desserts, &o.TotalPrice, &o.Processed, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("order", strconv.Itoa(id))
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) Replace(id int, o *Order) error {
	query := `
		UPDATE orders
		SET pizzas = $2, drinks = $3, desserts = $4, total_price = $5, processed = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(
		context.Background(),
		query,
		id,
		o.Pizzas,
		o.Drinks,
		o.Desserts,
		o.TotalPrice,
		o.Processed,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("order", strconv.Itoa(id))
	}
	o.ID = id
	return nil
}

func (r *PostgresRepository) Remove(id int) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("order", strconv.Itoa(id))
	}
	return nil
}
