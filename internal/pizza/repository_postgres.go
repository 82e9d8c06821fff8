package pizza

import (
	"context"
	"errors"

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

func (r *PostgresRepository) List() ([]Pizza, error) {
	query := `
		SELECT id, name, ingredients, price
		FROM pizzas
		ORDER BY id::int ASC
	`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pizzas []Pizza
	for rows.Next() {
		var p Pizza
		if err := rows.Scan(&p.ID, &p.Name, &p.Ingredients, &p.Price); err != nil {
			return nil, err
		}
		pizzas = append(pizzas, p)
	}
	return pizzas, rows.Err()
}

func (r *PostgresRepository) FindByID(id string) (*Pizza, error) {
	query := `
		SELECT id, name, ingredients, price
		FROM pizzas
		WHERE id = $1
	`

	var p Pizza
	err := r.db.QueryRow(context.Background(), query, id).
		Scan(&p.ID, &p.Name, &p.Ingredients, &p.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("pizza", id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Create(p *Pizza) error {
	// Keep the historical id scheme: numeric ids stored as text.
	query := `
		INSERT INTO pizzas (id, name, ingredients, price)
		VALUES (
			(SELECT COALESCE(MAX(id::int), 0) + 1 FROM pizzas)::text,
			$1, $2, $3
		)
		RETURNING id
	`

	return r.db.QueryRow(
		context.Background(),
		query,
		p.Name,
		p.Ingredients,
		p.Price,
	).Scan(&p.ID)
}

func (r *PostgresRepository) Replace(id string, p *Pizza) error {
	query := `
		UPDATE pizzas
		SET name = $2, ingredients = $3, price = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(context.Background(), query, id, p.Name, p.Ingredients, p.Price)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("pizza", id)
	}
	p.ID = id
	return nil
}

func (r *PostgresRepository) Delete(id string) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM pizzas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("pizza", id)
	}
	return nil
}
