package dessert

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

func (r *PostgresRepository) List() ([]Dessert, error) {
	query := `
		SELECT id, name, price, available
		FROM desserts
		ORDER BY id ASC
	`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var desserts []Dessert
	for rows.Next() {
		var d Dessert
		if err := rows.Scan(&d.ID, &d.Name, &d.Price, &d.Available); err != nil {
			return nil, err
		}
		desserts = append(desserts, d)
	}
	return desserts, rows.Err()
}

func (r *PostgresRepository) FindByID(id int) (*Dessert, error) {
	query := `
		SELECT id, name, price, available
		FROM desserts
		WHERE id = $1
	`

	var d Dessert
	err := r.db.QueryRow(context.Background(), query, id).
		Scan(&d.ID, &d.Name, &d.Price, &d.Available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("dessert", strconv.Itoa(id))
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) Create(d *Dessert) error {
	query := `
		INSERT INTO desserts (name, price, available)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.db.QueryRow(
		context.Background(),
		query,
		d.Name,
		d.Price,
		d.Available,
	).Scan(&d.ID)
}

func (r *PostgresRepository) Replace(id int, d *Dessert) error {
	query := `
		UPDATE desserts
		SET name = $2, price = $3, available = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(context.Background(), query, id, d.Name, d.Price, d.Available)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("dessert", strconv.Itoa(id))
	}
	d.ID = id
	return nil
}

func (r *PostgresRepository) Delete(id int) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM desserts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("dessert", strconv.Itoa(id))
	}
	return nil
}
