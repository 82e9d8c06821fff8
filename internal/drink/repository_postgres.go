package drink

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

func (r *PostgresRepository) List() ([]Drink, error) {
	query := `
		SELECT id, name, price, size, with_alcohol, available
		FROM drinks
		ORDER BY id ASC
	`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drinks []Drink
	for rows.Next() {
		var d Drink
		if err := rows.Scan(&d.ID, &d.Name, &d.Price, &d.Size, &d.WithAlcohol, &d.Available); err != nil {
			return nil, err
		}
		drinks = append(drinks, d)
	}
	return drinks, rows.Err()
}

func (r *PostgresRepository) FindByID(id int) (*Drink, error) {
	query := `
		SELECT id, name, price, size, with_alcohol, available
		FROM drinks
		WHERE id = $1
	`

	var d Drink
	err := r.db.QueryRow(context.Background(), query, id).
		Scan(&d.ID, &d.Name, &d.Price, &d.Size, &d.WithAlcohol, &d.Available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("drink", strconv.Itoa(id))
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) Create(d *Drink) error {
	query := `
		INSERT INTO drinks (name, price, size, with_alcohol, available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRow(
		context.Background(),
		query,
		d.Name,
		d.Price,
		d.Size,
		d.WithAlcohol,
		d.Available,
	).Scan(&d.ID)
}

func (r *PostgresRepository) Replace(id int, d *Drink) error {
	query := `
		UPDATE drinks
		SET name = $2, price = $3, size = $4, with_alcohol = $5, available = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(context.Background(), query, id, d.Name, d.Price, d.Size, d.WithAlcohol, d.Available)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("drink", strconv.Itoa(id))
	}
	d.ID = id
	return nil
}

func (r *PostgresRepository) Delete(id int) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM drinks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("drink", strconv.Itoa(id))
	}
	return nil
}
