package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/freshtrack/internal/expiry"
	"github.com/rogerio-castellano/freshtrack/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, name, barcode, batch_id, expiry_date, quantity, category, location, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Barcode, &p.BatchID, &p.ExpiryDate,
		&p.Quantity, &p.Category, &p.Location, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Barcode, p.BatchID,
		p.ExpiryDate, p.Quantity, p.Category, p.Location, p.CreatedAt, p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetByBarcode(barcode string) (models.Product, error) {
	if barcode == "" {
		return models.Product{}, ErrProductNotFound
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1 ORDER BY created_at, id LIMIT 1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, barcode))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(id string, u ProductUpdate) (models.Product, error) {
	sets := []string{}
	args := []any{}
	argIdx := 1

	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if u.Name != nil {
		set("name", *u.Name)
	}
	if u.Barcode != nil {
		set("barcode", *u.Barcode)
	}
	if u.BatchID != nil {
		set("batch_id", *u.BatchID)
	}
	if u.ExpiryDate != nil {
		set("expiry_date", *u.ExpiryDate)
	}
	if u.Quantity != nil {
		set("quantity", *u.Quantity)
	}
	if u.Category != nil {
		set("category", string(*u.Category))
	}
	if u.Location != nil {
		set("location", *u.Location)
	}
	set("updated_at", time.Now().UTC())

	query := "UPDATE products SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + productColumns
	args = append(args, id)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Delete(id string) (bool, error) {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rowsAffected, _ := res.RowsAffected()
	return rowsAffected > 0, nil
}

func (r *PostgresProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := productFilterConditions(pf)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM products WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1` + conditions
	query += " ORDER BY created_at, id"

	if pf.Limit != nil && *pf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *pf.Limit)
		argIdx++
	}
	if pf.Offset != nil && *pf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *pf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, totalCount, rows.Err()
}

// productFilterConditions translates the filter into SQL. The status
// predicates are the instant-level equivalents of the day-ceiling
// classification: ceil(diff/24h) <= n holds exactly when diff <= n days.
func productFilterConditions(pf ProductFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if pf.Status != nil {
		now := pf.Now
		warnUntil := now.Add(time.Duration(pf.ThresholdDays) * 24 * time.Hour)
		switch *pf.Status {
		case expiry.StatusDanger:
			query += fmt.Sprintf(" AND expiry_date <= $%d", argIdx)
			args = append(args, now)
			argIdx++
		case expiry.StatusWarning:
			query += fmt.Sprintf(" AND expiry_date > $%d AND expiry_date <= $%d", argIdx, argIdx+1)
			args = append(args, now, warnUntil)
			argIdx += 2
		case expiry.StatusSafe:
			query += fmt.Sprintf(" AND expiry_date > $%d", argIdx)
			args = append(args, warnUntil)
			argIdx++
		}
	}
	if pf.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, string(*pf.Category))
		argIdx++
	}
	if pf.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argIdx)
		args = append(args, "%"+pf.Location+"%")
		argIdx++
	}
	if pf.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR barcode ILIKE $%d OR batch_id ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+pf.Search+"%")
		argIdx++
	}

	return query, args, argIdx
}
