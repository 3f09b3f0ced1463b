package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/models"
)

type PostgresScanEventRepository struct {
	db *sql.DB
}

func NewPostgresScanEventRepository(db *sql.DB) *PostgresScanEventRepository {
	return &PostgresScanEventRepository{db: db}
}

func (r *PostgresScanEventRepository) Log(barcode, productID string) error {
	query := `INSERT INTO scan_events (barcode, product_id, created_at) VALUES ($1, $2, $3)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, barcode, productID, time.Now().UTC())
	return err
}

func (r *PostgresScanEventRepository) List(sf ScanFilter) ([]models.ScanEvent, int, error) {
	conditions := ""
	args := []any{}
	argIdx := 1

	if sf.Since != nil {
		conditions += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, *sf.Since)
		argIdx++
	}
	if sf.Until != nil {
		conditions += fmt.Sprintf(" AND created_at <= $%d", argIdx)
		args = append(args, *sf.Until)
		argIdx++
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM scan_events WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, barcode, product_id, created_at FROM scan_events WHERE 1=1` + conditions
	query += " ORDER BY id"

	if sf.Limit != nil && *sf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *sf.Limit)
		argIdx++
	}
	if sf.Offset != nil && *sf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *sf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []models.ScanEvent
	for rows.Next() {
		var e models.ScanEvent
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.Barcode, &e.ProductID, &createdAt); err != nil {
			return nil, 0, err
		}
		e.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		events = append(events, e)
	}
	return events, totalCount, rows.Err()
}
