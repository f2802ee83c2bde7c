package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/securelog/securelog/database"
	"github.com/securelog/securelog/models"
)

// AuditRepository handles audit record persistence. Records are append-only.
type AuditRepository interface {
	Append(ctx context.Context, record *models.AuditRecord) error
	Query(ctx context.Context, limit, offset int) ([]models.AuditRecord, int, error)
}

type sqlAuditRepository struct {
	db *database.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *database.DB) AuditRepository {
	return &sqlAuditRepository{db: db}
}

// Append inserts one audit record inside its own transaction. The record is
// durable once Append returns nil.
func (r *sqlAuditRepository) Append(ctx context.Context, record *models.AuditRecord) error {
	query := r.db.Rebind(`
		INSERT INTO audit_logs (id, timestamp, ip, data)
		VALUES (?, ?, ?, ?)
	`)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin audit transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query,
		record.ID,
		record.Timestamp,
		record.ClientAddress,
		string(record.Operation),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to insert audit record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit record: %w", err)
	}

	return nil
}

// Query returns up to limit records, newest first, after skipping offset
// records, together with the total number of stored records.
func (r *sqlAuditRepository) Query(ctx context.Context, limit, offset int) ([]models.AuditRecord, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin audit query: %w", err)
	}
	// Read-only; rolling back just releases the snapshot.
	defer tx.Rollback()

	var total int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_logs").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit records: %w", err)
	}

	query := r.db.Rebind(`
		SELECT id, timestamp, ip, data
		FROM audit_logs
		ORDER BY timestamp DESC, id ASC
		LIMIT ? OFFSET ?
	`)

	rows, err := tx.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer rows.Close()

	records := make([]models.AuditRecord, 0, limit)
	for rows.Next() {
		record, err := scanAuditRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating audit records: %w", err)
	}

	return records, total, nil
}

func scanAuditRecord(rows *sql.Rows) (models.AuditRecord, error) {
	var (
		record models.AuditRecord
		kind   string
	)
	if err := rows.Scan(&record.ID, &record.Timestamp, &record.ClientAddress, &kind); err != nil {
		return record, fmt.Errorf("failed to scan audit record: %w", err)
	}

	op, err := models.ParseOperationKind(kind)
	if err != nil {
		return record, fmt.Errorf("audit record %s: %w", record.ID, err)
	}
	record.Operation = op

	return record, nil
}
