package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/aidharvest"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ aidharvest.RecordService = (*RecordService)(nil)

// RecordService implements aidharvest.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateRecord creates a new record. A record for the same object ID
// replaces the previous harvest.
func (s *RecordService) CreateRecord(ctx context.Context, record *aidharvest.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	if record.HarvestedAt.IsZero() {
		record.HarvestedAt = time.Now().UTC()
	}
	record.ContentHash = hashContent(record.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, object_id, source_url, title, collection_number, content, content_hash, leaf_count, harvested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(object_id) DO UPDATE SET
			id = excluded.id,
			source_url = excluded.source_url,
			title = excluded.title,
			collection_number = excluded.collection_number,
			content = excluded.content,
			content_hash = excluded.content_hash,
			leaf_count = excluded.leaf_count,
			harvested_at = excluded.harvested_at
	`, record.ID, record.ObjectID, record.SourceURL, record.Title, record.CollectionNumber,
		record.Content, record.ContentHash, record.LeafCount, record.HarvestedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*aidharvest.Record, error) {
	return s.findOne(ctx, "id = ?", id)
}

// FindRecordByObjectID retrieves a record by its object identifier.
func (s *RecordService) FindRecordByObjectID(ctx context.Context, objectID string) (*aidharvest.Record, error) {
	return s.findOne(ctx, "object_id = ?", objectID)
}

func (s *RecordService) findOne(ctx context.Context, where string, arg any) (*aidharvest.Record, error) {
	var record aidharvest.Record
	var harvestedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, object_id, source_url, title, collection_number, content, content_hash, leaf_count, harvested_at
		FROM records
		WHERE `+where, arg,
	).Scan(&record.ID, &record.ObjectID, &record.SourceURL, &record.Title, &record.CollectionNumber,
		&record.Content, &record.ContentHash, &record.LeafCount, &harvestedAt)

	if err == sql.ErrNoRows {
		return nil, aidharvest.Errorf(aidharvest.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	record.HarvestedAt, err = time.Parse(time.RFC3339, harvestedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse harvested_at: %w", err)
	}

	return &record, nil
}

// FindRecords retrieves records matching the filter, most recently
// harvested first.
func (s *RecordService) FindRecords(ctx context.Context, filter aidharvest.RecordFilter) ([]*aidharvest.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, object_id, source_url, title, collection_number, content, content_hash, leaf_count, harvested_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ObjectID != nil {
		query.WriteString(" AND object_id = ?")
		args = append(args, *filter.ObjectID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY harvested_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*aidharvest.Record
	for rows.Next() {
		var record aidharvest.Record
		var harvestedAt string

		if err := rows.Scan(&record.ID, &record.ObjectID, &record.SourceURL, &record.Title,
			&record.CollectionNumber, &record.Content, &record.ContentHash, &record.LeafCount,
			&harvestedAt); err != nil {
			return nil, err
		}

		record.HarvestedAt, err = time.Parse(time.RFC3339, harvestedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse harvested_at: %w", err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return aidharvest.Errorf(aidharvest.ENOTFOUND, "record not found")
	}

	return nil
}
