package aidharvest

import (
	"context"
	"time"
)

// Record represents one persisted finding aid harvest.
type Record struct {
	ID               string    `json:"id"`
	ObjectID         string    `json:"objectId"`
	SourceURL        string    `json:"sourceUrl"`
	Title            string    `json:"title"`
	CollectionNumber string    `json:"collectionNumber"`
	Content          string    `json:"content"` // the JSON artifact
	ContentHash      string    `json:"contentHash"`
	LeafCount        int       `json:"leafCount"`
	HarvestedAt      time.Time `json:"harvestedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ObjectID == "" {
		return Errorf(EINVALID, "record object ID required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// RecordService represents a service for managing harvest records.
type RecordService interface {
	// CreateRecord creates a new record. A record for the same object ID
	// replaces the previous harvest.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecordByObjectID retrieves a record by its object identifier.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByObjectID(ctx context.Context, objectID string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID        *string `json:"id"`
	ObjectID  *string `json:"objectId"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
