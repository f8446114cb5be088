package mock

import (
	"context"

	"github.com/fwojciec/aidharvest"
)

var _ aidharvest.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of aidharvest.RecordService.
type RecordService struct {
	CreateRecordFn         func(ctx context.Context, record *aidharvest.Record) error
	FindRecordByIDFn       func(ctx context.Context, id string) (*aidharvest.Record, error)
	FindRecordByObjectIDFn func(ctx context.Context, objectID string) (*aidharvest.Record, error)
	FindRecordsFn          func(ctx context.Context, filter aidharvest.RecordFilter) ([]*aidharvest.Record, error)
	DeleteRecordFn         func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *aidharvest.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*aidharvest.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecordByObjectID(ctx context.Context, objectID string) (*aidharvest.Record, error) {
	return s.FindRecordByObjectIDFn(ctx, objectID)
}

func (s *RecordService) FindRecords(ctx context.Context, filter aidharvest.RecordFilter) ([]*aidharvest.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
