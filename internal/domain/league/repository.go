package league

import "context"

// Repository stores imported results and hands them back on demand.
type Repository interface {
	// ReplaceAll drops whatever was stored before and keeps records in order.
	ReplaceAll(ctx context.Context, records []Record) error
	ListRecords(ctx context.Context) ([]Record, error)
}
