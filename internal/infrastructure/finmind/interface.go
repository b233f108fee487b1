package finmind

import (
	"context"

	v1 "github.com/ariel055132/stockinfo/internal/domain/stock/v1"
)

// Client is the interface for the FinMind data API.
//
//go:generate mockgen -source interface.go -destination=mock/client_mock.go -package=finmind_mock
type Client interface {
	FetchDataset(ctx context.Context, query v1.DatasetQuery) ([]v1.Record, error)
}
