package stock

import (
	"context"

	v1 "github.com/ariel055132/stockinfo/internal/domain/stock/v1"
)

// Usecase is the interface for the stock deal-info usecase.
//
//go:generate mockgen -source interface.go -destination=mock/usecase_mock.go -package=stock_mock
type Usecase interface {
	GetStockDealInfo(ctx context.Context, stockID, startDate, endDate string) ([]v1.Record, error)
}
