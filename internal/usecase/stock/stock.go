package stock

import (
	"context"
	"time"

	v1 "github.com/ariel055132/stockinfo/internal/domain/stock/v1"
	"github.com/ariel055132/stockinfo/internal/infrastructure/finmind"
	"github.com/ariel055132/stockinfo/pkg/errors"
	"github.com/ariel055132/stockinfo/pkg/logger"
)

// Dataset is the upstream data series for daily Taiwan stock prices.
const Dataset = "TaiwanStockPrice"

// DateFormat is the date layout the upstream API expects.
const DateFormat = "2006-01-02"

// Usecase is the usecase for daily stock deal information.
type Usecase struct {
	client finmind.Client
	logger logger.Interface
	now    func() time.Time
}

// NewUsecase creates a new stock deal-info usecase.
func NewUsecase(client finmind.Client, logger logger.Interface) *Usecase {
	return &Usecase{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// GetStockDealInfo fetches daily deal records for one security. An empty
// endDate means "up to today". Exactly one upstream call is made; there is
// no retry and no caching.
func (u *Usecase) GetStockDealInfo(ctx context.Context, stockID, startDate, endDate string) ([]v1.Record, error) {
	if endDate == "" {
		endDate = u.now().Format(DateFormat)
	}

	u.logger.DebugContext(ctx, "fetching stock deal info",
		logger.NewField("stock_id", stockID),
		logger.NewField("start_date", startDate),
		logger.NewField("end_date", endDate),
	)

	records, err := u.client.FetchDataset(ctx, v1.DatasetQuery{
		Dataset:   Dataset,
		DataID:    stockID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	return records, nil
}
