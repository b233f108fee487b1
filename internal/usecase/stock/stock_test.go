package stock

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	v1 "github.com/ariel055132/stockinfo/internal/domain/stock/v1"
	finmindMock "github.com/ariel055132/stockinfo/internal/infrastructure/finmind/mock"
	"github.com/ariel055132/stockinfo/pkg/errors"
	loggerMock "github.com/ariel055132/stockinfo/pkg/logger/mock"
)

func testRecord(t *testing.T, raw string) v1.Record {
	t.Helper()
	var record v1.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	return record
}

func TestUsecase_GetStockDealInfo(t *testing.T) {
	now := time.Date(2021, 9, 14, 10, 30, 0, 0, time.Local)

	testCases := []struct {
		name      string
		stockID   string
		startDate string
		endDate   string
		mockFn    func(t *testing.T, client *finmindMock.MockClient, logger *loggerMock.MockInterface)
		assertFn  func(t *testing.T, records []v1.Record, err error)
	}{
		{
			name:      "end date passed through",
			stockID:   "0050",
			startDate: "2021-09-13",
			endDate:   "2021-09-13",
			mockFn: func(t *testing.T, client *finmindMock.MockClient, logger *loggerMock.MockInterface) {
				logger.EXPECT().DebugContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				client.EXPECT().FetchDataset(gomock.Any(), v1.DatasetQuery{
					Dataset:   "TaiwanStockPrice",
					DataID:    "0050",
					StartDate: "2021-09-13",
					EndDate:   "2021-09-13",
				}).Return([]v1.Record{testRecord(t, `{"date":"2021-09-13","close":101}`)}, nil)
			},
			assertFn: func(t *testing.T, records []v1.Record, err error) {
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, []string{"date", "close"}, records[0].Keys())
			},
		},
		{
			name:      "empty end date defaults to today",
			stockID:   "2330",
			startDate: "2021-09-01",
			endDate:   "",
			mockFn: func(t *testing.T, client *finmindMock.MockClient, logger *loggerMock.MockInterface) {
				logger.EXPECT().DebugContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				client.EXPECT().FetchDataset(gomock.Any(), v1.DatasetQuery{
					Dataset:   "TaiwanStockPrice",
					DataID:    "2330",
					StartDate: "2021-09-01",
					EndDate:   "2021-09-14",
				}).Return(nil, nil)
			},
			assertFn: func(t *testing.T, records []v1.Record, err error) {
				require.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name:      "client error wrapped with stack",
			stockID:   "0050",
			startDate: "2021-09-13",
			endDate:   "2021-09-13",
			mockFn: func(t *testing.T, client *finmindMock.MockClient, logger *loggerMock.MockInterface) {
				logger.EXPECT().DebugContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				client.EXPECT().FetchDataset(gomock.Any(), gomock.Any()).
					Return(nil, errors.NewErrorDetails("boom", errors.FinmindTransportError, ""))
			},
			assertFn: func(t *testing.T, records []v1.Record, err error) {
				require.Error(t, err)
				assert.Nil(t, records)
				// the original code survives the tracer wrap
				assert.True(t, errors.CodeEquals(err, errors.FinmindTransportError))
				var tracer *errors.ErrorTracer
				assert.ErrorAs(t, err, &tracer)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := finmindMock.NewMockClient(ctrl)
			lg := loggerMock.NewMockInterface(ctrl)
			tc.mockFn(t, client, lg)

			uc := NewUsecase(client, lg)
			uc.now = func() time.Time { return now }

			records, err := uc.GetStockDealInfo(context.Background(), tc.stockID, tc.startDate, tc.endDate)
			tc.assertFn(t, records, err)
		})
	}
}
