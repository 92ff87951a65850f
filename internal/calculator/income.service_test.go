package calculator

import (
	"testing"
	"time"

	"fintudo/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func dividendOn(ticker string, dividendType domain.DividendType, date time.Time, totalAmount float64) domain.Dividend {
	return domain.Dividend{
		ID:          uuid.New(),
		Ticker:      ticker,
		Type:        dividendType,
		Date:        date,
		TotalAmount: totalAmount,
	}
}

func Test_SummarizeIncome(t *testing.T) {
	t.Run("empty input yields zero summary", func(t *testing.T) {
		summary, err := SummarizeIncome(nil)
		require.NoError(t, err)

		require.Zero(t, summary.TotalReceived)
		require.Empty(t, summary.Monthly)
		require.Zero(t, summary.MonthlyMean)
		require.Zero(t, summary.MonthlyStdev)
	})

	t.Run("monthly series and per-type totals", func(t *testing.T) {
		jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)

		summary, err := SummarizeIncome([]domain.Dividend{
			dividendOn("PETR4", domain.DividendTypeDividendo, jan, 10),
			dividendOn("HGLG11", domain.DividendTypeRendimento, jan, 20),
			dividendOn("PETR4", domain.DividendTypeJcp, feb, 40),
		})
		require.NoError(t, err)

		require.InEpsilon(t, 70.0, summary.TotalReceived, 1e-9)
		require.InEpsilon(t, 10.0, summary.TotalByType[domain.DividendTypeDividendo], 1e-9)
		require.InEpsilon(t, 20.0, summary.TotalByType[domain.DividendTypeRendimento], 1e-9)
		require.InEpsilon(t, 40.0, summary.TotalByType[domain.DividendTypeJcp], 1e-9)

		require.Len(t, summary.Monthly, 2)
		require.Equal(t, "2024-01", summary.Monthly[0].Month)
		require.InEpsilon(t, 30.0, summary.Monthly[0].Total, 1e-9)
		require.Equal(t, "2024-02", summary.Monthly[1].Month)
		require.InEpsilon(t, 40.0, summary.Monthly[1].Total, 1e-9)

		require.InEpsilon(t, 35.0, summary.MonthlyMean, 1e-9)
		// sample stdev of {30, 40}
		require.InEpsilon(t, 7.0710678118654755, summary.MonthlyStdev, 1e-9)
	})

	t.Run("single month has zero stdev", func(t *testing.T) {
		jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		summary, err := SummarizeIncome([]domain.Dividend{
			dividendOn("PETR4", domain.DividendTypeDividendo, jan, 10),
		})
		require.NoError(t, err)

		require.InEpsilon(t, 10.0, summary.MonthlyMean, 1e-9)
		require.Zero(t, summary.MonthlyStdev)
	})
}
