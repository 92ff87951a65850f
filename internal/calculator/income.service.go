package calculator

import (
	"fmt"
	"sort"

	"fintudo/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type MonthlyIncome struct {
	Month string // YYYY-MM
	Total float64
}

type IncomeSummary struct {
	TotalReceived float64
	TotalByType   map[domain.DividendType]float64
	Monthly       []MonthlyIncome
	MonthlyMean   float64
	MonthlyStdev  float64
}

// SummarizeIncome aggregates the dividend log into per-type totals and a
// monthly series with mean and sample standard deviation. Empty input
// yields a zero summary.
func SummarizeIncome(dividends []domain.Dividend) (*IncomeSummary, error) {
	summary := &IncomeSummary{
		TotalByType: map[domain.DividendType]float64{},
		Monthly:     []MonthlyIncome{},
	}
	if len(dividends) == 0 {
		return summary, nil
	}

	byType := map[domain.DividendType]decimal.Decimal{}
	byMonth := map[string]decimal.Decimal{}
	total := decimal.Zero
	for _, d := range dividends {
		amount := decimal.NewFromFloat(d.TotalAmount)
		total = total.Add(amount)
		byType[d.Type] = byType[d.Type].Add(amount)
		month := d.Date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(amount)
	}

	summary.TotalReceived = total.InexactFloat64()
	for dividendType, amount := range byType {
		summary.TotalByType[dividendType] = amount.InexactFloat64()
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	series := make([]float64, 0, len(months))
	for _, month := range months {
		value := byMonth[month].InexactFloat64()
		summary.Monthly = append(summary.Monthly, MonthlyIncome{Month: month, Total: value})
		series = append(series, value)
	}

	mean, err := stats.Mean(series)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly income mean: %w", err)
	}
	summary.MonthlyMean = mean

	if len(series) > 1 {
		stdev, err := stats.StandardDeviationSample(series)
		if err != nil {
			return nil, fmt.Errorf("failed to compute monthly income stdev: %w", err)
		}
		summary.MonthlyStdev = stdev
	}

	return summary, nil
}
