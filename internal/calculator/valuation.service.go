package calculator

import (
	"strings"

	"fintudo/internal/domain"

	"github.com/shopspring/decimal"
)

// referencePriceMarkup is the placeholder used where the UI wants a
// "current" price. There is no market-data feed; valuation stays on cost
// basis plus income.
const referencePriceMarkup = 1.05

// InvestedCapital sums quantity times average price over all assets.
func InvestedCapital(assets []domain.Asset) float64 {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(
			decimal.NewFromFloat(a.TotalQuantity).Mul(decimal.NewFromFloat(a.AveragePrice)),
		)
	}
	return total.InexactFloat64()
}

// IncomeReceived sums dividend totalAmount. With tickers given, only
// matching dividends count; ticker comparison is case-insensitive.
func IncomeReceived(dividends []domain.Dividend, tickers ...string) float64 {
	var match map[string]bool
	if len(tickers) > 0 {
		match = map[string]bool{}
		for _, t := range tickers {
			match[strings.ToUpper(t)] = true
		}
	}

	total := decimal.Zero
	for _, d := range dividends {
		if match != nil && !match[strings.ToUpper(d.Ticker)] {
			continue
		}
		total = total.Add(decimal.NewFromFloat(d.TotalAmount))
	}
	return total.InexactFloat64()
}

// CurrentEquity is invested capital plus income received. Deliberately not
// mark-to-market.
func CurrentEquity(assets []domain.Asset, dividends []domain.Dividend) float64 {
	invested := decimal.NewFromFloat(InvestedCapital(assets))
	income := decimal.NewFromFloat(IncomeReceived(dividends))
	return invested.Add(income).InexactFloat64()
}

// AssetEquity is one asset's cost basis plus the income received for its
// ticker.
func AssetEquity(asset domain.Asset, dividends []domain.Dividend) float64 {
	basis := decimal.NewFromFloat(asset.TotalQuantity).Mul(decimal.NewFromFloat(asset.AveragePrice))
	income := decimal.NewFromFloat(IncomeReceived(dividends, asset.Ticker))
	return basis.Add(income).InexactFloat64()
}

// ReferencePrice returns the display price for an asset: average price
// with a fixed markup.
func ReferencePrice(asset domain.Asset) float64 {
	return decimal.NewFromFloat(asset.AveragePrice).
		Mul(decimal.NewFromFloat(referencePriceMarkup)).
		InexactFloat64()
}

type CategoryGroup struct {
	Category domain.Category
	Assets   []domain.Asset
}

// GroupByCategory partitions assets by category, preserving the order in
// which each category first appears.
func GroupByCategory(assets []domain.Asset) []CategoryGroup {
	index := map[domain.Category]int{}
	groups := []CategoryGroup{}
	for _, a := range assets {
		i, ok := index[a.Category]
		if !ok {
			i = len(groups)
			index[a.Category] = i
			groups = append(groups, CategoryGroup{Category: a.Category})
		}
		groups[i].Assets = append(groups[i].Assets, a)
	}
	return groups
}

// DividendEligible filters out crypto assets; they do not pay dividends
// and are excluded from the income entry form.
func DividendEligible(assets []domain.Asset) []domain.Asset {
	out := []domain.Asset{}
	for _, a := range assets {
		if a.Category != domain.CategoryCripto {
			out = append(out, a)
		}
	}
	return out
}
