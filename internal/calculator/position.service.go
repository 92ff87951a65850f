package calculator

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"fintudo/internal/domain"
)

// CategoryPolicy decides which category an asset keeps when the
// transactions for one ticker disagree about it.
type CategoryPolicy int

const (
	// CategoryFirstSeen keeps the category of the first transaction
	// encountered for the ticker. This matches the behavior users see
	// today; conflicts are reported in Warnings, not reconciled.
	CategoryFirstSeen CategoryPolicy = iota
)

type ReconstructResult struct {
	Assets []domain.Asset
	// Warnings lists tickers whose history carries more than one
	// category. The asset set is still produced.
	Warnings []string
}

type positionAccumulator struct {
	category    domain.Category
	quantity    float64
	avgPrice    float64
	conflicting map[domain.Category]bool
}

// Reconstruct folds the full transaction log into the current asset set,
// one asset per upper-cased ticker. The weighted-average update makes the
// result independent of input order: the final average price equals
// sum(qty*price) / sum(qty) for the ticker. Tickers whose total quantity
// ends at or below zero are excluded.
//
// Reconstruct is pure and assumes validated numeric input; NaN or Inf
// fields must be rejected before this point.
func Reconstruct(transactions []domain.Transaction) ReconstructResult {
	return ReconstructWithPolicy(transactions, CategoryFirstSeen)
}

func ReconstructWithPolicy(transactions []domain.Transaction, policy CategoryPolicy) ReconstructResult {
	accumulators := map[string]*positionAccumulator{}
	order := []string{}

	for _, tx := range transactions {
		ticker := strings.ToUpper(tx.Ticker)
		acc, ok := accumulators[ticker]
		if !ok {
			acc = &positionAccumulator{category: tx.Category}
			accumulators[ticker] = acc
			order = append(order, ticker)
		} else if tx.Category != acc.category && policy == CategoryFirstSeen {
			if acc.conflicting == nil {
				acc.conflicting = map[domain.Category]bool{}
			}
			acc.conflicting[tx.Category] = true
		}

		oldCost := acc.quantity * acc.avgPrice
		newQuantity := acc.quantity + tx.Quantity
		newCost := oldCost + tx.Quantity*tx.Price
		if newQuantity > 0 {
			acc.avgPrice = newCost / newQuantity
		} else {
			acc.avgPrice = 0
		}
		acc.quantity = newQuantity
	}

	result := ReconstructResult{Assets: []domain.Asset{}}
	for _, ticker := range order {
		acc := accumulators[ticker]
		if len(acc.conflicting) > 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"ticker %s has transactions in %d categories; keeping %s",
				ticker, len(acc.conflicting)+1, acc.category,
			))
		}
		if acc.quantity <= 0 {
			continue
		}
		result.Assets = append(result.Assets, domain.Asset{
			Ticker:        ticker,
			Category:      acc.category,
			TotalQuantity: acc.quantity,
			AveragePrice:  acc.avgPrice,
		})
	}

	return result
}

// Fingerprint hashes a transaction set for memoization. Per-record hashes
// are combined with wrapping addition so the value does not depend on
// input order, and duplicate records still shift it.
func Fingerprint(transactions []domain.Transaction) uint64 {
	var sum uint64
	for _, tx := range transactions {
		h := fnv.New64a()
		h.Write([]byte(tx.ID.String()))
		h.Write([]byte{0})
		h.Write([]byte(strings.ToUpper(tx.Ticker)))
		h.Write([]byte{0})
		h.Write([]byte(tx.Category))
		h.Write([]byte{0})
		h.Write([]byte(tx.Date.Format("2006-01-02")))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(tx.Price, 'g', -1, 64)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(tx.Quantity, 'g', -1, 64)))
		sum += h.Sum64()
	}
	return sum
}
