package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of asset classes a transaction can belong to.
type Category string

const (
	CategoryAcaoBr  Category = "ACAO_BR"
	CategoryAcaoEua Category = "ACAO_EUA"
	CategoryCripto  Category = "CRIPTO"
	CategoryFii     Category = "FII"
)

type DividendType string

const (
	DividendTypeDividendo  DividendType = "DIVIDENDO"
	DividendTypeJcp        DividendType = "JCP"
	DividendTypeRendimento DividendType = "RENDIMENTO"
)

// Transaction is one buy event. Edits replace the whole record; there are
// no delta updates. Ticker is stored upper-cased.
type Transaction struct {
	ID       uuid.UUID
	Ticker   string
	Category Category
	Date     time.Time
	Price    float64
	Quantity float64
}

// Dividend is one income event. It is independent of the transaction log;
// its ticker may have zero current holdings.
type Dividend struct {
	ID             uuid.UUID
	Ticker         string
	Type           DividendType
	Date           time.Time
	AmountPerShare float64
	TotalAmount    float64
}

// Asset is a derived position: the running quantity and weighted average
// acquisition price for one ticker. Assets are recomputed from the full
// transaction log and never persisted.
type Asset struct {
	Ticker        string
	Category      Category
	TotalQuantity float64
	AveragePrice  float64
}

// CostBasis returns quantity times average price.
func (a Asset) CostBasis() float64 {
	return a.TotalQuantity * a.AveragePrice
}
