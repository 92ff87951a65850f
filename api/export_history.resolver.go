package api

import (
	"fmt"

	"fintudo/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type transactionCsvRow struct {
	Date     string  `csv:"date"`
	Ticker   string  `csv:"ticker"`
	Category string  `csv:"category"`
	Price    float64 `csv:"price"`
	Quantity float64 `csv:"quantity"`
}

type dividendCsvRow struct {
	Date           string  `csv:"date"`
	Ticker         string  `csv:"ticker"`
	Type           string  `csv:"type"`
	AmountPerShare float64 `csv:"amount_per_share"`
	TotalAmount    float64 `csv:"total_amount"`
}

// exportHistory streams the record log as a csv download. kind selects
// which log; transactions is the default.
func (m ApiHandler) exportHistory(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	history, err := m.PortfolioService.GetHistory(userAccountID, c.Query("search"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	kind := c.DefaultQuery("kind", "transactions")
	var (
		csvStr   string
		filename string
	)
	switch kind {
	case "transactions":
		rows := []transactionCsvRow{}
		for _, tx := range history.Transactions {
			rows = append(rows, transactionCsvRow{
				Date:     util.FormatDate(tx.Date),
				Ticker:   tx.Ticker,
				Category: string(tx.Category),
				Price:    tx.Price,
				Quantity: tx.Quantity,
			})
		}
		csvStr, err = gocsv.MarshalString(&rows)
		filename = "transactions.csv"
	case "dividends":
		rows := []dividendCsvRow{}
		for _, d := range history.Dividends {
			rows = append(rows, dividendCsvRow{
				Date:           util.FormatDate(d.Date),
				Ticker:         d.Ticker,
				Type:           string(d.Type),
				AmountPerShare: d.AmountPerShare,
				TotalAmount:    d.TotalAmount,
			})
		}
		csvStr, err = gocsv.MarshalString(&rows)
		filename = "dividends.csv"
	default:
		returnErrorJsonCode(fmt.Errorf("unknown export kind %q", kind), c, 400)
		return
	}
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv", []byte(csvStr))
}
