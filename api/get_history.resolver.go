package api

import (
	"fintudo/internal/domain"
	"fintudo/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GetHistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Dividends    []DividendResponse    `json:"dividends"`
}

type TransactionResponse struct {
	TransactionID uuid.UUID `json:"transactionID"`
	Ticker        string    `json:"ticker"`
	Category      string    `json:"category"`
	Date          string    `json:"date"`
	Price         float64   `json:"price"`
	Quantity      float64   `json:"quantity"`
}

type DividendResponse struct {
	DividendID     uuid.UUID `json:"dividendID"`
	Ticker         string    `json:"ticker"`
	Type           string    `json:"type"`
	Date           string    `json:"date"`
	AmountPerShare float64   `json:"amountPerShare"`
	TotalAmount    float64   `json:"totalAmount"`
}

func (m ApiHandler) getHistory(c *gin.Context) {
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

	out := GetHistoryResponse{
		Transactions: []TransactionResponse{},
		Dividends:    []DividendResponse{},
	}
	for _, tx := range history.Transactions {
		out.Transactions = append(out.Transactions, transactionResponseFromDomain(tx))
	}
	for _, d := range history.Dividends {
		out.Dividends = append(out.Dividends, dividendResponseFromDomain(d))
	}

	c.JSON(200, out)
}

func transactionResponseFromDomain(in domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: in.ID,
		Ticker:        in.Ticker,
		Category:      string(in.Category),
		Date:          util.FormatDate(in.Date),
		Price:         in.Price,
		Quantity:      in.Quantity,
	}
}

func dividendResponseFromDomain(in domain.Dividend) DividendResponse {
	return DividendResponse{
		DividendID:     in.ID,
		Ticker:         in.Ticker,
		Type:           string(in.Type),
		Date:           util.FormatDate(in.Date),
		AmountPerShare: in.AmountPerShare,
		TotalAmount:    in.TotalAmount,
	}
}
