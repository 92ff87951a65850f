package api

import (
	"fmt"

	"fintudo/internal/domain"
	"fintudo/internal/service"
	"fintudo/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type updateTransactionRequest struct {
	Ticker   string  `json:"ticker"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

func (m ApiHandler) updateTransaction(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid transaction id: %w", err), c, 400)
		return
	}

	var requestBody updateTransactionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	date, err := util.ParseDate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid date: %w", err), c, 400)
		return
	}

	transaction, err := m.PortfolioService.UpdateTransaction(userAccountID, transactionID, service.TransactionInput{
		Ticker:   requestBody.Ticker,
		Category: domain.Category(requestBody.Category),
		Date:     date,
		Price:    requestBody.Price,
		Quantity: requestBody.Quantity,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, transactionResponseFromDomain(*transaction))
}
