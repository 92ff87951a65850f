package api

import (
	"fmt"

	"fintudo/internal/domain"
	"fintudo/internal/service"
	"fintudo/internal/util"

	"github.com/gin-gonic/gin"
)

type addDividendRequest struct {
	Ticker         string  `json:"ticker"`
	Type           string  `json:"type"`
	Date           string  `json:"date"`
	AmountPerShare float64 `json:"amountPerShare"`
	TotalAmount    float64 `json:"totalAmount"`
}

func (m ApiHandler) addDividend(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody addDividendRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	date, err := util.ParseDate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid date: %w", err), c, 400)
		return
	}

	dividend, err := m.PortfolioService.AddDividend(userAccountID, service.DividendInput{
		Ticker:         requestBody.Ticker,
		Type:           domain.DividendType(requestBody.Type),
		Date:           date,
		AmountPerShare: requestBody.AmountPerShare,
		TotalAmount:    requestBody.TotalAmount,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, dividendResponseFromDomain(*dividend))
}
