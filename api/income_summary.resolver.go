package api

import (
	"github.com/gin-gonic/gin"
)

type IncomeSummaryResponse struct {
	TotalReceived float64                 `json:"totalReceived"`
	TotalByType   map[string]float64      `json:"totalByType"`
	Monthly       []MonthlyIncomeResponse `json:"monthly"`
	MonthlyMean   float64                 `json:"monthlyMean"`
	MonthlyStdev  float64                 `json:"monthlyStdev"`
}

type MonthlyIncomeResponse struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

func (m ApiHandler) getIncomeSummary(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	summary, err := m.PortfolioService.GetIncomeSummary(userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := IncomeSummaryResponse{
		TotalReceived: summary.TotalReceived,
		TotalByType:   map[string]float64{},
		Monthly:       []MonthlyIncomeResponse{},
		MonthlyMean:   summary.MonthlyMean,
		MonthlyStdev:  summary.MonthlyStdev,
	}
	for dividendType, amount := range summary.TotalByType {
		out.TotalByType[string(dividendType)] = amount
	}
	for _, month := range summary.Monthly {
		out.Monthly = append(out.Monthly, MonthlyIncomeResponse{
			Month: month.Month,
			Total: month.Total,
		})
	}

	c.JSON(200, out)
}
