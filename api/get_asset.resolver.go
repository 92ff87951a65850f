package api

import (
	"github.com/gin-gonic/gin"
)

type GetAssetResponse struct {
	// Asset is null when the position was fully liquidated but records
	// for the ticker still exist.
	Asset          *AssetResponse        `json:"asset"`
	Transactions   []TransactionResponse `json:"transactions"`
	Dividends      []DividendResponse    `json:"dividends"`
	IncomeReceived float64               `json:"incomeReceived"`
}

func (m ApiHandler) getAsset(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	detail, err := m.PortfolioService.GetAssetDetail(userAccountID, c.Param("ticker"))
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	out := GetAssetResponse{
		Transactions:   []TransactionResponse{},
		Dividends:      []DividendResponse{},
		IncomeReceived: detail.IncomeReceived,
	}
	if detail.Asset != nil {
		asset := assetResponseFromDomain(*detail.Asset)
		out.Asset = &asset
	}
	for _, tx := range detail.Transactions {
		out.Transactions = append(out.Transactions, transactionResponseFromDomain(tx))
	}
	for _, d := range detail.Dividends {
		out.Dividends = append(out.Dividends, dividendResponseFromDomain(d))
	}

	c.JSON(200, out)
}
