package api

import (
	"fintudo/internal/service"

	"github.com/gin-gonic/gin"
)

type GetPortfolioResponse struct {
	Assets           []AssetResponse         `json:"assets"`
	Groups           []CategoryGroupResponse `json:"groups"`
	DividendEligible []string                `json:"dividendEligible"`
	TotalInvested    float64                 `json:"totalInvested"`
	TotalIncome      float64                 `json:"totalIncome"`
	TotalEquity      float64                 `json:"totalEquity"`
	Warnings         []string                `json:"warnings,omitempty"`
}

type AssetResponse struct {
	Ticker         string  `json:"ticker"`
	Category       string  `json:"category"`
	TotalQuantity  float64 `json:"totalQuantity"`
	AveragePrice   float64 `json:"averagePrice"`
	CostBasis      float64 `json:"costBasis"`
	IncomeReceived float64 `json:"incomeReceived"`
	Equity         float64 `json:"equity"`
	ReferencePrice float64 `json:"referencePrice"`
}

type CategoryGroupResponse struct {
	Category string   `json:"category"`
	Tickers  []string `json:"tickers"`
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	view, err := m.PortfolioService.GetPortfolio(userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getPortfolioResponseFromDomain(view))
}

func assetResponseFromDomain(in service.AssetView) AssetResponse {
	return AssetResponse{
		Ticker:         in.Asset.Ticker,
		Category:       string(in.Asset.Category),
		TotalQuantity:  in.Asset.TotalQuantity,
		AveragePrice:   in.Asset.AveragePrice,
		CostBasis:      in.Asset.CostBasis(),
		IncomeReceived: in.IncomeReceived,
		Equity:         in.Equity,
		ReferencePrice: in.ReferencePrice,
	}
}

func getPortfolioResponseFromDomain(in *service.PortfolioView) GetPortfolioResponse {
	out := GetPortfolioResponse{
		Assets:           []AssetResponse{},
		Groups:           []CategoryGroupResponse{},
		DividendEligible: in.DividendEligible,
		TotalInvested:    in.TotalInvested,
		TotalIncome:      in.TotalIncome,
		TotalEquity:      in.TotalEquity,
		Warnings:         in.Warnings,
	}
	for _, asset := range in.Assets {
		out.Assets = append(out.Assets, assetResponseFromDomain(asset))
	}
	for _, group := range in.Groups {
		tickers := []string{}
		for _, asset := range group.Assets {
			tickers = append(tickers, asset.Ticker)
		}
		out.Groups = append(out.Groups, CategoryGroupResponse{
			Category: string(group.Category),
			Tickers:  tickers,
		})
	}

	return out
}
