package api

import (
	"testing"

	"fintudo/internal/calculator"
	"fintudo/internal/domain"
	"fintudo/internal/service"

	"github.com/stretchr/testify/require"
)

func Test_getPortfolioResponseFromDomain(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		view := &service.PortfolioView{
			Assets: []service.AssetView{
				{
					Asset: domain.Asset{
						Ticker:        "PETR4",
						Category:      domain.CategoryAcaoBr,
						TotalQuantity: 20,
						AveragePrice:  6,
					},
					IncomeReceived: 20,
					Equity:         140,
					ReferencePrice: 6.3,
				},
			},
			Groups: []calculator.CategoryGroup{
				{
					Category: domain.CategoryAcaoBr,
					Assets: []domain.Asset{
						{Ticker: "PETR4"},
					},
				},
			},
			DividendEligible: []string{"PETR4"},
			TotalInvested:    120,
			TotalIncome:      20,
			TotalEquity:      140,
		}

		out := getPortfolioResponseFromDomain(view)

		require.Len(t, out.Assets, 1)
		require.Equal(t, "PETR4", out.Assets[0].Ticker)
		require.Equal(t, "ACAO_BR", out.Assets[0].Category)
		require.InEpsilon(t, 120.0, out.Assets[0].CostBasis, 1e-9)
		require.Equal(t, []CategoryGroupResponse{
			{Category: "ACAO_BR", Tickers: []string{"PETR4"}},
		}, out.Groups)
		require.Equal(t, []string{"PETR4"}, out.DividendEligible)
	})

	t.Run("empty view serializes with empty slices", func(t *testing.T) {
		out := getPortfolioResponseFromDomain(&service.PortfolioView{})

		require.NotNil(t, out.Assets)
		require.Empty(t, out.Assets)
		require.NotNil(t, out.Groups)
	})
}
