package calculator

import (
	"testing"
	"time"

	"fintudo/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func tx(ticker string, category domain.Category, price, quantity float64) domain.Transaction {
	return domain.Transaction{
		ID:       uuid.New(),
		Ticker:   ticker,
		Category: category,
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Price:    price,
		Quantity: quantity,
	}
}

func Test_Reconstruct(t *testing.T) {
	t.Run("weighted average", func(t *testing.T) {
		result := Reconstruct([]domain.Transaction{
			tx("PETR4", domain.CategoryAcaoBr, 5, 10),
			tx("PETR4", domain.CategoryAcaoBr, 7, 10),
		})

		require.Empty(t, result.Warnings)
		require.Equal(t, "", cmp.Diff(
			[]domain.Asset{
				{
					Ticker:        "PETR4",
					Category:      domain.CategoryAcaoBr,
					TotalQuantity: 20,
					AveragePrice:  6.0,
				},
			},
			result.Assets,
		))
	})

	t.Run("order independence", func(t *testing.T) {
		a := tx("ITSA4", domain.CategoryAcaoBr, 9.13, 100)
		b := tx("ITSA4", domain.CategoryAcaoBr, 10.47, 33)
		c := tx("ITSA4", domain.CategoryAcaoBr, 8.02, 0.5)

		permutations := [][]domain.Transaction{
			{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
		}

		baseline := Reconstruct(permutations[0]).Assets
		require.Len(t, baseline, 1)
		for _, p := range permutations[1:] {
			assets := Reconstruct(p).Assets
			require.Len(t, assets, 1)
			require.InEpsilon(t, baseline[0].AveragePrice, assets[0].AveragePrice, 1e-9)
			require.InEpsilon(t, baseline[0].TotalQuantity, assets[0].TotalQuantity, 1e-9)
		}
	})

	t.Run("liquidated ticker excluded", func(t *testing.T) {
		result := Reconstruct([]domain.Transaction{
			tx("HGLG11", domain.CategoryFii, 160, 10),
			tx("HGLG11", domain.CategoryFii, 160, -10),
			tx("MXRF11", domain.CategoryFii, 10, 50),
		})

		require.Len(t, result.Assets, 1)
		require.Equal(t, "MXRF11", result.Assets[0].Ticker)
	})

	t.Run("oversold ticker excluded", func(t *testing.T) {
		result := Reconstruct([]domain.Transaction{
			tx("BTC", domain.CategoryCripto, 250000, 0.2),
			tx("BTC", domain.CategoryCripto, 250000, -0.5),
		})

		require.Empty(t, result.Assets)
	})

	t.Run("idempotent", func(t *testing.T) {
		input := []domain.Transaction{
			tx("VALE3", domain.CategoryAcaoBr, 61.20, 15),
			tx("AAPL", domain.CategoryAcaoEua, 180.55, 3),
		}

		first := Reconstruct(input)
		second := Reconstruct(input)

		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("category keeps first seen and warns", func(t *testing.T) {
		result := Reconstruct([]domain.Transaction{
			tx("KNRI11", domain.CategoryFii, 130, 5),
			tx("KNRI11", domain.CategoryAcaoBr, 131, 5),
		})

		require.Len(t, result.Assets, 1)
		require.Equal(t, domain.CategoryFii, result.Assets[0].Category)
		require.Len(t, result.Warnings, 1)
		require.Contains(t, result.Warnings[0], "KNRI11")
	})

	t.Run("tickers grouped case-insensitively", func(t *testing.T) {
		result := Reconstruct([]domain.Transaction{
			tx("petr4", domain.CategoryAcaoBr, 30, 10),
			tx("PETR4", domain.CategoryAcaoBr, 30, 10),
		})

		require.Len(t, result.Assets, 1)
		require.Equal(t, "PETR4", result.Assets[0].Ticker)
		require.InEpsilon(t, 20.0, result.Assets[0].TotalQuantity, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		result := Reconstruct(nil)
		require.Empty(t, result.Assets)
		require.Empty(t, result.Warnings)
	})
}

func Test_Fingerprint(t *testing.T) {
	t.Run("order insensitive", func(t *testing.T) {
		a := tx("PETR4", domain.CategoryAcaoBr, 30, 10)
		b := tx("VALE3", domain.CategoryAcaoBr, 60, 5)

		require.Equal(t,
			Fingerprint([]domain.Transaction{a, b}),
			Fingerprint([]domain.Transaction{b, a}),
		)
	})

	t.Run("sensitive to record content", func(t *testing.T) {
		a := tx("PETR4", domain.CategoryAcaoBr, 30, 10)
		edited := a
		edited.Price = 31

		require.NotEqual(t,
			Fingerprint([]domain.Transaction{a}),
			Fingerprint([]domain.Transaction{edited}),
		)
	})

	t.Run("sensitive to duplicates", func(t *testing.T) {
		a := tx("PETR4", domain.CategoryAcaoBr, 30, 10)

		require.NotEqual(t,
			Fingerprint([]domain.Transaction{a}),
			Fingerprint([]domain.Transaction{a, a}),
		)
	})
}
