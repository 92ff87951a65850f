package service

import (
	"database/sql"
	"fmt"
	"math"
	"testing"

	"fintudo/internal/db/models/postgres/public/model"
	"fintudo/internal/domain"
	"fintudo/internal/repository"
	mock_repository "fintudo/internal/repository/mocks"
	"fintudo/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectInitialLoad(
	transactionRepository *mock_repository.MockTransactionRepository,
	dividendRepository *mock_repository.MockDividendRepository,
	userAccountID uuid.UUID,
	transactions []model.Transaction,
	dividends []model.Dividend,
) {
	transactionRepository.EXPECT().
		List(repository.TransactionListFilter{UserAccountIDs: []uuid.UUID{userAccountID}}).
		Return(transactions, nil)
	dividendRepository.EXPECT().
		List(repository.DividendListFilter{UserAccountIDs: []uuid.UUID{userAccountID}}).
		Return(dividends, nil)
}

func Test_portfolioServiceHandler_AddTransaction(t *testing.T) {
	t.Run("persists then recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, []model.Transaction{}, []model.Dividend{})

		insertedID := uuid.New()
		transactionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, m model.Transaction) (*model.Transaction, error) {
				require.Equal(t, "PETR4", m.Ticker)
				require.Equal(t, model.AssetCategory_AcaoBr, m.Category)
				m.TransactionID = insertedID
				return &m, nil
			})

		transaction, err := handler.AddTransaction(userAccountID, TransactionInput{
			Ticker:   " petr4 ",
			Category: domain.CategoryAcaoBr,
			Date:     util.NewDate(2024, 3, 1),
			Price:    30,
			Quantity: 10,
		})
		require.NoError(t, err)
		require.Equal(t, insertedID, transaction.ID)
		require.Equal(t, "PETR4", transaction.Ticker)

		// snapshot was updated in place of a reload; no further List calls
		view, err := handler.GetPortfolio(userAccountID)
		require.NoError(t, err)
		require.Len(t, view.Assets, 1)
		require.Equal(t, "PETR4", view.Assets[0].Asset.Ticker)
		require.InEpsilon(t, 300.0, view.TotalInvested, 1e-9)
	})

	t.Run("rejects NaN price before hitting the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)

		_, err := handler.AddTransaction(uuid.New(), TransactionInput{
			Ticker:   "PETR4",
			Category: domain.CategoryAcaoBr,
			Date:     util.NewDate(2024, 3, 1),
			Price:    math.NaN(),
			Quantity: 10,
		})
		require.ErrorContains(t, err, "finite")
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := NewPortfolioService(nil,
			mock_repository.NewMockTransactionRepository(ctrl),
			mock_repository.NewMockDividendRepository(ctrl),
		)

		_, err := handler.AddTransaction(uuid.New(), TransactionInput{
			Ticker:   "PETR4",
			Category: domain.Category("BONDS"),
			Date:     util.NewDate(2024, 3, 1),
			Price:    10,
			Quantity: 1,
		})
		require.ErrorContains(t, err, "unknown category")
	})
}

func Test_portfolioServiceHandler_DeleteTransaction(t *testing.T) {
	t.Run("drops the asset once liquidated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()
		transactionID := uuid.New()

		stored := model.Transaction{
			TransactionID: transactionID,
			UserAccountID: userAccountID,
			Ticker:        "HGLG11",
			Category:      model.AssetCategory_Fii,
			Date:          util.NewDate(2024, 1, 10),
			Price:         160,
			Quantity:      10,
		}

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, []model.Transaction{stored}, []model.Dividend{})
		transactionRepository.EXPECT().Get(transactionID).Return(&stored, nil)
		transactionRepository.EXPECT().Delete(nil, transactionID).Return(nil)

		err := handler.DeleteTransaction(userAccountID, transactionID)
		require.NoError(t, err)

		view, err := handler.GetPortfolio(userAccountID)
		require.NoError(t, err)
		require.Empty(t, view.Assets)
		require.Zero(t, view.TotalInvested)
	})

	t.Run("refuses another user's record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()
		transactionID := uuid.New()

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, []model.Transaction{}, []model.Dividend{})
		transactionRepository.EXPECT().Get(transactionID).Return(&model.Transaction{
			TransactionID: transactionID,
			UserAccountID: uuid.New(),
		}, nil)

		err := handler.DeleteTransaction(userAccountID, transactionID)
		require.ErrorContains(t, err, "does not belong")
	})
}

func Test_portfolioServiceHandler_UpdateTransaction(t *testing.T) {
	t.Run("full replace moves the average", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()
		transactionID := uuid.New()

		stored := model.Transaction{
			TransactionID: transactionID,
			UserAccountID: userAccountID,
			Ticker:        "PETR4",
			Category:      model.AssetCategory_AcaoBr,
			Date:          util.NewDate(2024, 1, 10),
			Price:         5,
			Quantity:      10,
		}
		other := model.Transaction{
			TransactionID: uuid.New(),
			UserAccountID: userAccountID,
			Ticker:        "PETR4",
			Category:      model.AssetCategory_AcaoBr,
			Date:          util.NewDate(2024, 2, 10),
			Price:         7,
			Quantity:      10,
		}

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, []model.Transaction{stored, other}, []model.Dividend{})
		transactionRepository.EXPECT().Get(transactionID).Return(&stored, nil)
		transactionRepository.EXPECT().
			Update(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, m model.Transaction) (*model.Transaction, error) {
				return &m, nil
			})

		_, err := handler.UpdateTransaction(userAccountID, transactionID, TransactionInput{
			Ticker:   "PETR4",
			Category: domain.CategoryAcaoBr,
			Date:     util.NewDate(2024, 1, 10),
			Price:    9,
			Quantity: 10,
		})
		require.NoError(t, err)

		view, err := handler.GetPortfolio(userAccountID)
		require.NoError(t, err)
		require.Len(t, view.Assets, 1)
		require.InEpsilon(t, 8.0, view.Assets[0].Asset.AveragePrice, 1e-9)
		require.InEpsilon(t, 20.0, view.Assets[0].Asset.TotalQuantity, 1e-9)
	})
}

func Test_portfolioServiceHandler_GetPortfolio(t *testing.T) {
	t.Run("totals and per-asset equity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()

		transactions := []model.Transaction{
			{
				TransactionID: uuid.New(),
				UserAccountID: userAccountID,
				Ticker:        "PETR4",
				Category:      model.AssetCategory_AcaoBr,
				Date:          util.NewDate(2024, 1, 10),
				Price:         5,
				Quantity:      10,
			},
			{
				TransactionID: uuid.New(),
				UserAccountID: userAccountID,
				Ticker:        "BTC",
				Category:      model.AssetCategory_Cripto,
				Date:          util.NewDate(2024, 1, 11),
				Price:         100,
				Quantity:      2,
			},
		}
		dividends := []model.Dividend{
			{
				DividendID:    uuid.New(),
				UserAccountID: userAccountID,
				Ticker:        "PETR4",
				DividendType:  model.DividendType_Dividendo,
				Date:          util.NewDate(2024, 2, 1),
				TotalAmount:   20,
			},
		}

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, transactions, dividends)

		view, err := handler.GetPortfolio(userAccountID)
		require.NoError(t, err)

		require.InEpsilon(t, 250.0, view.TotalInvested, 1e-9)
		require.InEpsilon(t, 20.0, view.TotalIncome, 1e-9)
		require.InEpsilon(t, 270.0, view.TotalEquity, 1e-9)

		require.Len(t, view.Assets, 2)
		require.Equal(t, "PETR4", view.Assets[0].Asset.Ticker)
		require.InEpsilon(t, 70.0, view.Assets[0].Equity, 1e-9)
		require.InEpsilon(t, 5.25, view.Assets[0].ReferencePrice, 1e-9)

		// crypto is not dividend-eligible
		require.Equal(t, []string{"PETR4"}, view.DividendEligible)

		require.Len(t, view.Groups, 2)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()

		transactionRepository.EXPECT().
			List(gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		_, err := handler.GetPortfolio(userAccountID)
		require.ErrorContains(t, err, "failed to load transactions")
	})
}

func Test_portfolioServiceHandler_GetAssetDetail(t *testing.T) {
	t.Run("liquidated ticker keeps its dividend history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()

		transactions := []model.Transaction{
			{
				TransactionID: uuid.New(),
				UserAccountID: userAccountID,
				Ticker:        "HGLG11",
				Category:      model.AssetCategory_Fii,
				Date:          util.NewDate(2024, 1, 10),
				Price:         160,
				Quantity:      10,
			},
			{
				TransactionID: uuid.New(),
				UserAccountID: userAccountID,
				Ticker:        "HGLG11",
				Category:      model.AssetCategory_Fii,
				Date:          util.NewDate(2024, 3, 10),
				Price:         150,
				Quantity:      -10,
			},
		}
		dividends := []model.Dividend{
			{
				DividendID:    uuid.New(),
				UserAccountID: userAccountID,
				Ticker:        "HGLG11",
				DividendType:  model.DividendType_Rendimento,
				Date:          util.NewDate(2024, 2, 1),
				TotalAmount:   11,
			},
		}

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, transactions, dividends)

		detail, err := handler.GetAssetDetail(userAccountID, "hglg11")
		require.NoError(t, err)

		require.Nil(t, detail.Asset)
		require.Len(t, detail.Transactions, 2)
		require.Len(t, detail.Dividends, 1)
		require.InEpsilon(t, 11.0, detail.IncomeReceived, 1e-9)
	})

	t.Run("unknown ticker errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, []model.Transaction{}, []model.Dividend{})

		_, err := handler.GetAssetDetail(userAccountID, "XXXX")
		require.ErrorContains(t, err, "no records")
	})
}

func Test_portfolioServiceHandler_GetHistory(t *testing.T) {
	t.Run("search filters both logs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()

		transactions := []model.Transaction{
			{TransactionID: uuid.New(), UserAccountID: userAccountID, Ticker: "PETR4", Category: model.AssetCategory_AcaoBr, Price: 30, Quantity: 1},
			{TransactionID: uuid.New(), UserAccountID: userAccountID, Ticker: "VALE3", Category: model.AssetCategory_AcaoBr, Price: 60, Quantity: 1},
		}
		dividends := []model.Dividend{
			{DividendID: uuid.New(), UserAccountID: userAccountID, Ticker: "PETR4", DividendType: model.DividendType_Dividendo, TotalAmount: 3},
		}

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, transactions, dividends)

		history, err := handler.GetHistory(userAccountID, "petr")
		require.NoError(t, err)

		require.Len(t, history.Transactions, 1)
		require.Equal(t, "PETR4", history.Transactions[0].Ticker)
		require.Len(t, history.Dividends, 1)
	})

	t.Run("newest first even after a mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		dividendRepository := mock_repository.NewMockDividendRepository(ctrl)

		handler := NewPortfolioService(nil, transactionRepository, dividendRepository)
		userAccountID := uuid.New()

		transactions := []model.Transaction{
			{
				TransactionID: uuid.New(),
				UserAccountID: userAccountID,
				Ticker:        "PETR4",
				Category:      model.AssetCategory_AcaoBr,
				Date:          util.NewDate(2024, 5, 1),
				Price:         30,
				Quantity:      10,
			},
		}
		dividends := []model.Dividend{
			{
				DividendID:    uuid.New(),
				UserAccountID: userAccountID,
				Ticker:        "PETR4",
				DividendType:  model.DividendType_Dividendo,
				Date:          util.NewDate(2024, 4, 15),
				TotalAmount:   12,
			},
		}

		expectInitialLoad(transactionRepository, dividendRepository, userAccountID, transactions, dividends)

		// the new record lands at the end of the cached snapshot but its
		// date is the most recent
		transactionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, m model.Transaction) (*model.Transaction, error) {
				m.TransactionID = uuid.New()
				return &m, nil
			})
		_, err := handler.AddTransaction(userAccountID, TransactionInput{
			Ticker:   "VALE3",
			Category: domain.CategoryAcaoBr,
			Date:     util.NewDate(2024, 6, 15),
			Price:    60,
			Quantity: 5,
		})
		require.NoError(t, err)

		dividendRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, m model.Dividend) (*model.Dividend, error) {
				m.DividendID = uuid.New()
				return &m, nil
			})
		_, err = handler.AddDividend(userAccountID, DividendInput{
			Ticker:         "VALE3",
			Type:           domain.DividendTypeDividendo,
			Date:           util.NewDate(2024, 6, 20),
			AmountPerShare: 2,
			TotalAmount:    10,
		})
		require.NoError(t, err)

		history, err := handler.GetHistory(userAccountID, "")
		require.NoError(t, err)

		require.Len(t, history.Transactions, 2)
		require.Equal(t, "VALE3", history.Transactions[0].Ticker)
		require.Equal(t, "PETR4", history.Transactions[1].Ticker)

		require.Len(t, history.Dividends, 2)
		require.Equal(t, "VALE3", history.Dividends[0].Ticker)
		require.Equal(t, "PETR4", history.Dividends[1].Ticker)
	})
}
