package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fintudo/internal/db/models/postgres/public/model"
	"fintudo/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TransactionRepository interface {
	Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error)
	Get(id uuid.UUID) (*model.Transaction, error)
	Update(tx *sql.Tx, t model.Transaction) (*model.Transaction, error)
	Delete(tx *sql.Tx, id uuid.UUID) error
	List(filter TransactionListFilter) ([]model.Transaction, error)
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error) {
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = time.Now().UTC()
	query := table.Transaction.
		INSERT(table.Transaction.MutableColumns).
		MODEL(t).
		RETURNING(table.Transaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Transaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) Get(id uuid.UUID) (*model.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		WHERE(table.Transaction.TransactionID.EQ(postgres.UUID(id)))

	result := model.Transaction{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &result, nil
}

func (h transactionRepositoryHandler) Update(tx *sql.Tx, t model.Transaction) (*model.Transaction, error) {
	t.UpdatedAt = time.Now().UTC()
	query := table.Transaction.
		UPDATE(
			table.Transaction.Ticker,
			table.Transaction.Category,
			table.Transaction.Date,
			table.Transaction.Price,
			table.Transaction.Quantity,
			table.Transaction.UpdatedAt,
		).
		MODEL(t).
		WHERE(table.Transaction.TransactionID.EQ(postgres.UUID(t.TransactionID))).
		RETURNING(table.Transaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Transaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) Delete(tx *sql.Tx, id uuid.UUID) error {
	query := table.Transaction.
		DELETE().
		WHERE(table.Transaction.TransactionID.EQ(postgres.UUID(id)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("transaction %s not found", id)
	}

	return nil
}

type TransactionListFilter struct {
	UserAccountIDs []uuid.UUID
	Tickers        []string
}

func (h transactionRepositoryHandler) List(filter TransactionListFilter) ([]model.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		ORDER_BY(table.Transaction.Date.DESC(), table.Transaction.CreatedAt.DESC())

	whereClauses := []postgres.BoolExpression{}
	if len(filter.UserAccountIDs) > 0 {
		ids := []postgres.Expression{}
		for _, id := range filter.UserAccountIDs {
			ids = append(ids, postgres.UUID(id))
		}
		whereClauses = append(whereClauses,
			table.Transaction.UserAccountID.IN(ids...),
		)
	}
	if len(filter.Tickers) > 0 {
		tickers := []postgres.Expression{}
		for _, ticker := range filter.Tickers {
			tickers = append(tickers, postgres.String(ticker))
		}
		whereClauses = append(whereClauses,
			table.Transaction.Ticker.IN(tickers...),
		)
	}

	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	result := []model.Transaction{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return result, nil
}
