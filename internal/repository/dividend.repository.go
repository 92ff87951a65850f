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

type DividendRepository interface {
	Add(tx *sql.Tx, d model.Dividend) (*model.Dividend, error)
	Get(id uuid.UUID) (*model.Dividend, error)
	Delete(tx *sql.Tx, id uuid.UUID) error
	List(filter DividendListFilter) ([]model.Dividend, error)
}

type dividendRepositoryHandler struct {
	Db *sql.DB
}

func NewDividendRepository(db *sql.DB) DividendRepository {
	return dividendRepositoryHandler{Db: db}
}

func (h dividendRepositoryHandler) Add(tx *sql.Tx, d model.Dividend) (*model.Dividend, error) {
	d.CreatedAt = time.Now().UTC()
	query := table.Dividend.
		INSERT(table.Dividend.MutableColumns).
		MODEL(d).
		RETURNING(table.Dividend.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Dividend{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert dividend: %w", err)
	}

	return &out, nil
}

func (h dividendRepositoryHandler) Get(id uuid.UUID) (*model.Dividend, error) {
	query := table.Dividend.
		SELECT(table.Dividend.AllColumns).
		WHERE(table.Dividend.DividendID.EQ(postgres.UUID(id)))

	result := model.Dividend{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get dividend: %w", err)
	}

	return &result, nil
}

func (h dividendRepositoryHandler) Delete(tx *sql.Tx, id uuid.UUID) error {
	query := table.Dividend.
		DELETE().
		WHERE(table.Dividend.DividendID.EQ(postgres.UUID(id)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete dividend: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("dividend %s not found", id)
	}

	return nil
}

type DividendListFilter struct {
	UserAccountIDs []uuid.UUID
	Tickers        []string
}

func (h dividendRepositoryHandler) List(filter DividendListFilter) ([]model.Dividend, error) {
	query := table.Dividend.
		SELECT(table.Dividend.AllColumns).
		ORDER_BY(table.Dividend.Date.DESC(), table.Dividend.CreatedAt.DESC())

	whereClauses := []postgres.BoolExpression{}
	if len(filter.UserAccountIDs) > 0 {
		ids := []postgres.Expression{}
		for _, id := range filter.UserAccountIDs {
			ids = append(ids, postgres.UUID(id))
		}
		whereClauses = append(whereClauses,
			table.Dividend.UserAccountID.IN(ids...),
		)
	}
	if len(filter.Tickers) > 0 {
		tickers := []postgres.Expression{}
		for _, ticker := range filter.Tickers {
			tickers = append(tickers, postgres.String(ticker))
		}
		whereClauses = append(whereClauses,
			table.Dividend.Ticker.IN(tickers...),
		)
	}

	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	result := []model.Dividend{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list dividends: %w", err)
	}

	return result, nil
}
