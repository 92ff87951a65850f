package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fintudo/internal/db/models/postgres/public/model"
	"fintudo/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// SupabaseIdentity is what we trust from a verified Supabase token.
type SupabaseIdentity struct {
	Email string
	Name  string
}

type UserAccountRepository interface {
	GetOrCreate(SupabaseIdentity) (*model.UserAccount, error)
	Get(id uuid.UUID) (*model.UserAccount, error)
}

type userAccountRepositoryHandler struct {
	DB *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{
		DB: db,
	}
}

func (h userAccountRepositoryHandler) GetOrCreate(identity SupabaseIdentity) (*model.UserAccount, error) {
	t := table.UserAccount

	getQuery := t.SELECT(t.AllColumns).WHERE(t.Email.EQ(postgres.String(identity.Email)))
	out := model.UserAccount{}
	err := getQuery.Query(h.DB, &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get user account: %w", err)
	} else if err == nil {
		return &out, nil
	}

	newModel := model.UserAccount{
		Name:      identity.Name,
		Email:     identity.Email,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	createQuery := t.INSERT(t.MutableColumns).MODEL(newModel).RETURNING(t.AllColumns)

	err = createQuery.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) Get(id uuid.UUID) (*model.UserAccount, error) {
	t := table.UserAccount

	query := t.SELECT(t.AllColumns).WHERE(t.UserAccountID.EQ(postgres.UUID(id)))
	out := model.UserAccount{}
	err := query.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get user account: %w", err)
	}

	return &out, nil
}
