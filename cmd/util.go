package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"fintudo/api"
	"fintudo/internal/repository"
	"fintudo/internal/service"
	"fintudo/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	transactionRepository := repository.NewTransactionRepository(dbConn)
	dividendRepository := repository.NewDividendRepository(dbConn)
	userAccountRepository := repository.NewUserAccountRepository(dbConn)

	portfolioService := service.NewPortfolioService(
		dbConn,
		transactionRepository,
		dividendRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		PortfolioService:      portfolioService,
		UserAccountRepository: userAccountRepository,
		ApiRequestRepository:  repository.ApiRequestRepositoryHandler{},
		JwtDecodeSecret:       secrets.SupabaseJwtSecret,
	}

	return apiHandler, nil
}
