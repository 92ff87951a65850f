package main

import (
	"fmt"
	"log"

	"fintudo/cmd"
	"fintudo/internal/domain"
	"fintudo/internal/service"
	"fintudo/internal/util"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var userFlag string

func parseUserFlag() (uuid.UUID, error) {
	userAccountID, err := uuid.Parse(userFlag)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user: %w", err)
	}
	return userAccountID, nil
}

var rootCmd = &cobra.Command{
	Use:   "script",
	Short: "one-off maintenance commands",
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "reconstruct and print a user's positions",
	RunE: func(c *cobra.Command, args []string) error {
		userAccountID, err := parseUserFlag()
		if err != nil {
			return err
		}

		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		view, err := handler.PortfolioService.GetPortfolio(userAccountID)
		if err != nil {
			return err
		}
		util.Pprint(view)
		return nil
	},
}

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "print a user's dividend income summary",
	RunE: func(c *cobra.Command, args []string) error {
		userAccountID, err := parseUserFlag()
		if err != nil {
			return err
		}

		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		summary, err := handler.PortfolioService.GetIncomeSummary(userAccountID)
		if err != nil {
			return err
		}
		util.Pprint(summary)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "seed a user with sample records for local development",
	RunE: func(c *cobra.Command, args []string) error {
		userAccountID, err := parseUserFlag()
		if err != nil {
			return err
		}

		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		transactions := []service.TransactionInput{
			{Ticker: "PETR4", Category: domain.CategoryAcaoBr, Date: util.NewDate(2024, 1, 10), Price: 30, Quantity: 100},
			{Ticker: "AAPL", Category: domain.CategoryAcaoEua, Date: util.NewDate(2024, 2, 5), Price: 180, Quantity: 5},
			{Ticker: "HGLG11", Category: domain.CategoryFii, Date: util.NewDate(2024, 2, 20), Price: 160, Quantity: 20},
			{Ticker: "BTC", Category: domain.CategoryCripto, Date: util.NewDate(2024, 3, 1), Price: 250000, Quantity: 0.01},
		}
		for _, input := range transactions {
			if _, err := handler.PortfolioService.AddTransaction(userAccountID, input); err != nil {
				return err
			}
		}

		dividends := []service.DividendInput{
			{Ticker: "PETR4", Type: domain.DividendTypeDividendo, Date: util.NewDate(2024, 3, 15), AmountPerShare: 1.2, TotalAmount: 120},
			{Ticker: "PETR4", Type: domain.DividendTypeJcp, Date: util.NewDate(2024, 4, 15), AmountPerShare: 0.4, TotalAmount: 40},
			{Ticker: "HGLG11", Type: domain.DividendTypeRendimento, Date: util.NewDate(2024, 3, 10), AmountPerShare: 1.1, TotalAmount: 22},
		}
		for _, input := range dividends {
			if _, err := handler.PortfolioService.AddDividend(userAccountID, input); err != nil {
				return err
			}
		}

		fmt.Printf("seeded %d transactions and %d dividends\n", len(transactions), len(dividends))
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "user account id")
	rootCmd.AddCommand(positionsCmd, incomeCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
