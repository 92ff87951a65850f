package service

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"fintudo/internal/calculator"
	"fintudo/internal/db/models/postgres/public/model"
	"fintudo/internal/domain"
	"fintudo/internal/repository"

	"github.com/google/uuid"
)

type TransactionInput struct {
	Ticker   string
	Category domain.Category
	Date     time.Time
	Price    float64
	Quantity float64
}

type DividendInput struct {
	Ticker         string
	Type           domain.DividendType
	Date           time.Time
	AmountPerShare float64
	TotalAmount    float64
}

type AssetView struct {
	Asset          domain.Asset
	IncomeReceived float64
	Equity         float64
	ReferencePrice float64
}

type PortfolioView struct {
	Assets           []AssetView
	Groups           []calculator.CategoryGroup
	DividendEligible []string
	TotalInvested    float64
	TotalIncome      float64
	TotalEquity      float64
	Warnings         []string
}

// AssetDetail covers one ticker. Asset is nil when the position was fully
// liquidated; the record history is still returned so income for a sold
// ticker stays visible.
type AssetDetail struct {
	Asset          *AssetView
	Transactions   []domain.Transaction
	Dividends      []domain.Dividend
	IncomeReceived float64
}

type History struct {
	Transactions []domain.Transaction
	Dividends    []domain.Dividend
}

type PortfolioService interface {
	AddTransaction(userAccountID uuid.UUID, input TransactionInput) (*domain.Transaction, error)
	UpdateTransaction(userAccountID uuid.UUID, transactionID uuid.UUID, input TransactionInput) (*domain.Transaction, error)
	DeleteTransaction(userAccountID uuid.UUID, transactionID uuid.UUID) error
	AddDividend(userAccountID uuid.UUID, input DividendInput) (*domain.Dividend, error)
	DeleteDividend(userAccountID uuid.UUID, dividendID uuid.UUID) error
	GetPortfolio(userAccountID uuid.UUID) (*PortfolioView, error)
	GetAssetDetail(userAccountID uuid.UUID, ticker string) (*AssetDetail, error)
	GetHistory(userAccountID uuid.UUID, search string) (*History, error)
	GetIncomeSummary(userAccountID uuid.UUID) (*calculator.IncomeSummary, error)
}

type portfolioServiceHandler struct {
	Db                    *sql.DB
	TransactionRepository repository.TransactionRepository
	DividendRepository    repository.DividendRepository

	// snapshots is the only holder of in-memory record state. Every
	// mutation swaps in a new Snapshot value; nothing edits one in place.
	mu        sync.Mutex
	snapshots map[uuid.UUID]domain.Snapshot
	positions map[uuid.UUID]positionCache
}

type positionCache struct {
	fingerprint uint64
	result      calculator.ReconstructResult
}

func NewPortfolioService(
	db *sql.DB,
	transactionRepository repository.TransactionRepository,
	dividendRepository repository.DividendRepository,
) PortfolioService {
	return &portfolioServiceHandler{
		Db:                    db,
		TransactionRepository: transactionRepository,
		DividendRepository:    dividendRepository,
		snapshots:             map[uuid.UUID]domain.Snapshot{},
		positions:             map[uuid.UUID]positionCache{},
	}
}

func validateAmount(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	return nil
}

func validateTransactionInput(input TransactionInput) error {
	if strings.TrimSpace(input.Ticker) == "" {
		return fmt.Errorf("ticker must not be empty")
	}
	switch input.Category {
	case domain.CategoryAcaoBr, domain.CategoryAcaoEua, domain.CategoryCripto, domain.CategoryFii:
	default:
		return fmt.Errorf("unknown category %q", input.Category)
	}
	if err := validateAmount("price", input.Price); err != nil {
		return err
	}
	if input.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	// Negative quantity is admitted as a manual position adjustment; the
	// reconstruction drops a ticker once its total reaches zero.
	return validateAmount("quantity", input.Quantity)
}

func validateDividendInput(input DividendInput) error {
	if strings.TrimSpace(input.Ticker) == "" {
		return fmt.Errorf("ticker must not be empty")
	}
	switch input.Type {
	case domain.DividendTypeDividendo, domain.DividendTypeJcp, domain.DividendTypeRendimento:
	default:
		return fmt.Errorf("unknown dividend type %q", input.Type)
	}
	if err := validateAmount("amountPerShare", input.AmountPerShare); err != nil {
		return err
	}
	if err := validateAmount("totalAmount", input.TotalAmount); err != nil {
		return err
	}
	if input.TotalAmount < 0 || input.AmountPerShare < 0 {
		return fmt.Errorf("amounts must not be negative")
	}
	return nil
}

func transactionFromModel(m model.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:       m.TransactionID,
		Ticker:   m.Ticker,
		Category: domain.Category(m.Category),
		Date:     m.Date,
		Price:    m.Price,
		Quantity: m.Quantity,
	}
}

func dividendFromModel(m model.Dividend) domain.Dividend {
	return domain.Dividend{
		ID:             m.DividendID,
		Ticker:         m.Ticker,
		Type:           domain.DividendType(m.DividendType),
		Date:           m.Date,
		AmountPerShare: m.AmountPerShare,
		TotalAmount:    m.TotalAmount,
	}
}

// loadSnapshot returns the cached snapshot for the user, loading both logs
// from the store on first use. Caller must hold h.mu.
func (h *portfolioServiceHandler) loadSnapshot(userAccountID uuid.UUID) (domain.Snapshot, error) {
	if snapshot, ok := h.snapshots[userAccountID]; ok {
		return snapshot, nil
	}

	transactionModels, err := h.TransactionRepository.List(repository.TransactionListFilter{
		UserAccountIDs: []uuid.UUID{userAccountID},
	})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	dividendModels, err := h.DividendRepository.List(repository.DividendListFilter{
		UserAccountIDs: []uuid.UUID{userAccountID},
	})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to load dividends: %w", err)
	}

	snapshot := domain.Snapshot{}
	for _, m := range transactionModels {
		snapshot.Transactions = append(snapshot.Transactions, transactionFromModel(m))
	}
	for _, m := range dividendModels {
		snapshot.Dividends = append(snapshot.Dividends, dividendFromModel(m))
	}

	h.snapshots[userAccountID] = snapshot
	return snapshot, nil
}

// reconstruct returns the asset set for a snapshot, reusing the previous
// result when the transaction set is unchanged. Caller must hold h.mu.
func (h *portfolioServiceHandler) reconstruct(userAccountID uuid.UUID, snapshot domain.Snapshot) calculator.ReconstructResult {
	fingerprint := calculator.Fingerprint(snapshot.Transactions)
	if cached, ok := h.positions[userAccountID]; ok && cached.fingerprint == fingerprint {
		return cached.result
	}

	result := calculator.Reconstruct(snapshot.Transactions)
	h.positions[userAccountID] = positionCache{fingerprint: fingerprint, result: result}
	return result
}

// commit stores the post-mutation snapshot and eagerly recomputes the
// asset set, so a failed recomputation can never be observed after a
// confirmed write. Caller must hold h.mu.
func (h *portfolioServiceHandler) commit(userAccountID uuid.UUID, snapshot domain.Snapshot, event domain.Event) domain.Snapshot {
	next := snapshot.Apply(event)
	h.snapshots[userAccountID] = next
	h.reconstruct(userAccountID, next)
	return next
}

func (h *portfolioServiceHandler) AddTransaction(userAccountID uuid.UUID, input TransactionInput) (*domain.Transaction, error) {
	if err := validateTransactionInput(input); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return nil, err
	}

	inserted, err := h.TransactionRepository.Add(nil, model.Transaction{
		UserAccountID: userAccountID,
		Ticker:        strings.ToUpper(strings.TrimSpace(input.Ticker)),
		Category:      model.AssetCategory(input.Category),
		Date:          input.Date,
		Price:         input.Price,
		Quantity:      input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	transaction := transactionFromModel(*inserted)
	h.commit(userAccountID, snapshot, domain.TransactionAdded{Transaction: transaction})

	return &transaction, nil
}

func (h *portfolioServiceHandler) UpdateTransaction(userAccountID uuid.UUID, transactionID uuid.UUID, input TransactionInput) (*domain.Transaction, error) {
	if err := validateTransactionInput(input); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return nil, err
	}

	existing, err := h.TransactionRepository.Get(transactionID)
	if err != nil {
		return nil, err
	}
	if existing.UserAccountID != userAccountID {
		return nil, fmt.Errorf("transaction %s does not belong to user", transactionID)
	}

	updated, err := h.TransactionRepository.Update(nil, model.Transaction{
		TransactionID: transactionID,
		UserAccountID: userAccountID,
		Ticker:        strings.ToUpper(strings.TrimSpace(input.Ticker)),
		Category:      model.AssetCategory(input.Category),
		Date:          input.Date,
		Price:         input.Price,
		Quantity:      input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	transaction := transactionFromModel(*updated)
	h.commit(userAccountID, snapshot, domain.TransactionUpdated{Transaction: transaction})

	return &transaction, nil
}

func (h *portfolioServiceHandler) DeleteTransaction(userAccountID uuid.UUID, transactionID uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return err
	}

	existing, err := h.TransactionRepository.Get(transactionID)
	if err != nil {
		return err
	}
	if existing.UserAccountID != userAccountID {
		return fmt.Errorf("transaction %s does not belong to user", transactionID)
	}

	if err := h.TransactionRepository.Delete(nil, transactionID); err != nil {
		return err
	}

	h.commit(userAccountID, snapshot, domain.TransactionRemoved{ID: transactionID})
	return nil
}

func (h *portfolioServiceHandler) AddDividend(userAccountID uuid.UUID, input DividendInput) (*domain.Dividend, error) {
	if err := validateDividendInput(input); err != nil {
		return nil, fmt.Errorf("invalid dividend: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return nil, err
	}

	inserted, err := h.DividendRepository.Add(nil, model.Dividend{
		UserAccountID:  userAccountID,
		Ticker:         strings.ToUpper(strings.TrimSpace(input.Ticker)),
		DividendType:   model.DividendType(input.Type),
		Date:           input.Date,
		AmountPerShare: input.AmountPerShare,
		TotalAmount:    input.TotalAmount,
	})
	if err != nil {
		return nil, err
	}

	dividend := dividendFromModel(*inserted)
	h.commit(userAccountID, snapshot, domain.DividendAdded{Dividend: dividend})

	return &dividend, nil
}

func (h *portfolioServiceHandler) DeleteDividend(userAccountID uuid.UUID, dividendID uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return err
	}

	existing, err := h.DividendRepository.Get(dividendID)
	if err != nil {
		return err
	}
	if existing.UserAccountID != userAccountID {
		return fmt.Errorf("dividend %s does not belong to user", dividendID)
	}

	if err := h.DividendRepository.Delete(nil, dividendID); err != nil {
		return err
	}

	h.commit(userAccountID, snapshot, domain.DividendRemoved{ID: dividendID})
	return nil
}

func (h *portfolioServiceHandler) GetPortfolio(userAccountID uuid.UUID) (*PortfolioView, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return nil, err
	}
	result := h.reconstruct(userAccountID, snapshot)

	view := &PortfolioView{
		Assets:           []AssetView{},
		DividendEligible: []string{},
		Groups:           calculator.GroupByCategory(result.Assets),
		TotalInvested:    calculator.InvestedCapital(result.Assets),
		TotalIncome:      calculator.IncomeReceived(snapshot.Dividends),
		TotalEquity:      calculator.CurrentEquity(result.Assets, snapshot.Dividends),
		Warnings:         result.Warnings,
	}
	for _, asset := range result.Assets {
		view.Assets = append(view.Assets, AssetView{
			Asset:          asset,
			IncomeReceived: calculator.IncomeReceived(snapshot.Dividends, asset.Ticker),
			Equity:         calculator.AssetEquity(asset, snapshot.Dividends),
			ReferencePrice: calculator.ReferencePrice(asset),
		})
	}
	for _, asset := range calculator.DividendEligible(result.Assets) {
		view.DividendEligible = append(view.DividendEligible, asset.Ticker)
	}

	return view, nil
}

func (h *portfolioServiceHandler) GetAssetDetail(userAccountID uuid.UUID, ticker string) (*AssetDetail, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("ticker must not be empty")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return nil, err
	}
	result := h.reconstruct(userAccountID, snapshot)

	detail := &AssetDetail{
		Transactions:   []domain.Transaction{},
		Dividends:      []domain.Dividend{},
		IncomeReceived: calculator.IncomeReceived(snapshot.Dividends, ticker),
	}
	for _, tx := range snapshot.Transactions {
		if strings.ToUpper(tx.Ticker) == ticker {
			detail.Transactions = append(detail.Transactions, tx)
		}
	}
	for _, d := range snapshot.Dividends {
		if strings.ToUpper(d.Ticker) == ticker {
			detail.Dividends = append(detail.Dividends, d)
		}
	}
	for _, asset := range result.Assets {
		if asset.Ticker == ticker {
			detail.Asset = &AssetView{
				Asset:          asset,
				IncomeReceived: detail.IncomeReceived,
				Equity:         calculator.AssetEquity(asset, snapshot.Dividends),
				ReferencePrice: calculator.ReferencePrice(asset),
			}
			break
		}
	}

	if detail.Asset == nil && len(detail.Transactions) == 0 && len(detail.Dividends) == 0 {
		return nil, fmt.Errorf("no records for ticker %s", ticker)
	}

	return detail, nil
}

func (h *portfolioServiceHandler) GetHistory(userAccountID uuid.UUID, search string) (*History, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return nil, err
	}

	search = strings.ToUpper(strings.TrimSpace(search))
	history := &History{
		Transactions: []domain.Transaction{},
		Dividends:    []domain.Dividend{},
	}
	for _, tx := range snapshot.Transactions {
		if search == "" || strings.Contains(strings.ToUpper(tx.Ticker), search) {
			history.Transactions = append(history.Transactions, tx)
		}
	}
	for _, d := range snapshot.Dividends {
		if search == "" || strings.Contains(strings.ToUpper(d.Ticker), search) {
			history.Dividends = append(history.Dividends, d)
		}
	}

	// snapshot order is load order, with mutations appended; the view wants
	// newest first regardless of when a record was added
	sort.SliceStable(history.Transactions, func(i, j int) bool {
		return history.Transactions[i].Date.After(history.Transactions[j].Date)
	})
	sort.SliceStable(history.Dividends, func(i, j int) bool {
		return history.Dividends[i].Date.After(history.Dividends[j].Date)
	})

	return history, nil
}

func (h *portfolioServiceHandler) GetIncomeSummary(userAccountID uuid.UUID) (*calculator.IncomeSummary, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot, err := h.loadSnapshot(userAccountID)
	if err != nil {
		return nil, err
	}

	return calculator.SummarizeIncome(snapshot.Dividends)
}
