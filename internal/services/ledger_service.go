package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"parlad-backend/internal/cache"
	"parlad-backend/internal/metrics"
	"parlad-backend/internal/models"
	"parlad-backend/internal/validate"
)

// ConfirmationLiteral is the exact word a client must type before a
// destructive ledger operation goes through.
const ConfirmationLiteral = "confirm"

// ErrIncorrectConfirmation is returned when the typed confirmation does
// not match. The message is what the boutique client displays verbatim.
var ErrIncorrectConfirmation = errors.New("Incorrect password")

// ErrNotFound covers lookups for rows the caller cannot see, whether
// they are missing or owned by someone else.
var ErrNotFound = errors.New("not found")

// LedgerStore is the persistence surface the service needs for ledgers
type LedgerStore interface {
	Create(ctx context.Context, l *models.Ledger) error
	Get(ctx context.Context, id int) (*models.Ledger, error)
	ListByOwner(ctx context.Context, userID int) ([]models.Ledger, error)
	Update(ctx context.Context, id int, req *models.UpdateLedgerRequest) (*models.Ledger, error)
	Delete(ctx context.Context, id int) error
}

// TransactionStore is the persistence surface for ledger transactions
type TransactionStore interface {
	Create(ctx context.Context, t *models.Transaction) error
	Get(ctx context.Context, id int) (*models.Transaction, error)
	ListByLedger(ctx context.Context, ledgerID int) ([]models.Transaction, error)
	Delete(ctx context.Context, id int) error
}

type LedgerService struct {
	Ledgers      LedgerStore
	Transactions TransactionStore
}

func NewLedgerService(ledgers LedgerStore, transactions TransactionStore) *LedgerService {
	return &LedgerService{Ledgers: ledgers, Transactions: transactions}
}

// CreateLedger opens a new transaction book for the user
func (s *LedgerService) CreateLedger(ctx context.Context, userID int, req *models.CreateLedgerRequest) (*models.Ledger, error) {
	if err := validate.Required("name", req.Name); err != nil {
		return nil, err
	}

	ledger := &models.Ledger{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if err := s.Ledgers.Create(ctx, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// GetLedger returns a ledger the user owns
func (s *LedgerService) GetLedger(ctx context.Context, userID, id int) (*models.Ledger, error) {
	ledger, err := s.Ledgers.Get(ctx, id)
	if err != nil || ledger.CreatedBy != userID {
		return nil, ErrNotFound
	}
	return ledger, nil
}

// ListLedgers returns the user's ledgers, newest first
func (s *LedgerService) ListLedgers(ctx context.Context, userID int) ([]models.Ledger, error) {
	ledgers, err := s.Ledgers.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortLedgersByCreatedDesc(ledgers)
	return ledgers, nil
}

// sortLedgersByCreatedDesc orders ledgers newest created first. The
// stable sort keeps fetch order as the tiebreak for equal timestamps.
func sortLedgersByCreatedDesc(ledgers []models.Ledger) {
	sort.SliceStable(ledgers, func(i, j int) bool {
		return ledgers[i].CreatedAt.After(ledgers[j].CreatedAt)
	})
}

// UpdateLedger merges the provided fields into a ledger the user owns
func (s *LedgerService) UpdateLedger(ctx context.Context, userID, id int, req *models.UpdateLedgerRequest) (*models.Ledger, error) {
	if _, err := s.GetLedger(ctx, userID, id); err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := validate.Required("name", *req.Name); err != nil {
			return nil, err
		}
	}
	return s.Ledgers.Update(ctx, id, req)
}

// DeleteLedger removes a ledger and its transactions. The caller must
// have typed the confirmation literal; nothing is touched otherwise.
func (s *LedgerService) DeleteLedger(ctx context.Context, userID, id int, confirmation string) error {
	if confirmation != ConfirmationLiteral {
		return ErrIncorrectConfirmation
	}
	if _, err := s.GetLedger(ctx, userID, id); err != nil {
		return err
	}
	if err := s.Ledgers.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateSummary(ctx, id)
	return nil
}

// AddTransaction records a debit/credit row in a ledger the user owns
func (s *LedgerService) AddTransaction(ctx context.Context, userID, ledgerID int, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if _, err := s.GetLedger(ctx, userID, ledgerID); err != nil {
		return nil, err
	}
	if err := validate.Date(req.Date); err != nil {
		return nil, err
	}
	if err := validate.Required("particulars", req.Particulars); err != nil {
		return nil, err
	}
	if err := validate.Amount("debit", req.Debit); err != nil {
		return nil, err
	}
	if err := validate.Amount("credit", req.Credit); err != nil {
		return nil, err
	}
	if req.Debit <= 0 && req.Credit <= 0 {
		return nil, errors.New("transaction needs a positive debit or credit amount")
	}
	if !models.IsValidCategory(req.Category) {
		return nil, errors.New("invalid category")
	}

	txn := &models.Transaction{
		LedgerID:    ledgerID,
		Date:        req.Date,
		Particulars: req.Particulars,
		Debit:       req.Debit,
		Credit:      req.Credit,
		Category:    req.Category,
		CreatedBy:   userID,
	}
	if err := s.Transactions.Create(ctx, txn); err != nil {
		return nil, err
	}

	metrics.TransactionsCreated.Inc()
	cache.InvalidateSummary(ctx, ledgerID)
	return txn, nil
}

// ListTransactions returns a ledger's transactions matching the filter,
// newest date first, together with their summary figures.
func (s *LedgerService) ListTransactions(ctx context.Context, userID, ledgerID int, filter models.TransactionFilter) (*models.TransactionPage, error) {
	if _, err := s.GetLedger(ctx, userID, ledgerID); err != nil {
		return nil, err
	}
	txns, err := s.Transactions.ListByLedger(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	filtered := FilterTransactions(txns, filter)
	SortTransactionsByDateDesc(filtered)

	return &models.TransactionPage{
		Transactions: filtered,
		Summary:      Summarize(filtered),
	}, nil
}

// GetSummary returns the unfiltered aggregate for a ledger, cached for
// a few minutes between transaction writes.
func (s *LedgerService) GetSummary(ctx context.Context, userID, ledgerID int) (*models.TransactionSummary, error) {
	if _, err := s.GetLedger(ctx, userID, ledgerID); err != nil {
		return nil, err
	}

	if data, ok := cache.GetCachedSummary(ctx, ledgerID); ok {
		var summary models.TransactionSummary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
	}

	txns, err := s.Transactions.ListByLedger(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(txns)

	if data, err := json.Marshal(summary); err == nil {
		cache.CacheSummary(ctx, ledgerID, data)
	}
	return &summary, nil
}

// DeleteTransaction removes one transaction behind the same
// confirmation gate as ledger deletion.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID, ledgerID, txnID int, confirmation string) error {
	if confirmation != ConfirmationLiteral {
		return ErrIncorrectConfirmation
	}
	if _, err := s.GetLedger(ctx, userID, ledgerID); err != nil {
		return err
	}
	txn, err := s.Transactions.Get(ctx, txnID)
	if err != nil || txn.LedgerID != ledgerID {
		return ErrNotFound
	}
	if err := s.Transactions.Delete(ctx, txnID); err != nil {
		return err
	}
	cache.InvalidateSummary(ctx, ledgerID)
	return nil
}

// FilterTransactions returns the transactions matching every active
// filter criterion. Order is preserved. The input slice is not changed.
//
// Criteria: search is a case-insensitive substring match on
// particulars; category must match exactly unless it is empty or "all";
// start/end bound the date inclusively, compared as strings since the
// dates are YYYY-MM-DD.
func FilterTransactions(txns []models.Transaction, f models.TransactionFilter) []models.Transaction {
	search := strings.ToLower(f.Search)

	out := []models.Transaction{}
	for _, t := range txns {
		if search != "" && !strings.Contains(strings.ToLower(t.Particulars), search) {
			continue
		}
		if f.Category != "" && f.Category != models.CategoryAll && t.Category != f.Category {
			continue
		}
		if f.StartDate != "" && t.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && t.Date > f.EndDate {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Summarize totals the debit and credit columns. Balance is credit
// minus debit, so a positive balance means net inflow.
func Summarize(txns []models.Transaction) models.TransactionSummary {
	var s models.TransactionSummary
	for _, t := range txns {
		s.TotalDebit += t.Debit
		s.TotalCredit += t.Credit
	}
	s.Balance = s.TotalCredit - s.TotalDebit
	return s
}

// SortTransactionsByDateDesc orders transactions newest first, in
// place. The sort is stable: rows on the same date keep their stored
// order.
func SortTransactionsByDateDesc(txns []models.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date > txns[j].Date
	})
}
