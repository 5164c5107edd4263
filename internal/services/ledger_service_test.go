package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"parlad-backend/internal/models"
)

func txn(date, particulars, category string, debit, credit float64) models.Transaction {
	return models.Transaction{
		Date:        date,
		Particulars: particulars,
		Category:    category,
		Debit:       debit,
		Credit:      credit,
	}
}

func TestFilterTransactionsSearch(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-01-05", "Office Rent", models.CategoryExpense, 500, 0),
		txn("2024-01-10", "Fabric sale", models.CategoryIncome, 0, 1200),
		txn("2024-01-12", "rental deposit", models.CategoryBusiness, 300, 0),
	}

	got := FilterTransactions(txns, models.TransactionFilter{Search: "RENT"})
	if len(got) != 2 {
		t.Fatalf("search RENT matched %d transactions, want 2", len(got))
	}
	if got[0].Particulars != "Office Rent" || got[1].Particulars != "rental deposit" {
		t.Errorf("wrong rows matched: %v", got)
	}
}

func TestFilterTransactionsCategory(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-01-05", "Rent", models.CategoryExpense, 500, 0),
		txn("2024-01-10", "Sale", models.CategoryIncome, 0, 1200),
	}

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"exact match", models.CategoryIncome, 1},
		{"all matches everything", models.CategoryAll, 2},
		{"empty matches everything", "", 2},
		{"no match", models.CategoryPersonal, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTransactions(txns, models.TransactionFilter{Category: tt.category})
			if len(got) != tt.want {
				t.Errorf("category %q matched %d, want %d", tt.category, len(got), tt.want)
			}
		})
	}
}

func TestFilterTransactionsDateRange(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-01-05", "a", models.CategoryExpense, 1, 0),
		txn("2024-01-10", "b", models.CategoryExpense, 1, 0),
		txn("2024-02-01", "c", models.CategoryExpense, 1, 0),
	}

	got := FilterTransactions(txns, models.TransactionFilter{
		StartDate: "2024-01-05",
		EndDate:   "2024-01-10",
	})
	if len(got) != 2 {
		t.Fatalf("range matched %d, want 2 (bounds are inclusive)", len(got))
	}
	if got[0].Particulars != "a" || got[1].Particulars != "b" {
		t.Errorf("wrong rows in range: %v", got)
	}

	// Open-ended bounds
	if got := FilterTransactions(txns, models.TransactionFilter{StartDate: "2024-01-10"}); len(got) != 2 {
		t.Errorf("open end matched %d, want 2", len(got))
	}
	if got := FilterTransactions(txns, models.TransactionFilter{EndDate: "2024-01-10"}); len(got) != 2 {
		t.Errorf("open start matched %d, want 2", len(got))
	}
}

func TestFilterTransactionsCombined(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-01-05", "Rent january", models.CategoryExpense, 500, 0),
		txn("2024-02-05", "Rent february", models.CategoryExpense, 500, 0),
		txn("2024-01-06", "Rent advance", models.CategoryBusiness, 200, 0),
	}

	got := FilterTransactions(txns, models.TransactionFilter{
		Search:    "rent",
		Category:  models.CategoryExpense,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	if len(got) != 1 || got[0].Particulars != "Rent january" {
		t.Errorf("combined filter got %v, want just Rent january", got)
	}
}

func TestFilterTransactionsEmptyFilterReturnsAll(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-01-05", "a", models.CategoryExpense, 1, 0),
		txn("2024-01-10", "b", models.CategoryIncome, 0, 2),
	}

	got := FilterTransactions(txns, models.TransactionFilter{})
	if !reflect.DeepEqual(got, txns) {
		t.Errorf("empty filter changed the result: %v", got)
	}
}

func TestFilterTransactionsIdempotent(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-01-05", "Rent", models.CategoryExpense, 500, 0),
		txn("2024-01-10", "Sale", models.CategoryIncome, 0, 1200),
		txn("2024-01-11", "Rent refund", models.CategoryExpense, 0, 100),
	}
	filter := models.TransactionFilter{Search: "rent", Category: models.CategoryExpense}

	once := FilterTransactions(txns, filter)
	twice := FilterTransactions(once, filter)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering twice gave a different result:\nonce  %v\ntwice %v", once, twice)
	}
}

func TestSummarize(t *testing.T) {
	// The shop example: rent paid out, one sale in
	txns := []models.Transaction{
		txn("2024-01-05", "Rent", models.CategoryExpense, 500, 0),
		txn("2024-01-10", "Sale", models.CategoryIncome, 0, 1200),
	}

	s := Summarize(txns)
	if s.TotalDebit != 500 {
		t.Errorf("TotalDebit = %v, want 500", s.TotalDebit)
	}
	if s.TotalCredit != 1200 {
		t.Errorf("TotalCredit = %v, want 1200", s.TotalCredit)
	}
	if s.Balance != 700 {
		t.Errorf("Balance = %v, want 700", s.Balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalDebit != 0 || s.TotalCredit != 0 || s.Balance != 0 {
		t.Errorf("empty summary not zero: %+v", s)
	}
}

func TestSortTransactionsByDateDescStable(t *testing.T) {
	txns := []models.Transaction{
		{ID: 1, Date: "2024-01-05"},
		{ID: 2, Date: "2024-01-10"},
		{ID: 3, Date: "2024-01-05"},
		{ID: 4, Date: "2024-01-10"},
	}

	SortTransactionsByDateDesc(txns)

	wantIDs := []int{2, 4, 1, 3}
	for i, want := range wantIDs {
		if txns[i].ID != want {
			t.Fatalf("position %d has ID %d, want %d (order %v)", i, txns[i].ID, want, txns)
		}
	}
}

// fakeLedgerStore and fakeTransactionStore record calls so tests can
// assert nothing was deleted when the confirmation gate rejects.

type fakeLedgerStore struct {
	ledgers     map[int]*models.Ledger
	deleteCalls int
}

func (f *fakeLedgerStore) Create(_ context.Context, l *models.Ledger) error {
	if f.ledgers == nil {
		f.ledgers = map[int]*models.Ledger{}
	}
	l.ID = len(f.ledgers) + 1
	f.ledgers[l.ID] = l
	return nil
}

func (f *fakeLedgerStore) Get(_ context.Context, id int) (*models.Ledger, error) {
	l, ok := f.ledgers[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return l, nil
}

func (f *fakeLedgerStore) ListByOwner(_ context.Context, userID int) ([]models.Ledger, error) {
	var out []models.Ledger
	for _, l := range f.ledgers {
		if l.CreatedBy == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLedgerStore) Update(_ context.Context, id int, req *models.UpdateLedgerRequest) (*models.Ledger, error) {
	l := f.ledgers[id]
	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	return l, nil
}

func (f *fakeLedgerStore) Delete(_ context.Context, id int) error {
	f.deleteCalls++
	delete(f.ledgers, id)
	return nil
}

type fakeTransactionStore struct {
	txns        map[int]*models.Transaction
	deleteCalls int
}

func (f *fakeTransactionStore) Create(_ context.Context, t *models.Transaction) error {
	if f.txns == nil {
		f.txns = map[int]*models.Transaction{}
	}
	t.ID = len(f.txns) + 1
	f.txns[t.ID] = t
	return nil
}

func (f *fakeTransactionStore) Get(_ context.Context, id int) (*models.Transaction, error) {
	t, ok := f.txns[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return t, nil
}

func (f *fakeTransactionStore) ListByLedger(_ context.Context, ledgerID int) ([]models.Transaction, error) {
	var out []models.Transaction
	for id := 1; id <= len(f.txns); id++ {
		if t, ok := f.txns[id]; ok && t.LedgerID == ledgerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTransactionStore) Delete(_ context.Context, id int) error {
	f.deleteCalls++
	delete(f.txns, id)
	return nil
}

func newTestLedgerService(t *testing.T) (*LedgerService, *fakeLedgerStore, *fakeTransactionStore, int) {
	t.Helper()
	ledgers := &fakeLedgerStore{}
	txns := &fakeTransactionStore{}
	svc := NewLedgerService(ledgers, txns)

	ledger, err := svc.CreateLedger(context.Background(), 7, &models.CreateLedgerRequest{Name: "Shop"})
	if err != nil {
		t.Fatalf("CreateLedger: %v", err)
	}
	return svc, ledgers, txns, ledger.ID
}

func TestDeleteLedgerRequiresConfirmation(t *testing.T) {
	svc, ledgers, _, ledgerID := newTestLedgerService(t)

	err := svc.DeleteLedger(context.Background(), 7, ledgerID, "Confirm")
	if !errors.Is(err, ErrIncorrectConfirmation) {
		t.Fatalf("DeleteLedger with wrong confirmation: %v, want ErrIncorrectConfirmation", err)
	}
	if err.Error() != "Incorrect password" {
		t.Errorf("error message %q, want %q", err.Error(), "Incorrect password")
	}
	if ledgers.deleteCalls != 0 {
		t.Errorf("store Delete was called %d times before confirmation matched", ledgers.deleteCalls)
	}

	if err := svc.DeleteLedger(context.Background(), 7, ledgerID, ConfirmationLiteral); err != nil {
		t.Fatalf("DeleteLedger with correct confirmation: %v", err)
	}
	if ledgers.deleteCalls != 1 {
		t.Errorf("store Delete called %d times, want 1", ledgers.deleteCalls)
	}
}

func TestDeleteTransactionRequiresConfirmation(t *testing.T) {
	svc, _, txnStore, ledgerID := newTestLedgerService(t)

	created, err := svc.AddTransaction(context.Background(), 7, ledgerID, &models.CreateTransactionRequest{
		Date:        "2024-01-05",
		Particulars: "Rent",
		Debit:       500,
		Category:    models.CategoryExpense,
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	err = svc.DeleteTransaction(context.Background(), 7, ledgerID, created.ID, "")
	if !errors.Is(err, ErrIncorrectConfirmation) {
		t.Fatalf("empty confirmation: %v, want ErrIncorrectConfirmation", err)
	}
	if txnStore.deleteCalls != 0 {
		t.Errorf("transaction deleted despite failed confirmation")
	}

	if err := svc.DeleteTransaction(context.Background(), 7, ledgerID, created.ID, ConfirmationLiteral); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
}

func TestListTransactionsFiltersAndSorts(t *testing.T) {
	svc, _, _, ledgerID := newTestLedgerService(t)
	ctx := context.Background()

	seed := []models.CreateTransactionRequest{
		{Date: "2024-01-05", Particulars: "Rent", Debit: 500, Category: models.CategoryExpense},
		{Date: "2024-01-10", Particulars: "Sale", Credit: 1200, Category: models.CategoryIncome},
		{Date: "2024-01-10", Particulars: "Second sale", Credit: 300, Category: models.CategoryIncome},
	}
	for i := range seed {
		if _, err := svc.AddTransaction(ctx, 7, ledgerID, &seed[i]); err != nil {
			t.Fatalf("AddTransaction %d: %v", i, err)
		}
	}

	page, err := svc.ListTransactions(ctx, 7, ledgerID, models.TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}

	if len(page.Transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(page.Transactions))
	}
	// Newest first; same-date rows keep insertion order
	if page.Transactions[0].Particulars != "Sale" ||
		page.Transactions[1].Particulars != "Second sale" ||
		page.Transactions[2].Particulars != "Rent" {
		t.Errorf("wrong order: %v", page.Transactions)
	}
	if page.Summary.Balance != 1000 {
		t.Errorf("Balance = %v, want 1000", page.Summary.Balance)
	}

	// Summary reflects only what the filter kept
	page, err = svc.ListTransactions(ctx, 7, ledgerID, models.TransactionFilter{Category: models.CategoryExpense})
	if err != nil {
		t.Fatalf("ListTransactions filtered: %v", err)
	}
	if page.Summary.TotalDebit != 500 || page.Summary.TotalCredit != 0 {
		t.Errorf("filtered summary %+v, want debit 500 credit 0", page.Summary)
	}
}

func TestLedgerOwnershipEnforced(t *testing.T) {
	svc, _, _, ledgerID := newTestLedgerService(t)
	ctx := context.Background()

	if _, err := svc.GetLedger(ctx, 8, ledgerID); !errors.Is(err, ErrNotFound) {
		t.Errorf("other user's GetLedger: %v, want ErrNotFound", err)
	}
	if _, err := svc.ListTransactions(ctx, 8, ledgerID, models.TransactionFilter{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("other user's ListTransactions: %v, want ErrNotFound", err)
	}
	// Even with the right confirmation the gate does not cross owners
	if err := svc.DeleteLedger(ctx, 8, ledgerID, ConfirmationLiteral); !errors.Is(err, ErrNotFound) {
		t.Errorf("other user's DeleteLedger: %v, want ErrNotFound", err)
	}
}

func TestAddTransactionRejectsZeroAmounts(t *testing.T) {
	svc, _, txns, ledgerID := newTestLedgerService(t)

	req := &models.CreateTransactionRequest{
		Date:        "2024-01-05",
		Particulars: "Empty entry",
		Debit:       0,
		Credit:      0,
		Category:    models.CategoryExpense,
	}
	if _, err := svc.AddTransaction(context.Background(), 7, ledgerID, req); err == nil {
		t.Fatal("AddTransaction accepted a transaction with neither debit nor credit")
	}
	if len(txns.txns) != 0 {
		t.Errorf("transaction store holds %d rows after rejected create, want 0", len(txns.txns))
	}
}

func TestAddTransactionValidation(t *testing.T) {
	svc, _, _, ledgerID := newTestLedgerService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateTransactionRequest
	}{
		{"bad date", models.CreateTransactionRequest{Date: "05-01-2024", Particulars: "x", Category: models.CategoryExpense}},
		{"missing particulars", models.CreateTransactionRequest{Date: "2024-01-05", Category: models.CategoryExpense}},
		{"negative debit", models.CreateTransactionRequest{Date: "2024-01-05", Particulars: "x", Debit: -1, Category: models.CategoryExpense}},
		{"zero debit and credit", models.CreateTransactionRequest{Date: "2024-01-05", Particulars: "x", Debit: 0, Credit: 0, Category: models.CategoryExpense}},
		{"unknown category", models.CreateTransactionRequest{Date: "2024-01-05", Particulars: "x", Debit: 10, Category: "Misc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.AddTransaction(ctx, 7, ledgerID, &tt.req); err == nil {
				t.Errorf("AddTransaction accepted invalid request %+v", tt.req)
			}
		})
	}
}

func TestListLedgersNewestCreatedFirst(t *testing.T) {
	ledgers := &fakeLedgerStore{ledgers: map[int]*models.Ledger{}}
	svc := NewLedgerService(ledgers, &fakeTransactionStore{})

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ledgers.ledgers[1] = &models.Ledger{ID: 1, Name: "Old", CreatedBy: 7, CreatedAt: base}
	ledgers.ledgers[2] = &models.Ledger{ID: 2, Name: "New", CreatedBy: 7, CreatedAt: base.Add(48 * time.Hour)}
	ledgers.ledgers[3] = &models.Ledger{ID: 3, Name: "Middle", CreatedBy: 7, CreatedAt: base.Add(24 * time.Hour)}

	got, err := svc.ListLedgers(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListLedgers: %v", err)
	}
	var names []string
	for _, l := range got {
		names = append(names, l.Name)
	}
	want := []string{"New", "Middle", "Old"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ledger order %v, want %v", names, want)
	}
}
