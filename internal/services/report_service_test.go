package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"parlad-backend/internal/models"
)

func TestReportFilename(t *testing.T) {
	tests := []struct {
		ledgerName string
		ext        string
		want       string
	}{
		{"Shop", "html", "Shop_transactions.html"},
		{"Main Ledger 2024", "pdf", "Main_Ledger_2024_transactions.pdf"},
		{"  spaced  ", "html", "spaced_transactions.html"},
		{"///", "html", "ledger_transactions.html"},
	}

	for _, tt := range tests {
		if got := reportFilename(tt.ledgerName, tt.ext); got != tt.want {
			t.Errorf("reportFilename(%q, %q) = %q, want %q", tt.ledgerName, tt.ext, got, tt.want)
		}
	}
}

func TestExportHTML(t *testing.T) {
	ledgerSvc, _, _, ledgerID := newTestLedgerService(t)
	reportSvc := NewReportService(ledgerSvc, nil)
	ctx := context.Background()

	seed := []models.CreateTransactionRequest{
		{Date: "2024-01-05", Particulars: "Rent", Debit: 500, Category: models.CategoryExpense},
		{Date: "2024-01-10", Particulars: "Sale", Credit: 1200, Category: models.CategoryIncome},
	}
	for i := range seed {
		if _, err := ledgerSvc.AddTransaction(ctx, 7, ledgerID, &seed[i]); err != nil {
			t.Fatalf("AddTransaction: %v", err)
		}
	}

	report, err := reportSvc.Export(ctx, 7, ledgerID, models.TransactionFilter{}, FormatHTML)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if report.Filename != "Shop_transactions.html" {
		t.Errorf("filename %q, want Shop_transactions.html", report.Filename)
	}
	if report.ContentType != "text/html" {
		t.Errorf("content type %q, want text/html", report.ContentType)
	}

	html := string(report.Data)
	for _, want := range []string{"Rent", "Sale", "500.00", "1200.00", "700.00", "2024-01-05"} {
		if !strings.Contains(html, want) {
			t.Errorf("report HTML missing %q", want)
		}
	}
}

func TestExportPDF(t *testing.T) {
	ledgerSvc, _, _, ledgerID := newTestLedgerService(t)
	reportSvc := NewReportService(ledgerSvc, nil)
	ctx := context.Background()

	if _, err := ledgerSvc.AddTransaction(ctx, 7, ledgerID, &models.CreateTransactionRequest{
		Date: "2024-01-05", Particulars: "Rent", Debit: 500, Category: models.CategoryExpense,
	}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	report, err := reportSvc.Export(ctx, 7, ledgerID, models.TransactionFilter{}, FormatPDF)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if report.ContentType != "application/pdf" {
		t.Errorf("content type %q, want application/pdf", report.ContentType)
	}
	if !bytes.HasPrefix(report.Data, []byte("%PDF")) {
		t.Errorf("PDF output does not start with %%PDF header")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	ledgerSvc, _, _, ledgerID := newTestLedgerService(t)
	reportSvc := NewReportService(ledgerSvc, nil)

	if _, err := reportSvc.Export(context.Background(), 7, ledgerID, models.TransactionFilter{}, "docx"); err == nil {
		t.Error("Export accepted unknown format")
	}
}

func TestExportRespectsFilter(t *testing.T) {
	ledgerSvc, _, _, ledgerID := newTestLedgerService(t)
	reportSvc := NewReportService(ledgerSvc, nil)
	ctx := context.Background()

	seed := []models.CreateTransactionRequest{
		{Date: "2024-01-05", Particulars: "Rent", Debit: 500, Category: models.CategoryExpense},
		{Date: "2024-01-10", Particulars: "Sale", Credit: 1200, Category: models.CategoryIncome},
	}
	for i := range seed {
		if _, err := ledgerSvc.AddTransaction(ctx, 7, ledgerID, &seed[i]); err != nil {
			t.Fatalf("AddTransaction: %v", err)
		}
	}

	report, err := reportSvc.Export(ctx, 7, ledgerID, models.TransactionFilter{Category: models.CategoryIncome}, FormatHTML)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	html := string(report.Data)
	if strings.Contains(html, "Rent") {
		t.Error("filtered report still contains excluded row")
	}
	if !strings.Contains(html, "Sale") {
		t.Error("filtered report missing matching row")
	}
}

func TestTruncateRunesKeepsMultiByteTextIntact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short untouched", "Rent", 40, "Rent"},
		{"ascii cut", "abcdefghij", 8, "abcde..."},
		{"exact length untouched", "abcdefgh", 8, "abcdefgh"},
		{"devanagari cut on rune boundary", "कपडा पसल दैनिक खाता बही हिसाब", 10, "कपडा पस..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
