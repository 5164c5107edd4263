package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"regexp"
	"strings"
	"time"

	"parlad-backend/internal/archive"
	"parlad-backend/internal/metrics"
	"parlad-backend/internal/models"
	"parlad-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// Report formats
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// Report is an exported transaction listing ready to send to the client
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService renders a ledger's transactions as a downloadable file
type ReportService struct {
	Ledger   *LedgerService
	Archiver archive.Uploader
}

func NewReportService(ledger *LedgerService, archiver archive.Uploader) *ReportService {
	return &ReportService{Ledger: ledger, Archiver: archiver}
}

type reportData struct {
	Ledger      *models.Ledger
	Page        *models.TransactionPage
	GeneratedAt string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Ledger.Name}} - Transactions</title>
<style>
  body { font-family: sans-serif; margin: 2em; }
  h1 { margin-bottom: 0; }
  .meta { color: #666; margin-bottom: 1.5em; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; }
  th { background: #eee; }
  td.amount { text-align: right; }
  tfoot td { font-weight: bold; background: #f5f5f5; }
</style>
</head>
<body>
<h1>{{.Ledger.Name}}</h1>
<p class="meta">{{.Ledger.Description}}<br>Generated {{.GeneratedAt}}</p>
<table>
<thead>
<tr><th>Date</th><th>Particulars</th><th>Category</th><th>Debit</th><th>Credit</th></tr>
</thead>
<tbody>
{{range .Page.Transactions}}<tr>
<td>{{.Date}}</td>
<td>{{.Particulars}}</td>
<td>{{.Category}}</td>
<td class="amount">रु {{printf "%.2f" .Debit}}</td>
<td class="amount">रु {{printf "%.2f" .Credit}}</td>
</tr>
{{end}}</tbody>
<tfoot>
<tr><td colspan="3">Total</td>
<td class="amount">रु {{printf "%.2f" .Page.Summary.TotalDebit}}</td>
<td class="amount">रु {{printf "%.2f" .Page.Summary.TotalCredit}}</td></tr>
<tr><td colspan="3">Balance</td>
<td class="amount" colspan="2">रु {{printf "%.2f" .Page.Summary.Balance}}</td></tr>
</tfoot>
</table>
</body>
</html>
`))

// Export renders the ledger's filtered transactions in the requested
// format and, when archiving is configured, stores a copy.
func (s *ReportService) Export(ctx context.Context, userID, ledgerID int, filter models.TransactionFilter, format string) (*Report, error) {
	ledger, err := s.Ledger.GetLedger(ctx, userID, ledgerID)
	if err != nil {
		return nil, err
	}
	page, err := s.Ledger.ListTransactions(ctx, userID, ledgerID, filter)
	if err != nil {
		return nil, err
	}

	var report *Report
	label := format
	switch format {
	case FormatPDF:
		report, err = s.renderPDF(ledger, page)
	case FormatHTML, "":
		label = FormatHTML
		report, err = s.renderHTML(ledger, page)
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return nil, err
	}

	metrics.LedgerReportsGenerated.WithLabelValues(label).Inc()
	s.archiveAsync(report)
	return report, nil
}

func (s *ReportService) renderHTML(ledger *models.Ledger, page *models.TransactionPage) (*Report, error) {
	var buf bytes.Buffer
	data := reportData{
		Ledger:      ledger,
		Page:        page,
		GeneratedAt: timeutil.Now().Format("02 Jan 2006 15:04"),
	}
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("report template: %w", err)
	}
	return &Report{
		Filename:    reportFilename(ledger.Name, "html"),
		ContentType: "text/html",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportService) renderPDF(ledger *models.Ledger, page *models.TransactionPage) (*Report, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, ledger.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(28, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(74, 7, "Particulars", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Category", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Debit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Credit", "1", 1, "C", true, 0, "")

	// Rows. The core PDF fonts have no Devanagari, so amounts carry
	// the "Rs." prefix here instead of the rupee sign the HTML uses.
	pdf.SetFont("Arial", "", 10)
	for _, t := range page.Transactions {
		particulars := truncateRunes(t.Particulars, 40)
		pdf.CellFormat(28, 6, t.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(74, 6, particulars, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 6, t.Category, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", t.Debit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", t.Credit), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Summary
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(63, 8, fmt.Sprintf("Total Debit: Rs. %.2f", page.Summary.TotalDebit), "1", 0, "C", true, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Total Credit: Rs. %.2f", page.Summary.TotalCredit), "1", 0, "C", true, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Balance: Rs. %.2f", page.Summary.Balance), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return &Report{
		Filename:    reportFilename(ledger.Name, "pdf"),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

// archiveAsync uploads a copy in the background; export never fails
// because archiving did.
func (s *ReportService) archiveAsync(report *Report) {
	if s.Archiver == nil {
		return
	}
	data := report.Data
	key := fmt.Sprintf("reports/%s/%s", timeutil.Now().Format("2006/01"), report.Filename)
	contentType := report.ContentType
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Archiver.Upload(ctx, key, contentType, data); err != nil {
			log.Printf("[Archive] %v", err)
		}
	}()
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// truncateRunes caps s at max runes, ending in "..." when cut. Rune
// counting keeps multi-byte text from being split mid-sequence.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// reportFilename builds {ledgerName}_transactions.{ext} with the name
// reduced to filesystem-safe characters
func reportFilename(ledgerName, ext string) string {
	name := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(ledgerName), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "ledger"
	}
	return fmt.Sprintf("%s_transactions.%s", name, ext)
}
