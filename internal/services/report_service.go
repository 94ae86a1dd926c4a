package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/repositories"
	"unitsync-backend/internal/timeutil"
)

// ReportService renders payment receipts and monthly ledger statements
// as PDFs.
type ReportService struct {
	store repositories.Store
}

func NewReportService(store repositories.Store) *ReportService {
	return &ReportService{store: store}
}

// PaymentReceipt renders a receipt PDF for one payment
func (s *ReportService) PaymentReceipt(ctx context.Context, paymentID int) ([]byte, error) {
	payment, err := s.store.Payments().Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.NotFound("payment_not_found", "payment not found")
	}

	ledger, err := s.store.Ledgers().Get(ctx, payment.LedgerID)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, apperrors.NotFound("ledger_not_found", "ledger entry not found")
	}

	tenant, err := s.store.Tenants().Get(ctx, payment.TenantID)
	if err != nil {
		return nil, err
	}
	property, err := s.store.Properties().Get(ctx, ledger.PropertyID)
	if err != nil {
		return nil, err
	}
	unit, err := s.store.Units().Get(ctx, ledger.UnitID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Rent Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Rent Payment Receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 5, fmt.Sprintf("Receipt #%d  -  generated %s", payment.ID, timeutil.Now().Format(timeutil.DisplayLayout)))
	pdf.Ln(10)
	pdf.SetTextColor(0, 0, 0)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(40, 7, label)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 7, value)
		pdf.Ln(7)
	}

	if tenant != nil {
		row("Tenant", tenant.FullName)
		row("Phone", tenant.Phone)
	}
	if property != nil {
		row("Property", property.Name)
	}
	if unit != nil {
		row("Unit", unit.UnitNumber)
	}
	row("Month", payment.Month)
	row("Paid on", payment.PaidDate)
	row("Method", strings.ToUpper(payment.Method))
	if payment.ReferenceNumber != "" {
		row("Reference", payment.ReferenceNumber)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(40, 9, "Amount")
	pdf.Cell(0, 9, fmt.Sprintf("KES %.2f", payment.Amount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, fmt.Sprintf("Balance for %s after this payment: KES %.2f of KES %.2f outstanding.",
		ledger.Month, ledger.AmountDue-ledger.AmountPaid, ledger.AmountDue), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// MonthlyStatement renders a landlord's ledger for one month as a table
func (s *ReportService) MonthlyStatement(ctx context.Context, landlordID int, month string) ([]byte, error) {
	if !ValidMonth(month) {
		return nil, apperrors.Validation("invalid_month", "month must be in YYYY-MM format")
	}

	entries, err := s.store.Ledgers().ListByLandlordMonth(ctx, landlordID, month)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Monthly Rent Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 15)
	pdf.Cell(0, 10, fmt.Sprintf("Rent Statement - %s", month))
	pdf.Ln(12)

	header := []string{"Tenant", "Property", "Unit", "Due", "Paid", "Status"}
	widths := []float64{50, 45, 20, 25, 25, 25}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	var totalDue, totalPaid float64
	for _, e := range entries {
		pdf.CellFormat(widths[0], 6, e.TenantName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, e.PropertyName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, e.UnitNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.2f", e.AmountDue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.2f", e.AmountPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, e.Status, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
		totalDue += e.AmountDue
		totalPaid += e.AmountPaid
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.2f", totalDue), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", totalPaid), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 7, "", "1", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	return buf.Bytes(), nil
}
