package billing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// PDFUseCase renders a committed bill snapshot to a PDF on disk and keeps a
// backup copy. Rendering is layered on top of a committed read: a failure here
// never touches bill state.
type PDFUseCase struct {
	bills     *BillUseCase
	generator BillPDFGenerator
	company   CompanyInfo
	outputDir string
	backupDir string
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(bills *BillUseCase, generator BillPDFGenerator, company CompanyInfo, outputDir, backupDir string) *PDFUseCase {
	return &PDFUseCase{
		bills:     bills,
		generator: generator,
		company:   company,
		outputDir: outputDir,
		backupDir: backupDir,
	}
}

// GenerateBillPDF snapshots the bill, renders it, writes bill_<id>.pdf to the
// output directory and copies it into the backup directory. Returns the
// absolute path of the primary file.
//
// Returns:
//   - (path, nil)            on success.
//   - domain.ErrNotFound     when the bill is absent or not owned by ownerID.
func (uc *PDFUseCase) GenerateBillPDF(ctx context.Context, ownerID, billID string) (string, error) {
	snap, err := uc.bills.Snapshot(ownerID, billID)
	if err != nil {
		return "", err
	}

	pdfBytes, err := uc.generator.GenerateBillPDF(ctx, snap, uc.company)
	if err != nil {
		return "", fmt.Errorf("pdf: render failed: %w", err)
	}

	filename := fmt.Sprintf("bill_%s.pdf", snap.BillID)
	if err := os.MkdirAll(uc.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create output dir %s: %w", uc.outputDir, err)
	}
	path := filepath.Join(uc.outputDir, filename)
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", path, err)
	}

	// Auto-backup: best effort second copy; the primary write already succeeded.
	if uc.backupDir != "" {
		if err := os.MkdirAll(uc.backupDir, 0o755); err == nil {
			backupPath := filepath.Join(uc.backupDir, filename)
			if err := os.WriteFile(backupPath, pdfBytes, 0o644); err != nil {
				return "", fmt.Errorf("pdf: backup copy %s: %w", backupPath, err)
			}
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
