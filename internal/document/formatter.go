package document

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail/internal/apperr"
)

const (
	pageMargin     = 20.0
	usablePage     = 260.0 - 2*pageMargin
	baseFontSize   = 12.0
	baseLineHeight = 10.0
	minFontSize    = 1.0
)

var nonLetterRe = regexp.MustCompile(`[^a-zA-Z]`)

// Formatter renders cover letters to a paginated PDF. Every render writes a
// primary copy under OutputDir and a best-effort backup copy under
// BackupDir when one is configured.
type Formatter struct {
	OutputDir string
	BackupDir string
	Log       *logrus.Logger
}

func NewFormatter(outputDir, backupDir string, log *logrus.Logger) *Formatter {
	return &Formatter{OutputDir: outputDir, BackupDir: backupDir, Log: log}
}

// FileName builds the archive name from company and title, stripped down to
// ASCII letters.
func FileName(companyName, jobTitle string) string {
	company := nonLetterRe.ReplaceAllString(companyName, "")
	title := nonLetterRe.ReplaceAllString(jobTitle, "")
	return "cover_letter_" + company + "_" + title + ".pdf"
}

// fitFontSize shrinks the font until the estimated content height fits one
// page. The estimate counts raw lines only, not wrapped ones; that keeps it
// a single-page-fit heuristic rather than exact layout measurement.
func fitFontSize(numLines int) (fontSize, lineHeight float64) {
	fontSize = baseFontSize
	lineHeight = baseLineHeight
	for float64(numLines)*lineHeight > usablePage && fontSize > minFontSize {
		fontSize--
		lineHeight = fontSize * 0.8
	}
	return fontSize, lineHeight
}

// toLatin1 drops every rune the PDF core fonts cannot represent instead of
// failing the whole write.
func toLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 256 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Save renders the cover letter and writes it out. Only the primary write
// can fail the operation; a failed backup write is reported as a warning.
func (f *Formatter) Save(companyName, jobTitle, coverLetter string) (string, error) {
	const op = "document.Formatter.Save"

	fileName := FileName(companyName, jobTitle)

	body := toLatin1(coverLetter)
	fontSize, lineHeight := fitFontSize(len(strings.Split(body, "\n")))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetLeftMargin(pageMargin)
	pdf.SetRightMargin(pageMargin)
	pdf.AddPage()
	pdf.SetFont("Times", "", fontSize)
	pdf.MultiCell(0, lineHeight, body, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", apperr.E(apperr.CodeDocumentWrite, op, "render "+fileName, err)
	}

	if err := os.MkdirAll(f.OutputDir, 0o755); err != nil {
		return "", apperr.E(apperr.CodeDocumentWrite, op, "create output dir "+f.OutputDir, err)
	}

	primary := filepath.Join(f.OutputDir, fileName)
	if err := os.WriteFile(primary, buf.Bytes(), 0o644); err != nil {
		return "", apperr.E(apperr.CodeDocumentWrite, op, "write "+primary, err)
	}

	if f.BackupDir != "" {
		backup := filepath.Join(f.BackupDir, fileName)
		if err := os.WriteFile(backup, buf.Bytes(), 0o644); err != nil && f.Log != nil {
			f.Log.WithError(err).WithField("path", backup).Warn("backup cover letter write failed")
		}
	}

	return primary, nil
}
