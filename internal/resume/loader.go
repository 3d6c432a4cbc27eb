package resume

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"

	"github.com/jobtrail/jobtrail/internal/apperr"
)

// supported resume extensions, matched case-insensitively.
var supportedExts = map[string]bool{
	".docx": true,
	".pdf":  true,
}

// LoadFromDir scans dir for resume files and returns the plain text of the
// first supported one in lexical order. Picking the first match when several
// exist is an accepted ambiguity, not a "best resume" guarantee.
func LoadFromDir(dir string) (string, error) {
	const op = "resume.LoadFromDir"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", apperr.E(apperr.CodeResumeNotFound, op, "cannot read resume folder "+dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", apperr.E(apperr.CodeResumeNotFound, op, "no resume files found in "+dir, nil)
	}
	sort.Strings(names)

	return ReadResume(filepath.Join(dir, names[0]))
}

// ReadResume extracts plain text from a single resume file, selected by
// extension: docx paragraphs joined with newlines in document order, or the
// embedded text of a pdf in reading order.
func ReadResume(path string) (string, error) {
	const op = "resume.ReadResume"

	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return readDocx(path)
	case ".pdf":
		return readPDF(path)
	default:
		return "", apperr.E(apperr.CodeUnsupportedFormat, op, "unsupported file format "+filepath.Ext(path), nil)
	}
}

func readDocx(path string) (string, error) {
	const op = "resume.readDocx"

	f, err := os.Open(path)
	if err != nil {
		return "", apperr.E(apperr.CodeResumeNotFound, op, "open "+path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", apperr.E(apperr.CodeResumeNotFound, op, "stat "+path, err)
	}

	doc, err := docx.Parse(f, fi.Size())
	if err != nil {
		return "", apperr.E(apperr.CodeUnsupportedFormat, op, "parse "+path, err)
	}

	var lines []string
	for _, it := range doc.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			lines = append(lines, p.String())
		}
	}
	return strings.Join(lines, "\n"), nil
}

func readPDF(path string) (string, error) {
	const op = "resume.readPDF"

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", apperr.E(apperr.CodeUnsupportedFormat, op, "open "+path, err)
	}
	defer f.Close()

	rd, err := r.GetPlainText()
	if err != nil {
		return "", apperr.E(apperr.CodeUnsupportedFormat, op, "extract text from "+path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return "", apperr.E(apperr.CodeUnsupportedFormat, op, "read text from "+path, err)
	}
	return buf.String(), nil
}
