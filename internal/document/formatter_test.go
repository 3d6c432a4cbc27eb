package document

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name    string
		company string
		title   string
		want    string
	}{
		{"plain", "Acme", "Engineer", "cover_letter_Acme_Engineer.pdf"},
		{"spaces stripped", "Acme Corp", "Senior Engineer", "cover_letter_AcmeCorp_SeniorEngineer.pdf"},
		{"punctuation stripped", "O'Neill & Sons, Inc.", "C++ Dev (Sr.)", "cover_letter_ONeillSonsInc_CDevSr.pdf"},
		{"digits stripped", "42 Labs", "Engineer II (L4)", "cover_letter_Labs_EngineerIIL.pdf"},
		{"everything stripped", "株式会社", "123", "cover_letter__.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.company, tt.title); got != tt.want {
				t.Errorf("FileName(%q, %q) = %q, want %q", tt.company, tt.title, got, tt.want)
			}
		})
	}
}

func TestFitFontSize(t *testing.T) {
	t.Run("short letter keeps baseline", func(t *testing.T) {
		size, lh := fitFontSize(10)
		if size != baseFontSize || lh != baseLineHeight {
			t.Errorf("got size=%v lh=%v, want baseline %v/%v", size, lh, baseFontSize, baseLineHeight)
		}
	})

	t.Run("long letter shrinks strictly below baseline", func(t *testing.T) {
		size, lh := fitFontSize(40)
		if size >= baseFontSize {
			t.Errorf("size %v should be strictly below baseline", size)
		}
		if lh != size*0.8 {
			t.Errorf("line height %v should be 0.8 x size %v", lh, size)
		}
		if float64(40)*lh > usablePage && size > minFontSize {
			t.Errorf("loop stopped early: 40 lines at lh=%v still overflow", lh)
		}
	})

	t.Run("absurd letter bottoms out at floor", func(t *testing.T) {
		size, _ := fitFontSize(100000)
		if size != minFontSize {
			t.Errorf("size %v should hit the %vpt floor", size, minFontSize)
		}
	})
}

func TestToLatin1(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii untouched", "Dear hiring team,", "Dear hiring team,"},
		{"latin1 accents kept", "café naïve", "café naïve"},
		{"smart quotes dropped", "I’m excited", "Im excited"},
		{"emoji dropped", "Go 🚀 fast", "Go  fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toLatin1(tt.input); got != tt.want {
				t.Errorf("toLatin1(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSaveWritesPrimaryAndBackup(t *testing.T) {
	out := t.TempDir()
	backup := t.TempDir()
	f := NewFormatter(filepath.Join(out, "letters"), backup, quietLogger())

	path, err := f.Save("Acme Corp", "Senior Engineer", "Dear team,\n\nI am writing to apply.\n\nRegards")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if filepath.Base(path) != "cover_letter_AcmeCorp_SeniorEngineer.pdf" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}
	for _, p := range []string{path, filepath.Join(backup, filepath.Base(path))} {
		fi, err := os.Stat(p)
		if err != nil {
			t.Fatalf("expected output at %s: %v", p, err)
		}
		if fi.Size() == 0 {
			t.Errorf("empty pdf at %s", p)
		}
	}
}

func TestSaveBackupFailureIsNonFatal(t *testing.T) {
	out := t.TempDir()
	f := NewFormatter(out, filepath.Join(out, "missing", "backup", "dir"), quietLogger())

	path, err := f.Save("Acme", "Engineer", strings.Repeat("line\n", 50))
	if err != nil {
		t.Fatalf("backup failure should not fail the save: %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("primary write missing: %v", statErr)
	}
}

func TestSaveWithoutBackupDir(t *testing.T) {
	f := NewFormatter(t.TempDir(), "", quietLogger())
	if _, err := f.Save("Acme", "Engineer", "short letter"); err != nil {
		t.Fatalf("Save without backup dir: %v", err)
	}
}
