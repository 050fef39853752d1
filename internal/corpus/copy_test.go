package corpus_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"audiotools/internal/corpus"
	"audiotools/internal/curation"
	"audiotools/internal/tabular"
)

func TestCopySelectedCopiesListedFiles(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "selected")

	a := filepath.Join(srcDir, "a.wav")
	b := filepath.Join(srcDir, "b.wav")
	writeEmpty(t, a)
	writeEmpty(t, b)

	table := tabular.New("Basename", "MOS")
	table.Append(a, "4.5")
	table.Append(b, "4.0")

	summary, err := corpus.CopySelected(table, "Basename", dstDir, nil)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if summary.Succeeded != 2 || summary.Failed != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	for _, name := range []string{"a.wav", "b.wav"} {
		if _, err := os.Stat(filepath.Join(dstDir, name)); err != nil {
			t.Fatalf("missing copied file %s: %v", name, err)
		}
	}
}

func TestCopySelectedToleratesMissingFiles(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "selected")

	present := filepath.Join(srcDir, "present.wav")
	writeEmpty(t, present)

	table := tabular.New("Basename")
	table.Append(filepath.Join(srcDir, "missing.wav"))
	table.Append(present)
	table.Append("")

	summary, err := corpus.CopySelected(table, "Basename", dstDir, nil)
	if err != nil {
		t.Fatalf("per-row failures must not abort the batch: %v", err)
	}
	if summary.Attempted != 3 || summary.Succeeded != 1 || summary.Failed != 2 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestCopySelectedMissingColumn(t *testing.T) {
	table := tabular.New("Path")
	_, err := corpus.CopySelected(table, "Basename", t.TempDir(), nil)
	if !errors.Is(err, curation.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}
