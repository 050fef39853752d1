package phonemize_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audiotools/internal/curation"
	"audiotools/internal/phonemize"
	"audiotools/internal/tabular"
)

type fakePhonemizer struct {
	failOn map[string]bool
}

func (f *fakePhonemizer) Phonemize(ctx context.Context, text, lang string) (string, error) {
	if f.failOn[text] {
		return "", errors.New("espeak boom")
	}
	return "ipa(" + text + ")", nil
}

func TestValidateLanguage(t *testing.T) {
	for _, tag := range []string{"en", "en-us", "de", "pt-BR"} {
		if err := phonemize.ValidateLanguage(tag); err != nil {
			t.Fatalf("tag %q should be valid: %v", tag, err)
		}
	}
	if err := phonemize.ValidateLanguage("not a language"); !errors.Is(err, curation.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProcessTable(t *testing.T) {
	table := tabular.New("Basename", "Text")
	table.Append("utt001.wav", "hello world")
	table.Append("utt002.wav", "broken")
	table.Append("utt003.wav", "good morning")

	out, summary, err := phonemize.ProcessTable(context.Background(), table,
		&fakePhonemizer{failOn: map[string]bool{"broken": true}},
		phonemize.Options{NameColumn: "Basename", TextColumn: "Text", Language: "en"}, nil)
	if err != nil {
		t.Fatalf("per-row failures must not abort the batch: %v", err)
	}
	if out.Len() != 3 {
		t.Fatalf("rows = %d", out.Len())
	}
	if out.Rows[0][0] != "utt001.wav" || out.Rows[0][1] != "ipa(hello world)" || out.Rows[0][2] != "en" {
		t.Fatalf("row = %v", out.Rows[0])
	}
	if out.Rows[1][1] != phonemize.SentinelFailed {
		t.Fatalf("failed row = %v", out.Rows[1])
	}
	if summary.Attempted != 3 || summary.Succeeded != 2 || summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestProcessTableMissingColumn(t *testing.T) {
	table := tabular.New("Basename")
	_, _, err := phonemize.ProcessTable(context.Background(), table, &fakePhonemizer{},
		phonemize.Options{NameColumn: "Basename", TextColumn: "Text", Language: "en"}, nil)
	if !errors.Is(err, curation.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestProcessTableBadLanguage(t *testing.T) {
	table := tabular.New("Basename", "Text")
	_, _, err := phonemize.ProcessTable(context.Background(), table, &fakePhonemizer{},
		phonemize.Options{NameColumn: "Basename", TextColumn: "Text", Language: "???"}, nil)
	if !errors.Is(err, curation.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEspeakCollapsesWhitespace(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "espeak-ng")
	script := "#!/bin/sh\nprintf 'h@l\"oU\\n  w3:ld\\n'\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := phonemize.NewEspeak(stub).Phonemize(context.Background(), "hello world", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != `h@l"oU w3:ld` {
		t.Fatalf("phonemes = %q", got)
	}
}

func TestEspeakFailureIsExternalResource(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "espeak-ng")
	script := "#!/bin/sh\necho 'voice not found' >&2\nexit 1\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := phonemize.NewEspeak(stub).Phonemize(context.Background(), "hello", "xx")
	if !errors.Is(err, curation.ErrExternalResource) {
		t.Fatalf("expected ErrExternalResource, got %v", err)
	}
	if !strings.Contains(err.Error(), "voice not found") {
		t.Fatalf("error should carry stderr, got %v", err)
	}
}
