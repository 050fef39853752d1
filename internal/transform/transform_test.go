package transform_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audiotools/internal/audio"
	"audiotools/internal/curation"
	"audiotools/internal/transform"
)

// fakeCodec records calls and fails for paths listed in failOn.
type fakeCodec struct {
	calls  []string
	failOn map[string]bool
}

func (f *fakeCodec) shouldFail(src string) bool {
	return f.failOn[filepath.Base(src)]
}

func (f *fakeCodec) write(dst string) error {
	return os.WriteFile(dst, []byte("audio"), 0o644)
}

func (f *fakeCodec) DurationMs(ctx context.Context, path string) (int64, error) {
	return 2000, nil
}

func (f *fakeCodec) Normalize(ctx context.Context, src, dst string, targetLoudness float64) error {
	f.calls = append(f.calls, "normalize "+filepath.Base(src))
	if f.shouldFail(src) {
		return errors.New("normalize boom")
	}
	return f.write(dst)
}

func (f *fakeCodec) Resample(ctx context.Context, src, dst string, sampleRate int, format string) error {
	f.calls = append(f.calls, "resample "+filepath.Base(src))
	if f.shouldFail(src) {
		return errors.New("resample boom")
	}
	return f.write(dst)
}

func (f *fakeCodec) TrimSilence(ctx context.Context, src, dst string, opts audio.TrimOptions) (audio.TrimResult, error) {
	f.calls = append(f.calls, "trim "+filepath.Base(src))
	if f.shouldFail(src) {
		return audio.TrimResult{}, errors.New("trim boom")
	}
	if err := f.write(dst); err != nil {
		return audio.TrimResult{}, err
	}
	return audio.TrimResult{OriginalMs: 2000, TrimmedMs: 1500}, nil
}

func writeCorpus(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		// Fixed content so the in-place test can tell whether a file was
		// replaced by the fake codec's output.
		if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNormalizeCorpusMirrorsTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeCorpus(t, src, filepath.Join("spk1", "a.wav"), "b.wav")

	codec := &fakeCodec{}
	summary, err := transform.NormalizeCorpus(context.Background(), codec, src, dst,
		transform.Options{Extension: "wav", TargetLoudness: -23}, nil)
	if err != nil {
		t.Fatalf("normalize corpus: %v", err)
	}
	if summary.Succeeded != 2 || summary.Failed != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	for _, name := range []string{filepath.Join("spk1", "a.wav"), "b.wav"} {
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Fatalf("missing mirrored output %s: %v", name, err)
		}
	}
}

func TestResampleCorpusToleratesFailures(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeCorpus(t, src, "good.wav", "bad.wav")

	codec := &fakeCodec{failOn: map[string]bool{"bad.wav": true}}
	summary, err := transform.ResampleCorpus(context.Background(), codec, src, dst,
		transform.Options{Extension: "wav", SampleRate: 22050}, nil)
	if err != nil {
		t.Fatalf("per-file failures must not abort the batch: %v", err)
	}
	if summary.Attempted != 2 || summary.Succeeded != 1 || summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestResampleCorpusMissingRoot(t *testing.T) {
	codec := &fakeCodec{}
	_, err := transform.ResampleCorpus(context.Background(), codec,
		filepath.Join(t.TempDir(), "absent"), t.TempDir(),
		transform.Options{Extension: "wav", SampleRate: 22050}, nil)
	if !errors.Is(err, curation.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResampleCorpusInPlaceReplacesFiles(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, "a.wav", "bad.wav")

	codec := &fakeCodec{failOn: map[string]bool{"bad.wav": true}}
	summary, err := transform.ResampleCorpusInPlace(context.Background(), codec, root,
		transform.Options{Extension: "wav", SampleRate: 16000}, nil)
	if err != nil {
		t.Fatalf("resample in place: %v", err)
	}
	if summary.Succeeded != 1 || summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}

	content, err := os.ReadFile(filepath.Join(root, "a.wav"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "audio" {
		t.Fatalf("a.wav was not replaced, content %q", content)
	}
	// Failed file keeps its original bytes and leaves no temp file behind.
	content, err = os.ReadFile(filepath.Join(root, "bad.wav"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "original" {
		t.Fatalf("bad.wav was modified despite failure, content %q", content)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp") {
			t.Fatalf("leftover temp file %s", entry.Name())
		}
	}
}

func TestTrimSilenceCorpusReports(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeCorpus(t, src, "a.wav", "bad.wav")

	codec := &fakeCodec{failOn: map[string]bool{"bad.wav": true}}
	summary, reports, err := transform.TrimSilenceCorpus(context.Background(), codec, src, dst,
		transform.Options{Extension: "wav", Trim: audio.TrimOptions{ThresholdDB: -40, MinSilenceMs: 500, PaddingMs: 100}}, nil)
	if err != nil {
		t.Fatalf("trim corpus: %v", err)
	}
	if summary.Succeeded != 1 || summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(reports) != 1 {
		t.Fatalf("expected one report, got %d", len(reports))
	}
	if reports[0].Result.TrimmedMs != 1500 {
		t.Fatalf("report = %+v", reports[0])
	}

	reportPath := filepath.Join(t.TempDir(), "trim.log")
	if err := transform.WriteTrimReport(reportPath, reports); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "removed 500ms") {
		t.Fatalf("report content %q", content)
	}
}
