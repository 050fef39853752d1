package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audiotools/internal/config"
	"audiotools/internal/curation"
)

func TestParseProbeDurationMs(t *testing.T) {
	cases := []struct {
		name    string
		output  string
		want    int64
		wantErr bool
	}{
		{name: "fractional seconds", output: "1.234\n", want: 1234},
		{name: "integer seconds", output: "3", want: 3000},
		{name: "rounds half up", output: "0.0015", want: 2},
		{name: "zero", output: "0.0", want: 0},
		{name: "empty", output: "\n", wantErr: true},
		{name: "not available", output: "N/A\n", wantErr: true},
		{name: "garbage", output: "duration=oops", wantErr: true},
		{name: "negative", output: "-1.0", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseProbeDurationMs(tc.output)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.output)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.output, err)
			}
			if got != tc.want {
				t.Fatalf("parse %q = %d, want %d", tc.output, got, tc.want)
			}
		})
	}
}

func TestBuildTrimFilter(t *testing.T) {
	got := buildTrimFilter(TrimOptions{ThresholdDB: -40, MinSilenceMs: 500, PaddingMs: 100})
	want := "silenceremove=start_periods=1:start_duration=0.5:start_threshold=-40dB:start_silence=0.1:" +
		"stop_periods=-1:stop_duration=0.5:stop_threshold=-40dB:stop_silence=0.1"
	if got != want {
		t.Fatalf("filter = %q, want %q", got, want)
	}
}

func TestFormatFilterFloat(t *testing.T) {
	if got := formatFilterFloat(-23.0); got != "-23" {
		t.Fatalf("got %q", got)
	}
	if got := formatFilterFloat(0.25); got != "0.25" {
		t.Fatalf("got %q", got)
	}
}

// writeStub installs an executable shell script standing in for an external
// binary.
func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDurationMsUsesProbeOutput(t *testing.T) {
	dir := t.TempDir()
	probe := writeStub(t, dir, "ffprobe", `echo "2.500"`)

	codec := NewFFmpeg(config.Audio{FFmpegBinary: "ffmpeg", FFprobeBinary: probe})
	got, err := codec.DurationMs(context.Background(), "sample.wav")
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if got != 2500 {
		t.Fatalf("duration = %d, want 2500", got)
	}
}

func TestDurationMsProbeFailure(t *testing.T) {
	dir := t.TempDir()
	probe := writeStub(t, dir, "ffprobe", `echo "sample.wav: No such file or directory" >&2; exit 1`)

	codec := NewFFmpeg(config.Audio{FFmpegBinary: "ffmpeg", FFprobeBinary: probe})
	_, err := codec.DurationMs(context.Background(), "sample.wav")
	if !errors.Is(err, curation.ErrExternalResource) {
		t.Fatalf("expected ErrExternalResource, got %v", err)
	}
	if !strings.Contains(err.Error(), "No such file") {
		t.Fatalf("error should carry tool output, got %v", err)
	}
}

func TestResampleRejectsNonPositiveRate(t *testing.T) {
	codec := NewFFmpeg(config.Audio{FFmpegBinary: "ffmpeg", FFprobeBinary: "ffprobe"})
	err := codec.Resample(context.Background(), "in.wav", "out.wav", 0, "wav")
	if !errors.Is(err, curation.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalizeRunsFFmpeg(t *testing.T) {
	dir := t.TempDir()
	argLog := filepath.Join(dir, "args.txt")
	ffmpeg := writeStub(t, dir, "ffmpeg", `echo "$@" > `+argLog)

	codec := NewFFmpeg(config.Audio{FFmpegBinary: ffmpeg, FFprobeBinary: "ffprobe"})
	if err := codec.Normalize(context.Background(), "in.wav", "out.wav", -23); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	logged, err := os.ReadFile(argLog)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logged), "loudnorm=I=-23:TP=-1.5:LRA=11") {
		t.Fatalf("ffmpeg args missing loudnorm filter: %s", logged)
	}
}
