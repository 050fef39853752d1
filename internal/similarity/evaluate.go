package similarity

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"audiotools/internal/corpus"
	"audiotools/internal/curation"
	"audiotools/internal/model"
	"audiotools/internal/tabular"
)

// SentinelFailed marks a cloned file whose similarity could not be computed.
const SentinelFailed = "Error: Calculation failed"

// Detail table columns.
const (
	ColumnModel     = "model"
	ColumnSpeaker   = "speaker"
	ColumnCloned    = "cloned_wav"
	ColumnRef       = "ref"
	ColumnCosine    = "cosine_similarity"
	ColumnEuclidean = "euclidean_similarity"
)

// Options controls a corpus evaluation.
type Options struct {
	// Extension filters the cloned files, without the leading dot.
	Extension string
	// Resamples is the bootstrap resample count for confidence intervals.
	Resamples int
	// Confidence is the interval's confidence level, e.g. 0.95.
	Confidence float64
	// Rand seeds the bootstrap; nil uses a fresh source.
	Rand *rand.Rand
}

// Result carries the three output tables of an evaluation run.
type Result struct {
	// Detail has one row per cloned file, including failed ones.
	Detail *tabular.Table
	// SpeakerStats aggregates cosine similarity per (model, speaker).
	SpeakerStats *tabular.Table
	// ModelStats pools every speaker's valid scores per model.
	ModelStats *tabular.Table
	// Log is the free-form evaluation log: per-speaker and per-model
	// statistics plus every skipped or failed file, in processing order.
	Log     string
	Summary curation.Summary
}

// Evaluate walks dataDir's model/speaker/file layout, compares each cloned
// file to its reference under refDir/speaker, and aggregates the valid cosine
// similarities at both grouping levels. A cloned file whose reference does
// not exist is skipped outright, with a warning, and appears in no output
// table; a file whose embedding fails keeps its detail row with sentinel
// similarity cells. The run continues either way.
func Evaluate(ctx context.Context, dataDir, refDir string, embedder model.Embedder, opts Options, logger *slog.Logger) (*Result, error) {
	models, err := corpus.ListSubdirs(dataDir)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, curation.Wrap(curation.ErrInvalidInput, "evaluate similarity",
			fmt.Sprintf("no model directories under %q", dataDir), nil)
	}

	result := &Result{
		Detail:       tabular.New(ColumnModel, ColumnSpeaker, ColumnCloned, ColumnRef, ColumnCosine, ColumnEuclidean),
		SpeakerStats: tabular.New("Model", "Speaker", "MeanCosineSimilarity"),
		ModelStats:   tabular.New("Model", "MeanCosineSimilarity"),
	}
	refCache := make(map[string][]float64)
	var evalLog strings.Builder

	for _, modelName := range models {
		var modelScores []float64
		fmt.Fprintf(&evalLog, "model %s\n", modelName)
		speakers, err := corpus.ListSubdirs(filepath.Join(dataDir, modelName))
		if err != nil {
			return nil, err
		}
		for _, speaker := range speakers {
			files, err := corpus.ListFiles(filepath.Join(dataDir, modelName, speaker), opts.Extension)
			if err != nil {
				return nil, err
			}
			var speakerScores []float64
			for _, cloned := range files {
				refPath := filepath.Join(refDir, speaker, RefName(filepath.Base(cloned), speaker))

				if _, err := os.Stat(refPath); err != nil {
					if logger != nil {
						logger.Warn("reference not found, skipping", "cloned", cloned, "ref", refPath)
					}
					fmt.Fprintf(&evalLog, "  skipped %s: reference not found: %s\n", cloned, refPath)
					continue
				}
				cosine, euclidean, err := comparePair(ctx, embedder, cloned, refPath, refCache)
				if err != nil {
					if logger != nil {
						logger.Warn("similarity failed", "cloned", cloned, "ref", refPath, "error", err)
					}
					fmt.Fprintf(&evalLog, "  failed %s: %v\n", cloned, err)
					result.Detail.Append(modelName, speaker, cloned, refPath, SentinelFailed, SentinelFailed)
					result.Summary.Record(false)
					continue
				}
				result.Detail.Append(modelName, speaker, cloned, refPath,
					formatScore(cosine), formatScore(euclidean))
				speakerScores = append(speakerScores, cosine)
				result.Summary.Record(true)
			}

			stat := Aggregate(speakerScores, opts.Resamples, opts.Confidence, opts.Rand)
			result.SpeakerStats.Append(modelName, speaker, stat.Format())
			logGroup(&evalLog, "  speaker "+speaker, stat, opts.Confidence)
			modelScores = append(modelScores, speakerScores...)
		}

		stat := Aggregate(modelScores, opts.Resamples, opts.Confidence, opts.Rand)
		result.ModelStats.Append(modelName, stat.Format())
		logGroup(&evalLog, "model "+modelName+" overall", stat, opts.Confidence)
	}

	result.Log = evalLog.String()
	result.Summary.Log(logger, "evaluate similarity")
	return result, nil
}

func logGroup(w *strings.Builder, label string, stat Statistic, confidence float64) {
	if !stat.Available() {
		fmt.Fprintf(w, "%s: no valid similarity scores\n", label)
		return
	}
	fmt.Fprintf(w, "%s: mean cosine similarity %s over %d files (%.0f%% CI [%.4f, %.4f])\n",
		label, stat.Format(), stat.N, confidence*100, stat.Low, stat.High)
}

// RefScorer scores files by their cosine similarity to one fixed reference
// recording. It satisfies the same contract as the quality-score models, so
// the score extractor can drive it over a whole corpus.
type RefScorer struct {
	embedder model.Embedder
	ref      []float64
}

// NewRefScorer embeds the reference once up front. A reference that cannot be
// embedded is an external-resource failure: nothing can be scored without it.
func NewRefScorer(ctx context.Context, embedder model.Embedder, refPath string) (*RefScorer, error) {
	ref, err := embedder.Embed(ctx, refPath)
	if err != nil {
		return nil, curation.Wrap(curation.ErrExternalResource, "embed reference", refPath, err)
	}
	return &RefScorer{embedder: embedder, ref: ref}, nil
}

// Score returns the cosine similarity between path and the reference.
func (s *RefScorer) Score(ctx context.Context, path string) (float64, error) {
	vector, err := s.embedder.Embed(ctx, path)
	if err != nil {
		return 0, err
	}
	return Cosine(vector, s.ref)
}

func comparePair(ctx context.Context, embedder model.Embedder, cloned, ref string, refCache map[string][]float64) (float64, float64, error) {
	refVec, ok := refCache[ref]
	if !ok {
		var err error
		refVec, err = embedder.Embed(ctx, ref)
		if err != nil {
			return 0, 0, fmt.Errorf("embed reference: %w", err)
		}
		if refCache != nil {
			refCache[ref] = refVec
		}
	}
	clonedVec, err := embedder.Embed(ctx, cloned)
	if err != nil {
		return 0, 0, fmt.Errorf("embed cloned: %w", err)
	}

	cosine, err := Cosine(clonedVec, refVec)
	if err != nil {
		return 0, 0, err
	}
	euclidean, err := Euclidean(clonedVec, refVec)
	if err != nil {
		return 0, 0, err
	}
	return cosine, euclidean, nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
