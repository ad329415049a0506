package pipeline

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/committee"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/corpus"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/feed"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/logging"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/modelsvc"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/ranking"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
	"github.com/google/uuid"
)

// #endregion imports

// #region model-service

// ModelService is the slice of the inference client the pipeline needs.
// Satisfied by *modelsvc.Client; tests inject a fake.
type ModelService interface {
	Tokenize(ctx context.Context, text string) ([]vocab.Token, error)
	Detokenize(ctx context.Context, ids []vocab.Token, ignorePad bool) (string, error)
	Predict(ctx context.Context, inputs []modelsvc.StepInput) ([][]vocab.Token, error)
	ExtractFeatures(ctx context.Context, source, featureSpace string) (ranking.FeatureVector, error)
	CommitteeVote(ctx context.Context, sampleID string, features []float64) (committee.Vote, error)
}

// #endregion model-service

// #region config

// Config holds the sampling-round parameters.
type Config struct {
	Feed         feed.Config
	FeatureSpace string
	TopK         int // -1 keeps every scored candidate
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		Feed:         feed.DefaultConfig(),
		FeatureSpace: "grewe",
		TopK:         16,
	}
}

// #endregion config

// #region pipeline

// Pipeline drives one active-sampling round: seed → iterative hole
// resolution → feature extraction → distance ranking → committee scoring →
// persistence.
type Pipeline struct {
	svc     ModelService
	store   *corpus.Store // nil disables persistence
	ranker  *ranking.Ranker
	special vocab.Special
	cfg     Config
}

// New creates a pipeline. store may be nil for dry runs.
func New(svc ModelService, store *corpus.Store, ranker *ranking.Ranker, special vocab.Special, cfg Config) *Pipeline {
	return &Pipeline{
		svc:     svc,
		store:   store,
		ranker:  ranker,
		special: special,
		cfg:     cfg,
	}
}

// #endregion pipeline

// #region round-result

// RoundResult summarizes one sampling round.
type RoundResult struct {
	RoundID    string
	Benchmark  string
	Steps      int
	Incomplete int // slots that hit the feed step cap
	Skipped    int // slots whose text was not feature-extractable
	Excluded   int // candidates dropped on feature-key mismatch

	// Candidates is the top-K list ascending by distance to the target.
	Candidates []ranking.Candidate
	// Disagreement is the committee ranking of the same candidates,
	// most-disagreed first.
	Disagreement []committee.Sample
}

// #endregion round-result

// #region run-round

// RunRound executes one full sampling round from a seed text containing at
// least one hole or mask placeholder.
func (p *Pipeline) RunRound(ctx context.Context, seedText string) (RoundResult, error) {
	target := p.ranker.Target()
	if target == nil {
		return RoundResult{}, fmt.Errorf("no target benchmark remaining")
	}

	seed, err := p.svc.Tokenize(ctx, seedText)
	if err != nil {
		return RoundResult{}, fmt.Errorf("tokenize seed: %w", err)
	}

	batch, err := feed.NewBatch(seed, p.cfg.Feed, p.special)
	if err != nil {
		return RoundResult{}, fmt.Errorf("init feed batch: %w", err)
	}

	// Resolve holes until every slot closes or the step cap fires.
	for !batch.Done() {
		inputs := stepInputs(batch, p.special)
		preds, err := p.svc.Predict(ctx, inputs)
		if err != nil {
			return RoundResult{}, fmt.Errorf("predict step %d: %w", batch.Steps(), err)
		}
		if err := batch.Step(preds); err != nil {
			return RoundResult{}, fmt.Errorf("feed step %d: %w", batch.Steps(), err)
		}
	}

	result := RoundResult{
		RoundID:   uuid.New().String(),
		Benchmark: target.Name,
		Steps:     batch.Steps(),
	}

	// Turn each slot into a candidate; unextractable slots are skipped, not
	// fatal.
	var candidates []ranking.Candidate
	for slot := range batch.Slots() {
		text, err := p.svc.Detokenize(ctx, batch.Slots()[slot], true)
		if err != nil {
			return RoundResult{}, fmt.Errorf("detokenize slot %d: %w", slot, err)
		}
		features, err := p.svc.ExtractFeatures(ctx, text, p.cfg.FeatureSpace)
		if err != nil {
			return RoundResult{}, fmt.Errorf("extract features slot %d: %w", slot, err)
		}
		if features == nil {
			result.Skipped++
			continue
		}
		if batch.Incomplete(slot) {
			result.Incomplete++
		}
		candidates = append(candidates, ranking.Candidate{
			ID:         uuid.New().String(),
			Source:     text,
			Features:   features,
			Incomplete: batch.Incomplete(slot),
		})
	}

	scored, excluded := p.ranker.ScoreAll(candidates)
	result.Excluded = excluded
	result.Candidates = ranking.TopK(scored, p.cfg.TopK)

	// Committee disagreement over the retained candidates.
	samples := make([]committee.Sample, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		vote, err := p.svc.CommitteeVote(ctx, c.ID, flattenFeatures(c.Features))
		if err != nil {
			return RoundResult{}, fmt.Errorf("committee vote for %s: %w", c.ID, err)
		}
		samples = append(samples, committee.Sample{ID: c.ID, Vote: vote})
	}
	result.Disagreement = committee.RankByDisagreement(committee.Score(samples))

	if p.store != nil {
		if err := p.store.AddCandidates(result.RoundID, result.Benchmark, result.Candidates); err != nil {
			return RoundResult{}, fmt.Errorf("persist candidates: %w", err)
		}
		for _, s := range result.Disagreement {
			if err := p.store.RecordVote(s.ID, s.Vote, s.Entropy); err != nil {
				return RoundResult{}, fmt.Errorf("persist vote: %w", err)
			}
		}
		if err := p.logProvenance(seedText, batch.CroppedTokens(), result); err != nil {
			return RoundResult{}, err
		}
	}

	log.Printf("[PIPE] round %s: benchmark=%s steps=%d kept=%d skipped=%d excluded=%d incomplete=%d",
		result.RoundID, result.Benchmark, result.Steps,
		len(result.Candidates), result.Skipped, result.Excluded, result.Incomplete)
	return result, nil
}

// logProvenance records the round's config and outcome for audit.
func (p *Pipeline) logProvenance(seedText string, cropped int, result RoundResult) error {
	record := logging.RoundRecord{
		RoundID:        result.RoundID,
		Benchmark:      result.Benchmark,
		FeatureSpace:   p.cfg.FeatureSpace,
		TopK:           p.cfg.TopK,
		SequenceLength: p.cfg.Feed.SequenceLength,
		BatchSize:      p.cfg.Feed.BatchSize,
		Steps:          result.Steps,
		Incomplete:     result.Incomplete,
		CroppedTokens:  cropped,
		Kept:           len(result.Candidates),
		Skipped:        result.Skipped,
		Excluded:       result.Excluded,
	}
	detail, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal round record: %w", err)
	}
	if err := logging.LogRound(p.store.DB(), logging.RoundEntry{
		RoundID:    result.RoundID,
		Benchmark:  result.Benchmark,
		SeedText:   seedText,
		DetailJSON: string(detail),
	}); err != nil {
		return fmt.Errorf("persist round provenance: %w", err)
	}
	return nil
}

// #endregion run-round

// #region helpers

// stepInputs builds one prediction round's inputs from the batch state.
func stepInputs(batch *feed.Batch, special vocab.Special) []modelsvc.StepInput {
	slots := batch.Slots()
	open := batch.OpenPositions()
	inputs := make([]modelsvc.StepInput, len(slots))
	for i := range slots {
		inputs[i] = modelsvc.StepInput{
			InputIDs:        slots[i],
			InputMask:       vocab.InputMask(slots[i], special.Pad),
			TargetPositions: open[i],
		}
	}
	return inputs
}

// flattenFeatures produces a deterministic vector from a feature map by
// sorting keys.
func flattenFeatures(fv ranking.FeatureVector) []float64 {
	keys := make([]string, 0, len(fv))
	for k := range fv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = fv[k]
	}
	return out
}

// #endregion helpers
