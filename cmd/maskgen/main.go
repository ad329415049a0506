package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/corpus"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/lengths"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/masking"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/modelsvc"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

// #region main

func main() {
	dbPath := flag.String("db", "sampler.db", "path to sampler.db holding the source sequences")
	outPath := flag.String("out", "", "output JSONL path (default stdout)")
	mode := flag.String("mode", "hole", "masking mode: hole | mask")
	distKind := flag.String("dist", "uniform", "hole length distribution: uniform | normal")
	maxLen := flag.Int("max-len", 10, "max hole length (uniform)")
	mean := flag.Float64("mean", 5, "hole length mean (normal)")
	variance := flag.Float64("variance", 4, "hole length variance (normal)")
	maskProb := flag.Float64("mask-prob", 0.15, "per-token masking probability")
	maxPred := flag.Int("max-predictions", 20, "max predictions per sequence")
	randomPlaced := flag.Bool("random-placed", false, "10% random-token replacement in mask mode")
	seqLen := flag.Int("seq-len", 512, "target sequence length")
	dupe := flag.Int("dupe", 1, "duplication factor per source sequence")
	workers := flag.Int("workers", runtime.NumCPU(), "worker goroutines")
	seed := flag.Int64("seed", time.Now().UnixNano(), "base RNG seed")
	limit := flag.Int("limit", 0, "max source sequences (0 = all)")
	telemetry := flag.String("telemetry", "", "persist hole-length counts under this set name")
	grpcAddr := flag.String("model", envOr("MODEL_ADDR", "localhost:50051"), "model service address for the vocabulary layout")
	flag.Parse()

	special, err := fetchSpecial(*grpcAddr)
	if err != nil {
		log.Fatalf("failed to fetch vocabulary layout: %v", err)
	}

	store, err := corpus.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	raw, err := store.Sequences(*limit)
	if err != nil {
		log.Fatalf("failed to load sequences: %v", err)
	}
	if len(raw) == 0 {
		log.Fatalf("no sequences in %s", *dbPath)
	}

	shapeRng := rand.New(rand.NewSource(*seed))
	shaped := corpus.ShapeCorpus(raw, corpus.ShapeConfig{
		SequenceLength: *seqLen,
		UseStartEnd:    true,
		DupeFactor:     *dupe,
		Shuffle:        true,
	}, special, shapeRng)

	dist, err := lengths.FromConfig(lengths.Config{
		Kind:     lengths.Kind(*distKind),
		MaxLen:   *maxLen,
		Mean:     *mean,
		Variance: *variance,
	})
	if err != nil {
		log.Fatalf("bad distribution config: %v", err)
	}

	cfg := masking.Config{
		MaxPredictions: *maxPred,
		MaskProb:       *maskProb,
		RandomPlaced:   *randomPlaced,
	}

	instances, err := maskAll(shaped, *mode, cfg, special, dist, *seed, *workers)
	if err != nil {
		log.Fatalf("masking failed: %v", err)
	}

	if err := writeInstances(*outPath, instances); err != nil {
		log.Fatalf("write output: %v", err)
	}

	if *telemetry != "" {
		if err := store.SaveLengthCounts(*telemetry, dist.Export()); err != nil {
			log.Fatalf("persist telemetry: %v", err)
		}
	}

	log.Printf("[MASK] wrote %d masked instances from %d shaped sequences (%d workers)",
		len(instances), len(shaped), *workers)
}

// #endregion main

// #region worker-pool

// maskAll fans shaped sequences across a worker pool. Each sequence gets its
// own RNG seeded from the base seed plus its index, so the output is
// reproducible regardless of scheduling.
func maskAll(shaped [][]vocab.Token, mode string, cfg masking.Config, special vocab.Special,
	dist lengths.Distribution, baseSeed int64, workers int) ([]masking.MaskedInstance, error) {

	if workers < 1 {
		workers = 1
	}
	instances := make([]masking.MaskedInstance, len(shaped))
	jobs := make(chan int)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var failed bool
			for idx := range jobs {
				// Keep draining after a failure so the producer never blocks.
				if failed {
					continue
				}
				rng := rand.New(rand.NewSource(baseSeed + int64(idx)))
				var inst masking.MaskedInstance
				var err error
				switch mode {
				case "hole":
					inst, err = masking.HoleSequence(shaped[idx], false, cfg, special, dist, rng)
				case "mask":
					inst, err = masking.MaskSequence(shaped[idx], false, cfg, special, rng)
				default:
					err = fmt.Errorf("unknown mode %q", mode)
				}
				if err != nil {
					select {
					case errs <- fmt.Errorf("sequence %d: %w", idx, err):
					default:
					}
					failed = true
					continue
				}
				instances[idx] = inst
			}
		}()
	}

	for idx := range shaped {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errs:
		return nil, err
	default:
	}
	return instances, nil
}

// #endregion worker-pool

// #region output

func writeInstances(path string, instances []masking.MaskedInstance) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for i := range instances {
		if err := enc.Encode(&instances[i]); err != nil {
			return fmt.Errorf("encode instance %d: %w", i, err)
		}
	}
	return w.Flush()
}

// #endregion output

// #region helpers

func fetchSpecial(addr string) (vocab.Special, error) {
	client, err := modelsvc.NewClient(addr)
	if err != nil {
		return vocab.Special{}, err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Vocabulary(ctx)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
