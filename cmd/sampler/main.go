package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/corpus"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/modelsvc"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/pipeline"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/ranking"
)

// #region main
func main() {
	dbPath := envOr("SAMPLER_DB", "sampler.db")
	grpcAddr := envOr("MODEL_ADDR", "localhost:50051")
	benchPath := envOr("BENCHMARKS", "benchmarks.json")
	featureSpace := envOr("FEATURE_SPACE", "grewe")
	topK := envIntOr("TOP_K", 16)

	benchmarks, err := loadBenchmarks(benchPath)
	if err != nil {
		log.Fatalf("failed to load benchmarks: %v", err)
	}

	store, err := corpus.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	// Connect to Python inference service
	client, err := modelsvc.NewClient(grpcAddr)
	if err != nil {
		log.Fatalf("failed to connect to model service at %s: %v", grpcAddr, err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	special, err := client.Vocabulary(ctx)
	cancel()
	if err != nil {
		log.Fatalf("failed to fetch vocabulary layout: %v", err)
	}

	cfg := pipeline.DefaultConfig()
	cfg.FeatureSpace = featureSpace
	cfg.TopK = topK
	ranker := ranking.NewRanker(benchmarks)
	pipe := pipeline.New(client, store, ranker, special, cfg)

	fmt.Println("Active sampler ready.")
	fmt.Printf("  DB: %s | Model: %s | Benchmarks: %d | Feature space: %s\n",
		dbPath, grpcAddr, len(benchmarks), featureSpace)
	fmt.Println("Type a seed program containing [HOLE] or [MASK] placeholders,")
	fmt.Println("'advance' to rotate the target benchmark, or 'quit' to exit:")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		seed := strings.TrimSpace(scanner.Text())
		if seed == "" {
			continue
		}
		if seed == "quit" || seed == "exit" {
			break
		}
		if seed == "advance" {
			if !ranker.Advance() {
				fmt.Println("benchmark list exhausted")
				break
			}
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		result, err := pipe.RunRound(ctx, seed)
		cancel()
		if err != nil {
			log.Printf("round error: %v", err)
			continue
		}

		printRound(result)
	}
}

// #endregion main

// #region output

func printRound(r pipeline.RoundResult) {
	fmt.Printf("\nRound %s vs %s: %d steps, %d kept, %d skipped, %d excluded, %d incomplete\n",
		shortID(r.RoundID), r.Benchmark, r.Steps,
		len(r.Candidates), r.Skipped, r.Excluded, r.Incomplete)

	fmt.Printf("%-10s  %10s  %-10s  %s\n", "Candidate", "Distance", "Complete", "Source")
	for _, c := range r.Candidates {
		src := c.Source
		if len(src) > 48 {
			src = src[:48] + "..."
		}
		fmt.Printf("%-10s  %10.4f  %-10v  %s\n", shortID(c.ID), c.Score, !c.Incomplete, src)
	}

	if len(r.Disagreement) > 0 {
		fmt.Printf("\nCommittee disagreement:\n")
		for _, s := range r.Disagreement {
			fmt.Printf("  %-10s  entropy=%.4f  votes=%d\n", shortID(s.ID), s.Entropy, len(s.Vote))
		}
	}
	fmt.Println()
}

// #endregion output

// #region helpers

func loadBenchmarks(path string) ([]ranking.Benchmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var benchmarks []ranking.Benchmark
	if err := json.Unmarshal(data, &benchmarks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(benchmarks) == 0 {
		return nil, fmt.Errorf("%s holds no benchmarks", path)
	}
	return benchmarks, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring non-numeric %s=%q", key, v)
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion helpers
