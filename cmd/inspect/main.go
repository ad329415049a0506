package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/corpus"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to sampler.db")
	round := flag.String("round", "", "show candidates of one sampling round")
	lengthSet := flag.String("lengths", "", "show hole-length telemetry for one distribution set")
	last := flag.Int("last", 20, "show N most recent rounds")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/sampler.db [--round id] [--lengths set] [--last N] [--json]")
		os.Exit(2)
	}

	store, err := corpus.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *round != "":
		err = runRoundMode(store, *round, *jsonOut)
	case *lengthSet != "":
		err = runLengthsMode(store, *lengthSet, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type roundRow struct {
	RoundID    string  `json:"round_id"`
	Benchmark  string  `json:"benchmark"`
	Candidates int     `json:"candidates"`
	Incomplete int     `json:"incomplete"`
	BestScore  float64 `json:"best_score"`
	CreatedAt  string  `json:"created_at"`
}

func runListMode(store *corpus.Store, last int, jsonOut bool) error {
	rows, err := store.DB().Query(
		`SELECT round_id, benchmark, COUNT(*), SUM(incomplete), MIN(score), MIN(created_at)
		 FROM candidates GROUP BY round_id, benchmark
		 ORDER BY MIN(created_at) DESC LIMIT ?`, last)
	if err != nil {
		return fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []roundRow
	for rows.Next() {
		var r roundRow
		if err := rows.Scan(&r.RoundID, &r.Benchmark, &r.Candidates, &r.Incomplete, &r.BestScore, &r.CreatedAt); err != nil {
			return fmt.Errorf("scan round: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rounds: %w", err)
	}
	if len(out) == 0 {
		fmt.Fprintln(os.Stderr, "no rounds found")
		return nil
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("%-10s  %-20s  %10s  %10s  %10s  %s\n",
		"Round", "Benchmark", "Candidates", "Incomplete", "Best", "Time")
	for _, r := range out {
		fmt.Printf("%-10s  %-20s  %10d  %10d  %10.4f  %s\n",
			shortID(r.RoundID), r.Benchmark, r.Candidates, r.Incomplete, r.BestScore, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region round-mode

func runRoundMode(store *corpus.Store, roundID string, jsonOut bool) error {
	cands, err := store.RoundCandidates(roundID)
	if err != nil {
		return err
	}
	if len(cands) == 0 {
		fmt.Fprintln(os.Stderr, "no candidates for that round")
		return nil
	}

	if jsonOut {
		return printJSON(cands)
	}

	fmt.Printf("%-10s  %10s  %-10s  %s\n", "Candidate", "Distance", "Complete", "Source")
	for _, c := range cands {
		fmt.Printf("%-10s  %10.4f  %-10v  %s\n", shortID(c.ID), c.Score, !c.Incomplete, truncate(c.Source, 60))
	}
	return nil
}

// #endregion round-mode

// #region lengths-mode

func runLengthsMode(store *corpus.Store, setName string, jsonOut bool) error {
	counts, err := store.LengthCounts(setName)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Fprintln(os.Stderr, "no length counts for that set")
		return nil
	}

	if jsonOut {
		return printJSON(counts)
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}
	fmt.Printf("%-8s  %10s  %s\n", "Length", "Count", "Share")
	for _, c := range counts {
		fmt.Printf("%-8d  %10d  %5.1f%%\n", c.Length, c.Count, 100*float64(c.Count)/float64(total))
	}
	return nil
}

// #endregion lengths-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// #endregion output
