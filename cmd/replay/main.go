package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print per-step open-target counts")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	os.Exit(runFixture(*fixturePath, *verbose))
}

// #endregion main

// #region fixture-mode

func runFixture(path string, verbose bool) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	if f.Description != "" {
		fmt.Printf("Fixture: %s\n\n", f.Description)
	}

	steps, slots, err := replay.Replay(f.Seed, f.Steps, f.Config.ToFeedConfig(), f.Special.ToSpecial())
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	if verbose {
		for _, s := range steps {
			fmt.Printf("step %d: open=%v\n", s.Step, s.Open)
		}
		fmt.Println()
	}

	printSlots(slots)

	if mismatch := replay.Verify(slots, f.ExpectedResults); mismatch != "" {
		fmt.Printf("\nDIVERGED: %s\n", mismatch)
		return 1
	}

	summary := replay.Summarize(steps, slots, 0)
	fmt.Printf("\nSummary: %d steps, %d closed, %d incomplete, all expectations match\n",
		summary.TotalSteps, summary.Closed, summary.Incomplete)
	return 0
}

func printSlots(slots []replay.SlotResult) {
	fmt.Printf("%-6s  %-10s  %-10s  %s\n", "Slot", "Closed At", "Complete", "Resolved")
	for _, s := range slots {
		closed := "never"
		if s.ClosedAt >= 0 {
			closed = fmt.Sprintf("step %d", s.ClosedAt)
		}
		fmt.Printf("%-6d  %-10s  %-10v  %v\n", s.Slot, closed, !s.Incomplete, s.Resolved)
	}
}

// #endregion fixture-mode
