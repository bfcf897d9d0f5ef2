// Command hashgen validates that the poker package's perfect-hash tables
// build cleanly and reports their size. It's invoked via the go:generate
// directive in poker/perfecthash.go.
//
// Table construction is cheap (73,775 rank-count histograms of 5 to 7
// cards) and fully deterministic, so poker.Evaluate7 also builds it lazily
// on first call via sync.Once — this binary exists to catch a broken build
// in CI before it ever reaches a live process, not to produce an offline
// artifact the runtime loads. A build failure is fatal at runtime (see
// poker.ErrTablesUnavailable): there is no degraded fallback to report on
// here, only pass or fail.
package main

import (
	"fmt"
	"os"

	"github.com/lox/holdem-eval/poker"
)

func main() {
	keys, ready := poker.WarmTables()
	if !ready {
		fmt.Fprintln(os.Stderr, "hashgen: perfect-hash table build failed, poker.Evaluate7 would panic at runtime")
		os.Exit(1)
	}
	fmt.Printf("hashgen: built perfect hash over %d non-flush rank histograms\n", keys)
}
