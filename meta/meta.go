// meta/meta.go
package meta

import "time"

// DEFAULT_DEPTH is the ply limit of fixed-depth searches.
const DEFAULT_DEPTH = 4

// DEFAULT_DURATION is the wall-clock budget of iterative deepening searches.
const DEFAULT_DURATION = 2 * time.Second

// FIRST_DEPTH is where iterative deepening starts.
const FIRST_DEPTH = 2

// DEFAULT_STRATEGY names the evaluation heuristic used when none is given.
const DEFAULT_STRATEGY = "dmoves"
