package searcher

import (
	"konane/game"
	"konane/meta"
	"konane/utils"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Minimax is a depth-first game tree search for one player. It keeps no state
// between searches apart from its configuration and the shuffle generator.
//
// Without a duration it searches to a fixed depth. With a duration it runs
// iterative deepening from meta.FIRST_DEPTH, where a non-zero depth caps the
// deepest scan.
type Minimax struct {
	player   game.Player
	evaluate game.Evaluate
	depth    int
	duration time.Duration
	pruning  bool
	rng      *rand.Rand
	clock    Clock
	logger   zerolog.Logger
	metrics  MetricsCollector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

// WithDuration switches to time-bounded iterative deepening.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		m.duration = duration
	}
}

// WithPruning toggles alpha-beta pruning. It is on by default.
func WithPruning(enabled bool) Option {
	return func(m *Minimax) {
		m.pruning = enabled
	}
}

// WithShuffle randomizes the order of root candidates once per search.
func WithShuffle(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Minimax) {
		m.logger = logger
	}
}

func WithClock(clock Clock) Option {
	return func(m *Minimax) {
		if clock != nil {
			m.clock = clock
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// NewMinimax panics on an invalid player, a nil evaluator, negative limits,
// a deepening cap below meta.FIRST_DEPTH or when neither a depth nor a
// duration is given.
func NewMinimax(player game.Player, evaluate game.Evaluate, options ...Option) *Minimax {
	m := &Minimax{ // Default values
		player:   player,
		evaluate: evaluate,
		pruning:  true,
		clock:    time.Now,
		logger:   zerolog.Nop(),
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if !player.Valid() {
		panic("search player must be Player1 or Player2")
	}
	if evaluate == nil {
		panic("search needs an evaluation function")
	}
	if m.depth < 0 || m.duration < 0 {
		panic("search depth and duration must not be negative")
	}
	if m.depth == 0 && m.duration == 0 {
		panic("must specify search depth or duration")
	}
	if m.duration > 0 && m.depth > 0 && m.depth < meta.FIRST_DEPTH {
		panic("iterative deepening depth cap must be at least meta.FIRST_DEPTH")
	}
	return m
}

func (m *Minimax) Player() game.Player {
	return m.player
}

// Search runs one top-level search from state.
func (m *Minimax) Search(state *game.GameState) Result {
	m.metrics.Start()
	var result Result
	if m.duration > 0 {
		result = m.deepen(state)
	} else {
		result = m.fixed(state)
	}
	result.Metrics = m.metrics.Complete()
	return result
}

// FindMove returns the chosen move, or false if the search found none.
func (m *Minimax) FindMove(state *game.GameState) (game.Move, bool) {
	result := m.Search(state)
	return result.Move, result.Found
}

func (m *Minimax) fixed(state *game.GameState) Result {
	s := m.scan(state, m.rootMoves(state), m.depth, nil)
	m.metrics.CompleteDepth(m.depth)
	return s.result(m.depth)
}

func (m *Minimax) rootMoves(state *game.GameState) []game.Move {
	moves := state.LegalMoves()
	if m.rng != nil {
		utils.Shuffle(moves, m.rng)
	}
	return moves
}

// rootScan is the outcome of evaluating every root candidate at one depth limit.
type rootScan struct {
	best        game.Move
	value       int
	found       bool
	values      []int // per candidate, in scan order
	cutoff      bool  // some path stopped at the depth limit
	interrupted bool  // expired before all candidates were scanned
}

func (s *rootScan) result(depth int) Result {
	return Result{
		Move:  s.best,
		Value: s.value,
		Depth: depth,
		Found: s.found,
	}
}

// scan evaluates each candidate with a min node one ply down and keeps the
// first candidate with the strictly greatest value. expired, when set, is
// polled before each candidate.
func (m *Minimax) scan(state *game.GameState, moves []game.Move, limit int, expired func() bool) *rootScan {
	s := &rootScan{value: NegInf, values: make([]int, 0, len(moves))}
	for _, move := range moves {
		if expired != nil && expired() {
			s.interrupted = true
			break
		}
		child := m.play(state, move)
		value := m.value(child, 1, limit, NegInf, PosInf, s)
		s.values = append(s.values, value)
		if value > s.value {
			s.value = value
			s.best = move
			s.found = true
		}
	}
	return s
}

// value scores gs at the given depth. Even depths are max nodes and odd
// depths min nodes, since the turn flips exactly once per ply.
func (m *Minimax) value(gs *game.GameState, depth, limit, alpha, beta int, s *rootScan) int {
	m.metrics.AddNode()

	moves := gs.LegalMoves()
	if len(moves) == 0 {
		m.metrics.AddLeaf()
		return game.Score(gs, m.player, m.evaluate)
	}
	if depth == limit {
		s.cutoff = true
		m.metrics.AddLeaf()
		return m.evaluate(gs, m.player)
	}

	maximizing := depth%2 == 0
	if !m.pruning {
		return m.exhaustive(gs, moves, depth, limit, maximizing, s)
	}

	for _, move := range moves {
		value := m.value(m.play(gs, move), depth+1, limit, alpha, beta, s)
		if maximizing {
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				m.metrics.AddPrune()
				return beta
			}
		} else {
			if value < beta {
				beta = value
			}
			if beta <= alpha {
				m.metrics.AddPrune()
				return alpha
			}
		}
	}
	if maximizing {
		return alpha
	}
	return beta
}

// exhaustive is plain minimax over every child.
func (m *Minimax) exhaustive(gs *game.GameState, moves []game.Move, depth, limit int, maximizing bool, s *rootScan) int {
	best := PosInf
	if maximizing {
		best = NegInf
	}
	for _, move := range moves {
		value := m.value(m.play(gs, move), depth+1, limit, NegInf, PosInf, s)
		if maximizing && value > best || !maximizing && value < best {
			best = value
		}
	}
	return best
}

func (m *Minimax) play(gs *game.GameState, move game.Move) *game.GameState {
	child, ok := gs.Apply(move)
	if !ok {
		panic("generated move failed validation: " + move.String())
	}
	return child
}
