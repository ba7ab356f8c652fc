// Package generator produces candidate number sets under hard constraints.
package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
	"github.com/verte-zerg/lotto/internal/validate"
	"github.com/verte-zerg/lotto/internal/weights"
)

// Strategy selects how raw candidates are produced.
type Strategy int

const (
	// StrategyAuto picks uniformly among weighted, highlow, and prime on
	// each attempt.
	StrategyAuto Strategy = iota
	// StrategyWeighted samples by the weight vector without replacement.
	StrategyWeighted
	// StrategyHighLow fills half the set from the low partition and half
	// from the high partition.
	StrategyHighLow
	// StrategyPrime places 1-2 high primes and fills with non-primes.
	StrategyPrime
	// StrategyGap greedily builds a set with balanced adjacent gaps,
	// seeded from overdue numbers.
	StrategyGap
)

var strategyNames = map[Strategy]string{
	StrategyAuto:     "auto",
	StrategyWeighted: "weighted",
	StrategyHighLow:  "highlow",
	StrategyPrime:    "prime",
	StrategyGap:      "gap",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a CLI name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return StrategyAuto, fmt.Errorf("unknown strategy %q (want auto, weighted, highlow, prime, or gap)", name)
}

// ExhaustedError is returned when the attempt budget runs out before any
// candidate satisfies all hard constraints.
type ExhaustedError struct {
	Attempts int
	Failed   []string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no valid set after %d attempts (last failing: %s)",
		e.Attempts, strings.Join(e.Failed, ", "))
}

// Generator produces candidate sets via rejection sampling.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Generator using the provided source, for
// deterministic use.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate returns one candidate set satisfying every hard constraint, or an
// ExhaustedError when the attempt budget runs out. It never returns a
// partially valid set.
func (g *Generator) Generate(strategy Strategy, vec weights.Vector, report stats.Report, cfg model.Config) ([]int, error) {
	var lastFailed []string
	for attempt := 0; attempt < cfg.Attempts; attempt++ {
		numbers := g.raw(strategy, vec, report, cfg)
		check := validate.Draw(numbers, report, cfg)
		if check.Valid {
			return numbers, nil
		}
		lastFailed = check.Failed()
	}
	return nil, &ExhaustedError{Attempts: cfg.Attempts, Failed: lastFailed}
}

// GenerateBatch produces count independent sets. Sets are not deduplicated
// against each other.
func (g *Generator) GenerateBatch(count int, strategy Strategy, vec weights.Vector, report stats.Report, cfg model.Config) ([][]int, error) {
	sets := make([][]int, 0, count)
	for i := 0; i < count; i++ {
		numbers, err := g.Generate(strategy, vec, report, cfg)
		if err != nil {
			return nil, fmt.Errorf("set %d: %w", i+1, err)
		}
		sets = append(sets, numbers)
	}
	return sets, nil
}

func (g *Generator) raw(strategy Strategy, vec weights.Vector, report stats.Report, cfg model.Config) []int {
	if strategy == StrategyAuto {
		strategy = []Strategy{StrategyWeighted, StrategyHighLow, StrategyPrime}[g.rnd.Intn(3)]
	}
	var numbers []int
	switch strategy {
	case StrategyWeighted:
		numbers = g.weightedRandom(vec, cfg)
	case StrategyHighLow:
		numbers = g.highLowMix(cfg)
	case StrategyPrime:
		numbers = g.primeBalanced(report, cfg)
	case StrategyGap:
		numbers = gapBalanced(report, cfg)
	}
	sort.Ints(numbers)
	return numbers
}
