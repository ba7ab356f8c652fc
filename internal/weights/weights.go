// Package weights combines statistics into a sampling-probability vector.
package weights

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
)

// Vector holds one probability per pool number; index i covers number i+1.
// It is normalized to sum to 1.
type Vector []float64

// Of returns the probability of the given number.
func (v Vector) Of(n int) float64 {
	return v[n-1]
}

// Tier scores for temperature bands; a bounded score rather than raw recency
// so stale numbers cannot dominate.
const (
	tierHot  = 3
	tierWarm = 2
	tierCold = 1
)

// Model produces weight vectors. The random term is redrawn on every Compute
// call.
type Model struct {
	rnd *rand.Rand
}

// New returns a Model seeded with the current time.
func New() *Model {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Model using the provided source, for deterministic use.
func NewWithRand(rnd *rand.Rand) *Model {
	return &Model{rnd: rnd}
}

// Compute blends frequency, temperature tier, and a uniform random term into
// a normalized vector. A degenerate all-zero blend falls back to the uniform
// distribution.
func (m *Model) Compute(report stats.Report, cfg model.Config) Vector {
	v := make(Vector, cfg.Pool)
	total := 0.0
	for n := 1; n <= cfg.Pool; n++ {
		w := cfg.FrequencyWeight*float64(report.Frequency.All[n]) +
			cfg.RecentWeight*float64(tier(report.Temperature.Recency[n], cfg)) +
			cfg.RandomWeight*m.rnd.Float64()
		v[n-1] = w
		total += w
	}
	if total <= 0 {
		uniform := 1.0 / float64(cfg.Pool)
		for i := range v {
			v[i] = uniform
		}
		return v
	}
	for i := range v {
		v[i] /= total
	}
	return v
}

func tier(recency int, cfg model.Config) int {
	switch stats.Band(recency, cfg) {
	case "hot":
		return tierHot
	case "warm":
		return tierWarm
	default:
		return tierCold
	}
}
