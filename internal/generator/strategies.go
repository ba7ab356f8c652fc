package generator

import (
	"sort"

	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
	"github.com/verte-zerg/lotto/internal/weights"
)

// weightedRandom samples K distinct numbers without replacement, each pick
// proportional to the remaining weight mass.
func (g *Generator) weightedRandom(vec weights.Vector, cfg model.Config) []int {
	remaining := make([]float64, len(vec))
	total := 0.0
	for i, w := range vec {
		remaining[i] = w
		total += w
	}

	numbers := make([]int, 0, cfg.Select)
	for len(numbers) < cfg.Select {
		r := g.rnd.Float64() * total
		acc := 0.0
		idx := -1
		for i, w := range remaining {
			if w == 0 {
				continue
			}
			acc += w
			if r <= acc {
				idx = i
				break
			}
		}
		if idx < 0 {
			// Float accumulation fell short; take the last weighted entry.
			for i := len(remaining) - 1; i >= 0; i-- {
				if remaining[i] > 0 {
					idx = i
					break
				}
			}
		}
		if idx < 0 {
			// Fewer than K positive weights; the short set fails validation.
			break
		}
		numbers = append(numbers, idx+1)
		total -= remaining[idx]
		remaining[idx] = 0
	}
	return numbers
}

// highLowMix picks floor(K/2) numbers from the low partition and the rest
// from the high partition, so the high half gets the extra slot for odd K.
// A partition too small to cover its share spills into the other.
func (g *Generator) highLowMix(cfg model.Config) []int {
	var low, high []int
	for n := 1; n <= cfg.Pool; n++ {
		if n <= cfg.LowNumberMax {
			low = append(low, n)
		} else {
			high = append(high, n)
		}
	}

	lowPick := cfg.Select / 2
	if lowPick > len(low) {
		lowPick = len(low)
	}
	highPick := cfg.Select - lowPick
	if highPick > len(high) {
		highPick = len(high)
		lowPick = cfg.Select - highPick
	}

	numbers := g.sample(low, lowPick)
	return append(numbers, g.sample(high, highPick)...)
}

// primeBalanced picks 1-2 primes at or above the high-prime floor, degrading
// to however many exist, and fills the rest from non-primes.
func (g *Generator) primeBalanced(report stats.Report, cfg model.Config) []int {
	isPrime := make(map[int]bool, len(report.Primes.Primes))
	var highPrimes []int
	for _, p := range report.Primes.Primes {
		isPrime[p] = true
		if p >= cfg.HighPrimeMin {
			highPrimes = append(highPrimes, p)
		}
	}
	var nonPrimes []int
	for n := 1; n <= cfg.Pool; n++ {
		if !isPrime[n] {
			nonPrimes = append(nonPrimes, n)
		}
	}

	want := 1 + g.rnd.Intn(2)
	if want > len(highPrimes) {
		want = len(highPrimes)
	}
	numbers := g.sample(highPrimes, want)

	fill := cfg.Select - len(numbers)
	if fill > len(nonPrimes) {
		numbers = append(numbers, g.sample(nonPrimes, len(nonPrimes))...)
		fill = cfg.Select - len(numbers)
		var rest []int
		for _, p := range report.Primes.Primes {
			if !contains(numbers, p) {
				rest = append(rest, p)
			}
		}
		return append(numbers, g.sample(rest, fill)...)
	}
	return append(numbers, g.sample(nonPrimes, fill)...)
}

// sample picks count elements uniformly without replacement.
func (g *Generator) sample(pool []int, count int) []int {
	if count <= 0 {
		return nil
	}
	perm := g.rnd.Perm(len(pool))
	numbers := make([]int, count)
	for i := 0; i < count; i++ {
		numbers[i] = pool[perm[i]]
	}
	return numbers
}

// gapBalanced deterministically grows a set with balanced adjacent gaps. It
// seeds with the lowest overdue numbers and repeatedly adds the candidate
// with the lowest gap penalty, ties broken by ascending value.
func gapBalanced(report stats.Report, cfg model.Config) []int {
	chosen := map[int]bool{}
	var numbers []int
	if report.Gaps != nil {
		seed := report.Gaps.Overdue
		if len(seed) > 2 {
			seed = seed[:2]
		}
		for _, n := range seed {
			if len(numbers) < cfg.Select {
				chosen[n] = true
				numbers = append(numbers, n)
			}
		}
	}

	for len(numbers) < cfg.Select {
		best := -1
		bestScore := 0.0
		for n := 1; n <= cfg.Pool; n++ {
			if chosen[n] {
				continue
			}
			score := gapPenalty(append(numbers[:len(numbers):len(numbers)], n), cfg)
			if best == -1 || score < bestScore {
				best = n
				bestScore = score
			}
		}
		chosen[best] = true
		numbers = append(numbers, best)
	}
	sort.Ints(numbers)
	return numbers
}

// gapPenalty scores a partial set: heavy terms for exceeding the configured
// average and single-gap ceilings, plus drift from the even spacing the pool
// would allow, which keeps the greedy choice from clustering.
func gapPenalty(numbers []int, cfg model.Config) float64 {
	gaps := stats.AdjacentGaps(numbers)
	if len(gaps) == 0 {
		return 0
	}
	total := 0
	maxGap := gaps[0]
	for _, g := range gaps {
		total += g
		if g > maxGap {
			maxGap = g
		}
	}
	avg := float64(total) / float64(len(gaps))

	ideal := float64(cfg.Pool-1) / float64(cfg.Select-1)
	score := avg - ideal
	if score < 0 {
		score = -score
	}
	if avg > cfg.MaxAvgGap {
		score += (avg - cfg.MaxAvgGap) * 10
	}
	if maxGap > cfg.MaxSingleGap {
		score += float64(maxGap-cfg.MaxSingleGap) * 10
	}
	return score
}

func contains(numbers []int, n int) bool {
	for _, v := range numbers {
		if v == n {
			return true
		}
	}
	return false
}
