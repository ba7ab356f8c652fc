package stats

import "github.com/verte-zerg/lotto/internal/model"

// Sieve returns all primes up to n in ascending order.
func Sieve(n int) []int {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var primes []int
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return primes
}

func computePrimes(window []model.Draw, cfg model.Config) PrimeStats {
	primes := Sieve(cfg.Pool)
	isPrime := make(map[int]bool, len(primes))
	freq := make(map[int]int, len(primes))
	for _, p := range primes {
		isPrime[p] = true
		freq[p] = 0
	}
	for _, d := range window {
		for _, n := range d.Numbers {
			if isPrime[n] {
				freq[n]++
			}
		}
	}
	fraction := 0.0
	if cfg.Pool > 0 {
		fraction = float64(len(primes)) / float64(cfg.Pool)
	}
	return PrimeStats{Primes: primes, Frequency: freq, PoolFraction: fraction}
}
