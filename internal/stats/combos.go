package stats

import (
	"sort"
	"strconv"
	"strings"

	"github.com/verte-zerg/lotto/internal/model"
)

func anyCombinationEnabled(cfg model.Config) bool {
	for _, enabled := range cfg.CombinationSizes {
		if enabled {
			return true
		}
	}
	return false
}

// computeCombinations counts sorted sub-combinations of each enabled size.
// Work grows as draws x C(K, size) per size; fine for K <= 6, a known
// scaling limit for much larger draws.
func computeCombinations(window []model.Draw, cfg model.Config) CombinationStats {
	sizes := map[int]map[string]int{}
	for size := 2; size <= 6; size++ {
		if cfg.CombinationSizes[size] {
			sizes[size] = map[string]int{}
		}
	}

	for _, d := range window {
		sorted := make([]int, len(d.Numbers))
		copy(sorted, d.Numbers)
		sort.Ints(sorted)
		for size, counts := range sizes {
			if size > len(sorted) {
				continue
			}
			forEachCombination(sorted, size, func(combo []int) {
				counts[comboKey(combo)]++
			})
		}
	}
	return CombinationStats{Sizes: sizes}
}

// forEachCombination visits every size-length combination of numbers in
// lexicographic order.
func forEachCombination(numbers []int, size int, visit func([]int)) {
	combo := make([]int, size)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == size {
			visit(combo)
			return
		}
		for i := start; i <= len(numbers)-(size-depth); i++ {
			combo[depth] = numbers[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

func comboKey(combo []int) string {
	parts := make([]string, len(combo))
	for i, n := range combo {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}
