package dictionary

import (
	"math"
	"sort"
)

// PartOfSpeechCount is one row of the part-of-speech histogram.
type PartOfSpeechCount struct {
	PartOfSpeech string
	Count        int
}

// SurveyStats summarizes the catalog columns. Frequency, dispersion and part of
// speech play no part in the search; the survey is the only place they surface.
type SurveyStats struct {
	Words             int
	MinRank           int
	MaxRank           int
	DistinctRanks     int
	MinFrequency      int
	MaxFrequency      int
	DistinctFreqs     int
	MinDispersion     float64
	MaxDispersion     float64
	WithMnemonic      int
	DistinctMnemonics int
	PartsOfSpeech     []PartOfSpeechCount
}

// Survey computes column statistics over the catalog.
func (c *Catalog) Survey() SurveyStats {
	stats := SurveyStats{Words: c.Len()}
	if stats.Words == 0 {
		return stats
	}

	stats.MinRank, stats.MinFrequency = math.MaxInt, math.MaxInt
	stats.MinDispersion, stats.MaxDispersion = math.Inf(1), math.Inf(-1)

	ranks := make(map[int]struct{}, stats.Words)
	freqs := make(map[int]struct{}, stats.Words)
	keys := make(map[string]struct{})
	pos := make(map[string]int)

	for _, w := range c.Words() {
		ranks[w.Rank] = struct{}{}
		freqs[w.Frequency] = struct{}{}
		pos[w.PartOfSpeech]++

		stats.MinRank = min(stats.MinRank, w.Rank)
		stats.MaxRank = max(stats.MaxRank, w.Rank)
		stats.MinFrequency = min(stats.MinFrequency, w.Frequency)
		stats.MaxFrequency = max(stats.MaxFrequency, w.Frequency)
		stats.MinDispersion = math.Min(stats.MinDispersion, w.Dispersion)
		stats.MaxDispersion = math.Max(stats.MaxDispersion, w.Dispersion)

		if w.HasMnemonic() {
			stats.WithMnemonic++
			keys[w.Mnemonic] = struct{}{}
		}
	}

	stats.DistinctRanks = len(ranks)
	stats.DistinctFreqs = len(freqs)
	stats.DistinctMnemonics = len(keys)

	stats.PartsOfSpeech = make([]PartOfSpeechCount, 0, len(pos))
	for p, n := range pos {
		stats.PartsOfSpeech = append(stats.PartsOfSpeech, PartOfSpeechCount{PartOfSpeech: p, Count: n})
	}
	sort.Slice(stats.PartsOfSpeech, func(i, j int) bool {
		a, b := stats.PartsOfSpeech[i], stats.PartsOfSpeech[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.PartOfSpeech < b.PartOfSpeech
	})
	return stats
}
