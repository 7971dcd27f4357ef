package fuzzy

type trigram [3]rune

// Score returns the trigram similarity of a and b.
//
// Each string is padded with two leading spaces and one trailing space and
// split into overlapping rune trigrams, so a string of n runes has n+1
// trigrams and word starts weigh more than word ends. The score is the
// number of trigrams the strings share (each trigram used at most once)
// divided by the larger trigram count. Identical strings score 1 and
// strings with no trigram in common score 0.
func Score(a, b string) float64 {
	ta, tb := trigrams(a), trigrams(b)

	remaining := make(map[trigram]int, len(tb))
	for _, t := range tb {
		remaining[t]++
	}

	var shared int
	for _, t := range ta {
		if remaining[t] > 0 {
			remaining[t]--
			shared++
		}
	}

	return float64(shared) / float64(max(len(ta), len(tb)))
}

func trigrams(s string) []trigram {
	r := []rune("  " + s + " ")
	out := make([]trigram, 0, len(r)-2)
	for i := 0; i+2 < len(r); i++ {
		out = append(out, trigram{r[i], r[i+1], r[i+2]})
	}
	return out
}
