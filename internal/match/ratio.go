package match

// Ratio computes the longest-matching-block similarity 2*M/T between two
// strings, where M is the total length of matching blocks found by greedy
// longest-common-substring recursion and T is the combined length of both
// strings. Both strings empty yields 1.0. Operates on runes so accented
// characters count as single symbols.
func Ratio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingTotal(ar, br)) / float64(total)
}

// matchingTotal sums the lengths of all matching blocks: find the longest
// common block, then recurse into the regions before and after it.
func matchingTotal(a, b []rune) int {
	type region struct {
		alo, ahi, blo, bhi int
	}

	total := 0
	stack := []region{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		reg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, size := longestBlock(a, b, reg.alo, reg.ahi, reg.blo, reg.bhi)
		if size == 0 {
			continue
		}
		total += size
		stack = append(stack,
			region{reg.alo, i, reg.blo, j},
			region{i + size, reg.ahi, j + size, reg.bhi},
		)
	}
	return total
}

// longestBlock finds the longest block of runes common to a[alo:ahi] and
// b[blo:bhi]. Ties keep the earliest position in a, then in b, because only
// a strictly longer block replaces the current best.
func longestBlock(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, size int) {
	b2j := make(map[rune][]int)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > size {
				besti, bestj, size = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, size
}
