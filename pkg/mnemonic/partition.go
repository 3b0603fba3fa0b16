package mnemonic

// Partitions returns every split of digits into exactly k non-empty contiguous
// segments. Longer leading segments come first: for "123" and k=2 the result
// is [12 3], [1 23]. It returns nil when k is outside 1..len(digits).
func Partitions(digits string, k int) [][]string {
	var out [][]string
	EachPartition(digits, k, nil, func(segments []string) bool {
		out = append(out, append([]string(nil), segments...))
		return true
	})
	return out
}

// EachPartition calls fn for each partition in the order Partitions returns
// them. When keep is non-nil, a segment for which keep returns false is never
// extended, so every partition containing it is skipped without changing the
// order of the rest. The segments slice is reused between calls. Enumeration
// stops when fn returns false.
func EachPartition(digits string, k int, keep func(segment string) bool, fn func(segments []string) bool) {
	if k < 1 || k > len(digits) {
		return
	}
	segments := make([]string, 0, k)
	walkPartitions(digits, k, segments, keep, fn)
}

func walkPartitions(rest string, k int, segments []string, keep func(string) bool, fn func([]string) bool) bool {
	if k == 1 {
		if keep != nil && !keep(rest) {
			return true
		}
		return fn(append(segments, rest))
	}

	// Leave at least one digit for each of the k-1 segments that follow.
	for length := len(rest) - (k - 1); length >= 1; length-- {
		head := rest[:length]
		if keep != nil && !keep(head) {
			continue
		}
		if !walkPartitions(rest[length:], k-1, append(segments, head), keep, fn) {
			return false
		}
	}
	return true
}
