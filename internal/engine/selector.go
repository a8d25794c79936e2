package engine

import "unicode/utf16"

// Select maps text to a stable index in [0, n). The same text and n always
// give the same index, on every platform and across restarts, so repeating a
// question repeats its answer while different wordings spread over the
// candidates.
//
// n must be positive.
func Select(text string, n int) int {
	if n <= 0 {
		panic("engine: Select called with an empty candidate set")
	}
	h := int64(Hash(text))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// Hash is the 31-multiplier rolling hash over the UTF-16 code units of text,
// wrapping as a 32-bit two's-complement integer. Invalid UTF-8 sequences are
// hashed as U+FFFD.
func Hash(text string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(text)) {
		h = h*31 + int32(u)
	}
	return h
}
