package compiler

import "golang.org/x/exp/slices"

// ExtractAlphabet returns the sorted set of literal bytes used by pattern.
// It must see the surface pattern, before concatenation is inserted, so that
// a literal '.' is kept and no inserted operator is mistaken for a symbol.
func ExtractAlphabet(pattern string) []byte {
	var seen [256]bool
	var alphabet []byte
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case OpStar, OpUnion, OpLParen, OpRParen:
			continue
		}
		if !seen[c] {
			seen[c] = true
			alphabet = append(alphabet, c)
		}
	}
	slices.Sort(alphabet)
	return alphabet
}
