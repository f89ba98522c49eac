package chem

import "hash/fnv"

// Hash64 computes the FNV-1a 64-bit hash over the UTF-8 concatenation of the
// given parts. FNV-1a is fully specified, byte-oriented and dependency-free,
// which makes libraries and scores reproducible across runs, platforms and
// reimplementations in other languages.
func Hash64(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p)) //nolint:errcheck // fnv.Write never fails
	}
	return h.Sum64()
}
