package core

import "math"

// MixBits scrambles the bits of v so nearby inputs produce unrelated outputs
func MixBits(v uint64) uint64 {
	v ^= v >> 31
	v *= 0x7fb5d329728ea185
	v ^= v >> 27
	v *= 0x81dadef4bc2dd44d
	v ^= v >> 33
	return v
}

// Hash combines integer values into a well-distributed 64-bit hash
func Hash(values ...int64) uint64 {
	h := uint64(0x9e3779b97f4a7c15)
	for _, v := range values {
		h = MixBits(h ^ (uint64(v) + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)))
	}
	return h
}

// HashFloat hashes float values by their bit patterns
func HashFloat(values ...float64) uint64 {
	ints := make([]int64, len(values))
	for i, v := range values {
		ints[i] = int64(math.Float64bits(v))
	}
	return Hash(ints...)
}

// PermutationElement returns the i-th element of a pseudo-random permutation of [0, n)
// selected by seed. It visits each element exactly once as i ranges over [0, n).
func PermutationElement(i, n uint32, seed uint32) uint32 {
	w := n - 1
	w |= w >> 1
	w |= w >> 2
	w |= w >> 4
	w |= w >> 8
	w |= w >> 16
	for {
		i ^= seed
		i *= 0xe170893d
		i ^= seed >> 16
		i ^= (i & w) >> 4
		i ^= seed >> 8
		i *= 0x0929eb3f
		i ^= seed >> 23
		i ^= (i & w) >> 1
		i *= 1 | seed>>27
		i *= 0x6935fa69
		i ^= (i & w) >> 11
		i *= 0x74dcb303
		i ^= (i & w) >> 2
		i *= 0x9e501cc3
		i ^= (i & w) >> 2
		i *= 0xc860a3df
		i &= w
		i ^= i >> 5
		if i < n {
			break
		}
	}
	return (i + seed) % n
}
