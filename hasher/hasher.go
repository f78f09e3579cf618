// ════════════════════════════════════════════════════════════════════════════════════════════════
// 🔑 KEY DIGESTS
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Open-Addressing Hash Table
// Component: Hasher Capability
//
// Description:
//   A Hasher turns a key into a deterministic 64-bit digest. The table reduces the digest
//   modulo its capacity to find a key's natural slot; collisions are resolved by probing,
//   never by the hasher.
//
// Contract:
//   - Equal keys must produce equal digests
//   - Distinct keys may collide
//   - Digests carry no security guarantees
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package hasher

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/sha3"

	"openhash/utils"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CAPABILITY
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Hasher produces the digest used to place keys of type K.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// Func adapts a plain function to the Hasher interface.
type Func[K any] func(key K) uint64

// Hash calls f(key).
func (f Func[K]) Hash(key K) uint64 { return f(key) }

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// STRING DIGESTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// String is the djb2 digest: h = h*33 + c over every byte, seeded with 5381.
// Arithmetic wraps at 64 bits.
type String struct{}

//go:nosplit
//go:inline
func (String) Hash(key string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i])
	}
	return h
}

const (
	prime64_1 = 0x9E3779B185EBCA87
	prime64_2 = 0xC2B2AE3D27D4EB4F
)

// XXH is an xxHash-style mixer: 8-byte little-endian lanes folded with
// rotate-multiply rounds, then a full avalanche.
type XXH struct{}

//go:nosplit
func (XXH) Hash(key string) uint64 {
	n := len(key)
	h := uint64(n) * prime64_1

	i := 0
	for ; n-i >= 8; i += 8 {
		v := load64(key[i:])
		h ^= bits.RotateLeft64(v*prime64_2, 31)
		h = bits.RotateLeft64(h, 27) * prime64_1
	}
	if i < n {
		var t uint64
		for j := n - 1; j >= i; j-- {
			t = t<<8 | uint64(key[j])
		}
		h ^= bits.RotateLeft64(t*prime64_2, 11)
		h = bits.RotateLeft64(h, 7) * prime64_1
	}

	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_1
	h ^= h >> 32
	return h
}

// load64 reads 8 bytes of s as a little-endian word. len(s) must be >= 8.
//
//go:nosplit
//go:inline
func load64(s string) uint64 {
	_ = s[7] // bounds check hint
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

// Keccak folds the first 8 bytes of Keccak-256(key), big-endian, into the digest.
// Much slower than String or XXH; useful when keys are adversarially clustered.
type Keccak struct{}

func (Keccak) Hash(key string) uint64 {
	d := sha3.NewLegacyKeccak256()
	d.Write(utils.S2b(key))
	var sum [32]byte
	d.Sum(sum[:0])
	return binary.BigEndian.Uint64(sum[:8])
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INTEGER DIGESTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer scrambles integer keys with a Murmur3 finalizer so that runs of
// sequential keys do not land in one contiguous cluster.
type Integer[K integer] struct{}

//go:nosplit
//go:inline
func (Integer[K]) Hash(key K) uint64 {
	return utils.Mix64(uint64(key))
}
