// Package hash provides name-based dispatch over hash primitives.
//
// Every algorithm is registered once, at init time, under a canonical
// display name and any number of aliases. Lookups normalise the name by
// dropping everything that is not a letter or digit and upper-casing the
// rest, so these all resolve to the same algorithm:
//
//	SHA-256, sha256, Sha_256, 256
//
// An empty name resolves to DefaultAlgorithm (SHA-512).
//
// Example usage:
//
//	// One-shot digest
//	sum, err := hash.Digest([]byte("hello"), "md5", false)
//
//	// Digest size, e.g. to size a search candidate
//	n, err := hash.DigestSize("RIPEMD-160")
//	// Returns: 20
//
//	// Reusable state for tight loops
//	alg, err := hash.Lookup("sha256")
//	h := alg.New(true)
//
// Native implementations:
//   - SHA-256 uses github.com/minio/sha256-simd
//   - BLAKE2b-512 uses github.com/minio/blake2b-simd
//
// Other algorithms ignore the native flag. Both variants always produce
// identical digests.
//
// CRC-16 is CRC-16/ARC and CRC-16C is CRC-16/X-25 (the reflected CCITT
// polynomial with init and final XOR 0xFFFF). Both append their value
// big-endian, matching hash/crc32 and hash/crc64.
package hash
