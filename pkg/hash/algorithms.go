package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	gohash "hash"
	"hash/crc32"
	"hash/crc64"
	"hash/fnv"

	"github.com/OneOfOne/xxhash"
	blake2bsimd "github.com/minio/blake2b-simd"
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// NewAlgorithm describes an algorithm for Register.
func NewAlgorithm(name string, size int, factory Factory, aliases ...string) *Algorithm {
	return &Algorithm{
		Name:    name,
		Size:    size,
		Aliases: aliases,
		factory: factory,
	}
}

// WithNative attaches an accelerated implementation.
func (a *Algorithm) WithNative(native Factory) *Algorithm {
	a.native = native
	return a
}

// keyless wraps constructors that only fail for invalid keys.
func keyless(f func([]byte) (gohash.Hash, error)) Factory {
	return func() gohash.Hash {
		h, err := f(nil)
		if err != nil {
			panic(err) // a nil key is always valid
		}
		return h
	}
}

func init() {
	crc32c := crc32.MakeTable(crc32.Castagnoli)
	crc32k := crc32.MakeTable(crc32.Koopman)
	crc64iso := crc64.MakeTable(crc64.ISO)
	crc64ecma := crc64.MakeTable(crc64.ECMA)

	for _, a := range []*Algorithm{
		NewAlgorithm("MD4", md4.Size, md4.New),
		NewAlgorithm("MD5", md5.Size, md5.New, "MD", "5"),
		NewAlgorithm("SHA-1", sha1.Size, sha1.New, "1"),
		NewAlgorithm("SHA-224", sha256.Size224, sha256.New224, "224"),
		NewAlgorithm("SHA-256", sha256.Size, sha256.New, "256").
			WithNative(sha256simd.New),
		NewAlgorithm("SHA-384", sha512.Size384, sha512.New384, "384"),
		NewAlgorithm("SHA-512", sha512.Size, sha512.New, "512", "Default"),
		NewAlgorithm("SHA-512/256", sha512.Size256, sha512.New512_256),
		NewAlgorithm("SHA3-224", 28, sha3.New224),
		NewAlgorithm("SHA3-256", 32, sha3.New256),
		NewAlgorithm("SHA3-384", 48, sha3.New384),
		NewAlgorithm("SHA3-512", 64, sha3.New512),
		NewAlgorithm("Keccak-256", 32, sha3.NewLegacyKeccak256, "Keccak"),
		NewAlgorithm("RIPEMD-160", ripemd160.Size, ripemd160.New, "RIPEMD", "RIP", "EMD", "160"),
		NewAlgorithm("BLAKE2b-256", blake2b.Size256, keyless(blake2b.New256)),
		NewAlgorithm("BLAKE2b-512", blake2b.Size, keyless(blake2b.New512), "BLAKE2b", "BLAKE2").
			WithNative(blake2bsimd.New512),
		NewAlgorithm("BLAKE2s-256", blake2s.Size, keyless(blake2s.New256), "BLAKE2s"),
		NewAlgorithm("BLAKE3", 32, func() gohash.Hash { return blake3.New(32, nil) }),
		NewAlgorithm("CRC-16", 2, NewCRC16),
		NewAlgorithm("CRC-16C", 2, NewCRC16CCITT, "CRC16CCITT", "CRC16X25"),
		NewAlgorithm("CRC-32", crc32.Size, func() gohash.Hash { return crc32.NewIEEE() }, "CRC"),
		NewAlgorithm("CRC-32C", crc32.Size, func() gohash.Hash { return crc32.New(crc32c) }, "Castagnoli"),
		NewAlgorithm("CRC-32K", crc32.Size, func() gohash.Hash { return crc32.New(crc32k) }, "Koopman"),
		NewAlgorithm("CRC-64", crc64.Size, func() gohash.Hash { return crc64.New(crc64iso) }, "CRC64ISO"),
		NewAlgorithm("CRC-64-ECMA", crc64.Size, func() gohash.Hash { return crc64.New(crc64ecma) }),
		NewAlgorithm("FNV-1a-32", 4, func() gohash.Hash { return fnv.New32a() }, "FNV32"),
		NewAlgorithm("FNV-1a-64", 8, func() gohash.Hash { return fnv.New64a() }, "FNV", "FNV64"),
		NewAlgorithm("xxHash32", 4, func() gohash.Hash { return xxhash.New32() }, "XXH32"),
		NewAlgorithm("xxHash64", 8, func() gohash.Hash { return xxhash.New64() }, "XXH64", "xxHash"),
	} {
		MustRegister(a)
	}
}
