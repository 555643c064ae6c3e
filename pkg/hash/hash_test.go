package hash

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestDigestKnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		input     string
		want      string
	}{
		{name: "md5 empty", algorithm: "MD5", input: "", want: "d41d8cd98f00b204e9800998ecf8427e"},
		{name: "md5 hello", algorithm: "md5", input: "hello", want: "5d41402abc4b2a76b9719d911017c592"},
		{name: "md4 empty", algorithm: "MD4", input: "", want: "31d6cfe0d16ae931b73c59d7e0c089c0"},
		{name: "sha1 empty", algorithm: "SHA-1", input: "", want: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{name: "sha1 hello", algorithm: "sha1", input: "hello", want: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{name: "sha256 abc", algorithm: "SHA256", input: "abc", want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{name: "sha3-256 empty", algorithm: "SHA3-256", input: "", want: "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{name: "keccak empty", algorithm: "keccak", input: "", want: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{name: "ripemd160 empty", algorithm: "RIP", input: "", want: "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
		{name: "blake2s empty", algorithm: "BLAKE2s", input: "", want: "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"},
		{name: "blake3 empty", algorithm: "BLAKE3", input: "", want: "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
		{name: "crc16 arc check", algorithm: "CRC16", input: "123456789", want: "bb3d"},
		{name: "crc16 x25 check", algorithm: "CRC16CCITT", input: "123456789", want: "906e"},
		{name: "crc32 check", algorithm: "CRC", input: "123456789", want: "cbf43926"},
		{name: "crc32c check", algorithm: "Castagnoli", input: "123456789", want: "e3069283"},
		{name: "crc64 iso check", algorithm: "CRC-64", input: "123456789", want: "b90956c775a41001"},
		{name: "crc64 ecma check", algorithm: "CRC-64-ECMA", input: "123456789", want: "995dc9bbdf1939fa"},
		{name: "fnv32 empty", algorithm: "FNV32", input: "", want: "811c9dc5"},
		{name: "fnv64 empty", algorithm: "FNV", input: "", want: "cbf29ce484222325"},
		{name: "xxh32 empty", algorithm: "XXH32", input: "", want: "02cc5d05"},
		{name: "xxh64 empty", algorithm: "xxHash", input: "", want: "ef46db3751d8e999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Digest([]byte(tt.input), tt.algorithm, false)
			if err != nil {
				t.Fatalf("Digest(%q, %s) error = %v", tt.input, tt.algorithm, err)
			}
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("Digest(%q, %s) = %x, want %s", tt.input, tt.algorithm, got, tt.want)
			}
		})
	}
}

func TestLookupAliases(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
		size  int
	}{
		{name: "sha512", names: []string{"SHA-512", "sha512", "512", "default", ""}, want: "SHA-512", size: 64},
		{name: "sha256", names: []string{"SHA-256", "sha256", "Sha_256", "256"}, want: "SHA-256", size: 32},
		{name: "sha384", names: []string{"SHA384", "384"}, want: "SHA-384", size: 48},
		{name: "md5", names: []string{"MD5", "md", "5"}, want: "MD5", size: 16},
		{name: "ripemd", names: []string{"RIPEMD-160", "ripemd", "rip", "emd", "160"}, want: "RIPEMD-160", size: 20},
		{name: "crc32c", names: []string{"CRC32C", "castagnoli"}, want: "CRC-32C", size: 4},
		{name: "crc16c", names: []string{"CRC16C", "crc16ccitt"}, want: "CRC-16C", size: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range tt.names {
				a, err := Lookup(n)
				if err != nil {
					t.Fatalf("Lookup(%q) error = %v", n, err)
				}
				if a.Name != tt.want {
					t.Errorf("Lookup(%q) = %s, want %s", n, a.Name, tt.want)
				}
				size, err := DigestSize(n)
				if err != nil {
					t.Fatalf("DigestSize(%q) error = %v", n, err)
				}
				if size != tt.size {
					t.Errorf("DigestSize(%q) = %d, want %d", n, size, tt.size)
				}
			}
		})
	}
}

func TestLookupUnsupported(t *testing.T) {
	for _, name := range []string{"SHA-999", "whirlpool", "crc8"} {
		_, err := Lookup(name)
		if !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnsupportedAlgorithm", name, err)
		}
	}

	_, err := Digest([]byte("x"), "nope", false)
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("Digest() error = %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestRegisteredSizes(t *testing.T) {
	for _, name := range Supported() {
		a, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", name, err)
		}
		for _, native := range []bool{false, true} {
			if got := a.New(native).Size(); got != a.Size {
				t.Errorf("%s (native=%v) Size() = %d, registered %d", name, native, got, a.Size)
			}
			if got := len(a.Sum([]byte("size"), native)); got != a.Size {
				t.Errorf("%s (native=%v) digest length = %d, registered %d", name, native, got, a.Size)
			}
		}
	}
}

func TestNativeMatchesPortable(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("hello"),
		bytes.Repeat([]byte{0xA5}, 1000),
	}

	for _, name := range []string{"SHA-256", "BLAKE2b-512"} {
		a, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", name, err)
		}
		if !a.HasNative() {
			t.Fatalf("%s has no native implementation", name)
		}
		for _, in := range inputs {
			if p, n := a.Sum(in, false), a.Sum(in, true); !bytes.Equal(p, n) {
				t.Errorf("%s native digest %x differs from portable %x", name, n, p)
			}
		}
	}
}

func TestSumReader(t *testing.T) {
	a, err := Lookup("md5")
	if err != nil {
		t.Fatal(err)
	}
	got, err := a.SumReader(strings.NewReader("hello"), false)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != "5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("SumReader() = %x", got)
	}
}

func TestRegisterDuplicateAlias(t *testing.T) {
	err := Register(NewAlgorithm("Fake", 2, NewCRC16, "sha_256"))
	if err == nil {
		t.Fatal("Register() with a taken alias should fail")
	}
	if _, err := Lookup("fake"); err == nil {
		t.Error("failed registration must not leave partial aliases behind")
	}
}

func TestCRC16Reset(t *testing.T) {
	h := NewCRC16CCITT()
	_, _ = h.Write([]byte("garbage"))
	h.Reset()
	_, _ = h.Write([]byte("123456789"))
	if got := hex.EncodeToString(h.Sum(nil)); got != "906e" {
		t.Errorf("CRC-16C after Reset = %s, want 906e", got)
	}
}
