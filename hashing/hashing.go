// Package hashing provides content digests with hex encoding. The default
// algorithm is SHA-256; a BLAKE2b variant is provided for callers hashing
// large inputs.
package hashing

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// Size is the byte length of a Digest.
const Size = sha256.Size

// Digest is a SHA-256 hash value.
type Digest [Size]byte

// LengthError reports raw digest material of the wrong length.
type LengthError struct {
	Got      int
	Expected int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("digest length mismatch, got %d bytes, expected %d bytes", e.Got, e.Expected)
}

// New creates a Digest from raw bytes as is.
func New(value []byte) (Digest, error) {
	var d Digest
	if len(value) != Size {
		return d, &LengthError{Got: len(value), Expected: Size}
	}
	copy(d[:], value)
	return d, nil
}

// FromHex creates a Digest from hex encoded bytes as is.
func FromHex(s string) (Digest, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("error converting hex string to digest: %w", err)
	}
	return New(raw)
}

// FromReader calculates the digest of all content read from a reader.
func FromReader(r io.Reader) (Digest, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, err
	}
	return sum(h), nil
}

// FromFile calculates the digest of a file's contents.
func FromFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	return FromReader(bufio.NewReader(f))
}

// FromBuffers calculates the digest of a sequence of byte buffers hashed in
// order.
func FromBuffers[S ~[]byte | ~string](buffers ...S) Digest {
	h := sha256.New()
	for _, buffer := range buffers {
		h.Write([]byte(buffer))
	}
	return sum(h)
}

// FromBytes calculates the digest of a single byte buffer.
func FromBytes[S ~[]byte | ~string](bytes S) Digest {
	return FromBuffers(bytes)
}

// Hex encodes the digest value as a lower-case hex string.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns the digest value.
func (d Digest) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, d[:])
	return out
}

// String formats the digest as upper-case hex.
func (d Digest) String() string {
	return fmt.Sprintf("%X", d[:])
}

// HexDigest calculates the SHA-256 hash of the given parts hashed in order
// and returns its hex representation.
func HexDigest[S ~[]byte | ~string](parts ...S) string {
	return FromBuffers(parts...).Hex()
}

// HexDigestFile calculates the SHA-256 hash of a (potentially large) file and
// returns its hex representation.
func HexDigestFile(path string) (string, error) {
	d, err := FromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to digest file: %w", err)
	}
	return d.Hex(), nil
}

// Blake2bDigest calculates the BLAKE2b-256 hash of the given parts hashed in
// order and returns its hex representation.
func Blake2bDigest[S ~[]byte | ~string](parts ...S) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// New256 fails only for oversized keys; no key is passed here.
		panic(err)
	}
	for _, part := range parts {
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func sum(h hash.Hash) Digest {
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
