package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest - фиксированный 256 битный хеш, ключ кэша сборки
type Digest [32]byte

// HashBytes хеширует содержимое файла.
func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// Combine строит составной ключ: H( content || part1 || part2 ... ).
// Порядок частей должен быть детерминированным.
func Combine(content Digest, parts ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p)
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (d Digest) String() string { return hex.EncodeToString(d[:]) }
