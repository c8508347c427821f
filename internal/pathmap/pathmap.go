// Package pathmap derives the on-disk shard id and file path for a cache
// key. It is a pure function of the key: no metadata about the key is
// ever persisted, only the path it maps to.
package pathmap

import (
	"encoding/hex"
	"path/filepath"

	"github.com/zeebo/xxh3"
)

// Shards is the fixed number of directories/lock-table slots the cache
// is partitioned into. It is not configurable: the non-blocking janitor
// and the fixed lock table are both sized to it.
const Shards = 4096

// Mapped is the result of mapping a key: which shard it belongs to and
// the absolute path of the file that would hold it.
type Mapped struct {
	ShardID uint16
	Dir     string // <root>/<3 hex chars>
	Path    string // <root>/<3 hex chars>/<29 hex chars>
}

// Map computes the shard id and absolute path for key under root.
//
// The key is hashed with a 128-bit non-cryptographic hash (xxh3), rendered
// as 32 lowercase hex characters. The first 3 characters select the shard
// (0x000-0xfff, 4096 possibilities); the remaining 29 characters are the
// file name within that shard directory.
func Map(root, key string) Mapped {
	h := xxh3.Hash128([]byte(key))
	var buf [16]byte
	// Big-endian render of the 128-bit hash, matching the header's own
	// big-endian convention for the on-disk format.
	putUint64BE(buf[0:8], h.Hi)
	putUint64BE(buf[8:16], h.Lo)

	hexed := hex.EncodeToString(buf[:])
	shardHex, fileHex := hexed[:3], hexed[3:]

	shardID := uint16(0)
	for i := 0; i < len(shardHex); i++ {
		shardID = shardID<<4 | uint16(hexDigit(shardHex[i]))
	}

	dir := filepath.Join(root, shardHex)
	return Mapped{
		ShardID: shardID,
		Dir:     dir,
		Path:    filepath.Join(dir, fileHex),
	}
}

func putUint64BE(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return 0
	}
}

// ShardHex renders a shard id as the 3-character lowercase hex directory
// name used on disk (e.g. 0 -> "000", 4095 -> "fff").
func ShardHex(id uint16) string {
	const hexdigits = "0123456789abcdef"
	return string([]byte{
		hexdigits[(id>>8)&0xf],
		hexdigits[(id>>4)&0xf],
		hexdigits[id&0xf],
	})
}
