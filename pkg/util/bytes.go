package util

import (
	"crypto/md5"
	"encoding/binary"
)

// HashBytes returns the md5 digest of b, used to checksum framed records.
func HashBytes(b []byte) []byte {
	sum := md5.Sum(b)
	return sum[:]
}

func Uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func BytesToUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
