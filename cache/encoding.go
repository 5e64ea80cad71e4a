package cache

import (
	"encoding/binary"
	"fmt"
)

// A cached value packs multiple records into one memcached item as
// length-prefixed frames: uint32 big-endian length, then the bytes.

func encodeRecords(records [][]byte) []byte {
	size := 0
	for _, r := range records {
		size += 4 + len(r)
	}
	buf := make([]byte, 0, size)
	var hdr [4]byte
	for _, r := range records {
		binary.BigEndian.PutUint32(hdr[:], uint32(len(r)))
		buf = append(buf, hdr[:]...)
		buf = append(buf, r...)
	}
	return buf
}

func decodeRecords(buf []byte) ([][]byte, error) {
	var records [][]byte
	for len(buf) > 0 {
		if len(buf) < 4 {
			return nil, fmt.Errorf("truncated record frame header")
		}
		n := int(binary.BigEndian.Uint32(buf[:4]))
		buf = buf[4:]
		if n > len(buf) {
			return nil, fmt.Errorf("record frame overruns cached value")
		}
		records = append(records, buf[:n:n])
		buf = buf[n:]
	}
	return records, nil
}
