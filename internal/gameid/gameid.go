// Package gameid generates sortable hand identifiers: UUIDv7 values encoded
// as 26-character Crockford base32 strings, so hand-history files list in
// chronological order.
package gameid

import (
	"crypto/rand"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New creates a new hand ID.
func New() string {
	return encodeBase32(newUUIDv7())
}

func newUUIDv7() [16]byte {
	var uuid [16]byte

	now := time.Now().UnixMilli()

	// 48-bit millisecond timestamp
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	// remaining 10 bytes random
	if _, err := rand.Read(uuid[6:]); err != nil {
		// crypto/rand never fails on supported platforms; a zeroed suffix
		// still yields a usable (if weaker) identifier
		for i := 6; i < 16; i++ {
			uuid[i] = 0
		}
	}

	uuid[6] = (uuid[6] & 0x0F) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3F) | 0x80 // variant 10

	return uuid
}

// encodeBase32 encodes 128 bits as 26 base32 characters (130 bits with the
// top two bits zero, matching TypeID's encoding).
func encodeBase32(uuid [16]byte) string {
	var out [26]byte

	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(uuid[i])
		lo = lo<<8 | uint64(uuid[i+8])
	}

	for i := 25; i >= 0; i-- {
		out[i] = alphabet[lo&0x1F]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}

	return string(out[:])
}
