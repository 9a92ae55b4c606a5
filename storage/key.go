package storage

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Key is a structured storage key. Keys are plain bytes, not hashes, so that
// entries sharing a prefix are adjacent and can be iterated with ForEach.
// Numeric parts are encoded fixed-width big-endian to preserve order.
// Variable-length parts (symbols, account identifiers) must come last.
type Key []byte

// MakeKey builds a key from a sequence of parts.
func MakeKey(parts ...interface{}) Key {
	var k Key
	for _, p := range parts {
		k = k.Append(p)
	}
	return k
}

// Append appends a part to the key, separated from the previous part by '/'.
func (k Key) Append(part interface{}) Key {
	if len(k) > 0 {
		k = append(k, '/')
	}
	switch p := part.(type) {
	case string:
		return append(k, p...)
	case []byte:
		return append(k, p...)
	case uint64:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], p)
		return append(k, b[:]...)
	default:
		panic(fmt.Sprintf("cannot use %T as a key part", part))
	}
}

// HasPrefix returns true if k starts with prefix.
func (k Key) HasPrefix(prefix Key) bool {
	return len(k) >= len(prefix) && string(k[:len(prefix)]) == string(prefix)
}

// Suffix returns the portion of k after prefix and its separator.
func (k Key) Suffix(prefix Key) []byte {
	s := k[len(prefix):]
	if len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	return s
}

func (k Key) String() string {
	s := new(strings.Builder)
	for _, c := range k {
		if c >= 0x20 && c < 0x7f {
			s.WriteByte(c)
		} else {
			fmt.Fprintf(s, "\\x%02x", c)
		}
	}
	return s.String()
}
