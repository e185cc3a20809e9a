package crypto

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// FingerprintHexLen is the length of a hex-encoded SHA3-512 digest.
const FingerprintHexLen = 128

// SentinelParent stands in for the parents a chain has not produced yet.
const SentinelParent = "0"

// SumHex returns the lowercase hex SHA3-512 digest of data.
func SumHex(data []byte) string {
	sum := sha3.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// DigestJSON canonicalizes obj to compact sorted-key JSON and digests it.
func DigestJSON(obj any) (string, error) {
	blob, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return SumHex(blob), nil
}

// ChainFingerprint computes the fingerprint of a coil from its positional
// parents and the core's salts:
//
//	SHA3-512(parentA + parentB + genesis + resonanceHz)
func ChainFingerprint(genesis string, resonanceHz int64, parentA, parentB string) string {
	seed := parentA + parentB + genesis + strconv.FormatInt(resonanceHz, 10)
	return SumHex([]byte(seed))
}

// IsChainHex reports whether s is a well-formed chain fingerprint: exactly
// 128 hex characters, either case.
func IsChainHex(s string) bool {
	if len(s) != FingerprintHexLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
