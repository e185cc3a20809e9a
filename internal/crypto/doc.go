// Package crypto exposes the fixed primitives the envelope format is built on.
//
// Contents
//
//   - SHA3-512 hex digests of raw bytes (SumHex)
//   - Canonical JSON digests for self-referential integrity fields (DigestJSON)
//   - The chain fingerprint recurrence (ChainFingerprint)
//   - Fingerprint format validation (IsChainHex)
//
// # Notes
//
// The hash algorithm is a compatibility constant of the envelope format, not
// a pluggable strategy: substituting another digest breaks interoperability
// with every existing envelope. Canonical JSON means lexicographically sorted
// object keys and no insignificant whitespace, which encoding/json produces
// for map values; callers must hand DigestJSON maps whose numbers are
// json.Number so the producer's literals pass through unchanged.
package crypto
