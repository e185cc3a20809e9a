// Package verify implements the envelope integrity checks.
//
// Contents
//
//   - Digest: recompute the canonical core digest, excluding the
//     self-referential eternal_fingerprint field
//   - Chain: walk the fingerprint recurrence with positionally resolved
//     parents, flagging index, format and mismatch faults per coil
//   - Ratio: compare the observed ratio against the golden ratio within a
//     fixed serialization tolerance
//   - External: summarize external fingerprint records (reported, never
//     recomputed)
//   - Envelope: compose the four checks into one Result
//
// # Notes
//
// Verification is a pure function of the document: no I/O, no mutation, no
// state across calls. Malformed-but-parseable input degrades to a failing
// Result rather than an error. A coil that fails format validation still
// occupies its chain position, so its (invalid) value feeds the recurrence of
// every later coil — one corruption is meant to poison all descendants.
package verify
