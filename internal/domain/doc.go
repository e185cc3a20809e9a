// Package domain defines the envelope document model.
//
// Contents
//
//   - Envelope, BloomCore, Coil, ExternalFingerprint: read-only views over one
//     input document (Envelope, BloomCore, Coil)
//   - Wire-format constants shared with the envelope generator
//     (DefaultGenesis, DefaultResonanceHz)
//
// # Notes
//
// BloomCore keeps the raw decoded object alongside its typed fields so the
// self-referential eternal_fingerprint can be excluded before canonical
// hashing. Numeric values are retained as json.Number, which means the source
// literals survive a decode/canonicalize round trip byte for byte. Documents
// are never mutated after decoding.
package domain
