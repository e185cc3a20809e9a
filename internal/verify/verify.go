package verify

import (
	"math"

	"bloomarc/internal/crypto"
	"bloomarc/internal/domain"
)

// truePhi is the golden ratio at full double precision.
var truePhi = (1 + math.Sqrt(5)) / 2

// PhiTolerance absorbs float round-trip serialization noise, nothing more.
// It is tied to the producer's serialization format; do not widen it.
const PhiTolerance = 1e-9

// Digest recomputes the canonical SHA3-512 digest over the core with
// eternal_fingerprint excluded and compares it to the stored value.
func Digest(core domain.BloomCore) DigestCheck {
	recomputed, err := crypto.DigestJSON(core.CanonicalBody())
	if err != nil {
		return DigestCheck{Stored: core.EternalFingerprint}
	}
	return DigestCheck{
		OK:         core.EternalFingerprint == recomputed,
		Stored:     core.EternalFingerprint,
		Recomputed: recomputed,
	}
}

// Chain verifies the fingerprint recurrence position by position.
//
// Parents are resolved by position, never from the decorative parents field:
// coil 0 descends from the sentinel pair, coil 1 from the sentinel and coil
// 0, coil n from coils n-2 and n-1. An empty chain is vacuously OK.
func Chain(core domain.BloomCore) ChainCheck {
	check := ChainCheck{
		OK:           true,
		CoilsChecked: len(core.Generations),
		BadCoils:     []int{},
		Details:      []ChainDetail{},
	}
	if len(core.Generations) == 0 {
		return check
	}

	fingerprints := make([]string, 0, len(core.Generations))
	for i, coil := range core.Generations {
		if coil.Index != i {
			expected, actual := i, coil.Index
			check.BadCoils = append(check.BadCoils, coil.Index)
			check.Details = append(check.Details, ChainDetail{
				Coil:          coil.Index,
				Error:         ErrIndexMismatch,
				ExpectedIndex: &expected,
				ActualIndex:   &actual,
			})
		}

		if !crypto.IsChainHex(coil.Fingerprint) {
			expectedLen, actualLen := crypto.FingerprintHexLen, len(coil.Fingerprint)
			check.BadCoils = append(check.BadCoils, coil.Index)
			check.Details = append(check.Details, ChainDetail{
				Coil:        coil.Index,
				Error:       ErrInvalidFormat,
				ExpectedLen: &expectedLen,
				ActualLen:   &actualLen,
			})
			// The malformed value still takes up its chain position.
			fingerprints = append(fingerprints, coil.Fingerprint)
			continue
		}

		var parentA, parentB string
		switch i {
		case 0:
			parentA, parentB = crypto.SentinelParent, crypto.SentinelParent
		case 1:
			parentA, parentB = crypto.SentinelParent, fingerprints[0]
		default:
			parentA, parentB = fingerprints[i-2], fingerprints[i-1]
		}
		expected := crypto.ChainFingerprint(core.Genesis, core.ResonanceHz, parentA, parentB)

		if coil.Fingerprint != expected {
			check.BadCoils = append(check.BadCoils, coil.Index)
			check.Details = append(check.Details, ChainDetail{
				Coil:     coil.Index,
				Error:    ErrFingerprintBroken,
				Expected: Truncate(expected),
				Actual:   Truncate(coil.Fingerprint),
			})
		}
		fingerprints = append(fingerprints, coil.Fingerprint)
	}

	check.OK = len(check.BadCoils) == 0
	return check
}

// Ratio compares the observed ratio against the golden ratio.
func Ratio(core domain.BloomCore) RatioCheck {
	delta := math.Abs(core.PhiRatioObserved - truePhi)
	return RatioCheck{
		OK:        delta < PhiTolerance,
		Observed:  core.PhiRatioObserved,
		Expected:  truePhi,
		Delta:     delta,
		Tolerance: PhiTolerance,
	}
}

// External summarizes the external fingerprint block without recomputing
// anything.
func External(env domain.Envelope) ExternalCheck {
	check := ExternalCheck{
		Count:      len(env.ExternalFingerprints),
		Sources:    make([]string, 0, len(env.ExternalFingerprints)),
		Algorithms: make([]string, 0, len(env.ExternalFingerprints)),
	}
	for _, ext := range env.ExternalFingerprints {
		check.Sources = append(check.Sources, ext.Source)
		check.Algorithms = append(check.Algorithms, ext.Algorithm)
	}
	return check
}

// Envelope runs every check over one document.
func Envelope(env domain.Envelope) Result {
	return Result{
		Digest:   Digest(env.Core),
		Chain:    Chain(env.Core),
		Ratio:    Ratio(env.Core),
		External: External(env),
	}
}

// Truncate shortens a digest for display. Comparison always happens on full
// values before this is applied.
func Truncate(digest string) string {
	if len(digest) <= 32 {
		return digest
	}
	return digest[:32] + "..."
}
