// Package seed maps verified chain fingerprints into the simulation's
// parameter space: a single real seed in [0, 1).
package seed

import (
	"math"
	"strconv"

	"bloomarc/internal/crypto"
	"bloomarc/internal/domain"
)

// Default is the degenerate-case seed used when no fingerprint material is
// available. It is part of the format: two implementations given the same
// empty input must still agree on the trajectory.
const Default = 0.123456789

// maxExact is 2^53, the largest integer a float64 represents exactly.
// Reducing modulo it before normalizing guarantees no precision loss.
const maxExact = 1 << 53

// Blend modes accepted by Compose.
const (
	BlendComposite = "composite"
	BlendFirst     = "first"
)

var phi = (1 + math.Sqrt(5)) / 2

// FromFingerprint collapses a hex digest into a seed in [0, 1) using its
// first 16 hex characters (64 bits). Digests shorter than 16 characters, or
// absent, yield Default — a defined degenerate case, not an error.
func FromFingerprint(fingerprint string) float64 {
	if len(fingerprint) < 16 {
		return Default
	}
	v, err := strconv.ParseUint(fingerprint[:16], 16, 64)
	if err != nil {
		return Default
	}
	return float64(v%maxExact) / maxExact
}

// Extract derives a seed from every format-valid fingerprint in the chain.
// Malformed entries are skipped, not zero-filled.
func Extract(core domain.BloomCore) []float64 {
	var seeds []float64
	for _, coil := range core.Generations {
		if crypto.IsChainHex(coil.Fingerprint) {
			seeds = append(seeds, FromFingerprint(coil.Fingerprint))
		}
	}
	return seeds
}

// Blend folds multiple seeds into one composite seed in [0, 1).
//
// Weights are proportional to phi^(-i), so earlier (foundational) coils
// dominate. A single seed passes through unchanged; zero seeds yield Default.
func Blend(seeds []float64) float64 {
	switch len(seeds) {
	case 0:
		return Default
	case 1:
		return seeds[0]
	}

	weights := make([]float64, len(seeds))
	var total float64
	for i := range seeds {
		weights[i] = math.Pow(phi, -float64(i))
		total += weights[i]
	}

	var blended float64
	for i, s := range seeds {
		blended += weights[i] / total * s
	}
	return math.Mod(blended, 1.0)
}

// Compose selects the simulation seed for a core under the given blend mode:
// BlendComposite blends every extracted seed, BlendFirst takes the first coil
// only. Unknown modes and empty chains fall back to Default.
func Compose(core domain.BloomCore, mode string) float64 {
	seeds := Extract(core)
	switch {
	case mode == BlendComposite:
		return Blend(seeds)
	case mode == BlendFirst && len(seeds) > 0:
		return seeds[0]
	default:
		return Default
	}
}
