// Package envelope loads integrity envelopes and generates valid samples.
package envelope

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"bloomarc/internal/crypto"
	"bloomarc/internal/domain"
)

// Decode reads one envelope document from r. Only input that is not valid
// JSON at all is an error; documents missing expected keys decode to neutral
// values and are left for verification to fail.
func Decode(r io.Reader) (domain.Envelope, error) {
	var env domain.Envelope
	dec := json.NewDecoder(r)
	if err := dec.Decode(&env); err != nil {
		return domain.Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// Marshal renders an envelope for writing. BloomCore serializes its raw
// object, so sealed digests stay consistent with the emitted bytes.
func Marshal(env domain.Envelope) ([]byte, error) {
	return json.MarshalIndent(env, "", "  ")
}

// Load reads an envelope document from path.
func Load(path string) (domain.Envelope, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Envelope{}, err
	}
	defer f.Close()
	env, err := Decode(f)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%s: %w", path, err)
	}
	return env, nil
}

// Generate builds a sample envelope that verifies clean: nCoils recurrence
// links, the golden ratio as the observed ratio, and a sealed eternal
// fingerprint. The decorative parents field is populated the way the
// original producer writes it, truncated for display.
func Generate(nCoils int, genesis string) (domain.Envelope, error) {
	fingerprints := make([]string, 0, nCoils)
	coils := make([]domain.Coil, 0, nCoils)
	for i := 0; i < nCoils; i++ {
		var parentA, parentB string
		switch i {
		case 0:
			parentA, parentB = crypto.SentinelParent, crypto.SentinelParent
		case 1:
			parentA, parentB = crypto.SentinelParent, fingerprints[0]
		default:
			parentA, parentB = fingerprints[i-2], fingerprints[i-1]
		}
		fp := crypto.ChainFingerprint(genesis, domain.DefaultResonanceHz, parentA, parentB)
		fingerprints = append(fingerprints, fp)
		coils = append(coils, domain.Coil{
			Index:       i,
			Fingerprint: fp,
			Parents:     []string{displayParent(parentA), displayParent(parentB)},
		})
	}

	ratio := (1 + math.Sqrt(5)) / 2
	core := domain.NewBloomCore(genesis, domain.DefaultResonanceHz, coils, ratio)
	digest, err := crypto.DigestJSON(core.CanonicalBody())
	if err != nil {
		return domain.Envelope{}, err
	}
	core.Seal(digest)

	return domain.Envelope{
		Core: core,
		ExternalFingerprints: []domain.ExternalFingerprint{
			{Source: "bloomarc_generator", Algorithm: "SHA3-512", Value: digest},
		},
	}, nil
}

func displayParent(p string) string {
	if p == crypto.SentinelParent {
		return p
	}
	return p[:8] + "..."
}
