package envelope_test

import (
	"strings"
	"testing"

	"bloomarc/internal/envelope"
	"bloomarc/internal/verify"
)

func TestGenerate_VerifiesClean(t *testing.T) {
	env, err := envelope.Generate(13, "2025-12-02T23:59:59Z")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	res := verify.Envelope(env)
	if !res.Passed() {
		t.Fatalf("generated envelope failed: digest=%v chain=%v ratio=%v",
			res.Digest.OK, res.Chain.OK, res.Ratio.OK)
	}
	if res.Chain.CoilsChecked != 13 {
		t.Fatalf("coils_checked = %d, want 13", res.Chain.CoilsChecked)
	}
}

func TestGenerate_ZeroCoils(t *testing.T) {
	env, err := envelope.Generate(0, "T")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	res := verify.Envelope(env)
	if !res.Chain.OK {
		t.Fatal("empty chain must be vacuously OK")
	}
	if !res.Digest.OK {
		t.Fatal("sealed empty core must pass the digest check")
	}
}

func TestDecode_RoundTripThroughWireFormat(t *testing.T) {
	// A generated envelope serialized and decoded again must still verify:
	// canonicalization has to survive the wire format byte for byte.
	env, err := envelope.Generate(5, "T")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	blob, err := envelope.Marshal(env)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	decoded, err := envelope.Decode(strings.NewReader(string(blob)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !verify.Envelope(decoded).Passed() {
		t.Fatal("envelope no longer verifies after a wire round trip")
	}
}

func TestDecode_WireFieldNames(t *testing.T) {
	const doc = `{
		"serpent_bloom_core": {
			"genesis": "G",
			"resonance_hz": 440,
			"generations": [{"coil": 0, "fingerprint": "ff", "parents": ["0", "0"]}],
			"phi_ratio_observed": 1.5,
			"eternal_fingerprint": "ab"
		},
		"external_fingerprints": [{"source": "s", "algorithm": "a", "value": "v"}]
	}`
	env, err := envelope.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	core := env.Core
	if core.Genesis != "G" || core.ResonanceHz != 440 {
		t.Fatalf("salts wrong: %q %d", core.Genesis, core.ResonanceHz)
	}
	if core.PhiRatioObserved != 1.5 || core.EternalFingerprint != "ab" {
		t.Fatalf("ratio/digest wrong: %v %q", core.PhiRatioObserved, core.EternalFingerprint)
	}
	if len(core.Generations) != 1 || core.Generations[0].Fingerprint != "ff" {
		t.Fatalf("generations wrong: %+v", core.Generations)
	}
	if len(env.ExternalFingerprints) != 1 || env.ExternalFingerprints[0].Source != "s" {
		t.Fatalf("externals wrong: %+v", env.ExternalFingerprints)
	}
}

func TestDecode_MissingKeysDefault(t *testing.T) {
	env, err := envelope.Decode(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("missing keys must not error: %v", err)
	}
	if len(env.Core.Generations) != 0 || len(env.ExternalFingerprints) != 0 {
		t.Fatalf("want neutral defaults, got %+v", env)
	}
	// Absent salts fall back to the producer's constants.
	if env.Core.ResonanceHz == 0 || env.Core.Genesis == "" {
		t.Fatalf("salt defaults missing: %q %d", env.Core.Genesis, env.Core.ResonanceHz)
	}

	// A coil without an explicit index takes its position.
	env, err = envelope.Decode(strings.NewReader(
		`{"serpent_bloom_core":{"generations":[{"fingerprint":"aa"},{"fingerprint":"bb"}]}}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if env.Core.Generations[1].Index != 1 {
		t.Fatalf("index = %d, want positional default 1", env.Core.Generations[1].Index)
	}
}

func TestDecode_InvalidJSONIsFatal(t *testing.T) {
	if _, err := envelope.Decode(strings.NewReader(`{"serpent_bloom_core":`)); err == nil {
		t.Fatal("truncated JSON must error")
	}
}
