package crypto_test

import (
	"strings"
	"testing"

	"bloomarc/internal/crypto"
)

func TestSumHex_KnownVector(t *testing.T) {
	// SHA3-512 of the empty string.
	const want = "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a6" +
		"15b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"
	if got := crypto.SumHex(nil); got != want {
		t.Fatalf("SumHex(nil) = %s, want %s", got, want)
	}
}

func TestSumHex_LowercaseAndLength(t *testing.T) {
	got := crypto.SumHex([]byte("bloom"))
	if len(got) != crypto.FingerprintHexLen {
		t.Fatalf("digest length = %d, want %d", len(got), crypto.FingerprintHexLen)
	}
	if got != strings.ToLower(got) {
		t.Fatalf("digest not lowercase: %s", got)
	}
}

func TestChainFingerprint_GenesisCoil(t *testing.T) {
	// Coil 0 hashes the sentinel parents, genesis and resonance in order.
	want := crypto.SumHex([]byte("00T963"))
	got := crypto.ChainFingerprint("T", 963, "0", "0")
	if got != want {
		t.Fatalf("ChainFingerprint = %s, want %s", got, want)
	}
}

func TestDigestJSON_SortsKeysAndCompacts(t *testing.T) {
	a, err := crypto.DigestJSON(map[string]any{"b": "2", "a": "1"})
	if err != nil {
		t.Fatalf("DigestJSON: %v", err)
	}
	b, err := crypto.DigestJSON(map[string]any{"a": "1", "b": "2"})
	if err != nil {
		t.Fatalf("DigestJSON: %v", err)
	}
	if a != b {
		t.Fatal("digest depends on key insertion order")
	}
	if want := crypto.SumHex([]byte(`{"a":"1","b":"2"}`)); a != want {
		t.Fatalf("digest = %s, want digest of compact sorted JSON", a)
	}
}

func TestIsChainHex(t *testing.T) {
	valid := crypto.SumHex([]byte("x"))
	if !crypto.IsChainHex(valid) {
		t.Fatalf("valid digest rejected: %s", valid)
	}
	if !crypto.IsChainHex(strings.ToUpper(valid)) {
		t.Fatal("uppercase hex rejected")
	}
	for _, s := range []string{
		"",
		"0",
		valid[:127],
		valid + "0",
		valid[:127] + "g",
	} {
		if crypto.IsChainHex(s) {
			t.Fatalf("malformed fingerprint accepted: %q", s)
		}
	}
}
