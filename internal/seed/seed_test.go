package seed_test

import (
	"strings"
	"testing"

	"bloomarc/internal/crypto"
	"bloomarc/internal/domain"
	"bloomarc/internal/seed"
)

func TestFromFingerprint_Deterministic(t *testing.T) {
	fp := crypto.SumHex([]byte("coil"))
	a := seed.FromFingerprint(fp)
	b := seed.FromFingerprint(fp)
	if a != b {
		t.Fatalf("same digest produced %v and %v", a, b)
	}
	if a < 0 || a >= 1 {
		t.Fatalf("seed %v outside [0,1)", a)
	}
}

func TestFromFingerprint_UsesFirstSixteenChars(t *testing.T) {
	fp := crypto.SumHex([]byte("coil"))
	other := fp[:16] + strings.Repeat("0", 112)
	if seed.FromFingerprint(fp) != seed.FromFingerprint(other) {
		t.Fatal("seed must depend only on the first 16 hex chars")
	}
}

func TestFromFingerprint_Degenerate(t *testing.T) {
	for _, fp := range []string{"", "abc", "0123456789abcde"} {
		if got := seed.FromFingerprint(fp); got != seed.Default {
			t.Fatalf("FromFingerprint(%q) = %v, want default", fp, got)
		}
	}
}

func TestExtract_SkipsMalformed(t *testing.T) {
	valid := crypto.SumHex([]byte("ok"))
	core := domain.NewBloomCore("T", 963, []domain.Coil{
		{Index: 0, Fingerprint: valid},
		{Index: 1, Fingerprint: "bogus"},
		{Index: 2, Fingerprint: valid},
	}, 1.618)

	seeds := seed.Extract(core)
	if len(seeds) != 2 {
		t.Fatalf("extracted %d seeds, want 2 (malformed skipped, not zero-filled)", len(seeds))
	}
}

func TestBlend(t *testing.T) {
	if got := seed.Blend(nil); got != seed.Default {
		t.Fatalf("Blend(nil) = %v, want default", got)
	}
	if got := seed.Blend([]float64{0.25}); got != 0.25 {
		t.Fatalf("Blend of one seed = %v, want it unchanged", got)
	}

	got := seed.Blend([]float64{0.9, 0.1, 0.5})
	if got < 0 || got >= 1 {
		t.Fatalf("blended seed %v outside [0,1)", got)
	}
	// Earlier seeds carry more weight: a blend led by 0.9 must land above
	// one led by 0.1 with the same tail.
	lo := seed.Blend([]float64{0.1, 0.1, 0.5})
	if got <= lo {
		t.Fatalf("phi weighting not front-loaded: %v <= %v", got, lo)
	}
}

func TestCompose(t *testing.T) {
	valid := crypto.SumHex([]byte("first"))
	core := domain.NewBloomCore("T", 963, []domain.Coil{
		{Index: 0, Fingerprint: valid},
		{Index: 1, Fingerprint: crypto.SumHex([]byte("second"))},
	}, 1.618)

	if got := seed.Compose(core, seed.BlendFirst); got != seed.FromFingerprint(valid) {
		t.Fatalf("first mode = %v, want seed of coil 0", got)
	}
	composite := seed.Compose(core, seed.BlendComposite)
	if composite < 0 || composite >= 1 {
		t.Fatalf("composite seed %v outside [0,1)", composite)
	}
	if got := seed.Compose(domain.BloomCore{}, seed.BlendComposite); got != seed.Default {
		t.Fatalf("empty chain composite = %v, want default", got)
	}
	if got := seed.Compose(core, "nonsense"); got != seed.Default {
		t.Fatalf("unknown mode = %v, want default", got)
	}
}
