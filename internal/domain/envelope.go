package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const (
	// DefaultGenesis is assumed when a core omits its genesis timestamp.
	DefaultGenesis = "2025-12-02T23:59:59Z"

	// DefaultResonanceHz is the recurrence salt written by the original
	// generator; cores that omit resonance_hz verify against it.
	DefaultResonanceHz = 963
)

// Envelope is the top-level hash-linked document.
type Envelope struct {
	Core                 BloomCore             `json:"serpent_bloom_core"`
	ExternalFingerprints []ExternalFingerprint `json:"external_fingerprints"`
}

// UnmarshalJSON treats a missing core as an empty one, so sparse documents
// decode with neutral defaults and degrade to FAIL instead of erroring.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var doc struct {
		Core                 json.RawMessage       `json:"serpent_bloom_core"`
		ExternalFingerprints []ExternalFingerprint `json:"external_fingerprints"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Core) == 0 {
		doc.Core = []byte("{}")
	}
	if err := e.Core.UnmarshalJSON(doc.Core); err != nil {
		return err
	}
	e.ExternalFingerprints = doc.ExternalFingerprints
	return nil
}

// ExternalFingerprint is a descriptive digest record from an outside source.
// It is reported but never recomputed.
type ExternalFingerprint struct {
	Source    string `json:"source"`
	Algorithm string `json:"algorithm"`
	Value     string `json:"value"`
}

// Coil is one link of the fingerprint chain.
//
// Parents is display decoration copied from the producer; verification trusts
// only parents recomputed from chain position.
type Coil struct {
	Index       int      `json:"coil"`
	Fingerprint string   `json:"fingerprint"`
	Parents     []string `json:"parents,omitempty"`
}

// BloomCore carries the chain, its salts and the self-referential digest.
type BloomCore struct {
	Genesis            string
	ResonanceHz        int64
	Generations        []Coil
	PhiRatioObserved   float64
	EternalFingerprint string

	raw map[string]any
}

// NewBloomCore builds an unsealed core from explicit fields, constructing the
// raw object the canonical digest is computed over. Used by the generator;
// decoded documents build their raw object from the source bytes instead.
func NewBloomCore(genesis string, resonanceHz int64, generations []Coil, phiRatio float64) BloomCore {
	gens := make([]any, len(generations))
	for i, g := range generations {
		m := map[string]any{
			"coil":        json.Number(strconv.Itoa(g.Index)),
			"fingerprint": g.Fingerprint,
		}
		if g.Parents != nil {
			ps := make([]any, len(g.Parents))
			for j, p := range g.Parents {
				ps[j] = p
			}
			m["parents"] = ps
		}
		gens[i] = m
	}
	return BloomCore{
		Genesis:          genesis,
		ResonanceHz:      resonanceHz,
		Generations:      generations,
		PhiRatioObserved: phiRatio,
		raw: map[string]any{
			"genesis":            genesis,
			"resonance_hz":       json.Number(strconv.FormatInt(resonanceHz, 10)),
			"generations":        gens,
			"phi_ratio_observed": json.Number(strconv.FormatFloat(phiRatio, 'g', -1, 64)),
		},
	}
}

// Seal records the eternal fingerprint on an unsealed core.
func (c *BloomCore) Seal(digest string) {
	c.EternalFingerprint = digest
	c.raw["eternal_fingerprint"] = digest
}

// CanonicalBody returns a copy of the raw object with eternal_fingerprint
// removed, ready for canonical digesting. A core decoded from an empty or
// missing object yields an empty body.
func (c BloomCore) CanonicalBody() map[string]any {
	body := make(map[string]any, len(c.raw))
	for k, v := range c.raw {
		if k == "eternal_fingerprint" {
			continue
		}
		body[k] = v
	}
	return body
}

// UnmarshalJSON decodes a core while keeping the raw object. Missing fields
// fall back to neutral values so a sparse document still verifies (and
// fails) instead of erroring. A coil record without an explicit index is
// assigned its position, matching the producer's defaulting.
func (c *BloomCore) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	raw := map[string]any{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	c.raw = raw

	c.Genesis = DefaultGenesis
	if g, ok := raw["genesis"].(string); ok {
		c.Genesis = g
	}
	c.ResonanceHz = DefaultResonanceHz
	if n, ok := raw["resonance_hz"].(json.Number); ok {
		if v, err := n.Int64(); err == nil {
			c.ResonanceHz = v
		}
	}
	if n, ok := raw["phi_ratio_observed"].(json.Number); ok {
		c.PhiRatioObserved, _ = n.Float64()
	}
	if s, ok := raw["eternal_fingerprint"].(string); ok {
		c.EternalFingerprint = s
	}

	gens, _ := raw["generations"].([]any)
	c.Generations = make([]Coil, 0, len(gens))
	for i, g := range gens {
		coil := Coil{Index: i}
		m, ok := g.(map[string]any)
		if !ok {
			c.Generations = append(c.Generations, coil)
			continue
		}
		if n, ok := m["coil"].(json.Number); ok {
			if v, err := n.Int64(); err == nil {
				coil.Index = int(v)
			}
		}
		if fp, ok := m["fingerprint"].(string); ok {
			coil.Fingerprint = fp
		}
		if ps, ok := m["parents"].([]any); ok {
			for _, p := range ps {
				if s, ok := p.(string); ok {
					coil.Parents = append(coil.Parents, s)
				}
			}
		}
		c.Generations = append(c.Generations, coil)
	}
	return nil
}

// MarshalJSON emits the raw object so unknown producer fields and numeric
// literals round-trip unchanged.
func (c BloomCore) MarshalJSON() ([]byte, error) {
	if c.raw == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.raw)
}
