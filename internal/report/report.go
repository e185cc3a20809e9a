// Package report composes check verdicts and simulation metadata into the
// structured integrity report.
//
// Aggregation performs no new validation: every verdict is computed by the
// verify package and every simulation figure by the arc/seed packages; this
// layer only assembles and formats them.
package report

import (
	"encoding/json"

	"bloomarc/internal/arc"
	"bloomarc/internal/domain"
	"bloomarc/internal/seed"
	"bloomarc/internal/verify"
)

// Verdict strings of the overall result.
const (
	VerdictPass = "PASS"
	VerdictFail = "FAIL"
)

const (
	passSummary = "Envelope cryptographically consistent - all checks passed"
	failSummary = "Envelope has integrity issues - see details above"
)

// Options are the simulation parameters of one report run.
type Options struct {
	Steps     int
	BurnIn    int
	Bins      int
	BlendMode string
}

// Defaults mirrors the original tool's parameters.
var Defaults = Options{
	Steps:     2_000_000,
	BurnIn:    1_000,
	Bins:      512,
	BlendMode: seed.BlendComposite,
}

// DigestSection is the eternal-fingerprint block with digests truncated for
// display. Stored is null when the document carried none.
type DigestSection struct {
	OK         bool    `json:"ok"`
	Stored     *string `json:"stored"`
	Recomputed string  `json:"recomputed"`
}

// Bounds is the bounding box of the generated trajectory.
type Bounds struct {
	RealMin float64 `json:"real_min"`
	RealMax float64 `json:"real_max"`
	ImagMin float64 `json:"imag_min"`
	ImagMax float64 `json:"imag_max"`
}

// ArcSection is the simulation metadata block.
type ArcSection struct {
	TrajectorySteps int     `json:"trajectory_steps"`
	SeedsExtracted  int     `json:"seeds_extracted"`
	BlendMode       string  `json:"blend_mode"`
	SeedUsed        float64 `json:"seed_used"`
	Bounds          Bounds  `json:"trajectory_bounds"`
}

// Report is the full JSON-serializable verification result.
type Report struct {
	Result   string               `json:"verification_result"`
	Digest   DigestSection        `json:"eternal_fingerprint"`
	Chain    verify.ChainCheck    `json:"coil_chain"`
	Ratio    verify.RatioCheck    `json:"phi_ratio"`
	External verify.ExternalCheck `json:"external_fingerprints"`
	Verdict  string               `json:"verdict"`
	Arc      *ArcSection          `json:"guardian_arc,omitempty"`
}

// Verify builds the checks-only report for one envelope.
func Verify(env domain.Envelope) Report {
	res := verify.Envelope(env)

	var stored *string
	if res.Digest.Stored != "" {
		s := verify.Truncate(res.Digest.Stored)
		stored = &s
	}
	rep := Report{
		Digest: DigestSection{
			OK:         res.Digest.OK,
			Stored:     stored,
			Recomputed: verify.Truncate(res.Digest.Recomputed),
		},
		Chain:    res.Chain,
		Ratio:    res.Ratio,
		External: res.External,
	}
	if res.Passed() {
		rep.Result, rep.Verdict = VerdictPass, passSummary
	} else {
		rep.Result, rep.Verdict = VerdictFail, failSummary
	}
	return rep
}

// Build runs the checks and the seeded simulation, returning the combined
// report together with the raw trajectory for downstream binning/rendering.
func Build(env domain.Envelope, opts Options) (Report, []complex128) {
	rep := Verify(env)

	seeds := seed.Extract(env.Core)
	used := seed.Compose(env.Core, opts.BlendMode)
	trajectory := arc.Trajectory(used, opts.Steps, opts.BurnIn)

	section := &ArcSection{
		TrajectorySteps: len(trajectory),
		SeedsExtracted:  len(seeds),
		BlendMode:       opts.BlendMode,
		SeedUsed:        used,
		Bounds:          bounds(trajectory),
	}
	rep.Arc = section
	return rep, trajectory
}

// Render marshals a report the way the CLI prints it.
func Render(rep Report) ([]byte, error) {
	return json.MarshalIndent(rep, "", "  ")
}

func bounds(points []complex128) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		RealMin: real(points[0]), RealMax: real(points[0]),
		ImagMin: imag(points[0]), ImagMax: imag(points[0]),
	}
	for _, p := range points[1:] {
		if real(p) < b.RealMin {
			b.RealMin = real(p)
		}
		if real(p) > b.RealMax {
			b.RealMax = real(p)
		}
		if imag(p) < b.ImagMin {
			b.ImagMin = imag(p)
		}
		if imag(p) > b.ImagMax {
			b.ImagMax = imag(p)
		}
	}
	return b
}
