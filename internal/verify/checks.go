package verify

// Per-coil diagnostic codes.
const (
	ErrIndexMismatch     = "index_mismatch"
	ErrInvalidFormat     = "invalid_fingerprint_format"
	ErrFingerprintBroken = "fingerprint_mismatch"
)

// DigestCheck is the eternal-fingerprint verdict. Stored and Recomputed are
// full-length digests; display truncation is the report layer's job.
type DigestCheck struct {
	OK         bool   `json:"ok"`
	Stored     string `json:"stored"`
	Recomputed string `json:"recomputed"`
}

// ChainDetail describes one flagged coil. Only the fields for its error code
// are set.
type ChainDetail struct {
	Coil          int    `json:"coil"`
	Error         string `json:"error"`
	ExpectedIndex *int   `json:"expected_index,omitempty"`
	ActualIndex   *int   `json:"actual_index,omitempty"`
	ExpectedLen   *int   `json:"expected_length,omitempty"`
	ActualLen     *int   `json:"actual_length,omitempty"`
	Expected      string `json:"expected,omitempty"`
	Actual        string `json:"actual,omitempty"`
}

// ChainCheck is the recurrence verdict across all coils.
type ChainCheck struct {
	OK           bool          `json:"ok"`
	CoilsChecked int           `json:"coils_checked"`
	BadCoils     []int         `json:"bad_coils"`
	Details      []ChainDetail `json:"details"`
}

// RatioCheck is the golden-ratio verdict.
type RatioCheck struct {
	OK        bool    `json:"ok"`
	Observed  float64 `json:"observed"`
	Expected  float64 `json:"expected"`
	Delta     float64 `json:"delta"`
	Tolerance float64 `json:"tolerance"`
}

// ExternalCheck summarizes the external fingerprint records. Verified stays
// nil: recomputation is a declared non-feature, so the status is unknown,
// never true or false.
type ExternalCheck struct {
	Count      int      `json:"count"`
	Sources    []string `json:"sources"`
	Algorithms []string `json:"algorithms"`
	Verified   *bool    `json:"verified"`
}

// Result bundles every check verdict for one envelope.
type Result struct {
	Digest   DigestCheck
	Chain    ChainCheck
	Ratio    RatioCheck
	External ExternalCheck
}

// Passed reports the overall verdict. The external check is informational
// and never participates.
func (r Result) Passed() bool {
	return r.Digest.OK && r.Chain.OK && r.Ratio.OK
}
