// Package arc generates the deterministic guardian-arc trajectory: a
// contraction map over a fixed six-center constellation, driven by a
// low-discrepancy accumulator instead of a random source.
package arc

import (
	"math"
	"math/cmplx"
)

// Phi is the golden ratio at full double precision.
var Phi = (1 + math.Sqrt(5)) / 2

// Lambda is the contraction constant exp(-1/phi + i*2*pi*phi). Its modulus
// is below one, so repeated application pulls the point toward whichever
// center is currently selected.
var Lambda = cmplx.Exp(complex(-1/Phi, 2*math.Pi*Phi))

// ConstellationRadius places the five ring centers around the core.
const ConstellationRadius = 3.5

// Center selection weights: core, head, arm, foot, foot, arm.
const (
	weightCore = 0.30
	weightHead = 0.25
	weightArm  = 0.15
	weightFoot = 0.075
)

// Centers is the ordered constellation: the core at the origin followed by
// the vertices of a regular pentagon, first vertex straight up.
var Centers = buildCenters()

// cuts are the cumulative normalized weights; selection is a threshold
// search over them, never a randomness primitive.
var cuts = buildCuts()

func buildCenters() [6]complex128 {
	var cs [6]complex128
	cs[0] = 0
	for k := 0; k < 5; k++ {
		angle := 2*math.Pi*float64(k)/5 + math.Pi/2
		cs[k+1] = complex(ConstellationRadius*math.Cos(angle), ConstellationRadius*math.Sin(angle))
	}
	return cs
}

func buildCuts() [6]float64 {
	weights := [6]float64{weightCore, weightHead, weightArm, weightFoot, weightFoot, weightArm}
	var total float64
	for _, w := range weights {
		total += w
	}
	var cs [6]float64
	var acc float64
	for i, w := range weights {
		acc += w / total
		cs[i] = acc
	}
	return cs
}

// Trajectory iterates the map for steps iterations from the given seed and
// returns the recorded points with the first burnIn discarded, so the tail
// approximates the invariant measure rather than the arbitrary start.
//
// The loop is a strict sequential recurrence in both s and z; it must not be
// reordered or chunked, or different centers would be selected at different
// steps.
func Trajectory(seed float64, steps, burnIn int) []complex128 {
	if steps <= 0 {
		return nil
	}

	s := seed - math.Floor(seed)
	z := complex(0, 0)
	points := make([]complex128, steps)

	for i := 0; i < steps; i++ {
		s += Phi
		s -= math.Floor(s)
		c := Centers[selectCenter(s)]
		z = Lambda*(z-c) + c
		points[i] = z
	}

	if burnIn > 0 {
		if burnIn >= len(points) {
			return points[:0]
		}
		points = points[burnIn:]
	}
	return points
}

// selectCenter returns the first bucket whose cumulative weight reaches s.
func selectCenter(s float64) int {
	for i, cut := range cuts {
		if cut >= s {
			return i
		}
	}
	return len(cuts) - 1
}
