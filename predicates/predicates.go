// Package predicates implements the adaptive-precision geometric predicates
// the Delaunay/frontal kernel relies on for correctness near degenerate
// configurations: orientation, in-circle, and segment intersection.
//
// Each predicate first evaluates a float64 determinant with a conservative
// error bound; only when the result falls inside that error bound does it
// fall back to arbitrary-precision arithmetic via math/big. This mirrors
// Shewchuk's adaptive-precision scheme without needing the full expansion
// arithmetic: the big.Float fallback is exact for the modest coordinate
// magnitudes a parametric (u,v) domain produces.
package predicates

import (
	"math"
	"math/big"

	"github.com/meshforge/frontal/geo2"
)

const (
	orientFilter = 1e-15
	bigPrec      = 256
)

// Orient2D returns the orientation of triangle (a,b,c):
//   - +1 if the points make a counter-clockwise turn
//   - -1 if the points make a clockwise turn
//   - 0 if the points are exactly collinear (near-collinear cases are
//     settled by the exact fallback)
func Orient2D(a, b, c geo2.Point2) int {
	ax := b.U - a.U
	ay := b.V - a.V
	bx := c.U - a.U
	by := c.V - a.V
	det := ax*by - ay*bx

	eps := errBound(maxAbs(a.U, a.V, b.U, b.V, c.U, c.V))

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func orient2DExact(a, b, c geo2.Point2) int {
	ax := bigSub(b.U, a.U)
	ay := bigSub(b.V, a.V)
	bx := bigSub(c.U, a.U)
	by := bigSub(c.V, a.V)

	term1 := new(big.Float).SetPrec(bigPrec).Mul(ax, by)
	term2 := new(big.Float).SetPrec(bigPrec).Mul(ay, bx)
	det := new(big.Float).SetPrec(bigPrec).Sub(term1, term2)
	return det.Sign()
}

// InCircle tests whether point d lies inside, on, or outside the
// circumcircle of triangle (a,b,c). Positive means inside assuming a,b,c
// are CCW, negative outside, zero cocircular.
func InCircle(a, b, c, d geo2.Point2) int {
	adu := a.U - d.U
	adv := a.V - d.V
	bdu := b.U - d.U
	bdv := b.V - d.V
	cdu := c.U - d.U
	cdv := c.V - d.V

	ad2 := adu*adu + adv*adv
	bd2 := bdu*bdu + bdv*bdv
	cd2 := cdu*cdu + cdv*cdv

	det := ad2*(bdu*cdv-bdv*cdu) -
		bd2*(adu*cdv-adv*cdu) +
		cd2*(adu*bdv-adv*bdu)

	maxMag := maxAbs(adu, adv, bdu, bdv, cdu, cdv)
	eps := math.Pow(maxMag, 3) * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return inCircleExact(a, b, c, d)
	}
}

func inCircleExact(a, b, c, d geo2.Point2) int {
	au := bigSub(a.U, d.U)
	av := bigSub(a.V, d.V)
	bu := bigSub(b.U, d.U)
	bv := bigSub(b.V, d.V)
	cu := bigSub(c.U, d.U)
	cv := bigSub(c.V, d.V)

	sq := func(x *big.Float) *big.Float {
		return new(big.Float).SetPrec(bigPrec).Mul(x, x)
	}
	ad2 := new(big.Float).SetPrec(bigPrec).Add(sq(au), sq(av))
	bd2 := new(big.Float).SetPrec(bigPrec).Add(sq(bu), sq(bv))
	cd2 := new(big.Float).SetPrec(bigPrec).Add(sq(cu), sq(cv))

	term1 := new(big.Float).SetPrec(bigPrec).Mul(ad2, det2(bu, bv, cu, cv))
	term2 := new(big.Float).SetPrec(bigPrec).Mul(bd2, det2(au, av, cu, cv))
	term3 := new(big.Float).SetPrec(bigPrec).Mul(cd2, det2(au, av, bu, bv))

	det := new(big.Float).SetPrec(bigPrec).Add(term1, term3)
	det.Sub(det, term2)
	return det.Sign()
}

// SegmentIntersect computes whether closed segments [p,q] and [r,s]
// intersect. When they cross at a single point, t and u are the
// parametric coordinates along pq and rs in [0,1]. For collinear overlaps
// it returns true with both parameters NaN.
func SegmentIntersect(p, q, r, s geo2.Point2) (bool, float64, float64) {
	o1 := Orient2D(p, q, r)
	o2 := Orient2D(p, q, s)
	o3 := Orient2D(r, s, p)
	o4 := Orient2D(r, s, q)

	if o1*o2 < 0 && o3*o4 < 0 {
		t, u := intersectionParams(p, q, r, s)
		return true, t, u
	}

	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		if overlapLength(p, q, r, s) > 1e-12 {
			return true, math.NaN(), math.NaN()
		}
	}

	if o1 == 0 && onSegment(p, q, r) {
		return true, paramOnSegment(p, q, r), 0
	}
	if o2 == 0 && onSegment(p, q, s) {
		return true, paramOnSegment(p, q, s), 1
	}
	if o3 == 0 && onSegment(r, s, p) {
		return true, 0, paramOnSegment(r, s, p)
	}
	if o4 == 0 && onSegment(r, s, q) {
		return true, 1, paramOnSegment(r, s, q)
	}

	return false, math.NaN(), math.NaN()
}

func intersectionParams(p, q, r, s geo2.Point2) (float64, float64) {
	pq := geo2.Point2{U: q.U - p.U, V: q.V - p.V}
	rs := geo2.Point2{U: s.U - r.U, V: s.V - r.V}
	diff := geo2.Point2{U: r.U - p.U, V: r.V - p.V}

	den := cross(pq, rs)
	if nearZero(den, pq, rs, diff) {
		return intersectionParamsExact(p, q, r, s)
	}

	t := cross(diff, rs) / den
	u := cross(diff, pq) / den
	return t, u
}

func intersectionParamsExact(p, q, r, s geo2.Point2) (float64, float64) {
	pqU, pqV := bigSub(q.U, p.U), bigSub(q.V, p.V)
	rsU, rsV := bigSub(s.U, r.U), bigSub(s.V, r.V)
	dU, dV := bigSub(r.U, p.U), bigSub(r.V, p.V)

	den := det2(pqU, pqV, rsU, rsV)
	if den.Sign() == 0 {
		return math.NaN(), math.NaN()
	}

	t := new(big.Float).SetPrec(bigPrec).Quo(det2(dU, dV, rsU, rsV), den)
	u := new(big.Float).SetPrec(bigPrec).Quo(det2(dU, dV, pqU, pqV), den)

	tf, _ := t.Float64()
	uf, _ := u.Float64()
	return tf, uf
}

func onSegment(a, b, p geo2.Point2) bool {
	if Orient2D(a, b, p) != 0 {
		return false
	}
	minU, maxU := math.Min(a.U, b.U), math.Max(a.U, b.U)
	minV, maxV := math.Min(a.V, b.V), math.Max(a.V, b.V)
	return p.U >= minU-1e-12 && p.U <= maxU+1e-12 && p.V >= minV-1e-12 && p.V <= maxV+1e-12
}

func paramOnSegment(a, b, p geo2.Point2) float64 {
	len2 := (b.U-a.U)*(b.U-a.U) + (b.V-a.V)*(b.V-a.V)
	if len2 == 0 {
		return 0
	}
	return ((p.U-a.U)*(b.U-a.U) + (p.V-a.V)*(b.V-a.V)) / len2
}

func cross(a, b geo2.Point2) float64 {
	return a.U*b.V - a.V*b.U
}

func nearZero(den float64, pts ...geo2.Point2) bool {
	m := 0.0
	for _, p := range pts {
		if a := math.Abs(p.U); a > m {
			m = a
		}
		if a := math.Abs(p.V); a > m {
			m = a
		}
	}
	tol := math.Pow(m, 2) * orientFilter
	if tol < orientFilter {
		tol = orientFilter
	}
	return math.Abs(den) <= tol
}

func overlapLength(a1, a2, b1, b2 geo2.Point2) float64 {
	if math.Abs(a1.U-a2.U) >= math.Abs(a1.V-a2.V) {
		aMin, aMax := math.Min(a1.U, a2.U), math.Max(a1.U, a2.U)
		bMin, bMax := math.Min(b1.U, b2.U), math.Max(b1.U, b2.U)
		return math.Min(aMax, bMax) - math.Max(aMin, bMin)
	}
	aMin, aMax := math.Min(a1.V, a2.V), math.Max(a1.V, a2.V)
	bMin, bMax := math.Min(b1.V, b2.V), math.Max(b1.V, b2.V)
	return math.Min(aMax, bMax) - math.Max(aMin, bMin)
}

func det2(ax, ay, bx, by *big.Float) *big.Float {
	out := new(big.Float).SetPrec(bigPrec).Mul(ax, by)
	tmp := new(big.Float).SetPrec(bigPrec).Mul(ay, bx)
	return out.Sub(out, tmp)
}

func errBound(maxMag float64) float64 {
	eps := maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}
	return eps
}

func maxAbs(values ...float64) float64 {
	m := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// bigSub promotes x and y to big.Float independently and subtracts inside
// big.Float, so near-degenerate differences between irrational-looking
// float64 coordinates don't lose precision to an earlier float64
// subtraction.
func bigSub(x, y float64) *big.Float {
	bx := new(big.Float).SetPrec(bigPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(bigPrec).SetFloat64(y)
	return bx.Sub(bx, by)
}
