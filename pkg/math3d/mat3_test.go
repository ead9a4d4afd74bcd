package math3d

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func approxVec(a, b Vec3) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) && approxEqual(a.Z, b.Z)
}

var rotations = []struct {
	name string
	fn   func(float64) Mat3
}{
	{"X", RotateX},
	{"Y", RotateY},
	{"Z", RotateZ},
}

var angles = []float64{0, Radians(3), -Radians(3), math.Pi / 4, -math.Pi / 2, math.Pi, 2.5}

func TestRotationsAreOrthonormal(t *testing.T) {
	for _, r := range rotations {
		for _, a := range angles {
			m := r.fn(a)
			mmt := m.Mul(m.Transpose())
			id := Identity3()
			for i := range mmt {
				if !approxEqual(mmt[i], id[i]) {
					t.Errorf("Rotate%s(%v): M*Mt[%d] = %v, want %v", r.name, a, i, mmt[i], id[i])
				}
			}
			if det := m.Determinant(); !approxEqual(det, 1) {
				t.Errorf("Rotate%s(%v): det = %v, want 1", r.name, a, det)
			}
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	points := []Vec3{V3(1, 0, 0), V3(1, 2, 3), V3(-4, 0.5, 7), V3(0, 0, 0)}
	for _, r := range rotations {
		for _, a := range angles {
			for _, p := range points {
				got := r.fn(a).MulVec3(p).Len()
				if !approxEqual(got, p.Len()) {
					t.Errorf("|Rotate%s(%v)*%v| = %v, want %v", r.name, a, p, got, p.Len())
				}
			}
		}
	}
}

func TestRotationInverse(t *testing.T) {
	p := V3(0.3, -1.2, 2.5)
	for _, r := range rotations {
		for _, a := range angles {
			got := r.fn(-a).Mul(r.fn(a)).MulVec3(p)
			if !approxVec(got, p) {
				t.Errorf("Rotate%s(-a)*Rotate%s(a)*p = %v, want %v", r.name, r.name, got, p)
			}
		}
	}
}

func TestRotateQuarterTurns(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"X turns Y into Z", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"Y turns Z into X", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
		{"Z turns X into Y", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.MulVec3(tc.in); !approxVec(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMulCompositionOrder(t *testing.T) {
	// a.Mul(b) applies b first, then a.
	a := RotateZ(math.Pi / 2)
	b := RotateX(math.Pi / 2)
	p := V3(0, 1, 0)

	got := a.Mul(b).MulVec3(p)
	want := a.MulVec3(b.MulVec3(p))
	if !approxVec(got, want) {
		t.Errorf("a.Mul(b)*p = %v, want a*(b*p) = %v", got, want)
	}
	// b sends Y to Z, Z is fixed by a.
	if !approxVec(got, V3(0, 0, 1)) {
		t.Errorf("got %v, want (0, 0, 1)", got)
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateY(0.7).Mul(RotateX(-0.2))
	if got := m.Mul(Identity3()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := Identity3().Mul(m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestGet(t *testing.T) {
	m := RotateZ(math.Pi / 2)
	if !approxEqual(m.Get(0, 1), -1) || !approxEqual(m.Get(1, 0), 1) {
		t.Errorf("RotateZ(pi/2) off-diagonal = (%v, %v), want (-1, 1)", m.Get(0, 1), m.Get(1, 0))
	}
}
