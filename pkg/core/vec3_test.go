package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecsEqual(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", a.Cross(b), NewVec3(27, 6, -13)},
		{"reciprocal", NewVec3(2, 4, -5).Reciprocal(), NewVec3(0.5, 0.25, -0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecsEqual(tt.got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_ArithmeticIsPure(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	a.Add(b)
	a.Subtract(b)
	a.Multiply(3)
	a.Cross(b)
	a.Normalize()

	if !vecsEqual(a, NewVec3(1, 2, 3)) {
		t.Errorf("Operand was mutated: %v", a)
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); math.Abs(got-12) > tolerance {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := NewVec3(3, 4, 0).Length(); math.Abs(got-5) > tolerance {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := NewVec3(3, 4, 0).LengthSquared(); math.Abs(got-25) > tolerance {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, -4, 12).Normalize()
	if got := v.Length(); math.Abs(got-1) > tolerance {
		t.Errorf("Expected unit length, got %f", got)
	}
	if !vecsEqual(v, NewVec3(3.0/13, -4.0/13, 12.0/13)) {
		t.Errorf("Wrong direction after normalize: %v", v)
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(3, -4)

	if got := a.Add(b); got != NewVec2(4, -2) {
		t.Errorf("Expected (4,-2), got %v", got)
	}
	if got := a.Subtract(b); got != NewVec2(-2, 6) {
		t.Errorf("Expected (-2,6), got %v", got)
	}
	if got := a.Multiply(3); got != NewVec2(3, 6) {
		t.Errorf("Expected (3,6), got %v", got)
	}
	if got := a.Dot(b); math.Abs(got-(-5)) > tolerance {
		t.Errorf("Expected dot product -5, got %f", got)
	}
	if got := NewVec2(3, 4).Length(); math.Abs(got-5) > tolerance {
		t.Errorf("Expected length 5, got %f", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -1))
	if got := ray.At(5); !vecsEqual(got, NewVec3(1, 0, -5)) {
		t.Errorf("Expected (1,0,-5), got %v", got)
	}
}
