package geometry

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewBounds(t *testing.T) {
	b := NewBounds(1024, 800)
	if b.Lower != (Vector2D{-512, -400}) || b.Upper != (Vector2D{512, 400}) {
		t.Fatalf("NewBounds(1024, 800) = %v", b)
	}
	if b.Width() != 1024 || b.Height() != 800 {
		t.Errorf("Width/Height = %v/%v; want 1024/800", b.Width(), b.Height())
	}
	if !b.Contains(Vector2D{512, -400}) || b.Contains(Vector2D{513, 0}) {
		t.Error("Contains must treat the rectangle as closed")
	}
}

func TestWrapToCenter(t *testing.T) {
	b := NewBounds(1024, 800)

	tests := []struct {
		name   string
		point  Vector2D
		center Vector2D
		want   Vector2D
	}{
		{"inside stays", Vector2D{10, -20}, Zero, Vector2D{10, -20}},
		{"right edge exact stays", Vector2D{512, 400}, Zero, Vector2D{512, 400}},
		{"past right edge", Vector2D{513, 0}, Zero, Vector2D{513 - 1024, 0}},
		{"past left edge", Vector2D{-600, 0}, Zero, Vector2D{-600 + 1024, 0}},
		{"past top edge", Vector2D{0, 401}, Zero, Vector2D{0, 401 - 800}},
		{"past bottom edge", Vector2D{0, -450}, Zero, Vector2D{0, 350}},
		{"axes are independent", Vector2D{700, -450}, Zero, Vector2D{-324, 350}},
		// Near the right edge, a point on the far left is closer going around.
		{"toward off-origin center", Vector2D{-500, 0}, Vector2D{500, 0}, Vector2D{524, 0}},
		{"center near bottom", Vector2D{0, 390}, Vector2D{0, -390}, Vector2D{0, -410}},
		{"several widths away", Vector2D{3000, 0}, Zero, Vector2D{3000 - 3*1024, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapToCenter(tt.point, tt.center, b)
			if got != tt.want {
				t.Errorf("WrapToCenter(%v, %v) = %v; want %v", tt.point, tt.center, got, tt.want)
			}
		})
	}
}

func TestWrap_UpperPlusOne(t *testing.T) {
	b := NewBounds(1024, 800)
	x := b.Upper.X + 1
	got := Wrap(Vector2D{x, 0}, b)
	if got.X != x-1024 {
		t.Errorf("Wrap(upper+1).X = %v; want %v", got.X, x-1024)
	}
}

func TestWrapToCenter_Idempotent(t *testing.T) {
	b := NewBounds(1024, 800)
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 10000; i++ {
		p := Vector2D{(rng.Float64() - 0.5) * 6000, (rng.Float64() - 0.5) * 6000}
		c := Vector2D{(rng.Float64() - 0.5) * 1024, (rng.Float64() - 0.5) * 800}

		once := WrapToCenter(p, c, b)
		twice := WrapToCenter(once, c, b)
		if once != twice {
			t.Fatalf("not idempotent for p=%v c=%v: once=%v twice=%v", p, c, once, twice)
		}
		if math.Abs(once.X-c.X) > b.Width()/2+Epsilon || math.Abs(once.Y-c.Y) > b.Height()/2+Epsilon {
			t.Fatalf("WrapToCenter(%v, %v) = %v is more than half a domain away", p, c, once)
		}
	}
}

func TestWrapToCenter_NonFinite(t *testing.T) {
	b := NewBounds(100, 100)
	got := WrapToCenter(Vector2D{math.NaN(), math.Inf(1)}, Zero, b)
	if !math.IsNaN(got.X) || !math.IsInf(got.Y, 1) {
		t.Errorf("non-finite coordinates must pass through untouched, got %v", got)
	}
}

func TestDelta(t *testing.T) {
	b := NewBounds(100, 100)
	tests := []struct {
		name     string
		from, to Vector2D
		want     Vector2D
	}{
		{"direct", Vector2D{0, 0}, Vector2D{10, -5}, Vector2D{10, -5}},
		{"across right edge", Vector2D{45, 0}, Vector2D{-45, 0}, Vector2D{10, 0}},
		{"across bottom edge", Vector2D{0, -48}, Vector2D{0, 48}, Vector2D{0, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Delta(tt.from, tt.to, b); !got.Eq(tt.want) {
				t.Errorf("Delta(%v, %v) = %v; want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func BenchmarkWrapToCenter(b *testing.B) {
	bounds := NewBounds(1024, 800)
	p := Vector2D{700, -450}
	c := Vector2D{-100, 30}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WrapToCenter(p, c, bounds)
	}
}
