package world

import "testing"

func TestVecNormAndDist(t *testing.T) {
	n := Vec2{X: 3, Y: 4}.Norm()
	if !approxEqual(n.X, 0.6) || !approxEqual(n.Y, 0.8) {
		t.Fatalf("unexpected norm: %+v", n)
	}
	if z := (Vec2{}).Norm(); z != (Vec2{}) {
		t.Fatalf("zero vector should normalise to zero, got %+v", z)
	}
	if d := Dist(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}); !approxEqual(d, 5) {
		t.Fatalf("dist: got %.4f want 5", d)
	}
}

func TestEnemyUpdate(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("on target stays put", func(t *testing.T) {
		e := newEnemy(cfg, Vec2{X: 1, Y: 1})
		e.update(1.0/60, Vec2{X: 1, Y: 1})
		if e.Pos != (Vec2{X: 1, Y: 1}) {
			t.Fatalf("enemy moved off a zero-distance target: %+v", e.Pos)
		}
		if e.Flipped {
			t.Fatal("tie on x should face right")
		}
	})

	t.Run("faces target on the left", func(t *testing.T) {
		e := newEnemy(cfg, Vec2{X: 1, Y: 0})
		e.update(1, Vec2{X: 0, Y: 0})
		if !e.Flipped {
			t.Fatal("expected flipped when target is left")
		}
		if !approxEqual(e.Pos.X, 1-cfg.EnemySpeed) {
			t.Fatalf("x: got %.4f want %.4f", e.Pos.X, 1-cfg.EnemySpeed)
		}
	})
}
