package terminal

import "testing"

func TestClip(t *testing.T) {
	cases := []struct{ n, limit, want int }{
		{80, 120, 80},
		{200, 120, 120},
		{10, 0, 1},
		{0, 40, 1},
	}
	for _, c := range cases {
		if got := clip(c.n, c.limit); got != c.want {
			t.Errorf("clip(%d, %d) = %d, want %d", c.n, c.limit, got, c.want)
		}
	}
}

func TestViewportNeverEmpty(t *testing.T) {
	cols, rows := Viewport(80, 45, 1000)
	if cols < 1 || rows < 1 {
		t.Errorf("Viewport() = %d, %d, want at least 1x1", cols, rows)
	}
}
