package background

import "testing"

func TestScroll(t *testing.T) {
	tests := []struct {
		screen int
		scroll uint8
		want   int
	}{
		{0, 0, 0},
		{159, 0, 159},
		{0, 255, 255},
		{1, 255, 0},
		{143, 200, 87},
		{100, 156, 0},
	}
	for _, tt := range tests {
		if got := Scroll(tt.screen, tt.scroll); got != tt.want {
			t.Errorf("Scroll(%d, %d) = %d, want %d", tt.screen, tt.scroll, got, tt.want)
		}
	}
}

func TestWindowLeft(t *testing.T) {
	tests := []struct {
		name string
		wx   uint8
		want int
	}{
		{"top left", 7, 0},
		{"negative clamps", 0, 0},
		{"partially negative", 3, 0},
		{"middle", 87, 80},
		{"last column", 166, 159},
		{"edge", 167, 160},
		{"off screen clamps", 255, 160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewWindow(tt.wx, 0).Left(160); got != tt.want {
				t.Errorf("Left() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWindowSource(t *testing.T) {
	w := NewWindow(3, 10)
	if w.Visible(9) {
		t.Error("window visible above its top edge")
	}
	if !w.Visible(10) || !w.Visible(143) {
		t.Error("window not visible at or below its top edge")
	}
	x, y := w.Source(0, 12)
	if x != 4 || y != 2 {
		t.Errorf("Source(0, 12) = (%d, %d), want (4, 2)", x, y)
	}
}
