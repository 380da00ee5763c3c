package termfx

import "testing"

func TestClickToneLength(t *testing.T) {
	tone, err := clickTone(clickRate)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := tone.Stream(buf)
		for _, s := range buf[:n] {
			if s[0] > peak {
				peak = s[0]
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if want := clickRate.N(clickLength); total != want {
		t.Errorf("samples = %d, want %d", total, want)
	}
	if peak <= 0 || peak > 1+clickGain+1e-9 {
		t.Errorf("peak = %v, want in (0, %v]", peak, 1+clickGain)
	}
}

func TestNilClickerIsSilent(t *testing.T) {
	var c *Clicker
	if c.Ready() {
		t.Error("nil clicker ready")
	}
	c.Click()
	c.Close()
}
