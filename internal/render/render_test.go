package render

import "testing"

func TestDashesCoverCourtHeight(t *testing.T) {
	got := Dashes(400, dashLength, dashGap)
	if len(got) != 20 {
		t.Fatalf("len = %d, want 20", len(got))
	}
	if got[0] != [2]float32{0, 5} {
		t.Fatalf("first dash = %v, want [0 5]", got[0])
	}
	if got[1] != [2]float32{20, 25} {
		t.Fatalf("second dash = %v, want [20 25]", got[1])
	}
	if last := got[len(got)-1]; last != [2]float32{380, 385} {
		t.Fatalf("last dash = %v, want [380 385]", last)
	}
}

func TestDashesClipLastSegment(t *testing.T) {
	got := Dashes(22, 5, 15)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1] != [2]float32{20, 22} {
		t.Fatalf("last dash = %v, want [20 22]", got[1])
	}
}

func TestDashesEmpty(t *testing.T) {
	if got := Dashes(0, 5, 15); got != nil {
		t.Fatalf("Dashes(0) = %v, want nil", got)
	}
	if got := Dashes(100, 0, 15); got != nil {
		t.Fatalf("Dashes with zero dash = %v, want nil", got)
	}
}
