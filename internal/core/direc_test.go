package core

import "testing"

func TestDirecOpposite(t *testing.T) {
	tests := []struct {
		d        Direc
		expected Direc
	}{
		{DirecNone, DirecNone},
		{DirecLeft, DirecRight},
		{DirecRight, DirecLeft},
		{DirecUp, DirecDown},
		{DirecDown, DirecUp},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.Opposite(); got != tt.expected {
				t.Errorf("%v.Opposite() = %v, expected %v", tt.d, got, tt.expected)
			}
			if got := tt.d.Opposite().Opposite(); got != tt.d {
				t.Errorf("%v.Opposite().Opposite() = %v", tt.d, got)
			}
		})
	}
}

func TestDirecPerpendicular(t *testing.T) {
	if got := DirecRight.Perpendicular(); got != [2]Direc{DirecUp, DirecDown} {
		t.Errorf("Right.Perpendicular() = %v", got)
	}
	if got := DirecUp.Perpendicular(); got != [2]Direc{DirecLeft, DirecRight} {
		t.Errorf("Up.Perpendicular() = %v", got)
	}
}

func TestParseDirec(t *testing.T) {
	for _, d := range append(Valid(), DirecNone) {
		got, ok := ParseDirec(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirec(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDirec("sideways"); ok {
		t.Error("ParseDirec should reject unknown names")
	}
}

func TestValidReturnsCopy(t *testing.T) {
	v := Valid()
	v[0] = DirecNone
	if Valid()[0] != DirecLeft {
		t.Error("Valid() must not expose its backing array")
	}
}
