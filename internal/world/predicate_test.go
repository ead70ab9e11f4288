package world

import "testing"

func TestOptionGateCollapsesWhenDisabled(t *testing.T) {
	empty := tokenState{}
	if !OptionGate(false, SoulBoy)(empty) {
		t.Fatalf("disabled gate should always hold")
	}
	if OptionGate(true, SoulBoy)(empty) {
		t.Fatalf("enabled gate should need the token")
	}
	if !OptionGate(true, SoulBoy)(tokenState{SoulBoy: true}) {
		t.Fatalf("enabled gate should hold with the token")
	}
}

func TestAtLeastCounts(t *testing.T) {
	ps := []Predicate{Has("a"), Has("b"), Has("c")}
	cases := []struct {
		k    int
		have tokenState
		want bool
	}{
		{0, tokenState{}, true},
		{1, tokenState{}, false},
		{2, tokenState{"a": true, "c": true}, true},
		{3, tokenState{"a": true, "c": true}, false},
	}
	for _, tc := range cases {
		if got := AtLeast(tc.k, ps...)(tc.have); got != tc.want {
			t.Fatalf("AtLeast(%d) with %v = %v", tc.k, tc.have, got)
		}
	}
}

func TestWeightAtLeastSumsHeldWeights(t *testing.T) {
	p := WeightAtLeast(3,
		Weighted{Weight: 1, When: Has("a")},
		Weighted{Weight: 1, When: Has("b")},
		Weighted{Weight: 2, When: Has("c")},
	)
	cases := []struct {
		have tokenState
		want bool
	}{
		{tokenState{"a": true, "b": true}, false},
		{tokenState{"a": true, "c": true}, true},
		{tokenState{"a": true, "b": true, "c": true}, true},
		{tokenState{"c": true}, false},
	}
	for _, tc := range cases {
		if got := p(tc.have); got != tc.want {
			t.Fatalf("with %v got %v", tc.have, got)
		}
	}
}

func TestCapstoneThresholdBounds(t *testing.T) {
	three := []Predicate{Always, Always, Always}
	for _, k := range []int{0, 4} {
		c := Capstone{Name: "x", Components: three, Threshold: k}
		if c.validate() == nil {
			t.Fatalf("threshold %d of 3 should be rejected", k)
		}
	}
	if err := (Capstone{Name: "x", Components: three, Threshold: 3}).validate(); err != nil {
		t.Fatalf("threshold 3 of 3: %v", err)
	}
}

func TestCapstoneFiveOfSix(t *testing.T) {
	var components []Predicate
	for _, tok := range []TokenName{"c1", "c2", "c3", "c4", "c5", "c6"} {
		components = append(components, Has(tok))
	}
	c := Capstone{Name: "x", Components: components, Threshold: 5, Required: Has("req")}
	p := c.Predicate()

	five := tokenState{"req": true, "c1": true, "c2": true, "c3": true, "c4": true, "c5": true}
	if !p(five) || c.Completed(five) != 5 {
		t.Fatalf("5 of 6 should pass")
	}
	delete(five, "c5")
	if p(five) {
		t.Fatalf("4 of 6 should fail")
	}
	six := tokenState{"c1": true, "c2": true, "c3": true, "c4": true, "c5": true, "c6": true}
	if p(six) {
		t.Fatalf("hard requirement missing should fail")
	}
}
