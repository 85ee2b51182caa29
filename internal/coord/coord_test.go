package coord

import "testing"

func TestCOCoordRoundTrip(t *testing.T) {
	var co [7]int
	for v := 0; v < NumCO; v++ {
		full := DecodeCO(v)
		copy(co[:], full[:7])
		if got := EncodeCO(co); got != v {
			t.Fatalf("EncodeCO(DecodeCO(%d)) = %d", v, got)
		}
	}
}

func TestEOCoordRoundTrip(t *testing.T) {
	var eo [11]int
	for v := 0; v < NumEO; v++ {
		full := DecodeEO(v)
		copy(eo[:], full[:11])
		if got := EncodeEO(eo); got != v {
			t.Fatalf("EncodeEO(DecodeEO(%d)) = %d", v, got)
		}
	}
}

func TestSliceCoordRoundTrip(t *testing.T) {
	seen := make(map[int]bool, NumSlice)
	for v := 0; v < NumSlice; v++ {
		ep := DecodeSlice(v)
		got := EncodeSlice(ep)
		if got != v {
			t.Fatalf("EncodeSlice(DecodeSlice(%d)) = %d", v, got)
		}
		if seen[got] {
			t.Fatalf("coordinate %d produced twice", got)
		}
		seen[got] = true
	}
}

func TestSliceCoordSolvedIsZero(t *testing.T) {
	ep := [12]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	if got := EncodeSlice(ep); got != 0 {
		t.Fatalf("EncodeSlice(solved) = %d, want 0", got)
	}
}

func TestCPCoordRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 2, 1000, NumCP - 1} {
		if got := EncodeCP(DecodeCP(v)); got != v {
			t.Fatalf("EncodeCP(DecodeCP(%d)) = %d", v, got)
		}
	}
}

func TestEPCoordRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 2, 1000, NumEP - 1} {
		if got := EncodeEP(DecodeEP(v)); got != v {
			t.Fatalf("EncodeEP(DecodeEP(%d)) = %d", v, got)
		}
	}
}

func TestSPCoordRoundTrip(t *testing.T) {
	for v := 0; v < NumSP; v++ {
		if got := EncodeSP(DecodeSP(v)); got != v {
			t.Fatalf("EncodeSP(DecodeSP(%d)) = %d", v, got)
		}
	}
}

func TestSolvedCoordinatesAreZero(t *testing.T) {
	var co [7]int
	var eo [11]int
	cp := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	ep := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	sp := [4]int{0, 1, 2, 3}

	if v := EncodeCO(co); v != 0 {
		t.Errorf("EncodeCO(solved) = %d, want 0", v)
	}
	if v := EncodeEO(eo); v != 0 {
		t.Errorf("EncodeEO(solved) = %d, want 0", v)
	}
	if v := EncodeCP(cp); v != 0 {
		t.Errorf("EncodeCP(solved) = %d, want 0", v)
	}
	if v := EncodeEP(ep); v != 0 {
		t.Errorf("EncodeEP(solved) = %d, want 0", v)
	}
	if v := EncodeSP(sp); v != 0 {
		t.Errorf("EncodeSP(solved) = %d, want 0", v)
	}
}
