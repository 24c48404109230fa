package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(Params{})
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Fatalf("unexpected defaults %+v", p)
	}
}

func TestNormalizeClampsLimit(t *testing.T) {
	p := Normalize(Params{Limit: 10_000})
	if p.Limit != MaxLimit {
		t.Fatalf("expected max limit, got %d", p.Limit)
	}
}

func TestNormalizeClampsNegativeOffset(t *testing.T) {
	p := Normalize(Params{Limit: 10, Offset: -5})
	if p.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", p.Offset)
	}
	if p.Limit != 10 {
		t.Fatalf("expected limit preserved, got %d", p.Limit)
	}
}
