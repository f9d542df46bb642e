//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"testing"
	"time"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Int(10, 20)
		if v < 10 || v > 20 {
			t.Errorf("Int(10, 20) returned %d, out of range", v)
		}
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Float64(1.5, 2.5)
		if v < 1.5 || v > 2.5 {
			t.Errorf("Float64(1.5, 2.5) returned %f, out of range", v)
		}
	}
}

func TestFakerDate(t *testing.T) {
	f := NewFaker()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	d := f.Date(start, end)
	if d.Before(start) || d.After(end) {
		t.Errorf("Date returned %v, outside [%v, %v]", d, start, end)
	}
}

func TestFakerDigits(t *testing.T) {
	f := NewFaker()
	s := f.Digits(8)
	if len(s) != 8 {
		t.Fatalf("Digits(8) returned %q with length %d", s, len(s))
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Errorf("Digits returned non-digit character %q", c)
		}
	}
}

func TestFakerRandomString(t *testing.T) {
	f := NewFaker()
	const charset = "ABC123"
	s := f.RandomString(20, charset)
	if len(s) != 20 {
		t.Fatalf("RandomString returned length %d, want 20", len(s))
	}
	for _, c := range s {
		found := false
		for _, a := range charset {
			if c == a {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("RandomString returned character %q outside charset", c)
		}
	}
}

func TestFakerGaussian(t *testing.T) {
	f := NewFakerWithSeed(7)

	// Sample mean should land near the requested mean
	const n = 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += f.Gaussian(100, 10)
	}
	mean := sum / n
	if mean < 99 || mean > 101 {
		t.Errorf("Gaussian sample mean %f, expected near 100", mean)
	}
}

func TestFakerGaussianDeterministic(t *testing.T) {
	f1 := NewFakerWithSeed(42)
	f2 := NewFakerWithSeed(42)
	for i := 0; i < 10; i++ {
		if v1, v2 := f1.Gaussian(0, 1), f2.Gaussian(0, 1); v1 != v2 {
			t.Fatalf("same seed produced different Gaussian values: %f != %f", v1, v2)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		v := Choose(f, items)
		if v != "a" && v != "b" && v != "c" {
			t.Errorf("Choose returned unexpected value %q", v)
		}
	}
}

func TestChooseEmpty(t *testing.T) {
	f := NewFaker()
	if v := Choose(f, []int{}); v != 0 {
		t.Errorf("Choose on empty slice returned %d, want zero value", v)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFakerWithSeed(1)
	items := []string{"common", "rare"}
	weights := []int{99, 1}

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[ChooseWeighted(f, items, weights)]++
	}
	if counts["common"] < 900 {
		t.Errorf("ChooseWeighted picked 'common' only %d of 1000 times", counts["common"])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"", 5, ""},
		{"abc", 3, "abc"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
