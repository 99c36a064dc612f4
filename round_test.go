package numeric

import (
	"errors"
	"strings"
	"testing"
)

func TestDecimal_Round(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, src, dst string
			n           int
			want        string
		}{
			{"1234.5678", "8,4", "8,4", 2, "1234.5700"},
			{"1234.5678", "8,4", "8,4", 0, "1235.0000"},
			{"1234.5678", "8,4", "8,4", -2, "1200.0000"},
			{"1234.5678", "8,4", "8,4", 4, "1234.5678"},
			{"1234.5678", "8,4", "8,4", 10, "1234.5678"},
			{"1234.5678", "8,4", "6,2", 2, "1234.57"},
			{"1234.5678", "8,4", "8,4", -4, "0.0000"},
			{"1234.5678", "8,4", "8,4", -5, "0.0000"},
			{"5678", "4,0", "5,0", -4, "10000"},
			{"-15", "2,0", "2,0", -1, "-20"},
			{"15", "2,0", "2,0", -1, "20"},
			{"-14", "2,0", "2,0", -1, "-10"},
			{"999", "3,0", "4,0", -3, "1000"},
			{"999", "3,0", "4,0", -100, "0"},
			{"0.5", "1,1", "1,0", 0, "1"},
			{"-0.4", "1,1", "1,1", 0, "0.0"},
			{nines34, "34,0", "34,0", -35, "0"},
		}
		for _, tt := range tests {
			d, src, dst := mustParseRaw(t, tt.d), mustParseType(t, tt.src), mustParseType(t, tt.dst)
			got, err := d.Round(tt.n, src, dst)
			if err != nil {
				t.Errorf("%q.Round(%v, %v, %v) failed: %v", d, tt.n, src, dst, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Round(%v, %v, %v) = %q, want %q", d, tt.n, src, dst, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d, src, dst string
			n           int
		}{
			"overflow 1": {"999", "3,0", "3,0", -3},
			"overflow 2": {"99.99", "4,2", "4,2", 1},
			"overflow 3": {"1234.5678", "8,4", "3,0", 0},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d, src, dst := mustParseRaw(t, tt.d), mustParseType(t, tt.src), mustParseType(t, tt.dst)
				_, err := d.Round(tt.n, src, dst)
				if !errors.Is(err, Overflow) {
					t.Errorf("%q.Round(%v, %v, %v) error = %v, want %v", d, tt.n, src, dst, err, Overflow)
				}
			})
		}
		if _, err := Inf(1).Round(0, mustParseType(t, "34,0"), mustParseType(t, "34,0")); err == nil {
			t.Errorf("Inf(1).Round() did not fail")
		}
	})
}

func TestDecimal_Trunc(t *testing.T) {
	tests := []struct {
		d, src, dst string
		n           int
		want        string
	}{
		{"1234.5678", "8,4", "8,4", 2, "1234.5600"},
		{"1234.5678", "8,4", "8,4", -2, "1200.0000"},
		{"-1234.5678", "8,4", "8,4", 0, "-1234.0000"},
		{"-15", "2,0", "2,0", -1, "-10"},
		{"999", "3,0", "3,0", -3, "0"},
		{"-0.9", "1,1", "1,1", 0, "0.0"},
	}
	for _, tt := range tests {
		d, src, dst := mustParseRaw(t, tt.d), mustParseType(t, tt.src), mustParseType(t, tt.dst)
		got, err := d.Trunc(tt.n, src, dst)
		if err != nil {
			t.Errorf("%q.Trunc(%v, %v, %v) failed: %v", d, tt.n, src, dst, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.Trunc(%v, %v, %v) = %q, want %q", d, tt.n, src, dst, got, tt.want)
		}
	}
}

func TestContext_Trunc(t *testing.T) {
	c := NewContext(HalfEven)
	typ := mustParseType(t, "3,2")
	d := mustParseRaw(t, "1.25")

	got, err := c.Trunc(d, 1, typ, typ)
	if err != nil || got.String() != "1.20" {
		t.Errorf("[half_even] trunc(1.25, 1) = %q, %v, want %q", got, err, "1.20")
	}
	got, err = c.Round(d, 1, typ, typ)
	if err != nil || got.String() != "1.20" {
		t.Errorf("[half_even] round(1.25, 1) = %q, %v, want %q", got, err, "1.20")
	}
	got, err = d.Round(1, typ, typ)
	if err != nil || got.String() != "1.30" {
		t.Errorf("round(1.25, 1) = %q, %v, want %q", got, err, "1.30")
	}
	if c.Rounding != HalfEven {
		t.Errorf("Trunc changed the rounding mode to %v", c.Rounding)
	}
}

func TestDecimal_Round_Idempotent(t *testing.T) {
	typ := mustParseType(t, "10,4")
	for _, s := range []string{"0", "1234.5678", "-0.0051", "99999.9999", "-5.5"} {
		d := mustParseRaw(t, s)
		for n := -8; n <= 6; n++ {
			once, err := d.Round(n, typ, typ)
			if err != nil {
				t.Errorf("%q.Round(%v) failed: %v", d, n, err)
				continue
			}
			twice, err := once.Round(n, typ, typ)
			if err != nil {
				t.Errorf("%q.Round(%v) failed: %v", once, n, err)
				continue
			}
			if !twice.equalExact(once) {
				t.Errorf("%q.Round(%v) = %q, want %q", once, n, twice, once)
			}
		}
	}
}

func TestQuantize_IntegralBoundary(t *testing.T) {
	d := mustParseRaw(t, "9234567890123456789012345678901234")

	got, c := defaultContext.quantize(&d.v, integralQuantizer(MaxPrec))
	if err := c.check(&got); err != nil {
		t.Fatalf("quantize(%v, 1E+34) failed: %v", d, err)
	}
	if want := "1" + strings.Repeat("0", 34); got.Text('f') != want {
		t.Errorf("quantize(%v, 1E+34) = %v, want %v", d, got.Text('f'), want)
	}

	got, c = defaultContext.quantize(&d.v, integralQuantizer(MaxPrec+1))
	if err := c.check(&got); err != nil {
		t.Fatalf("quantize(%v, 1E+35) failed: %v", d, err)
	}
	if !got.IsZero() {
		t.Errorf("quantize(%v, 1E+35) = %v, want 0", d, got.Text('f'))
	}
}

func TestDecimal_RoundForFormat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			n    int
			want string
		}{
			{"1.2345", 2, "1.23"},
			{"1.2355", 3, "1.236"},
			{"-1.2355", 3, "-1.236"},
			{"1.2345", 4, "1.2345"},
			{"1.2345", 10, "1.2345"},
			{"1.2345", -1, "1"},
			{"1.5", 0, "2"},
			{"1", 100, "1"},
			{"-0.001", 2, "-0.00"},
			{nines34 + "e-34", 33, "1." + strings.Repeat("0", 33)},
		}
		for _, tt := range tests {
			d := mustParseRaw(t, tt.d)
			got, err := d.RoundForFormat(tt.n)
			if err != nil {
				t.Errorf("%q.RoundForFormat(%v) failed: %v", d, tt.n, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.RoundForFormat(%v) = %q, want %q", d, tt.n, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := Inf(1).RoundForFormat(2); !errors.Is(err, InfiniteResult) {
			t.Errorf("Inf(1).RoundForFormat(2) error = %v, want %v", err, InfiniteResult)
		}
		if _, err := NaN().RoundForFormat(2); !errors.Is(err, NaNResult) {
			t.Errorf("NaN().RoundForFormat(2) error = %v, want %v", err, NaNResult)
		}
	})
}
