package plot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustInterval(t *testing.T, lo, hi float64) Interval {
	t.Helper()
	iv, err := NewInterval(lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	return iv
}
