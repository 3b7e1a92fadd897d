package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sigmavirus24/rfc3986/internal/types"
)

func TestValues(t *testing.T) {
	t.Parallel()

	vals := make(types.Values).
		Set("a", "1").
		Append("b", "2").
		Append("b", "3")

	if got, want := vals.Get("b"), []string{"2", "3"}; !cmp.Equal(got, want) {
		t.Errorf("vals.Get(%q) = %v, want %v", "b", got, want)
	}
	if v, ok := vals.First("b"); !ok || v != "2" {
		t.Errorf("vals.First(%q) = (%q, %v), want (%q, true)", "b", v, ok, "2")
	}
	if v, ok := vals.Last("b"); !ok || v != "3" {
		t.Errorf("vals.Last(%q) = (%q, %v), want (%q, true)", "b", v, ok, "3")
	}
	if v, ok := vals.First("missing"); ok {
		t.Errorf("vals.First(%q) = (%q, %v), want (%q, false)", "missing", v, ok, "")
	}

	// keys are case-sensitive
	if vals.Has("A") {
		t.Errorf("vals.Has(%q) = true, want false", "A")
	}

	vals.Set("b", "4")
	if got, want := vals.Get("b"), []string{"4"}; !cmp.Equal(got, want) {
		t.Errorf("vals.Set(%q, %q); vals.Get(%q) = %v, want %v", "b", "4", "b", got, want)
	}

	vals.Del("a")
	if vals.Has("a") {
		t.Errorf("vals.Has(%q) = true after Del, want false", "a")
	}
}

func TestValues_Clone(t *testing.T) {
	t.Parallel()

	if got := (types.Values)(nil).Clone(); got != nil {
		t.Errorf("nil.Clone() = %v, want nil", got)
	}

	vals := make(types.Values).Append("a", "1").Append("a", "2")
	vals2 := vals.Clone()
	vals2.Append("a", "3")

	if got, want := vals.Get("a"), []string{"1", "2"}; !cmp.Equal(got, want) {
		t.Errorf("original mutated through clone: vals.Get(%q) = %v, want %v", "a", got, want)
	}
}
