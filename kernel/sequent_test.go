package kernel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glossopoeia/pts/kernel/level"
	"github.com/glossopoeia/pts/kernel/term"
)

func TestSequentPersistence(t *testing.T) {
	x, y := term.NewToken("x"), term.NewToken("y")
	u0 := term.NewUniverse(level.NewZero())

	empty := NewSequent()
	one := empty.With(x, u0)
	two := one.With(y, term.NewVar(x))
	back := two.Deleted(y)

	if empty.Len() != 0 || one.Len() != 1 || two.Len() != 2 || back.Len() != 1 {
		t.Fatalf("Unexpected sizes %d %d %d %d", empty.Len(), one.Len(), two.Len(), back.Len())
	}
	if one.Has(y) {
		t.Errorf("Extending a sequent changed its source")
	}
	if !two.Has(y) {
		t.Errorf("Deleting from a sequent changed its source")
	}
	if ty, ok := two.Lookup(y); !ok || !term.EqualByDef(ty, term.NewVar(x)) {
		t.Errorf("Expected y : x, got %v, %v instead", ty, ok)
	}

	var zero Sequent
	if zero.Len() != 0 || zero.Has(x) || zero.Deleted(x).Len() != 0 {
		t.Errorf("Zero sequent was not empty")
	}
	if grown := zero.With(x, u0); !grown.Has(x) {
		t.Errorf("Could not extend the zero sequent")
	}
}

func TestSequentKeys(t *testing.T) {
	a, b, c := term.NewToken("a"), term.NewToken("b"), term.NewToken("c")
	u0 := term.NewUniverse(level.NewZero())

	s := NewSequent().With(c, u0).With(a, u0).With(b, term.NewVar(a))
	if diff := cmp.Diff([]string{"a", "b", "c"}, tokenHints(s.Keys())); diff != "" {
		t.Errorf("Keys were not in minting order (-want +got):\n%s", diff)
	}
	if s.String() != "a : U0, b : a, c : U0" {
		t.Errorf("Unexpected rendering %q", s.String())
	}
	if !s.Domain().Contains(b) || s.Domain().Size() != 3 {
		t.Errorf("Unexpected domain %v", s.Domain())
	}
}

func TestSequentEquality(t *testing.T) {
	x, y := term.NewToken("x"), term.NewToken("y")
	u0 := term.NewUniverse(level.NewZero())
	u1 := term.NewUniverse(level.FromInt(1))

	data := []struct {
		left  Sequent
		right Sequent
	}{
		{NewSequent(), Sequent{}},
		{NewSequent().With(x, u0), NewSequent().With(x, u0)},
		{NewSequent().With(x, u0), NewSequent().With(x, u1)},
		{NewSequent().With(x, u0), NewSequent().With(y, u0)},
		{NewSequent().With(x, u0), NewSequent().With(x, u0).With(y, u0)},
	}

	testCases := []struct {
		name     string
		expKeys  bool
		expValue bool
	}{
		{"Empty", true, true},
		{"Same", true, true},
		{"SameKeysDifferentTypes", true, false},
		{"DifferentKeys", false, false},
		{"Superset", false, false},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, r := data[ind].left, data[ind].right
			if res := l.EqualKeys(r); res != tc.expKeys {
				t.Errorf("Expected key equality %v, got %v instead", tc.expKeys, res)
			}
			if res := r.EqualKeys(l); res != tc.expKeys {
				t.Errorf("Expected symmetric key equality %v, got %v instead", tc.expKeys, res)
			}
			if res := l.Equal(r); res != tc.expValue {
				t.Errorf("Expected equality %v, got %v instead", tc.expValue, res)
			}
		})
	}
}

func tokenHints(tokens []term.Token) []string {
	res := make([]string, len(tokens))
	for i, tok := range tokens {
		res[i] = tok.Hint()
	}
	return res
}
