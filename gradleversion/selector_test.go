package gradleversion

import (
	"errors"
	"testing"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		selector string
		accepts  []string
		rejects  []string
		dynamic  bool
	}{
		{selector: "1.0", accepts: []string{"1.0"}, rejects: []string{"1.1", "1.0.0", "1.0-rc", "1-0", "1_0", "1.00"}},
		{selector: "1.+", accepts: []string{"1.0", "1.99"}, rejects: []string{"2.0", "10.0"}, dynamic: true},
		{selector: "+", accepts: []string{"0.1", "2.0-SNAPSHOT"}, dynamic: true},
		{selector: "[1.0,2.0]", accepts: []string{"1.0", "1.5", "2.0"}, rejects: []string{"0.9", "2.0.1"}, dynamic: true},
		{selector: "[1.0,2.0)", accepts: []string{"1.0", "1.99"}, rejects: []string{"2.0"}, dynamic: true},
		{selector: "]1.0,2.0[", accepts: []string{"1.0.1"}, rejects: []string{"1.0", "2.0"}, dynamic: true},
		{selector: "(,2.0]", accepts: []string{"0.1", "2.0"}, rejects: []string{"2.1"}, dynamic: true},
		{selector: "[1.0,)", accepts: []string{"1.0", "100"}, rejects: []string{"0.9"}, dynamic: true},
		{selector: "latest.release", accepts: []string{"1.0"}, rejects: []string{"1.1-SNAPSHOT"}, dynamic: true},
		{selector: "latest.integration", accepts: []string{"1.0", "1.1-SNAPSHOT"}, dynamic: true},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel, err := ParseSelector(tt.selector)
			if err != nil {
				t.Fatalf("ParseSelector(%q) error = %v", tt.selector, err)
			}
			if sel.String() != tt.selector {
				t.Errorf("String() = %q, want %q", sel.String(), tt.selector)
			}
			if sel.IsDynamic() != tt.dynamic {
				t.Errorf("IsDynamic() = %v, want %v", sel.IsDynamic(), tt.dynamic)
			}
			for _, v := range tt.accepts {
				if !sel.Accepts(v) {
					t.Errorf("Accepts(%q) = false, want true", v)
				}
			}
			for _, v := range tt.rejects {
				if sel.Accepts(v) {
					t.Errorf("Accepts(%q) = true, want false", v)
				}
			}
		})
	}
}

func TestParseSelectorErrors(t *testing.T) {
	for _, s := range []string{"", "[2.0,1.0]", "[,]", "[1.0,2.0,3.0]", "[1.0,2.0"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseSelector(s)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseSelector(%q) error = %v, want *ParseError", s, err)
			}
			if perr.Selector != s {
				t.Errorf("ParseError.Selector = %q, want %q", perr.Selector, s)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	candidates := []string{"1.0", "1.1", "1.2", "2.0", "2.1-SNAPSHOT"}

	tests := []struct {
		name   string
		c      Constraint
		want   string
		wantOK bool
	}{
		{name: "no constraint picks highest", c: Constraint{}, want: "2.1-SNAPSHOT", wantOK: true},
		{name: "exact require", c: Constraint{Require: "1.1"}, want: "1.1", wantOK: true},
		{name: "require range", c: Constraint{Require: "[1.0,2.0)"}, want: "1.2", wantOK: true},
		{name: "strictly wins over require", c: Constraint{Require: "2.0", Strictly: "1.+"}, want: "1.2", wantOK: true},
		{name: "prefer breaks ties", c: Constraint{Strictly: "[1.0,2.0)", Prefer: "1.1"}, want: "1.1", wantOK: true},
		{name: "unavailable prefer", c: Constraint{Require: "1.+", Prefer: "1.5"}, want: "1.2", wantOK: true},
		{name: "prefer alone", c: Constraint{Prefer: "1.0"}, want: "1.0", wantOK: true},
		{name: "reject exact", c: Constraint{Require: "1.+", Reject: []string{"1.2"}}, want: "1.1", wantOK: true},
		{name: "reject range", c: Constraint{Reject: []string{"[2.0,)"}}, want: "1.2", wantOK: true},
		{name: "rejected prefer", c: Constraint{Require: "1.+", Prefer: "1.1", Reject: []string{"1.1"}}, want: "1.2", wantOK: true},
		{name: "reject all", c: Constraint{Require: "1.0", RejectAll: true}, wantOK: false},
		{name: "nothing matches", c: Constraint{Require: "3.0"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Select(tt.c, candidates)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Select() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSelectInvalidSelector(t *testing.T) {
	_, _, err := Select(Constraint{Require: "[2.0,1.0]"}, []string{"1.0"})
	if err == nil {
		t.Fatal("Select() error = nil, want error for invalid range")
	}
}
