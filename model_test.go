package versioncatalog

import (
	"errors"
	"slices"
	"testing"
)

func ptr(v RichVersion) *RichVersion { return &v }

func TestModel_AddLibrary(t *testing.T) {
	m := NewModel()
	lib := Library{Alias: "a", Group: "g", Name: "n", Version: VersionModel{Version: ptr(RichVersion{Require: "1.0"})}}
	m.AddLibrary(lib)
	m.AddLibrary(Library{Alias: "b", Group: "g", Name: "n", Version: VersionModel{Version: ptr(RichVersion{Require: "1.0"})}})

	if got := len(m.Libraries()); got != 1 {
		t.Fatalf("len(Libraries()) = %d, want 1 (equal libraries are deduplicated)", got)
	}
	if _, ok := m.LibraryByAlias("b"); !ok {
		t.Error("LibraryByAlias(\"b\") not found")
	}

	newer := Library{Alias: "a", Group: "g", Name: "n", Version: VersionModel{Version: ptr(RichVersion{Require: "2.0"})}}
	m.AddLibrary(newer)
	if got := len(m.Libraries()); got != 2 {
		t.Fatalf("len(Libraries()) = %d, want 2", got)
	}
	found, ok := m.FindLibrary("g", "n")
	if !ok || !found.Equal(newer) {
		t.Errorf("FindLibrary() = %+v, %v; want last inserted", found, ok)
	}
	if _, ok := m.FindLibrary("g", "missing"); ok {
		t.Error("FindLibrary() found a missing library")
	}
}

func TestModel_LibraryAliases(t *testing.T) {
	m := NewModel()
	m.AddLibrary(Library{Alias: "b", Group: "g", Name: "n", Version: VersionModel{Reference: "v"}})
	m.AddLibrary(Library{Alias: "a", Group: "g", Name: "n", Version: VersionModel{Reference: "v"}})

	if got := len(m.Libraries()); got != 1 {
		t.Fatalf("len(Libraries()) = %d, want 1", got)
	}
	got := m.LibraryAliases()
	if len(got) != 2 || got[0].Alias != "a" || got[1].Alias != "b" {
		t.Errorf("LibraryAliases() = %+v, want a and b", got)
	}
}

func TestModel_ReverseIndex(t *testing.T) {
	m := NewModel()
	a := Library{Alias: "a", Group: "g", Name: "a", Version: VersionModel{Reference: "v"}}
	b := Library{Alias: "b", Group: "g", Name: "b", Version: VersionModel{Reference: "v"}}
	m.AddLibrary(a)
	m.AddLibrary(b)
	m.AddLibrary(a)

	got := m.FindLibrariesForVersionReference("v")
	if len(got) != 2 || !got[0].Equal(a) || !got[1].Equal(b) {
		t.Errorf("FindLibrariesForVersionReference(\"v\") = %+v", got)
	}

	none := m.FindLibrariesForVersionReference("other")
	if none == nil || len(none) != 0 {
		t.Errorf("FindLibrariesForVersionReference(\"other\") = %#v, want empty non-nil", none)
	}

	if refs := m.VersionReferences(); !slices.Equal(refs, []string{"v"}) {
		t.Errorf("VersionReferences() = %v", refs)
	}
}

func TestModel_AddVersion(t *testing.T) {
	tests := []struct {
		name    string
		v       VersionModel
		wantErr bool
	}{
		{"valid", VersionModel{Reference: "v", Version: ptr(RichVersion{Require: "1.0"})}, false},
		{"no reference", VersionModel{Version: ptr(RichVersion{Require: "1.0"})}, true},
		{"no reference no version", VersionModel{}, true},
		{"no version", VersionModel{Reference: "v"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			err := m.AddVersion(tt.v)
			if tt.wantErr {
				if !errors.Is(err, ErrIllegalArgument) {
					t.Fatalf("AddVersion() error = %v, want ErrIllegalArgument", err)
				}
				if len(m.Versions()) != 0 {
					t.Error("failed AddVersion() modified the model")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddVersion() unexpected error: %v", err)
			}
			got, ok := m.FindVersion("v")
			if !ok || !got.Equal(tt.v) {
				t.Errorf("FindVersion() = %+v, %v", got, ok)
			}
		})
	}
}

func TestModel_AddVersionOverwrite(t *testing.T) {
	m := NewModel()
	first := VersionModel{Reference: "v", Version: ptr(RichVersion{Require: "1.0"})}
	second := VersionModel{Reference: "v", Version: ptr(RichVersion{Require: "2.0"})}
	for _, v := range []VersionModel{first, second, first} {
		if err := m.AddVersion(v); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(m.Versions()); got != 2 {
		t.Errorf("len(Versions()) = %d, want 2", got)
	}
	got, _ := m.FindVersion("v")
	if !got.Equal(first) {
		t.Errorf("FindVersion() = %v, want last written %v", got, first)
	}
}

func TestLibrary_EqualIgnoresAlias(t *testing.T) {
	a := Library{Alias: "one", Group: "g", Name: "n", Version: VersionModel{Reference: "v"}, Position: Position{Line: 1, Column: 1}}
	b := Library{Alias: "two", Group: "g", Name: "n", Version: VersionModel{Reference: "v"}, Position: Position{Line: 9, Column: 3}}
	if !a.Equal(b) {
		t.Error("libraries differing only by alias and position should be equal")
	}
	c := b
	c.Version = VersionModel{Reference: "w"}
	if a.Equal(c) {
		t.Error("libraries with different references should differ")
	}
	if a.Module() != "g:n" {
		t.Errorf("Module() = %q", a.Module())
	}
}

func TestVersionModel(t *testing.T) {
	ref := VersionModel{Reference: "v"}
	inline := VersionModel{Version: ptr(RichVersion{Require: "1.0"})}
	declared := VersionModel{Reference: "v", Version: ptr(RichVersion{Strictly: "1.0"})}

	if !ref.IsReference() || inline.IsReference() || declared.IsReference() {
		t.Error("IsReference() mismatch")
	}
	if ref.Equal(declared) || inline.Equal(ref) {
		t.Error("Equal() should distinguish deferred and resolved models")
	}
	for m, want := range map[*VersionModel]string{&ref: "ref:v", &inline: "1.0", &declared: "v=1.0!!"} {
		if got := m.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestModel_ResolveVersion(t *testing.T) {
	m := NewModel()
	if err := m.AddVersion(VersionModel{Reference: "v", Version: ptr(RichVersion{Require: "1.0"})}); err != nil {
		t.Fatal(err)
	}

	got, ok := m.ResolveVersion(Library{Version: VersionModel{Reference: "v"}})
	if !ok || got.Require != "1.0" {
		t.Errorf("ResolveVersion(ref) = %v, %v", got, ok)
	}
	got, ok = m.ResolveVersion(Library{Version: VersionModel{Version: ptr(RichVersion{Require: "3.0"})}})
	if !ok || got.Require != "3.0" {
		t.Errorf("ResolveVersion(inline) = %v, %v", got, ok)
	}
	if _, ok := m.ResolveVersion(Library{Version: VersionModel{Reference: "missing"}}); ok {
		t.Error("ResolveVersion(missing) should fail")
	}
}

func TestModel_Clone(t *testing.T) {
	m := NewModel()
	rv := RichVersion{Require: "1.0", RejectedVersions: []string{"0.9"}}
	if err := m.AddVersion(VersionModel{Reference: "v", Version: &rv}); err != nil {
		t.Fatal(err)
	}
	m.AddLibrary(Library{Alias: "a", Group: "g", Name: "n", Version: VersionModel{Reference: "v"}})

	c := m.Clone()
	rv.RejectedVersions[0] = "changed"
	v, _ := m.FindVersion("v")
	v.Version.Require = "mutated"

	cv, ok := c.FindVersion("v")
	if !ok || cv.Version.Require != "1.0" || cv.Version.RejectedVersions[0] != "0.9" {
		t.Errorf("clone shares state with original: %+v", cv.Version)
	}
	if got := c.FindLibrariesForVersionReference("v"); len(got) != 1 {
		t.Errorf("clone lost reverse index: %+v", got)
	}
}

func TestPosition(t *testing.T) {
	if (Position{}).IsValid() {
		t.Error("zero Position should be invalid")
	}
	p := Position{Line: 3, Column: 7}
	if !p.IsValid() || p.String() != "3:7" {
		t.Errorf("Position = %v", p)
	}
}
