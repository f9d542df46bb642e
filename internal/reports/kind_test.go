package reports

import "testing"

func TestParseKindRoundTrip(t *testing.T) {
	for _, def := range Catalog() {
		kind, ok := ParseKind(def.Name)
		if !ok {
			t.Errorf("ParseKind(%q) not found", def.Name)
			continue
		}
		if kind != def.Kind {
			t.Errorf("ParseKind(%q) = %v, want %v", def.Name, kind, def.Kind)
		}
		if kind.String() != def.Name {
			t.Errorf("%v.String() = %q, want %q", kind, kind.String(), def.Name)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	for _, name := range []string{"", "bogus", "Transactions", "daily nav"} {
		if _, ok := ParseKind(name); ok {
			t.Errorf("ParseKind(%q) unexpectedly succeeded", name)
		}
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	if got := Kind(-1).String(); got != "unknown" {
		t.Errorf("Kind(-1).String() = %q, want unknown", got)
	}
	if got := numKinds.String(); got != "unknown" {
		t.Errorf("numKinds.String() = %q, want unknown", got)
	}
}

func TestCatalogComplete(t *testing.T) {
	kinds := AllKinds()
	if len(kinds) != int(numKinds) {
		t.Fatalf("AllKinds returned %d kinds, want %d", len(kinds), numKinds)
	}

	seen := map[string]bool{}
	for _, k := range kinds {
		def := k.Definition()
		if def.Name == "" {
			t.Errorf("kind %d has no catalog name", k)
		}
		if seen[def.Name] {
			t.Errorf("duplicate catalog name %q", def.Name)
		}
		seen[def.Name] = true
		if !def.Snapshot && (def.MinFactor <= 0 || def.MaxFactor < def.MinFactor) {
			t.Errorf("%s has invalid factor range [%f, %f]", def.Name, def.MinFactor, def.MaxFactor)
		}
	}
}
