package symtab

import "testing"

func TestInsertAndLookup(t *testing.T) {
	tab := New()
	if !tab.Insert("MAIN", 100, Code) {
		t.Fatal("expected insert to succeed")
	}
	sym, ok := tab.Lookup("MAIN")
	if !ok || sym.Address != 100 || sym.Flags != Code {
		t.Fatalf("unexpected symbol: %+v, ok=%v", sym, ok)
	}
}

func TestCodeAndDataMutuallyExclusive(t *testing.T) {
	tab := New()
	tab.Insert("X", 100, Code)
	if tab.Insert("X", 102, Data) {
		t.Fatal("expected Code+Data merge to fail")
	}
}

func TestExternMutuallyExclusiveWithCodeAndData(t *testing.T) {
	tab := New()
	tab.Insert("X", 100, Code)
	if tab.Insert("X", 0, Extern) {
		t.Fatal("expected Code+Extern merge to fail")
	}
}

func TestEntryAndExternMutuallyExclusive(t *testing.T) {
	tab := New()
	tab.Insert("X", 0, Extern)
	if tab.Insert("X", 0, Entry) {
		t.Fatal("expected Extern+Entry merge to fail")
	}
}

func TestEntryNotAssertedTwice(t *testing.T) {
	tab := New()
	tab.Insert("X", 100, Code)
	if !tab.Insert("X", 0, Entry) {
		t.Fatal("expected first Entry merge to succeed")
	}
	if tab.Insert("X", 0, Entry) {
		t.Fatal("expected second Entry merge to fail")
	}
}

func TestEntryBeforeDefinitionOrderIndependence(t *testing.T) {
	tab := New()
	if !tab.Insert("MAIN", 0, Entry) {
		t.Fatal("expected entry pre-declaration to succeed")
	}
	if !tab.Insert("MAIN", 100, Code) {
		t.Fatal("expected later definition to merge")
	}
	sym, _ := tab.Lookup("MAIN")
	if sym.Address != 100 || sym.Flags != Code|Entry {
		t.Fatalf("unexpected merged symbol: %+v", sym)
	}
}

func TestBumpDataAddresses(t *testing.T) {
	tab := New()
	tab.Insert("VAL", 100, Data)
	tab.Insert("MAIN", 100, Code)
	tab.BumpDataAddresses(2)

	val, _ := tab.Lookup("VAL")
	if val.Address != 102 {
		t.Fatalf("VAL.Address = %d, want 102", val.Address)
	}
	main, _ := tab.Lookup("MAIN")
	if main.Address != 100 {
		t.Fatalf("MAIN.Address = %d, want 100 (unaffected by bump)", main.Address)
	}
}

func TestEach(t *testing.T) {
	tab := New()
	tab.Insert("A", 1, Code)
	tab.Insert("B", 2, Data)

	seen := map[string]bool{}
	tab.Each(func(s *Symbol) { seen[s.Name] = true })

	if !seen["A"] || !seen["B"] || len(seen) != 2 {
		t.Fatalf("unexpected Each traversal: %+v", seen)
	}
}
