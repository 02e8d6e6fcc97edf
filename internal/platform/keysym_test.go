package platform

import "testing"

func TestLookupKeysym(t *testing.T) {
	sym, err := LookupKeysym("Return")
	if err != nil || sym != KeysymReturn {
		t.Fatalf("Return = %#x, %v; want %#x", sym, err, KeysymReturn)
	}

	// Printable ASCII resolves to its own codepoint.
	sym, err = LookupKeysym("q")
	if err != nil || sym != 0x71 {
		t.Fatalf("q = %#x, %v; want 0x71", sym, err)
	}

	if _, err := LookupKeysym("NotAKey"); err == nil {
		t.Fatalf("unknown name accepted")
	}
	if _, err := LookupKeysym(""); err == nil {
		t.Fatalf("empty name accepted")
	}
}

func TestLookupModifier(t *testing.T) {
	mod, err := LookupModifier("alt")
	if err != nil || mod != ModAlt {
		t.Fatalf("alt = %v, %v; want %v", mod, err, ModAlt)
	}

	// super is an alias for logo.
	super, err := LookupModifier("super")
	if err != nil || super != ModLogo {
		t.Fatalf("super = %v, %v; want %v", super, err, ModLogo)
	}

	if _, err := LookupModifier("hyper"); err == nil {
		t.Fatalf("unknown modifier accepted")
	}
}
