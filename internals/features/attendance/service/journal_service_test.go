package service

import "testing"

func TestChainHashDeterministic(t *testing.T) {
	a := ChainHash(GenesisHash, 1, "register_student", "admin", []byte(`{"student_name":"Alice"}`))
	b := ChainHash(GenesisHash, 1, "register_student", "admin", []byte(`{"student_name":"Alice"}`))
	if a != b {
		t.Fatalf("hash tidak deterministik: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("panjang hex sha256 = %d, want 64", len(a))
	}
}

func TestChainHashSensitiveToEveryField(t *testing.T) {
	base := ChainHash(GenesisHash, 1, "op", "actor", []byte(`{}`))
	variants := []string{
		ChainHash("lain", 1, "op", "actor", []byte(`{}`)),
		ChainHash(GenesisHash, 2, "op", "actor", []byte(`{}`)),
		ChainHash(GenesisHash, 1, "op2", "actor", []byte(`{}`)),
		ChainHash(GenesisHash, 1, "op", "actor2", []byte(`{}`)),
		ChainHash(GenesisHash, 1, "op", "actor", []byte(`{"x":1}`)),
	}
	for i, v := range variants {
		if v == base {
			t.Fatalf("variant %d menghasilkan hash sama dengan base", i)
		}
	}
}

func TestChainHashFieldSeparation(t *testing.T) {
	// "ab"+"c" vs "a"+"bc" harus beda berkat separator
	a := ChainHash(GenesisHash, 1, "ab", "c", []byte(``))
	b := ChainHash(GenesisHash, 1, "a", "bc", []byte(``))
	if a == b {
		t.Fatal("field bleed: op/actor tidak terpisah dalam hash")
	}
}

func TestDisabledJournalIsNoop(t *testing.T) {
	var s *JournalService
	if s.Enabled() {
		t.Fatal("nil service reported enabled")
	}

	s = New(nil)
	if s.Enabled() {
		t.Fatal("service tanpa DB reported enabled")
	}
	if e, err := s.Append("op", "actor", map[string]string{"k": "v"}); err != nil || e != nil {
		t.Fatalf("Append tanpa DB = (%v, %v), want (nil, nil)", e, err)
	}
	if n, err := s.Verify(); err != nil || n != 0 {
		t.Fatalf("Verify tanpa DB = (%d, %v), want (0, nil)", n, err)
	}
}
