package envelope

import "testing"

func TestNewCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	env := New(src)
	src[0] = 0xFF

	if env.Data()[0] != 1 {
		t.Fatalf("expected envelope to own a copy, got %v", env.Data())
	}
}

func TestEmptyHasZeroSize(t *testing.T) {
	if Empty.Size() != 0 {
		t.Fatalf("expected Empty to have size 0, got %d", Empty.Size())
	}
}

func TestNewViewDoesNotCopy(t *testing.T) {
	src := []byte{1, 2, 3}
	v := NewView(src)
	src[0] = 0xFF

	if v.Bytes()[0] != 0xFF {
		t.Fatalf("expected view to alias input, got %v", v.Bytes())
	}
	if v.Len() != 3 {
		t.Fatalf("expected len 3, got %d", v.Len())
	}
}
