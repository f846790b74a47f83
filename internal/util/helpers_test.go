package util

import "testing"

func TestPtrDeref(t *testing.T) {
	p := Ptr(42)
	if Deref(p) != 42 {
		t.Fatalf("Deref(Ptr(42)) = %d", Deref(p))
	}
	var nilStr *string
	if Deref(nilStr) != "" {
		t.Fatalf("Deref(nil) should be zero value")
	}
}
