package arena

import (
	"errors"
	"testing"
)

func TestAllocDoesNotOverlap(t *testing.T) {
	a := New(16)

	first, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	second, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	for i := range first {
		first[i] = 0xaa
	}
	for i, b := range second {
		if b != 0 {
			t.Fatalf("second[%d] = %#x, expected untouched memory", i, b)
		}
	}
	if cap(first) != 8 {
		t.Errorf("Expected capacity 8, got %d", cap(first))
	}
	if a.Used() != 16 || a.Cap() != 16 {
		t.Errorf("Expected 16/16 used, got %d/%d", a.Used(), a.Cap())
	}
}

func TestAllocExhaustion(t *testing.T) {
	a := New(10)
	if _, err := a.Alloc(6); err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	_, err := a.Alloc(5)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Expected ErrExhausted, got %v", err)
	}
	if a.Used() != 6 {
		t.Errorf("Failed allocation must not consume space, used = %d", a.Used())
	}

	if _, err := a.Alloc(-1); err == nil {
		t.Error("Expected error for negative size")
	}
}

func TestResetZeroesReusedMemory(t *testing.T) {
	a := New(4)
	buf, _ := a.Alloc(4)
	copy(buf, []byte{1, 2, 3, 4})

	a.Reset()
	if a.Used() != 0 {
		t.Fatalf("Expected 0 used after Reset, got %d", a.Used())
	}

	buf, err := a.Alloc(4)
	if err != nil {
		t.Fatalf("Alloc after Reset: %v", err)
	}
	for i, b := range buf {
		if b != 0 {
			t.Errorf("buf[%d] = %d, expected zero", i, b)
		}
	}
}
