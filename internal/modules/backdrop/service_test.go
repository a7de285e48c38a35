package backdrop

import "testing"

func TestNewService_DefaultImages(t *testing.T) {
	s := NewService(nil)
	if len(s.images) != len(DefaultImages) {
		t.Fatalf("expected %d images, got %d", len(DefaultImages), len(s.images))
	}
}

func TestPick_UsesIndex(t *testing.T) {
	s := NewService([]string{"a", "b", "c"})
	s.intN = func(n int) int {
		if n != 3 {
			t.Fatalf("intN called with %d, want 3", n)
		}
		return 2
	}
	if got := s.Pick(); got != "c" {
		t.Errorf("Pick() = %q, want c", got)
	}
}

func TestPick_AlwaysFromSet(t *testing.T) {
	s := NewService(nil)
	allowed := make(map[string]bool, len(DefaultImages))
	for _, img := range DefaultImages {
		allowed[img] = true
	}
	for i := 0; i < 200; i++ {
		if got := s.Pick(); !allowed[got] {
			t.Fatalf("Pick() returned unknown image %q", got)
		}
	}
}

func TestNewService_CopiesImages(t *testing.T) {
	imgs := []string{"a"}
	s := NewService(imgs)
	imgs[0] = "changed"
	if s.Pick() != "a" {
		t.Error("NewService kept the caller's slice")
	}
}
