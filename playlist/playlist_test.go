package playlist

import (
	"sync"
	"testing"
)

func TestCategory_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat  Category
		want string
	}{
		{Music, "music"},
		{Jingle, "jingle"},
		{Commercial, "commercial"},
		{Voice, "voice"},
		{Other, "other"},
		{Category(99), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cat.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLibrary_AddAndGet(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	clip := &Clip{ID: "song-1", Category: Music, Format: "wav"}

	lib.Add(clip)

	got, ok := lib.Get("song-1")
	if !ok {
		t.Fatal("Library.Get() failed to find added clip")
	}
	if got != clip {
		t.Error("Library.Get() returned different clip instance")
	}
}

func TestLibrary_GetUnknown(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()

	if _, ok := lib.Get("missing"); ok {
		t.Error("Library.Get() returned ok=true for unknown id")
	}
}

func TestLibrary_Replace(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	lib.Add(&Clip{ID: "a", Category: Music})
	lib.Add(&Clip{ID: "a", Category: Jingle})

	got, ok := lib.Get("a")
	if !ok {
		t.Fatal("Library.Get() failed after replace")
	}
	if got.Category != Jingle {
		t.Errorf("Category = %v, want replacement (Jingle)", got.Category)
	}
	if lib.Len() != 1 {
		t.Errorf("Len() = %d, want 1", lib.Len())
	}
}

func TestLibrary_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			lib.Add(&Clip{ID: "shared"})
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = lib.Get("shared")
		}(i)
	}
	wg.Wait()

	if _, ok := lib.Get("shared"); !ok {
		t.Error("Library.Get() failed after concurrent operations")
	}
}
