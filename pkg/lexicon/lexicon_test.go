package lexicon

import (
	"testing"

	"github.com/crossplay/backend/pkg/letterset"
)

func full(n int) []letterset.LetterSet {
	domains := make([]letterset.LetterSet, n)
	for i := range domains {
		domains[i] = letterset.Full
	}
	return domains
}

func TestAccepts(t *testing.T) {
	l := New()
	l.Insert("CAT")
	l.Insert("CAR")

	tests := []struct {
		word string
		want bool
	}{
		{"CAT", true},
		{"CAR", true},
		{"CA", false},
		{"CATS", false},
		{"DOG", false},
	}
	for _, tt := range tests {
		if got := l.Accepts(tt.word); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	l := New()
	l.Insert("CAT")

	if !l.HasPrefix("CA") {
		t.Errorf("HasPrefix(%q) = false, want true", "CA")
	}
	if !l.HasPrefix("CAT") {
		t.Errorf("HasPrefix(%q) = false, want true", "CAT")
	}
	if l.HasPrefix("DO") {
		t.Errorf("HasPrefix(%q) = true, want false", "DO")
	}
	if !l.HasPrefix("") {
		t.Errorf("HasPrefix(%q) = false, want true (root is reachable)", "")
	}
}

func TestChildrenAt(t *testing.T) {
	l := New()
	l.Insert("CAT")
	l.Insert("CAR")
	l.Insert("COW")

	set, ok := l.ChildrenAt("C")
	if !ok {
		t.Fatalf("ChildrenAt(%q) ok = false, want true", "C")
	}
	want := letterset.Singleton('A').Union(letterset.Singleton('O'))
	if set != want {
		t.Errorf("ChildrenAt(%q) = %v, want %v", "C", set, want)
	}

	if _, ok := l.ChildrenAt("Z"); ok {
		t.Errorf("ChildrenAt(%q) ok = true, want false", "Z")
	}
}

func TestPossibilityMasks_UnconstrainedMatchesInsertedWord(t *testing.T) {
	l := New()
	l.Insert("CAT")

	masks := l.PossibilityMasks(full(3))
	if masks == nil {
		t.Fatalf("PossibilityMasks() = nil, want non-nil")
	}
	want := []byte{'C', 'A', 'T'}
	for i, w := range want {
		if got, ok := masks[i].IsSingleton(); !ok || got != w {
			t.Errorf("masks[%d] = %v, want singleton %q", i, masks[i], w)
		}
	}
}

func TestPossibilityMasks_UnionsAcrossMultipleWords(t *testing.T) {
	l := New()
	l.Insert("CAT")
	l.Insert("COT")
	l.Insert("CAR")

	masks := l.PossibilityMasks(full(3))
	if masks == nil {
		t.Fatalf("PossibilityMasks() = nil, want non-nil")
	}
	if got, ok := masks[0].IsSingleton(); !ok || got != 'C' {
		t.Errorf("masks[0] = %v, want singleton 'C'", masks[0])
	}
	wantMid := letterset.Singleton('A').Union(letterset.Singleton('O'))
	if masks[1] != wantMid {
		t.Errorf("masks[1] = %v, want %v", masks[1], wantMid)
	}
	wantLast := letterset.Singleton('T').Union(letterset.Singleton('R'))
	if masks[2] != wantLast {
		t.Errorf("masks[2] = %v, want %v", masks[2], wantLast)
	}
}

func TestPossibilityMasks_ConstrainedDomainExcludesDeadWords(t *testing.T) {
	l := New()
	l.Insert("CAT")
	l.Insert("DOG")

	domains := []letterset.LetterSet{
		letterset.Singleton('C'),
		letterset.Full,
		letterset.Full,
	}
	masks := l.PossibilityMasks(domains)
	if masks == nil {
		t.Fatalf("PossibilityMasks() = nil, want non-nil")
	}
	if got, ok := masks[1].IsSingleton(); !ok || got != 'A' {
		t.Errorf("masks[1] = %v, want singleton 'A' (DOG excluded by fixed 'C')", masks[1])
	}
}

func TestPossibilityMasks_NoCompletionReturnsNil(t *testing.T) {
	l := New()
	l.Insert("CAT")

	domains := []letterset.LetterSet{
		letterset.Singleton('Z'),
		letterset.Full,
		letterset.Full,
	}
	if masks := l.PossibilityMasks(domains); masks != nil {
		t.Errorf("PossibilityMasks() = %v, want nil", masks)
	}
}

func TestPossibilityMasks_EmptyDictionaryReturnsNil(t *testing.T) {
	l := New()
	if masks := l.PossibilityMasks(full(3)); masks != nil {
		t.Errorf("PossibilityMasks() = %v, want nil", masks)
	}
}

func TestPossibilityMasks_WrongLengthReturnsNil(t *testing.T) {
	l := New()
	l.Insert("CAT")
	if masks := l.PossibilityMasks(full(4)); masks != nil {
		t.Errorf("PossibilityMasks() = %v, want nil (no length-4 word)", masks)
	}
}

func TestPossibilityMasks_CachedAndUncachedAgree(t *testing.T) {
	words := []string{"CAT", "COT", "CAR", "CAB", "DOG", "DOT", "COG"}

	plain := New()
	cached := NewWithCache(64)
	for _, w := range words {
		plain.Insert(w)
		cached.Insert(w)
	}

	domains := []letterset.LetterSet{
		letterset.Singleton('C').Union(letterset.Singleton('D')),
		letterset.Full,
		letterset.Full,
	}

	// Run twice through the cached lexicon to exercise both the miss and
	// the hit path, and confirm both agree with the uncached traversal.
	for i := 0; i < 2; i++ {
		got := cached.PossibilityMasks(domains)
		want := plain.PossibilityMasks(domains)
		if len(got) != len(want) {
			t.Fatalf("run %d: len(masks) = %d, want %d", i, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("run %d: masks[%d] = %v, want %v", i, j, got[j], want[j])
			}
		}
	}
}

func TestInsert_IsIdempotent(t *testing.T) {
	l := New()
	l.Insert("CAT")
	l.Insert("CAT")

	if !l.Accepts("CAT") {
		t.Errorf("Accepts(%q) = false after duplicate Insert, want true", "CAT")
	}
}
