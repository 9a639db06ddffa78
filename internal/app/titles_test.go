package app

import (
	"math/rand"
	"testing"

	"westscore/internal/config"
)

func TestRandomTitle(t *testing.T) {
	cfg := config.Default()
	cfg.Titles = []string{"one", "two", "three"}
	svc := NewGameService(&memStore{}, &seqIDs{}, &fixedClock{now: testNow}, cfg, rand.New(rand.NewSource(7)))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		title := svc.randomTitle()
		if title != "one" && title != "two" && title != "three" {
			t.Fatalf("title %q not from the pool", title)
		}
		seen[title] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected titles to vary, got %v", seen)
	}
}

func TestRandomTitle_EmptyPool(t *testing.T) {
	cfg := config.Default()
	cfg.Titles = nil
	svc := NewGameService(&memStore{}, &seqIDs{}, &fixedClock{now: testNow}, cfg, nil)
	if svc.randomTitle() == "" {
		t.Error("expected a fallback title")
	}
}
