package tools

import (
	"fmt"
	"sync"
	"testing"
)

func TestFactStoreRememberRecall(t *testing.T) {
	tests := []struct {
		name      string
		writeKey  string
		writeVal  string
		recallKey string
		expected  string
	}{
		{name: "plain", writeKey: "project", writeVal: "Apollo", recallKey: "project", expected: "Apollo"},
		{name: "key is case folded", writeKey: "Project", writeVal: "Apollo", recallKey: "project", expected: "Apollo"},
		{name: "key is trimmed", writeKey: "  project  ", writeVal: "Apollo", recallKey: "project", expected: "Apollo"},
		{name: "recall key normalized too", writeKey: "project", writeVal: "Apollo", recallKey: " PROJECT ", expected: "Apollo"},
		{name: "value is trimmed", writeKey: "project", writeVal: "  Apollo  ", recallKey: "project", expected: "Apollo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFactStore()

			wr := store.Remember(tt.writeKey, tt.writeVal)
			if !wr.OK || !wr.Event.OK {
				t.Fatalf("Remember result not ok: %+v", wr)
			}
			if wr.Event.Name != "facts.remember" {
				t.Errorf("event name = %q", wr.Event.Name)
			}

			rr := store.Recall(tt.recallKey)
			if !rr.OK {
				t.Fatalf("Recall result not ok: %+v", rr)
			}
			if rr.Content != tt.expected {
				t.Errorf("Recall content = %q, want %q", rr.Content, tt.expected)
			}
		})
	}
}

func TestFactStoreLastWriteWins(t *testing.T) {
	store := NewFactStore()
	store.Remember("project", "Apollo")
	store.Remember("Project", "Gemini")

	r := store.Recall("project")
	if r.Content != "Gemini" {
		t.Errorf("Recall content = %q, want %q", r.Content, "Gemini")
	}
}

func TestFactStoreMissIsRepeatable(t *testing.T) {
	store := NewFactStore()

	for i := 0; i < 3; i++ {
		r := store.Recall("mission")
		if r.OK || r.Event.OK {
			t.Fatalf("attempt %d: expected miss, got %+v", i, r)
		}
		if r.Content != "I don't have that saved yet." {
			t.Errorf("attempt %d: content = %q", i, r.Content)
		}
		if r.Event.Output != "Not found." {
			t.Errorf("attempt %d: event output = %q", i, r.Event.Output)
		}
	}
}

func TestFactStoreConcurrentAccess(t *testing.T) {
	store := NewFactStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%4)
			for j := 0; j < 100; j++ {
				store.Remember(key, "value")
				store.Recall(key)
			}
		}(i)
	}
	wg.Wait()

	if r := store.Recall("key-0"); !r.OK {
		t.Errorf("expected key-0 to be present after writes")
	}
}
