package router

import "testing"

func TestMatchGreeting(t *testing.T) {
	matching := []string{
		"hi", "  hi there", "Hello!", "HEY you", "hola", "namaste",
		"good morning", "Good   evening all", "good",
	}
	for _, text := range matching {
		if _, ok := matchGreeting(text); !ok {
			t.Errorf("matchGreeting(%q) = false, want true", text)
		}
	}

	nonMatching := []string{"history", "say hi for me", "goodbye math", "highway"}
	for _, text := range nonMatching {
		if _, ok := matchGreeting(text); ok {
			t.Errorf("matchGreeting(%q) = true, want false", text)
		}
	}
}

func TestMatchRemember(t *testing.T) {
	m, ok := matchRemember("remember project = Apollo")
	if !ok || m[0] != "project" || m[1] != "Apollo" {
		t.Errorf("got %v, %v", m, ok)
	}

	m, ok = matchRemember("  SAVE favourite colour=deep blue  ")
	if !ok || m[0] != "favourite colour" || m[1] != "deep blue" {
		t.Errorf("got %v, %v", m, ok)
	}

	if _, ok := matchRemember("remember the milk"); ok {
		t.Error("matched without a separator")
	}
}

func TestMatchRecall(t *testing.T) {
	m, ok := matchRecall("recall project")
	if !ok || m[0] != "project" {
		t.Errorf("got %v, %v", m, ok)
	}

	m, ok = matchRecall("What did I save for project")
	if !ok || m[0] != "project" {
		t.Errorf("got %v, %v", m, ok)
	}

	if _, ok := matchRecall("recall"); ok {
		t.Error("matched without a key")
	}
}

func TestMatchTime(t *testing.T) {
	matching := []string{"what time is it", "today's date please", "now", "the DATE, please"}
	for _, text := range matching {
		if _, ok := matchTime(text); !ok {
			t.Errorf("matchTime(%q) = false, want true", text)
		}
	}

	// Word-boundary match only: substrings inside words don't count.
	nonMatching := []string{"downtime report", "update me", "nowhere"}
	for _, text := range nonMatching {
		if _, ok := matchTime(text); ok {
			t.Errorf("matchTime(%q) = true, want false", text)
		}
	}
}

func TestMatchCalculate(t *testing.T) {
	m, ok := matchCalculate("calculate 2+2")
	if !ok || m[0] != "2+2" {
		t.Errorf("got %v, %v", m, ok)
	}

	m, ok = matchCalculate("  12*(3+4)  ")
	if !ok || m[0] != "12*(3+4)" {
		t.Errorf("bare shortcut got %v, %v", m, ok)
	}

	if _, ok := matchCalculate("what is 2+2"); ok {
		t.Error("letters should disable the bare shortcut")
	}
	if _, ok := matchCalculate(""); ok {
		t.Error("empty utterance matched")
	}
}

func TestMatchFollowup(t *testing.T) {
	matching := []string{
		"explain this", "can you explain that", "in brief please",
		"briefly", "why", "how so", "ok but WHY though",
	}
	for _, text := range matching {
		if _, ok := matchFollowup(text); !ok {
			t.Errorf("matchFollowup(%q) = false, want true", text)
		}
	}

	if _, ok := matchFollowup("explain"); ok {
		t.Error("bare 'explain' should not match")
	}
}

func TestRuleOrderIsFixed(t *testing.T) {
	r := newTestRouter(t, nil)

	expected := []string{"greeting", "remember", "recall", "time", "calculate", "followup"}
	if len(r.rules) != len(expected) {
		t.Fatalf("got %d rules, want %d", len(r.rules), len(expected))
	}
	for i, name := range expected {
		if r.rules[i].name != name {
			t.Errorf("rule %d = %q, want %q", i, r.rules[i].name, name)
		}
	}
}
