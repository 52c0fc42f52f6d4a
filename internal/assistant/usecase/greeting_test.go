package usecase

import (
	"strings"
	"testing"

	"ai-shopping-assistant/internal/model"
)

func TestIsGreeting(t *testing.T) {
	withContext := []model.Turn{{Role: "user", Content: "earlier message"}}

	for _, tc := range []struct {
		name string
		q    model.Query
		want bool
	}{
		{"hello", model.Query{Text: "hello", Context: withContext}, true},
		{"mixed case", model.Query{Text: "Good Morning", Context: withContext}, true},
		{"punctuated", model.Query{Text: "Hey!", Context: withContext}, true},
		{"empty context", model.Query{Text: "show me shoes"}, true},
		{"plain question", model.Query{Text: "show me shoes", Context: withContext}, false},
		{"greeting inside sentence", model.Query{Text: "hello kitty backpack", Context: withContext}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := isGreeting(tc.q); got != tc.want {
				t.Errorf("isGreeting(%q) = %t, want %t", tc.q.Text, got, tc.want)
			}
		})
	}
}

func TestApplyGreeting(t *testing.T) {
	uc := &implUseCase{l: &mockLogger{}}

	t.Run("guest gets nudge", func(t *testing.T) {
		out := uc.applyGreeting("Here you go.", model.Query{Text: "hi"})
		if !strings.HasPrefix(out, "Hello there!") {
			t.Errorf("expected anonymous greeting, got %q", out)
		}
		if !strings.Contains(out, MsgGuestNudge) {
			t.Errorf("expected signup nudge for guest, got %q", out)
		}
		if !strings.Contains(out, "Here you go.") {
			t.Errorf("original answer must be preserved, got %q", out)
		}
	})

	t.Run("references last search term", func(t *testing.T) {
		q := model.Query{
			Text: "hello",
			User: &model.User{ID: "u1", Name: "Sam"},
			BrowsingContext: &model.BrowsingContext{
				SearchHistory: []string{"jeans", "summer dresses"},
			},
		}
		out := uc.applyGreeting("Answer.", q)
		if !strings.HasPrefix(out, "Hello Sam!") {
			t.Errorf("expected named greeting, got %q", out)
		}
		if !strings.Contains(out, "summer dresses") {
			t.Errorf("expected most recent search term, got %q", out)
		}
	})

	t.Run("non-greeting untouched", func(t *testing.T) {
		q := model.Query{Text: "find me a raincoat", Context: []model.Turn{{Role: "user", Content: "x"}}}
		if out := uc.applyGreeting("Answer.", q); out != "Answer." {
			t.Errorf("non-greeting query must pass through unchanged, got %q", out)
		}
	})
}
