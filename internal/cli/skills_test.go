package cli

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSkillsList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/progress/me/skills" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"skills":[{"skill":"listening","rating":4},{"skill":"reading","rating":2}]}`))
	}))
	defer server.Close()

	env, stdout, _ := newTestEnv(server, "lng_token")

	if err := execute(t, SkillsCmd(env), "list"); err != nil {
		t.Fatalf("skills list unexpected error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "listening") || !strings.Contains(out, "4/5") {
		t.Errorf("stdout = %q, want listening 4/5", out)
	}
	if !strings.Contains(out, "reading") || !strings.Contains(out, "2/5") {
		t.Errorf("stdout = %q, want reading 2/5", out)
	}
}

func TestSkillsUpdate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Skill  string `json:"skill"`
			Rating int    `json:"rating"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if payload.Skill != "speaking" || payload.Rating != 3 {
			t.Errorf("payload = %+v, want speaking/3", payload)
		}
		w.Write([]byte(`{"skill":"speaking","rating":3}`))
	}))
	defer server.Close()

	env, stdout, _ := newTestEnv(server, "lng_token")

	if err := execute(t, SkillsCmd(env), "update", "speaking", "3"); err != nil {
		t.Fatalf("skills update unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "speaking is now 3/5") {
		t.Errorf("stdout = %q, want confirmation line", stdout.String())
	}
}

func TestSkillsUpdate_InvalidRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating string
	}{
		{"too high", "6"},
		{"negative", "-1"},
		{"not a number", "five"},
	}

	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv(server, "lng_token")

			err := execute(t, SkillsCmd(env), "update", "listening", tt.rating)
			if !errors.Is(err, ErrInvalidRating) {
				t.Fatalf("skills update rating %q error = %v, want %v", tt.rating, err, ErrInvalidRating)
			}
		})
	}
}

func TestAchievementsCmd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"achievements":[
			{"id":"first-lesson","title":"First Steps","progress":1,"target":1,"unlocked_at":"2026-08-01T10:00:00Z"},
			{"id":"marathon","title":"Marathon","description":"Complete 100 lessons","progress":42,"target":100}
		]}`))
	}))
	defer server.Close()

	env, stdout, _ := newTestEnv(server, "lng_token")

	if err := execute(t, AchievementsCmd(env)); err != nil {
		t.Fatalf("achievements unexpected error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "[x] First Steps (1/1)") {
		t.Errorf("stdout = %q, want unlocked marker for First Steps", out)
	}
	if !strings.Contains(out, "[ ] Marathon (42/100)") {
		t.Errorf("stdout = %q, want locked marker for Marathon", out)
	}
	if !strings.Contains(out, "Complete 100 lessons") {
		t.Errorf("stdout = %q, want description line", out)
	}
}
