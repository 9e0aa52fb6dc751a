package api

import (
	"context"
	"net/http"
	"time"

	"github.com/alnah/go-lingua/internal/reconcile"
)

// ProgressUpdate is the payload for recording a completed lesson.
type ProgressUpdate struct {
	LessonID       string `json:"lesson_id,omitempty"`
	XPEarned       int    `json:"xp_earned"`
	CoinsEarned    int    `json:"coins_earned,omitempty"`
	StreakExtended bool   `json:"streak_extended,omitempty"`
}

// SkillRating is one per-skill proficiency rating.
type SkillRating struct {
	Skill     string     `json:"skill"`
	Rating    int        `json:"rating"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Achievement is one unlockable achievement with its progress.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Progress    int        `json:"progress"`
	Target      int        `json:"target"`
	UnlockedAt  *time.Time `json:"unlocked_at"`
}

// TextStats reports reading progress for one work.
type TextStats struct {
	WorkID          string     `json:"work_id"`
	Title           string     `json:"title"`
	WordsRead       int        `json:"words_read"`
	UniqueWordsSeen int        `json:"unique_words_seen"`
	PercentComplete float64    `json:"percent_complete"`
	LastReadAt      *time.Time `json:"last_read_at"`
}

// Progress fetches the user's own progress. Anonymous users get the static
// guest snapshot without any network activity.
func (c *Client) Progress(ctx context.Context) (reconcile.CanonicalProgress, error) {
	if !c.gate.HasCredential() {
		return reconcile.GuestProgress(), nil
	}
	return fetch(ctx, c, "fetch progress", "/api/v1/progress/me", reconcile.Progress)
}

// UpdateProgress records a completed lesson and returns the updated progress.
func (c *Client) UpdateProgress(ctx context.Context, update ProgressUpdate) (reconcile.CanonicalProgress, error) {
	if err := c.gate.Require("record lesson progress"); err != nil {
		return reconcile.CanonicalProgress{}, err
	}
	return send(ctx, c, "update progress", http.MethodPost, "/api/v1/progress/me/update", update, reconcile.Progress)
}

// skillsResponse wraps the skills list endpoint.
type skillsResponse struct {
	Skills []SkillRating `json:"skills"`
}

// SkillRatings fetches the user's per-skill ratings.
func (c *Client) SkillRatings(ctx context.Context) ([]SkillRating, error) {
	if err := c.gate.Require("view your skill ratings"); err != nil {
		return nil, err
	}
	resp, err := fetch(ctx, c, "fetch skill ratings", "/api/v1/progress/me/skills", asJSON[skillsResponse]("skill ratings"))
	if err != nil {
		return nil, err
	}
	return resp.Skills, nil
}

// UpdateSkillRating records a new rating for one skill.
func (c *Client) UpdateSkillRating(ctx context.Context, skill string, rating int) (SkillRating, error) {
	if err := c.gate.Require("update your skill ratings"); err != nil {
		return SkillRating{}, err
	}
	payload := SkillRating{Skill: skill, Rating: rating}
	return send(ctx, c, "update skill rating", http.MethodPost, "/api/v1/progress/me/skills/update", payload, asJSON[SkillRating]("skill rating"))
}

// achievementsResponse wraps the achievements list endpoint.
type achievementsResponse struct {
	Achievements []Achievement `json:"achievements"`
}

// Achievements fetches the user's achievements.
func (c *Client) Achievements(ctx context.Context) ([]Achievement, error) {
	if err := c.gate.Require("view achievements"); err != nil {
		return nil, err
	}
	resp, err := fetch(ctx, c, "fetch achievements", "/api/v1/progress/me/achievements", asJSON[achievementsResponse]("achievements"))
	if err != nil {
		return nil, err
	}
	return resp.Achievements, nil
}

// textStatsResponse wraps the text stats list endpoint.
type textStatsResponse struct {
	Texts []TextStats `json:"texts"`
}

// TextStats fetches reading stats for every work the user has opened.
func (c *Client) TextStats(ctx context.Context) ([]TextStats, error) {
	if err := c.gate.Require("view reading stats"); err != nil {
		return nil, err
	}
	resp, err := fetch(ctx, c, "fetch text stats", "/api/v1/progress/me/texts", asJSON[textStatsResponse]("text stats"))
	if err != nil {
		return nil, err
	}
	return resp.Texts, nil
}

// TextStatsFor fetches reading stats for one work.
func (c *Client) TextStatsFor(ctx context.Context, workID string) (TextStats, error) {
	if err := c.gate.Require("view reading stats"); err != nil {
		return TextStats{}, err
	}
	return fetch(ctx, c, "fetch text stats", "/api/v1/progress/me/texts/"+workID, asJSON[TextStats]("text stats"))
}
