package api

import (
	"context"
	"net/http"
)

// ScriptPreferences controls how text is rendered for the user's target
// language (script choice and reading aids).
type ScriptPreferences struct {
	PreferredScript  string `json:"preferred_script"`
	ShowRomanization bool   `json:"show_romanization"`
	ShowPitchAccent  bool   `json:"show_pitch_accent"`
}

const featurePrefs = "manage script preferences"

// ScriptPreferences fetches the user's script preferences.
func (c *Client) ScriptPreferences(ctx context.Context) (ScriptPreferences, error) {
	if err := c.gate.Require(featurePrefs); err != nil {
		return ScriptPreferences{}, err
	}
	return fetch(ctx, c, "fetch script preferences", "/api/v1/users/me/script-preferences", asJSON[ScriptPreferences]("script preferences"))
}

// UpdateScriptPreferences replaces the user's script preferences.
func (c *Client) UpdateScriptPreferences(ctx context.Context, prefs ScriptPreferences) (ScriptPreferences, error) {
	if err := c.gate.Require(featurePrefs); err != nil {
		return ScriptPreferences{}, err
	}
	return send(ctx, c, "update script preferences", http.MethodPut, "/api/v1/users/me/script-preferences", prefs, asJSON[ScriptPreferences]("script preferences"))
}

// ResetScriptPreferences restores the backend defaults.
func (c *Client) ResetScriptPreferences(ctx context.Context) (ScriptPreferences, error) {
	if err := c.gate.Require(featurePrefs); err != nil {
		return ScriptPreferences{}, err
	}
	return send(ctx, c, "reset script preferences", http.MethodPost, "/api/v1/users/me/script-preferences/reset", nil, asJSON[ScriptPreferences]("script preferences"))
}
