package api

import (
	"context"
	"fmt"
	"strconv"
)

// LeaderboardScope selects which leaderboard to fetch.
type LeaderboardScope string

// Leaderboard scopes. Global is open to anonymous users; friends and local
// are tied to an account.
const (
	ScopeGlobal  LeaderboardScope = "global"
	ScopeFriends LeaderboardScope = "friends"
	ScopeLocal   LeaderboardScope = "local"
)

// LeaderboardEntry is one row of a leaderboard.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Streak   int    `json:"streak"`
	IsMe     bool   `json:"is_me"`
}

// leaderboardResponse wraps the leaderboard endpoints.
type leaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// Leaderboard fetches up to limit entries for the given scope. limit <= 0
// leaves the count to the backend's default.
func (c *Client) Leaderboard(ctx context.Context, scope LeaderboardScope, limit int) ([]LeaderboardEntry, error) {
	switch scope {
	case ScopeGlobal:
		// Anonymous access allowed.
	case ScopeFriends, ScopeLocal:
		if err := c.gate.Require(fmt.Sprintf("view the %s leaderboard", scope)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown leaderboard scope %q", scope)
	}

	path := "/api/v1/social/leaderboard/" + string(scope)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	resp, err := fetch(ctx, c, "fetch leaderboard", path, asJSON[leaderboardResponse]("leaderboard"))
	if err != nil {
		return nil, err
	}
	return resp.Entries, nil
}
