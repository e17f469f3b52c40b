package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/teams"
)

// ErrNotFound is returned when no roster entry matches a query.
var ErrNotFound = errors.New("no matching roster entry")

// abbreviationMaxLen is the longest query treated as a team abbreviation.
const abbreviationMaxLen = 3

// PlayerSource lists every player the provider knows about, in provider order.
type PlayerSource interface {
	FetchPlayers(ctx context.Context) ([]players.Identity, error)
}

// Roster is the read-only reference table used to resolve free-text names to provider ids.
// It is built once and shared; all methods are safe for concurrent use.
type Roster struct {
	players []players.Identity
	teams   []teams.Identity
	// lowered names, index-aligned with players/teams
	playerNames []string
	teamNames   []string
	loaded      atomic.Bool
}

// New builds a roster from already-fetched listings. Order is preserved for tie-breaking.
func New(playerList []players.Identity, teamList []teams.Identity) *Roster {
	r := &Roster{
		players:     append([]players.Identity(nil), playerList...),
		teams:       append([]teams.Identity(nil), teamList...),
		playerNames: make([]string, len(playerList)),
		teamNames:   make([]string, len(teamList)),
	}
	for i, p := range r.players {
		r.playerNames[i] = strings.ToLower(p.FullName)
	}
	for i, t := range r.teams {
		r.teamNames[i] = strings.ToLower(t.FullName)
	}
	r.loaded.Store(len(r.players) > 0)
	return r
}

// Load fetches the player listing from src and pairs it with the static team table.
// On failure an empty, not-ready roster is returned together with the error.
func Load(ctx context.Context, src PlayerSource) (*Roster, error) {
	if src == nil {
		return New(nil, teams.AllTeams), errors.New("roster: no player source configured")
	}
	list, err := src.FetchPlayers(ctx)
	if err != nil {
		return New(nil, teams.AllTeams), fmt.Errorf("roster: load players: %w", err)
	}
	return New(list, teams.AllTeams), nil
}

// Ready reports whether the player listing was loaded.
func (r *Roster) Ready() bool {
	return r != nil && r.loaded.Load()
}

// Players returns a copy of the player listing.
func (r *Roster) Players() []players.Identity {
	if r == nil {
		return nil
	}
	return append([]players.Identity(nil), r.players...)
}

// Teams returns a copy of the team table.
func (r *Roster) Teams() []teams.Identity {
	if r == nil {
		return nil
	}
	return append([]teams.Identity(nil), r.teams...)
}

// ResolvePlayer returns the first player whose full name contains query, ignoring case.
// The query is matched as literal text.
func (r *Roster) ResolvePlayer(query string) (players.Identity, error) {
	q := normalize(query)
	if r == nil || q == "" {
		return players.Identity{}, fmt.Errorf("player %q: %w", query, ErrNotFound)
	}
	for i, name := range r.playerNames {
		if strings.Contains(name, q) {
			return r.players[i], nil
		}
	}
	return players.Identity{}, fmt.Errorf("player %q: %w", query, ErrNotFound)
}

// ResolveTeam returns the first team matching query. Queries of up to three characters
// must equal an abbreviation; longer queries match as a substring of the full name.
func (r *Roster) ResolveTeam(query string) (teams.Identity, error) {
	q := normalize(query)
	if r == nil || q == "" {
		return teams.Identity{}, fmt.Errorf("team %q: %w", query, ErrNotFound)
	}
	if len(q) <= abbreviationMaxLen {
		for _, t := range r.teams {
			if strings.EqualFold(t.Abbreviation, q) {
				return t, nil
			}
		}
		return teams.Identity{}, fmt.Errorf("team %q: %w", query, ErrNotFound)
	}
	for i, name := range r.teamNames {
		if strings.Contains(name, q) {
			return r.teams[i], nil
		}
	}
	return teams.Identity{}, fmt.Errorf("team %q: %w", query, ErrNotFound)
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
