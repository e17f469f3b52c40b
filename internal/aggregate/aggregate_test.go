package aggregate

import (
	"reflect"
	"sort"
	"testing"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

func shots(season string, st stats.SeasonType, action string, attempts, made int) []stats.ShotAttempt {
	out := make([]stats.ShotAttempt, 0, attempts)
	for i := 0; i < attempts; i++ {
		flag := 0
		if i < made {
			flag = 1
		}
		out = append(out, stats.ShotAttempt{
			SeasonID:      season,
			SeasonType:    st,
			ActionType:    action,
			ShotZoneRange: "24+ ft.",
			LocX:          i,
			LocY:          -i,
			ShotMadeFlag:  flag,
		})
	}
	return out
}

func concat(parts ...[]stats.ShotAttempt) []stats.ShotAttempt {
	var out []stats.ShotAttempt
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestPerGame(t *testing.T) {
	cases := []struct {
		total float64
		gp    int
		want  float64
	}{
		{2375, 79, 30.1},
		{0, 10, 0},
		{25, 0, 0},
		{463, 80, 5.8},
		{30.1, 1, 30.1},
	}
	for _, tc := range cases {
		if got := PerGame(tc.total, tc.gp); got != tc.want {
			t.Fatalf("PerGame(%v,%d): expected %v, got %v", tc.total, tc.gp, tc.want, got)
		}
	}
}

func TestPerGameIdempotentUnderSingleGame(t *testing.T) {
	for _, total := range []float64{2375, 612, 1.5, 99} {
		once := PerGame(total, 82)
		if again := PerGame(once, 1); again != once {
			t.Fatalf("expected per-game value %v to survive GP=1 re-normalization, got %v", once, again)
		}
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(2, 3); got != 0.667 {
		t.Fatalf("expected 0.667, got %v", got)
	}
	if got := Ratio(0, 0); got != 0 {
		t.Fatalf("expected 0 for no attempts, got %v", got)
	}
	if got := Ratio(5, 5); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestSeasonTableFiltersAndNormalizes(t *testing.T) {
	lines := []stats.SeasonStatLine{
		{SeasonID: "2015-16", SeasonType: stats.RegularSeason, TeamAbbreviation: "GSW", GP: 79, FGA: 1598, FGPct: 0.504, FG3Pct: 0.454, FTPct: 0.908, MIN: 2700, PTS: 2375, REB: 430, AST: 527, STL: 169, BLK: 15, TOV: 262, PF: 161},
		{SeasonID: "2015-16", SeasonType: stats.Playoffs, TeamAbbreviation: "GSW", GP: 18, PTS: 457},
		{SeasonID: "2016-17", SeasonType: stats.RegularSeason, TeamAbbreviation: "GSW", GP: 79, PTS: 1999},
	}

	rows := SeasonTable(lines, stats.RegularSeason)
	if len(rows) != 2 {
		t.Fatalf("expected 2 regular season rows, got %d", len(rows))
	}
	first := rows[0]
	if first.Season != "2015-16" || first.GP != 79 || first.FGA != 1598 {
		t.Fatalf("unexpected identifiers %+v", first)
	}
	if first.FGPct != 0.504 || first.FG3Pct != 0.454 || first.FTPct != 0.908 {
		t.Fatalf("expected percentages to pass through, got %+v", first)
	}
	if first.PTS != 30.1 || first.AST != 6.7 || first.MIN != 34.2 {
		t.Fatalf("unexpected per-game values %+v", first)
	}

	playoffs := SeasonTable(lines, stats.Playoffs)
	if len(playoffs) != 1 || playoffs[0].PTS != 25.4 {
		t.Fatalf("expected per-game normalization by the row's own GP, got %+v", playoffs)
	}
}

func TestPartitionShotsIsDisjointAndExhaustive(t *testing.T) {
	all := concat(
		shots("2020-21", stats.RegularSeason, "Jump Shot", 10, 4),
		shots("2020-21", stats.Playoffs, "Layup Shot", 6, 5),
		shots("2021-22", stats.RegularSeason, "Pullup Jump shot", 7, 2),
	)

	scatter := PartitionShots(all, stats.RegularSeason)
	if len(scatter.Made) != 6 || len(scatter.Missed) != 11 {
		t.Fatalf("expected 6 made / 11 missed, got %d / %d", len(scatter.Made), len(scatter.Missed))
	}
	if scatter.Total() != 17 {
		t.Fatalf("expected union to cover every regular season attempt, got %d", scatter.Total())
	}

	seen := make(map[stats.ShotPoint]int)
	for _, p := range scatter.Made {
		seen[p]++
	}
	for _, p := range scatter.Missed {
		if seen[p] > 0 {
			t.Fatalf("point %+v present in both series", p)
		}
	}
	if scatter.Made[0].Label != "Jump Shot<br>24+ ft." {
		t.Fatalf("unexpected label %q", scatter.Made[0].Label)
	}
}

func TestPartitionShotsEmptyInput(t *testing.T) {
	scatter := PartitionShots(nil, stats.Playoffs)
	if scatter.Made == nil || scatter.Missed == nil || scatter.Total() != 0 {
		t.Fatalf("expected empty non-nil series, got %+v", scatter)
	}
}

func TestRankShotTypesDenseRanking(t *testing.T) {
	all := concat(
		shots("2019-20", stats.RegularSeason, "Jump Shot", 50, 20),
		shots("2019-20", stats.RegularSeason, "Pullup Jump shot", 50, 25),
		shots("2019-20", stats.RegularSeason, "Layup Shot", 30, 18),
		shots("2019-20", stats.RegularSeason, "Dunk Shot", 10, 9),
	)

	ranked := RankShotTypes(all, stats.RegularSeason)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked shot types, got %d: %+v", len(ranked), ranked)
	}
	want := []stats.RankedShotType{
		{SeasonID: "2019-20", ActionType: "Jump Shot", Attempts: 50, Made: 20, FGPct: 0.4, Rank: 1},
		{SeasonID: "2019-20", ActionType: "Pullup Jump shot", Attempts: 50, Made: 25, FGPct: 0.5, Rank: 1},
		{SeasonID: "2019-20", ActionType: "Layup Shot", Attempts: 30, Made: 18, FGPct: 0.6, Rank: 2},
	}
	if !reflect.DeepEqual(ranked, want) {
		t.Fatalf("unexpected ranking\nwant %+v\ngot  %+v", want, ranked)
	}
}

func TestRankShotTypesKeepsThirdDistinctCount(t *testing.T) {
	all := concat(
		shots("2019-20", stats.RegularSeason, "A", 9, 1),
		shots("2019-20", stats.RegularSeason, "B", 7, 1),
		shots("2019-20", stats.RegularSeason, "C", 5, 1),
		shots("2019-20", stats.RegularSeason, "D", 5, 1),
		shots("2019-20", stats.RegularSeason, "E", 2, 1),
	)
	ranked := RankShotTypes(all, stats.RegularSeason)
	if len(ranked) != 4 {
		t.Fatalf("expected ties at rank 3 to be kept, got %+v", ranked)
	}
	if ranked[2].Rank != 3 || ranked[3].Rank != 3 {
		t.Fatalf("expected C and D to share rank 3, got %+v", ranked)
	}
}

func TestRankShotTypesPerSeasonOrderingAndFilter(t *testing.T) {
	all := concat(
		shots("2021-22", stats.RegularSeason, "Jump Shot", 3, 1),
		shots("2018-19", stats.RegularSeason, "Layup Shot", 2, 2),
		shots("2018-19", stats.RegularSeason, "Jump Shot", 4, 1),
		shots("2018-19", stats.Playoffs, "Dunk Shot", 20, 20),
	)

	ranked := RankShotTypes(all, stats.RegularSeason)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 rows, got %+v", ranked)
	}
	if ranked[0].SeasonID != "2018-19" || ranked[0].ActionType != "Jump Shot" || ranked[0].Rank != 1 {
		t.Fatalf("expected 2018-19 jump shot first, got %+v", ranked[0])
	}
	if ranked[1].ActionType != "Layup Shot" || ranked[1].Rank != 2 {
		t.Fatalf("expected layup second, got %+v", ranked[1])
	}
	if ranked[2].SeasonID != "2021-22" || ranked[2].Rank != 1 {
		t.Fatalf("expected 2021-22 ranked independently, got %+v", ranked[2])
	}
	for _, r := range ranked {
		if r.ActionType == "Dunk Shot" {
			t.Fatalf("playoff shots leaked into regular season ranking")
		}
	}
}

func TestShotsForSeasonRoundTrip(t *testing.T) {
	perSeason := map[string][]stats.ShotAttempt{
		"2016-17": shots("2016-17", stats.RegularSeason, "Jump Shot", 5, 2),
		"2017-18": shots("2017-18", stats.RegularSeason, "Layup Shot", 3, 3),
		"2018-19": shots("2018-19", stats.RegularSeason, "Dunk Shot", 4, 4),
	}
	var seasons []string
	for s := range perSeason {
		seasons = append(seasons, s)
	}
	sort.Strings(seasons)

	var all []stats.ShotAttempt
	for _, s := range seasons {
		all = append(all, perSeason[s]...)
	}

	for season, original := range perSeason {
		if got := ShotsForSeason(all, season); !reflect.DeepEqual(got, original) {
			t.Fatalf("season %s: expected round trip, got %+v", season, got)
		}
	}
}

func TestBuildViewsIsIdempotent(t *testing.T) {
	ds := stats.Dataset{
		Lines: []stats.SeasonStatLine{{SeasonID: "2020-21", SeasonType: stats.RegularSeason, GP: 10, PTS: 250}},
		Shots: shots("2020-21", stats.RegularSeason, "Jump Shot", 4, 1),
	}
	first := BuildViews(ds, stats.RegularSeason)
	second := BuildViews(ds, stats.RegularSeason)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical views on repeated calls")
	}
	if first.SeasonType != stats.RegularSeason || len(first.Table) != 1 || first.Scatter.Total() != 4 || len(first.TopShots) != 1 {
		t.Fatalf("unexpected views %+v", first)
	}

	playoffs := BuildViews(ds, stats.Playoffs)
	if len(playoffs.Table) != 0 || playoffs.Scatter.Total() != 0 || len(playoffs.TopShots) != 0 {
		t.Fatalf("expected empty playoff views, got %+v", playoffs)
	}
}
