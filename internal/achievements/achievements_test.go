package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindMetadata(t *testing.T) {
	for _, k := range AllKinds() {
		assert.NotEqual(t, string(k), k.Title(), "kind %s has no title", k)
		assert.Positive(t, k.Points(), "kind %s has no points", k)
		assert.NotEqual(t, "✦", k.Icon(), "kind %s has no icon", k)
	}
	assert.Equal(t, 0, Kind("unknown").Points())
	assert.Equal(t, "unknown", Kind("unknown").Title())
}

func TestAward_DoesNotModifyInput(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	base := Ledger{New(KindFirstQuiz, "first", at)}

	next, ok := Award(base, New(KindHighAchiever, "r1", at))
	require.True(t, ok)
	assert.Len(t, base, 1)
	assert.Len(t, next, 2)
	assert.Equal(t, KindHighAchiever, next[1].Kind)
}

func TestAward_RejectsDuplicate(t *testing.T) {
	at := time.Now()
	ledger, ok := Award(nil, New(KindPerfectScore, "r1", at))
	require.True(t, ok)

	again, ok := Award(ledger, New(KindPerfectScore, "r1", at.Add(time.Hour)))
	assert.False(t, ok)
	assert.Len(t, again, 1)

	// Same kind, different reference is a new award.
	again, ok = Award(ledger, New(KindPerfectScore, "r2", at))
	assert.True(t, ok)
	assert.Len(t, again, 2)
}

func TestLedgerTotals(t *testing.T) {
	at := time.Now()
	ledger := Ledger{
		New(KindFirstQuiz, "first", at),
		New(KindPerfectScore, "r1", at),
		New(KindHighAchiever, "r1", at),
		New(KindHighAchiever, "r2", at),
	}
	assert.Equal(t, 50+100+50+50, ledger.TotalPoints())
	assert.Equal(t, 2, ledger.CountByKind()[KindHighAchiever])
	assert.Equal(t, 0, Ledger(nil).TotalPoints())
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		points   int
		number   int
		progress float64
	}{
		{0, 1, 0},
		{250, 1, 25},
		{999, 1, 99.9},
		{1000, 2, 0},
		{1500, 2, 50},
		{-20, 1, 0},
	}
	for _, tt := range tests {
		lvl := LevelFor(tt.points)
		assert.Equal(t, tt.number, lvl.Number, "points %d", tt.points)
		assert.InDelta(t, tt.progress, lvl.ProgressPercent, 0.001, "points %d", tt.points)
	}
}

func TestLeaderboard_Divisions(t *testing.T) {
	entries := []Entry{
		{"Frank", 200}, {"Alice", 950}, {"Eve", 300}, {"Bob", 820}, {"Ian", 50},
		{"Charlie", 600}, {"Judy", 25}, {"David", 450}, {"Hannah", 100}, {"Grace", 150},
	}

	got := Leaderboard(entries)
	require.Len(t, got, 10)

	want := []struct {
		name     string
		division Division
	}{
		{"Alice", DivisionGold},     // top 10%
		{"Bob", DivisionGold},       // >= 800 points
		{"Charlie", DivisionSilver}, // top 30%
		{"David", DivisionBronze},
		{"Eve", DivisionBronze},
	}
	for i, w := range want {
		assert.Equal(t, w.name, got[i].Name)
		assert.Equal(t, i+1, got[i].Rank)
		assert.Equal(t, w.division, got[i].Division, w.name)
	}
	assert.Equal(t, "Judy", got[9].Name)
	assert.Equal(t, "Frank", entries[0].Name, "input must not be reordered")
}

func TestLeaderboard_PointsOverrideRank(t *testing.T) {
	got := Leaderboard([]Entry{{"a", 900}, {"b", 850}, {"c", 510}, {"d", 505}, {"e", 10}})

	// ceil(5*0.1) = 1 gold slot and ceil(5*0.3) = 2 silver slots by rank.
	assert.Equal(t, DivisionGold, got[0].Division)
	assert.Equal(t, DivisionGold, got[1].Division)
	assert.Equal(t, DivisionSilver, got[2].Division)
	assert.Equal(t, DivisionSilver, got[3].Division)
	assert.Equal(t, DivisionBronze, got[4].Division)
}

func TestLeaderboard_StableTies(t *testing.T) {
	got := Leaderboard([]Entry{{"x", 100}, {"y", 300}, {"z", 100}})
	assert.Equal(t, []string{"y", "x", "z"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, 3, got[2].Rank)
}

func TestLeaderboard_Empty(t *testing.T) {
	assert.Empty(t, Leaderboard(nil))
}
