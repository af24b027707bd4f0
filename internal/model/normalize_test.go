package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEntry(t *testing.T) {
	e := NormalizeEntry(RawEntry{
		ID:         " Aya ",
		Diamonds:   json.Number("152000.6"),
		LiveMatch:  "1200",
		Days:       -3.0,
		Hours:      "abc",
		Points:     nil,
		Multiplier: "1.4",
		BonusLevel: 2.0,
		IconURL:    "https://example.com/a.png",
	})

	assert.Equal(t, "Aya", e.ID)
	assert.Equal(t, int64(152001), e.Diamonds)
	assert.Equal(t, int64(1200), e.LiveMatchCount)
	assert.Equal(t, 0.0, e.Days)
	assert.Equal(t, 0.0, e.Hours)
	assert.Nil(t, e.Points)
	require.NotNil(t, e.Multiplier)
	assert.Equal(t, 1.4, *e.Multiplier)
	require.NotNil(t, e.BonusLevel)
	assert.Equal(t, 2, *e.BonusLevel)
	assert.Equal(t, "https://example.com/a.png", e.IconURL)
}

func TestNormalizeEntry_NonFinite(t *testing.T) {
	e := NormalizeEntry(RawEntry{Points: "NaN", Multiplier: "Inf", Diamonds: "+Inf"})
	assert.Nil(t, e.Points)
	assert.Nil(t, e.Multiplier)
	assert.Equal(t, int64(0), e.Diamonds)
}

func TestNormalize(t *testing.T) {
	raw := &RawSnapshot{
		Tiers: []RawTier{
			{ID: "legend", Label: "LEGEND", Capacity: 30, DemoteBottom: 5},
			{ID: "gold", Label: "GOLD", Capacity: 100, PromoteTop: 10, DemoteBottom: 10},
		},
		Ranks: map[string]map[string][]RawEntry{
			"legend": {
				"last":    {{ID: "a", Diamonds: 1.0}},
				"current": {{ID: "b", Diamonds: 2.0}},
			},
		},
	}

	snap, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, snap.Tiers, 2)
	assert.Equal(t, "legend", snap.Tiers[0].ID)
	assert.Equal(t, "gold", snap.Tiers[1].ID)
	assert.Equal(t, 10, snap.Tiers[1].PromoteTop)

	assert.Len(t, snap.Entries("legend", PeriodPrevious), 1)
	assert.Equal(t, "b", snap.Entries("legend", PeriodCurrent)[0].ID)
	assert.Empty(t, snap.Entries("gold", PeriodCurrent))
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  *RawSnapshot
	}{
		{"nil", nil},
		{"missing tier id", &RawSnapshot{Tiers: []RawTier{{Label: "x"}}}},
		{"negative capacity", &RawSnapshot{Tiers: []RawTier{{ID: "a", Capacity: -1}}}},
		{"duplicate tier", &RawSnapshot{Tiers: []RawTier{{ID: "a"}, {ID: "a"}}}},
		{"unknown period", &RawSnapshot{Ranks: map[string]map[string][]RawEntry{"a": {"someday": nil}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"previous": PeriodPrevious,
		"LAST":     PeriodPrevious,
		"current":  PeriodCurrent,
		" this ":   PeriodCurrent,
	} {
		got, ok := ParsePeriod(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	_, ok := ParsePeriod("next")
	assert.False(t, ok)
}
