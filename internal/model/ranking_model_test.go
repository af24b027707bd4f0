package model

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

func TestRankingModel_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(tierQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "label", "capacity", "promote_top", "demote_bottom"}).
			AddRow("legend", "LEGEND", 30, 0, 5).
			AddRow("gold", "GOLD", 100, 10, 10),
	)
	mock.ExpectQuery(regexp.QuoteMeta(entryQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"tier_id", "period", "entry_id", "diamonds", "live_match", "days", "hours",
			"points", "multiplier", "bonus_level", "icon_url"}).
			AddRow("gold", "previous", "aya", 200000, 500, 20.0, 80.0, nil, 1.4, 2, "").
			AddRow("gold", "current", "ren", 12000, 0, 3.0, 9.5, 88.0, nil, nil, "https://img/ren.png"),
	)

	raw, err := NewRankingModel(sqlx.NewSqlConnFromDB(db)).Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, raw.Tiers, 2)
	assert.Equal(t, "legend", raw.Tiers[0].ID)
	assert.Equal(t, 10, raw.Tiers[1].PromoteTop)

	snap, err := Normalize(raw)
	require.NoError(t, err)

	prev := snap.Entries("gold", PeriodPrevious)
	require.Len(t, prev, 1)
	assert.Nil(t, prev[0].Points)
	require.NotNil(t, prev[0].Multiplier)
	assert.Equal(t, 1.4, *prev[0].Multiplier)
	require.NotNil(t, prev[0].BonusLevel)
	assert.Equal(t, 2, *prev[0].BonusLevel)
	assert.Equal(t, int64(281), CalcScore(prev[0]))

	cur := snap.Entries("gold", PeriodCurrent)
	require.Len(t, cur, 1)
	assert.Equal(t, int64(88), CalcScore(cur[0]))
	assert.Nil(t, cur[0].BonusLevel)
	assert.Equal(t, "https://img/ren.png", cur[0].IconURL)
}

func TestRankingModel_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(tierQuery)).WillReturnError(assert.AnError)

	_, err = NewRankingModel(sqlx.NewSqlConnFromDB(db)).Load(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
