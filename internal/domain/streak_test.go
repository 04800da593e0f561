package domain

import (
	"context"
	"database/sql"
	"testing"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func insertStreak(t *testing.T, ctx context.Context, userID, questID string, current, longest int) {
	streakRepo := repository.NewStreakRepository()
	err := streakRepo.Create(ctx, &entity.Streak{
		Base:              entity.Base{ID: userID + "_" + questID},
		UserID:            userID,
		QuestID:           questID,
		CurrentStreak:     current,
		LongestStreak:     longest,
		LastCompletedDate: sql.NullTime{Valid: true, Time: dateutil.Date(testNow)},
	})
	require.NoError(t, err)
}

func Test_streakDomain_GetMyStreaks(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	domain := NewStreakDomain(repository.NewStreakRepository(), repository.NewQuestRepository())

	insertStreak(t, ctx, testutil.User1.ID, testutil.QuestMorning.ID, 3, 7)
	insertStreak(t, ctx, testutil.User1.ID, testutil.QuestWorkout.ID, 5, 5)
	insertStreak(t, ctx, testutil.User2.ID, testutil.QuestMorning.ID, 9, 9)

	resp, err := domain.GetMyStreaks(ctx, &model.GetMyStreaksRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Streaks, 2)

	// Ordered by current streak, highest first, and joined with quest titles.
	require.Equal(t, testutil.QuestWorkout.ID, resp.Streaks[0].QuestID)
	require.Equal(t, testutil.QuestWorkout.Title, resp.Streaks[0].QuestTitle)
	require.Equal(t, 5, resp.Streaks[0].CurrentStreak)
	require.Equal(t, testutil.QuestMorning.Title, resp.Streaks[1].QuestTitle)
	require.Equal(t, 7, resp.Streaks[1].LongestStreak)
}

func Test_streakDomain_GetSummary(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	domain := NewStreakDomain(repository.NewStreakRepository(), repository.NewQuestRepository())

	resp, err := domain.GetSummary(ctx, &model.GetStreakSummaryRequest{})
	require.NoError(t, err)
	require.Equal(t, 0, resp.BestCurrentStreak)
	require.Equal(t, 0, resp.ActiveStreaks)

	insertStreak(t, ctx, testutil.User1.ID, testutil.QuestMorning.ID, 3, 7)
	insertStreak(t, ctx, testutil.User1.ID, testutil.QuestWorkout.ID, 0, 12)

	resp, err = domain.GetSummary(ctx, &model.GetStreakSummaryRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.BestCurrentStreak)
	require.Equal(t, 12, resp.BestLongestStreak)
	require.Equal(t, 1, resp.ActiveStreaks)
}
