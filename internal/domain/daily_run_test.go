package domain

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kunal12203/LifeGoal-Game/internal/domain/statistic"
	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/testutil"
	"github.com/stretchr/testify/require"
)

// Friday, so the whole working week lies behind it.
var testNow = time.Date(2024, time.March, 8, 15, 0, 0, 0, time.UTC)

func newTestDailyRunDomain() *dailyRunDomain {
	userRepo := repository.NewUserRepository()
	return NewDailyRunDomain(
		repository.NewDailyRunRepository(),
		repository.NewQuestRepository(),
		userRepo,
		repository.NewStreakRepository(),
		statistic.New(userRepo, &testutil.MockRedisClient{}),
		dateutil.NewFixedClock(testNow),
	)
}

func Test_dailyRunDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestDailyRunDomain()

	resp, err := domain.Create(ctx, &model.CreateDailyRunRequest{})
	require.NoError(t, err)
	require.Equal(t, dateutil.FormatDate(testNow), resp.DailyRun.Date)
	require.Len(t, resp.DailyRun.Completions, 3)
	require.False(t, resp.DailyRun.IsLocked)

	// Only one run per day.
	_, err = domain.Create(ctx, &model.CreateDailyRunRequest{})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "A run already exists for this date"), err)
}

func Test_dailyRunDomain_Create_backfillWindow(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestDailyRunDomain()

	// Yesterday is within the one-day window.
	yesterday := dateutil.FormatDate(testNow.AddDate(0, 0, -1))
	resp, err := domain.Create(ctx, &model.CreateDailyRunRequest{Date: yesterday})
	require.NoError(t, err)
	require.Equal(t, yesterday, resp.DailyRun.Date)

	// Two days back is not.
	_, err = domain.Create(ctx, &model.CreateDailyRunRequest{
		Date: dateutil.FormatDate(testNow.AddDate(0, 0, -2)),
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Can only backfill up to 1 day(s)"), err)

	// The future never is.
	_, err = domain.Create(ctx, &model.CreateDailyRunRequest{
		Date: dateutil.FormatDate(testNow.AddDate(0, 0, 1)),
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Cannot create future runs"), err)
}

func Test_dailyRunDomain_Create_coreFallback(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestDailyRunDomain()
	userRepo := repository.NewUserRepository()

	// A matching category keeps the run to exactly those quests, core or not.
	require.NoError(t, userRepo.UpdateGoalCategories(ctx, testutil.User1.ID, []string{"learning"}))

	resp, err := domain.Create(ctx, &model.CreateDailyRunRequest{})
	require.NoError(t, err)
	require.Len(t, resp.DailyRun.Completions, 1)
	require.Equal(t, testutil.QuestReading.ID, resp.DailyRun.Completions[0].QuestID)

	// A category matching nothing falls back to the active core quests.
	ctx2 := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx2)
	require.NoError(t, userRepo.UpdateGoalCategories(ctx2, testutil.User2.ID, []string{"cooking"}))

	resp, err = domain.Create(ctx2, &model.CreateDailyRunRequest{})
	require.NoError(t, err)

	questIDs := map[string]bool{}
	for _, c := range resp.DailyRun.Completions {
		questIDs[c.QuestID] = true
	}

	require.Len(t, resp.DailyRun.Completions, 2)
	require.True(t, questIDs[testutil.QuestMorning.ID])
	require.True(t, questIDs[testutil.QuestWorkout.ID])
}

func Test_dailyRunDomain_ToggleCompletion(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestDailyRunDomain()

	created, err := domain.Create(ctx, &model.CreateDailyRunRequest{})
	require.NoError(t, err)

	var workout model.QuestCompletion
	for _, c := range created.DailyRun.Completions {
		if c.QuestID == testutil.QuestWorkout.ID {
			workout = c
		}
	}

	resp, err := domain.ToggleCompletion(ctx, &model.ToggleCompletionRequest{CompletionID: workout.ID})
	require.NoError(t, err)
	require.True(t, resp.Completion.Completed)
	require.Equal(t, testutil.QuestWorkout.BaseXP, resp.Completion.XPEarned)
	require.Equal(t, testutil.QuestWorkout.BaseXP, resp.DailyRun.TotalXP)
	require.False(t, resp.DailyRun.IsPerfect)

	// A core completion starts a streak.
	streak, err := repository.NewStreakRepository().Get(ctx, testutil.User1.ID, testutil.QuestWorkout.ID)
	require.NoError(t, err)
	require.Equal(t, 1, streak.CurrentStreak)
	require.Equal(t, 1, streak.LongestStreak)

	// Toggling back takes the XP away but keeps the streak.
	resp, err = domain.ToggleCompletion(ctx, &model.ToggleCompletionRequest{CompletionID: workout.ID})
	require.NoError(t, err)
	require.False(t, resp.Completion.Completed)
	require.Equal(t, 0, resp.DailyRun.TotalXP)

	streak, err = repository.NewStreakRepository().Get(ctx, testutil.User1.ID, testutil.QuestWorkout.ID)
	require.NoError(t, err)
	require.Equal(t, 1, streak.CurrentStreak)
}

func Test_dailyRunDomain_ToggleCompletion_perfectRun(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestDailyRunDomain()

	created, err := domain.Create(ctx, &model.CreateDailyRunRequest{})
	require.NoError(t, err)

	var last *model.ToggleCompletionResponse
	for _, c := range created.DailyRun.Completions {
		last, err = domain.ToggleCompletion(ctx, &model.ToggleCompletionRequest{CompletionID: c.ID})
		require.NoError(t, err)
	}

	require.True(t, last.DailyRun.IsPerfect)
	require.Equal(t, 180, last.DailyRun.TotalXP)
}

func Test_dailyRunDomain_Lock(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestDailyRunDomain()

	// An older locked run already on the books.
	insertLockedRun(t, ctx, testutil.User1.ID, testNow.AddDate(0, 0, -1), 150, nil)

	created, err := domain.Create(ctx, &model.CreateDailyRunRequest{})
	require.NoError(t, err)

	for _, c := range created.DailyRun.Completions {
		if c.QuestID == testutil.QuestWorkout.ID || c.QuestID == testutil.QuestMorning.ID {
			_, err = domain.ToggleCompletion(ctx, &model.ToggleCompletionRequest{CompletionID: c.ID})
			require.NoError(t, err)
		}
	}

	resp, err := domain.Lock(ctx, &model.LockDailyRunRequest{RunID: created.DailyRun.ID})
	require.NoError(t, err)
	require.True(t, resp.DailyRun.IsLocked)

	// 150 from yesterday plus 150 from today.
	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 300, user.TotalXP)
	require.Equal(t, 2, user.CurrentLevel)
	require.Equal(t, 300, resp.LevelInfo.TotalXP)

	// Locked means locked.
	_, err = domain.Lock(ctx, &model.LockDailyRunRequest{RunID: created.DailyRun.ID})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Run is already locked"), err)

	var toggleID string
	for _, c := range created.DailyRun.Completions {
		if c.QuestID == testutil.QuestReading.ID {
			toggleID = c.ID
		}
	}

	_, err = domain.ToggleCompletion(ctx, &model.ToggleCompletionRequest{CompletionID: toggleID})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Run is locked and cannot be edited"), err)
}

// insertLockedRun seeds a locked run directly, with a completed completion
// row for each quest listed in coreQuestIDs.
func insertLockedRun(
	t *testing.T, ctx context.Context, userID string, date time.Time, totalXP int,
	coreQuestIDs []string,
) *entity.DailyRun {
	dailyRunRepo := repository.NewDailyRunRepository()

	run := &entity.DailyRun{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		Date:        dateutil.Date(date),
		TotalXP:     totalXP,
		IsLocked:    true,
		CompletedAt: sql.NullTime{Time: date, Valid: true},
	}
	require.NoError(t, dailyRunRepo.Create(ctx, run))

	for _, questID := range coreQuestIDs {
		completion := &entity.DailyQuestCompletion{
			Base:        entity.Base{ID: uuid.NewString()},
			DailyRunID:  run.ID,
			QuestID:     questID,
			Completed:   true,
			XPEarned:    totalXP,
			CompletedAt: sql.NullTime{Time: date, Valid: true},
		}
		require.NoError(t, dailyRunRepo.CreateCompletion(ctx, completion))
	}

	return run
}
