package domain

import (
	"context"
	"testing"

	"github.com/kunal12203/LifeGoal-Game/internal/domain/statistic"
	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestWeeklyChallengeDomain() *weeklyChallengeDomain {
	userRepo := repository.NewUserRepository()
	return NewWeeklyChallengeDomain(
		repository.NewWeeklyChallengeRepository(),
		repository.NewDailyRunRepository(),
		repository.NewQuestRepository(),
		userRepo,
		statistic.New(userRepo, &testutil.MockRedisClient{}),
		dateutil.NewFixedClock(testNow),
	)
}

// seedQualifyingDays inserts locked runs with all core quests completed for
// the first n weekdays of the test week.
func seedQualifyingDays(t *testing.T, ctx context.Context, userID string, n int) {
	coreIDs := []string{testutil.QuestMorning.ID, testutil.QuestWorkout.ID}
	for _, day := range dateutil.Weekdays(testNow)[:n] {
		insertLockedRun(t, ctx, userID, day, 150, coreIDs)
	}
}

func Test_weeklyChallengeDomain_GetStatus(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestWeeklyChallengeDomain()

	seedQualifyingDays(t, ctx, testutil.User1.ID, 4)

	resp, err := domain.GetStatus(ctx, &model.GetWeeklyChallengeStatusRequest{})
	require.NoError(t, err)
	require.Equal(t, 4, resp.DaysCompleted)
	require.Equal(t, 5, resp.DaysRequired)
	require.False(t, resp.IsUnlocked)
	require.False(t, resp.IsCompleted)
	require.Equal(t, "2024-03-04", resp.Challenge.WeekStartDate)
	require.Equal(t, "2024-03-10", resp.Challenge.WeekEndDate)
	require.Equal(t, 1000, resp.Challenge.XPReward)
}

func Test_weeklyChallengeDomain_UnlockIsOneWay(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestWeeklyChallengeDomain()

	seedQualifyingDays(t, ctx, testutil.User1.ID, 5)

	resp, err := domain.GetStatus(ctx, &model.GetWeeklyChallengeStatusRequest{})
	require.NoError(t, err)
	require.Equal(t, 5, resp.DaysCompleted)
	require.True(t, resp.IsUnlocked)

	// Uncompleting a qualifying day afterwards does not re-lock, and the
	// status no longer recounts the week once unlocked.
	runRepo := repository.NewDailyRunRepository()
	run, err := runRepo.GetByUserAndDate(ctx, testutil.User1.ID, dateutil.Weekdays(testNow)[0])
	require.NoError(t, err)

	completions, err := runRepo.GetCompletionsByRunID(ctx, run.ID)
	require.NoError(t, err)
	for _, c := range completions {
		require.NoError(t, runRepo.SetUncompleted(ctx, c.ID))
	}

	resp, err = domain.GetStatus(ctx, &model.GetWeeklyChallengeStatusRequest{})
	require.NoError(t, err)
	require.Equal(t, 5, resp.DaysCompleted)
	require.True(t, resp.IsUnlocked)
}

func Test_weeklyChallengeDomain_GetStatus_dayWithoutCoreQuests(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestWeeklyChallengeDomain()

	// A locked day holding only side quests qualifies on its own.
	insertLockedRun(t, ctx, testutil.User1.ID, dateutil.Weekdays(testNow)[0], 30,
		[]string{testutil.QuestReading.ID})

	resp, err := domain.GetStatus(ctx, &model.GetWeeklyChallengeStatusRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.DaysCompleted)
	require.False(t, resp.IsUnlocked)
}

func Test_weeklyChallengeDomain_Complete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestWeeklyChallengeDomain()

	// Locked until five qualifying days exist.
	seedQualifyingDays(t, ctx, testutil.User1.ID, 4)
	_, err := domain.Complete(ctx, &model.CompleteWeeklyChallengeRequest{})
	require.Equal(t, errorx.New(errorx.Unavailable, "Challenge is locked, complete 5 days first"), err)

	insertLockedRun(t, ctx, testutil.User1.ID, dateutil.Weekdays(testNow)[4], 150,
		[]string{testutil.QuestMorning.ID, testutil.QuestWorkout.ID})

	resp, err := domain.Complete(ctx, &model.CompleteWeeklyChallengeRequest{})
	require.NoError(t, err)
	require.Equal(t, 1000, resp.XPEarned)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 1000, user.TotalXP)
	require.Equal(t, 4, user.CurrentLevel)

	// The reward is claimable once.
	_, err = domain.Complete(ctx, &model.CompleteWeeklyChallengeRequest{})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Weekly challenge is already completed"), err)

	history, err := domain.GetHistory(ctx, &model.GetWeeklyChallengeHistoryRequest{})
	require.NoError(t, err)
	require.Len(t, history.Challenges, 1)
	require.Equal(t, 1000, history.Challenges[0].XPEarned)
}
