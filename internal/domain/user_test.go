package domain

import (
	"context"
	"sort"
	"testing"

	"github.com/kunal12203/LifeGoal-Game/internal/domain/statistic"
	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// inMemoryLeaderboardRedis backs the redis mock with a score map so the lazy
// rebuild path can be exercised end to end.
func inMemoryLeaderboardRedis() *testutil.MockRedisClient {
	scores := map[string]float64{}

	return &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return len(scores) > 0, nil
		},
		ZAddFunc: func(ctx context.Context, key string, z redis.Z) error {
			scores[z.Member.(string)] = z.Score
			return nil
		},
		ZIncrByFunc: func(ctx context.Context, key string, incr int64, member string) error {
			scores[member] += float64(incr)
			return nil
		},
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			results := []redis.Z{}
			for member, score := range scores {
				results = append(results, redis.Z{Member: member, Score: score})
			}

			sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
			if offset >= len(results) {
				return nil, nil
			}

			results = results[offset:]
			if limit < len(results) {
				results = results[:limit]
			}

			return results, nil
		},
	}
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	domain := NewUserDomain(userRepo, statistic.New(userRepo, &testutil.MockRedisClient{}))

	require.NoError(t, userRepo.SetTotalXP(ctx, testutil.User1.ID, 300, 2))

	resp, err := domain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Username, resp.User.Username)
	require.Equal(t, 300, resp.User.TotalXP)
	require.Equal(t, 2, resp.LevelInfo.Level)
	require.Equal(t, 100, resp.LevelInfo.CurrentLevelXP)
	require.Equal(t, 400, resp.LevelInfo.NextLevelXP)
}

func Test_userDomain_UpdateGoalCategories(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	domain := NewUserDomain(userRepo, statistic.New(userRepo, &testutil.MockRedisClient{}))

	resp, err := domain.UpdateGoalCategories(ctx, &model.UpdateGoalCategoriesRequest{
		GoalCategories: []string{"health", "learning", "health"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"health", "learning"}, resp.User.GoalCategories)
	require.True(t, resp.User.HasCompletedOnboarding)

	_, err = domain.UpdateGoalCategories(ctx, &model.UpdateGoalCategoriesRequest{
		GoalCategories: []string{"health", ""},
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Not allow an empty category"), err)
}

func Test_userDomain_GetLeaderboard(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	domain := NewUserDomain(userRepo, statistic.New(userRepo, inMemoryLeaderboardRedis()))

	require.NoError(t, userRepo.SetTotalXP(ctx, testutil.User1.ID, 300, 2))
	require.NoError(t, userRepo.SetTotalXP(ctx, testutil.User2.ID, 950, 4))

	// The redis key is missing, so the first read rebuilds it from database.
	resp, err := domain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	require.Equal(t, testutil.User2.Username, resp.Entries[0].Username)
	require.Equal(t, 950, resp.Entries[0].TotalXP)
	require.Equal(t, 1, resp.Entries[0].Rank)
	require.Equal(t, 4, resp.Entries[0].CurrentLevel)
	require.Equal(t, testutil.User1.Username, resp.Entries[1].Username)
	require.Equal(t, 2, resp.Entries[1].Rank)

	_, err = domain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Limit: 51})
	require.Equal(t, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (50)"), err)
}
