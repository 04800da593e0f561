package statistic

import (
	"context"
	"testing"

	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func Test_leaderboard_GetRank(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.SetTotalXP(ctx, testutil.User1.ID, 300, 2))
	require.NoError(t, userRepo.SetTotalXP(ctx, testutil.User2.ID, 950, 4))

	loaded := map[string]float64{}
	redisClient := &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return len(loaded) > 0, nil
		},
		ZAddFunc: func(ctx context.Context, key string, z redis.Z) error {
			loaded[z.Member.(string)] = z.Score
			return nil
		},
		ZRevRankFunc: func(ctx context.Context, key string, member string) (uint64, error) {
			rank := uint64(0)
			for _, score := range loaded {
				if score > loaded[member] {
					rank++
				}
			}

			return rank, nil
		},
	}

	lb := New(userRepo, redisClient)

	// The missing key is rebuilt from database before ranking.
	rank, err := lb.GetRank(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, rank)
	require.Len(t, loaded, 2)

	rank, err = lb.GetRank(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rank)
}

func Test_leaderboard_ChangeXPLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	incremented := false
	exists := false
	redisClient := &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return exists, nil
		},
		ZIncrByFunc: func(ctx context.Context, key string, incr int64, member string) error {
			incremented = true
			return nil
		},
	}

	lb := New(repository.NewUserRepository(), redisClient)

	// A missing key is left alone so the next read rebuilds it.
	require.NoError(t, lb.ChangeXPLeaderboard(ctx, 100, testutil.User1.ID))
	require.False(t, incremented)

	exists = true
	require.NoError(t, lb.ChangeXPLeaderboard(ctx, 100, testutil.User1.ID))
	require.True(t, incremented)
}
