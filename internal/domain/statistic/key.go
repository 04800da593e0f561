package statistic

// leaderboardMaxSize bounds how many users the DB rebuild seeds into redis.
const leaderboardMaxSize = 1000

func redisKeyXPLeaderboard() string {
	return "leaderboard:xp"
}
