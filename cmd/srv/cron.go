package main

import (
	"github.com/kunal12203/LifeGoal-Game/internal/domain"
	"github.com/kunal12203/LifeGoal-Game/internal/domain/cron"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(cliCtx *cli.Context) error {
	s.loadConfig(cliCtx)
	s.loadLogger()
	s.loadDatabase()
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadLeaderboard()

	decayDomain := domain.NewDecayDomain(s.userRepo, s.decayRepo, s.leaderboard, s.clock)

	scheduler := cron.NewScheduler()
	scheduler.Register(cron.NewXPDecayCronJob(decayDomain))
	scheduler.Register(cron.NewStreakResetCronJob(s.streakRepo, s.clock))
	scheduler.Start(s.ctx)

	return nil
}
