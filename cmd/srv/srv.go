package main

import (
	"context"
	"net/http"

	"github.com/kunal12203/LifeGoal-Game/config"
	"github.com/kunal12203/LifeGoal-Game/internal/domain"
	"github.com/kunal12203/LifeGoal-Game/internal/domain/statistic"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/migration"
	"github.com/kunal12203/LifeGoal-Game/pkg/authenticator"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/logger"
	"github.com/kunal12203/LifeGoal-Game/pkg/router"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"github.com/kunal12203/LifeGoal-Game/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	userRepo      repository.UserRepository
	questRepo     repository.QuestRepository
	dailyRunRepo  repository.DailyRunRepository
	streakRepo    repository.StreakRepository
	goalRepo      repository.GoalRepository
	decayRepo     repository.XPDecayHistoryRepository
	challengeRepo repository.WeeklyChallengeRepository

	authDomain      domain.AuthDomain
	userDomain      domain.UserDomain
	questDomain     domain.QuestDomain
	dailyRunDomain  domain.DailyRunDomain
	streakDomain    domain.StreakDomain
	goalDomain      domain.GoalDomain
	decayDomain     domain.DecayDomain
	challengeDomain domain.WeeklyChallengeDomain

	leaderboard statistic.Leaderboard
	redisClient xredis.Client
	clock       dateutil.Clock

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cliCtx *cli.Context) {
	cfg, err := config.Load(cliCtx.String("config"))
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
}

func (s *srv) loadLogger() {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(cfg.LogLevel))
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	s.clock = dateutil.NewRealClock()
}

func (s *srv) loadDatabase() {
	dbCfg := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(mysql.Open(dbCfg.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) migrateDB() {
	if err := migration.Migrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.questRepo = repository.NewQuestRepository()
	s.dailyRunRepo = repository.NewDailyRunRepository()
	s.streakRepo = repository.NewStreakRepository()
	s.goalRepo = repository.NewGoalRepository()
	s.decayRepo = repository.NewXPDecayHistoryRepository()
	s.challengeRepo = repository.NewWeeklyChallengeRepository()
}

func (s *srv) loadLeaderboard() {
	s.leaderboard = statistic.New(s.userRepo, s.redisClient)
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.clock)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.leaderboard)
	s.questDomain = domain.NewQuestDomain(s.questRepo)
	s.dailyRunDomain = domain.NewDailyRunDomain(
		s.dailyRunRepo, s.questRepo, s.userRepo, s.streakRepo, s.leaderboard, s.clock)
	s.streakDomain = domain.NewStreakDomain(s.streakRepo, s.questRepo)
	s.goalDomain = domain.NewGoalDomain(s.goalRepo, s.userRepo, s.leaderboard)
	s.decayDomain = domain.NewDecayDomain(s.userRepo, s.decayRepo, s.leaderboard, s.clock)
	s.challengeDomain = domain.NewWeeklyChallengeDomain(
		s.challengeRepo, s.dailyRunRepo, s.questRepo, s.userRepo, s.leaderboard, s.clock)
}
