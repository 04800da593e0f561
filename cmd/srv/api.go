package main

import (
	"fmt"
	"net/http"

	"github.com/kunal12203/LifeGoal-Game/internal/middleware"
	"github.com/kunal12203/LifeGoal-Game/pkg/router"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"github.com/rs/cors"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cliCtx *cli.Context) error {
	s.loadConfig(cliCtx)
	s.loadLogger()
	s.loadDatabase()
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadLeaderboard()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	handler := cors.AllowAll().Handler(s.router.Handler())
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.ApiServer.Host, cfg.ApiServer.Port),
		Handler: handler,
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port %s", cfg.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	authRouter := s.router.Branch()
	{
		router.POST(authRouter, "/register", s.authDomain.Register)
		router.POST(authRouter, "/login", s.authDomain.Login)
	}

	// These following APIs need authentication with only Access Token.
	onlyTokenAuthRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier()
	onlyTokenAuthRouter.Before(authVerifier.Middleware())
	{
		// User API
		router.GET(onlyTokenAuthRouter, "/getMe", s.userDomain.GetMe)
		router.POST(onlyTokenAuthRouter, "/updateGoalCategories", s.userDomain.UpdateGoalCategories)
		router.GET(onlyTokenAuthRouter, "/getLeaderboard", s.userDomain.GetLeaderboard)

		// Quest API
		router.GET(onlyTokenAuthRouter, "/getQuest", s.questDomain.Get)
		router.GET(onlyTokenAuthRouter, "/getListQuest", s.questDomain.GetList)
		router.POST(onlyTokenAuthRouter, "/createQuest", s.questDomain.Create)
		router.POST(onlyTokenAuthRouter, "/deactivateQuest", s.questDomain.Deactivate)

		// Daily run API
		router.POST(onlyTokenAuthRouter, "/createDailyRun", s.dailyRunDomain.Create)
		router.GET(onlyTokenAuthRouter, "/getDailyRun", s.dailyRunDomain.Get)
		router.POST(onlyTokenAuthRouter, "/toggleCompletion", s.dailyRunDomain.ToggleCompletion)
		router.POST(onlyTokenAuthRouter, "/lockDailyRun", s.dailyRunDomain.Lock)

		// Streak API
		router.GET(onlyTokenAuthRouter, "/getMyStreaks", s.streakDomain.GetMyStreaks)
		router.GET(onlyTokenAuthRouter, "/getStreakSummary", s.streakDomain.GetSummary)

		// Goal API
		router.POST(onlyTokenAuthRouter, "/createGoal", s.goalDomain.Create)
		router.GET(onlyTokenAuthRouter, "/getGoal", s.goalDomain.Get)
		router.GET(onlyTokenAuthRouter, "/getListGoal", s.goalDomain.GetList)
		router.POST(onlyTokenAuthRouter, "/updateGoal", s.goalDomain.Update)
		router.POST(onlyTokenAuthRouter, "/deleteGoal", s.goalDomain.Delete)
		router.POST(onlyTokenAuthRouter, "/addMilestone", s.goalDomain.AddMilestone)
		router.POST(onlyTokenAuthRouter, "/updateMilestone", s.goalDomain.UpdateMilestone)
		router.POST(onlyTokenAuthRouter, "/deleteMilestone", s.goalDomain.DeleteMilestone)
		router.POST(onlyTokenAuthRouter, "/toggleMilestone", s.goalDomain.ToggleMilestone)

		// Decay API
		router.GET(onlyTokenAuthRouter, "/getDecayStatus", s.decayDomain.GetStatus)
		router.GET(onlyTokenAuthRouter, "/getDecayHistory", s.decayDomain.GetHistory)

		// Weekly challenge API
		router.GET(onlyTokenAuthRouter, "/getWeeklyChallenge", s.challengeDomain.GetStatus)
		router.POST(onlyTokenAuthRouter, "/completeWeeklyChallenge", s.challengeDomain.Complete)
		router.GET(onlyTokenAuthRouter, "/getWeeklyChallengeHistory", s.challengeDomain.GetHistory)
	}
}
