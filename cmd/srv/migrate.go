package main

import (
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) migrate(cliCtx *cli.Context) error {
	s.loadConfig(cliCtx)
	s.loadLogger()
	s.loadDatabase()
	s.migrateDB()

	xcontext.Logger(s.ctx).Infof("Migration completed")
	return nil
}
