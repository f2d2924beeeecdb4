package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/trezcool/guruwali/core"
	"github.com/trezcool/guruwali/core/journal"
	bannersvc "github.com/trezcool/guruwali/services/banner"
	logsvc "github.com/trezcool/guruwali/services/logger"
	"github.com/trezcool/guruwali/storage/database"
	sqlxdb "github.com/trezcool/guruwali/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// set up DB
	errAndDie(logger, database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(logger, err)

	// CLI mutations are never pushed to the remote spreadsheet
	banner := bannersvc.NewConsole(os.Stdout)
	svc := journal.NewService(sqlxdb.NewStore(db, conf.Store.KeyPrefix), journal.NopNotifier(), banner, logger, conf)

	// start CLI
	cli := commandLine{
		db:  db,
		svc: svc,
		out: os.Stdout,
	}
	err = cli.run(context.Background(), os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("\nerror: %s\n", err))
		}
		os.Exit(1)
	}
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
