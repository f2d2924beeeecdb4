package dig_container

import (
	"context"
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/guruwali/apps/api/echo"
	"github.com/trezcool/guruwali/core"
	"github.com/trezcool/guruwali/core/journal"
	bannersvc "github.com/trezcool/guruwali/services/banner"
	logsvc "github.com/trezcool/guruwali/services/logger"
	notifysvc "github.com/trezcool/guruwali/services/notify"
	"github.com/trezcool/guruwali/storage/database"
	sqlxdb "github.com/trezcool/guruwali/storage/database/sqlx"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

type ServerParam struct {
	dig.In
	Conf       *core.Config
	Logger     core.Logger
	JournalSvc *journal.Service
	Board      *bannersvc.Board
	Validate   *validator.Validate
	Translator ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

func newDB(conf *core.Config, loggerParam DBLoggerParam) *sqlx.DB {
	setUp := func() (*sqlx.DB, error) {
		if err := database.CreateIfNotExist(conf); err != nil {
			return nil, err
		}

		db, err := database.Open(conf)
		if err != nil {
			return nil, err
		}

		if err = database.Migrate(context.Background(), db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	db, err := setUp()
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return db
}

func newStore(conf *core.Config, db *sqlx.DB) journal.Store {
	return sqlxdb.NewStore(db, conf.Store.KeyPrefix)
}

func newBoard() *bannersvc.Board {
	return bannersvc.NewBoard(bannersvc.DefaultTTL)
}

func newBanner(conf *core.Config, board *bannersvc.Board) core.Banner {
	if conf.Debug {
		return bannersvc.Multi(board, bannersvc.NewConsole(os.Stdout))
	}
	return board
}

func newValidate() *validator.Validate {
	return validator.New()
}

func newServer(p ServerParam) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		JournalSvc: p.JournalSvc,
		Board:      p.Board,
		Validate:   p.Validate,
		Translator: p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))
	must(c.Provide(newStore))
	must(c.Provide(newBoard))
	must(c.Provide(newBanner))
	must(c.Provide(notifysvc.NewSpreadsheetNotifier))
	must(c.Provide(journal.NewService))
	must(c.Provide(newValidate))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
