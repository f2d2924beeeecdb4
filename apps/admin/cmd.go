package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/trezcool/guruwali/core/journal"
	"github.com/trezcool/guruwali/storage/database"
)

var (
	// mockable
	migrateFunc    = database.RunMigrations
	isTerminalFunc = term.IsTerminal
	readLineFunc   = func() (string, error) {
		return bufio.NewReader(os.Stdin).ReadString('\n')
	}

	errHelp    = errors.New("help provided")
	errAborted = errors.New("aborted")
)

type commandLine struct {
	db  *sqlx.DB
	svc *journal.Service
	out io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  migrate [COMMAND [ARGS]]           - run a migration command, 'up' by default")
	_, _ = fmt.Fprintln(cli.out, "          up | up-by-one | up-to VERSION | down | down-to VERSION | redo | reset | status | version")
	_, _ = fmt.Fprintln(cli.out, "  export [-o FILE]                   - write a backup file ('-' for stdout)")
	_, _ = fmt.Fprintln(cli.out, "  import -f FILE [-y]                - restore a backup file")
	_, _ = fmt.Fprintln(cli.out, "  students [-search TEXT]            - list students")
	_, _ = fmt.Fprintln(cli.out, "  summary [-year YEAR]               - count the counseling sessions of a year")
	_, _ = fmt.Fprintln(cli.out, "  report -o FILE [-year YEAR]        - write the LPJ workbook (xlsx)")
	_, _ = fmt.Fprintln(cli.out, "  set-url -url URL                   - set the spreadsheet endpoint ('' to turn it off)")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	// the journal is only read for commands that use it
	if args[1] != "migrate" {
		if issues := cli.svc.Load(ctx); len(issues) > 0 {
			_, _ = fmt.Fprintf(cli.out, "warning: %d record(s) could not be read and were reset\n", len(issues))
		}
	}

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportOut := exportCmd.String("o", "", "Output file. Defaults to Backup_Jurnal_GuruWali_<date>.json in the current directory.")

	importCmd := flag.NewFlagSet("import", flag.ContinueOnError)
	importFile := importCmd.String("f", "", "The backup file to restore.")
	importYes := importCmd.Bool("y", false, "Do not ask for confirmation.")

	studentsCmd := flag.NewFlagSet("students", flag.ContinueOnError)
	studentsSearch := studentsCmd.String("search", "", "Only list students whose name or class contains TEXT.")

	summaryCmd := flag.NewFlagSet("summary", flag.ContinueOnError)
	summaryYear := summaryCmd.String("year", "", "Academic year. Defaults to the current one.")

	reportCmd := flag.NewFlagSet("report", flag.ContinueOnError)
	reportOut := reportCmd.String("o", "", "Output xlsx file.")
	reportYear := reportCmd.String("year", "", "Academic year. Defaults to the current one.")

	setURLCmd := flag.NewFlagSet("set-url", flag.ContinueOnError)
	setURLValue := setURLCmd.String("url", "", "The spreadsheet web app URL.")

	for _, fs := range []*flag.FlagSet{exportCmd, importCmd, studentsCmd, summaryCmd, reportCmd, setURLCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "migrate":
		return cli.migrate(ctx, args[2:])
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.export(*exportOut)
	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		if !*importYes && isTerminalFunc(int(os.Stdin.Fd())) {
			ok, err := cli.confirm("Data yang ada akan ditimpa oleh cadangan. Lanjutkan?")
			if err != nil {
				return err
			}
			if !ok {
				return errAborted
			}
		}
		return cli.restore(ctx, *importFile)
	case "students":
		if err := studentsCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.students(*studentsSearch)
	case "summary":
		if err := summaryCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.summary(*summaryYear)
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *reportOut == "" {
			reportCmd.Usage()
			return errHelp
		}
		return cli.report(*reportOut, *reportYear)
	case "set-url":
		if err := setURLCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.svc.SetSpreadsheetURL(ctx, *setURLValue)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) confirm(question string) (bool, error) {
	_, _ = fmt.Fprintf(cli.out, "%s [y/N] ", question)
	answer, err := readLineFunc()
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "ya":
		return true, nil
	}
	return false, nil
}
