package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core/journal"
	reportsvc "github.com/trezcool/guruwali/services/report"
)

func (cli *commandLine) students(search string) error {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAMA\tKELAS")
	for _, s := range cli.svc.Students(search) {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.ClassName)
	}
	return w.Flush()
}

func (cli *commandLine) summary(year string) error {
	sum := cli.svc.Summary(year)

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Tahun Pelajaran\t%s\n", sum.AcademicYear)
	_, _ = fmt.Fprintf(w, "Jumlah Sesi\t%d\n", sum.Sessions)
	_, _ = fmt.Fprintf(w, "Jumlah Siswa\t%d\n", sum.Students)
	for _, t := range journal.CounselingTypes {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", t, sum.ByType[t])
	}
	for _, a := range journal.CounselingAspects {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", a, sum.ByAspect[a])
	}
	for _, s := range journal.CounselingStatuses {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", s, sum.ByStatus[s])
	}
	return w.Flush()
}

// report writes the LPJ workbook of the given year (the session year when empty).
func (cli *commandLine) report(path, year string) error {
	if year == "" {
		year = cli.svc.AcademicYear()
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating report file")
	}
	if err = reportsvc.WriteLPJ(f, cli.svc.Snapshot(), year); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "closing report file")
	}
	_, _ = fmt.Fprintf(cli.out, "report written to %s\n", path)
	return nil
}
