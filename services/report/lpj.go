package reportsvc

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/guruwali/core/journal"
)

const (
	sheetSummary  = "Rekap"
	sheetStudents = "Siswa"
	sheetLogs     = "Jurnal"
)

var (
	studentHeader = []interface{}{"ID", "Nama", "Kelas", "Alamat", "Telepon", "Catatan"}
	logHeader     = []interface{}{
		"Tanggal", "Jam Mulai", "Jam Selesai", "Tahun Pelajaran", "Nama Siswa", "Kelas",
		"Jenis", "Aspek", "Hasil", "Status", "Tindak Lanjut", "Catatan",
	}
)

// Filename returns the name of the LPJ workbook of the given year.
func Filename(year string) string {
	if year == "" {
		year = "Semua"
	}
	return "LPJ_GuruWali_" + strings.NewReplacer("/", "-", " ", "_").Replace(year) + ".xlsx"
}

// WriteLPJ writes the accountability report (LPJ) of one academic year as an xlsx workbook:
// a recap sheet, the student roster and the counseling logs of that year.
func WriteLPJ(w io.Writer, st journal.State, year string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}

	logs := journal.LogsForYear(st.Logs, year)
	if err = writeSummary(f, st.TeacherData, journal.Summarize(logs, year), bold); err != nil {
		return err
	}

	students := make([][]interface{}, 0, len(st.Students))
	for _, s := range st.Students {
		students = append(students, []interface{}{s.ID, s.Name, s.ClassName, s.Address, s.Phone, s.Notes})
	}
	if err = writeTable(f, sheetStudents, studentHeader, students, bold); err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []interface{}{
			l.Date, l.StartTime, l.EndTime, l.AcademicYear, l.StudentName, l.ClassName,
			string(l.Type), string(l.Aspect), l.Result, string(l.Status), l.FollowUp, l.Notes,
		})
	}
	if err = writeTable(f, sheetLogs, logHeader, rows, bold); err != nil {
		return err
	}

	if err = f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "deleting default sheet")
	}
	idx, err := f.GetSheetIndex(sheetSummary)
	if err != nil {
		return errors.Wrap(err, "locating summary sheet")
	}
	f.SetActiveSheet(idx)

	if _, err = f.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func writeSummary(f *excelize.File, teacher journal.TeacherData, sum journal.Summary, bold int) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return errors.Wrapf(err, "creating %s sheet", sheetSummary)
	}

	year := sum.AcademicYear
	if year == "" {
		year = "Semua"
	}
	rows := [][]interface{}{
		{"Laporan Pertanggungjawaban Guru Wali"},
		{"Nama Guru", teacher.Name},
		{"NIP", teacher.NIP},
		{"Sekolah", teacher.School},
		{"Alamat Sekolah", teacher.SchoolAddress},
		{"Tahun Pelajaran", year},
		{},
		{"Jumlah Sesi", sum.Sessions},
		{"Jumlah Siswa Dibimbing", sum.Students},
		{},
		{"Jenis Layanan"},
	}
	for _, t := range journal.CounselingTypes {
		rows = append(rows, []interface{}{string(t), sum.ByType[t]})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Aspek"})
	for _, a := range journal.CounselingAspects {
		rows = append(rows, []interface{}{string(a), sum.ByAspect[a]})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Status"})
	for _, s := range journal.CounselingStatuses {
		rows = append(rows, []interface{}{string(s), sum.ByStatus[s]})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		row := row
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return errors.Wrapf(err, "writing %s row %d", sheetSummary, i+1)
		}
		if len(row) == 1 { // section title
			if err := f.SetCellStyle(sheetSummary, cell, cell, bold); err != nil {
				return errors.Wrap(err, "styling summary")
			}
		}
	}
	return errors.Wrap(f.SetColWidth(sheetSummary, "A", "A", 32), "sizing summary")
}

func writeTable(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, bold int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrapf(err, "creating %s sheet", sheet)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "writing %s header", sheet)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return errors.Wrapf(err, "styling %s header", sheet)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "writing %s row %d", sheet, i+2)
		}
	}
	return nil
}
