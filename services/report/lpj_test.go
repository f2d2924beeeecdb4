package reportsvc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/guruwali/core/journal"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		year string
		want string
	}{
		{year: "2025/2026", want: "LPJ_GuruWali_2025-2026.xlsx"},
		{year: "", want: "LPJ_GuruWali_Semua.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.year))
		})
	}
}

func TestWriteLPJ(t *testing.T) {
	st := journal.State{
		Students: []journal.Student{
			{ID: "1", Name: "Budi", ClassName: "7A"},
			{ID: "2", Name: "Ani", ClassName: "7B"},
		},
		Logs: []journal.CounselingLog{
			{
				ID: "l1", Date: "2025-08-01", AcademicYear: "2025/2026", StudentID: "1", StudentName: "Budi",
				ClassName: "7A", Type: journal.TypeIndividual, Aspect: journal.AspectAkademik, Status: journal.StatusBaik,
			},
			{
				ID: "l2", Date: "2024-08-01", AcademicYear: "2024/2025", StudentID: "2", StudentName: "Ani",
				ClassName: "7B", Type: journal.TypeKlasikal, Aspect: journal.AspectKarakter, Status: journal.StatusButuhBantuan,
			},
		},
		AcademicYear: "2025/2026",
		TeacherData:  journal.TeacherData{Name: "Wiwit Purnomo, S.Pd", AcademicYear: "2025/2026"},
	}

	var buf bytes.Buffer
	if err := WriteLPJ(&buf, st, "2025/2026"); err != nil {
		t.Fatalf("WriteLPJ() failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{sheetSummary, sheetStudents, sheetLogs}, f.GetSheetList())

	students, err := f.GetRows(sheetStudents)
	assert.NoError(t, err)
	assert.Len(t, students, 3)
	assert.Equal(t, []string{"2", "Ani", "7B"}, students[2][:3])

	logs, err := f.GetRows(sheetLogs)
	assert.NoError(t, err)
	if assert.Len(t, logs, 2) {
		assert.Equal(t, "Budi", logs[1][4])
		assert.Equal(t, "Individual", logs[1][6])
	}

	name, err := f.GetCellValue(sheetSummary, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Wiwit Purnomo, S.Pd", name)
	sessions, err := f.GetCellValue(sheetSummary, "B8")
	assert.NoError(t, err)
	assert.Equal(t, "1", sessions)
}
