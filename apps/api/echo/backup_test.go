package echoapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/guruwali/core/journal"
	testutil "github.com/trezcool/guruwali/tests"
)

func Test_backupApi_export(t *testing.T) {
	e := setup(t)
	budi := testutil.CreateStudent(t, e.svc, "1", "Budi", "7A")
	testutil.CreateLog(t, e.svc, "l1", budi, "2025/2026", journal.AspectAkademik)

	req, rec := newRequest(http.MethodGet, "/v1/backup")
	e.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `^attachment; filename="Backup_Jurnal_GuruWali_\d{4}-\d{2}-\d{2}\.json"$`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "\n  \"students\": [")

	var got struct {
		Students       []journal.Student       `json:"students"`
		CounselingLogs []journal.CounselingLog `json:"counselingLogs"`
		AcademicYear   string                  `json:"academicYear"`
		ExportDate     string                  `json:"exportDate"`
	}
	decode(t, rec, &got)
	assert.Equal(t, []journal.Student{budi}, got.Students)
	assert.Len(t, got.CounselingLogs, 1)
	assert.Equal(t, "2025/2026", got.AcademicYear)
	assert.NotEmpty(t, got.ExportDate)

	notice, ok := e.board.Current()
	assert.True(t, ok)
	assert.Equal(t, "Data berhasil diekspor ke hard disk", notice.Message)
}

func Test_backupApi_restore(t *testing.T) {
	e := setup(t)
	testutil.CreateStudent(t, e.svc, "1", "Budi", "7A")

	tests := []httpTest{
		{
			name: "malformed", method: http.MethodPost, path: "/v1/backup",
			body: []byte(`{"students": [`), wantCode: http.StatusBadRequest,
		},
		{
			name: "not an object", method: http.MethodPost, path: "/v1/backup",
			body: []byte(`"hello"`), wantCode: http.StatusBadRequest,
		},
		{
			name: "year only", method: http.MethodPost, path: "/v1/backup",
			body: []byte(`{"academicYear": "2030/2031", "exportDate": "2030-01-01T00:00:00.000Z"}`), wantCode: http.StatusOK,
			wantData: marchallObj(t, journal.ImportResult{Applied: []string{"academicYear"}}),
		},
	}
	runHTTPTests(t, e.server, tests)

	assert.Equal(t, "2030/2031", e.svc.AcademicYear())
	assert.Len(t, e.svc.Students(""), 1, "students are untouched by a partial backup")
}

func Test_backupApi_restore_multipart(t *testing.T) {
	e := setup(t)
	testutil.CreateStudent(t, e.svc, "1", "Budi", "7A")

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(backupFormField, "Backup_Jurnal_GuruWali_2025-08-17.json")
	if err != nil {
		t.Fatalf("CreateFormFile() failed: %v", err)
	}
	_, _ = fw.Write([]byte(`{"students": [{"id": "2", "name": "Ani", "className": "8B"}], "spreadsheetUrl": null}`))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/backup", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []journal.Student{{ID: "2", Name: "Ani", ClassName: "8B"}}, e.svc.Students(""))

	notice, ok := e.board.Current()
	assert.True(t, ok)
	assert.Equal(t, "Data berhasil dipulihkan dari cadangan", notice.Message)

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/backup", strings.NewReader("--x--\r\n"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
		rec := httptest.NewRecorder()
		e.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
