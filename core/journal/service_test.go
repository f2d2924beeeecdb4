package journal

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/guruwali/core"
)

func TestService_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		values     map[string]string
		failLoad   []string
		wantIssues int
		check      func(t *testing.T, st State)
	}{
		{
			name: "fresh install",
			check: func(t *testing.T, st State) {
				assert.Equal(t, DefaultState(testDefaults), st)
			},
		},
		{
			name: "year falls back to the profile",
			values: map[string]string{
				KeyTeacherData: `{"name":"Bu Sari","nip":"1","school":"S","schoolAddress":"A","academicYear":"2024/2025"}`,
			},
			check: func(t *testing.T, st State) {
				assert.Equal(t, "2024/2025", st.AcademicYear)
				assert.Equal(t, "Bu Sari", st.TeacherData.Name)
			},
		},
		{
			name: "stored year wins over the profile",
			values: map[string]string{
				KeyAcademicYear: "2026/2027",
				KeyTeacherData:  `{"name":"Bu Sari","academicYear":"2024/2025"}`,
			},
			check: func(t *testing.T, st State) {
				assert.Equal(t, "2026/2027", st.AcademicYear)
				assert.Equal(t, "2024/2025", st.TeacherData.AcademicYear)
			},
		},
		{
			name: "corrupt students do not affect logs",
			values: map[string]string{
				KeyStudents: `{not json`,
				KeyLogs:     `[{"id":"l1","studentName":"Budi","academicYear":"2025/2026"}]`,
			},
			wantIssues: 1,
			check: func(t *testing.T, st State) {
				assert.Equal(t, []Student{}, st.Students)
				assert.Len(t, st.Logs, 1)
			},
		},
		{
			name:       "unreadable key keeps its default",
			values:     map[string]string{KeySpreadsheetURL: "https://example.test/exec"},
			failLoad:   []string{KeyAcademicYear, KeyTeacherData},
			wantIssues: 2,
			check: func(t *testing.T, st State) {
				assert.Equal(t, "2025/2026", st.AcademicYear)
				assert.Equal(t, DefaultState(testDefaults).TeacherData, st.TeacherData)
				assert.Equal(t, "https://example.test/exec", st.SpreadsheetURL)
			},
		},
		{
			name:   "null profile keeps the default",
			values: map[string]string{KeyTeacherData: "null", KeyStudents: "null"},
			check: func(t *testing.T, st State) {
				assert.Equal(t, DefaultState(testDefaults).TeacherData, st.TeacherData)
				assert.NotNil(t, st.Students)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			for k, v := range tt.values {
				store.values[k] = v
			}
			for _, k := range tt.failLoad {
				store.failLoad[k] = true
			}
			f := setupWithStore(store)

			issues := f.svc.Load(ctx)
			if assert.Len(t, issues, tt.wantIssues) {
				for _, err := range issues {
					var rErr *StorageReadError
					assert.True(t, errors.As(err, &rErr))
				}
			}
			tt.check(t, f.svc.Snapshot())
		})
	}
}

// every mutation is saved right away: a new session reading the same store sees the same state.
func TestService_reloadReplaysState(t *testing.T) {
	ctx := context.Background()
	f := setup()

	budi := newStudent("1", "Budi", "7A")
	assert.NoError(t, f.svc.AddStudent(ctx, budi))
	assert.NoError(t, f.svc.AddStudent(ctx, newStudent("2", "Ani", "7B")))
	assert.NoError(t, f.svc.UpdateStudent(ctx, newStudent("2", "Ani W", "7B")))
	assert.NoError(t, f.svc.DeleteStudent(ctx, "1"))
	assert.NoError(t, f.svc.AddLog(ctx, newLog("l1", "1", "Budi", "2025/2026")))
	assert.NoError(t, f.svc.SetTeacherData(ctx, TeacherData{Name: "Bu Sari", AcademicYear: "2026/2027"}))
	assert.NoError(t, f.svc.SetAcademicYear(ctx, "2027/2028"))
	assert.NoError(t, f.svc.SetSpreadsheetURL(ctx, "  https://example.test/exec  "))

	reloaded := setupWithStore(f.store)
	assert.Empty(t, reloaded.svc.Load(ctx))
	assert.Equal(t, f.svc.Snapshot(), reloaded.svc.Snapshot())
	assert.Equal(t, "https://example.test/exec", reloaded.svc.SpreadsheetURL())
	assert.Equal(t, "2027/2028", reloaded.svc.AcademicYear())
	assert.Equal(t, "2026/2027", reloaded.svc.TeacherData().AcademicYear)
}

func TestService_addThenUpdateStudent(t *testing.T) {
	ctx := context.Background()
	f := setup()
	assert.NoError(t, f.svc.SetSpreadsheetURL(ctx, "https://example.test/exec"))

	assert.NoError(t, f.svc.AddStudent(ctx, newStudent("1", "Budi", "7A")))
	assert.Equal(t, core.Notice{Kind: core.NoticeSuccess, Message: msgStudentAdded}, f.banner.last())

	assert.NoError(t, f.svc.UpdateStudent(ctx, newStudent("1", "Budi Santoso", "7A")))
	assert.Equal(t, core.Notice{Kind: core.NoticeSuccess, Message: msgStudentUpdated}, f.banner.last())

	assert.Equal(t, []Student{newStudent("1", "Budi Santoso", "7A")}, f.svc.Students(""))
	if assert.Len(t, f.notifier.pushes, 2) {
		assert.Equal(t, TargetStudents, f.notifier.pushes[0].target)
		assert.Equal(t, "https://example.test/exec", f.notifier.pushes[0].endpoint)
		assert.Equal(t, newStudent("1", "Budi Santoso", "7A"), f.notifier.pushes[1].payload)
	}
}

func TestService_UpdateStudent_unknownID(t *testing.T) {
	ctx := context.Background()
	f := setup()
	assert.NoError(t, f.svc.AddStudent(ctx, newStudent("1", "Budi", "7A")))
	before := f.svc.Snapshot()
	saves := len(f.store.saveCalls)
	notices := len(f.banner.notices)

	assert.NoError(t, f.svc.UpdateStudent(ctx, newStudent("9", "Nobody", "9Z")))
	assert.NoError(t, f.svc.DeleteStudent(ctx, "9"))

	assert.Equal(t, before, f.svc.Snapshot())
	assert.Len(t, f.store.saveCalls, saves)
	assert.Len(t, f.banner.notices, notices)
	assert.Len(t, f.notifier.pushes, 1)
}

func TestService_AddLog(t *testing.T) {
	ctx := context.Background()

	t.Run("no endpoint", func(t *testing.T) {
		f := setup()
		l := newLog("l1", "1", "Budi", "2025/2026")
		assert.NoError(t, f.svc.AddLog(ctx, l))
		assert.Equal(t, []CounselingLog{l}, f.svc.Logs(""))
		assert.Equal(t, 0, f.banner.count(core.NoticeError))
		assert.Equal(t, core.Notice{Kind: core.NoticeSuccess, Message: msgLogAdded}, f.banner.last())
		// the notifier decides what an empty endpoint means; it is handed over as-is
		if assert.Len(t, f.notifier.pushes, 1) {
			assert.Equal(t, "", f.notifier.pushes[0].endpoint)
			assert.Equal(t, TargetLogs, f.notifier.pushes[0].target)
		}
	})

	t.Run("save failure", func(t *testing.T) {
		f := setup()
		f.store.failSave[KeyLogs] = true
		err := f.svc.AddLog(ctx, newLog("l1", "1", "Budi", "2025/2026"))
		assert.Error(t, err)
		assert.Equal(t, errBoom, errors.Cause(err))
		assert.Equal(t, core.Notice{Kind: core.NoticeError, Message: msgSaveFailed}, f.banner.last())
		assert.Empty(t, f.notifier.pushes)
	})
}

func TestService_SetTeacherData(t *testing.T) {
	ctx := context.Background()
	f := setup()
	profile := TeacherData{Name: "Bu Sari", NIP: "1987", School: "SMPN 1", SchoolAddress: "Solo", AcademicYear: "2026/2027"}

	assert.NoError(t, f.svc.SetTeacherData(ctx, profile))
	assert.Equal(t, profile, f.svc.TeacherData())
	assert.Equal(t, "2026/2027", f.svc.AcademicYear())
	assert.Equal(t, `2026/2027`, f.store.values[KeyAcademicYear])
	assert.JSONEq(t,
		`{"name":"Bu Sari","nip":"1987","school":"SMPN 1","schoolAddress":"Solo","academicYear":"2026/2027"}`,
		f.store.values[KeyTeacherData],
	)

	assert.NoError(t, f.svc.SetAcademicYear(ctx, "2030/2031"))
	assert.Equal(t, "2030/2031", f.svc.AcademicYear())
	assert.Equal(t, "2026/2027", f.svc.TeacherData().AcademicYear)
}

func TestService_search(t *testing.T) {
	ctx := context.Background()
	f := setup()
	assert.NoError(t, f.svc.AddStudent(ctx, newStudent("1", "Budi", "7A")))
	assert.NoError(t, f.svc.AddStudent(ctx, newStudent("2", "Ani", "8B")))
	l1 := newLog("l1", "1", "Budi", "2025/2026")
	l2 := newLog("l2", "2", "Ani", "2024/2025")
	l2.Aspect = AspectKarakter
	assert.NoError(t, f.svc.AddLog(ctx, l1))
	assert.NoError(t, f.svc.AddLog(ctx, l2))

	studentTests := []struct {
		search string
		want   []string
	}{
		{search: "", want: []string{"1", "2"}},
		{search: "bUd", want: []string{"1"}},
		{search: " 8b ", want: []string{"2"}},
		{search: "zzz", want: []string{}},
	}
	for _, tt := range studentTests {
		t.Run("students "+tt.search, func(t *testing.T) {
			ids := []string{}
			for _, s := range f.svc.Students(tt.search) {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	logTests := []struct {
		search string
		want   []string
	}{
		{search: "ani", want: []string{"l2"}},
		{search: "karakter", want: []string{"l2"}},
		{search: "2025/2026", want: []string{"l1"}},
		{search: "2025", want: []string{"l1", "l2"}},
	}
	for _, tt := range logTests {
		t.Run("logs "+tt.search, func(t *testing.T) {
			ids := []string{}
			for _, l := range f.svc.Logs(tt.search) {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestService_Student(t *testing.T) {
	ctx := context.Background()
	f := setup()
	assert.NoError(t, f.svc.AddStudent(ctx, newStudent("1", "Budi", "7A")))

	s, err := f.svc.Student("1")
	assert.NoError(t, err)
	assert.Equal(t, "Budi", s.Name)

	_, err = f.svc.Student("2")
	assert.Equal(t, ErrStudentNotFound, err)
}
