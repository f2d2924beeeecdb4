package journal

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core"
)

var ErrStudentNotFound = errors.New("student not found")

// the session year must be read before the profile: see Service.Load
var loadOrder = []string{KeyStudents, KeyLogs, KeyAcademicYear, KeySpreadsheetURL, KeyTeacherData}

// banner messages
const (
	msgStudentAdded        = "Data siswa berhasil ditambahkan"
	msgStudentUpdated      = "Data siswa berhasil diperbarui"
	msgStudentDeleted      = "Data siswa berhasil dihapus"
	msgLogAdded            = "Jurnal berhasil dikirim"
	msgSpreadsheetURLSaved = "Konfigurasi Cloud disimpan"
	msgTeacherDataUpdated  = "Data Guru berhasil diperbarui"
	msgSaveFailed          = "Gagal menyimpan data"
	msgExported            = "Data berhasil diekspor ke hard disk"
	msgImported            = "Data berhasil dipulihkan dari cadangan"
	msgInvalidBackup       = "File tidak valid atau rusak"
)

// Service owns the session State. Every mutation goes through it:
// it runs the transition, saves the touched records right away, then raises the banner and the remote push.
type Service struct {
	mu       sync.RWMutex
	state    State
	store    Store
	notifier Notifier
	banner   core.Banner
	logger   core.Logger
}

func NewService(store Store, notifier Notifier, banner core.Banner, logger core.Logger, conf *core.Config) *Service {
	return &Service{
		state:    DefaultState(conf.Defaults),
		store:    store,
		notifier: notifier,
		banner:   banner,
		logger:   logger,
	}
}

// Load replaces the session state with the persisted records.
// Each key is read on its own: a record that cannot be read keeps its default, is logged,
// and is reported in the returned slice. The session year falls back to the profile's year
// when no year of its own could be read.
func (svc *Service) Load(ctx context.Context) []error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	var issues []error
	st := svc.state
	yearLoaded := false
	for _, key := range loadOrder {
		raw, ok, err := svc.store.Load(ctx, key)
		if err == nil && !ok {
			continue
		}
		if err == nil {
			st, err = decodeRecord(st, key, raw)
		}
		if err != nil {
			rErr := &StorageReadError{Key: key, Err: err}
			svc.logger.Warn(fmt.Sprintf("loading journal: %v", rErr), rErr)
			issues = append(issues, rErr)
			continue
		}
		switch key {
		case KeyAcademicYear:
			yearLoaded = true
		case KeyTeacherData:
			// only a fallback: a saved session year is never replaced by the profile's on reload
			if !yearLoaded && st.TeacherData.AcademicYear != "" {
				st.AcademicYear = st.TeacherData.AcademicYear
			}
		}
	}
	svc.state = st
	return issues
}

// persist saves the given records of the current state, one save per record. must hold svc.mu.
func (svc *Service) persist(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		value, err := encodeRecord(svc.state, key)
		if err == nil {
			err = svc.store.Save(ctx, key, value)
		}
		if err != nil {
			svc.banner.Show(core.NoticeError, msgSaveFailed)
			return errors.Wrapf(err, "saving %q", key)
		}
	}
	return nil
}

// Snapshot returns a deep copy of the session state.
func (svc *Service) Snapshot() State {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state.Clone()
}

// Students returns the students matching search (case-insensitive, on name or class).
func (svc *Service) Students(search string) []Student {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return FilterStudents(svc.state.Students, search)
}

func (svc *Service) Student(id string) (Student, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	for _, s := range svc.state.Students {
		if s.ID == id {
			return s, nil
		}
	}
	return Student{}, ErrStudentNotFound
}

// Logs returns the counseling logs matching search (case-insensitive, on student name, aspect or academic year).
func (svc *Service) Logs(search string) []CounselingLog {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return FilterLogs(svc.state.Logs, search)
}

func (svc *Service) AcademicYear() string {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state.AcademicYear
}

func (svc *Service) TeacherData() TeacherData {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state.TeacherData
}

func (svc *Service) SpreadsheetURL() string {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state.SpreadsheetURL
}

// Mutations

func (svc *Service) AddStudent(ctx context.Context, s Student) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = svc.state.AddStudent(s)
	if err := svc.persist(ctx, KeyStudents); err != nil {
		return err
	}
	svc.banner.Show(core.NoticeSuccess, msgStudentAdded)
	svc.notifier.Push(svc.state.SpreadsheetURL, TargetStudents, s)
	return nil
}

// UpdateStudent replaces the student with the same id.
// An unknown id is a silent no-op: nothing is saved, shown or pushed.
func (svc *Service) UpdateStudent(ctx context.Context, s Student) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	next, ok := svc.state.UpdateStudent(s)
	if !ok {
		return nil
	}
	svc.state = next
	if err := svc.persist(ctx, KeyStudents); err != nil {
		return err
	}
	svc.banner.Show(core.NoticeSuccess, msgStudentUpdated)
	svc.notifier.Push(svc.state.SpreadsheetURL, TargetStudents, s)
	return nil
}

// DeleteStudent removes the student; its logs are kept. An unknown id is a no-op.
func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	next, ok := svc.state.DeleteStudent(id)
	if !ok {
		return nil
	}
	svc.state = next
	if err := svc.persist(ctx, KeyStudents); err != nil {
		return err
	}
	svc.banner.Show(core.NoticeSuccess, msgStudentDeleted)
	return nil
}

func (svc *Service) AddLog(ctx context.Context, l CounselingLog) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = svc.state.AddLog(l)
	if err := svc.persist(ctx, KeyLogs); err != nil {
		return err
	}
	svc.banner.Show(core.NoticeSuccess, msgLogAdded)
	svc.notifier.Push(svc.state.SpreadsheetURL, TargetLogs, l)
	return nil
}

// SetAcademicYear changes the session year only. Like typing in the year field, it raises no banner.
func (svc *Service) SetAcademicYear(ctx context.Context, year string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = svc.state.SetAcademicYear(year)
	return svc.persist(ctx, KeyAcademicYear)
}

// SetTeacherData replaces the profile and, with it, the session year.
func (svc *Service) SetTeacherData(ctx context.Context, data TeacherData) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = svc.state.SetTeacherData(data)
	if err := svc.persist(ctx, KeyTeacherData, KeyAcademicYear); err != nil {
		return err
	}
	svc.banner.Show(core.NoticeSuccess, msgTeacherDataUpdated)
	return nil
}

func (svc *Service) SetSpreadsheetURL(ctx context.Context, url string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = svc.state.SetSpreadsheetURL(core.CleanString(url))
	if err := svc.persist(ctx, KeySpreadsheetURL); err != nil {
		return err
	}
	svc.banner.Show(core.NoticeSuccess, msgSpreadsheetURLSaved)
	return nil
}
