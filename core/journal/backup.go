package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core"
)

const BackupFilenamePrefix = "Backup_Jurnal_GuruWali_"

// ErrInvalidBackupFormat is returned when a backup document cannot be read. Nothing is applied in that case.
var ErrInvalidBackupFormat = errors.New("invalid backup format")

var nowFunc = time.Now // mockable

// Backup is a full snapshot of the persisted records.
type Backup struct {
	Students       []Student       `json:"students"`
	CounselingLogs []CounselingLog `json:"counselingLogs"`
	TeacherData    TeacherData     `json:"teacherData"`
	SpreadsheetURL string          `json:"spreadsheetUrl"`
	AcademicYear   string          `json:"academicYear"`
	ExportDate     time.Time       `json:"exportDate"` // informational only; never read back
}

// Filename follows Backup_Jurnal_GuruWali_<YYYY-MM-DD>.json.
func (b Backup) Filename() string {
	return BackupFilenamePrefix + b.ExportDate.Format("2006-01-02") + ".json"
}

// Encode returns the backup as indented UTF-8 JSON.
func (b Backup) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding backup")
	}
	return data, nil
}

// BackupPatch holds the fields of an imported document that were present and non-null.
type BackupPatch struct {
	Students       *[]Student
	CounselingLogs *[]CounselingLog
	TeacherData    *TeacherData
	SpreadsheetURL *string
	AcademicYear   *string
}

type backupField struct {
	name string // document key
	key  string // store key
	set  func(p BackupPatch) bool
}

// backupFields follows the document order.
var backupFields = []backupField{
	{name: "students", key: KeyStudents, set: func(p BackupPatch) bool { return p.Students != nil }},
	{name: "counselingLogs", key: KeyLogs, set: func(p BackupPatch) bool { return p.CounselingLogs != nil }},
	{name: "teacherData", key: KeyTeacherData, set: func(p BackupPatch) bool { return p.TeacherData != nil }},
	{name: "spreadsheetUrl", key: KeySpreadsheetURL, set: func(p BackupPatch) bool { return p.SpreadsheetURL != nil }},
	{name: "academicYear", key: KeyAcademicYear, set: func(p BackupPatch) bool { return p.AcademicYear != nil }},
}

// Fields lists the document keys carried by the patch.
func (p BackupPatch) Fields() []string {
	fields := make([]string, 0, len(backupFields))
	for _, f := range backupFields {
		if f.set(p) {
			fields = append(fields, f.name)
		}
	}
	return fields
}

// keys lists the store keys touched by the patch.
func (p BackupPatch) keys() []string {
	keys := make([]string, 0, len(backupFields))
	for _, f := range backupFields {
		if f.set(p) {
			keys = append(keys, f.key)
		}
	}
	return keys
}

// DecodeBackup reads a backup document.
//
// The document must be a JSON object. Each of students, counselingLogs, teacherData, spreadsheetUrl
// and academicYear is only taken when present and not null; exportDate and unknown keys are ignored.
// Records are not validated beyond their JSON shape: a student without a name is accepted as-is.
func DecodeBackup(data []byte) (BackupPatch, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return BackupPatch{}, errors.Wrap(ErrInvalidBackupFormat, err.Error())
	}
	if doc == nil { // a bare `null`
		return BackupPatch{}, errors.Wrap(ErrInvalidBackupFormat, "empty document")
	}

	var p BackupPatch
	if raw, ok := present(doc, "students"); ok {
		students := []Student{}
		if err := json.Unmarshal(raw, &students); err != nil {
			return BackupPatch{}, invalidField("students", err)
		}
		p.Students = &students
	}
	if raw, ok := present(doc, "counselingLogs"); ok {
		logs := []CounselingLog{}
		if err := json.Unmarshal(raw, &logs); err != nil {
			return BackupPatch{}, invalidField("counselingLogs", err)
		}
		p.CounselingLogs = &logs
	}
	if raw, ok := present(doc, "teacherData"); ok {
		var data TeacherData
		if err := json.Unmarshal(raw, &data); err != nil {
			return BackupPatch{}, invalidField("teacherData", err)
		}
		p.TeacherData = &data
	}
	if raw, ok := present(doc, "spreadsheetUrl"); ok {
		var url string
		if err := json.Unmarshal(raw, &url); err != nil {
			return BackupPatch{}, invalidField("spreadsheetUrl", err)
		}
		p.SpreadsheetURL = &url
	}
	if raw, ok := present(doc, "academicYear"); ok {
		var year string
		if err := json.Unmarshal(raw, &year); err != nil {
			return BackupPatch{}, invalidField("academicYear", err)
		}
		p.AcademicYear = &year
	}
	return p, nil
}

// present returns the raw value of key when it is in doc and not null.
func present(doc map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := doc[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func invalidField(name string, err error) error {
	return errors.Wrapf(ErrInvalidBackupFormat, "%s: %v", name, err)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// IsInvalidBackupFormat reports whether err was caused by an unreadable backup document.
func IsInvalidBackupFormat(err error) bool {
	return errors.Cause(err) == ErrInvalidBackupFormat
}

// Export snapshots the session into a Backup that shares no memory with it.
// Callers report a successful write with Exported.
func (svc *Service) Export() Backup {
	svc.mu.RLock()
	st := svc.state.Clone()
	svc.mu.RUnlock()

	return Backup{
		Students:       st.Students,
		CounselingLogs: st.Logs,
		TeacherData:    st.TeacherData,
		SpreadsheetURL: st.SpreadsheetURL,
		AcademicYear:   st.AcademicYear,
		ExportDate:     nowFunc().UTC().Truncate(time.Millisecond),
	}
}

// Exported shows the export banner once the backup has been written out.
func (svc *Service) Exported() {
	svc.banner.Show(core.NoticeSuccess, msgExported)
}

// ImportResult tells which document fields replaced live records.
type ImportResult struct {
	Applied []string `json:"applied"`
}

// Import merges a backup document into the session.
// A malformed document fails with ErrInvalidBackupFormat and changes nothing.
// Otherwise every field present and non-null replaces its live record, which is then saved; the rest is left untouched.
func (svc *Service) Import(ctx context.Context, data []byte) (ImportResult, error) {
	p, err := DecodeBackup(data)
	if err != nil {
		svc.logger.Warn("importing backup: "+err.Error(), err)
		svc.banner.Show(core.NoticeError, msgInvalidBackup)
		return ImportResult{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = svc.state.ApplyBackup(p)
	if err = svc.persist(ctx, p.keys()...); err != nil {
		return ImportResult{}, err
	}
	svc.banner.Show(core.NoticeSuccess, msgImported)
	return ImportResult{Applied: p.Fields()}, nil
}
