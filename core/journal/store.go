package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Persisted record keys.
const (
	KeyStudents       = "students"
	KeyLogs           = "logs"
	KeyAcademicYear   = "academic_year"
	KeySpreadsheetURL = "spreadsheet_url"
	KeyTeacherData    = "teacher_data"
)

// Store is a string-keyed blob store; every record lives under its own key.
type Store interface {
	// Load returns ok=false when nothing was ever saved under key.
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}

// StorageReadError reports a persisted record that could not be read back.
// It only ever concerns one key: the record falls back to its default.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("reading %q: %v", e.Key, e.Err)
}

func (e *StorageReadError) Cause() error  { return e.Err }
func (e *StorageReadError) Unwrap() error { return e.Err }

// encodeRecord serializes the value stored under key.
// The academic year and spreadsheet URL are plain strings, the rest is JSON.
func encodeRecord(st State, key string) (string, error) {
	var v interface{}
	switch key {
	case KeyAcademicYear:
		return st.AcademicYear, nil
	case KeySpreadsheetURL:
		return st.SpreadsheetURL, nil
	case KeyStudents:
		v = st.Students
	case KeyLogs:
		v = st.Logs
	case KeyTeacherData:
		v = st.TeacherData
	default:
		return "", errors.Errorf("unknown key %q", key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrapf(err, "encoding %q", key)
	}
	return string(data), nil
}

// decodeRecord applies the raw value stored under key to st.
// st is returned unchanged on error.
func decodeRecord(st State, key, raw string) (State, error) {
	next := st.Clone()
	switch key {
	case KeyAcademicYear:
		next.AcademicYear = raw
	case KeySpreadsheetURL:
		next.SpreadsheetURL = raw
	case KeyStudents:
		var students []Student
		if err := json.Unmarshal([]byte(raw), &students); err != nil {
			return st, err
		}
		if students == nil {
			students = []Student{}
		}
		next.Students = students
	case KeyLogs:
		var logs []CounselingLog
		if err := json.Unmarshal([]byte(raw), &logs); err != nil {
			return st, err
		}
		if logs == nil {
			logs = []CounselingLog{}
		}
		next.Logs = logs
	case KeyTeacherData:
		var data *TeacherData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return st, err
		}
		if data != nil { // "null" keeps the default profile
			next.TeacherData = *data
		}
	default:
		return st, errors.Errorf("unknown key %q", key)
	}
	return next, nil
}
