package journal

// State holds every record of a running session.
// Transitions never modify the receiver: they return the next State.
type State struct {
	Students       []Student
	Logs           []CounselingLog
	AcademicYear   string
	TeacherData    TeacherData
	SpreadsheetURL string
}

// Clone returns a deep copy of the state.
func (st State) Clone() State {
	next := st
	next.Students = append(make([]Student, 0, len(st.Students)), st.Students...)
	next.Logs = append(make([]CounselingLog, 0, len(st.Logs)), st.Logs...)
	return next
}

// AddStudent appends s. Duplicate ids are not checked.
func (st State) AddStudent(s Student) State {
	next := st.Clone()
	next.Students = append(next.Students, s)
	return next
}

// UpdateStudent replaces the student with the same id.
// When no student matches, the collection is returned unchanged and ok is false.
func (st State) UpdateStudent(s Student) (next State, ok bool) {
	next = st.Clone()
	for i := range next.Students {
		if next.Students[i].ID == s.ID {
			next.Students[i] = s
			ok = true
		}
	}
	return next, ok
}

// DeleteStudent removes every student with the given id. Logs are left alone.
func (st State) DeleteStudent(id string) (next State, ok bool) {
	next = st.Clone()
	kept := next.Students[:0]
	for _, s := range next.Students {
		if s.ID == id {
			ok = true
			continue
		}
		kept = append(kept, s)
	}
	next.Students = kept
	return next, ok
}

// AddLog appends l. Logs are append-only.
func (st State) AddLog(l CounselingLog) State {
	next := st.Clone()
	next.Logs = append(next.Logs, l)
	return next
}

// SetAcademicYear only changes the session year; TeacherData.AcademicYear is not touched.
func (st State) SetAcademicYear(year string) State {
	next := st.Clone()
	next.AcademicYear = year
	return next
}

// SetTeacherData replaces the profile. The session year is derived from it: it always becomes data.AcademicYear.
func (st State) SetTeacherData(data TeacherData) State {
	next := st.Clone()
	next.TeacherData = data
	next.AcademicYear = data.AcademicYear
	return next
}

func (st State) SetSpreadsheetURL(url string) State {
	next := st.Clone()
	next.SpreadsheetURL = url
	return next
}

// ApplyBackup replaces, wholesale, every record present in p.
// TeacherData is applied as-is: unlike SetTeacherData, the session year is not derived from it.
func (st State) ApplyBackup(p BackupPatch) State {
	next := st.Clone()
	if p.Students != nil {
		next.Students = append(make([]Student, 0, len(*p.Students)), *p.Students...)
	}
	if p.CounselingLogs != nil {
		next.Logs = append(make([]CounselingLog, 0, len(*p.CounselingLogs)), *p.CounselingLogs...)
	}
	if p.TeacherData != nil {
		next.TeacherData = *p.TeacherData
	}
	if p.SpreadsheetURL != nil {
		next.SpreadsheetURL = *p.SpreadsheetURL
	}
	if p.AcademicYear != nil {
		next.AcademicYear = *p.AcademicYear
	}
	return next
}
