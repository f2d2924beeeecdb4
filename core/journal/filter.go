package journal

import "github.com/trezcool/guruwali/core"

// FilterStudents returns a copy of the students whose name or class contains search, ignoring case.
// An empty search matches everything.
func FilterStudents(students []Student, search string) []Student {
	search = core.CleanString(search)
	res := make([]Student, 0, len(students))
	for _, s := range students {
		if search == "" || core.ContainsFold(s.Name, search) || core.ContainsFold(s.ClassName, search) {
			res = append(res, s)
		}
	}
	return res
}

// FilterLogs returns a copy of the logs whose student name, aspect or academic year contains search, ignoring case.
func FilterLogs(logs []CounselingLog, search string) []CounselingLog {
	search = core.CleanString(search)
	res := make([]CounselingLog, 0, len(logs))
	for _, l := range logs {
		if search == "" ||
			core.ContainsFold(l.StudentName, search) ||
			core.ContainsFold(string(l.Aspect), search) ||
			core.ContainsFold(l.AcademicYear, search) {
			res = append(res, l)
		}
	}
	return res
}

// LogsForYear returns the logs written for the given academic year. An empty year matches everything.
func LogsForYear(logs []CounselingLog, year string) []CounselingLog {
	year = core.CleanString(year)
	res := make([]CounselingLog, 0, len(logs))
	for _, l := range logs {
		if year == "" || core.CleanString(l.AcademicYear) == year {
			res = append(res, l)
		}
	}
	return res
}
