package journal

// Summary sums up the counseling sessions of one academic year (the LPJ recap).
type Summary struct {
	AcademicYear string                   `json:"academicYear"`
	Sessions     int                      `json:"sessions"`
	Students     int                      `json:"students"` // distinct students met
	ByType       map[CounselingType]int   `json:"byType"`
	ByAspect     map[CounselingAspect]int `json:"byAspect"`
	ByStatus     map[CounselingStatus]int `json:"byStatus"`
}

// Summarize counts the logs of the given year. An empty year counts every log.
// Every known type, aspect and status is listed, even with a zero count.
func Summarize(logs []CounselingLog, year string) Summary {
	sum := Summary{
		AcademicYear: year,
		ByType:       make(map[CounselingType]int, len(CounselingTypes)),
		ByAspect:     make(map[CounselingAspect]int, len(CounselingAspects)),
		ByStatus:     make(map[CounselingStatus]int, len(CounselingStatuses)),
	}
	for _, t := range CounselingTypes {
		sum.ByType[t] = 0
	}
	for _, a := range CounselingAspects {
		sum.ByAspect[a] = 0
	}
	for _, s := range CounselingStatuses {
		sum.ByStatus[s] = 0
	}

	seen := make(map[string]struct{})
	for _, l := range LogsForYear(logs, year) {
		sum.Sessions++
		sum.ByType[l.Type]++
		sum.ByAspect[l.Aspect]++
		sum.ByStatus[l.Status]++
		if l.StudentID != "" {
			seen[l.StudentID] = struct{}{}
		}
	}
	sum.Students = len(seen)
	return sum
}

// Summary of the session year.
func (svc *Service) Summary(year string) Summary {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if year == "" {
		year = svc.state.AcademicYear
	}
	return Summarize(svc.state.Logs, year)
}
