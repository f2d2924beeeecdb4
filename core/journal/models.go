package journal

import "github.com/trezcool/guruwali/core"

type (
	CounselingType   string
	CounselingAspect string
	CounselingStatus string
)

// Counseling types
const (
	TypeKlasikal   CounselingType = "Klasikal"
	TypeIndividual CounselingType = "Individual"
)

// Counseling aspects
const (
	AspectAkademik        CounselingAspect = "Akademik"
	AspectKarakter        CounselingAspect = "Karakter"
	AspectSosialEmosional CounselingAspect = "Sosial-Emosional"
	AspectKedisiplinan    CounselingAspect = "Kedisiplinan"
	AspectBakatDanMinat   CounselingAspect = "Bakat dan Minat"
)

// Counseling statuses
const (
	StatusBaik           CounselingStatus = "baik"
	StatusPerluPerhatian CounselingStatus = "perlu perhatian"
	StatusButuhBantuan   CounselingStatus = "butuh bantuan"
)

var (
	CounselingTypes    = []CounselingType{TypeKlasikal, TypeIndividual}
	CounselingAspects  = []CounselingAspect{AspectAkademik, AspectKarakter, AspectSosialEmosional, AspectKedisiplinan, AspectBakatDanMinat}
	CounselingStatuses = []CounselingStatus{StatusBaik, StatusPerluPerhatian, StatusButuhBantuan}
)

func (t CounselingType) IsValid() bool {
	for _, v := range CounselingTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (a CounselingAspect) IsValid() bool {
	for _, v := range CounselingAspects {
		if v == a {
			return true
		}
	}
	return false
}

func (s CounselingStatus) IsValid() bool {
	for _, v := range CounselingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// TeacherData is the homeroom teacher's profile. It is always replaced as a whole.
type TeacherData struct {
	Name          string `json:"name" validate:"notblank"`
	NIP           string `json:"nip"`
	School        string `json:"school"`
	SchoolAddress string `json:"schoolAddress"`
	AcademicYear  string `json:"academicYear" validate:"notblank"`
}

type Student struct {
	ID        string `json:"id"`
	Photo     string `json:"photo"` // opaque: data URL or link
	Name      string `json:"name" validate:"notblank"`
	ClassName string `json:"className" validate:"notblank"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// CounselingLog records one guidance session.
// StudentName and ClassName are copies taken when the log was written; they are not kept in sync with Student.
type CounselingLog struct {
	ID           string           `json:"id"`
	Date         string           `json:"date" validate:"notblank"`
	StartTime    string           `json:"startTime"`
	EndTime      string           `json:"endTime"`
	AcademicYear string           `json:"academicYear"`
	StudentID    string           `json:"studentId"`
	StudentName  string           `json:"studentName"`
	ClassName    string           `json:"className"`
	Type         CounselingType   `json:"type" validate:"counseling_type"`
	Aspect       CounselingAspect `json:"aspect" validate:"counseling_aspect"`
	Result       string           `json:"result"`
	Status       CounselingStatus `json:"status" validate:"counseling_status"`
	FollowUp     string           `json:"followUp"`
	Notes        string           `json:"notes"`
}

// Clean trims the free-text identity fields.
func (s *Student) Clean() {
	s.ID = core.CleanString(s.ID)
	s.Name = core.CleanString(s.Name)
	s.ClassName = core.CleanString(s.ClassName)
}

func (l *CounselingLog) Clean() {
	l.ID = core.CleanString(l.ID)
	l.StudentID = core.CleanString(l.StudentID)
	l.AcademicYear = core.CleanString(l.AcademicYear)
}

// DefaultState returns the state of a fresh installation.
func DefaultState(defaults core.DefaultsConfig) State {
	return State{
		Students:     []Student{},
		Logs:         []CounselingLog{},
		AcademicYear: defaults.AcademicYear,
		TeacherData: TeacherData{
			Name:          defaults.TeacherName,
			NIP:           defaults.TeacherNIP,
			School:        defaults.TeacherSchool,
			SchoolAddress: defaults.TeacherSchoolAddress,
			AcademicYear:  defaults.AcademicYear,
		},
	}
}
