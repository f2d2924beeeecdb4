package echoapi

import (
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/guruwali/core/journal"
)

var orderingParam = "ordering"

type OrderBy struct {
	Field     string
	Ascending bool
}

// Ordering is bound from `?ordering=field,-other`. Without it, lists keep their insertion order.
type Ordering struct {
	Orderings []OrderBy
}

func (ord *Ordering) Bind(ctx echo.Context) {
	data := ctx.QueryParams()
	if len(data) == 0 {
		return
	}
	val, ok := data[orderingParam]
	if !ok || len(val) == 0 || val[0] == "" {
		return
	}

	for _, field := range strings.Split(val[0], ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		ord.Orderings = append(ord.Orderings, OrderBy{Field: field, Ascending: !descending})
	}
}

// compare walks the orderings until two values differ. value returns "", false for unknown fields.
func (ord *Ordering) compare(value func(i int, field string) (string, bool), i, j int) bool {
	for _, o := range ord.Orderings {
		vi, ok := value(i, o.Field)
		if !ok {
			continue
		}
		vj, _ := value(j, o.Field)
		if vi == vj {
			continue
		}
		if o.Ascending {
			return vi < vj
		}
		return vi > vj
	}
	return false
}

// SortStudents orders by name and/or className.
func (ord *Ordering) SortStudents(students []journal.Student) {
	if len(ord.Orderings) == 0 {
		return
	}
	value := func(i int, field string) (string, bool) {
		switch field {
		case "name":
			return strings.ToLower(students[i].Name), true
		case "className":
			return strings.ToLower(students[i].ClassName), true
		}
		return "", false
	}
	sort.SliceStable(students, func(i, j int) bool { return ord.compare(value, i, j) })
}

// SortLogs orders by date, studentName and/or academicYear.
func (ord *Ordering) SortLogs(logs []journal.CounselingLog) {
	if len(ord.Orderings) == 0 {
		return
	}
	value := func(i int, field string) (string, bool) {
		switch field {
		case "date":
			return logs[i].Date + " " + logs[i].StartTime, true
		case "studentName":
			return strings.ToLower(logs[i].StudentName), true
		case "academicYear":
			return logs[i].AcademicYear, true
		}
		return "", false
	}
	sort.SliceStable(logs, func(i, j int) bool { return ord.compare(value, i, j) })
}
