package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core"
	"github.com/trezcool/guruwali/core/journal"
)

type logApi struct {
	svc      *journal.Service
	validate *validator.Validate
}

func registerLogAPI(g *echo.Group, svc *journal.Service, validate *validator.Validate) {
	api := logApi{
		svc:      svc,
		validate: validate,
	}

	lg := g.Group("/logs")
	lg.GET("", api.query)
	lg.POST("", api.create)
}

func (api *logApi) query(ctx echo.Context) error {
	q := new(SearchQuery)
	if err := ctx.Bind(q); err != nil {
		return ctx.JSON(http.StatusOK, []journal.CounselingLog{})
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	logs := api.svc.Logs(q.Search)
	ordering.SortLogs(logs)
	return ctx.JSON(http.StatusOK, logs)
}

// create writes a log. A given id is kept; a blank one is generated.
// Missing student name or class are copied from the live student, which must then exist.
// The session year is used when none is given.
func (api *logApi) create(ctx echo.Context) error {
	var data NewLogRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLogRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	l := data.Log()
	if l.StudentName == "" || l.ClassName == "" {
		s, err := api.svc.Student(l.StudentID)
		if err != nil {
			if errors.Cause(err) == journal.ErrStudentNotFound {
				return core.NewValidationError(nil, core.FieldError{Field: "studentId", Error: "unknown student"})
			}
			return errors.Wrap(err, "finding student by ID")
		}
		if l.StudentName == "" {
			l.StudentName = s.Name
		}
		if l.ClassName == "" {
			l.ClassName = s.ClassName
		}
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.AcademicYear == "" {
		l.AcademicYear = api.svc.AcademicYear()
	}
	if err := api.svc.AddLog(ctx.Request().Context(), l); err != nil {
		return errors.Wrap(err, "adding log")
	}
	return ctx.JSON(http.StatusCreated, l)
}

type NewLogRequest struct {
	ID           string                   `json:"id"`
	Date         string                   `json:"date" validate:"notblank"`
	StartTime    string                   `json:"startTime"`
	EndTime      string                   `json:"endTime"`
	AcademicYear string                   `json:"academicYear"`
	StudentID    string                   `json:"studentId" validate:"notblank"`
	StudentName  string                   `json:"studentName"`
	ClassName    string                   `json:"className"`
	Type         journal.CounselingType   `json:"type" validate:"counseling_type"`
	Aspect       journal.CounselingAspect `json:"aspect" validate:"counseling_aspect"`
	Result       string                   `json:"result"`
	Status       journal.CounselingStatus `json:"status" validate:"counseling_status"`
	FollowUp     string                   `json:"followUp"`
	Notes        string                   `json:"notes"`
}

func (lr *NewLogRequest) Validate(validate *validator.Validate) error {
	lr.Date = core.CleanString(lr.Date)
	lr.StudentID = core.CleanString(lr.StudentID)
	lr.AcademicYear = core.CleanString(lr.AcademicYear)
	return validate.Struct(lr)
}

func (lr NewLogRequest) Log() journal.CounselingLog {
	l := journal.CounselingLog{
		ID:           lr.ID,
		Date:         lr.Date,
		StartTime:    lr.StartTime,
		EndTime:      lr.EndTime,
		AcademicYear: lr.AcademicYear,
		StudentID:    lr.StudentID,
		StudentName:  core.CleanString(lr.StudentName),
		ClassName:    core.CleanString(lr.ClassName),
		Type:         lr.Type,
		Aspect:       lr.Aspect,
		Result:       lr.Result,
		Status:       lr.Status,
		FollowUp:     lr.FollowUp,
		Notes:        lr.Notes,
	}
	l.Clean()
	return l
}
