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

type studentApi struct {
	svc      *journal.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, svc *journal.Service, validate *validator.Validate) {
	api := studentApi{
		svc:      svc,
		validate: validate,
	}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)

	// detail endpoints
	dg := sg.Group("/:id", studentMiddleware(svc))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	q := new(SearchQuery)
	if err := ctx.Bind(q); err != nil {
		return ctx.JSON(http.StatusOK, []journal.Student{})
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	students := api.svc.Students(q.Search)
	ordering.SortStudents(students)
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var s journal.Student
	if err := ctx.Bind(&s); err != nil {
		return errors.Wrap(err, "binding to Student")
	}
	if err := validateStudent(api.validate, &s); err != nil {
		return err
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	} else if _, err := api.svc.Student(s.ID); err == nil {
		return core.NewValidationError(nil, core.FieldError{Field: "id", Error: "a student with this id already exists"})
	}
	if err := api.svc.AddStudent(ctx.Request().Context(), s); err != nil {
		return errors.Wrap(err, "adding student")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	s, err := contextStudent(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) update(ctx echo.Context) error {
	orig, err := contextStudent(ctx)
	if err != nil {
		return err
	}

	var s journal.Student
	if err = ctx.Bind(&s); err != nil {
		return errors.Wrap(err, "binding to Student")
	}
	s.ID = orig.ID // the id in the path wins
	if err = validateStudent(api.validate, &s); err != nil {
		return err
	}

	if err = api.svc.UpdateStudent(ctx.Request().Context(), s); err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	s, err := contextStudent(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.DeleteStudent(ctx.Request().Context(), s.ID); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type SearchQuery struct {
	Search string `query:"search"`
}

func validateStudent(validate *validator.Validate, s *journal.Student) error {
	s.Clean()
	return validate.Struct(s)
}
