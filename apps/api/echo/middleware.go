package echoapi

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core/journal"
)

var (
	objectKey = "object"

	errObjNotFoundInCtx = errors.New("object not found in echo.Context")
)

func requestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// studentMiddleware loads the student named by the `:id` path param into the context.
func studentMiddleware(svc *journal.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			s, err := svc.Student(ctx.Param("id"))
			if err != nil {
				if errors.Cause(err) == journal.ErrStudentNotFound {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding student by ID")
			}
			ctx.Set(objectKey, s)
			return next(ctx)
		}
	}
}

func contextStudent(ctx echo.Context) (journal.Student, error) {
	s, ok := ctx.Get(objectKey).(journal.Student)
	if !ok {
		return journal.Student{}, errors.Wrap(errObjNotFoundInCtx, "retrieving student from context")
	}
	return s, nil
}
