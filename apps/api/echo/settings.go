package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core"
	"github.com/trezcool/guruwali/core/journal"
)

type settingsApi struct {
	svc      *journal.Service
	validate *validator.Validate
}

func registerSettingsAPI(g *echo.Group, svc *journal.Service, validate *validator.Validate) {
	api := settingsApi{
		svc:      svc,
		validate: validate,
	}

	sg := g.Group("/settings")
	sg.GET("", api.retrieve)
	sg.PUT("/teacher", api.updateTeacher)
	sg.PUT("/academic-year", api.updateAcademicYear)
	sg.PUT("/spreadsheet-url", api.updateSpreadsheetURL)
}

func (api *settingsApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.settings())
}

func (api *settingsApi) settings() Settings {
	return Settings{
		AcademicYear:   api.svc.AcademicYear(),
		TeacherData:    api.svc.TeacherData(),
		SpreadsheetURL: api.svc.SpreadsheetURL(),
	}
}

// updateTeacher replaces the whole profile; the session year follows the profile's.
func (api *settingsApi) updateTeacher(ctx echo.Context) error {
	var data journal.TeacherData
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherData")
	}
	data.Name = core.CleanString(data.Name)
	data.AcademicYear = core.CleanString(data.AcademicYear)
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	if err := api.svc.SetTeacherData(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "setting teacher data")
	}
	return ctx.JSON(http.StatusOK, api.settings())
}

func (api *settingsApi) updateAcademicYear(ctx echo.Context) error {
	var data AcademicYearRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AcademicYearRequest")
	}
	data.AcademicYear = core.CleanString(data.AcademicYear)
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	if err := api.svc.SetAcademicYear(ctx.Request().Context(), data.AcademicYear); err != nil {
		return errors.Wrap(err, "setting academic year")
	}
	return ctx.JSON(http.StatusOK, api.settings())
}

// updateSpreadsheetURL sets the remote endpoint. An empty URL turns the remote off.
func (api *settingsApi) updateSpreadsheetURL(ctx echo.Context) error {
	var data SpreadsheetURLRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SpreadsheetURLRequest")
	}
	data.SpreadsheetURL = core.CleanString(data.SpreadsheetURL)
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	if err := api.svc.SetSpreadsheetURL(ctx.Request().Context(), data.SpreadsheetURL); err != nil {
		return errors.Wrap(err, "setting spreadsheet url")
	}
	return ctx.JSON(http.StatusOK, api.settings())
}

type (
	Settings struct {
		AcademicYear   string              `json:"academicYear"`
		TeacherData    journal.TeacherData `json:"teacherData"`
		SpreadsheetURL string              `json:"spreadsheetUrl"`
	}

	AcademicYearRequest struct {
		AcademicYear string `json:"academicYear" validate:"notblank"`
	}

	SpreadsheetURLRequest struct {
		SpreadsheetURL string `json:"spreadsheetUrl" validate:"omitempty,url"`
	}
)
