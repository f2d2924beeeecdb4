package echoapi

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core/journal"
	reportsvc "github.com/trezcool/guruwali/services/report"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportApi struct {
	svc *journal.Service
}

func registerReportAPI(g *echo.Group, svc *journal.Service) {
	api := reportApi{svc: svc}

	rg := g.Group("/reports")
	rg.GET("/summary", api.summary)
	rg.GET("/lpj", api.lpj)
}

type ReportQuery struct {
	AcademicYear string `query:"academic_year"`
}

func (api *reportApi) year(ctx echo.Context) string {
	q := new(ReportQuery)
	if err := ctx.Bind(q); err != nil || q.AcademicYear == "" {
		return api.svc.AcademicYear()
	}
	return q.AcademicYear
}

func (api *reportApi) summary(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Summary(api.year(ctx)))
}

func (api *reportApi) lpj(ctx echo.Context) error {
	year := api.year(ctx)

	var buf bytes.Buffer
	if err := reportsvc.WriteLPJ(&buf, api.svc.Snapshot(), year); err != nil {
		return errors.Wrap(err, "writing LPJ")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+reportsvc.Filename(year)+`"`)
	return ctx.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
}
