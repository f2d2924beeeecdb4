package echoapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core/journal"
)

const backupFormField = "file"

type backupApi struct {
	svc *journal.Service
}

func registerBackupAPI(g *echo.Group, svc *journal.Service) {
	api := backupApi{svc: svc}

	bg := g.Group("/backup")
	bg.GET("", api.export)
	bg.POST("", api.restore)
}

// export downloads the whole journal as a backup file.
func (api *backupApi) export(ctx echo.Context) error {
	b := api.svc.Export()
	data, err := b.Encode()
	if err != nil {
		return errors.Wrap(err, "encoding backup")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+b.Filename()+`"`)
	if err = ctx.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data); err != nil {
		return errors.Wrap(err, "sending backup")
	}
	api.svc.Exported()
	return nil
}

// restore merges an uploaded backup, sent either as the raw body or as the `file` field of a multipart form.
func (api *backupApi) restore(ctx echo.Context) error {
	data, err := readBackup(ctx)
	if err != nil {
		return err
	}
	res, err := api.svc.Import(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "importing backup")
	}
	return ctx.JSON(http.StatusOK, res)
}

func readBackup(ctx echo.Context) ([]byte, error) {
	req := ctx.Request()
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		data, err := io.ReadAll(req.Body)
		return data, errors.Wrap(err, "reading body")
	}

	fh, err := ctx.FormFile(backupFormField)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing backup file").SetInternal(err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening backup file")
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	return data, errors.Wrap(err, "reading backup file")
}
