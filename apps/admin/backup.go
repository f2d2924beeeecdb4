package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// export writes the backup document to path, or to the standard output when path is "-".
func (cli *commandLine) export(path string) error {
	b := cli.svc.Export()
	data, err := b.Encode()
	if err != nil {
		return err
	}

	if path == "-" {
		if _, err = cli.out.Write(append(data, '\n')); err != nil {
			return errors.Wrap(err, "writing backup")
		}
		cli.svc.Exported()
		return nil
	}
	if path == "" {
		path = b.Filename()
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "writing backup")
	}
	cli.svc.Exported()
	_, _ = fmt.Fprintf(cli.out, "backup written to %s\n", path)
	return nil
}

func (cli *commandLine) restore(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading backup")
	}

	res, err := cli.svc.Import(ctx, data)
	if err != nil {
		return err
	}
	if len(res.Applied) == 0 {
		_, _ = fmt.Fprintln(cli.out, "nothing to restore")
		return nil
	}
	_, _ = fmt.Fprintf(cli.out, "restored: %s\n", strings.Join(res.Applied, ", "))
	return nil
}
