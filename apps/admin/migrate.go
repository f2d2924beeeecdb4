package main

import "context"

func (cli *commandLine) migrate(ctx context.Context, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}
	return migrateFunc(ctx, cli.db, command, args...)
}
