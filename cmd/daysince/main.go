package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xRadioAc7iv/daysince/daysince"
	"github.com/0xRadioAc7iv/daysince/internal/cli"
	"github.com/0xRadioAc7iv/daysince/internal/protocol"
)

const exitFatal = 2

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cmd := cli.NewRootCommand(daysince.WithLogger(logger))

	err := cli.Execute(cmd, os.Args[1:])
	if err == nil {
		return
	}

	// Running with no arguments is the one case that exits quietly.
	var usageErr *protocol.UsageError
	if errors.As(err, &usageErr) && usageErr.NoArgs {
		fmt.Fprintln(os.Stderr, usageErr.Error())
		os.Exit(1)
	}

	logger.Error("fatal", "err", err)
	os.Exit(exitFatal)
}
