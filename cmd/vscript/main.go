package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vscript-lang/vscript"
	"github.com/vscript-lang/vscript/errors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	sessionID, err := uuid.NewV4()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := log.With().Str("session", sessionID.String()).Logger()

	switch len(args) {
	case 0:
		logger.Debug().Msg("starting repl")
		repl(logger)
		return 0
	case 1:
		logger.Debug().Str("path", args[0]).Msg("interpreting file")
		return runFile(logger, args[0])
	default:
		fmt.Fprintln(os.Stderr, "用法: vscript [path]")
		return 64
	}
}

func runFile(logger zerolog.Logger, path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法读取文件 %s：%s\n", path, err)
		return 70
	}

	interp := vscript.New()
	if _, err := interp.Run(context.Background(), string(source)); err != nil {
		logger.Error().Err(err).Msg("interpretation failed")
		errors.Print(os.Stderr, err)
		return 1
	}
	return 0
}

const exitSentinel = ".退出"

func repl(logger zerolog.Logger) {
	interp := vscript.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == exitSentinel {
			logger.Debug().Msg("repl exit sentinel received")
			return
		}
		if _, err := interp.Run(context.Background(), line); err != nil {
			logger.Error().Err(err).Str("line", line).Msg("repl line failed")
			errors.Print(os.Stderr, err)
		}
		fmt.Print("> ")
	}
}
