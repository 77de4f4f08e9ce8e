package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cc-curl/application/curl"
	"cc-curl/application/curl/output"
	"cc-curl/transport/tcp"

	"github.com/benbjohnson/clock"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := curl.LoadEnv(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "cc-curl:", err)
		return curl.KindUsage.ExitCode()
	}

	app := &curl.App{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Env:         env,
		Dialer:      tcp.NewDialer(),
		Clock:       clock.New(),
		NewS3Client: output.NewS3Client,
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cc-curl:", err)
		if curl.KindOf(err) == curl.KindUsage {
			fmt.Fprint(os.Stderr, curl.Usage())
		}
		return curl.ExitCode(err)
	}

	return 0
}
