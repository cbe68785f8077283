package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ptrager/loupe/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	logPath := flag.String("log", "", "log file to view (overrides config)")
	pollMs := flag.Int("poll", 0, "poll interval in milliseconds (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, LogPath: *logPath}
	if poll := *pollMs; poll > 0 {
		opts.PollEvery = time.Duration(poll) * time.Millisecond
	}
	if flag.NArg() > 0 && opts.LogPath == "" {
		opts.LogPath = flag.Arg(0)
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "loupe: %v\n", err)
		return 1
	}
	return 0
}
