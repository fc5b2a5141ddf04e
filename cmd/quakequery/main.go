// Command quakequery runs a single earthquake query against the USGS event
// service and prints the report to stdout.
//
// Usage:
//
//	go run ./cmd/quakequery -start 2024-05-01 -end 2024-05-10
//
// The endpoint and timeout follow the same environment variables as the
// service (USGS_BASE_URL, USGS_TIMEOUT); -timeout overrides the latter.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/quake-query-service/internal/adapter/usgs"
	"github.com/couchcryptid/quake-query-service/internal/config"
	"github.com/couchcryptid/quake-query-service/internal/observability"
	"github.com/couchcryptid/quake-query-service/internal/query"
)

func main() {
	start := flag.String("start", "", "start date, YYYY-MM-DD")
	end := flag.String("end", "", "end date, YYYY-MM-DD")
	timeout := flag.Duration("timeout", 0, "request timeout, 0 waits indefinitely")
	verbose := flag.Bool("v", false, "log query details to stderr")
	flag.Parse()

	if *start == "" || *end == "" {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(*start, *end, *timeout, *verbose))
}

func run(start, end string, timeout time.Duration, verbose bool) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 1
	}
	if timeout > 0 {
		cfg.USGS.Timeout = timeout
	}

	logOut := io.Discard
	if verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	metrics := observability.NewMetrics()
	client := usgs.NewClient(cfg.USGS.BaseURL, cfg.USGS.Timeout, metrics, logger)
	svc := query.NewService(client, logger, metrics)

	res, err := svc.Run(context.Background(), start, end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Print(res.Report)
	if verbose {
		fmt.Fprintf(os.Stderr, "%d events, %d skipped, %s\n", res.EventCount, res.Skipped, res.Elapsed)
	}
	return 0
}
