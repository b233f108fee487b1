// Command stockinfo fetches daily deal records for a Taiwan-listed security
// from the FinMind data API and writes them to a CSV file.
//
// Usage:
//
//	stockinfo <stock_id> <start_date> [end_date] [--output FILENAME]
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariel055132/stockinfo/internal/bootstrap"
	"github.com/ariel055132/stockinfo/internal/cli"
	"github.com/ariel055132/stockinfo/internal/domain/stock"
	"github.com/ariel055132/stockinfo/internal/infrastructure/csvfile"
	"github.com/ariel055132/stockinfo/pkg/config"
	"github.com/ariel055132/stockinfo/pkg/errors"
	"github.com/ariel055132/stockinfo/pkg/logger"
	"github.com/ariel055132/stockinfo/pkg/util"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	args, err := cli.Parse(cfg.App.Name, os.Args[1:], cfg.App.DefaultOutput)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		lg.Sync()
		os.Exit(2)
	}

	// One request id per run; an interrupt cancels the in-flight request.
	ctx := util.ContextWithRequestID(context.Background(), util.NewRequestID())
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Config: cfg,
		Logger: lg,
	})

	if code := run(ctx, lg, b.Usecase, b.Writer, args); code != 0 {
		lg.Sync()
		os.Exit(code)
	}
}

// run executes the fetch -> write pipeline and returns the process exit
// code. An upstream envelope failure degrades to an empty table, matching
// the behavior of the tool this replaces; transport, decode, and write
// failures abort.
func run(ctx context.Context, lg logger.Interface, uc stock.Usecase, writer csvfile.Writer, args *cli.Args) int {
	records, err := uc.GetStockDealInfo(ctx, args.StockID, args.StartDate, args.EndDate)
	if err != nil {
		if !errors.CodeEquals(err, errors.FinmindAPIStatusError) {
			lg.ErrorContext(ctx, err)
			return 1
		}
		lg.WarnContext(ctx, "upstream reported failure, writing empty output",
			logger.NewField("stock_id", args.StockID),
		)
		records = nil
	}

	if err := writer.Save(ctx, records, args.Output); err != nil {
		lg.ErrorContext(ctx, err)
		return 1
	}
	return 0
}
