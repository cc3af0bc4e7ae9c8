package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Neev4n/kernel-shell/pkg/heap"
	"github.com/Neev4n/kernel-shell/pkg/shell"
	"github.com/Neev4n/kernel-shell/pkg/textutil"
)

// Logger, built in PersistentPreRunE unless already set.
var logger *zap.Logger

type options struct {
	heapBase uint64
	heapSize int
	echo     bool
	noBanner bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "kshell",
		Short: "Minimal interactive shell with a bump-allocated heap",
		Long: `kshell reads commands line by line from its console (stdin/stdout)
and answers on the same console.

The heap is a single region of --heap-size bytes reported at --heap-base.
It is bump allocated and never reclaimed; addnode fails once it is full.

Type 'help' at the prompt for the command list.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&opts.heapBase, "heap-base", 0x10000, "address reported for the start of the heap")
	flags.IntVar(&opts.heapSize, "heap-size", 0x10000, "heap size in bytes")
	flags.BoolVar(&opts.echo, "echo", false, "echo received characters back (raw serial lines)")
	flags.BoolVar(&opts.noBanner, "no-banner", false, "skip the startup banner")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if err := heap.CheckSize(opts.heapSize); err != nil {
		return fmt.Errorf("--heap-size: %w", err)
	}

	console := shell.NewStreamConsole(cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithEcho(opts.echo))
	region := heap.New(uintptr(opts.heapBase), opts.heapSize)

	logger.Info("heap initialized",
		zap.String("base", "0x"+strconv.FormatUint(opts.heapBase, 16)),
		zap.Int("size", opts.heapSize))

	if !opts.noBanner {
		printBanner(console, region)
	}

	s := shell.New(console, region, shell.WithLogger(logger))
	runErr := s.Run()

	if err := console.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("console: %w", err)
	}

	return runErr
}

func printBanner(w textutil.CharWriter, region *heap.Region) {
	textutil.Format(w, "Hello\n")
	textutil.Format(w, "Initializing Memory Module\n")
	textutil.Format(w, "Heap: %d bytes at 0x%s\n",
		textutil.Int(region.Size()),
		textutil.Str(strconv.FormatUint(uint64(region.Base()), 16)))
	textutil.Format(w, "CMPS240 Project Summer 2024!\n")
	textutil.Format(w, "Welcome to CMPS 240 Custom Kernel!\n")
}

func main() {

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}

}
