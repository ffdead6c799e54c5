package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baditaflorin/go_address_splitter/internal/core/split"
	"github.com/baditaflorin/go_address_splitter/pkg/address"
	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"
)

var (
	flagSlack     float64
	flagJSON      bool
	flagOptimized bool
	flagVerbose   bool
)

// output mirrors the HTTP response shape so the CLI and server agree.
type output struct {
	AddressLine1    string `json:"address_line_1"`
	AddressLine2    string `json:"address_line_2"`
	AddressLine3    string `json:"address_line_3"`
	OriginalAddress string `json:"original_address"`
}

var rootCmd = &cobra.Command{
	Use:   "addrsplit [address]",
	Short: "Split an address into three balanced lines",
	Long: `addrsplit reformats a free-form address into exactly three display
lines of roughly equal length, preserving every word.

The address is taken from the arguments (joined with spaces), or read from
stdin one address per line when no arguments are given.`,
	RunE: runSplit,
}

func init() {
	rootCmd.Flags().Float64Var(&flagSlack, "slack", split.DefaultSlackRatio,
		"line length tolerance before word rebalancing")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON instead of plain lines")
	rootCmd.Flags().BoolVar(&flagOptimized, "optimized", false, "use the pooled ASCII fast-path normalizer")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log computation steps to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	splitter, err := newSplitter()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return printResult(cmd.OutOrStdout(), splitter, strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !first && !flagJSON {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		first = false
		if err := printResult(cmd.OutOrStdout(), splitter, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func newSplitter() (*address.Splitter, error) {
	logOutput := io.Discard
	if flagVerbose {
		logOutput = os.Stderr
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output: logOutput,
	})
	if err != nil {
		return nil, err
	}

	opts := []address.SplitterOption{
		address.WithSlackRatio(flagSlack),
		address.WithLogger(logger),
	}
	if flagOptimized {
		opts = append(opts, address.WithOptimizedNormalizer())
	}

	return address.New(opts...)
}

func printResult(w io.Writer, splitter *address.Splitter, addr string) error {
	result := splitter.Split(addr)

	if flagJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(output{
			AddressLine1:    result.Line1,
			AddressLine2:    result.Line2,
			AddressLine3:    result.Line3,
			OriginalAddress: result.Original,
		})
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", result.Line1, result.Line2, result.Line3)
	return err
}
