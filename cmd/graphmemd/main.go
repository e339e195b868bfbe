package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recallgate/graphmem/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "graphmemd",
		Short: "Graphmem daemon",
		Long:  "Graphmem daemon for running the temporal knowledge-graph API gateway",
	}

	rootCmd.AddCommand(cli.ServeCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
