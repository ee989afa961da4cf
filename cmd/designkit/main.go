// SPDX-License-Identifier: MIT

// Command designkit generates and summarizes experiment design matrices.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fjordtools/designkit/design"
	"github.com/fjordtools/designkit/designio"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "designkit",
		Short: "Experiment design matrices for simulation ensembles",
		Long: `designkit turns a declarative YAML configuration of parameters,
distributions, correlations and seeding rules into a reproducible design
matrix: one CSV row per realization, ready for ensemble tooling.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
		newSummarizeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("designkit version %s\n", version)
		},
	}
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <config.yaml>",
		Short: "Generate a design matrix from a YAML configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd)

			cfg, err := designio.LoadConfigFile(args[0])
			if err != nil {
				return err
			}
			log.Debug("configuration loaded",
				"designtype", string(cfg.DesignType),
				"sensitivities", len(cfg.Sensitivities))

			res, err := design.Generate(cfg)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			log.Info("design generated",
				"rows", len(res.Rows),
				"columns", len(res.Columns))

			out := os.Stdout
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				f, cerr := os.Create(path)
				if cerr != nil {
					return fmt.Errorf("create output: %w", cerr)
				}
				defer f.Close()
				out = f
			}
			return designio.WriteCSV(out, res)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the CSV here instead of stdout")
	return cmd
}

func newSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <design.csv>",
		Short: "Summarize an existing design matrix per sensitivity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open table: %w", err)
			}
			defer f.Close()

			res, err := designio.ReadTable(f)
			if err != nil {
				return err
			}
			summary, err := design.Summarize(res)
			if err != nil {
				return err
			}

			for _, row := range summary {
				fmt.Printf("%3d  %-24s %-7s", row.SensNo, row.SensName, row.SensType)
				for _, c := range row.Cases {
					fmt.Printf("  %s[%d..%d]", c.Name, c.StartReal, c.EndReal)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
