package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sghaida/pen/catalog"
	"github.com/sghaida/pen/internal/config"
	"github.com/sghaida/pen/pen"
)

type options struct {
	configPath string
	logLevel   string
	pens       []string
}

// run executes the CLI and returns a process exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(catalog.Default(), stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		log := newLogger(stderr, "error")
		log.Error().Err(err).Msg("pen failed")
		return 1
	}
	return 0
}

func newRootCmd(cat *catalog.Catalog, stdout, stderr io.Writer) *cobra.Command {
	var o options

	root := &cobra.Command{
		Use:           "pen",
		Short:         "Draw pens composed from a color and a size",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			return draw(cat, cfg, stdout, stderr)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&o.configPath, "config", "", "YAML file listing pens to draw (overrides PEN_CONFIG)")
	root.Flags().StringVar(&o.logLevel, "log-level", "", "log level: trace|debug|info|warn|error|disabled")
	root.Flags().StringArrayVarP(&o.pens, "pen", "p", nil, "pen to draw as size:color; repeatable, replaces the configured list")

	root.AddCommand(listCmd(cat))
	return root
}

// resolve layers flags over config.Resolve.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if len(o.pens) > 0 {
		cfg.Pens = make([]catalog.Spec, 0, len(o.pens))
		for _, raw := range o.pens {
			spec, err := catalog.ParseSpec(raw)
			if err != nil {
				return config.Config{}, err
			}
			cfg.Pens = append(cfg.Pens, spec)
		}
	}
	return cfg, cfg.Validate()
}

// draw resolves every pen before drawing any, so an unknown key produces no
// partial output.
func draw(cat *catalog.Catalog, cfg config.Config, stdout, stderr io.Writer) error {
	log := newLogger(stderr, cfg.LogLevel)

	pens, err := cat.Pens(cfg.Pens, pen.WithOutput(stdout))
	if err != nil {
		return err
	}
	log.Debug().Int("count", len(pens)).Msg("pens resolved")

	for i, p := range pens {
		log.Debug().Str("pen", cfg.Pens[i].String()).Msg("draw")
		p.Draw()
	}
	log.Info().Int("drawn", len(pens)).Msg("done")
	return nil
}

func listCmd(cat *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered color and size keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, "colors:", strings.Join(cat.ColorKeys(), ", ")); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out, "sizes: ", strings.Join(cat.SizeKeys(), ", "))
			return err
		},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
