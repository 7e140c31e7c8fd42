package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/montrey/autojump/history"
	"github.com/montrey/autojump/importer"
	"github.com/montrey/autojump/logging"
	"github.com/montrey/autojump/query"
	"github.com/montrey/autojump/ui"
	"github.com/spf13/cobra"
)

type options struct {
	complete    bool
	purge       bool
	add         string
	increase    bool
	decrease    bool
	stat        bool
	version     bool
	interactive bool
	importFile  string
	importFrom  string
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "autojump [<dir>...]",
		Short: "Automatically jump to directory passed as an argument.",
		Long: `Automatically jump to directory passed as an argument.

  autojump [<dir>...]
  autojump --complete [<dir>...]
  autojump --purge
  autojump (-a <dir> | --add <dir>)
  autojump (-i | --increase) [<weight>]
  autojump (-d | --decrease) [<weight>]
  autojump (-s | --stat)
  autojump --interactive [<dir>...]
  autojump --import <file> [--from navi|z]`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := rootCmd.Flags()
	f.BoolVar(&opts.complete, "complete", false, "used for tab completion")
	f.BoolVar(&opts.purge, "purge", false, "remove non-existent paths from database")
	f.StringVarP(&opts.add, "add", "a", "", "add path")
	f.BoolVarP(&opts.increase, "increase", "i", false, "increase current directory weight, default 10")
	f.BoolVarP(&opts.decrease, "decrease", "d", false, "decrease current directory weight, default 15")
	f.BoolVarP(&opts.stat, "stat", "s", false, "show database entries and their key weights")
	f.BoolVarP(&opts.version, "version", "v", false, "show version information")
	f.BoolVar(&opts.interactive, "interactive", false, "pick among the best matches interactively")
	f.StringVar(&opts.importFile, "import", "", "merge the history of another jump tool from `file`")
	f.StringVar(&opts.importFrom, "from", string(importer.SourceNavi), "format of the --import file: navi or z")

	rootCmd.MarkFlagsMutuallyExclusive(
		"complete", "purge", "add", "increase", "decrease",
		"stat", "version", "interactive", "import",
	)
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	err := newRootCmd().Execute()
	logging.Shutdown()
	if err == nil {
		return
	}
	if !errors.Is(err, ui.ErrAborted) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

var errEmptyAdd = errors.New("--add requires a directory")

func run(cmd *cobra.Command, opts options, args []string) error {
	if err := checkSourced(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.version {
		fmt.Fprintln(out, versionString)
		return nil
	}

	env, err := setup()
	if err != nil {
		return err
	}

	switch {
	case opts.complete:
		lines, err := query.Complete(env.cfg, args, query.WorkingDir())
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
		return nil

	case cmd.Flags().Changed("add"):
		if opts.add == "" {
			return errEmptyAdd
		}
		_, err := env.updater().Add(opts.add)
		return err

	case opts.increase:
		w, err := parseWeight(args, history.DefaultIncrease)
		if err != nil {
			return err
		}
		e, err := env.updater().IncreaseCurrent(w)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, e)
		return nil

	case opts.decrease:
		w, err := parseWeight(args, history.DefaultDecrease)
		if err != nil {
			return err
		}
		e, err := env.updater().DecreaseCurrent(w)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, e)
		return nil

	case opts.purge:
		n, err := history.Purge(env.cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Purged %d entries.\n", n)
		return nil

	case opts.stat:
		s, err := history.Stat(env.cfg, query.WorkingDir())
		if err != nil {
			return err
		}
		return ui.WriteStat(out, s)

	case opts.importFile != "":
		return runImport(cmd, env, opts)

	case opts.interactive:
		candidates, err := query.Candidates(env.cfg, args, query.WorkingDir(), query.CompleteCount)
		if err != nil {
			return err
		}
		// The picker draws on stderr; stdout carries only the chosen path.
		path, err := ui.Pick(candidates, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
		return nil
	}

	path, err := query.Query(env.cfg, args, query.WorkingDir())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, path)
	return nil
}

func runImport(cmd *cobra.Command, env *environment, opts options) error {
	entries, err := importer.Read(importer.Source(opts.importFrom), opts.importFile)
	if err != nil {
		return err
	}
	res, err := importer.Import(env.cfg, entries, env.home, env.exclude)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new and %d merged entries (%d skipped).\n",
		res.Added, res.Merged, res.Skipped)
	return nil
}

// parseWeight reads the optional integer weight after -i/-d.
func parseWeight(args []string, def float64) (float64, error) {
	switch len(args) {
	case 0:
		return def, nil
	case 1:
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("invalid weight %q: must be an integer", args[0])
		}
		return float64(w), nil
	}
	return 0, fmt.Errorf("expected at most one weight, got %d arguments", len(args))
}
