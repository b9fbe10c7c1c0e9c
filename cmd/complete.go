package cmd

import (
	"errors"
	"flag"
	"io"
	"io/fs"

	"github.com/etnz/spend"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argsPredictor is implemented by commands completing their positional arguments.
type argsPredictor interface {
	PredictArgs(cfg Config) complete.Predictor
}

// predictCategories completes the categories of the ledger in dbFile.
//
// A missing ledger completes the default categories without a warning,
// an unreadable one completes nothing.
func predictCategories(dbFile string) complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		s := spend.NewStore()
		err := spend.LoadSnapshot(dbFile, s)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return s.Categories()
	})
}

// flagPredictors completes flag values by flag name, other flags take any value.
func flagPredictors(cfg Config) map[string]complete.Predictor {
	return map[string]complete.Predictor{
		"c":    predictCategories(cfg.DBFile),
		"i":    predict.Files("*"),
		"o":    predict.Files("*"),
		"from": predict.Something,
		"to":   predict.Something,
	}
}

// Completion returns the shell completion of every command registered in c.
// Categories are read from the ledger configured in cfg.
//
// Call Complete on the result before parsing flags: when the shell
// requests a completion it prints the candidates and exits.
func Completion(c *subcommands.Commander, cfg Config) *complete.Command {
	predictors := flagPredictors(cfg)
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(c.VisitAll, predictors),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		f.SetOutput(io.Discard)
		cmd.SetFlags(f)

		sub := &complete.Command{Flags: predictFlags(f.VisitAll, predictors)}
		if p, ok := cmd.(argsPredictor); ok {
			sub.Args = p.PredictArgs(cfg)
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// predictFlags returns the predictors of the flags visited by visit.
func predictFlags(visit func(func(*flag.Flag)), predictors map[string]complete.Predictor) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	visit(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		if p, ok := predictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
