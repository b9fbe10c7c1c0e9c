package cmd

import (
	"context"
	"flag"

	"github.com/etnz/spend/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `spend topic [<topic>...]

  Shows documentation for the given topics, or the list of topics.
  Use '*' for every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

// PredictArgs completes topic names.
func (c *topicCmd) PredictArgs(Config) complete.Predictor {
	topics, _ := docs.GetAllTopics()
	return predict.Set(topics)
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		printMarkdown(docs.GetIndex())
		return subcommands.ExitSuccess
	}

	doc, err := docs.GetTopics(f.Args()...)
	if err != nil {
		return fail("reading doc: %v", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
