package main

import (
	"github.com/spf13/cobra"

	"krishisahay/internal/config"
	"krishisahay/internal/knowledge"
)

type rootOptions struct {
	knowledgeFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "krishi",
		Short: "KrishiSahay - answers for crops, pests and fertilizers",
		Long: `krishi answers farming questions with the same engine the web service uses.
No database or network access is needed.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.knowledgeFile, "knowledge-file", "", "YAML file of fact overrides")

	cmd.AddCommand(newAskCmd(opts), newKBCmd(opts))
	return cmd
}

func (o *rootOptions) knowledge() (*knowledge.Base, error) {
	return config.LoadKnowledge(o.knowledgeFile)
}
