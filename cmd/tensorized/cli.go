package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/born-ml/tensorized/factorized"
	"github.com/born-ml/tensorized/internal/config"
	"github.com/spf13/cobra"
)

func appendEnvDocs(cmd *cobra.Command, envs []config.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI builds the root command with every subcommand attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "tensorized",
		Short:         "Inspect and check factorized tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: config.LogLevel()})
			slog.SetDefault(slog.New(handler))
		},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	inspectCmd := newInspectCmd()
	checkCmd := newCheckCmd()

	envVars := config.AsMap()
	keys := make([]string, 0, len(envVars))
	for k := range envVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	envs := make([]config.EnvVar, 0, len(keys))
	for _, k := range keys {
		envs = append(envs, envVars[k])
	}
	for _, cmd := range []*cobra.Command{inspectCmd, checkCmd} {
		appendEnvDocs(cmd, envs)
	}

	rootCmd.AddCommand(
		inspectCmd,
		checkCmd,
		newEnvCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// decompositionFlags registers the flags shared by inspect and check.
func decompositionFlags(cmd *cobra.Command) {
	cmd.Flags().String("kind", "blocktt", "Decomposition: blocktt, cp or tucker")
	cmd.Flags().String("shape", "(2,3),4", "Tensorized shape, e.g. (2,3),(4,5)")
	cmd.Flags().String("rank", "same", "Rank: same, a fraction, an integer or a comma separated list")
	cmd.Flags().IntSlice("batched", nil, "Batched modes (blocktt only)")
	cmd.Flags().Uint64("seed", config.Seed(), "Seed for random factor initialisation")
}

type decompositionArgs struct {
	kind    string
	tshape  factorized.Shape
	spec    factorized.RankSpec
	batched []int
	seed    uint64
}

func readDecompositionFlags(cmd *cobra.Command) (decompositionArgs, error) {
	var a decompositionArgs
	var err error

	if a.kind, err = cmd.Flags().GetString("kind"); err != nil {
		return a, err
	}
	s, err := cmd.Flags().GetString("shape")
	if err != nil {
		return a, err
	}
	if a.tshape, err = factorized.ParseShape(s); err != nil {
		return a, err
	}
	r, err := cmd.Flags().GetString("rank")
	if err != nil {
		return a, err
	}
	if a.spec, err = factorized.ParseRank(r); err != nil {
		return a, err
	}
	if a.batched, err = cmd.Flags().GetIntSlice("batched"); err != nil {
		return a, err
	}
	if a.seed, err = cmd.Flags().GetUint64("seed"); err != nil {
		return a, err
	}
	return a, nil
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show configuration environment variables",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return envHandler(cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tensorized %s\n", version)
		},
	}
}
