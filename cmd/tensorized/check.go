package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/born-ml/tensorized/factorized"
	"github.com/born-ml/tensorized/internal/config"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Compare indexing of a decomposition against its dense tensor",
		Long: `Check builds one decomposition and indexes it with random index
expressions from concurrent goroutines, comparing every result against the
same expression applied to the reconstructed dense tensor.`,
		Args: cobra.ExactArgs(0),
		RunE: CheckHandler,
	}
	decompositionFlags(checkCmd)
	checkCmd.Flags().Int("trials", 32, "Number of random index expressions")
	checkCmd.Flags().Float64("tol", 1e-9, "Largest accepted absolute difference")
	checkCmd.Flags().Bool("verbose", false, "Show every trial")
	return checkCmd
}

// trial is the outcome of one random index expression.
type trial struct {
	Index  string
	Result string
	Shape  string
	MaxErr float64
}

// CheckHandler runs the randomized comparison.
func CheckHandler(cmd *cobra.Command, _ []string) error {
	a, err := readDecompositionFlags(cmd)
	if err != nil {
		return err
	}
	n, err := cmd.Flags().GetInt("trials")
	if err != nil {
		return err
	}
	tol, err := cmd.Flags().GetFloat64("tol")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	f, err := build(a)
	if err != nil {
		return err
	}
	trials, err := runTrials(cmd.Context(), f, n, a.seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	worst := 0.0
	for _, t := range trials {
		worst = math.Max(worst, t.MaxErr)
		if t.MaxErr > tol {
			failed++
		}
	}
	if verbose || failed > 0 {
		writeTrials(out, trials, tol, verbose)
	}
	fmt.Fprintf(out, "%s %s: %d/%d trials within %g (max error %.3g)\n",
		f.Name(), f.TensorizedShape(), len(trials)-failed, len(trials), tol, worst)
	if failed > 0 {
		return fmt.Errorf("%d trials exceeded tolerance %g", failed, tol)
	}
	return nil
}

// runTrials indexes f with n random expressions concurrently. Each
// expression is derived from seed and the trial number only.
func runTrials(ctx context.Context, f factorized.Factorized, n int, seed uint64) ([]trial, error) {
	full := f.ToTensor()
	tshape := f.TensorizedShape()
	trials := make([]trial, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.NumWorkers())
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			idx := randomIndex(rng, tshape)
			expr := factorized.FormatIndex(idx)

			res, err := f.GetItem(idx...)
			if err != nil {
				return fmt.Errorf("trial %d [%s]: %w", i, expr, err)
			}
			want, err := factorized.IndexDense(full, tshape, idx...)
			if err != nil {
				return fmt.Errorf("trial %d [%s]: dense: %w", i, expr, err)
			}
			got := res.ToTensor()
			if !want.Shape().Equal(got.Shape()) {
				return fmt.Errorf("trial %d [%s]: shape %v, dense shape %v", i, expr, got.Shape(), want.Shape())
			}

			kind := "dense"
			if sub, ok := res.Factorized(); ok {
				kind = sub.Name()
			}
			trials[i] = trial{
				Index:  expr,
				Result: kind,
				Shape:  got.Shape().String(),
				MaxErr: floats.Distance(want.Data(), got.Data(), math.Inf(1)),
			}
			slog.Debug("check trial", "trial", i, "index", expr, "result", kind, "max_err", trials[i].MaxErr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trials, nil
}

// randomIndex draws a valid index expression for tshape. Trailing modes are
// left out at random.
func randomIndex(rng *rand.Rand, tshape factorized.Shape) []factorized.Index {
	n := rng.IntN(len(tshape) + 1)
	idx := make([]factorized.Index, n)
	for m := range idx {
		size := tshape[m].Size()
		switch rng.IntN(4) {
		case 0:
			idx[m] = factorized.Full{}
		case 1:
			// Negative points count from the end.
			idx[m] = factorized.Point(rng.IntN(2*size) - size)
		case 2:
			list := make(factorized.List, 1+rng.IntN(3))
			for i := range list {
				list[i] = rng.IntN(size)
			}
			idx[m] = list
		default:
			start := rng.IntN(size)
			stop := start + 1 + rng.IntN(size-start)
			idx[m] = factorized.Span(start, stop)
		}
	}
	return idx
}

func writeTrials(w io.Writer, trials []trial, tol float64, all bool) {
	var data [][]string
	for i, t := range trials {
		if !all && t.MaxErr <= tol {
			continue
		}
		data = append(data, []string{strconv.Itoa(i), "[" + t.Index + "]", t.Result, t.Shape, strconv.FormatFloat(t.MaxErr, 'g', 3, 64)})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"TRIAL", "INDEX", "RESULT", "SHAPE", "MAX ERROR"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
	fmt.Fprintln(w)
}
