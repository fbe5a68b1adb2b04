package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/tensorized/factorized"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the factors of a decomposition and optionally index it",
		Example: `  tensorized inspect --shape "(2,3),4" --rank 3
  tensorized inspect --kind cp --shape "(2,3),(4,5)" --rank 4 --index "0, 1:3"`,
		Args: cobra.ExactArgs(0),
		RunE: InspectHandler,
	}
	decompositionFlags(inspectCmd)
	inspectCmd.Flags().String("index", "", "Index expression, e.g. \"0, :, [1,2]\"")
	return inspectCmd
}

// InspectHandler prints the factor table of a decomposition and, with
// --index, what indexing it returns.
func InspectHandler(cmd *cobra.Command, _ []string) error {
	a, err := readDecompositionFlags(cmd)
	if err != nil {
		return err
	}
	f, err := build(a)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s  shape %v  rank %s\n\n", f.Name(), f.TensorizedShape(), f.Shape(), rankOf(f))
	writeFactors(out, f)

	expr, err := cmd.Flags().GetString("index")
	if err != nil || expr == "" {
		return err
	}
	idx, err := factorized.ParseIndex(expr)
	if err != nil {
		return err
	}
	res, err := f.GetItem(idx...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n[%s] -> ", expr)
	if sub, ok := res.Factorized(); ok {
		fmt.Fprintf(out, "%s %s  shape %v  rank %s\n\n", sub.Name(), sub.TensorizedShape(), sub.Shape(), rankOf(sub))
		writeFactors(out, sub)
		return nil
	}
	if res.IsScalar() {
		v, _ := res.Scalar()
		fmt.Fprintf(out, "scalar %g\n", v)
		return nil
	}
	fmt.Fprintf(out, "dense shape %v\n", res.Shape())
	return nil
}

func writeFactors(w io.Writer, f factorized.Factorized) {
	var data [][]string
	total := 0
	for i, fac := range f.Factors() {
		total += fac.NumElements()
		data = append(data, []string{strconv.Itoa(i), fac.Shape().String(), strconv.Itoa(fac.NumElements())})
	}
	if cp, ok := f.(*factorized.CP); ok {
		total += cp.Weights().NumElements()
		data = append(data, []string{"weights", cp.Weights().Shape().String(), strconv.Itoa(cp.Weights().NumElements())})
	}
	if tk, ok := f.(*factorized.Tucker); ok {
		total += tk.Core().NumElements()
		data = append(data, []string{"core", tk.Core().Shape().String(), strconv.Itoa(tk.Core().NumElements())})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"FACTOR", "SHAPE", "PARAMS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	full := f.Shape().NumElements()
	fmt.Fprintf(w, "\n%d parameters for %d entries (%.3gx)\n", total, full, float64(total)/float64(full))
}
