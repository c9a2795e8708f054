package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sarmine/engine"
)

func newRulesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules DATASET WILD_TYPE",
		Short: "Show the rules, additive pairs and deductions of one wild-type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			ds, err := g.loadDataset(args[0])
			if err != nil {
				return err
			}
			eng, err := engine.New(cfg, engine.WithLogger(logger(cmd.ErrOrStderr(), cfg.LogLevel)))
			if err != nil {
				return err
			}
			res, err := eng.RunWildType(cmd.Context(), ds, args[1])
			if err != nil {
				return err
			}

			return printRules(cmd.OutOrStdout(), res)
		},
	}
}

func printRules(w io.Writer, res *engine.WildTypeResult) error {
	if res.Summary.Skipped {
		_, err := fmt.Fprintf(w, "%s skipped: %s\n", res.Summary.WildTypeID, res.Summary.SkipReason)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tAMP\tSUPPORT\tMUTANT\tDEGREE")
	for _, o := range res.Observations.All() {
		deg, _ := res.Graph.Degree(o.Rule.Key())
		fmt.Fprintf(tw, "%s\t%.4g\t%d\t%s\t%d\n", o.Rule.Key(), o.Amplification, o.Support, o.MutantID, deg)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d rules, %d components (largest %d)\n",
		res.Summary.Rules, res.Summary.Components, res.Summary.LargestComponent)

	if len(res.Additivity.Relations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(tw, "LEFT\tRIGHT\tUNION\tREL.ERR")
		for _, r := range res.Additivity.Relations {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%+.4f\n", r.Left.Key(), r.Right.Key(), r.Union.Key(), r.RelativeError)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if ds := res.Additivity.Deductions(); len(ds) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(tw, "DEDUCED\tAMP\tFROM\tPATHS")
		for _, d := range ds {
			c := d.Canonical()
			fmt.Fprintf(tw, "%s\t%.4g\t%s / %s\t%d\n", d.Rule.Key(), d.Amplification, c.Union.Key(), c.Observed.Key(), len(d.Paths))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}
