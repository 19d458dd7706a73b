package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/validator"
)

func kindOf(sample bool) domain.InputKind {
	if sample {
		return domain.SampleInput
	}
	return domain.RealInput
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, s := range args {
		d, err := strconv.Atoi(s)
		if err != nil || d < 1 || d > 25 {
			return nil, fmt.Errorf("invalid day %q", s)
		}
		days = append(days, d)
	}
	return days, nil
}

func printAnswer(w io.Writer, a domain.Answer) {
	fmt.Fprintf(w, "Day %d\n  Part 1: %d\n  Part 2: %d\n", a.Day, a.Part1, a.Part2)
}

func (a *app) solveCmd() *cobra.Command {
	var (
		sample bool
		file   string
	)
	cmd := &cobra.Command{
		Use:   "solve <day>...",
		Short: "Solve the given days",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if file != "" && len(days) != 1 {
				return errors.New("--file needs exactly one day")
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			for _, d := range days {
				var ans domain.Answer
				if file != "" {
					input, err := os.ReadFile(file)
					if err != nil {
						return err
					}
					ans, _, err = a.uc.SolveInput(ctx, d, input)
					if err != nil {
						return err
					}
				} else if ans, _, err = a.uc.Solve(ctx, d, kindOf(sample)); err != nil {
					return err
				}
				printAnswer(cmd.OutOrStdout(), ans)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "use the sample input (test_dayN.txt)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from this file instead")
	return cmd
}

func (a *app) allCmd() *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day that has an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			inv, err := a.uc.Inventory(ctx)
			if err != nil {
				return err
			}
			for _, m := range inv {
				if (sample && !m.Sample) || (!sample && !m.Real) {
					continue
				}
				ans, _, err := a.uc.Solve(ctx, m.Day, kindOf(sample))
				if err != nil {
					return err
				}
				printAnswer(cmd.OutOrStdout(), ans)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "use the sample inputs")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "check [day...]",
		Short: "Compare answers with the answer book",
		Long:  "Solves each day and compares both parts with the YAML answer book given by --answers. With no days, every day recorded in the book is checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.AnswersPath == "" {
				return errors.New("check needs --answers or AOC_ANSWERS")
			}
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				days = a.book.Recorded()
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			w := cmd.OutOrStdout()
			failed := 0
			for _, d := range days {
				_, ok, bad, err := a.uc.Check(ctx, d, kindOf(sample))
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintf(w, "Day %d ok\n", d)
					continue
				}
				failed++
				for _, m := range bad {
					fmt.Fprintf(w, "Day %d part %d: got %d, want %d\n", m.Day, m.Part, m.Got, m.Want)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d days do not match", failed, len(days))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "check against the sample inputs")
	return cmd
}

func (a *app) recordCmd() *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "record [day...]",
		Short: "Print an answer book for the given days as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				days = a.uc.Days()
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			book := validator.New()
			for _, d := range days {
				ans, _, err := a.uc.Solve(ctx, d, kindOf(sample))
				if err != nil {
					return err
				}
				book.Record(ans)
			}
			return book.Encode(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "use the sample inputs")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List days and their available inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			inv, err := a.uc.Inventory(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, m := range inv {
				fmt.Fprintf(w, "day %d\treal=%t\tsample=%t\n", m.Day, m.Real, m.Sample)
			}
			return nil
		},
	}
}
