package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/console"
	"github.com/bigredeye/gradebook/internal/gradebook"
	"github.com/bigredeye/gradebook/internal/scorer"
)

func makeAddCommand() *cobra.Command {
	var name string
	var pairs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseScores(pairs)
			if err != nil {
				return err
			}

			manager, err := openManager()
			if err != nil {
				return err
			}
			student, err := manager.AddStudent(name, scores)
			if err != nil {
				return err
			}
			if err := saveManager(manager); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Student '%s' added with ID: %s\n", student.Name, student.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Student name")
	cmd.Flags().StringArrayVar(&pairs, "score", nil, "Subject score as Subject=Score, repeatable")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func makeUpdateCommand() *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Add or overwrite scores of a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseScores(pairs)
			if err != nil {
				return err
			}

			manager, err := openManager()
			if err != nil {
				return err
			}
			if err := manager.UpdateScores(args[0], scores); err != nil {
				return err
			}
			if err := saveManager(manager); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Scores updated.")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&pairs, "score", nil, "Subject score as Subject=Score, repeatable")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func makeReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report ID",
		Short: "Show report card of a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}
			report, err := manager.ViewReport(args[0])
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout())
		},
	}
}

func makeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}
			if err := manager.DeleteStudent(args[0]); err != nil {
				return err
			}
			if err := saveManager(manager); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Student deleted.")
			return nil
		},
	}
}

func makeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List students ranked by average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}
			return console.WriteStandings(cmd.OutOrStdout(), scorer.CalcStandings(manager.Students()))
		},
	}
}

func makeSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Find students by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}
			found := manager.SearchByName(args[0])
			if len(found) == 0 {
				return errors.Wrapf(gradebook.ErrNotFound, "no name matches %q", args[0])
			}
			return console.WriteStudents(cmd.OutOrStdout(), found)
		},
	}
}
