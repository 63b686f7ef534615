package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/gradebook"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/roster"
)

func makeExportCommand() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export grades as csv or xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exportFormat, err := gradebook.ParseExportFormat(format)
			if err != nil {
				return err
			}

			manager, err := openManager()
			if err != nil {
				return err
			}

			if len(output) == 0 || output == "-" {
				return manager.Export(cmd.OutOrStdout(), exportFormat)
			}
			return exportToFile(manager, exportFormat, output)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(gradebook.ExportCSV), "Export format: csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, stdout if empty")

	return cmd
}

func exportToFile(manager *gradebook.Manager, format gradebook.ExportFormat, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "Failed to create export file")
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "Failed to close export file")
		}
	}()

	w := bufio.NewWriter(file)
	if err := manager.Export(w, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "Failed to write export file")
	}

	log.Info("Exported gradebook", lf.Path(path), lf.Format(string(format)))
	return nil
}

func makeImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import ROSTER",
		Short: "Add every student listed in a YAML roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roster.Load(args[0])
			if err != nil {
				return err
			}

			manager, err := openManager()
			if err != nil {
				return err
			}
			added, err := manager.Import(r)
			if err != nil {
				return err
			}
			if err := saveManager(manager); err != nil {
				return err
			}

			return printAdded(cmd.OutOrStdout(), added)
		},
	}
}

func printAdded(out io.Writer, added []*models.Student) error {
	for _, student := range added {
		if _, err := fmt.Fprintf(out, "Student '%s' added with ID: %s\n", student.Name, student.ID); err != nil {
			return err
		}
	}
	return nil
}
