package main

import (
	"fmt"
	"io"
	"outcomes-service/internal/app/delivery/cli"
	"outcomes-service/internal/app/services/core/instruments"
	"outcomes-service/internal/pkg/constvars"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd(log *logrus.Logger, in io.Reader, out io.Writer) *cobra.Command {
	catalog := instruments.DefaultCatalog()

	rootCmd := &cobra.Command{
		Use:           "outcomes",
		Short:         "Orthopedic outcome questionnaires on the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	rootCmd.AddCommand(
		newJointsCmd(catalog),
		newInstrumentsCmd(catalog),
		newCatalogCmd(catalog),
		newAssessCmd(log, catalog),
	)
	return rootCmd
}

func newJointsCmd(catalog *instruments.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "joints",
		Short: "List the joint regions and how many instruments each offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "KEY\tNAME\tINSTRUMENTS")
			for _, joint := range catalog.ListJoints() {
				fmt.Fprintf(writer, "%s\t%s\t%d\n", joint.Key, joint.Name, len(joint.Instruments))
			}
			return writer.Flush()
		},
	}
}

func newInstrumentsCmd(catalog *instruments.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "instruments <joint>",
		Short: "List the instruments available for a joint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := catalog.GetInstruments(args[0])
			if err != nil {
				return err
			}
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tQUESTIONS\tDESCRIPTION")
			for _, instrument := range list {
				fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", instrument.ID, instrument.ShortName, instrument.QuestionCount(), instrument.Description)
			}
			return writer.Flush()
		},
	}
}

func newCatalogCmd(catalog *instruments.Catalog) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with the instrument catalog",
	}

	var format string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every joint, instrument, question and option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return instruments.ExportCatalog(catalog, format, cmd.OutOrStdout())
		},
	}
	exportCmd.Flags().StringVar(&format, "format", constvars.ExportFormatJSON, "output format: json or yaml")

	catalogCmd.AddCommand(exportCmd)
	return catalogCmd
}

func newAssessCmd(log *logrus.Logger, catalog *instruments.Catalog) *cobra.Command {
	var jointKey, instrumentID string

	assessCmd := &cobra.Command{
		Use:   "assess",
		Short: "Answer an instrument interactively",
		Long: `Walks through one instrument question by question.

At each question type the value of an option, or
  p  go back to the previous question
  n  go forward to the next question (only if answered)
  r  start over from joint selection
  q  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if instrumentID != "" && jointKey == "" {
				return fmt.Errorf("--instrument needs --joint")
			}
			wizard := cli.NewWizard(log, catalog, cmd.InOrStdin(), cmd.OutOrStdout())
			wizard.JointKey = jointKey
			wizard.Instrument = instrumentID
			return wizard.Run()
		},
	}
	assessCmd.Flags().StringVar(&jointKey, "joint", "", "joint key, skips the joint menu")
	assessCmd.Flags().StringVar(&instrumentID, "instrument", "", "instrument id, skips the instrument menu")
	return assessCmd
}
