package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cvinsight/cv-parser/internal/models"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List model types and whether they are configured",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}

		return printModels(cmd.OutOrStdout(), rt.dispatcher.Models())
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func printModels(out io.Writer, infos []models.ModelInfo) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL TYPE\tPROVIDER\tMODEL\tSTATUS")

	for _, info := range infos {
		status := "available"
		if !info.Available {
			status = "unavailable: " + info.Reason
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.ID, info.Provider, info.Model, status)
	}

	return w.Flush()
}
