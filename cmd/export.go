package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/lgtok/internal/export"
	"github.com/zjrosen/lgtok/internal/token"
)

var (
	exportOut    string
	exportQuery  string
	exportGroup  string
	exportUsedBy string
)

var exportCmd = &cobra.Command{
	Use:       "export (csv|json|css)",
	Short:     "Export the token table without starting the TUI",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json", "css"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "",
		"write to a file instead of stdout")
	exportCmd.Flags().StringVar(&exportQuery, "query", "",
		"case-insensitive substring filter")
	exportCmd.Flags().StringVar(&exportGroup, "group", token.FilterAll,
		"only tokens in this group")
	exportCmd.Flags().StringVar(&exportUsedBy, "used-by", token.FilterAll,
		"only tokens carrying this used-by tag")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	tokens, err := loadTokens()
	if err != nil {
		return err
	}
	tokens = token.Filter(tokens, token.Criteria{
		Query:  exportQuery,
		Group:  exportGroup,
		UsedBy: exportUsedBy,
	})

	var out string
	switch args[0] {
	case "csv":
		out = export.CSV(tokens)
	case "json":
		out, err = export.TokensJSON(tokens)
		if err != nil {
			return err
		}
	case "css":
		out = export.CSSVariables(tokens)
	default:
		return fmt.Errorf("unknown format %q (want csv, json, or css)", args[0])
	}

	if exportOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	return nil
}
