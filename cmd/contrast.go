package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/lgtok/internal/color"
	"github.com/zjrosen/lgtok/internal/token"
)

var contrastBackdrop string

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check WCAG contrast between two colors or tokens",
	Long: `Check the WCAG 2.1 contrast ratio between a foreground and background.
Either argument may be a token name (resolved to its value) or a literal
color in #RGB, #RRGGBB, rgb(), or rgba() form. Translucent colors are
flattened against the backdrop first.`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().StringVar(&contrastBackdrop, "backdrop", "#FFFFFF",
		"opaque color behind translucent layers")
	rootCmd.AddCommand(contrastCmd)
}

func runContrast(cmd *cobra.Command, args []string) error {
	tokens, err := loadTokens()
	if err != nil {
		return err
	}
	store := token.NewStore(tokens)

	resolve := func(raw string) string {
		raw = strings.TrimSpace(raw)
		if tok, ok := store.Effective(raw); ok {
			return tok.Value
		}
		return raw
	}

	fg, bg := resolve(args[0]), resolve(args[1])
	backdrop := resolve(contrastBackdrop)

	result := color.Check(fg, bg, backdrop)
	if !result.Supported {
		return fmt.Errorf("unsupported color: each input must be a token name or a hex/rgb/rgba color")
	}

	verdict := func(pass bool) string {
		if pass {
			return "pass"
		}
		return "fail"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ratio: %.2f:1\n", result.Ratio)
	fmt.Fprintf(out, "AA large (3.0:1):  %s\n", verdict(result.AALarge))
	fmt.Fprintf(out, "AA normal (4.5:1): %s\n", verdict(result.AANormal))
	fmt.Fprintf(out, "AAA (7.0:1):       %s\n", verdict(result.AAA))
	return nil
}
