package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kk-code-lab/dpane/internal/diff"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "Compare two files line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := diff.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			printDiff(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func printDiff(w io.Writer, result *diff.Result) {
	if result.Identical {
		fmt.Fprintf(w, "%s and %s are identical\n", result.LeftPath, result.RightPath)
		return
	}

	for _, line := range result.Lines {
		switch line.Kind {
		case diff.Added:
			fmt.Fprintf(w, "     + %4d  %s\n", line.RightNum, line.RightText)
		case diff.Removed:
			fmt.Fprintf(w, "%4d -       %s\n", line.LeftNum, line.LeftText)
		case diff.Modified:
			fmt.Fprintf(w, "%4d ~ %4d  %s | %s\n", line.LeftNum, line.RightNum, line.LeftText, line.RightText)
		default:
			fmt.Fprintf(w, "%4d   %4d  %s\n", line.LeftNum, line.RightNum, line.LeftText)
		}
	}

	c := result.Counts
	fmt.Fprintf(w, "\n%d equal, %d added, %d removed, %d modified\n",
		c.Equal, c.Added, c.Removed, c.Modified)
}
