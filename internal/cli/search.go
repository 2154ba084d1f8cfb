package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kk-code-lab/dpane/internal/fs"
	"github.com/kk-code-lab/dpane/internal/logging"
	"github.com/kk-code-lab/dpane/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		name          string
		content       string
		minSize       int64
		maxSize       int64
		after         string
		before        string
		entryType     string
		caseSensitive bool
		hidden        bool
	)

	cmd := &cobra.Command{
		Use:   "search <root>",
		Short: "Recursively search a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewCLI(flagVerbose)

			criteria := search.Criteria{
				Root:              args[0],
				FilenameSubstring: name,
				ContentSubstring:  content,
				MinSize:           minSize,
				MaxSize:           maxSize,
				CaseSensitive:     caseSensitive,
				IncludeHidden:     hidden,
			}

			switch entryType {
			case "", "all":
				criteria.Type = search.AllEntries
			case "file":
				criteria.Type = search.FilesOnly
			case "dir":
				criteria.Type = search.DirectoriesOnly
			default:
				return fmt.Errorf("unknown --type %q (want file, dir, or all)", entryType)
			}

			var err error
			if criteria.ModifiedAfter, err = parseTimeFlag(after); err != nil {
				return err
			}
			if criteria.ModifiedBefore, err = parseTimeFlag(before); err != nil {
				return err
			}

			start := time.Now()
			results, err := search.Search(criteria)
			if err != nil {
				return err
			}
			log.Debug().Int("results", len(results)).Dur("elapsed", time.Since(start)).Msg("search finished")

			for _, entry := range results {
				if entry.IsDir {
					fmt.Fprintf(cmd.OutOrStdout(), "%11s  %s\n", "<dir>", entry.FullPath)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%11s  %s\n", fs.FormatSize(entry.Size), entry.FullPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "substring to match in entry names")
	cmd.Flags().StringVarP(&content, "content", "c", "", "substring to match in file contents")
	cmd.Flags().Int64Var(&minSize, "min-size", 0, "minimum file size in bytes")
	cmd.Flags().Int64Var(&maxSize, "max-size", 0, "maximum file size in bytes")
	cmd.Flags().StringVar(&after, "after", "", "only entries modified after this date (2006-01-02)")
	cmd.Flags().StringVar(&before, "before", "", "only entries modified before this date (2006-01-02)")
	cmd.Flags().StringVarP(&entryType, "type", "t", "all", "entry type: file, dir, or all")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match case exactly")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "descend into hidden entries")

	return cmd
}

// parseTimeFlag accepts a plain date or a full RFC 3339 timestamp.
func parseTimeFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use 2006-01-02 or RFC 3339", value)
	}
	return t, nil
}
