package delete

import (
	"fmt"

	"github.com/buger/goterm"
	"github.com/spf13/cobra"

	"github.com/reocities/reocities-cli/cmd/util"
)

var (
	successMark = goterm.Color("✓", goterm.GREEN)
	failureMark = goterm.Color("✗", goterm.RED)
)

// New creates a new `delete` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <paths...>",
		Short: "Delete files or folders from your site",
		Long: "Delete the given paths from your site. Deleting a folder\n" +
			"deletes everything inside it.",
		Args: cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if err := Main(args); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

// Main deletes each path in turn. A failed deletion is reported and doesn't
// stop the remaining paths.
func Main(paths []string) error {
	client, err := util.AuthenticatedClient()
	if err != nil {
		return err
	}

	for _, path := range paths {
		resp, err := client.Delete(path)
		if err != nil {
			fmt.Printf("%s Error deleting %s: %s\n", failureMark, path, err)
			continue
		}
		if !resp.Success {
			fmt.Printf("%s Failed to delete %s: %s\n", failureMark, path, resp.Reason())
			continue
		}
		fmt.Printf("%s Deleted %s\n", successMark, path)
	}
	return nil
}
