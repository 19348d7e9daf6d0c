package list

import (
	"fmt"
	"os"
	"strconv"

	"github.com/buger/goterm"
	"github.com/spf13/cobra"

	"github.com/reocities/reocities-cli/cmd/util"
	"github.com/reocities/reocities-cli/pkg/api"
	"github.com/reocities/reocities-cli/pkg/errors"
)

// New creates a new `list` command.
func New() *cobra.Command {
	var folder string
	var recursive bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the files on your site",
		Run: func(_ *cobra.Command, _ []string) {
			if err := Main(folder, recursive); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "Specific folder to list.")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "Include subdirectories.")
	return cmd
}

// Main prints the files hosted on the site.
func Main(folder string, recursive bool) error {
	client, err := util.AuthenticatedClient()
	if err != nil {
		return err
	}

	pp := util.NewProgressPrinter(os.Stdout, "Fetching files")
	go pp.Run()
	resp, err := client.List(folder, recursive)
	pp.Stop()

	if err != nil {
		return errors.WithContext(err, "list files")
	}
	if !resp.Success {
		return errors.New("list files: %s", resp.Reason())
	}

	var list api.FileList
	if err := resp.Decode(&list); err != nil {
		return errors.WithContext(err, "parse file list")
	}

	if len(list.Files) == 0 {
		fmt.Println("No files found")
		return nil
	}

	location := "root"
	if folder != "" {
		location = "/" + folder
	}
	fmt.Println(goterm.Bold(fmt.Sprintf("Files in %s:", location)))
	for _, file := range list.Files {
		fmt.Printf("  %s (%s)\n", file.DisplayPath(), formatSize(file.Size))
	}
	return nil
}

// formatSize renders a byte count the way the site's dashboard does: exact
// bytes with thousands separators under one KB, a single decimal of KB above.
func formatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%s bytes", groupDigits(size))
	}
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}

func groupDigits(n int64) string {
	digits := strconv.FormatInt(n, 10)
	for i := len(digits) - 3; i > 0; i -= 3 {
		digits = digits[:i] + "," + digits[i:]
	}
	return digits
}
