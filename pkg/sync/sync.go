/*
Package sync implements the push workflow: walk a local directory, filter
out ignored files, and upload what's left to the site in batches.

The workflow is deliberately sequential. Batches are uploaded one at a time
in traversal order, and a failed batch never stops the ones after it -- the
push always runs to the end and reports a final tally.
*/
package sync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/buger/goterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/reocities/reocities-cli/pkg/api"
	"github.com/reocities/reocities-cli/pkg/errors"
	"github.com/reocities/reocities-cli/pkg/ignore"
)

// Mocked out for unit testing.
var fs = afero.NewOsFs()

var (
	successMark = goterm.Color("✓", goterm.GREEN)
	failureMark = goterm.Color("✗", goterm.RED)
)

// BatchUploader is the part of the API client that a push needs.
type BatchUploader interface {
	UploadBatch(tasks []api.UploadTask, folder string, overwrite bool) (api.Response, error)
}

// Push uploads every non-ignored regular file under dir, writing per-file
// progress and the final tally to out.
func Push(client BatchUploader, dir string, out io.Writer) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.WithContext(err, "resolve directory")
	}

	info, err := fs.Stat(absDir)
	if err != nil || !info.IsDir() {
		return errors.FileNotFound{Path: dir}
	}

	matcher, err := ignore.Load(fs, absDir)
	if err != nil {
		return errors.WithContext(err, "load ignore patterns")
	}

	tasks, err := collectTasks(absDir, matcher)
	if err != nil {
		return errors.WithContext(err, "scan directory")
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, "No files to upload")
		return nil
	}

	fmt.Fprintf(out, "Found %d files to upload...\n", len(tasks))

	var uploaded, failed int
	for _, batch := range splitBatches(tasks, api.MaxBatchSize) {
		batchUploaded, batchFailed := pushBatch(client, batch, out)
		uploaded += batchUploaded
		failed += batchFailed
	}

	fmt.Fprintf(out, "\nUpload complete: %d succeeded, %d failed\n", uploaded, failed)
	return nil
}

// pushBatch uploads one batch and reports how many files succeeded and
// failed. Errors are printed rather than returned so the caller can move on
// to the next batch.
func pushBatch(client BatchUploader, batch []api.UploadTask, out io.Writer) (uploaded, failed int) {
	resp, err := client.UploadBatch(batch, "", true)
	if err != nil {
		fmt.Fprintf(out, "Error uploading batch: %s\n", err)
		return 0, len(batch)
	}
	if !resp.Success {
		fmt.Fprintf(out, "Error uploading batch: %s\n", resp.Reason())
		return 0, len(batch)
	}

	// A successful batch can still contain failed files, so the per-file
	// outcome list is what actually counts.
	var result api.BulkResult
	if err := resp.Decode(&result); err != nil {
		fmt.Fprintf(out, "Error uploading batch: %s\n", err)
		return 0, len(batch)
	}

	for _, f := range result.Uploaded {
		fmt.Fprintf(out, "%s %s\n", successMark, f.Path)
	}
	for _, f := range result.Failed {
		reason := f.Error
		if reason == "" {
			reason = "Unknown error"
		}
		fmt.Fprintf(out, "%s %s: %s\n", failureMark, f.Filename, reason)
	}
	return len(result.Uploaded), len(result.Failed)
}

// collectTasks walks the directory and pairs each non-ignored regular file
// with its slash-separated path relative to root.
func collectTasks(root string, matcher *ignore.Matcher) ([]api.UploadTask, error) {
	var tasks []api.UploadTask
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.WithContext(err, "relativize path")
		}
		rel = filepath.ToSlash(rel)

		if matcher.Ignored(rel) {
			log.Debugf("Ignoring %s", rel)
			return nil
		}

		tasks = append(tasks, api.UploadTask{LocalPath: path, SitePath: rel})
		return nil
	})
	return tasks, err
}

// splitBatches partitions tasks into consecutive chunks of at most size,
// preserving order.
func splitBatches(tasks []api.UploadTask, size int) [][]api.UploadTask {
	var batches [][]api.UploadTask
	for len(tasks) > size {
		batches = append(batches, tasks[:size])
		tasks = tasks[size:]
	}
	if len(tasks) > 0 {
		batches = append(batches, tasks)
	}
	return batches
}
