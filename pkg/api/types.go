package api

import (
	"fmt"
)

// UploadTask pairs a local file with the path it should have on the site.
type UploadTask struct {
	// LocalPath is the path used to read the file's contents.
	LocalPath string

	// SitePath is the path the file will have on the site, relative to the
	// upload folder. It uses forward slashes regardless of platform.
	SitePath string
}

// UploadedFile describes a file the server accepted.
type UploadedFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// FailedFile describes a file the server rejected within an otherwise
// successful bulk upload.
type FailedFile struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BulkResult is the per-file breakdown of a bulk upload. A successful bulk
// request can still contain failed files.
type BulkResult struct {
	Uploaded []UploadedFile `json:"uploaded"`
	Failed   []FailedFile   `json:"failed"`
}

// FileInfo describes a file hosted on the site. Older servers populate Name
// instead of Path.
type FileInfo struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// DisplayPath returns the best available path for showing to the user.
func (f FileInfo) DisplayPath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// FileList is the result of listing files on the site.
type FileList struct {
	Files []FileInfo `json:"files"`
}

// ServiceVersion is the CLI release the service currently advertises.
type ServiceVersion struct {
	Version string `json:"version"`
}

// BatchTooLargeError is returned when a bulk upload exceeds the server's
// per-request file limit. It's detected locally, before any network call.
type BatchTooLargeError struct {
	Size int
}

func (err BatchTooLargeError) Error() string {
	return fmt.Sprintf("bulk uploads are limited to %d files, but got %d",
		MaxBatchSize, err.Size)
}

// EmptyFileError is returned when an upload task refers to a zero-byte file,
// which the bulk endpoint rejects.
type EmptyFileError struct {
	Path string
}

func (err EmptyFileError) Error() string {
	return fmt.Sprintf("%q is empty", err.Path)
}
