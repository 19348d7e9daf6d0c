// Package api wraps the Reocities HTTP API. Every call is authenticated
// with the stored API key and returns a normalized Response, so callers
// don't have to care how unreliably the server reports errors.
package api

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/reocities/reocities-cli/pkg/errors"
	"github.com/reocities/reocities-cli/pkg/version"
)

const (
	// DefaultBaseURL is the production Reocities endpoint.
	DefaultBaseURL = "https://reocities.xyz"

	// MaxBatchSize is the largest number of files the bulk upload endpoint
	// accepts in a single request.
	MaxBatchSize = 10
)

// Mocked out for unit testing.
var fs = afero.NewOsFs()

// contentTypeFallbacks maps file extensions to content types for when the
// platform's MIME database comes up empty.
var contentTypeFallbacks = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".txt":  "text/plain",
}

// Client makes authenticated calls against the Reocities HTTP API. It's
// stateless apart from the key, so one client per key is all that's needed.
type Client struct {
	key     string
	baseURL string
	http    *http.Client
}

// New creates a client that talks to the production API with the given key.
func New(key string) *Client {
	return NewWithBaseURL(key, DefaultBaseURL)
}

// NewWithBaseURL creates a client against a non-default endpoint. Used by
// tests, and by users pointing the CLI at a staging deployment.
func NewWithBaseURL(key, baseURL string) *Client {
	return &Client{
		key:     key,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// UploadSingle uploads one file, optionally into folder. The local path is
// checked before any network traffic so a typo fails fast.
func (c *Client) UploadSingle(path, folder string, overwrite bool) (Response, error) {
	if _, err := fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Response{}, errors.FileNotFound{Path: path}
		}
		return Response{}, errors.WithContext(err, "stat")
	}

	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return Response{}, errors.WithContext(err, "read file")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writeFilePart(writer, "file", filepath.Base(path), contents); err != nil {
		return Response{}, errors.WithContext(err, "encode file")
	}
	if err := writeFormFields(writer, folder, overwrite); err != nil {
		return Response{}, errors.WithContext(err, "encode form")
	}
	if err := writer.Close(); err != nil {
		return Response{}, errors.WithContext(err, "finish form")
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/upload", body)
	if err != nil {
		return Response{}, errors.WithContext(err, "new request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req)
}

// UploadBatch uploads up to MaxBatchSize files in one request. Oversized
// batches and zero-byte files are rejected locally, before any network
// call, since the server would reject them anyway.
func (c *Client) UploadBatch(tasks []UploadTask, folder string, overwrite bool) (Response, error) {
	if len(tasks) > MaxBatchSize {
		return Response{}, BatchTooLargeError{Size: len(tasks)}
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, task := range tasks {
		contents, err := afero.ReadFile(fs, task.LocalPath)
		if err != nil {
			if os.IsNotExist(err) {
				return Response{}, errors.FileNotFound{Path: task.LocalPath}
			}
			return Response{}, errors.WithContext(err, "read file")
		}
		if len(contents) == 0 {
			return Response{}, EmptyFileError{Path: task.LocalPath}
		}
		if err := writeFilePart(writer, "files[]", task.SitePath, contents); err != nil {
			return Response{}, errors.WithContext(err, "encode file")
		}
	}
	if err := writeFormFields(writer, folder, overwrite); err != nil {
		return Response{}, errors.WithContext(err, "encode form")
	}
	if err := writer.Close(); err != nil {
		return Response{}, errors.WithContext(err, "finish form")
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/upload/bulk", body)
	if err != nil {
		return Response{}, errors.WithContext(err, "new request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req)
}

// List returns the files hosted on the site, optionally scoped to folder.
func (c *Client) List(folder string, recursive bool) (Response, error) {
	req, err := http.NewRequest("GET", c.baseURL+"/api/files", nil)
	if err != nil {
		return Response{}, errors.WithContext(err, "new request")
	}

	q := req.URL.Query()
	if folder != "" {
		q.Add("folder", folder)
	}
	if recursive {
		q.Add("recursive", "true")
	}
	req.URL.RawQuery = q.Encode()
	return c.do(req)
}

// Delete removes a file or folder from the site. Deleting a folder deletes
// its contents as well; that's the server's semantic, not checked here.
func (c *Client) Delete(path string) (Response, error) {
	form := url.Values{"path": {path}}
	req, err := http.NewRequest("DELETE", c.baseURL+"/api/files",
		strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, errors.WithContext(err, "new request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// CreateFolder creates a folder on the site, optionally under parent.
func (c *Client) CreateFolder(name, parent string) (Response, error) {
	form := url.Values{"name": {name}}
	if parent != "" {
		form.Set("parent", parent)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/folders",
		strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, errors.WithContext(err, "new request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// ServiceVersion returns the CLI release the service currently advertises.
func (c *Client) ServiceVersion() (Response, error) {
	req, err := http.NewRequest("GET", c.baseURL+"/api/version", nil)
	if err != nil {
		return Response{}, errors.WithContext(err, "new request")
	}
	return c.do(req)
}

// do sends the request with the standard auth headers and normalizes the
// result. Transport failures are the only errors it returns; everything the
// server actually said ends up in the Response.
func (c *Client) do(req *http.Request) (Response, error) {
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("User-Agent", fmt.Sprintf("reocities-cli/%s", version.Version))

	log.WithFields(log.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	}).Debug("Sending API request")

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, errors.WithContext(err, "connect to Reocities")
	}

	result := handleResponse(resp)
	log.WithField("status", result.StatusCode).Debug("Received API response")
	if result.RawBody != "" {
		log.Debugf("Unparseable response body: %s", result.RawBody)
	}
	return result, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// writeFilePart writes one file into the multipart body with its inferred
// content type. multipart.Writer.CreateFormFile would force
// application/octet-stream, so the part header is built by hand.
func writeFilePart(writer *multipart.Writer, field, filename string, contents []byte) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(
		`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	header.Set("Content-Type", contentTypeFor(filename))

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(contents)
	return err
}

func writeFormFields(writer *multipart.Writer, folder string, overwrite bool) error {
	if err := writer.WriteField("overwrite", strconv.FormatBool(overwrite)); err != nil {
		return err
	}
	if folder != "" {
		return writer.WriteField("folder", folder)
	}
	return nil
}

// contentTypeFor infers a file's content type from its extension, falling
// back to a fixed table when the platform's MIME database is inconclusive.
func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ctype := mime.TypeByExtension(ext); ctype != "" {
		return ctype
	}
	if ctype, ok := contentTypeFallbacks[ext]; ok {
		return ctype
	}
	return "application/octet-stream"
}
