// Package docparse is the client for the remote document-conversion service.
//
// A conversion is upload → poll status → download the result archive. The
// service wraps every JSON response in a {code, msg, data} envelope; any
// non-200 code is surfaced as an error with the service's message.
package docparse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const (
	uploadPath   = "/documentConvert/documentConvertByFile"
	statusPath   = "/documentConvert/getDocumentInfo"
	downloadPath = "/documentConvert/downloadFile"

	// toFileSuffix value requesting Markdown output.
	outputFormat = "markdown"

	// downloadType selects the packaged conversion result.
	downloadType = "3"

	// File status codes reported by the service.
	statusDone      = 202
	statusFailedMin = 204
)

// Client issues authenticated requests to the conversion API.
type Client struct {
	baseURL      string
	apiKey       string
	appID        string
	pollInterval time.Duration
	httpClient   *http.Client
}

// NewClient creates a Client for the given endpoint and credentials.
func NewClient(baseURL, apiKey, appID string, pollInterval time.Duration) *Client {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Client{
		baseURL:      trimSlash(baseURL),
		apiKey:       apiKey,
		appID:        appID,
		pollInterval: pollInterval,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// envelope is the service's standard response wrapper.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// statusInfo is the envelope data of a status query.
type statusInfo struct {
	FileStatus        int     `json:"fileStatus"`
	Progress          float64 `json:"progress"`
	TransFailureCause string  `json:"transFailureCause"`
}

// Convert uploads the file at filePath, waits for the conversion to finish,
// and returns the converted Markdown. The context bounds the whole cycle;
// cancellation never leaves a partial result behind.
func (c *Client) Convert(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	fileUUID, err := c.upload(ctx, f, filepath.Base(filePath))
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	if err := c.waitForCompletion(ctx, fileUUID); err != nil {
		return "", err
	}

	archive, err := c.download(ctx, fileUUID)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	return extractMarkdown(archive)
}

// upload submits the file and returns the conversion job's file UUID.
func (c *Client) upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	fields := map[string]string{
		"fileName":     filename,
		"toFileSuffix": outputFormat,
		"apikey":       c.apiKey,
		"appId":        c.appID,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return "", fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	data, err := c.doEnvelope(req)
	if err != nil {
		return "", err
	}

	var fileUUID string
	if err := json.Unmarshal(data, &fileUUID); err != nil || fileUUID == "" {
		return "", fmt.Errorf("unexpected upload response data: %s", data)
	}
	return fileUUID, nil
}

// getStatus queries the conversion state of one job.
func (c *Client) getStatus(ctx context.Context, fileUUID string) (*statusInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+statusPath+"?"+c.query(fileUUID).Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	data, err := c.doEnvelope(req)
	if err != nil {
		return nil, fmt.Errorf("status query failed: %w", err)
	}

	var info statusInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &info, nil
}

// waitForCompletion polls until the job is done, fails, or ctx expires.
func (c *Client) waitForCompletion(ctx context.Context, fileUUID string) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		info, err := c.getStatus(ctx, fileUUID)
		if err != nil {
			return err
		}
		switch {
		case info.FileStatus == statusDone:
			return nil
		case info.FileStatus >= statusFailedMin:
			cause := info.TransFailureCause
			if cause == "" {
				cause = fmt.Sprintf("file status %d", info.FileStatus)
			}
			return fmt.Errorf("conversion failed: %s", cause)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("conversion not finished: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// download fetches the packaged conversion result (a ZIP archive).
func (c *Client) download(ctx context.Context, fileUUID string) ([]byte, error) {
	q := c.query(fileUUID)
	q.Set("type", downloadType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+downloadPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return io.ReadAll(resp.Body)
}

// doEnvelope executes the request and unwraps the {code, msg, data} envelope.
func (c *Client) doEnvelope(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("status %d: undecodable response: %s", resp.StatusCode, truncate(body, 200))
	}
	if resp.StatusCode != http.StatusOK || env.Code != http.StatusOK {
		msg := env.Msg
		if msg == "" {
			msg = fmt.Sprintf("status %d, code %d", resp.StatusCode, env.Code)
		}
		return nil, fmt.Errorf("service error: %s", msg)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("service returned empty data")
	}
	return env.Data, nil
}

// query builds the common credentialed query string.
func (c *Client) query(fileUUID string) url.Values {
	q := url.Values{}
	q.Set("fileUuid", fileUUID)
	q.Set("apikey", c.apiKey)
	q.Set("appId", c.appID)
	return q
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
