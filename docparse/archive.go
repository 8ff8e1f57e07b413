package docparse

// archive.go — Markdown extraction from the packaged conversion result.
// The service delivers a ZIP whose members hold the converted text; Markdown
// members are preferred, plain-text members are the fallback.

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// extractMarkdown concatenates the text members of the result archive,
// in archive order.
func extractMarkdown(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open result archive: %w", err)
	}

	content, err := readMembers(zr, ".md")
	if err != nil {
		return "", err
	}
	if content == "" {
		content, err = readMembers(zr, ".txt")
		if err != nil {
			return "", err
		}
	}
	if content == "" {
		return "", fmt.Errorf("result archive contains no markdown or text members")
	}
	return content, nil
}

func readMembers(zr *zip.Reader, ext string) (string, error) {
	var sb strings.Builder
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ext) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open archive member %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read archive member %s: %w", f.Name, err)
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.Write(data)
	}
	return strings.TrimSpace(sb.String()), nil
}
