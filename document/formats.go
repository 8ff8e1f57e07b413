package document

// formats.go — the static catalog of file types accepted for parsing.
// Conversion itself happens remotely; this list only gates what is sent.

import (
	"path/filepath"
	"sort"
	"strings"
)

// supportedExts are the extensions the conversion service accepts.
var supportedExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".ppt":  true,
	".pptx": true,
}

// IsSupported reports whether the file's extension (case-insensitive) is
// accepted.
func IsSupported(filePath string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(filePath))]
}

// SupportedExtensions returns accepted extensions without the leading dot,
// sorted.
func SupportedExtensions() []string {
	out := make([]string, 0, len(supportedExts))
	for ext := range supportedExts {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(out)
	return out
}

// FileType describes one supported format for the supported-types resource.
type FileType struct {
	Format      string   `json:"format"`
	Extensions  []string `json:"extensions"`
	MIMETypes   []string `json:"mime_types"`
	Description string   `json:"description"`
}

// Catalog is the supported-types resource payload.
type Catalog struct {
	SupportedTypes []FileType `json:"supported_types"`
	Description    string     `json:"description"`
}

// SupportedTypes returns the static format catalog.
func SupportedTypes() Catalog {
	return Catalog{
		SupportedTypes: []FileType{
			{
				Format:      "PDF",
				Extensions:  []string{".pdf"},
				MIMETypes:   []string{"application/pdf"},
				Description: "Portable Document Format",
			},
			{
				Format:     "Word",
				Extensions: []string{".doc", ".docx"},
				MIMETypes: []string{
					"application/msword",
					"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				},
				Description: "Microsoft Word documents",
			},
			{
				Format:     "Excel",
				Extensions: []string{".xls", ".xlsx"},
				MIMETypes: []string{
					"application/vnd.ms-excel",
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				},
				Description: "Microsoft Excel workbooks",
			},
			{
				Format:     "PPT",
				Extensions: []string{".ppt", ".pptx"},
				MIMETypes: []string{
					"application/vnd.ms-powerpoint",
					"application/vnd.openxmlformats-officedocument.presentationml.presentation",
				},
				Description: "Microsoft PowerPoint presentations",
			},
		},
		Description: "Documents are converted to Markdown and returned in ordered chunks",
	}
}
