package site

import (
	"strings"

	"github.com/neuralarc/site/views"
)

// fileURL is views.BuildURL for a file path, which gets no trailing slash.
func fileURL(base, name string) string {
	return strings.TrimSuffix(views.BuildURL(base, name), "/")
}
