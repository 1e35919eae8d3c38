// ABOUTME: Project attribution for request logging.
// ABOUTME: Extracts the project name from /projects/{name} style paths.

package logging

import (
	"net/url"
	"strings"
)

// GetProjectFromPath returns the project a request path targets, or "" for
// paths outside /projects/{name}.
func GetProjectFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, "/projects/")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(rest, "/")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name
}
