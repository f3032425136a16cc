package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	return nil
}

// SlugForSource derives a document slug from its source filename:
// "docs/02-project-setup.md" becomes "project-setup". A numeric prefix is
// ordering noise from authors who sort files on disk, not part of the URL.
func SlugForSource(sourcePath string) string {
	name := path.Base(sourcePath)
	name = strings.TrimSuffix(name, path.Ext(name))

	if i := strings.Index(name, "-"); i > 0 && isDigits(name[:i]) {
		name = name[i+1:]
	}

	if name == "" {
		return "index"
	}
	return strings.ToLower(name)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// OutputPathForRoute maps a route to its file under the dist tree. Every
// route becomes a directory index so that servers without rewrite rules can
// host the output as-is.
func OutputPathForRoute(route string) string {
	route = NormalizePath(route)
	if route == "/" {
		return "index.html"
	}
	return strings.TrimPrefix(route, "/") + "/index.html"
}
