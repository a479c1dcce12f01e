// Package validation handles validation of user flag input.
package validation

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"tubesonic/internal/domain/consts"
	"tubesonic/internal/domain/errconsts"
	"tubesonic/internal/domain/logger"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ValidateDirectory validates that the directory exists, else creates it if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logger.Pl.D(3, "Statting directory %q...", dir)

	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) || !createIfNotFound {
			return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		logger.Pl.I("Created directory %q", dir)
		if info, err = os.Stat(dir); err != nil {
			return nil, err
		}
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is a file, should be a directory", dir)
	}
	return info, nil
}

// ValidateFile validates that the file exists and is not a directory.
func ValidateFile(f string) (os.FileInfo, error) {
	logger.Pl.D(3, "Statting file %q...", f)

	info, err := os.Stat(f)
	if err != nil {
		return nil, fmt.Errorf("failed check for file %q: %w", f, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf(errconsts.ConfigFileIsDir, f)
	}
	return info, nil
}

// ValidateCookieSource normalizes a browser name and checks yt-dlp can read its cookies.
//
// An empty source is valid and means cookies are not used.
func ValidateCookieSource(src string) (string, error) {
	src = strings.ToLower(strings.TrimSpace(src))
	if src == "" {
		return "", nil
	}
	if _, ok := consts.CookieBrowsers[src]; !ok {
		return "", fmt.Errorf(errconsts.InvalidCookieSrc, src, strings.Join(SupportedBrowsers(), ", "))
	}
	return src, nil
}

// SupportedBrowsers returns display names of the browsers yt-dlp reads cookies from, sorted.
func SupportedBrowsers() []string {
	title := cases.Title(language.English)

	names := make([]string, 0, len(consts.CookieBrowsers))
	for b := range consts.CookieBrowsers {
		names = append(names, title.String(b))
	}
	slices.Sort(names)
	return names
}
