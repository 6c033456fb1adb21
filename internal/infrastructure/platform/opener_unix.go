//go:build linux || freebsd || openbsd || netbsd || dragonfly

package platform

import "FolderBrowser/internal/infrastructure/logging"

func newPlatformOpener(logger logging.Logger) Opener {
	return NewCommandOpener("xdg-open", nil, logger)
}
