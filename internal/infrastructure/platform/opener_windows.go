//go:build windows

package platform

import "FolderBrowser/internal/infrastructure/logging"

func newPlatformOpener(logger logging.Logger) Opener {
	return NewCommandOpener("explorer", nil, logger)
}
