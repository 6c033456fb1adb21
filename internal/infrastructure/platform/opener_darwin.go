//go:build darwin

package platform

import "FolderBrowser/internal/infrastructure/logging"

func newPlatformOpener(logger logging.Logger) Opener {
	return NewCommandOpener("open", nil, logger)
}
