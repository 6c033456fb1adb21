//go:build !windows && !darwin && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package platform

import "FolderBrowser/internal/infrastructure/logging"

func newPlatformOpener(logging.Logger) Opener {
	return unsupportedOpener{}
}
