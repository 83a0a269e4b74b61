package types

// Platform identifies the operating system a target is built for.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformOSX     Platform = "osx"
	PlatformTVOS    Platform = "tvos"
	PlatformWatchOS Platform = "watchos"
)

// Valid reports whether the platform is one of the known identifiers.
func (p Platform) Valid() bool {
	switch p {
	case PlatformIOS, PlatformOSX, PlatformTVOS, PlatformWatchOS:
		return true
	}
	return false
}
