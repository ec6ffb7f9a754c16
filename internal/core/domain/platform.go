package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies an Apple platform as declared by a package (e.g. "ios").
type Platform string

// Known platforms.
const (
	PlatformIOS     Platform = "ios"
	PlatformOSX     Platform = "osx"
	PlatformTVOS    Platform = "tvos"
	PlatformWatchOS Platform = "watchos"
)

type platformInfo struct {
	stringName   string
	deviceSDK    string
	simulatorSDK string
}

var knownPlatforms = map[Platform]platformInfo{
	PlatformIOS:     {stringName: "iOS", deviceSDK: "iphoneos", simulatorSDK: "iphonesimulator"},
	PlatformOSX:     {stringName: "macOS", deviceSDK: "macosx", simulatorSDK: "macosx"},
	PlatformTVOS:    {stringName: "tvOS", deviceSDK: "appletvos", simulatorSDK: "appletvsimulator"},
	PlatformWatchOS: {stringName: "watchOS", deviceSDK: "watchos", simulatorSDK: "watchsimulator"},
}

// NormalizePlatform lowercases p and maps the "macos" alias to "osx".
func NormalizePlatform(p string) Platform {
	n := strings.ToLower(strings.TrimSpace(p))
	if n == "macos" {
		n = "osx"
	}
	return Platform(n)
}

// Validate returns ErrUnknownPlatform when p has no SDK mapping.
func (p Platform) Validate() error {
	if _, ok := knownPlatforms[p]; !ok {
		return zerr.With(zerr.Wrap(ErrUnknownPlatform, "unsupported platform"), "platform", string(p))
	}
	return nil
}

// StringName is the display name used as the target suffix (e.g. "iOS").
// Unknown platforms fall back to the raw identifier.
func (p Platform) StringName() string {
	if info, ok := knownPlatforms[p]; ok {
		return info.stringName
	}
	return string(p)
}

// SDK returns the SDK name to compile against for the given environment.
func (p Platform) SDK(env Environment) string {
	info, ok := knownPlatforms[p]
	if !ok {
		return ""
	}
	if env == EnvironmentSimulator {
		return info.simulatorSDK
	}
	return info.deviceSDK
}
