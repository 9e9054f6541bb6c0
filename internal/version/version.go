// ABOUTME: Version constants
// ABOUTME: Product identification for the demo binaries
package version

const (
	// Product is the library name reported by demo binaries.
	Product = "tinyaudio-go"

	// Version is the library version.
	Version = "0.1.0"

	// Manufacturer identifies the project.
	Manufacturer = "tinyaudio"
)
