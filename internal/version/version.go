// ABOUTME: Version constants for the announcer
// ABOUTME: Identifies the build in startup log lines
package version

const (
	// Product is the name used in startup logging.
	Product = "announcer"

	// Version is the release version.
	Version = "0.1.0"

	// Manufacturer identifies who builds this software.
	Manufacturer = "harperreed"
)
