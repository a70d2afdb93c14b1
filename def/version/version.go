// Package version defines the current version number of the Mute base64
// tools.
package version

// Number is the current version number.
// We use semantic versioning (http://semver.org/).
const Number = "0.1.0"
