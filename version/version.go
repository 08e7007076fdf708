// Package version provides the program version.
package version

// Version is the version of po-translate.
var Version = "0.1.0"
