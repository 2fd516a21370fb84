/*

Package pregen contains release values compiled into the dynrev executable.

*/
package pregen

const (
	// Version is set by hand when a release is tagged
	Version = "v0.3.0"
	// ReleaseDate is the date of that tag
	ReleaseDate = "2026-10-19"
)
