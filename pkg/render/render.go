// Package render turns sorted network records into the two output formats
// airmac prints.
package render

import airmac "github.com/dogeorg/airmac/pkg"

// ScanResults renders records as JSON when asJSON is set, otherwise as text.
func ScanResults(records []airmac.NetworkRecord, asJSON bool) string {
	if asJSON {
		return JSON(records)
	}
	return Text(records)
}
