package airmac

import "errors"

var ErrNoInterface = errors.New("no interface")

// WifiScanner performs one scan on the host's wireless interface.
// It returns ErrNoInterface (possibly wrapped) when there is nothing to scan with.
type WifiScanner interface {
	Scan() ([]ScannedNetwork, error)
}
