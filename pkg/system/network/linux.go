package network

import (
	"fmt"
	"strings"

	airmac "github.com/dogeorg/airmac/pkg"
	network_wifi "github.com/dogeorg/airmac/pkg/system/network/wifi"
	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

var _ airmac.WifiScanner = &WifiScannerLinux{}

// The subset of *wifi.Client we rely on.
type wifiClient interface {
	Interfaces() ([]*wifi.Interface, error)
	BSS(ifi *wifi.Interface) (*wifi.BSS, error)
	StationInfo(ifi *wifi.Interface) ([]*wifi.StationInfo, error)
	Close() error
}

type WifiScannerLinux struct {
	log         *logrus.Logger
	newClient   func() (wifiClient, error)
	WifiScanner network_wifi.WifiScanner
}

// Scan finds the first wireless station interface over nl80211 and
// scans it once.
func (t WifiScannerLinux) Scan() ([]airmac.ScannedNetwork, error) {
	client, err := t.newClient()
	if err != nil {
		return nil, fmt.Errorf("%w: could not init a wifi interface client: %v", airmac.ErrNoInterface, err)
	}
	defer client.Close()

	wifiInterfaces, err := client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("%w: could not list wifi interfaces: %v", airmac.ErrNoInterface, err)
	}

	var iface *wifi.Interface
	for _, wifiInterface := range wifiInterfaces {
		if wifiInterface.Name != "" && wifiInterface.Type == wifi.InterfaceTypeStation {
			iface = wifiInterface
			break
		}
	}
	if iface == nil {
		return nil, airmac.ErrNoInterface
	}

	t.log.WithField("interface", iface.Name).Debug("scanning")

	cells, err := t.WifiScanner.Scan(iface.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for wifi networks on %s: %w", iface.Name, err)
	}

	t.enrichAssociated(client, iface, cells)

	networks := make([]airmac.ScannedNetwork, 0, len(cells))
	for _, c := range cells {
		networks = append(networks, c)
	}
	return networks, nil
}

// iwlist drivers sometimes leave out frequency or signal for the BSS
// we're associated with; nl80211 knows both.
func (t WifiScannerLinux) enrichAssociated(c wifiClient, iface *wifi.Interface, cells []network_wifi.ScannedWifiNetwork) {
	bss, err := c.BSS(iface)
	if err != nil || bss == nil {
		return
	}

	for i := range cells {
		if !strings.EqualFold(cells[i].Address, bss.BSSID.String()) {
			continue
		}

		if cells[i].FrequencyMHz == 0 {
			cells[i].FrequencyMHz = bss.Frequency
		}

		if cells[i].SignalLevel == nil {
			stations, err := c.StationInfo(iface)
			if err != nil {
				t.log.WithError(err).WithField("interface", iface.Name).Debug("no station info")
				return
			}
			for _, s := range stations {
				if strings.EqualFold(s.HardwareAddr.String(), bss.BSSID.String()) {
					signal := s.Signal
					cells[i].SignalLevel = &signal
					break
				}
			}
		}
		return
	}
}
