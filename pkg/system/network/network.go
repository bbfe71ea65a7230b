package network

import (
	network_wifi "github.com/dogeorg/airmac/pkg/system/network/wifi"
	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

func NewWifiScanner(log *logrus.Logger) WifiScannerLinux {
	return WifiScannerLinux{
		log: log,
		newClient: func() (wifiClient, error) {
			return wifi.New()
		},
		WifiScanner: network_wifi.NewWifiScanner(),
	}
}
