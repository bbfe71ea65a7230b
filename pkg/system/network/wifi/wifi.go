package network_wifi

import (
	"strings"

	airmac "github.com/dogeorg/airmac/pkg"
)

var _ airmac.ScannedNetwork = ScannedWifiNetwork{}

// One cell of an iwlist scan. Zero values mean "not reported".
type ScannedWifiNetwork struct {
	ESSID        string
	Address      string
	SignalLevel  *int
	NoiseLevel   *int
	ChannelNum   int
	FrequencyMHz int
	Mode         string
	Country      string
	Encrypted    bool
	WPA          *AuthSuites // IE: WPA Version 1
	RSN          *AuthSuites // IE: IEEE 802.11i/WPA2 Version 1
}

// Authentication suites listed under a WPA or RSN information element.
type AuthSuites []string

// WifiScanner scans a single named interface.
type WifiScanner interface {
	Scan(networkInterface string) ([]ScannedWifiNetwork, error)
}

func NewWifiScanner() WifiScanner {
	return IWListScanner{}
}

func (n ScannedWifiNetwork) SSID() (string, bool) {
	if strings.Trim(n.ESSID, "\x00") == "" {
		return "", false
	}
	return n.ESSID, true
}

func (n ScannedWifiNetwork) BSSID() (string, bool) {
	return n.Address, n.Address != ""
}

func (n ScannedWifiNetwork) RSSI() int {
	if n.SignalLevel == nil {
		return 0
	}
	return *n.SignalLevel
}

func (n ScannedWifiNetwork) Noise() int {
	if n.NoiseLevel == nil {
		return 0
	}
	return *n.NoiseLevel
}

func (n ScannedWifiNetwork) Channel() (airmac.WifiChannel, bool) {
	number := n.ChannelNum
	if number == 0 {
		number = channelFromFrequency(n.FrequencyMHz)
	}
	if number == 0 {
		return airmac.WifiChannel{}, false
	}
	return airmac.WifiChannel{Number: number, Band: bandFromFrequency(n.FrequencyMHz)}, true
}

func (n ScannedWifiNetwork) IBSS() bool {
	return strings.EqualFold(n.Mode, "Ad-Hoc")
}

func (n ScannedWifiNetwork) CountryCode() (string, bool) {
	return n.Country, n.Country != ""
}

func bandFromFrequency(mhz int) airmac.ChannelBand {
	switch {
	case mhz >= 2400 && mhz <= 2500:
		return airmac.ChannelBand2GHz
	case mhz >= 5150 && mhz <= 5895:
		return airmac.ChannelBand5GHz
	case mhz >= 5925 && mhz <= 7125:
		return airmac.ChannelBand6GHz
	}
	return airmac.ChannelBandUnknown
}

func channelFromFrequency(mhz int) int {
	switch band := bandFromFrequency(mhz); {
	case mhz == 2484:
		return 14
	case band == airmac.ChannelBand2GHz && mhz >= 2412:
		return (mhz - 2407) / 5
	case band == airmac.ChannelBand5GHz:
		return (mhz - 5000) / 5
	case band == airmac.ChannelBand6GHz && mhz >= 5955:
		return (mhz - 5950) / 5
	}
	return 0
}
