package airmac

// The shape every scanned network is reduced to before rendering.
// Field order matches the JSON key order; keep it sorted.
type NetworkRecord struct {
	BSSID            *string       `json:"bssid"`
	ChannelBand      *ChannelBand  `json:"channelBand"`
	ChannelNumber    *int          `json:"channelNumber"`
	CountryCode      *string       `json:"countryCode"`
	IsIBSS           bool          `json:"isIBSS"`
	NoiseMeasurement int           `json:"noiseMeasurement"`
	RSSIValue        int           `json:"rssiValue"`
	SecurityTypes    SecurityTypes `json:"securityTypes"`
	SSID             *string       `json:"ssid"`
}

// Coarse frequency range of a channel.
type ChannelBand int

const (
	ChannelBandUnknown ChannelBand = 0
	ChannelBand2GHz    ChannelBand = 1
	ChannelBand5GHz    ChannelBand = 2
	ChannelBand6GHz    ChannelBand = 3
)

type WifiChannel struct {
	Number int
	Band   ChannelBand
}

// ScannedNetwork is a single access point as reported by a platform
// scanner. See ./system/network/wifi for the Linux implementation.
type ScannedNetwork interface {
	SSID() (string, bool)
	BSSID() (string, bool)
	RSSI() int
	Noise() int
	Channel() (WifiChannel, bool)
	SupportsSecurity(Security) bool
	IBSS() bool
	CountryCode() (string, bool)
}
