package render

import (
	"fmt"
	"strconv"
	"strings"

	airmac "github.com/dogeorg/airmac/pkg"
)

const unknown = "Unknown"

// Text renders one block per record, each preceded by a blank line.
func Text(records []airmac.NetworkRecord) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString("\n")
		writeField(&b, "SSID:", stringOr(r.SSID))
		writeField(&b, "BSSID:", stringOr(r.BSSID))
		writeField(&b, "RSSI:", fmt.Sprintf("%d dBm", r.RSSIValue))
		writeField(&b, "Channel:", intOr(r.ChannelNumber))
		writeField(&b, "Security:", securityList(r.SecurityTypes))
		writeField(&b, "Band:", bandOr(r.ChannelBand))
		writeField(&b, "Noise:", fmt.Sprintf("%d dB", r.NoiseMeasurement))
		writeField(&b, "isIBSS:", strconv.FormatBool(r.IsIBSS))
		writeField(&b, "countryCode:", stringOr(r.CountryCode))
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-16s%s\n", label, value)
}

func stringOr(s *string) string {
	if s == nil {
		return unknown
	}
	return *s
}

func intOr(i *int) string {
	if i == nil {
		return unknown
	}
	return strconv.Itoa(*i)
}

func bandOr(band *airmac.ChannelBand) string {
	if band == nil {
		return unknown
	}
	return strconv.Itoa(int(*band))
}

// "label (code)" pairs, ascending by code.
func securityList(types airmac.SecurityTypes) string {
	var parts []string
	for _, code := range airmac.KnownSecurityTypes() {
		if label, ok := types[code]; ok {
			parts = append(parts, fmt.Sprintf("%s (%d)", label, code))
		}
	}
	if len(parts) == 0 {
		return unknown
	}
	return strings.Join(parts, ", ")
}
