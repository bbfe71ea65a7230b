package render

import (
	"strings"
	"testing"

	airmac "github.com/dogeorg/airmac/pkg"
	"github.com/google/go-cmp/cmp"
)

func TestText_Golden(t *testing.T) {
	t.Parallel()

	want := readGolden(t, "networks.txt.golden")
	if diff := cmp.Diff(want, Text(fixtureRecords())); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestText_Empty(t *testing.T) {
	t.Parallel()

	if got := Text(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestText_OpenNetworkBlock(t *testing.T) {
	t.Parallel()

	got := Text([]airmac.NetworkRecord{{
		SSID:             ptr("Cafe"),
		RSSIValue:        -54,
		NoiseMeasurement: -90,
		ChannelNumber:    ptr(36),
		ChannelBand:      ptr(airmac.ChannelBand5GHz),
		SecurityTypes:    airmac.SecurityTypes{airmac.SecurityNone: "None"},
	}})

	for _, line := range []string{
		"RSSI:           -54 dBm\n",
		"Channel:        36\n",
		"Security:       None (0)\n",
		"Band:           2\n",
		"Noise:          -90 dB\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
	if !strings.HasPrefix(got, "\nSSID:           Cafe\n") {
		t.Fatalf("block should start with a blank line then SSID:\n%q", got)
	}
}

func TestText_Unknowns(t *testing.T) {
	t.Parallel()

	got := Text([]airmac.NetworkRecord{{}})
	for _, line := range []string{
		"SSID:           Unknown\n",
		"BSSID:          Unknown\n",
		"Channel:        Unknown\n",
		"Security:       Unknown\n",
		"Band:           Unknown\n",
		"countryCode:    Unknown\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
}

func TestSecurityList_AscendingCode(t *testing.T) {
	t.Parallel()

	got := securityList(airmac.SecurityTypes{
		airmac.SecurityWPA3Personal:   "WPA3 Personal",
		airmac.SecurityWPA2Enterprise: "WPA2 Enterprise",
		airmac.SecurityWPAPersonal:    "WPA Personal",
	})
	want := "WPA Personal (2), WPA2 Enterprise (9), WPA3 Personal (11)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
