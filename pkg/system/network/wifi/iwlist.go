package network_wifi

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var _ WifiScanner = &IWListScanner{}

type IWListScanner struct {
	// Binary to run, defaults to iwlist on $PATH.
	Command string
}

func (s IWListScanner) Scan(interfaceName string) ([]ScannedWifiNetwork, error) {
	command := s.Command
	if command == "" {
		command = "iwlist"
	}

	cmd := exec.Command(command, interfaceName, "scan")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s scan: %w: %s", command, interfaceName, err, msg)
		}
		return nil, fmt.Errorf("%s %s scan: %w", command, interfaceName, err)
	}

	return parseIWListOutput(out.String()), nil
}

var (
	cellRegex       = regexp.MustCompile(`(?m)^\s*Cell \d+ - `)
	addressRegex    = regexp.MustCompile(`^Address: ([0-9A-Fa-f:]+)`)
	ssidRegex       = regexp.MustCompile(`ESSID:"(.*)"`)
	channelRegex    = regexp.MustCompile(`^Channel:(\d+)`)
	frequencyRegex  = regexp.MustCompile(`^Frequency:(\d+(?:\.\d+)?) GHz(?: \(Channel (\d+)\))?`)
	signalRegex     = regexp.MustCompile(`Signal level[=:](-?\d+) dBm`)
	noiseRegex      = regexp.MustCompile(`Noise level[=:](-?\d+) dBm`)
	encryptionRegex = regexp.MustCompile(`^Encryption key:(on|off)`)
	modeRegex       = regexp.MustCompile(`^Mode:(\S+)`)
	suitesRegex     = regexp.MustCompile(`^Authentication Suites \(\d+\) : (.*)$`)
	countryRegex    = regexp.MustCompile(`^IE: Unknown: 07[0-9A-Fa-f]{2}([0-9A-Fa-f]{4})`)
)

func parseIWListOutput(output string) []ScannedWifiNetwork {
	networks := []ScannedWifiNetwork{}

	cells := cellRegex.Split(output, -1)
	// anything before the first cell is the "wlan0 Scan completed :" header
	for _, cell := range cells[1:] {
		networks = append(networks, parseIWListCell(cell))
	}

	return networks
}

func parseIWListCell(cell string) ScannedWifiNetwork {
	var n ScannedWifiNetwork
	// suites belong to whichever IE line came last
	var ie *AuthSuites

	for _, line := range strings.Split(cell, "\n") {
		line = strings.TrimSpace(line)

		if m := addressRegex.FindStringSubmatch(line); m != nil {
			n.Address = strings.ToLower(m[1])
			continue
		}
		if m := ssidRegex.FindStringSubmatch(line); m != nil {
			n.ESSID = unescapeESSID(m[1])
			continue
		}
		if m := channelRegex.FindStringSubmatch(line); m != nil {
			n.ChannelNum, _ = strconv.Atoi(m[1])
			continue
		}
		if m := frequencyRegex.FindStringSubmatch(line); m != nil {
			ghz, _ := strconv.ParseFloat(m[1], 64)
			n.FrequencyMHz = int(math.Round(ghz * 1000))
			if m[2] != "" && n.ChannelNum == 0 {
				n.ChannelNum, _ = strconv.Atoi(m[2])
			}
			continue
		}
		if strings.HasPrefix(line, "Quality") || strings.HasPrefix(line, "Signal level") {
			if m := signalRegex.FindStringSubmatch(line); m != nil {
				v, _ := strconv.Atoi(m[1])
				n.SignalLevel = &v
			}
			if m := noiseRegex.FindStringSubmatch(line); m != nil {
				v, _ := strconv.Atoi(m[1])
				n.NoiseLevel = &v
			}
			continue
		}
		if m := encryptionRegex.FindStringSubmatch(line); m != nil {
			n.Encrypted = m[1] == "on"
			continue
		}
		if m := modeRegex.FindStringSubmatch(line); m != nil {
			n.Mode = m[1]
			continue
		}
		if m := countryRegex.FindStringSubmatch(line); m != nil {
			n.Country = decodeCountry(m[1])
			continue
		}
		if strings.HasPrefix(line, "IE: ") {
			switch {
			case strings.HasPrefix(line, "IE: IEEE 802.11i/WPA2 Version"):
				n.RSN = &AuthSuites{}
				ie = n.RSN
			case strings.HasPrefix(line, "IE: WPA Version"):
				n.WPA = &AuthSuites{}
				ie = n.WPA
			default:
				ie = nil
			}
			continue
		}
		if m := suitesRegex.FindStringSubmatch(line); m != nil && ie != nil {
			*ie = append(*ie, splitSuites(m[1])...)
		}
	}

	return n
}

var escapeRegex = regexp.MustCompile(`\\x[0-9A-Fa-f]{2}`)

// iwlist prints non-printable SSID bytes as \xNN.
func unescapeESSID(s string) string {
	return escapeRegex.ReplaceAllStringFunc(s, func(esc string) string {
		b, err := hex.DecodeString(esc[2:])
		if err != nil {
			return esc
		}
		return string(b)
	})
}

// "PSK unknown (8)" -> ["PSK", "unknown (8)"]
func splitSuites(s string) []string {
	var suites []string
	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		if fields[i] == "unknown" && i+1 < len(fields) {
			suites = append(suites, fields[i]+" "+fields[i+1])
			i++
			continue
		}
		suites = append(suites, fields[i])
	}
	return suites
}

func decodeCountry(h string) string {
	b, err := hex.DecodeString(h)
	if err != nil {
		return ""
	}
	for _, c := range b {
		if c < 'A' || c > 'Z' {
			return ""
		}
	}
	return string(b)
}
