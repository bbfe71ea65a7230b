package network_wifi

import (
	"strings"

	airmac "github.com/dogeorg/airmac/pkg"
)

type authKind int

const (
	authPSK authKind = iota
	authEAP
	authSAE
	authSuiteB
)

// iwlist only names PSK, 802.1x and none; everything else is "unknown (N)"
// where N is the AKM suite selector.
var authSuiteKinds = map[string]authKind{
	"PSK":          authPSK,
	"unknown (4)":  authPSK, // FT-PSK
	"unknown (6)":  authPSK, // PSK-SHA256
	"802.1x":       authEAP,
	"unknown (3)":  authEAP, // FT-802.1x
	"unknown (5)":  authEAP, // 802.1x-SHA256
	"SAE":          authSAE,
	"unknown (8)":  authSAE,
	"unknown (9)":  authSAE, // FT-SAE
	"unknown (11)": authSuiteB,
	"unknown (12)": authSuiteB,
	"unknown (13)": authSuiteB,
}

func (a *AuthSuites) has(kind authKind) bool {
	if a == nil {
		return false
	}
	for _, s := range *a {
		if k, ok := authSuiteKinds[strings.TrimSpace(s)]; ok && k == kind {
			return true
		}
	}
	return false
}

// SupportsSecurity reports whether the cell advertises the given scheme.
// Static and dynamic WEP cannot be told apart from iwlist output, so
// SecurityDynamicWEP is never reported.
func (n ScannedWifiNetwork) SupportsSecurity(s airmac.Security) bool {
	switch s {
	case airmac.SecurityNone:
		return !n.Encrypted
	case airmac.SecurityWPAPersonal:
		return n.WPA.has(authPSK)
	case airmac.SecurityWPAPersonalMixed:
		return n.WPA.has(authPSK) && n.RSN.has(authPSK)
	case airmac.SecurityWPAEnterprise:
		return n.WPA.has(authEAP)
	case airmac.SecurityWPAEnterpriseMixed:
		return n.WPA.has(authEAP) && n.RSN.has(authEAP)
	case airmac.SecurityWPA2Personal:
		return n.RSN.has(authPSK)
	case airmac.SecurityWPA2Enterprise:
		return n.RSN.has(authEAP)
	case airmac.SecurityWPA3Personal:
		return n.RSN.has(authSAE)
	case airmac.SecurityWPA3Enterprise:
		return n.RSN.has(authSuiteB)
	case airmac.SecurityWPA3Transition:
		return n.RSN.has(authPSK) && n.RSN.has(authSAE)
	}
	return false
}
