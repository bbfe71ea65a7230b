package airmac

import "strconv"

// Security identifies an authentication scheme a network can advertise.
// Values match the CoreWLAN CWSecurity codes so output is comparable
// across platforms.
type Security int

const (
	SecurityNone               Security = 0
	SecurityWPAPersonal        Security = 2
	SecurityWPAPersonalMixed   Security = 3
	SecurityWPA2Personal       Security = 4
	SecurityDynamicWEP         Security = 6
	SecurityWPAEnterprise      Security = 7
	SecurityWPAEnterpriseMixed Security = 8
	SecurityWPA2Enterprise     Security = 9
	SecurityWPA3Personal       Security = 11
	SecurityWPA3Enterprise     Security = 12
	SecurityWPA3Transition     Security = 13
)

type securityEntry struct {
	code  Security
	label string
}

// ascending by code
var securityTable = [...]securityEntry{
	{SecurityNone, "None"},
	{SecurityWPAPersonal, "WPA Personal"},
	{SecurityWPAPersonalMixed, "WPA Personal Mixed"},
	{SecurityWPA2Personal, "WPA2 Personal"},
	{SecurityDynamicWEP, "Dynamic WEP"},
	{SecurityWPAEnterprise, "WPA Enterprise"},
	{SecurityWPAEnterpriseMixed, "WPA Enterprise Mixed"},
	{SecurityWPA2Enterprise, "WPA2 Enterprise"},
	{SecurityWPA3Personal, "WPA3 Personal"},
	{SecurityWPA3Enterprise, "WPA3 Enterprise"},
	{SecurityWPA3Transition, "WPA3 Transition"},
}

// KnownSecurityTypes returns every recognised scheme in ascending code order.
func KnownSecurityTypes() []Security {
	out := make([]Security, 0, len(securityTable))
	for _, e := range securityTable {
		out = append(out, e.code)
	}
	return out
}

func (s Security) Label() (string, bool) {
	for _, e := range securityTable {
		if e.code == s {
			return e.label, true
		}
	}
	return "", false
}

func (s Security) String() string {
	if label, ok := s.Label(); ok {
		return label
	}
	return "Security(" + strconv.Itoa(int(s)) + ")"
}

// Supported schemes of one network, code -> label.
type SecurityTypes map[Security]string
