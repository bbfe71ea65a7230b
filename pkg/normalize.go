package airmac

import "sort"

// NewNetworkRecord copies a scanned network into a NetworkRecord.
// Missing values on the scanned side stay nil.
func NewNetworkRecord(n ScannedNetwork) NetworkRecord {
	r := NetworkRecord{
		RSSIValue:        n.RSSI(),
		NoiseMeasurement: n.Noise(),
		IsIBSS:           n.IBSS(),
		SecurityTypes:    SecurityTypes{},
	}

	if ssid, ok := n.SSID(); ok {
		r.SSID = &ssid
	}
	if bssid, ok := n.BSSID(); ok {
		r.BSSID = &bssid
	}
	if ch, ok := n.Channel(); ok {
		number, band := ch.Number, ch.Band
		r.ChannelNumber = &number
		r.ChannelBand = &band
	}
	if cc, ok := n.CountryCode(); ok {
		r.CountryCode = &cc
	}

	for _, e := range securityTable {
		if n.SupportsSecurity(e.code) {
			r.SecurityTypes[e.code] = e.label
		}
	}

	return r
}

func NewNetworkRecords(networks []ScannedNetwork) []NetworkRecord {
	records := make([]NetworkRecord, 0, len(networks))
	for _, n := range networks {
		records = append(records, NewNetworkRecord(n))
	}
	return records
}

// SortKey is the SSID, or "" for hidden networks.
func (r NetworkRecord) SortKey() string {
	if r.SSID == nil {
		return ""
	}
	return *r.SSID
}

// SortBySSID returns a copy of records ordered by SortKey. Records with the
// same key keep their scan order.
func SortBySSID(records []NetworkRecord) []NetworkRecord {
	sorted := make([]NetworkRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortKey() < sorted[j].SortKey()
	})
	return sorted
}
