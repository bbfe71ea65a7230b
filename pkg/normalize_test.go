package airmac

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeNetwork struct {
	ssid, bssid, country *string
	rssi, noise          int
	channel              *WifiChannel
	security             []Security
	ibss                 bool
}

func (f fakeNetwork) SSID() (string, bool)        { return deref(f.ssid) }
func (f fakeNetwork) BSSID() (string, bool)       { return deref(f.bssid) }
func (f fakeNetwork) CountryCode() (string, bool) { return deref(f.country) }
func (f fakeNetwork) RSSI() int                   { return f.rssi }
func (f fakeNetwork) Noise() int                  { return f.noise }
func (f fakeNetwork) IBSS() bool                  { return f.ibss }

func (f fakeNetwork) Channel() (WifiChannel, bool) {
	if f.channel == nil {
		return WifiChannel{}, false
	}
	return *f.channel, true
}

func (f fakeNetwork) SupportsSecurity(s Security) bool {
	for _, v := range f.security {
		if v == s {
			return true
		}
	}
	return false
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func ptr[T any](v T) *T { return &v }

func TestNewNetworkRecord_AllFields(t *testing.T) {
	t.Parallel()

	got := NewNetworkRecord(fakeNetwork{
		ssid:     ptr("Home"),
		bssid:    ptr("aa:bb:cc:dd:ee:ff"),
		country:  ptr("DE"),
		rssi:     -54,
		noise:    -90,
		channel:  &WifiChannel{Number: 36, Band: ChannelBand5GHz},
		security: []Security{SecurityWPA2Personal, SecurityWPA3Personal, SecurityWPA3Transition},
		ibss:     true,
	})

	want := NetworkRecord{
		SSID:             ptr("Home"),
		BSSID:            ptr("aa:bb:cc:dd:ee:ff"),
		CountryCode:      ptr("DE"),
		RSSIValue:        -54,
		NoiseMeasurement: -90,
		ChannelNumber:    ptr(36),
		ChannelBand:      ptr(ChannelBand5GHz),
		IsIBSS:           true,
		SecurityTypes: SecurityTypes{
			SecurityWPA2Personal:   "WPA2 Personal",
			SecurityWPA3Personal:   "WPA3 Personal",
			SecurityWPA3Transition: "WPA3 Transition",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestNewNetworkRecord_MissingFieldsAreNil(t *testing.T) {
	t.Parallel()

	got := NewNetworkRecord(fakeNetwork{rssi: -80})
	if got.SSID != nil || got.BSSID != nil || got.CountryCode != nil {
		t.Fatalf("expected nil text fields: %+v", got)
	}
	if got.ChannelNumber != nil || got.ChannelBand != nil {
		t.Fatalf("expected nil channel: %+v", got)
	}
	if got.SecurityTypes == nil || len(got.SecurityTypes) != 0 {
		t.Fatalf("security=%v", got.SecurityTypes)
	}
}

func TestNewNetworkRecord_WPA2PersonalOnly(t *testing.T) {
	t.Parallel()

	got := NewNetworkRecord(fakeNetwork{security: []Security{SecurityWPA2Personal}})
	if len(got.SecurityTypes) != 1 || got.SecurityTypes[SecurityWPA2Personal] != "WPA2 Personal" {
		t.Fatalf("security=%v", got.SecurityTypes)
	}
}

func TestNewNetworkRecord_IgnoresUnknownCodes(t *testing.T) {
	t.Parallel()

	// 1 is plain WEP in CoreWLAN, which isn't part of the table
	got := NewNetworkRecord(fakeNetwork{security: []Security{Security(1), SecurityNone}})
	if diff := cmp.Diff(SecurityTypes{SecurityNone: "None"}, got.SecurityTypes); diff != "" {
		t.Fatalf("security mismatch (-want +got):\n%s", diff)
	}
}

func TestNewNetworkRecords_Empty(t *testing.T) {
	t.Parallel()

	got := NewNetworkRecords(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func ssids(records []NetworkRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		if r.SSID == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, *r.SSID)
	}
	return out
}

func TestSortBySSID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []NetworkRecord
		want []string
	}{
		{
			name: "empty",
			in:   nil,
			want: []string{},
		},
		{
			name: "zeta alpha",
			in:   []NetworkRecord{{SSID: ptr("Zeta")}, {SSID: ptr("Alpha")}},
			want: []string{"Alpha", "Zeta"},
		},
		{
			name: "hidden sorts as empty string",
			in:   []NetworkRecord{{SSID: ptr("b")}, {}, {SSID: ptr("")}, {SSID: ptr("a")}},
			want: []string{"<nil>", "", "a", "b"},
		},
		{
			name: "byte order",
			in:   []NetworkRecord{{SSID: ptr("alpha")}, {SSID: ptr("Beta")}, {SSID: ptr("Alpha")}},
			want: []string{"Alpha", "Beta", "alpha"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, ssids(SortBySSID(tt.in))); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortBySSID_StableForEqualKeys(t *testing.T) {
	t.Parallel()

	in := []NetworkRecord{
		{SSID: ptr("Office"), BSSID: ptr("01")},
		{SSID: ptr("Cafe"), BSSID: ptr("02")},
		{SSID: ptr("Office"), BSSID: ptr("03")},
		{SSID: ptr("Office"), BSSID: ptr("04")},
	}

	got := SortBySSID(in)
	var bssids []string
	for _, r := range got {
		bssids = append(bssids, *r.BSSID)
	}
	if diff := cmp.Diff([]string{"02", "01", "03", "04"}, bssids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortBySSID_PermutationAndIdempotent(t *testing.T) {
	t.Parallel()

	in := []NetworkRecord{
		{SSID: ptr("m")}, {}, {SSID: ptr("c")}, {SSID: ptr("x")}, {SSID: ptr("c")}, {SSID: ptr("A")},
	}
	before := ssids(in)

	once := SortBySSID(in)
	if !sort.SliceIsSorted(once, func(i, j int) bool { return once[i].SortKey() < once[j].SortKey() }) {
		t.Fatalf("not sorted: %v", ssids(once))
	}
	if diff := cmp.Diff(once, SortBySSID(once)); diff != "" {
		t.Fatalf("second sort changed order (-once +twice):\n%s", diff)
	}

	a, b := append([]string(nil), before...), ssids(once)
	sort.Strings(a)
	sort.Strings(b)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("not a permutation (-in +out):\n%s", diff)
	}
	if diff := cmp.Diff(before, ssids(in)); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}
