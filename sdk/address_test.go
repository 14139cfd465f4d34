package sdk

import "testing"

func TestAddressIsZero(t *testing.T) {
	cases := []struct {
		addr Address
		want bool
	}{
		{"", true},
		{ZeroAddress, true},
		{"0x0000", true},
		{"0x", false},
		{"0x01", false},
		{"0x0000000000000000000000000000000000000000000000000000000000000001", false},
	}
	for _, tc := range cases {
		if got := tc.addr.IsZero(); got != tc.want {
			t.Errorf("IsZero(%q) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}

func TestAddressIsValid(t *testing.T) {
	cases := []struct {
		addr Address
		want bool
	}{
		{"0x12ff", true},
		{"0xAB01", true},
		{"12ff", false},
		{"0x", false},
		{"0x12zz", false},
	}
	for _, tc := range cases {
		if got := tc.addr.IsValid(); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}
