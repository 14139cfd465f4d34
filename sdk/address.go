package sdk

import "strings"

// Address is a 32-byte actor identity rendered as 0x-prefixed hex. User
// accounts and collaborator contracts (ledgers) share the same namespace.
type Address string

// ZeroAddress is the all-zero actor id used as the "unset" marker.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000000000000000000000000000"

// String returns the literal hex representation of the address.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is empty or the all-zero id.
func (a Address) IsZero() bool {
	if a == "" || a == ZeroAddress {
		return true
	}
	trimmed := strings.TrimPrefix(string(a), "0x")
	for _, c := range trimmed {
		if c != '0' {
			return false
		}
	}
	return len(trimmed) > 0
}

// IsValid is a light sanity check on the hex shape, not a full checksum.
func (a Address) IsValid() bool {
	s := string(a)
	if !strings.HasPrefix(s, "0x") || len(s) < 3 {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
