package semantic

import "strings"

// Compliance selects the WCAG conformance level driving role resolution.
type Compliance int

const (
	ComplianceAA Compliance = iota
	ComplianceAAA
)

// ParseCompliance reads "AA"/"AAA" case-insensitively.
func ParseCompliance(s string) (Compliance, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AA":
		return ComplianceAA, true
	case "AAA":
		return ComplianceAAA, true
	default:
		return ComplianceAA, false
	}
}

func (c Compliance) String() string {
	if c == ComplianceAAA {
		return "AAA"
	}
	return "AA"
}

// TextThreshold is the minimum contrast ratio for text roles.
func (c Compliance) TextThreshold() float64 {
	if c == ComplianceAAA {
		return 7.0
	}
	return 4.5
}

// OutlineThreshold is the minimum contrast ratio for outline roles.
func (c Compliance) OutlineThreshold() float64 {
	if c == ComplianceAAA {
		return 4.5
	}
	return 3.0
}
