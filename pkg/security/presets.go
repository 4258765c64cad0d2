package security

const (
	mib = 1 << 20

	restrictedMaxSize = 5 * mib
	standardMaxSize   = 50 * mib
	permissiveMaxSize = 200 * mib
)

// defaultDenyList is shared by every preset. event-stream is the package at
// the center of the 2018 supply-chain compromise that made blocklisting by
// name a standard practice; it stays blocked by default across all presets.
var defaultDenyList = []string{"event-stream", "flatmap-stream"}

var restrictedLicenses = []string{
	"MIT", "Apache-2.0", "BSD-2-Clause", "BSD-3-Clause", "ISC",
}

var standardLicenses = append(append([]string{}, restrictedLicenses...),
	"MPL-2.0", "CC0-1.0", "Unlicense", "0BSD",
)

// RestrictedPreset denies every package not explicitly allow-listed (the
// allow list is configured empty by default), caps license acceptance to a
// conservative permissive-license set, flags any vulnerability of low
// severity or worse, and caps package size at 5 MiB.
func RestrictedPreset() Policy {
	return Policy{
		AllowList:       []string{},
		DenyList:        append([]string{}, defaultDenyList...),
		AllowedLicenses: append([]string{}, restrictedLicenses...),
		MaxSeverity:     Low,
		MaxSizeBytes:    restrictedMaxSize,
	}
}

// StandardPreset has no allow-list restriction beyond the deny list, accepts
// a broader license set, flags high-severity-or-worse vulnerabilities, and
// caps package size at 50 MiB.
func StandardPreset() Policy {
	return Policy{
		AllowList:       nil,
		DenyList:        append([]string{}, defaultDenyList...),
		AllowedLicenses: append([]string{}, standardLicenses...),
		MaxSeverity:     High,
		MaxSizeBytes:    standardMaxSize,
	}
}

// PermissivePreset has no allow list and no license restriction, flags only
// critical vulnerabilities, and caps package size at 200 MiB.
func PermissivePreset() Policy {
	return Policy{
		AllowList:       nil,
		DenyList:        append([]string{}, defaultDenyList...),
		AllowedLicenses: nil,
		MaxSeverity:     Critical,
		MaxSizeBytes:    permissiveMaxSize,
	}
}
