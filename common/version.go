package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

const (
	major = 1
	minor = 0
	patch = 0

	// Version is the version of every contract of the repository encoded as
	// major*1_000_000 + minor*1_000 + patch.
	Version = major*1_000_000 + minor*1_000 + patch

	// ErrVersionDowngrade is thrown by CheckVersion when stored data was
	// written by a newer contract.
	ErrVersionDowngrade = "contract downgrade is not allowed"
)

// CheckVersion panics if contract data of version from can't be handled by
// the current code.
func CheckVersion(from int) {
	if from > Version {
		panic(ErrVersionDowngrade + ": " + std.Itoa(from, 10) + " > " + std.Itoa(Version, 10))
	}
}

// AppendVersion appends current contract version to the list of deploy arguments.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
