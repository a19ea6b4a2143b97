package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Contract version is encoded as major*1_000_000 + minor*1_000 + patch.
const (
	major = 1
	minor = 0
	patch = 0

	// Oldest version the contract can be updated from. Storage layout of
	// every version since is compatible with the current one.
	oldestMajor = 1
	oldestMinor = 0
	oldestPatch = 0

	Version = major*1_000_000 + minor*1_000 + patch

	OldestVersion = oldestMajor*1_000_000 + oldestMinor*1_000 + oldestPatch
)

// CheckVersion aborts update from the version which storage cannot be
// migrated from or which is not older than Version.
func CheckVersion(from int) {
	if from < OldestVersion {
		Abort(ErrInvalidArgument, "can't update from version "+std.Itoa10(from)+
			", expected >= "+std.Itoa10(OldestVersion))
	}
	if from >= Version {
		Abort(ErrInvalidArgument, "contract is already of version "+std.Itoa10(from))
	}
}

// AppendVersion appends current contract version to the update arguments,
// so the new code receives it in _deploy.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
