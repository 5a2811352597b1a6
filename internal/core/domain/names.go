package domain

import "strings"

// Phase-name prefixes mark ownership. Phases created by this tool carry the
// owned prefix; phases declared by the end user in the manifest carry the
// user prefix. The reconciler never touches a phase outside these namespaces
// except when deleting explicitly obsolete legacy names.
const (
	ownedPhasePrefix = "[XS] "
	userPhasePrefix  = "[XS-User] "
)

// Legacy prefixes, newest first. Earlier releases used a long-form prefix,
// and the earliest wrote bare phase names. The current prefix is included so
// a single table answers "is this one of ours".
var (
	ownedPhasePrefixes = []string{ownedPhasePrefix, "[xcsync] ", ""}
	userPhasePrefixes  = []string{userPhasePrefix, "[xcsync-user] "}
)

// OwnedPhaseName returns the current full name for an owned phase base name.
func OwnedPhaseName(base string) string {
	return ownedPhasePrefix + base
}

// UserPhaseName returns the current full name for a user-declared phase.
func UserPhaseName(name string) string {
	return userPhasePrefix + name
}

// MatchesOwnedPhase reports whether name is the given owned base name under
// any historical prefix.
func MatchesOwnedPhase(name, base string) bool {
	for _, prefix := range ownedPhasePrefixes {
		if name == prefix+base {
			return true
		}
	}
	return false
}

// MatchesUserPhase reports whether name is the given user phase name under
// any historical user prefix.
func MatchesUserPhase(name, declared string) bool {
	for _, prefix := range userPhasePrefixes {
		if name == prefix+declared {
			return true
		}
	}
	return false
}

// IsUserPhaseName reports whether name is inside the user-phase namespace.
func IsUserPhaseName(name string) bool {
	for _, prefix := range userPhasePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// UserPhaseBase strips the user prefix from a full user phase name.
func UserPhaseBase(name string) string {
	for _, prefix := range userPhasePrefixes {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}
