package errors

import (
	"strings"
	"unicode"
)

// ValidateLinkID validates a link identifier read from an external scene
// file. It rejects identifiers that would break file-path derivation or the
// DOT output.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateLinkID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidScene, "link ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidScene, "link ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "link ID contains control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(ErrCodeInvalidScene, "link ID contains invalid characters: %q", id)
	}

	return nil
}

// ValidateJointName validates a joint name read from an external scene file.
// Names are used as external control-channel keys, so the same conservative
// rules apply as for link IDs. An empty name is allowed here: the scene layer
// replaces it with a generated one.
func ValidateJointName(name string) error {
	if name == "" {
		return nil
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidJoint, "joint name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidJoint, "joint name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidJoint, "joint name contains invalid characters: %q", name)
	}

	return nil
}
