package staff

import "strings"

// MinPhoneDigits is the shortest phone accepted as a login identifier.
const MinPhoneDigits = 6

// NormalizePhone strips all whitespace from a raw phone number. The result
// is the canonical roster key: "683 613 331" and "683613331" are the same
// member. Normalization is idempotent.
func NormalizePhone(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}
