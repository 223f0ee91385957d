package session

import "strings"

func isValidTracking(tracking string) bool {
	return strings.TrimSpace(tracking) != ""
}
