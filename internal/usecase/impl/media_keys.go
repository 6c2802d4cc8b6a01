package impl

import "strings"

// storageKeyFromURL recovers the bucket key from a public media URL.
// Media keys always start with "vendors/"; anything before that segment is
// the serving prefix and varies by storage backend.
func storageKeyFromURL(url string) (string, bool) {
	idx := strings.Index(url, "vendors/")
	if idx < 0 {
		return "", false
	}

	return url[idx:], true
}
