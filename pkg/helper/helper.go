package helper

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/savioruz/turfics/pkg/constant"
)

// GenerateUniqueKey generates a unique key based on the provided map
func GenerateUniqueKey(args map[string]string) string {
	var keys []string
	for k := range args {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var uniqueKey string
	for _, k := range keys {
		uniqueKey += fmt.Sprintf("%s=%s;", k, args[k])
	}

	return uniqueKey
}

// BuildCacheKey builds a cache key based on the provided key and optional postfix
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}

func GenerateStateToken() string {
	const length = 16
	b := make([]byte, length)

	_, err := rand.Read(b)
	if err != nil {
		return NowInAppTimezone().String()
	}

	return base64.URLEncoding.EncodeToString(b)
}

// SplitCSV splits a comma separated list, trimming blanks.
func SplitCSV(s string) []string {
	var out []string

	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

var (
	// AppTimezone holds the application's timezone
	AppTimezone *time.Location
)

// InitTimezone initializes the application timezone
func InitTimezone(timezone string) error {
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		AppTimezone = time.UTC

		return fmt.Errorf("helper - init timezone %q: %w", timezone, err)
	}

	AppTimezone = loc

	return nil
}

// NowInAppTimezone returns the current time in the application's timezone
func NowInAppTimezone() time.Time {
	if AppTimezone == nil {
		return time.Now().UTC()
	}

	return time.Now().In(AppTimezone)
}

func location() *time.Location {
	if AppTimezone == nil {
		return time.UTC
	}

	return AppTimezone
}

// ParseInstant parses the ISO timestamps the turfics API emits. Timestamps
// without an offset are read in the application timezone.
func ParseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	for _, layout := range []string{constant.NaiveISOFormat + ".999999", constant.NaiveISOFormat, constant.NaiveISOMinutes} {
		if t, err := time.ParseInLocation(layout, value, location()); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("helper - parse instant %q: unsupported format", value)
}

// FormatInstant renders t the way the turfics API expects naive timestamps.
func FormatInstant(t time.Time) string {
	return t.In(location()).Format(constant.NaiveISOFormat)
}
