package config

import "strings"

// ParseEnvFile parses the content of an env-style configuration file into
// key/value pairs. The format is deliberately forgiving, because operators
// hand-edit these files:
//
//   - blank lines and lines whose first non-space character is '#' are skipped
//   - remaining lines split on the FIRST '=' only, so values may contain '='
//   - a line without '=' becomes a key with an empty value
//   - when a key repeats, the last occurrence wins
//
// Keys and values are trimmed of surrounding whitespace (which also absorbs
// CRLF line endings); interior whitespace is preserved. No validation is
// performed on either side.
func ParseEnvFile(data []byte) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !found {
			values[key] = ""
			continue
		}
		values[key] = strings.TrimSpace(value)
	}
	return values
}
