package word

import (
	"sort"
	"strings"
)

// ParseFeatures parses a Key=Val|Key=Val feature string into a map.
// Malformed items (no '=') are skipped. An empty string yields nil.
func ParseFeatures(s string) map[string]string {
	if s == "" {
		return nil
	}

	feats := map[string]string{}
	for _, item := range strings.Split(s, "|") {
		k, v, ok := strings.Cut(item, "=")
		if !ok || k == "" {
			continue
		}
		feats[k] = v
	}

	if len(feats) == 0 {
		return nil
	}

	return feats
}

// JoinFeatures renders a feature map as Key=Val|Key=Val with sorted keys.
func JoinFeatures(feats map[string]string) string {
	if len(feats) == 0 {
		return ""
	}

	keys := make([]string, 0, len(feats))
	for k := range feats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]string, 0, len(keys))
	for _, k := range keys {
		items = append(items, k+"="+feats[k])
	}

	return strings.Join(items, "|")
}
