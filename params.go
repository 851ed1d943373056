package retroterm

import "strings"

// Params holds query-string parameters in order of appearance.
type Params struct {
	pairs [][2]string
}

// ParseQuery parses a "key=value&key=value" query string into a Params
// lookup. A leading '?' is tolerated; empty pairs and empty keys are
// skipped. Values are taken literally, without percent-decoding.
func ParseQuery(raw string) Params {
	raw = strings.TrimPrefix(raw, "?")
	var p Params
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		p.pairs = append(p.pairs, [2]string{key, value})
	}
	return p
}

// Get returns the first value recorded for key, or "" when absent.
func (p Params) Get(key string) string {
	for _, pair := range p.pairs {
		if pair[0] == key {
			return pair[1]
		}
	}
	return ""
}
