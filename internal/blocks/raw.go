package blocks

import "strings"

// Raw is one untyped item as produced by the LLM. No invariants hold beyond
// "it was valid JSON": the real payload may be nested one or two levels
// deep, and every field may appear under several different names. All alias
// resolution lives in this file; extraction routines enumerate their
// accepted source names explicitly and never poke at the map directly.
type Raw map[string]any

// stringAt returns the first non-empty string found under keys, in order.
func stringAt(m Raw, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok {
				if t := strings.TrimSpace(s); t != "" {
					return t
				}
			}
		}
	}
	return ""
}

// nestedStringAt resolves values that may be either a plain string or an
// object holding the string under one of innerKeys (e.g. a question that
// arrives as "question": {"text": "..."}).
func nestedStringAt(m Raw, key string, innerKeys ...string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	if inner, ok := toRaw(v); ok {
		return stringAt(inner, innerKeys...)
	}
	return ""
}

// mapAt returns the object under key, if it is one.
func mapAt(m Raw, key string) (Raw, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return toRaw(v)
}

// sliceAt returns the first array found under keys.
func sliceAt(m Raw, keys ...string) []any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if arr, ok := v.([]any); ok && len(arr) > 0 {
				return arr
			}
		}
	}
	return nil
}

// stringsAt flattens the first array under keys into strings. Entries may
// be plain strings or objects carrying the text under a known alias.
func stringsAt(m Raw, keys ...string) []string {
	arr := sliceAt(m, keys...)
	if arr == nil {
		return nil
	}
	var out []string
	for _, v := range arr {
		if s := entryText(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// mapsAt returns the first array of objects under keys.
func mapsAt(m Raw, keys ...string) []Raw {
	arr := sliceAt(m, keys...)
	if arr == nil {
		return nil
	}
	var out []Raw
	for _, v := range arr {
		if r, ok := toRaw(v); ok {
			out = append(out, r)
		}
	}
	return out
}

// intAt returns the first integer-valued number under keys.
func intAt(m Raw, keys ...string) (int, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n), true
		case int:
			return n, true
		}
	}
	return 0, false
}

// boolAt returns the first boolean under keys, accepting "true"/"false"
// strings as well.
func boolAt(m Raw, keys ...string) (bool, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b, true
		case string:
			switch strings.ToLower(strings.TrimSpace(b)) {
			case "true", "yes":
				return true, true
			case "false", "no":
				return false, true
			}
		}
	}
	return false, false
}

// entryText extracts display text from an array entry that may be a string
// or an option-like object.
func entryText(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	if r, ok := toRaw(v); ok {
		return stringAt(r, "text", "label", "value", "option", "name")
	}
	return ""
}

func toRaw(v any) (Raw, bool) {
	switch m := v.(type) {
	case Raw:
		return m, true
	case map[string]any:
		return Raw(m), true
	}
	return nil, false
}
