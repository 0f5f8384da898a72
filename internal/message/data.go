package message

// Lookup walks a nested map by key path. Any missing key or non-map
// intermediate value ends the walk with ok=false; malformed payloads never
// panic here.
func Lookup(data map[string]any, path ...string) (any, bool) {
	if data == nil || len(path) == 0 {
		return nil, false
	}

	current := any(data)
	for _, key := range path {
		node, isMap := current.(map[string]any)
		if !isMap {
			return nil, false
		}
		next, exists := node[key]
		if !exists {
			return nil, false
		}
		current = next
	}
	return current, true
}

// LookupMap returns the map at the key path, or nil when absent or of a
// different type.
func LookupMap(data map[string]any, path ...string) map[string]any {
	value, ok := Lookup(data, path...)
	if !ok {
		return nil
	}
	node, isMap := value.(map[string]any)
	if !isMap {
		return nil
	}
	return node
}

// LookupString returns the string at the key path, or "" when absent.
func LookupString(data map[string]any, path ...string) string {
	value, ok := Lookup(data, path...)
	if !ok {
		return ""
	}
	text, isString := value.(string)
	if !isString {
		return ""
	}
	return text
}

// LookupSlice returns the array at the key path, or nil when absent.
func LookupSlice(data map[string]any, path ...string) []any {
	value, ok := Lookup(data, path...)
	if !ok {
		return nil
	}
	items, isSlice := value.([]any)
	if !isSlice {
		return nil
	}
	return items
}
