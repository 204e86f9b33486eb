package artifact

import "maps"

// copyProperties returns an owned copy of props, never nil.
func copyProperties(props map[string]string) map[string]string {
	if len(props) == 0 {
		return map[string]string{}
	}
	return maps.Clone(props)
}

// mergeProperties overlays dominant on top of recessive.
func mergeProperties(dominant, recessive map[string]string) map[string]string {
	if len(dominant) == 0 && len(recessive) == 0 {
		return map[string]string{}
	}
	merged := make(map[string]string, len(dominant)+len(recessive))
	maps.Copy(merged, recessive)
	maps.Copy(merged, dominant)
	return merged
}

// sameProperties reports whether replacing current with next is a no-op. A
// nil next is treated as the empty set.
func sameProperties(current, next map[string]string) bool {
	if len(current) == 0 && len(next) == 0 {
		return true
	}
	return maps.Equal(current, next)
}

func lookupProperty(props map[string]string, key, defaultValue string) string {
	if v, ok := props[key]; ok {
		return v
	}
	return defaultValue
}
