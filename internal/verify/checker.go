package verify

import (
	"fmt"

	"localelint/internal/document"
)

// Check walks path through tree left to right and returns the string leaf.
// The first segment that cannot be resolved yields a single MissingKey
// finding; a leaf that is not a string yields a single TypeMismatch.
func Check(id string, tree *document.Node, path KeyPath) (string, *Finding) {
	current := tree
	for i, key := range path {
		if !current.IsMapping() {
			parent := "document root"
			if i > 0 {
				parent = fmt.Sprintf("%q", path[i-1])
			}
			return "", &Finding{
				Document: id,
				Kind:     KindMissingKey,
				Key:      key,
				Message:  fmt.Sprintf("missing key %q in path %s (%s is a %s, not a mapping)", key, path, parent, current.TypeName()),
			}
		}
		next, ok := current.Get(key)
		if !ok {
			return "", &Finding{
				Document: id,
				Kind:     KindMissingKey,
				Key:      key,
				Message:  fmt.Sprintf("missing key %q in path %s", key, path),
			}
		}
		current = next
	}

	if !current.IsString() {
		return "", &Finding{
			Document: id,
			Kind:     KindTypeMismatch,
			Key:      lastKey(path),
			Message:  fmt.Sprintf("value at %s is a %s, expected a string", path, current.TypeName()),
		}
	}
	return current.Value, nil
}

func lastKey(path KeyPath) string {
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}
