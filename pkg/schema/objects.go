package schema

import "fmt"

// ObjectNamer looks up object type names by index.
type ObjectNamer interface {
	ObjectTypeName(index int) (string, error)
}

// ResolveObjects translates object type indices into names, index for index.
// Order and duplicates are preserved.
func ResolveObjects(indices []int, namer ObjectNamer) ([]string, error) {
	names := make([]string, 0, len(indices))
	for _, idx := range indices {
		name, err := namer.ObjectTypeName(idx)
		if err != nil {
			return nil, fmt.Errorf("allowed object type %d: %w", idx, err)
		}
		names = append(names, name)
	}
	return names, nil
}
