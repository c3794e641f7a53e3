package renderer

import "sort"

// Node is one generic JSON object from an upstream response tree.
type Node map[string]any

// AsNode converts a decoded JSON value to a Node, or nil when it is not an object.
func AsNode(v any) Node {
	if m, ok := v.(map[string]any); ok {
		return Node(m)
	}
	return nil
}

// Obj returns the object stored under key, or nil.
func (n Node) Obj(key string) Node {
	if n == nil {
		return nil
	}
	return AsNode(n[key])
}

// Arr returns the array stored under key, or nil.
func (n Node) Arr(key string) []any {
	if n == nil {
		return nil
	}
	if a, ok := n[key].([]any); ok {
		return a
	}
	return nil
}

// Str returns the string stored under key, or "".
func (n Node) Str(key string) string {
	if n == nil {
		return ""
	}
	if s, ok := n[key].(string); ok {
		return s
	}
	return ""
}

// At descends through nested objects along path, returning nil as soon as a
// step is missing or not an object.
func (n Node) At(path ...string) Node {
	cur := n
	for _, key := range path {
		cur = cur.Obj(key)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// StrAt descends through nested objects and returns the string leaf at the
// final path element, or "".
func (n Node) StrAt(path ...string) string {
	if len(path) == 0 {
		return ""
	}
	return n.At(path[:len(path)-1]...).Str(path[len(path)-1])
}

// Tagged pairs a renderer-kind tag with the node stored under it.
type Tagged struct {
	Tag  string
	Node Node
}

// Collect walks the tree depth-first and returns every object stored under
// one of the given tags, wherever it is embedded. Matched nodes are not
// descended into. Arrays preserve document order and map keys are visited in
// sorted order, so the result is deterministic for a given tree.
func Collect(root Node, tags ...string) []Tagged {
	tagset := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagset[t] = true
	}

	var found []Tagged
	var walk func(v any)
	walk = func(v any) {
		switch val := v.(type) {
		case map[string]any:
			keys := make([]string, 0, len(val))
			for k := range val {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if tagset[k] {
					if n := AsNode(val[k]); n != nil {
						found = append(found, Tagged{Tag: k, Node: n})
						continue
					}
				}
				walk(val[k])
			}
		case []any:
			for _, item := range val {
				walk(item)
			}
		}
	}
	walk(map[string]any(root))

	return found
}
