package ast

// Value lowers the node into the generic shape produced by encoding/json:
// map[string]any, []any, string, float64, bool or nil.
func (n *Node) Value() any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindObject:
		m := make(map[string]any, len(n.Props))
		for _, p := range n.Props {
			m[p.Name] = p.Value.Value()
		}
		return m
	case KindArray:
		out := make([]any, len(n.Elems))
		for i, e := range n.Elems {
			out[i] = e.Value()
		}
		return out
	case KindString:
		return n.Text
	case KindNumber:
		return n.Number
	case KindTrue:
		return true
	case KindFalse:
		return false
	default:
		return nil
	}
}
