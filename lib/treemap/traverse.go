package treemap

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

//go:generate stringer -type=TraverseOrder
type TraverseOrder int8

const (
	InOrder TraverseOrder = iota
	PreOrder
	PostOrder
)

type traverseFrame[K infra.OrderedKey, V any] struct {
	node    tree.Node[K, V]
	visited bool
}

// Foreach visits every pair in the chosen order and stops early when
// action returns false. The walk runs on an explicit stack; frames are
// re-pushed with a visited mark instead of recursing.
func (m *TreeMap[K, V]) Foreach(order TraverseOrder, action func(key K, val V) bool) {
	root := m.store.Root()
	if root == nil {
		return
	}

	stack := make([]traverseFrame[K, V], 0, m.store.Len()>>1)
	stack = append(stack, traverseFrame[K, V]{node: root})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			continue
		}
		if f.visited {
			if !action(f.node.Key(), f.node.Val()) {
				return
			}
			continue
		}
		// Pushed in reverse of the processing sequence.
		switch order {
		case PreOrder:
			stack = append(stack, traverseFrame[K, V]{node: f.node.Right()})
			stack = append(stack, traverseFrame[K, V]{node: f.node.Left()})
			stack = append(stack, traverseFrame[K, V]{node: f.node, visited: true})
		case PostOrder:
			stack = append(stack, traverseFrame[K, V]{node: f.node, visited: true})
			stack = append(stack, traverseFrame[K, V]{node: f.node.Right()})
			stack = append(stack, traverseFrame[K, V]{node: f.node.Left()})
		default: // InOrder
			stack = append(stack, traverseFrame[K, V]{node: f.node.Right()})
			stack = append(stack, traverseFrame[K, V]{node: f.node, visited: true})
			stack = append(stack, traverseFrame[K, V]{node: f.node.Left()})
		}
	}
}
