package tree

import (
	"errors"

	"github.com/benz9527/xtree/lib/infra"
)

// rbtree rule validation utilities, only exercised by tests.

func blackDepthTo[K infra.OrderedKey, V any](target, to *rbNode[K, V]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.parent {
		if aux.isBlack() {
			depth++
		}
	}
	return depth
}

// Inorder traversal to validate that no red node carries a red child (p3).
func redViolationValidate[K infra.OrderedKey, V any](tree *rbTree[K, V]) error {
	size := tree.count
	aux := tree.root
	if size <= 0 || aux == nil {
		return nil
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; aux.isRed() {
			if aux.parent.isRed() || aux.left.isRed() || aux.right.isRed() {
				return errors.New("rbtree red violation")
			}
		}
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// Every node missing a child hangs a nil leaf directly, so equal black
// depth to all of them is equivalent to equal black depth on every
// root-to-nil path (p4).
func blackViolationValidate[K infra.OrderedKey, V any](tree *rbTree[K, V]) error {
	if tree.root == nil {
		return nil
	}

	queue := []*rbNode[K, V]{tree.root}
	depth := -1
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		if aux.left == nil || aux.right == nil {
			d := blackDepthTo(aux, nil)
			if depth < 0 {
				depth = d
			} else if d != depth {
				return errors.New("rbtree black violation")
			}
		}
		if aux.left != nil {
			queue = append(queue, aux.left)
		}
		if aux.right != nil {
			queue = append(queue, aux.right)
		}
	}
	return nil
}
