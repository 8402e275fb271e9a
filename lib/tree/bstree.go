package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

type bsNode[K infra.OrderedKey, V any] struct {
	left  *bsNode[K, V]
	right *bsNode[K, V]
	key   K
	val   V
}

func (node *bsNode[K, V]) Key() K {
	return node.key
}

func (node *bsNode[K, V]) Val() V {
	return node.val
}

func (node *bsNode[K, V]) Left() Node[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bsNode[K, V]) Right() Node[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// bsTree is a plain, unbalanced binary search tree node store. Its
// shape degrades to a list under sorted insertion, which makes it a
// useful worst-case store for exercising shape-agnostic layers.
type bsTree[K infra.OrderedKey, V any] struct {
	root  *bsNode[K, V]
	count int64
}

func (tree *bsTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *bsTree[K, V]) Root() Node[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *bsTree[K, V]) Insert(key K, val V) {
	link := &tree.root
	for *link != nil {
		aux := *link
		if key == aux.key {
			aux.val = val
			return
		}
		if key < aux.key {
			link = &aux.left
		} else {
			link = &aux.right
		}
	}
	*link = &bsNode[K, V]{key: key, val: val}
	tree.count++
}

func (tree *bsTree[K, V]) Remove(key K) error {
	link := &tree.root
	for *link != nil && (*link).key != key {
		if key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	aux := *link
	if aux == nil {
		return ErrKeyNotFound
	}

	if aux.left != nil && aux.right != nil {
		// Splice the in-order predecessor into the removed slot.
		predLink := &aux.left
		for (*predLink).right != nil {
			predLink = &(*predLink).right
		}
		pred := *predLink
		aux.key, aux.val = pred.key, pred.val
		*predLink = pred.left
	} else if aux.left != nil {
		*link = aux.left
	} else {
		*link = aux.right
	}
	tree.count--
	return nil
}

func (tree *bsTree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
}

func NewBSTree[K infra.OrderedKey, V any]() Store[K, V] {
	return &bsTree[K, V]{}
}
