package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

type rbColor uint8

const (
	black rbColor = iota
	red
)

type rbDirection int8

const (
	dirLeft rbDirection = -1 + iota
	dirRoot
	dirRight
)

type rbNode[K infra.OrderedKey, V any] struct {
	parent *rbNode[K, V]
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	key    K
	val    V
	color  rbColor
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) Left() Node[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K, V]) Right() Node[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K, V]) isRed() bool {
	return node != nil && node.color == red
}

func (node *rbNode[K, V]) isBlack() bool {
	return node == nil || node.color == black
}

func (node *rbNode[K, V]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[K, V]) isLeaf() bool {
	return node != nil && node.parent != nil && node.left == nil && node.right == nil
}

func (node *rbNode[K, V]) direction() rbDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil node without direction")
	}
	if node.isRoot() {
		return dirRoot
	}
	if node == node.parent.left {
		return dirLeft
	}
	return dirRight
}

func (node *rbNode[K, V]) sibling() *rbNode[K, V] {
	switch node.direction() {
	case dirLeft:
		return node.parent.right
	case dirRight:
		return node.parent.left
	default:
	}
	return nil
}

func (node *rbNode[K, V]) hasSibling() bool {
	return !node.isRoot() && node.sibling() != nil
}

func (node *rbNode[K, V]) uncle() *rbNode[K, V] {
	return node.parent.sibling()
}

func (node *rbNode[K, V]) hasUncle() bool {
	return !node.isRoot() && node.parent.hasSibling()
}

func (node *rbNode[K, V]) grandpa() *rbNode[K, V] {
	return node.parent.parent
}

func (node *rbNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K, V]) minimum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K, V]) maximum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *rbNode[K, V]) pred() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}
	aux := x.parent
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *rbNode[K, V]) succ() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}
	aux := x.parent
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// rbTree is a single-writer red-black tree node store. It satisfies
// Store and leaves every navigation beyond Insert/Remove to the layers
// above it.
//
// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. (Optional) The root is black.
type rbTree[K infra.OrderedKey, V any] struct {
	root           *rbNode[K, V]
	count          int64
	isRmBorrowSucc bool
}

func (tree *rbTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K, V]) Root() Node[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K, V]) leftRotate(x *rbNode[K, V]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case dirRoot:
		tree.root = y
	case dirLeft:
		p.left = y
	case dirRight:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K, V]) rightRotate(x *rbNode[K, V]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case dirRoot:
		tree.root = y
	case dirLeft:
		p.left = y
	case dirRight:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// Insert adds the pair or overwrites the value held by an existing
// equal key. An empty tree takes the pair directly as the black root.
func (tree *rbTree[K, V]) Insert(key K, val V) {
	if tree.root == nil {
		tree.root = &rbNode[K, V]{key: key, val: val}
		tree.count = 1
		return
	}

	y := tree.root
	for {
		if key == y.key {
			y.val = val
			return
		}
		if key < y.key {
			if y.left == nil {
				break
			}
			y = y.left
		} else {
			if y.right == nil {
				break
			}
			y = y.right
		}
	}

	z := &rbNode[K, V]{key: key, val: val, color: red, parent: y}
	if key < y.key {
		y.left = z
	} else {
		y.right = z
	}
	tree.count++
	tree.insertRebalance(z)
}

/*
New node X is red by default.

<X> is a RED node, [X] is a BLACK node (or NIL), {X} is either.

im1: X's parent P is black and P is root, nothing to do.
im2: X's parent P is red and P is root, repaint P into black.
im3: P and the uncle U are both red; repaint them black, repaint the
grandpa G red and recurse on G. (red-violation may move upward)
im4: P is red but U is black and X is opposite direction to P; rotate
P toward X's direction, then enter im5 on the old P.
im5: X is the same direction as P; rotate G away from X, repaint P
black and X's new sibling red.
*/
func (tree *rbTree[K, V]) insertRebalance(x *rbNode[K, V]) {
	for x != nil {
		if x.isRoot() {
			if x.isRed() {
				x.color = black
			}
			return
		}

		if x.parent.isBlack() /* im1 */ {
			return
		}

		if x.parent.isRoot() /* im2 */ {
			x.parent.color = black
			return
		}

		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = black
			x.uncle().color = black
			gp := x.grandpa()
			gp.color = red
			x = gp
			continue
		}

		if !x.hasUncle() || x.uncle().isBlack() {
			dir := x.direction()
			if /* im4 */ dir != x.parent.direction() {
				p := x.parent
				switch dir {
				case dirLeft:
					tree.rightRotate(p)
				case dirRight:
					tree.leftRotate(p)
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] insert rebalance violate (im4)")
				}
				x = p // enter im5 to fix
			}

			switch /* im5 */ x.parent.direction() {
			case dirLeft:
				tree.rightRotate(x.grandpa())
			case dirRight:
				tree.leftRotate(x.grandpa())
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert rebalance violate (im5)")
			}

			x.parent.color = black
			x.sibling().color = red
			return
		}
	}
}

/*
r1: Only a root node, unlink it directly.
r2: X carries both children. Borrow X's pred (or succ, by option) to
take over X's slot by swapping key and value, then remove the borrowed
node, which has at most one child.
r3: X is a leaf. A red leaf unlinks directly; a black leaf black-violates
and needs a rebalance before the unlink.
r4: X holds exactly one child; that child must be red (p4), so it
replaces X and is repainted black (or rebalanced when X was black and
the child was not red, which cannot happen on a valid tree).
*/
func (tree *rbTree[K, V]) removeNode(z *rbNode[K, V]) {
	if /* r1 */ z.isRoot() && z.left == nil && z.right == nil {
		tree.root = nil
		return
	}

	y := z
	if /* r2 */ y.left != nil && y.right != nil {
		if tree.isRmBorrowSucc {
			y = z.succ() // enter r3-r4
		} else {
			y = z.pred() // enter r3-r4
		}
		z.key, z.val = y.key, y.val
	}

	if /* r3 */ y.isLeaf() {
		if y.isBlack() {
			tree.removeRebalance(y)
		}
	} else /* r4 */ {
		replace := y.right
		if replace == nil {
			replace = y.left
		}
		if replace == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove a non-leaf node without child, violate (r4)")
		}

		switch y.direction() {
		case dirRoot:
			tree.root = replace
			tree.root.parent = nil
		case dirLeft:
			y.parent.left = replace
			replace.parent = y.parent
		case dirRight:
			y.parent.right = replace
			replace.parent = y.parent
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (r4)")
		}

		if y.isBlack() {
			if replace.isRed() {
				replace.color = black
			} else {
				tree.removeRebalance(replace)
			}
		}
	}

	// Unlink node.
	if !y.isRoot() && y == y.parent.left {
		y.parent.left = nil
	} else if !y.isRoot() && y == y.parent.right {
		y.parent.right = nil
	}
	y.parent = nil
	y.left = nil
	y.right = nil
}

func (tree *rbTree[K, V]) Remove(key K) error {
	if tree.count <= 0 {
		return ErrKeyNotFound
	}
	z := tree.search(key)
	if z == nil {
		return ErrKeyNotFound
	}
	tree.removeNode(z)
	tree.count--
	return nil
}

func (tree *rbTree[K, V]) search(key K) *rbNode[K, V] {
	for aux := tree.root; aux != nil; {
		if key == aux.key {
			return aux
		}
		if key < aux.key {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return nil
}

/*
<X> is a RED node, [X] is a BLACK node (or NIL), {X} is either.
Sc is the nephew on X's side, Sd the nephew on the far side.

rm1: X's sibling S is red, so P, Sc and Sd must be black; rotate P
toward X, repaint S black and P red, then re-take the new sibling.
rm2: P is red while S, Sc and Sd are black; swap the colors of P and S.
rm3: P, S, Sc and Sd are all black; repaint S red to fix p4 locally
and recurse on P.
rm4: S is black, Sc is red and Sd is black; rotate S away from X and
swap the colors of S and Sc, which reduces to rm5.
rm5: S is black and Sd is red; rotate P toward X, S takes P's color,
P and Sd go black.
*/
func (tree *rbTree[K, V]) removeRebalance(x *rbNode[K, V]) {
	for {
		if x.isRoot() {
			return
		}

		sibling := x.sibling()
		dir := x.direction()
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case dirLeft:
				tree.leftRotate(x.parent)
			case dirRight:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm1)")
			}
			sibling.color = black
			x.parent.color = red // ready to enter rm2
			sibling = x.sibling()
		}

		var sc, sd *rbNode[K, V]
		switch dir {
		case dirLeft:
			sc, sd = sibling.left, sibling.right
		case dirRight:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ x.parent.isRed() {
				sibling.color = red
				x.parent.color = black
				break
			}
			/* rm3 */
			sibling.color = red
			x = x.parent
			continue
		}

		if /* rm4 */ sc.isRed() {
			switch dir {
			case dirLeft:
				tree.rightRotate(sibling)
			case dirRight:
				tree.leftRotate(sibling)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
			}
			sc.color = black
			sibling.color = red
			sibling = x.sibling()
			switch dir {
			case dirLeft:
				sd = sibling.right
			case dirRight:
				sd = sibling.left
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
			}
		}

		switch /* rm5 */ dir {
		case dirLeft:
			tree.leftRotate(x.parent)
		case dirRight:
			tree.rightRotate(x.parent)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm5)")
		}
		sibling.color = x.parent.color
		x.parent.color = black
		if sd != nil {
			sd.color = black
		}
		break
	}
}

func (tree *rbTree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
}

type RBTreeOpt[K infra.OrderedKey, V any] func(*rbTree[K, V])

// WithRBTreeRemoveBorrowSucc lets a two-child removal borrow the
// in-order successor instead of the predecessor.
func WithRBTreeRemoveBorrowSucc[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isRmBorrowSucc = true
	}
}

func NewRBTree[K infra.OrderedKey, V any](opts ...RBTreeOpt[K, V]) Store[K, V] {
	tree := &rbTree[K, V]{}
	for _, o := range opts {
		o(tree)
	}
	return tree
}
