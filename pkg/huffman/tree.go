package huffman

import "fmt"

/*** ---------- Tree ---------- ***/

// NodeID addresses a node inside a Tree.
type NodeID int

const noNode NodeID = -1

type node struct {
	freq        int
	symbol      rune
	leaf        bool
	left, right NodeID
}

// Tree is a Huffman tree stored as an arena. Leaves carry a symbol,
// internal nodes carry exactly two children and the sum of their
// frequencies.
type Tree struct {
	nodes []node
	root  NodeID
}

// Build runs the greedy merge over freqs and returns the resulting tree.
//
// Leaves enter the heap in ascending symbol order. Each round extracts x then
// y, and the new internal node gets x on the left and y on the right. Both
// orders, together with the heap's tie-break, fix the exact codes.
func Build(freqs Frequencies) (*Tree, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyAlphabet
	}
	symbols := freqs.Symbols()
	t := &Tree{nodes: make([]node, 0, 2*len(symbols)-1), root: noNode}
	h := NewHeap[NodeID, int]()

	for _, r := range symbols {
		f := freqs[r]
		if f <= 0 {
			return nil, fmt.Errorf("symbol %q has frequency %d: %w", r, f, ErrInvalidFrequency)
		}
		if err := h.Insert(t.add(node{freq: f, symbol: r, leaf: true, left: noNode, right: noNode}), f); err != nil {
			return nil, err
		}
	}

	for h.Len() > 1 {
		x, err := h.ExtractMin()
		if err != nil {
			return nil, err
		}
		y, err := h.ExtractMin()
		if err != nil {
			return nil, err
		}
		f := t.nodes[x].freq + t.nodes[y].freq
		if err := h.Insert(t.add(node{freq: f, left: x, right: y}), f); err != nil {
			return nil, err
		}
	}

	root, err := h.ExtractMin()
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *Tree) add(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes, leaves included.
func (t *Tree) Len() int { return len(t.nodes) }

// Weight returns the frequency of the root, i.e. the number of symbols the
// tree was built from.
func (t *Tree) Weight() int { return t.nodes[t.root].freq }

func (t *Tree) IsLeaf(id NodeID) bool { return t.nodes[id].leaf }

func (t *Tree) Freq(id NodeID) int { return t.nodes[id].freq }

// Symbol returns the symbol of a leaf; ok is false for internal nodes.
func (t *Tree) Symbol(id NodeID) (r rune, ok bool) {
	n := t.nodes[id]
	return n.symbol, n.leaf
}

// Children returns the left and right child of an internal node; ok is false
// for leaves.
func (t *Tree) Children(id NodeID) (l, r NodeID, ok bool) {
	n := t.nodes[id]
	if n.leaf {
		return noNode, noNode, false
	}
	return n.left, n.right, true
}

// child follows one bit from id. It returns noNode when there is no such
// child.
func (t *Tree) child(id NodeID, bit byte) NodeID {
	n := t.nodes[id]
	if n.leaf {
		return noNode
	}
	if bit == '0' {
		return n.left
	}
	return n.right
}
