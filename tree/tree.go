package tree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"lectio/word"
)

// ErrNoParse marks sentences without dependency annotation: the
// pipeline that produced them has no parsing stage.
var ErrNoParse = errors.New("sentence has no dependency annotation")

// Node is one word with its dependents.
type Node struct {
	Word     word.Word
	Children []*Node
}

// Tree is the dependency structure of a single sentence.
type Tree struct {
	Root *Node
}

// New builds the dependency tree of a sentence from the governor links
// of its words. It fails with ErrNoParse when any word lacks a relation
// label, and with a plain error for structurally broken annotation
// (no root, several roots, governor out of range, unreachable words).
func New(s word.Sentence) (*Tree, error) {
	if len(s.Words) == 0 {
		return nil, errors.New("empty sentence")
	}

	nodes := make([]*Node, len(s.Words))
	for i, w := range s.Words {
		if w.Dep == "" {
			return nil, fmt.Errorf("%w: %q", ErrNoParse, w.Text)
		}
		nodes[i] = &Node{Word: w}
	}

	var root *Node
	for i, w := range s.Words {
		if w.Dep == "root" || w.Governor < 0 {
			if root != nil {
				return nil, fmt.Errorf("multiple roots: %q and %q", root.Word.Text, w.Text)
			}
			root = nodes[i]
			continue
		}

		if w.Governor >= len(s.Words) || w.Governor == i {
			return nil, fmt.Errorf("governor out of range for %q: %d", w.Text, w.Governor)
		}
		parent := nodes[w.Governor]
		parent.Children = append(parent.Children, nodes[i])
	}

	if root == nil {
		return nil, errors.New("no root word")
	}

	if n := count(root); n != len(s.Words) {
		return nil, fmt.Errorf("cyclic annotation: %d of %d words reachable from root", n, len(s.Words))
	}

	return &Tree{Root: root}, nil
}

func count(n *Node) int {
	total := 1
	for _, c := range n.Children {
		total += count(c)
	}

	return total
}

// Print writes the tree in indented form, one word per line:
//
//	root | appellantur/VERB
//	  nsubj | Galli/PROPN
func (t *Tree) Print(w io.Writer) {
	printNode(w, t.Root, 0)
}

func printNode(w io.Writer, n *Node, depth int) {
	fmt.Fprintf(w, "%s%s | %s/%s\n", strings.Repeat("  ", depth), n.Word.Dep, n.Word.Text, n.Word.UPos)
	for _, c := range n.Children {
		printNode(w, c, depth+1)
	}
}

// String renders the tree as Print would.
func (t *Tree) String() string {
	var b strings.Builder
	t.Print(&b)
	return b.String()
}
