package radix

import (
	"fmt"
	"io"
	"strings"
)

// node owns one compressed segment of the tree: text is the longest prefix shared
// by every word below it. A leaf holds the final suffix of exactly one word.
type node struct {
	text string
	kids fan
}

func newLeaf(text string) *node {
	return &node{text: text}
}

// newEnd returns an end-of-word marker: empty text, no children.
func newEnd() *node {
	return &node{}
}

// isWord reports whether the path ending at this node's text is a stored word.
func (n *node) isWord() bool {
	return n.kids.len() == 0 || n.kids.end != nil
}

// split merges text into the subtree, splitting this node where they diverge.
// The text must share at least its first byte with n.text.
// It returns whether a new word was recorded.
func (n *node) split(text string) bool {
	if text == n.text {
		if n.isWord() {
			return false
		}
		// a pure branching point becomes a word by itself
		n.kids.put(Terminator, newEnd())
		return true
	}

	common := commonPrefix(text, n.text)
	if common == "" {
		panic(fmt.Sprintf("radix: split of %q with unrelated text %q", n.text, text))
	}

	var (
		oldRest = n.text[len(common):]
		newRest = text[len(common):]
	)

	if oldRest == "" {
		// n.text is the common prefix; a leaf used to end a word here
		if n.kids.len() == 0 {
			n.kids.put(Terminator, newEnd())
		}
	} else {
		// move the whole subtree under the old remainder
		moved := &node{text: oldRest, kids: n.kids}
		n.kids = fan{}
		n.kids.put(keyOf(oldRest), moved)
	}

	added := true

	if newRest == "" {
		n.kids.put(Terminator, newEnd())
	} else if child := n.kids.get(keyOf(newRest)); child != nil {
		added = child.split(newRest)
	} else {
		n.kids.put(keyOf(newRest), newLeaf(newRest))
	}

	n.text = common

	return added
}

// collect appends every word of the subtree to out, each prefixed with prefix.
func (n *node) collect(prefix string, out []string) []string {
	word := prefix + n.text

	if n.kids.len() == 0 {
		out = append(out, word)
	}

	n.kids.each(func(_ Key, child *node) {
		out = child.collect(word, out)
	})

	return out
}

// traverse descends along rest (the part of a query not matched yet) and collects
// the subtree that the whole query leads into. matched is the part of the query
// consumed by the ancestors.
func (n *node) traverse(matched, rest string, out []string) []string {
	if strings.HasPrefix(n.text, rest) {
		return n.collect(matched, out)
	}

	if len(n.text) < len(rest) && strings.HasPrefix(rest, n.text) {
		rest = rest[len(n.text):]

		if child := n.kids.get(keyOf(rest)); child != nil {
			return child.traverse(matched+n.text, rest, out)
		}
	}

	return out
}

// find reports whether word is stored in the subtree.
func (n *node) find(word string) bool {
	for cur := n; cur != nil; {
		if !strings.HasPrefix(word, cur.text) {
			return false
		}

		word = word[len(cur.text):]
		if word == "" {
			return cur.isWord()
		}

		cur = cur.kids.get(keyOf(word))
	}

	return false
}

func (n *node) dump(w io.Writer, tag string, indent string) {
	switch {
	case n.text == "" && n.kids.len() == 0:
		fmt.Fprintf(w, "%s%s END\n", indent, tag)
	case n.kids.len() == 0:
		fmt.Fprintf(w, "%s%s LEAF %q\n", indent, tag, n.text)
	default:
		fmt.Fprintf(w, "%s%s NODE %q\n", indent, tag, n.text)
	}

	n.kids.each(func(k Key, child *node) {
		child.dump(w, k.String()+":", indent+"  ")
	})
}

// commonPrefix returns the longest common prefix of a and b.
func commonPrefix(a, b string) string {
	size := min(len(a), len(b))

	idx := 0
	for ; idx < size && a[idx] == b[idx]; idx++ {
	}

	return a[:idx]
}
