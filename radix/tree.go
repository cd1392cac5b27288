package radix

import (
	"io"
	"strings"
)

// Tree is a prefix-search index of words.
type Tree struct {
	roots fan
	size  int
}

// New returns a new Tree optionally filled with the given words.
func New(words ...string) *Tree {
	tree := &Tree{}
	tree.InsertAll(words)

	return tree
}

// Accepts reports whether a word passes the filter applied by Insert and Search:
// it must be non-empty and must not contain a space.
func Accepts(word string) bool {
	return word != "" && !strings.Contains(word, " ")
}

// Len returns the number of distinct words in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Insert adds a word to the tree. Words rejected by Accepts are skipped silently.
func (t *Tree) Insert(word string) {
	if !Accepts(word) {
		return
	}

	key := keyOf(word)

	root := t.roots.get(key)
	if root == nil {
		t.roots.put(key, newLeaf(word))
		t.size++

		return
	}

	if root.split(word) {
		t.size++
	}
}

// InsertAll adds the words in order.
func (t *Tree) InsertAll(words []string) {
	for _, word := range words {
		t.Insert(word)
	}
}

// Search returns all the words starting with query in ascending byte order.
// A query rejected by Accepts yields no hints.
func (t *Tree) Search(query string) []string {
	if !Accepts(query) {
		return nil
	}

	root := t.roots.get(keyOf(query))
	if root == nil {
		return nil
	}

	return root.traverse("", query, nil)
}

// Contains reports whether the exact word is in the tree.
func (t *Tree) Contains(word string) bool {
	if !Accepts(word) {
		return false
	}

	root := t.roots.get(keyOf(word))

	return root != nil && root.find(word)
}

// Words returns every word in the tree in ascending byte order.
func (t *Tree) Words() []string {
	words := make([]string, 0, t.size)

	t.roots.each(func(_ Key, root *node) {
		words = root.collect("", words)
	})

	return words
}

// Dump writes an indented outline of the tree structure.
func (t *Tree) Dump(w io.Writer) {
	t.roots.each(func(k Key, root *node) {
		root.dump(w, k.String()+":", "")
	})
}
