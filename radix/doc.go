// Package radix defines a compressed prefix tree (radix tree) answering which
// stored words begin with a query.
//
// A Tree keeps one root node per distinct first byte. Each node stores the
// longest common prefix of the words below it and a fan of children keyed by
// the next byte. A node with no children holds the last part of exactly one
// word. A node that is both a complete word and a prefix of longer words has
// an extra child under the Terminator key: an empty marker with no children.
//
// Example tree:
// ------------
//
//	c: [ca] --+-- c: LEAF "ctus"
//	          |
//	          +-- r: [r] --+-- $: END
//	          |            |
//	          |            `-- p: LEAF "pet"
//	          |
//	          `-- t: LEAF "t"
//
//	i: LEAF "internet"
//
// The tree above contains the following words:
//
//   - "car"
//   - "carpet"
//   - "cactus"
//   - "cat"
//   - "internet"
//
// Words are compared byte by byte, so UTF-8 text works without any
// normalization. Empty words and words containing a space are ignored by
// both Insert and Search.
//
// A Tree is not safe for concurrent use.
package radix
