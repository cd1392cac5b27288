package radix

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoWords = []string{"cat", "car", "carpet", "cactus", "java", "javascript", "internet"}

func TestNew(t *testing.T) {
	t.Parallel()

	tree := New()

	require.NotNil(t, tree)
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Search("a"))
	assert.Empty(t, tree.Words())
}

func TestAccepts(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Word string
		Exp  bool
	}{
		{"", false},
		{" ", false},
		{"a b", false},
		{"car ", false},
		{" car", false},
		{"car", true},
		{"car\tpet", true},
		{"\x00", true},
		{"Абвгд", true},
	} {
		assert.Equal(t, tcase.Exp, Accepts(tcase.Word), "%#v", tcase.Word)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tree := New(demoWords...)

	for _, tcase := range []*struct {
		Query string
		Exp   []string
	}{
		{"ca", []string{"cat", "car", "carpet", "cactus"}},
		{"car", []string{"car", "carpet"}},
		{"internet", []string{"internet"}},
		{"xyz", nil},
		{"j", []string{"java", "javascript"}},
		{"c", []string{"cat", "car", "carpet", "cactus"}},
		{"crr", nil},
		{"cats", nil},
		{"carp", []string{"carpet"}},
		{"javas", []string{"javascript"}},
		{"internets", nil},
		{"", nil},
		{"ca t", nil},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#v", tcase.Query)
		)

		t.Run(name, func(t *testing.T) {
			hints := tree.Search(tcase.Query)

			assert.ElementsMatch(t, tcase.Exp, hints)
		})
	}
}

func TestSearch_Order(t *testing.T) {
	t.Parallel()

	tree := New(demoWords...)

	assert.Equal(t, []string{"cactus", "car", "carpet", "cat"}, tree.Search("ca"))
	assert.Equal(t, []string{"cactus", "car", "carpet", "cat", "internet", "java", "javascript"}, tree.Words())
}

func TestSearch_Filter(t *testing.T) {
	t.Parallel()

	tree := New(demoWords...)
	tree.Insert("a b")

	for _, query := range []string{"", " ", "a b", "ca ", " ca"} {
		assert.Empty(t, tree.Search(query), "%#v", query)
	}
}

func TestSearch_NoFalsePositives(t *testing.T) {
	t.Parallel()

	tree := New("abxy", "abz")

	assert.Empty(t, tree.Search("axy"))
	assert.Empty(t, tree.Search("abzz"))
	assert.Equal(t, []string{"abxy"}, tree.Search("abx"))
	assert.Equal(t, []string{"abxy", "abz"}, tree.Search("a"))
}

func TestSearch_UTF8(t *testing.T) {
	t.Parallel()

	tree := New("Абвгд", "Абвгдеё", "Абрикос", "Банан")

	assert.Equal(t, []string{"Абвгд", "Абвгдеё", "Абрикос"}, tree.Search("Аб"))
	assert.Equal(t, []string{"Абвгд", "Абвгдеё"}, tree.Search("Абв"))
	assert.Equal(t, []string{"Банан"}, tree.Search("Б"))
	assert.Empty(t, tree.Search("Аг"))
}

func TestInsert_Filter(t *testing.T) {
	t.Parallel()

	tree := New("", " ", "a b", "hello world")

	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Words())
}

func TestInsert_Len(t *testing.T) {
	t.Parallel()

	tree := New()

	for _, tcase := range []*struct {
		Word   string
		ExpLen int
	}{
		{"car", 1},
		{"car", 1},
		{"cat", 2},
		{"ca", 3},
		{"ca", 3},
		{"carpet", 4},
		{"car", 4},
		{"a b", 4},
		{"", 4},
		{"c", 5},
		{"internet", 6},
	} {
		tree.Insert(tcase.Word)

		assert.Equal(t, tcase.ExpLen, tree.Len(), tcase.Word)
	}
}

func TestInsert_BranchSplit(t *testing.T) {
	t.Parallel()

	const exp = `c: NODE "ca"
  r: LEAF "r"
  t: LEAF "t"
`

	tree := New("car", "cat")

	assert.Equal(t, exp, dumpString(tree))

	tree.Insert("car")

	assert.Equal(t, exp, dumpString(tree))
}

func TestInsert_Idempotent(t *testing.T) {
	t.Parallel()

	var (
		once  = New(demoWords...)
		twice = New(demoWords...)
	)

	twice.InsertAll(demoWords)

	assert.Equal(t, dumpString(once), dumpString(twice))
	assert.Equal(t, once.Len(), twice.Len())

	for _, word := range demoWords {
		for i := 1; i <= len(word); i++ {
			assert.Equal(t, once.Search(word[:i]), twice.Search(word[:i]))
		}
	}
}

func TestInsert_Order(t *testing.T) {
	t.Parallel()

	for _, words := range [][]string{
		{"ca", "car", "carpet"},
		{"ca", "carpet", "car"},
		{"car", "ca", "carpet"},
		{"car", "carpet", "ca"},
		{"carpet", "ca", "car"},
		{"carpet", "car", "ca"},
	} {
		var (
			words = words
			name  = strings.Join(words, ",")
		)

		t.Run(name, func(t *testing.T) {
			tree := New(words...)

			assert.Equal(t, 3, tree.Len())
			assert.Equal(t, []string{"ca", "car", "carpet"}, tree.Search("c"))
			assert.Equal(t, []string{"car", "carpet"}, tree.Search("car"))
			assert.Equal(t, []string{"carpet"}, tree.Search("carp"))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tree := New(demoWords...)
	tree.Insert("ca")

	for _, tcase := range []*struct {
		Word string
		Exp  bool
	}{
		{"cat", true},
		{"car", true},
		{"carpet", true},
		{"cactus", true},
		{"ca", true},
		{"java", true},
		{"javascript", true},
		{"internet", true},
		{"c", false},
		{"carp", false},
		{"javas", false},
		{"internets", false},
		{"xyz", false},
		{"", false},
		{"c a", false},
	} {
		assert.Equal(t, tcase.Exp, tree.Contains(tcase.Word), "%#v", tcase.Word)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	tree := New(demoWords...)

	assert.Equal(t, `c: NODE "ca"
  c: LEAF "ctus"
  r: NODE "r"
    $: END
    p: LEAF "pet"
  t: LEAF "t"
i: LEAF "internet"
j: NODE "java"
  $: END
  s: LEAF "script"
`, dumpString(tree))
}

func TestFakeData(t *testing.T) {
	t.Parallel()

	const (
		total  = 5_000
		sample = 300
		seed   = 1234567890
	)

	var (
		tree  = New()
		state = map[string]struct{}{}
		fake  = gofakeit.New(seed)
		words []string
	)

	for i := 0; i < total; i++ {
		word := fake.Word()
		if i%3 == 0 {
			word += fake.Word()
		}

		tree.Insert(word)

		if Accepts(word) {
			if _, ok := state[word]; !ok {
				words = append(words, word)
			}
			state[word] = struct{}{}
		}
	}

	require.Equal(t, len(state), tree.Len())

	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	assert.Equal(t, sorted, tree.Words())

	// round trip
	for word := range state {
		assert.Contains(t, tree.Search(word), word)
		assert.True(t, tree.Contains(word), word)
	}

	// prefix completeness and no false positives
	for _, word := range words[:min(sample, len(words))] {
		for i := 1; i <= len(word); i++ {
			var (
				query = word[:i]
				exp   []string
			)

			for _, w := range sorted {
				if strings.HasPrefix(w, query) {
					exp = append(exp, w)
				}
			}

			assert.Equal(t, exp, tree.Search(query), query)
		}
	}
}

func dumpString(tree *Tree) string {
	var b strings.Builder

	tree.Dump(&b)

	return b.String()
}
