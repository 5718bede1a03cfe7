package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDot(t *testing.T) {
	root := buildFrom(t, "abracadabra")

	var sb strings.Builder
	n, err := WriteDot(&sb, root)
	require.NoError(t, err)

	want := strings.Join([]string{
		"graph TREE {\n",
		"\"0_11\" -- \"4_6\";\n",
		"\"0_11\" -- \"97_a\";\n",
		"\"4_6\" -- \"5_4\";\n",
		"\"4_6\" -- \"98_b\";\n",
		"\"5_4\" -- \"114_r\";\n",
		"\"5_4\" -- \"6_2\";\n",
		"\"6_2\" -- \"99_c\";\n",
		"\"6_2\" -- \"100_d\";\n",
		"}\n",
	}, "")
	require.Equal(t, want, sb.String())
	require.Equal(t, int64(len(want)), n)
}

func TestWriteDot_Empty(t *testing.T) {
	var sb strings.Builder
	_, err := WriteDot(&sb, nil)
	require.NoError(t, err)
	require.Equal(t, "graph TREE {\n}\n", sb.String())
}

func TestWriteTree(t *testing.T) {
	root := buildFrom(t, "abracadabra")

	var sb strings.Builder
	_, err := WriteTree(&sb, root)
	require.NoError(t, err)

	want := strings.Join([]string{
		" Ø(11)\n",
		"- Ø(6)\n",
		"-- Ø(4)\n",
		"--- 'r' -> 114 (2) <000>\n",
		"--- Ø(2)\n",
		"---- 'c' -> 99 (1) <0010>\n",
		"---- 'd' -> 100 (1) <0011>\n",
		"-- 'b' -> 98 (2) <01>\n",
		"- 'a' -> 97 (5) <1>\n",
	}, "")
	require.Equal(t, want, sb.String())
}

func TestEntry_String(t *testing.T) {
	require.Equal(t, "'a' -> 97 (5)", NewLeaf('a', 5).String())
	require.Equal(t, "Ø(11)", NewPlaceholder(11).String())

	sym, ok := NewPlaceholder(3).Symbol()
	require.False(t, ok)
	require.Zero(t, sym)
}
