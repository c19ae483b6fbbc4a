package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(`
name: demo
steps:
  - op: set
    args: [who, world]
  - op: say
    args: [hello, $who]
  - steps:
      - op: add
        args: [count, 1]
`))
	require.NoError(t, err)

	assert.Equal(t, "demo", script.Name)
	require.Len(t, script.Steps, 3)
	assert.Equal(t, "set", script.Steps[0].Op)
	assert.Equal(t, []any{"who", "world"}, script.Steps[0].Args)
	require.Len(t, script.Steps[2].Steps, 1)
	assert.Equal(t, "add", script.Steps[2].Steps[0].Op)
}

func TestParseScript_GroupOpAllowed(t *testing.T) {
	script, err := ParseScript([]byte(`
steps:
  - op: group
    steps:
      - op: say
        args: [hi]
`))
	require.NoError(t, err)
	require.Len(t, script.Steps, 1)
	assert.Len(t, script.Steps[0].Steps, 1)
}

func TestParseScript_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing op":        "steps:\n  - args: [1]\n",
		"op with steps":     "steps:\n  - op: say\n    steps:\n      - op: say\n",
		"nested missing op": "steps:\n  - steps:\n      - args: [1]\n",
		"not yaml":          ":::",
		"wrong steps shape": "steps: 42\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScript([]byte(src))
			assert.Error(t, err)
		})
	}
}
