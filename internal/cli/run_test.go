package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/internal/logging"
)

func runScript(t *testing.T, src string, light bool) (string, error) {
	t.Helper()
	script, err := ParseScript([]byte(src))
	require.NoError(t, err)

	var out bytes.Buffer
	session := NewSession(&out)
	err = session.Run(context.Background(), script, light, logging.NewNop())
	return out.String(), err
}

func TestSessionRun_SayAndVars(t *testing.T) {
	out, err := runScript(t, `
name: hello
steps:
  - op: set
    args: [who, world]
  - op: say
    args: [hello, $who]
`, false)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestSessionRun_AddAccumulates(t *testing.T) {
	out, err := runScript(t, `
steps:
  - op: add
    args: [count, 2]
  - op: add
    args: [count, 3]
  - op: vars
`, false)
	require.NoError(t, err)
	assert.Equal(t, "count=5\n", out)
}

func TestSessionRun_GroupRunsOnSubChain(t *testing.T) {
	out, err := runScript(t, `
steps:
  - op: say
    args: [before]
  - steps:
      - op: say
        args: [inside]
  - op: say
    args: [after]
`, false)
	require.NoError(t, err)
	assert.Equal(t, "before\ninside\nafter\n", out)
}

func TestSessionRun_GroupSharesVariables(t *testing.T) {
	out, err := runScript(t, `
steps:
  - op: set
    args: [count, 1]
  - steps:
      - op: add
        args: [count, 10]
  - op: vars
`, false)
	require.NoError(t, err)
	assert.Equal(t, "count=11\n", out)
}

func TestSessionRun_LightMode(t *testing.T) {
	out, err := runScript(t, `
steps:
  - op: say
    args: [once]
`, true)
	require.NoError(t, err)
	assert.Equal(t, "once\n", out)
}

func TestSessionRun_UnknownOp(t *testing.T) {
	_, err := runScript(t, `
steps:
  - op: frobnicate
`, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestSessionRun_BadArgs(t *testing.T) {
	for name, src := range map[string]string{
		"set arity":   "steps:\n  - op: set\n    args: [onlyname]\n",
		"add arity":   "steps:\n  - op: add\n    args: [x]\n",
		"add numeric": "steps:\n  - op: add\n    args: [x, notanumber]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := runScript(t, src, false)
			assert.Error(t, err)
		})
	}
}

func TestInterpolate(t *testing.T) {
	s := NewSession(nil)
	s.Vars["who"] = "world"

	assert.Equal(t, "world", s.interpolate("$who"))
	assert.Equal(t, "$unknown", s.interpolate("$unknown"))
	assert.Equal(t, 42, s.interpolate(42))
	assert.Equal(t, "plain", s.interpolate("plain"))
}
