package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/pkg/domain"
)

func noop(ctx context.Context, ctrl domain.Controller, args ...any) error { return nil }

func TestSurface_HandleAndResolve(t *testing.T) {
	s := domain.NewSurface()
	s.Handle("open", noop)
	s.Handle("fs.read", noop)
	s.Namespace("fs").Handle("write", noop)

	for _, path := range [][]string{
		{"open"},
		{"fs", "read"},
		{"fs", "write"},
	} {
		_, ok := s.Resolve(path)
		assert.True(t, ok, "expected %v to resolve", path)
	}

	_, ok := s.Resolve([]string{"fs", "open"})
	assert.False(t, ok)
	_, ok = s.Resolve([]string{"missing"})
	assert.False(t, ok)
	_, ok = s.Resolve(nil)
	assert.False(t, ok)

	// An interior namespace is not itself callable.
	_, ok = s.Resolve([]string{"fs"})
	assert.False(t, ok)
}

func TestSurface_DottedHandleCreatesNamespaces(t *testing.T) {
	s := domain.NewSurface()
	s.Handle("a.b.c", noop)

	_, ok := s.Resolve([]string{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, []string{"a.b.c"}, s.Ops())
}

func TestSurface_OpsSorted(t *testing.T) {
	s := domain.NewSurface()
	s.Handle("zeta", noop)
	s.Handle("alpha", noop)
	s.Handle("fs.read", noop)

	assert.Equal(t, []string{"alpha", "fs.read", "zeta"}, s.Ops())
}

func TestSurface_HandleReplaces(t *testing.T) {
	s := domain.NewSurface()
	called := ""
	s.Handle("op", func(ctx context.Context, ctrl domain.Controller, args ...any) error {
		called = "first"
		return nil
	})
	s.Handle("op", func(ctx context.Context, ctrl domain.Controller, args ...any) error {
		called = "second"
		return nil
	})

	h, ok := s.Resolve([]string{"op"})
	require.True(t, ok)
	require.NoError(t, h(context.Background(), nil))
	assert.Equal(t, "second", called)
}
