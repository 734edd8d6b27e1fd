// Package kctx bundles the per-thread kernel globals of spec.md §5
// (arena, error frame, configuration) into a single value passed
// explicitly, the Go realization of spec.md §9's "pass a &mut Context
// everywhere instead of using thread-locals."
package kctx

import (
	"may/internal/arena"
	"may/internal/config"
	"may/internal/errframe"
	"may/internal/ext"
)

// Context is not safe for concurrent use by multiple goroutines. Fork it
// to hand an independent sub-context to a worker, per spec.md §5's
// "cross-thread sharing requires the caller to use a per-thread
// sub-arena that is later merged back via a copy-into-parent compact."
type Context struct {
	Arena    *arena.Arena
	Frame    *errframe.Frame
	Config   *config.Config
	Registry *ext.Registry
}

// New builds a fresh Context with an unbounded arena and default config.
func New() *Context {
	return &Context{
		Arena:    arena.New(0),
		Frame:    errframe.NewFrame(),
		Config:   config.Default(),
		Registry: ext.NewRegistry(),
	}
}

// Fork returns a child Context with its own sub-arena and a cloned
// configuration, sharing the parent's extension registry (registries are
// read-mostly and safe to share once registration has settled).
func (c *Context) Fork() *Context {
	return &Context{
		Arena:    arena.New(0),
		Frame:    errframe.NewFrame(),
		Config:   c.Config.Clone(),
		Registry: c.Registry,
	}
}
