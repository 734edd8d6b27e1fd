package kctx

import "testing"

func TestForkSharesRegistryNotArena(t *testing.T) {
	parent := New()
	child := parent.Fork()
	if child.Arena == parent.Arena {
		t.Error("Fork should give the child its own Arena")
	}
	if child.Registry != parent.Registry {
		t.Error("Fork should share the parent's extension Registry")
	}
	if child.Config == parent.Config {
		t.Error("Fork should clone the Config, not alias it")
	}
}

func TestForkedConfigIsIndependent(t *testing.T) {
	parent := New()
	child := parent.Fork()
	child.Config.SetPrecision(256)
	if parent.Config.Precision() == 256 {
		t.Error("mutating a forked child's Config should not affect the parent")
	}
}
