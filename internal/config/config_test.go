package config

import (
	"testing"

	"may/internal/domain"
)

func TestDefaultsAreSane(t *testing.T) {
	c := Default()
	if c.Precision() == 0 {
		t.Error("default precision should be nonzero")
	}
	if c.Base() < 2 {
		t.Error("default base should be at least 2")
	}
}

func TestSetPrecisionReturnsPrevious(t *testing.T) {
	c := Default()
	prev := c.SetPrecision(128)
	if c.Precision() != 128 {
		t.Errorf("Precision() after SetPrecision(128) = %d, want 128", c.Precision())
	}
	if c.SetPrecision(prev) != 128 {
		t.Error("SetPrecision should return the previous value")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := Default()
	clone := c.Clone()
	clone.SetPrecision(999)
	if c.Precision() == 999 {
		t.Error("mutating a clone should not affect the original Config")
	}
}

func TestWithoutIntModSuppressesThenRestores(t *testing.T) {
	c := Default()
	m := int64(7)
	c.SetIntMod(&m)
	var sawNil bool
	c.WithoutIntMod(func() {
		sawNil = c.IntMod() == nil
	})
	if !sawNil {
		t.Error("WithoutIntMod should suppress IntMod for the duration of the callback")
	}
	if c.IntMod() == nil || *c.IntMod() != 7 {
		t.Error("WithoutIntMod should restore the previous IntMod afterward")
	}
}

func TestSetDefaultDomainRoundTrips(t *testing.T) {
	c := Default()
	c.SetDefaultDomain(domain.Integer)
	if c.DefaultDomain() != domain.Integer {
		t.Errorf("DefaultDomain() = %v, want %v", c.DefaultDomain(), domain.Integer)
	}
}
