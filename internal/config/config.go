// Package config holds the kernel configuration atoms enumerated in
// spec.md §6: working precision, rounding mode, output base, ambient
// integer modulus, presimplify flag, default domain for fresh symbols,
// and maximum intermediate integer size. Each getter/setter pair follows
// spec.md's "a set operation returns the previous value" convention.
package config

import "may/internal/domain"

// RoundingMode mirrors the handful of big.Float rounding modes the
// kernel exposes as kernel configuration rather than plumbing
// math/big's RoundingMode through every call site.
type RoundingMode int

const (
	RoundNearestEven RoundingMode = iota
	RoundTowardZero
	RoundAwayFromZero
	RoundTowardNegative
	RoundTowardPositive
)

// Config is owned by exactly one Context (see internal/kctx); it is not
// safe to share across goroutines, matching spec.md §5's thread-local
// globals.
type Config struct {
	precision     uint
	rounding      RoundingMode
	base          int
	intMod        *int64 // nil means "no ambient modulus"
	presimplify   bool
	defaultDomain domain.Mask
	maxIntBits    int
}

// Default returns the kernel's baseline configuration: 128-bit working
// precision, round-to-nearest-even, base 10, no ambient modulus,
// presimplify on, fresh symbols assumed Complex (the weakest
// assumption), and a 1<<20-bit cap on intermediate integers.
func Default() *Config {
	return &Config{
		precision:     128,
		rounding:      RoundNearestEven,
		base:          10,
		presimplify:   true,
		defaultDomain: domain.Complex,
		maxIntBits:    1 << 20,
	}
}

func (c *Config) SetPrecision(p uint) uint {
	old := c.precision
	c.precision = p
	return old
}
func (c *Config) Precision() uint { return c.precision }

func (c *Config) SetRounding(r RoundingMode) RoundingMode {
	old := c.rounding
	c.rounding = r
	return old
}
func (c *Config) Rounding() RoundingMode { return c.rounding }

func (c *Config) SetBase(b int) int {
	old := c.base
	c.base = b
	return old
}
func (c *Config) Base() int { return c.base }

// SetIntMod installs an ambient integer modulus, or clears it when m is
// nil. Returns the previous value.
func (c *Config) SetIntMod(m *int64) *int64 {
	old := c.intMod
	c.intMod = m
	return old
}
func (c *Config) IntMod() *int64 { return c.intMod }

func (c *Config) SetPresimplify(v bool) bool {
	old := c.presimplify
	c.presimplify = v
	return old
}
func (c *Config) Presimplify() bool { return c.presimplify }

func (c *Config) SetDefaultDomain(d domain.Mask) domain.Mask {
	old := c.defaultDomain
	c.defaultDomain = d
	return old
}
func (c *Config) DefaultDomain() domain.Mask { return c.defaultDomain }

func (c *Config) SetMaxIntBits(n int) int {
	old := c.maxIntBits
	c.maxIntBits = n
	return old
}
func (c *Config) MaxIntBits() int { return c.maxIntBits }

// Clone returns an independent copy, used by Context.Fork (spec.md §5).
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// WithoutIntMod runs fn with the ambient integer modulus temporarily
// disabled, restoring it afterward. spec.md §9's design notes call out
// two places this matters: exponent arithmetic during Product
// coalescence, and all-numeric operations inside Pow-of-Pow combination
// — both must see a bare, unreduced integer ring.
func (c *Config) WithoutIntMod(fn func()) {
	old := c.SetIntMod(nil)
	defer c.SetIntMod(old)
	fn()
}
