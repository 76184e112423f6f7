package xtee

import "github.com/trickstertwo/xclock"

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg      Config
	adapter  Adapter
	clock    xclock.Clock
	callback Callback
}

// NewBuilder starts from DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

// WithAdapter bypasses the backend registry; Config.Backend is ignored.
func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.adapter = a
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.clock = c
	return b
}

func (b *Builder) WithCallback(cb Callback) *Builder {
	b.callback = cb
	return b
}

// Build constructs the Logger and attaches its sink set.
func (b *Builder) Build() (*Logger, error) {
	l := New()
	l.clock = b.clock
	l.SetCallback(b.callback)

	var err error
	if b.adapter != nil {
		err = l.Attach(b.adapter, b.cfg)
	} else {
		err = l.Initialize(b.cfg)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
