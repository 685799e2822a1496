package gomap

// MapOption is an option for controlling the mapping process from Go
// values to ir.Node trees.
type MapOption func(*mapConfig)

type mapConfig struct {
	// ignore seeds the call's effective ignore set
	ignore []string
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Ignore suppresses the named fields for this call. Names are
// qualified as "TypeName.Field", so fields of the same name on other
// types are unaffected.
func Ignore(names ...string) MapOption {
	return func(cfg *mapConfig) {
		cfg.ignore = append(cfg.ignore, names...)
	}
}

// ignoreSet is the per-call effective ignore set: caller-supplied
// names plus every FieldOmitter contribution seen during the walk.
type ignoreSet map[string]struct{}

func newIgnoreSet(names []string) ignoreSet {
	s := make(ignoreSet, len(names))
	s.add(names...)
	return s
}

func (s ignoreSet) add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

func (s ignoreSet) has(name string) bool {
	_, ok := s[name]
	return ok
}
