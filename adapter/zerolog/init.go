package zerologadapter

import "github.com/trickstertwo/xtee"

// Name is the Config.Backend value selecting this adapter.
const Name = "zerolog"

func init() {
	xtee.RegisterBackend(Name, func(cfg xtee.Config) (xtee.Adapter, error) {
		return Build(cfg)
	})
}
