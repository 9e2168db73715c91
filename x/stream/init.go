package stream

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial flows from genesis and save it to the
// database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var flows []struct {
		Source      weave.Address  `json:"source"`
		Destination weave.Address  `json:"destination"`
		Rate        coin.Coin      `json:"rate"`
		UpdatedAt   weave.UnixTime `json:"updated_at"`
	}
	if err := opts.ReadOptions("stream", &flows); err != nil {
		return errors.Wrap(err, "cannot load stream")
	}

	bucket := NewFlowBucket()
	for i, f := range flows {
		flow := Flow{
			Metadata:    &weave.Metadata{Schema: 1},
			Source:      f.Source,
			Destination: f.Destination,
			Rate:        f.Rate.Clone(),
			UpdatedAt:   f.UpdatedAt,
		}
		key := flowKey(f.Source, f.Destination, f.Rate.Ticker)
		if _, err := bucket.Put(kv, key, &flow); err != nil {
			return errors.Wrapf(err, "cannot store #%d flow", i)
		}
	}
	return nil
}
