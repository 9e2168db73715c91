package relay

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial relays from genesis and save it to the
// database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var relays []struct {
		Owner    weave.Address   `json:"owner"`
		Approved []weave.Address `json:"approved"`
	}
	if err := opts.ReadOptions("relay", &relays); err != nil {
		return errors.Wrap(err, "cannot load relay")
	}

	bucket := NewRelayBucket()
	for i, r := range relays {
		key, err := relaySeq.NextVal(kv)
		if err != nil {
			return errors.Wrap(err, "cannot acquire ID")
		}
		rel := Relay{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    r.Owner,
			Approved: r.Approved,
			Address:  RelayAccount(key),
		}
		if _, err := bucket.Put(kv, key, &rel); err != nil {
			return errors.Wrapf(err, "cannot store #%d relay", i)
		}
	}
	return nil
}
