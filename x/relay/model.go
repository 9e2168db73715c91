package relay

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Relay{}, migration.NoModification)
	migration.MustRegister(1, &Split{}, migration.NoModification)
}

const (
	// maxApproved defines the maximum number of accounts on the approved
	// list. This is a high number that should not be an issue in real life
	// scenarios. But having a sane limit allows us to avoid attacks.
	maxApproved = 100

	// maxDestinations defines the maximum number of destinations allowed
	// within a single fan-out.
	maxDestinations = 200
)

var _ orm.CloneableData = (*Relay)(nil)

func (r *Relay) Validate() error {
	if err := r.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := r.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(r.Approved) > maxApproved {
		return errors.Wrap(errors.ErrModel, "too many approved accounts")
	}
	seen := make(map[string]struct{})
	for i, a := range r.Approved {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "approved %d", i)
		}
		if _, ok := seen[a.String()]; ok {
			return errors.Wrapf(errors.ErrModel, "approved %q is not unique", a)
		}
		seen[a.String()] = struct{}{}
	}
	if err := r.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

func (r *Relay) Copy() orm.CloneableData {
	cpy := &Relay{
		Metadata: r.Metadata.Copy(),
		Owner:    r.Owner.Clone(),
		Approved: make([]weave.Address, len(r.Approved)),
		Address:  r.Address.Clone(),
	}
	for i := range r.Approved {
		cpy.Approved[i] = r.Approved[i].Clone()
	}
	return cpy
}

// Authorized returns true if the given address is the relay owner or is on
// the approved list. Accounts removed from the approved list lose access the
// moment the removal is delivered.
func (r *Relay) Authorized(a weave.Address) bool {
	if r.Owner.Equals(a) {
		return true
	}
	for _, ap := range r.Approved {
		if ap.Equals(a) {
			return true
		}
	}
	return false
}

var _ orm.CloneableData = (*Split)(nil)

func (s *Split) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(s.RelayID) == 0 {
		return errors.Wrap(errors.ErrModel, "relay ID missing")
	}
	if err := s.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := validateDestinations(s.Destinations, errors.ErrModel); err != nil {
		return err
	}
	switch n := len(s.Rates); {
	case n == 0:
		return errors.Wrap(errors.ErrModel, "no rates")
	case n != 1 && n != len(s.Destinations):
		return errors.Wrap(errors.ErrModel, "rates do not match destinations")
	}
	for i, r := range s.Rates {
		if err := r.Validate(); err != nil {
			return errors.Wrapf(err, "rate %d", i)
		}
		if !r.IsPositive() {
			return errors.Wrapf(errors.ErrModel, "rate %d must be positive", i)
		}
	}
	if !isTicker(s.Ticker) {
		return errors.Wrapf(errors.ErrModel, "invalid ticker %q", s.Ticker)
	}
	if s.TokenName == "" {
		return errors.Wrap(errors.ErrModel, "token name missing")
	}
	return nil
}

func (s *Split) Copy() orm.CloneableData {
	cpy := &Split{
		Metadata:     s.Metadata.Copy(),
		RelayID:      append([]byte(nil), s.RelayID...),
		Source:       s.Source.Clone(),
		Destinations: make([]weave.Address, len(s.Destinations)),
		Rates:        make([]coin.Coin, len(s.Rates)),
		Ticker:       s.Ticker,
		TokenName:    s.TokenName,
	}
	for i := range s.Destinations {
		cpy.Destinations[i] = s.Destinations[i].Clone()
	}
	for i := range s.Rates {
		cpy.Rates[i] = *s.Rates[i].Clone()
	}
	return cpy
}

// validateDestinations returns an error if given list of destinations cannot
// be used for a fan-out. Model validation returns a different class of error
// than message validation, that is why the base error class must be given.
func validateDestinations(ds []weave.Address, baseErr *errors.Error) error {
	switch n := len(ds); {
	case n == 0:
		return errors.Wrap(baseErr, "no destinations")
	case n > maxDestinations:
		return errors.Wrap(baseErr, "too many destinations")
	}

	// Destination addresses must not repeat. A repeated address would
	// always fail the fan-out, because the second flow to it is a
	// duplicate.
	addresses := make(map[string]struct{})
	for i, d := range ds {
		if err := d.Validate(); err != nil {
			return errors.Wrapf(err, "destination %d address", i)
		}
		addr := d.String()
		if _, ok := addresses[addr]; ok {
			return errors.Wrapf(baseErr, "address %q is not unique", addr)
		}
		addresses[addr] = struct{}{}
	}
	return nil
}

// NewRelayBucket returns a bucket for managing relay state.
func NewRelayBucket() orm.ModelBucket {
	b := orm.NewModelBucket("relay", &Relay{},
		orm.WithIDSequence(relaySeq),
	)
	return migration.NewModelBucket("relay", b)
}

var relaySeq = orm.NewSequence("relay", "id")

// NewSplitBucket returns a bucket for keeping fan-out records. Keys are
// acquired from a sequence, so the first split gets ID 1 and every following
// split a strictly greater one.
func NewSplitBucket() orm.ModelBucket {
	b := orm.NewModelBucket("split", &Split{},
		orm.WithIDSequence(splitSeq),
		orm.WithIndex("relay", idxSplitRelay, false),
	)
	return migration.NewModelBucket("relay", b)
}

var splitSeq = orm.NewSequence("split", "id")

// RelayAccount returns the address of the account holding funds of the relay
// with the given key.
func RelayAccount(key []byte) weave.Address {
	return weave.NewCondition("relay", "account", key).Address()
}

func idxSplitRelay(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	s, ok := obj.Value().(*Split)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Split")
	}
	return s.RelayID, nil
}
