package stream

import (
	"bytes"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Flow{}, migration.NoModification)
}

var _ orm.CloneableData = (*Flow)(nil)

func (f *Flow) Validate() error {
	if err := f.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := f.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := f.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if f.Source.Equals(f.Destination) {
		return errors.Wrap(errors.ErrModel, "source and destination are the same")
	}
	if err := validateRate(f.Rate, errors.ErrModel); err != nil {
		return err
	}
	if err := f.UpdatedAt.Validate(); err != nil {
		return errors.Wrap(err, "updated at")
	}
	if f.UpdatedAt == 0 {
		return errors.Wrap(errors.ErrModel, "updated at is required")
	}
	return nil
}

// validateRate returns an error if given value cannot be used as a flow rate.
// Both models and messages share this check, the base error class is what
// differs.
func validateRate(rate *coin.Coin, baseErr *errors.Error) error {
	if coin.IsEmpty(rate) {
		return errors.Wrap(baseErr, "rate is required")
	}
	if err := rate.Validate(); err != nil {
		return errors.Wrap(err, "rate")
	}
	if !rate.IsPositive() {
		return errors.Wrap(baseErr, "rate must be positive")
	}
	return nil
}

func (f *Flow) Copy() orm.CloneableData {
	return &Flow{
		Metadata:    f.Metadata.Copy(),
		Source:      f.Source.Clone(),
		Destination: f.Destination.Clone(),
		Rate:        f.Rate.Clone(),
		UpdatedAt:   f.UpdatedAt,
	}
}

// NewFlowBucket returns a bucket for keeping track of flows. Flows are keyed
// by the (source, destination, ticker) triple, so there can be at most one
// flow of a given token between two accounts.
func NewFlowBucket() orm.ModelBucket {
	b := orm.NewModelBucket("flow", &Flow{},
		orm.WithIndex("source", idxFlowSource, false),
		orm.WithIndex("destination", idxFlowDestination, false),
	)
	return migration.NewModelBucket("stream", b)
}

// flowKey returns the primary key of a flow. Addresses have a fixed length
// but a separator keeps the key readable in debug output.
func flowKey(source, destination weave.Address, ticker string) []byte {
	return bytes.Join([][]byte{source, destination, []byte(ticker)}, []byte("|"))
}

func toFlow(obj orm.Object) (*Flow, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	f, ok := obj.Value().(*Flow)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Flow")
	}
	return f, nil
}

func idxFlowSource(obj orm.Object) ([]byte, error) {
	f, err := toFlow(obj)
	if err != nil {
		return nil, err
	}
	return f.Source, nil
}

func idxFlowDestination(obj orm.Object) ([]byte, error) {
	f, err := toFlow(obj)
	if err != nil {
		return nil, err
	}
	return f.Destination, nil
}
