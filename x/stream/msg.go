package stream

import (
	"regexp"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateFlowMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateFlowMsg{}, migration.NoModification)
	migration.MustRegister(1, &DeleteFlowMsg{}, migration.NoModification)
}

var isTicker = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

var _ weave.Msg = (*CreateFlowMsg)(nil)
var _ weave.Msg = (*UpdateFlowMsg)(nil)
var _ weave.Msg = (*DeleteFlowMsg)(nil)

func (CreateFlowMsg) Path() string {
	return "stream/create_flow"
}

func (m *CreateFlowMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	return validateFlowChange(m.Source, m.Destination, m.Rate)
}

func (UpdateFlowMsg) Path() string {
	return "stream/update_flow"
}

func (m *UpdateFlowMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	return validateFlowChange(m.Source, m.Destination, m.Rate)
}

func (DeleteFlowMsg) Path() string {
	return "stream/delete_flow"
}

func (m *DeleteFlowMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !isTicker(m.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker)
	}
	return nil
}

func validateFlowChange(source, destination weave.Address, rate *coin.Coin) error {
	if err := source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if source.Equals(destination) {
		return errors.Wrap(errors.ErrMsg, "source and destination are the same")
	}
	return validateRate(rate, errors.ErrMsg)
}
