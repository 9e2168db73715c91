package relay

import (
	"regexp"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateRelayMsg{}, migration.NoModification)
	migration.MustRegister(1, &AllowAccountMsg{}, migration.NoModification)
	migration.MustRegister(1, &DisallowAccountMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferOwnershipMsg{}, migration.NoModification)
	migration.MustRegister(1, &DepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &OpenInboundMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateInboundMsg{}, migration.NoModification)
	migration.MustRegister(1, &CloseInboundMsg{}, migration.NoModification)
	migration.MustRegister(1, &OpenOutboundMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateOutboundMsg{}, migration.NoModification)
	migration.MustRegister(1, &CloseOutboundMsg{}, migration.NoModification)
	migration.MustRegister(1, &StreamEquallyMsg{}, migration.NoModification)
	migration.MustRegister(1, &StreamUnequallyMsg{}, migration.NoModification)
}

var isTicker = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

var _ weave.Msg = (*CreateRelayMsg)(nil)
var _ weave.Msg = (*AllowAccountMsg)(nil)
var _ weave.Msg = (*DisallowAccountMsg)(nil)
var _ weave.Msg = (*TransferOwnershipMsg)(nil)
var _ weave.Msg = (*DepositMsg)(nil)
var _ weave.Msg = (*WithdrawMsg)(nil)
var _ weave.Msg = (*OpenInboundMsg)(nil)
var _ weave.Msg = (*UpdateInboundMsg)(nil)
var _ weave.Msg = (*CloseInboundMsg)(nil)
var _ weave.Msg = (*OpenOutboundMsg)(nil)
var _ weave.Msg = (*UpdateOutboundMsg)(nil)
var _ weave.Msg = (*CloseOutboundMsg)(nil)
var _ weave.Msg = (*StreamEquallyMsg)(nil)
var _ weave.Msg = (*StreamUnequallyMsg)(nil)

func (CreateRelayMsg) Path() string {
	return "relay/create"
}

func (m *CreateRelayMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func (AllowAccountMsg) Path() string {
	return "relay/allow_account"
}

func (m *AllowAccountMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if err := m.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	return nil
}

func (DisallowAccountMsg) Path() string {
	return "relay/disallow_account"
}

func (m *DisallowAccountMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if err := m.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	return nil
}

func (TransferOwnershipMsg) Path() string {
	return "relay/transfer_ownership"
}

func (m *TransferOwnershipMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if err := m.NewOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	return nil
}

func (DepositMsg) Path() string {
	return "relay/deposit"
}

func (m *DepositMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	return validateAmount(m.Amount)
}

func (WithdrawMsg) Path() string {
	return "relay/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	// An empty destination means a payout to the sender.
	if len(m.Destination) != 0 {
		if err := m.Destination.Validate(); err != nil {
			return errors.Wrap(err, "destination")
		}
	}
	return validateAmount(m.Amount)
}

func (OpenInboundMsg) Path() string {
	return "relay/open_inbound"
}

func (m *OpenInboundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	return validateAmount(m.Rate)
}

func (UpdateInboundMsg) Path() string {
	return "relay/update_inbound"
}

func (m *UpdateInboundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	return validateAmount(m.Rate)
}

func (CloseInboundMsg) Path() string {
	return "relay/close_inbound"
}

func (m *CloseInboundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if !isTicker(m.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker)
	}
	return nil
}

func (OpenOutboundMsg) Path() string {
	return "relay/open_outbound"
}

func (m *OpenOutboundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return validateAmount(m.Rate)
}

func (UpdateOutboundMsg) Path() string {
	return "relay/update_outbound"
}

func (m *UpdateOutboundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return validateAmount(m.Rate)
}

func (CloseOutboundMsg) Path() string {
	return "relay/close_outbound"
}

func (m *CloseOutboundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !isTicker(m.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker)
	}
	return nil
}

func (StreamEquallyMsg) Path() string {
	return "relay/stream_equally"
}

func (m *StreamEquallyMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if err := validateDestinations(m.Destinations, errors.ErrMsg); err != nil {
		return err
	}
	return validateAmount(m.Rate)
}

func (StreamUnequallyMsg) Path() string {
	return "relay/stream_unequally"
}

func (m *StreamUnequallyMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(m.RelayID) == 0 {
		return errors.Wrap(errors.ErrMsg, "relay ID missing")
	}
	if err := validateDestinations(m.Destinations, errors.ErrMsg); err != nil {
		return err
	}
	if len(m.Rates) != len(m.Destinations) {
		return errors.Wrap(errors.ErrMsg, "rates do not match destinations")
	}
	for i, r := range m.Rates {
		if err := validateAmount(&r); err != nil {
			return errors.Wrapf(err, "rate %d", i)
		}
		// All flows of a single fan-out use the same token.
		if r.Ticker != m.Rates[0].Ticker {
			return errors.Wrap(errors.ErrCurrency, "mixed tickers")
		}
	}
	return nil
}

// validateAmount returns an error if the given value cannot be used as a
// transfer amount or a flow rate.
func validateAmount(c *coin.Coin) error {
	if coin.IsEmpty(c) {
		return errors.Wrap(errors.ErrMsg, "amount is required")
	}
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !c.IsPositive() {
		return errors.Wrap(errors.ErrMsg, "amount must be positive")
	}
	return nil
}
