package app

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ cash.FeeTx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg switches over all types defined in the protobuf file
func (tx *Tx) GetMsg() (weave.Msg, error) {
	sum := tx.GetSum()
	if sum == nil {
		return nil, errors.Wrap(errors.ErrState, "transaction without a message")
	}

	// make sure to cover all messages defined in protobuf
	switch t := sum.(type) {
	case *Tx_CashSendMsg:
		return t.CashSendMsg, nil
	case *Tx_CurrencyCreateMsg:
		return t.CurrencyCreateMsg, nil
	case *Tx_MigrationUpgradeSchemaMsg:
		return t.MigrationUpgradeSchemaMsg, nil
	case *Tx_StreamCreateFlowMsg:
		return t.StreamCreateFlowMsg, nil
	case *Tx_StreamUpdateFlowMsg:
		return t.StreamUpdateFlowMsg, nil
	case *Tx_StreamDeleteFlowMsg:
		return t.StreamDeleteFlowMsg, nil
	case *Tx_RelayCreateMsg:
		return t.RelayCreateMsg, nil
	case *Tx_RelayAllowAccountMsg:
		return t.RelayAllowAccountMsg, nil
	case *Tx_RelayDisallowAccountMsg:
		return t.RelayDisallowAccountMsg, nil
	case *Tx_RelayTransferOwnershipMsg:
		return t.RelayTransferOwnershipMsg, nil
	case *Tx_RelayDepositMsg:
		return t.RelayDepositMsg, nil
	case *Tx_RelayWithdrawMsg:
		return t.RelayWithdrawMsg, nil
	case *Tx_RelayOpenInboundMsg:
		return t.RelayOpenInboundMsg, nil
	case *Tx_RelayUpdateInboundMsg:
		return t.RelayUpdateInboundMsg, nil
	case *Tx_RelayCloseInboundMsg:
		return t.RelayCloseInboundMsg, nil
	case *Tx_RelayOpenOutboundMsg:
		return t.RelayOpenOutboundMsg, nil
	case *Tx_RelayUpdateOutboundMsg:
		return t.RelayUpdateOutboundMsg, nil
	case *Tx_RelayCloseOutboundMsg:
		return t.RelayCloseOutboundMsg, nil
	case *Tx_RelayStreamEquallyMsg:
		return t.RelayStreamEquallyMsg, nil
	case *Tx_RelayStreamUnequallyMsg:
		return t.RelayStreamUnequallyMsg, nil
	}

	return nil, errors.Wrapf(errors.ErrState, "unknown transaction type %T", sum)
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
