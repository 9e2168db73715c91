package app

import (
	"bytes"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/sigs"

	"github.com/streampay/streamd/x/relay"
)

func TestTxDecoder(t *testing.T) {
	msg := &relay.StreamEquallyMsg{
		Metadata: &weave.Metadata{Schema: 1},
		RelayID:  weavetest.SequenceID(1),
		Destinations: []weave.Address{
			weavetest.NewCondition().Address(),
			weavetest.NewCondition().Address(),
		},
		Rate: coin.NewCoinp(0, 5, "IOV"),
	}
	tx := &Tx{
		Sum: &Tx_RelayStreamEquallyMsg{msg},
	}

	raw, err := tx.Marshal()
	assert.Nil(t, err)

	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)
	got, err := decoded.GetMsg()
	assert.Nil(t, err)

	m, ok := got.(*relay.StreamEquallyMsg)
	if !ok {
		t.Fatalf("unexpected message type: %T", got)
	}
	assert.Equal(t, msg.RelayID, m.RelayID)
	assert.Equal(t, len(msg.Destinations), len(m.Destinations))
	if !msg.Rate.Equals(*m.Rate) {
		t.Fatalf("unexpected rate: %v", m.Rate)
	}
}

func TestSignBytesIgnoreSignatures(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_RelayDepositMsg{
			&relay.DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				RelayID:  weavetest.SequenceID(1),
				Amount:   coin.NewCoinp(7, 0, "IOV"),
			},
		},
	}

	clean, err := tx.GetSignBytes()
	assert.Nil(t, err)

	tx.Signatures = []*sigs.StdSignature{{Sequence: 4}}
	signed, err := tx.GetSignBytes()
	assert.Nil(t, err)

	if !bytes.Equal(clean, signed) {
		t.Fatal("sign bytes must not depend on attached signatures")
	}
	if tx.Signatures == nil {
		t.Fatal("signatures must be restored after computing sign bytes")
	}
}
