package relay

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	createRelayCost    int64 = 100
	configureRelayCost int64 = 50
	moveFundsCost      int64 = 50
	flowChangeCost     int64 = 50
	splitPerFlowCost   int64 = 50
)

const (
	tagSplitID   = "relay-split-id"
	tagSender    = "relay-sender"
	tagToken     = "relay-token"
	tagTokenName = "relay-token-name"
)

// FlowController is the subset of the streaming functionality that relay
// requires. It is implemented by the x/stream controller.
type FlowController interface {
	OpenFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, rate coin.Coin) error
	UpdateFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, rate coin.Coin) error
	CloseFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, ticker string) error
	TokenName(db weave.KVStore, ticker string) (string, error)
}

// CashController is the subset of the cash functionality that relay requires.
// It is implemented by the x/cash controller.
type CashController interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// RegisterQuery registers the relay and split buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewRelayBucket().Register("relays", qr)
	NewSplitBucket().Register("splits", qr)
}

// RegisterRoutes registers handlers for relay message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl FlowController, cash CashController) {
	r = migration.SchemaMigratingRegistry("relay", r)

	relays := NewRelayBucket()
	splits := NewSplitBucket()

	r.Handle(&CreateRelayMsg{}, &createRelayHandler{auth: auth, bucket: relays})
	r.Handle(&AllowAccountMsg{}, &allowAccountHandler{auth: auth, bucket: relays})
	r.Handle(&DisallowAccountMsg{}, &disallowAccountHandler{auth: auth, bucket: relays})
	r.Handle(&TransferOwnershipMsg{}, &transferOwnershipHandler{auth: auth, bucket: relays})
	r.Handle(&DepositMsg{}, &depositHandler{auth: auth, bucket: relays, cash: cash})
	r.Handle(&WithdrawMsg{}, &withdrawHandler{auth: auth, bucket: relays, cash: cash})
	r.Handle(&OpenInboundMsg{}, &openInboundHandler{auth: auth, bucket: relays, ctrl: ctrl})
	r.Handle(&UpdateInboundMsg{}, &updateInboundHandler{auth: auth, bucket: relays, ctrl: ctrl})
	r.Handle(&CloseInboundMsg{}, &closeInboundHandler{auth: auth, bucket: relays, ctrl: ctrl})
	r.Handle(&OpenOutboundMsg{}, &openOutboundHandler{auth: auth, bucket: relays, ctrl: ctrl})
	r.Handle(&UpdateOutboundMsg{}, &updateOutboundHandler{auth: auth, bucket: relays, ctrl: ctrl})
	r.Handle(&CloseOutboundMsg{}, &closeOutboundHandler{auth: auth, bucket: relays, ctrl: ctrl})
	r.Handle(&StreamEquallyMsg{}, &streamEquallyHandler{auth: auth, relays: relays, splits: splits, ctrl: ctrl})
	r.Handle(&StreamUnequallyMsg{}, &streamUnequallyHandler{auth: auth, relays: relays, splits: splits, ctrl: ctrl})
}

func loadRelay(db weave.KVStore, bucket orm.ModelBucket, id []byte) (*Relay, error) {
	var rel Relay
	if err := bucket.One(db, id, &rel); err != nil {
		return nil, errors.Wrapf(err, "cannot load relay %x", id)
	}
	return &rel, nil
}

// relaySigner returns the address of the main transaction signer. It fails
// with ErrUnauthorized if that address is neither the relay owner nor on the
// approved list.
func relaySigner(ctx weave.Context, auth x.Authenticator, rel *Relay) (weave.Address, error) {
	signer := x.AnySigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	addr := signer.Address()
	if !rel.Authorized(addr) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signer is not approved")
	}
	return addr, nil
}

type createRelayHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ weave.Handler = (*createRelayHandler)(nil)

func (h *createRelayHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createRelayCost}, nil
}

func (h *createRelayHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key, err := relaySeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire ID")
	}
	rel := Relay{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    msg.Owner,
		Address:  RelayAccount(key),
	}
	if _, err := h.bucket.Put(db, key, &rel); err != nil {
		return nil, errors.Wrap(err, "cannot store relay")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *createRelayHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateRelayMsg, error) {
	var msg CreateRelayMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner did not sign")
	}
	return &msg, nil
}

type allowAccountHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ weave.Handler = (*allowAccountHandler)(nil)

func (h *allowAccountHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: configureRelayCost}, nil
}

func (h *allowAccountHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if len(rel.Approved) >= maxApproved {
		return nil, errors.Wrap(errors.ErrState, "approved list is full")
	}
	rel.Approved = append(rel.Approved, msg.Account)
	if _, err := h.bucket.Put(db, msg.RelayID, rel); err != nil {
		return nil, errors.Wrap(err, "cannot store relay")
	}
	return &weave.DeliverResult{}, nil
}

func (h *allowAccountHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AllowAccountMsg, *Relay, error) {
	var msg AllowAccountMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, err
	}
	// Only the owner can change the access configuration.
	if !h.auth.HasAddress(ctx, rel.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner did not sign")
	}
	for _, a := range rel.Approved {
		if a.Equals(msg.Account) {
			return nil, nil, errors.Wrapf(errors.ErrDuplicate, "account %q already approved", msg.Account)
		}
	}
	return &msg, rel, nil
}

type disallowAccountHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ weave.Handler = (*disallowAccountHandler)(nil)

func (h *disallowAccountHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: configureRelayCost}, nil
}

func (h *disallowAccountHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	approved := rel.Approved[:0]
	for _, a := range rel.Approved {
		if !a.Equals(msg.Account) {
			approved = append(approved, a)
		}
	}
	rel.Approved = approved
	if _, err := h.bucket.Put(db, msg.RelayID, rel); err != nil {
		return nil, errors.Wrap(err, "cannot store relay")
	}
	return &weave.DeliverResult{}, nil
}

func (h *disallowAccountHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DisallowAccountMsg, *Relay, error) {
	var msg DisallowAccountMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, rel.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner did not sign")
	}
	found := false
	for _, a := range rel.Approved {
		if a.Equals(msg.Account) {
			found = true
			break
		}
	}
	if !found {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "account %q is not approved", msg.Account)
	}
	return &msg, rel, nil
}

type transferOwnershipHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ weave.Handler = (*transferOwnershipHandler)(nil)

func (h *transferOwnershipHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: configureRelayCost}, nil
}

func (h *transferOwnershipHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	rel.Owner = msg.NewOwner
	if _, err := h.bucket.Put(db, msg.RelayID, rel); err != nil {
		return nil, errors.Wrap(err, "cannot store relay")
	}
	return &weave.DeliverResult{}, nil
}

func (h *transferOwnershipHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferOwnershipMsg, *Relay, error) {
	var msg TransferOwnershipMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, rel.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner did not sign")
	}
	return &msg, rel, nil
}

type depositHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   CashController
}

var _ weave.Handler = (*depositHandler)(nil)

func (h *depositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: moveFundsCost}, nil
}

func (h *depositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.cash.MoveCoins(db, sender, rel.Address, *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot deposit")
	}
	return &weave.DeliverResult{}, nil
}

func (h *depositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DepositMsg, *Relay, weave.Address, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, nil, err
	}
	sender, err := relaySigner(ctx, h.auth, rel)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rel, sender, nil
}

type withdrawHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   CashController
}

var _ weave.Handler = (*withdrawHandler)(nil)

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: moveFundsCost}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	destination := msg.Destination
	if len(destination) == 0 {
		destination = sender
	}
	if err := h.cash.MoveCoins(db, rel.Address, destination, *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot withdraw")
	}
	return &weave.DeliverResult{}, nil
}

func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*WithdrawMsg, *Relay, weave.Address, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, nil, err
	}
	sender, err := relaySigner(ctx, h.auth, rel)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rel, sender, nil
}

type openInboundHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   FlowController
}

var _ weave.Handler = (*openInboundHandler)(nil)

func (h *openInboundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: flowChangeCost}, nil
}

func (h *openInboundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.OpenFlow(ctx, db, sender, rel.Address, *msg.Rate); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *openInboundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*OpenInboundMsg, *Relay, weave.Address, error) {
	var msg OpenInboundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, nil, err
	}
	sender, err := relaySigner(ctx, h.auth, rel)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rel, sender, nil
}

type updateInboundHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   FlowController
}

var _ weave.Handler = (*updateInboundHandler)(nil)

func (h *updateInboundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: flowChangeCost}, nil
}

func (h *updateInboundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.UpdateFlow(ctx, db, sender, rel.Address, *msg.Rate); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateInboundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateInboundMsg, *Relay, weave.Address, error) {
	var msg UpdateInboundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, nil, err
	}
	sender, err := relaySigner(ctx, h.auth, rel)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rel, sender, nil
}

type closeInboundHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   FlowController
}

var _ weave.Handler = (*closeInboundHandler)(nil)

func (h *closeInboundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: flowChangeCost}, nil
}

func (h *closeInboundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.CloseFlow(ctx, db, sender, rel.Address, msg.Ticker); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *closeInboundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CloseInboundMsg, *Relay, weave.Address, error) {
	var msg CloseInboundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, nil, err
	}
	sender, err := relaySigner(ctx, h.auth, rel)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rel, sender, nil
}

type openOutboundHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   FlowController
}

var _ weave.Handler = (*openOutboundHandler)(nil)

func (h *openOutboundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: flowChangeCost}, nil
}

func (h *openOutboundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.OpenFlow(ctx, db, rel.Address, msg.Destination, *msg.Rate); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *openOutboundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*OpenOutboundMsg, *Relay, error) {
	var msg OpenOutboundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, err
	}
	if _, err := relaySigner(ctx, h.auth, rel); err != nil {
		return nil, nil, err
	}
	return &msg, rel, nil
}

type updateOutboundHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   FlowController
}

var _ weave.Handler = (*updateOutboundHandler)(nil)

func (h *updateOutboundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: flowChangeCost}, nil
}

func (h *updateOutboundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.UpdateFlow(ctx, db, rel.Address, msg.Destination, *msg.Rate); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateOutboundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateOutboundMsg, *Relay, error) {
	var msg UpdateOutboundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, err
	}
	if _, err := relaySigner(ctx, h.auth, rel); err != nil {
		return nil, nil, err
	}
	return &msg, rel, nil
}

type closeOutboundHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   FlowController
}

var _ weave.Handler = (*closeOutboundHandler)(nil)

func (h *closeOutboundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: flowChangeCost}, nil
}

func (h *closeOutboundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.CloseFlow(ctx, db, rel.Address, msg.Destination, msg.Ticker); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *closeOutboundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CloseOutboundMsg, *Relay, error) {
	var msg CloseOutboundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.bucket, msg.RelayID)
	if err != nil {
		return nil, nil, err
	}
	if _, err := relaySigner(ctx, h.auth, rel); err != nil {
		return nil, nil, err
	}
	return &msg, rel, nil
}

type streamEquallyHandler struct {
	auth   x.Authenticator
	relays orm.ModelBucket
	splits orm.ModelBucket
	ctrl   FlowController
}

var _ weave.Handler = (*streamEquallyHandler)(nil)

func (h *streamEquallyHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	msg, _, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: splitPerFlowCost * int64(len(msg.Destinations))}, nil
}

func (h *streamEquallyHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	name, err := h.ctrl.TokenName(db, msg.Rate.Ticker)
	if err != nil {
		return nil, err
	}
	// Any failed flow fails the whole delivery and the transaction
	// rollback discards flows opened so far.
	for _, destination := range msg.Destinations {
		if err := h.ctrl.OpenFlow(ctx, db, rel.Address, destination, *msg.Rate); err != nil {
			return nil, errors.Wrapf(err, "flow to %q", destination)
		}
	}
	split := Split{
		Metadata:     &weave.Metadata{Schema: 1},
		RelayID:      msg.RelayID,
		Source:       sender,
		Destinations: msg.Destinations,
		Rates:        []coin.Coin{*msg.Rate},
		Ticker:       msg.Rate.Ticker,
		TokenName:    name,
	}
	key, err := h.splits.Put(db, nil, &split)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store split")
	}
	res := &weave.DeliverResult{Data: key}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagSplitID), Value: key},
		{Key: []byte(tagSender), Value: sender},
		{Key: []byte(tagToken), Value: []byte(msg.Rate.Ticker)},
		{Key: []byte(tagTokenName), Value: []byte(name)},
	}...)
	return res, nil
}

func (h *streamEquallyHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*StreamEquallyMsg, *Relay, weave.Address, error) {
	var msg StreamEquallyMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.relays, msg.RelayID)
	if err != nil {
		return nil, nil, nil, err
	}
	sender, err := relaySigner(ctx, h.auth, rel)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rel, sender, nil
}

type streamUnequallyHandler struct {
	auth   x.Authenticator
	relays orm.ModelBucket
	splits orm.ModelBucket
	ctrl   FlowController
}

var _ weave.Handler = (*streamUnequallyHandler)(nil)

func (h *streamUnequallyHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	msg, _, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: splitPerFlowCost * int64(len(msg.Destinations))}, nil
}

func (h *streamUnequallyHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rel, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	ticker := msg.Rates[0].Ticker
	name, err := h.ctrl.TokenName(db, ticker)
	if err != nil {
		return nil, err
	}
	for i, destination := range msg.Destinations {
		if err := h.ctrl.OpenFlow(ctx, db, rel.Address, destination, msg.Rates[i]); err != nil {
			return nil, errors.Wrapf(err, "flow to %q", destination)
		}
	}
	split := Split{
		Metadata:     &weave.Metadata{Schema: 1},
		RelayID:      msg.RelayID,
		Source:       sender,
		Destinations: msg.Destinations,
		Rates:        msg.Rates,
		Ticker:       ticker,
		TokenName:    name,
	}
	key, err := h.splits.Put(db, nil, &split)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store split")
	}
	res := &weave.DeliverResult{Data: key}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagSplitID), Value: key},
		{Key: []byte(tagSender), Value: sender},
		{Key: []byte(tagToken), Value: []byte(ticker)},
		{Key: []byte(tagTokenName), Value: []byte(name)},
	}...)
	return res, nil
}

func (h *streamUnequallyHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*StreamUnequallyMsg, *Relay, weave.Address, error) {
	var msg StreamUnequallyMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	rel, err := loadRelay(db, h.relays, msg.RelayID)
	if err != nil {
		return nil, nil, nil, err
	}
	sender, err := relaySigner(ctx, h.auth, rel)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rel, sender, nil
}
