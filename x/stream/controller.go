package stream

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x/currency"
)

// CoinMover is the subset of the cash functionality that settlement requires.
// It is implemented by the x/cash controller.
type CoinMover interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// Controller is the capability interface through which other extensions
// manage flows. All methods settle before mutating, so the destination never
// loses already accrued value.
type Controller interface {
	// OpenFlow starts a new flow. It fails with ErrDuplicate if a flow
	// for the same (source, destination, ticker) triple already exists
	// and with ErrCurrency if the token is not registered.
	OpenFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, rate coin.Coin) error

	// UpdateFlow settles an existing flow and replaces its rate. It fails
	// with ErrNotFound if the flow does not exist.
	UpdateFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, rate coin.Coin) error

	// CloseFlow settles an existing flow and deletes it. It fails with
	// ErrNotFound if the flow does not exist.
	CloseFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, ticker string) error

	// TokenName returns the display name of a registered token.
	TokenName(db weave.KVStore, ticker string) (string, error)
}

// BaseController is the native implementation of the Controller interface.
// It keeps flow state in a bucket and moves settled value through the cash
// controller.
type BaseController struct {
	flows  orm.ModelBucket
	tokens *currency.TokenInfoBucket
	mover  CoinMover
}

var _ Controller = (*BaseController)(nil)

// NewController returns a controller that settles through the given coin
// mover.
func NewController(mover CoinMover) *BaseController {
	return &BaseController{
		flows:  NewFlowBucket(),
		tokens: currency.NewTokenInfoBucket(),
		mover:  mover,
	}
}

func (c *BaseController) OpenFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, rate coin.Coin) error {
	if _, err := c.TokenName(db, rate.Ticker); err != nil {
		return err
	}
	key := flowKey(source, destination, rate.Ticker)
	var existing Flow
	switch err := c.flows.One(db, key, &existing); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "flow %s", key)
	case !errors.ErrNotFound.Is(err):
		return errors.Wrap(err, "cannot check for existing flow")
	}

	now, err := weave.BlockTime(ctx)
	if err != nil {
		return errors.Wrap(err, "block time")
	}
	flow := Flow{
		Metadata:    &weave.Metadata{Schema: 1},
		Source:      source,
		Destination: destination,
		Rate:        &rate,
		UpdatedAt:   weave.AsUnixTime(now),
	}
	if _, err := c.flows.Put(db, key, &flow); err != nil {
		return errors.Wrap(err, "cannot store flow")
	}
	return nil
}

func (c *BaseController) UpdateFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, rate coin.Coin) error {
	key := flowKey(source, destination, rate.Ticker)
	var flow Flow
	if err := c.flows.One(db, key, &flow); err != nil {
		return errors.Wrap(err, "cannot get flow")
	}
	if err := c.settle(ctx, db, &flow); err != nil {
		return err
	}
	flow.Rate = &rate
	if _, err := c.flows.Put(db, key, &flow); err != nil {
		return errors.Wrap(err, "cannot store flow")
	}
	return nil
}

func (c *BaseController) CloseFlow(ctx weave.Context, db weave.KVStore, source, destination weave.Address, ticker string) error {
	key := flowKey(source, destination, ticker)
	var flow Flow
	if err := c.flows.One(db, key, &flow); err != nil {
		return errors.Wrap(err, "cannot get flow")
	}
	if err := c.settle(ctx, db, &flow); err != nil {
		return err
	}
	if err := c.flows.Delete(db, key); err != nil {
		return errors.Wrap(err, "cannot delete flow")
	}
	return nil
}

func (c *BaseController) TokenName(db weave.KVStore, ticker string) (string, error) {
	obj, err := c.tokens.Get(db, ticker)
	if err != nil {
		return "", errors.Wrap(err, "token info")
	}
	if obj == nil || obj.Value() == nil {
		return "", errors.Wrapf(errors.ErrCurrency, "unknown ticker %q", ticker)
	}
	info, ok := obj.Value().(*currency.TokenInfo)
	if !ok {
		return "", errors.Wrapf(errors.ErrType, "%T is not token info", obj.Value())
	}
	return info.Name, nil
}

// settle moves the value accrued since the last settlement from the source to
// the destination account and updates the settlement time. A source that
// cannot cover the accrued value fails the move and the error is returned
// unmodified, failing the whole operation.
func (c *BaseController) settle(ctx weave.Context, db weave.KVStore, flow *Flow) error {
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return errors.Wrap(err, "block time")
	}
	elapsed := now.Unix() - flow.UpdatedAt.Time().Unix()
	if elapsed < 0 {
		return errors.Wrap(errors.ErrState, "flow settled in the future")
	}
	if elapsed == 0 {
		return nil
	}
	accrued, err := flow.Rate.Multiply(elapsed)
	if err != nil {
		return errors.Wrap(err, "cannot compute accrued value")
	}
	if !accrued.IsZero() {
		if err := c.mover.MoveCoins(db, flow.Source, flow.Destination, accrued); err != nil {
			return errors.Wrap(err, "cannot settle flow")
		}
	}
	flow.UpdatedAt = weave.AsUnixTime(now)
	return nil
}
