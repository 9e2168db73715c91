package stream

import (
	"context"
	"testing"
	"time"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/currency"
)

func TestHandlers(t *testing.T) {
	source := weavetest.NewCondition()
	destination := weavetest.NewCondition()
	other := weavetest.NewCondition()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	cashCtrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, NewController(cashCtrl))

	genesis := time.Now().UTC().Round(time.Second)

	cases := map[string]struct {
		actions []action
	}{
		"source can open and close a flow": {
			actions: []action{
				{
					conditions: []weave.Condition{source},
					msg: &CreateFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Rate:        coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{source},
					msg: &DeleteFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Ticker:      "IOV",
					},
					blockTime: genesis.Add(5 * time.Second),
				},
			},
		},
		"destination can close a flow": {
			actions: []action{
				{
					conditions: []weave.Condition{source},
					msg: &CreateFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Rate:        coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{destination},
					msg: &DeleteFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Ticker:      "IOV",
					},
					blockTime: genesis.Add(5 * time.Second),
				},
			},
		},
		"only the source can open a flow": {
			actions: []action{
				{
					conditions: []weave.Condition{other},
					msg: &CreateFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Rate:        coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrUnauthorized,
				},
			},
		},
		"a third party cannot close a flow": {
			actions: []action{
				{
					conditions: []weave.Condition{source},
					msg: &CreateFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Rate:        coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{other},
					msg: &DeleteFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Ticker:      "IOV",
					},
					blockTime:    genesis.Add(5 * time.Second),
					wantCheckErr: errors.ErrUnauthorized,
				},
			},
		},
		"a flow of an unregistered token cannot be opened": {
			actions: []action{
				{
					conditions: []weave.Condition{source},
					msg: &CreateFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Rate:        coin.NewCoinp(1, 0, "DOGE"),
					},
					blockTime:      genesis,
					wantDeliverErr: errors.ErrCurrency,
				},
			},
		},
		"updating a missing flow fails": {
			actions: []action{
				{
					conditions: []weave.Condition{source},
					msg: &UpdateFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Rate:        coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime:      genesis,
					wantDeliverErr: errors.ErrNotFound,
				},
			},
		},
		"a zero rate is refused": {
			actions: []action{
				{
					conditions: []weave.Condition{source},
					msg: &CreateFlowMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Source:      source.Address(),
						Destination: destination.Address(),
						Rate:        coin.NewCoinp(0, 0, "IOV"),
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrMsg,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "currency", "stream")

			tokens := currency.NewTokenInfoBucket()
			if err := tokens.Save(db, currency.NewTokenInfo("IOV", "Main token")); err != nil {
				t.Fatalf("cannot register token: %s", err)
			}
			if err := cashCtrl.CoinMint(db, source.Address(), coin.NewCoin(1000, 0, "IOV")); err != nil {
				t.Fatalf("cannot mint: %s", err)
			}

			for i, a := range tc.actions {
				cache := db.CacheWrap()
				if _, err := rt.Check(a.ctx(), cache, a.tx()); !a.wantCheckErr.Is(err) {
					t.Logf("want: %+v", a.wantCheckErr)
					t.Logf(" got: %+v", err)
					t.Fatalf("action %d check (%T)", i, a.msg)
				}
				cache.Discard()
				if a.wantCheckErr != nil {
					// Failed checks are causing the message to be ignored.
					continue
				}

				if _, err := rt.Deliver(a.ctx(), db, a.tx()); !a.wantDeliverErr.Is(err) {
					t.Logf("want: %+v", a.wantDeliverErr)
					t.Logf(" got: %+v", err)
					t.Fatalf("action %d delivery (%T)", i, a.msg)
				}
			}
		})
	}
}

// action represents a single request call that is handled by a handler.
type action struct {
	conditions     []weave.Condition
	msg            weave.Msg
	blockTime      time.Time
	wantCheckErr   *errors.Error
	wantDeliverErr *errors.Error
}

func (a *action) tx() weave.Tx {
	return &weavetest.Tx{Msg: a.msg}
}

func (a *action) ctx() weave.Context {
	ctx := weave.WithBlockTime(context.Background(), a.blockTime)
	ctx = weave.WithChainID(ctx, "testchain-123")
	auth := &weavetest.CtxAuth{Key: "auth"}
	return auth.SetConditions(ctx, a.conditions...)
}
