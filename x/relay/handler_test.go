package relay

import (
	"bytes"
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

	"github.com/streampay/streamd/x/stream"
)

func TestHandlers(t *testing.T) {
	owner := weavetest.NewCondition()
	approved := weavetest.NewCondition()
	stranger := weavetest.NewCondition()
	dest1 := weavetest.NewCondition().Address()
	dest2 := weavetest.NewCondition().Address()
	dest3 := weavetest.NewCondition().Address()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	cashCtrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, stream.NewController(cashCtrl), cashCtrl)

	// In below cases, weavetest.SequenceID(1) is the ID of the first relay
	// created. The sequence is reset for each test case.
	relayAddr := RelayAccount(weavetest.SequenceID(1))

	genesis := time.Now().UTC().Round(time.Second)

	cases := map[string]struct {
		// prepareAccounts is used to set the funds for each declared
		// account before running the actions.
		prepareAccounts []account
		actions         []action
		wantAccounts    []account
	}{
		"approved account can fan out equally": {
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &AllowAccountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Account:  approved.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{approved},
					msg: &StreamEquallyMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						RelayID:      weavetest.SequenceID(1),
						Destinations: []weave.Address{dest1, dest2, dest3},
						Rate:         coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime: genesis,
				},
			},
		},
		"fan-out by a stranger is rejected": {
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{stranger},
					msg: &StreamEquallyMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						RelayID:      weavetest.SequenceID(1),
						Destinations: []weave.Address{dest1, dest2},
						Rate:         coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrUnauthorized,
				},
			},
		},
		"disallowed account loses access immediately": {
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &AllowAccountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Account:  approved.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &DisallowAccountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Account:  approved.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{approved},
					msg: &StreamEquallyMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						RelayID:      weavetest.SequenceID(1),
						Destinations: []weave.Address{dest1},
						Rate:         coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrUnauthorized,
				},
			},
		},
		"only the owner can configure access": {
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &AllowAccountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Account:  approved.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{approved},
					msg: &AllowAccountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Account:  stranger.Address(),
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrUnauthorized,
				},
			},
		},
		"mismatched rates are rejected before any flow is opened": {
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &StreamUnequallyMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						RelayID:      weavetest.SequenceID(1),
						Destinations: []weave.Address{dest1, dest2, dest3},
						Rates: []coin.Coin{
							coin.NewCoin(1, 0, "IOV"),
							coin.NewCoin(2, 0, "IOV"),
						},
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrMsg,
				},
			},
		},
		"mixed tickers are rejected": {
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &StreamUnequallyMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						RelayID:      weavetest.SequenceID(1),
						Destinations: []weave.Address{dest1, dest2},
						Rates: []coin.Coin{
							coin.NewCoin(1, 0, "IOV"),
							coin.NewCoin(2, 0, "BTC"),
						},
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrCurrency,
				},
			},
		},
		"deposit and withdraw move funds": {
			prepareAccounts: []account{
				{address: owner.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &DepositMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Amount:   coin.NewCoinp(60, 0, "IOV"),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &WithdrawMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Amount:   coin.NewCoinp(10, 0, "IOV"),
					},
					blockTime: genesis,
				},
			},
			wantAccounts: []account{
				{address: owner.Address(), coins: coin.Coins{coin.NewCoinp(50, 0, "IOV")}},
				{address: relayAddr, coins: coin.Coins{coin.NewCoinp(50, 0, "IOV")}},
			},
		},
		"withdraw by a stranger is rejected": {
			prepareAccounts: []account{
				{address: owner.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &DepositMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Amount:   coin.NewCoinp(60, 0, "IOV"),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{stranger},
					msg: &WithdrawMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Amount:   coin.NewCoinp(10, 0, "IOV"),
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrUnauthorized,
				},
			},
			wantAccounts: []account{
				{address: relayAddr, coins: coin.Coins{coin.NewCoinp(60, 0, "IOV")}},
			},
		},
		"ownership transfer revokes the old owner": {
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &TransferOwnershipMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						NewOwner: approved.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &AllowAccountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Account:  stranger.Address(),
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrUnauthorized,
				},
				{
					conditions: []weave.Condition{approved},
					msg: &AllowAccountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Account:  stranger.Address(),
					},
					blockTime: genesis,
				},
			},
		},
		"inbound flow lifecycle": {
			prepareAccounts: []account{
				{address: approved.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &AllowAccountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Account:  approved.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{approved},
					msg: &OpenInboundMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Rate:     coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{approved},
					msg: &UpdateInboundMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Rate:     coin.NewCoinp(2, 0, "IOV"),
					},
					blockTime: genesis.Add(10 * time.Second),
				},
				{
					conditions: []weave.Condition{approved},
					msg: &CloseInboundMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Ticker:   "IOV",
					},
					blockTime: genesis.Add(15 * time.Second),
				},
			},
			wantAccounts: []account{
				{address: approved.Address(), coins: coin.Coins{coin.NewCoinp(80, 0, "IOV")}},
				{address: relayAddr, coins: coin.Coins{coin.NewCoinp(20, 0, "IOV")}},
			},
		},
		"outbound flow lifecycle": {
			prepareAccounts: []account{
				{address: owner.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &CreateRelayMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Owner:    owner.Address(),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &DepositMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(1),
						Amount:   coin.NewCoinp(500, 0, "IOV"),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &OpenOutboundMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						RelayID:     weavetest.SequenceID(1),
						Destination: dest1,
						Rate:        coin.NewCoinp(2, 0, "IOV"),
					},
					blockTime: genesis,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &UpdateOutboundMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						RelayID:     weavetest.SequenceID(1),
						Destination: dest1,
						Rate:        coin.NewCoinp(3, 0, "IOV"),
					},
					blockTime: genesis.Add(10 * time.Second),
				},
				{
					conditions: []weave.Condition{owner},
					msg: &CloseOutboundMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						RelayID:     weavetest.SequenceID(1),
						Destination: dest1,
						Ticker:      "IOV",
					},
					blockTime: genesis.Add(20 * time.Second),
				},
			},
			wantAccounts: []account{
				{address: owner.Address(), coins: coin.Coins{coin.NewCoinp(500, 0, "IOV")}},
				{address: relayAddr, coins: coin.Coins{coin.NewCoinp(450, 0, "IOV")}},
				{address: dest1, coins: coin.Coins{coin.NewCoinp(50, 0, "IOV")}},
			},
		},
		"operating on a missing relay fails": {
			actions: []action{
				{
					conditions: []weave.Condition{owner},
					msg: &DepositMsg{
						Metadata: &weave.Metadata{Schema: 1},
						RelayID:  weavetest.SequenceID(42),
						Amount:   coin.NewCoinp(1, 0, "IOV"),
					},
					blockTime:    genesis,
					wantCheckErr: errors.ErrNotFound,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "currency", "stream", "relay")

			tokens := currency.NewTokenInfoBucket()
			if err := tokens.Save(db, currency.NewTokenInfo("IOV", "Main token")); err != nil {
				t.Fatalf("cannot register token: %s", err)
			}

			for _, a := range tc.prepareAccounts {
				for _, c := range a.coins {
					if err := cashCtrl.CoinMint(db, a.address, *c); err != nil {
						t.Fatalf("cannot issue %q to %s: %s", c, a.address, err)
					}
				}
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

			for i, a := range tc.wantAccounts {
				coins, err := cashCtrl.Balance(db, a.address)
				if err != nil {
					t.Fatalf("cannot get %+v balance: %s", a, err)
				}
				if !coins.Equals(a.coins) {
					t.Logf("want: %+v", a.coins)
					t.Logf(" got: %+v", coins)
					t.Errorf("unexpected coins for account #%d (%s)", i, a.address)
				}
			}
		})
	}
}

func TestSplitIDsAreSequential(t *testing.T) {
	owner := weavetest.NewCondition()
	dest1 := weavetest.NewCondition().Address()
	dest2 := weavetest.NewCondition().Address()
	dest3 := weavetest.NewCondition().Address()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	cashCtrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, stream.NewController(cashCtrl), cashCtrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "currency", "stream", "relay")
	tokens := currency.NewTokenInfoBucket()
	if err := tokens.Save(db, currency.NewTokenInfo("IOV", "Main token")); err != nil {
		t.Fatalf("cannot register token: %s", err)
	}

	ctx := weave.WithBlockTime(context.Background(), time.Now())
	ctx = auth.SetConditions(ctx, owner)

	deliver := func(msg weave.Msg) *weave.DeliverResult {
		t.Helper()
		res, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: msg})
		if err != nil {
			t.Fatalf("cannot deliver %T: %s", msg, err)
		}
		return res
	}

	deliver(&CreateRelayMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner.Address(),
	})

	res := deliver(&StreamEquallyMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		RelayID:      weavetest.SequenceID(1),
		Destinations: []weave.Address{dest1, dest2},
		Rate:         coin.NewCoinp(1, 0, "IOV"),
	})
	if !bytes.Equal(res.Data, weavetest.SequenceID(1)) {
		t.Fatalf("want the first split ID to be 1, got %x", res.Data)
	}
	wantTags := map[string]bool{
		tagSplitID: false, tagSender: false, tagToken: false, tagTokenName: false,
	}
	for _, tag := range res.Tags {
		if _, ok := wantTags[string(tag.Key)]; ok {
			wantTags[string(tag.Key)] = true
		}
	}
	for name, found := range wantTags {
		if !found {
			t.Errorf("tag %q not emitted", name)
		}
	}

	res = deliver(&StreamUnequallyMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		RelayID:      weavetest.SequenceID(1),
		Destinations: []weave.Address{dest3},
		Rates:        []coin.Coin{coin.NewCoin(2, 0, "IOV")},
	})
	if !bytes.Equal(res.Data, weavetest.SequenceID(2)) {
		t.Fatalf("want the second split ID to be 2, got %x", res.Data)
	}

	var split Split
	if err := NewSplitBucket().One(db, weavetest.SequenceID(2), &split); err != nil {
		t.Fatalf("cannot get split: %s", err)
	}
	if !split.Source.Equals(owner.Address()) {
		t.Errorf("unexpected split source %q", split.Source)
	}
	if split.TokenName != "Main token" {
		t.Errorf("unexpected token name %q", split.TokenName)
	}
	if split.Ticker != "IOV" {
		t.Errorf("unexpected ticker %q", split.Ticker)
	}
}

func TestFanOutIsAtomic(t *testing.T) {
	owner := weavetest.NewCondition()
	dest1 := weavetest.NewCondition().Address()
	dest2 := weavetest.NewCondition().Address()
	dest3 := weavetest.NewCondition().Address()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	cashCtrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, stream.NewController(cashCtrl), cashCtrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "currency", "stream", "relay")
	tokens := currency.NewTokenInfoBucket()
	if err := tokens.Save(db, currency.NewTokenInfo("IOV", "Main token")); err != nil {
		t.Fatalf("cannot register token: %s", err)
	}

	ctx := weave.WithBlockTime(context.Background(), time.Now())
	ctx = auth.SetConditions(ctx, owner)

	if _, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: &CreateRelayMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner.Address(),
	}}); err != nil {
		t.Fatalf("cannot create relay: %s", err)
	}
	if _, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: &OpenOutboundMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		RelayID:     weavetest.SequenceID(1),
		Destination: dest1,
		Rate:        coin.NewCoinp(1, 0, "IOV"),
	}}); err != nil {
		t.Fatalf("cannot open outbound flow: %s", err)
	}

	// A fan-out that runs into an existing flow must fail as a whole. The
	// application wraps every delivery in a savepoint, the cache stands in
	// for it here.
	cache := db.CacheWrap()
	_, err := rt.Deliver(ctx, cache, &weavetest.Tx{Msg: &StreamEquallyMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		RelayID:      weavetest.SequenceID(1),
		Destinations: []weave.Address{dest2, dest1},
		Rate:         coin.NewCoinp(1, 0, "IOV"),
	}})
	if !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate error, got %+v", err)
	}
	cache.Discard()

	// The discarded fan-out must not burn a split ID. The first successful
	// fan-out still gets ID 1.
	res, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: &StreamEquallyMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		RelayID:      weavetest.SequenceID(1),
		Destinations: []weave.Address{dest2, dest3},
		Rate:         coin.NewCoinp(1, 0, "IOV"),
	}})
	if err != nil {
		t.Fatalf("cannot fan out: %s", err)
	}
	if !bytes.Equal(res.Data, weavetest.SequenceID(1)) {
		t.Fatalf("want split ID 1, got %x", res.Data)
	}
}

// account represents a single account state - the coins/funds it holds.
type account struct {
	address weave.Address
	coins   coin.Coins
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
