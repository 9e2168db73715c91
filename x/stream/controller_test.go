package stream

import (
	"context"
	"testing"
	"time"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/currency"
)

func TestFlowSettlement(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "currency", "stream")

	tokens := currency.NewTokenInfoBucket()
	if err := tokens.Save(db, currency.NewTokenInfo("IOV", "Main token")); err != nil {
		t.Fatalf("cannot register token: %s", err)
	}

	cashCtrl := cash.NewController(cash.NewBucket())
	ctrl := NewController(cashCtrl)

	source := weavetest.NewCondition().Address()
	destination := weavetest.NewCondition().Address()
	if err := cashCtrl.CoinMint(db, source, coin.NewCoin(1000, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	genesis := time.Now().UTC().Round(time.Second)
	at := func(offset time.Duration) weave.Context {
		return weave.WithBlockTime(context.Background(), genesis.Add(offset))
	}

	if err := ctrl.OpenFlow(at(0), db, source, destination, coin.NewCoin(1, 0, "IOV")); err != nil {
		t.Fatalf("cannot open flow: %s", err)
	}

	// Opening must not move any money.
	assertBalance(t, cashCtrl, db, destination, nil)

	// A second flow for the same triple must be refused.
	if err := ctrl.OpenFlow(at(10*time.Second), db, source, destination, coin.NewCoin(5, 0, "IOV")); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate error, got %+v", err)
	}

	// Updating 100 seconds later settles 100 tokens at the old rate.
	if err := ctrl.UpdateFlow(at(100*time.Second), db, source, destination, coin.NewCoin(2, 0, "IOV")); err != nil {
		t.Fatalf("cannot update flow: %s", err)
	}
	assertBalance(t, cashCtrl, db, destination, coin.Coins{coin.NewCoinp(100, 0, "IOV")})

	// Closing 50 seconds later settles 100 more at the new rate and
	// deletes the flow.
	if err := ctrl.CloseFlow(at(150*time.Second), db, source, destination, "IOV"); err != nil {
		t.Fatalf("cannot close flow: %s", err)
	}
	assertBalance(t, cashCtrl, db, destination, coin.Coins{coin.NewCoinp(200, 0, "IOV")})
	assertBalance(t, cashCtrl, db, source, coin.Coins{coin.NewCoinp(800, 0, "IOV")})

	if err := ctrl.CloseFlow(at(151*time.Second), db, source, destination, "IOV"); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found error, got %+v", err)
	}
}

func TestOpenFlowUnknownToken(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "currency", "stream")

	cashCtrl := cash.NewController(cash.NewBucket())
	ctrl := NewController(cashCtrl)

	source := weavetest.NewCondition().Address()
	destination := weavetest.NewCondition().Address()
	ctx := weave.WithBlockTime(context.Background(), time.Now())
	if err := ctrl.OpenFlow(ctx, db, source, destination, coin.NewCoin(1, 0, "DOGE")); !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %+v", err)
	}
}

func TestSettlementFailsOnMissingFunds(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "currency", "stream")

	tokens := currency.NewTokenInfoBucket()
	if err := tokens.Save(db, currency.NewTokenInfo("IOV", "Main token")); err != nil {
		t.Fatalf("cannot register token: %s", err)
	}

	cashCtrl := cash.NewController(cash.NewBucket())
	ctrl := NewController(cashCtrl)

	source := weavetest.NewCondition().Address()
	destination := weavetest.NewCondition().Address()
	if err := cashCtrl.CoinMint(db, source, coin.NewCoin(10, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	genesis := time.Now().UTC().Round(time.Second)
	ctx := weave.WithBlockTime(context.Background(), genesis)
	if err := ctrl.OpenFlow(ctx, db, source, destination, coin.NewCoin(1, 0, "IOV")); err != nil {
		t.Fatalf("cannot open flow: %s", err)
	}

	// After 100 seconds the source owes 100 tokens but holds only 10. The
	// settlement failure must be passed through so the caller can fail the
	// whole transaction.
	later := weave.WithBlockTime(context.Background(), genesis.Add(100*time.Second))
	if err := ctrl.CloseFlow(later, db, source, destination, "IOV"); err == nil {
		t.Fatal("want an error, got none")
	}

	// The failed close must not delete the flow.
	var flow Flow
	if err := NewFlowBucket().One(db, flowKey(source, destination, "IOV"), &flow); err != nil {
		t.Fatalf("cannot get flow: %s", err)
	}
}

func assertBalance(t *testing.T, ctrl cash.Controller, db weave.KVStore, addr weave.Address, want coin.Coins) {
	t.Helper()
	coins, err := ctrl.Balance(db, addr)
	if err != nil && !errors.ErrEmpty.Is(err) && !errors.ErrNotFound.Is(err) {
		t.Fatalf("cannot get %q balance: %s", addr, err)
	}
	if !coins.Equals(want) {
		t.Logf("want: %+v", want)
		t.Logf(" got: %+v", coins)
		t.Fatalf("unexpected balance for %q", addr)
	}
}
