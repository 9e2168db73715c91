package relay

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestRelayAuthorized(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	approved := weavetest.NewCondition().Address()
	stranger := weavetest.NewCondition().Address()

	rel := Relay{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Approved: []weave.Address{approved},
		Address:  RelayAccount(weavetest.SequenceID(1)),
	}

	if !rel.Authorized(owner) {
		t.Error("owner must be authorized")
	}
	if !rel.Authorized(approved) {
		t.Error("approved account must be authorized")
	}
	if rel.Authorized(stranger) {
		t.Error("stranger must not be authorized")
	}
}

func TestSplitValidate(t *testing.T) {
	source := weavetest.NewCondition().Address()
	dest1 := weavetest.NewCondition().Address()
	dest2 := weavetest.NewCondition().Address()

	valid := func() Split {
		return Split{
			Metadata:     &weave.Metadata{Schema: 1},
			RelayID:      weavetest.SequenceID(1),
			Source:       source,
			Destinations: []weave.Address{dest1, dest2},
			Rates:        []coin.Coin{coin.NewCoin(1, 0, "IOV")},
			Ticker:       "IOV",
			TokenName:    "Main token",
		}
	}

	cases := map[string]struct {
		mod     func(*Split)
		wantErr *errors.Error
	}{
		"valid": {
			mod: func(*Split) {},
		},
		"per destination rates": {
			mod: func(s *Split) {
				s.Rates = []coin.Coin{
					coin.NewCoin(1, 0, "IOV"),
					coin.NewCoin(2, 0, "IOV"),
				}
			},
		},
		"missing relay ID": {
			mod:     func(s *Split) { s.RelayID = nil },
			wantErr: errors.ErrModel,
		},
		"no destinations": {
			mod:     func(s *Split) { s.Destinations = nil },
			wantErr: errors.ErrModel,
		},
		"repeated destination": {
			mod: func(s *Split) {
				s.Destinations = []weave.Address{dest1, dest1}
			},
			wantErr: errors.ErrModel,
		},
		"rate count mismatch": {
			mod: func(s *Split) {
				s.Destinations = []weave.Address{dest1, dest2}
				s.Rates = make([]coin.Coin, 3)
			},
			wantErr: errors.ErrModel,
		},
		"zero rate": {
			mod: func(s *Split) {
				s.Rates = []coin.Coin{coin.NewCoin(0, 0, "IOV")}
			},
			wantErr: errors.ErrModel,
		},
		"bad ticker": {
			mod:     func(s *Split) { s.Ticker = "io" },
			wantErr: errors.ErrModel,
		},
		"missing token name": {
			mod:     func(s *Split) { s.TokenName = "" },
			wantErr: errors.ErrModel,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			s := valid()
			tc.mod(&s)
			if err := s.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}
