package stream

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestFlowValidate(t *testing.T) {
	source := weavetest.NewCondition().Address()
	destination := weavetest.NewCondition().Address()

	valid := func() Flow {
		return Flow{
			Metadata:    &weave.Metadata{Schema: 1},
			Source:      source,
			Destination: destination,
			Rate:        coin.NewCoinp(1, 0, "IOV"),
			UpdatedAt:   1565000000,
		}
	}

	cases := map[string]struct {
		mod     func(*Flow)
		wantErr *errors.Error
	}{
		"valid": {
			mod: func(*Flow) {},
		},
		"missing metadata": {
			mod:     func(f *Flow) { f.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"source and destination are the same": {
			mod:     func(f *Flow) { f.Destination = f.Source },
			wantErr: errors.ErrModel,
		},
		"missing rate": {
			mod:     func(f *Flow) { f.Rate = nil },
			wantErr: errors.ErrModel,
		},
		"negative rate": {
			mod:     func(f *Flow) { f.Rate = coin.NewCoinp(-1, 0, "IOV") },
			wantErr: errors.ErrModel,
		},
		"missing updated at": {
			mod:     func(f *Flow) { f.UpdatedAt = 0 },
			wantErr: errors.ErrModel,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := valid()
			tc.mod(&f)
			if err := f.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}
