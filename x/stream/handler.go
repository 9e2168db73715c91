package stream

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

const (
	createFlowCost int64 = 100
	updateFlowCost int64 = 50
	deleteFlowCost int64 = 0
)

// RegisterQuery registers the flow bucket for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewFlowBucket().Register("flows", qr)
}

// RegisterRoutes registers handlers for flow message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl Controller) {
	r = migration.SchemaMigratingRegistry("stream", r)

	r.Handle(&CreateFlowMsg{}, &createFlowHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateFlowMsg{}, &updateFlowHandler{auth: auth, ctrl: ctrl})
	r.Handle(&DeleteFlowMsg{}, &deleteFlowHandler{auth: auth, ctrl: ctrl})
}

type createFlowHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = (*createFlowHandler)(nil)

func (h *createFlowHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createFlowCost}, nil
}

func (h *createFlowHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.OpenFlow(ctx, db, msg.Source, msg.Destination, *msg.Rate); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: flowKey(msg.Source, msg.Destination, msg.Rate.Ticker)}, nil
}

func (h *createFlowHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateFlowMsg, error) {
	var msg CreateFlowMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// Only the source can open a flow that drains its account.
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source did not sign")
	}
	return &msg, nil
}

type updateFlowHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = (*updateFlowHandler)(nil)

func (h *updateFlowHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateFlowCost}, nil
}

func (h *updateFlowHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.UpdateFlow(ctx, db, msg.Source, msg.Destination, *msg.Rate); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateFlowHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateFlowMsg, error) {
	var msg UpdateFlowMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source did not sign")
	}
	return &msg, nil
}

type deleteFlowHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = (*deleteFlowHandler)(nil)

func (h *deleteFlowHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: deleteFlowCost}, nil
}

func (h *deleteFlowHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.CloseFlow(ctx, db, msg.Source, msg.Destination, msg.Ticker); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *deleteFlowHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DeleteFlowMsg, error) {
	var msg DeleteFlowMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// Both ends of a flow may close it. The destination gives up future
	// income, the source stops paying.
	if !h.auth.HasAddress(ctx, msg.Source) && !h.auth.HasAddress(ctx, msg.Destination) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "neither source nor destination signed")
	}
	return &msg, nil
}
