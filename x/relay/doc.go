/*
Package relay implements access controlled accounts that forward streaming
operations.

A relay is owned by a single account. The owner maintains a list of approved
accounts. Owner and approved accounts can deposit into and withdraw from the
relay account, open, update and close flows between the relay account and any
other account, and fan a stream out to many destinations at once with a single
message. Each fan-out is recorded as a split with a strictly increasing ID,
starting from 1, so that off-chain consumers can reconcile emitted events with
persisted records.

Only the owner can change the approved list or hand the relay over to a new
owner. Removing an account from the approved list takes effect with the block
that delivers the removal.

All money movement is delegated to the stream and cash controllers. A fan-out
either opens a flow to every destination or, when any single flow fails, is
rolled back as a whole by the transaction savepoint.
*/
package relay
