/*
Package stream implements continuous token payments.

A flow moves a fixed amount of a token from a source account to a destination
account every second. Settlement is lazy. Whenever a flow is opened, updated
or closed, the value accrued since the previous settlement is transferred
through the cash controller in a single move. An account that cannot cover the
accrued value fails the settlement and with it the whole operation.

The package exposes a Controller that other extensions can use to manage
flows on behalf of their own accounts. The x/relay extension builds its
fan-out streaming on top of it.
*/
package stream
