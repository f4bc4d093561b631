// Package order contains the Order aggregate as consumed by the packaging engine.
//
// Orders are created at checkout elsewhere; this package only models the parts the engine
// reads and writes: status, intended receive date, operating-slot time frame, total weight,
// destination building and the delivery-package back-reference.
//
// Key invariant: an order references at most one delivery package, and only a Preparing
// order without a package can be attached to one (AttachToPackage).
package order
