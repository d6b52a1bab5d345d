// Package ecf2m manages the lifecycle of elliptic curve points over binary
// extension fields GF(2^m): construction from untrusted coordinate bytes,
// uniform random sampling with a bounded retry budget, and explicit disposal
// through opaque handles.
//
// The API mirrors the contract of a native binding layer — points live
// behind integer handles and must be disposed exactly once — but hardens it:
// handles are generation checked, so double dispose and use after dispose
// return errors instead of corrupting memory.
//
// # Sessions
//
// All operations run against a Session, which owns the field-arithmetic
// context for one curve:
//
//	sess, err := ecf2m.NewSession(curve.K163)
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	h, valid, err := sess.ConstructPoint(xBytes, yBytes)
//	if err != nil {
//	    return err
//	}
//	defer sess.DisposePoint(h)
//	if !valid {
//	    // off-curve input; the handle still had to be disposed
//	}
//
// # Validity flags
//
// Construction and sampling always return a handle together with a validity
// flag. An off-curve input or an exhausted sampling budget is a reportable
// outcome carried by the flag, never an error; errors are reserved for
// session misuse (closed session, invalid arguments, stale handles).
//
// # Concurrency
//
// A Session is not safe for unsynchronized concurrent use by multiple
// goroutines: the sampler mutates shared random-generator state. Serialize
// access externally or create one session per goroutine. Handle bookkeeping
// itself is mutex-guarded, so misuse cannot corrupt the handle table.
package ecf2m
