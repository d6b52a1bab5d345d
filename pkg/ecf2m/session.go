package ecf2m

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/coinbase/ecf2m-go/pkg/ecf2m/curve"
	"github.com/coinbase/ecf2m-go/pkg/ecf2m/field"
	"github.com/coinbase/ecf2m-go/pkg/ecf2m/internal/pointstore"
	"github.com/coinbase/ecf2m-go/pkg/ecf2m/logging"
)

// Handle is an opaque reference to a curve point owned by a Session. Handles
// are valid from the moment they are returned until DisposePoint; the session
// never reuses a handle value for two distinct logical points. The zero
// Handle is never issued.
type Handle uint64

// Session owns the field-arithmetic context for one curve and the point
// objects constructed against it. It is the hardened replacement for the
// process-wide native context handle: points are referenced through
// generation-checked handles, so use-after-dispose and double-dispose are
// reported as errors rather than corrupting memory.
//
// A Session is not safe for unsynchronized concurrent use: SampleRandomPoint
// consumes shared random-generator state. Serialize access externally or
// create one session per goroutine.
type Session struct {
	curve  curve.Curve
	fctx   *field.Context
	points *pointstore.Store
	log    logging.Logger
	closed bool
}

type options struct {
	rand io.Reader
	log  logging.Logger
}

// Option configures a Session.
type Option func(*options)

// WithRand replaces the session's random source. The default is crypto/rand;
// tests may inject a deterministic reader. The source is seeded (or
// stateful) once per session — there is deliberately no per-attempt
// reseeding in the sampling loop.
func WithRand(r io.Reader) Option {
	return func(o *options) { o.rand = r }
}

// WithLogger attaches a structured logger. The default discards nothing and
// binds to slog.Default via the logging package.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewSession initializes a field-arithmetic session for the given curve.
func NewSession(c curve.Curve, opts ...Option) (*Session, error) {
	if !c.Known() {
		return nil, ErrUnknownCurve
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logging.New(nil)
	}

	fctx, err := field.NewContext(c.FieldDegree(), c.ReductionPolynomial(), c.A(), c.B(), o.rand)
	if err != nil {
		return nil, fmt.Errorf("ecf2m: initializing %s field context: %w", c, err)
	}

	return &Session{
		curve:  c,
		fctx:   fctx,
		points: pointstore.New(),
		log:    o.log.With("curve", c.String()),
	}, nil
}

// Curve returns the curve this session operates on.
func (s *Session) Curve() curve.Curve {
	return s.curve
}

// OpenPoints returns the number of points that have been constructed but not
// yet disposed. Useful for leak checks in tests and shutdown paths.
func (s *Session) OpenPoints() int {
	return s.points.Len()
}

// Close disposes every remaining point and invalidates the session. A second
// Close returns ErrSessionClosed.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	if s.closed {
		return ErrSessionClosed
	}
	leaked := s.points.Drain()
	for _, obj := range leaked {
		obj.Zeroize()
	}
	if len(leaked) > 0 {
		s.log.Debug(context.Background(), "disposed leftover points at session close", "count", len(leaked))
	}
	s.closed = true
	return nil
}

// ConstructPoint builds a curve point from big-endian x and y coordinate
// bytes. Coordinates of any length are accepted; values at or above the
// field modulus are reduced by the field collaborator.
//
// A handle is always returned, together with a validity flag reporting
// whether the point satisfies the curve equation. An off-curve pair is not
// an error: the caller receives an indeterminate point that must still be
// disposed. The error result covers only session-level misuse.
func (s *Session) ConstructPoint(xBytes, yBytes []byte) (Handle, bool, error) {
	if s.closed {
		return 0, false, ErrSessionClosed
	}

	x := s.fctx.ElementFromBytes(xBytes)
	y := s.fctx.ElementFromBytes(yBytes)
	obj := &pointstore.Object{
		X:       x,
		Y:       y,
		OnCurve: s.fctx.CheckOnCurve(x, y),
	}
	h := Handle(s.points.Put(obj))
	if !obj.OnCurve {
		s.log.Debug(context.Background(), "constructed off-curve point", "handle", uint64(h))
	}
	return h, obj.OnCurve, nil
}

// InfinityPoint constructs the distinguished point at infinity, the state a
// freshly initialized native point is in before coordinates are set.
func (s *Session) InfinityPoint() (Handle, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}
	obj := &pointstore.Object{
		X:        s.fctx.ElementFromBytes(nil),
		Y:        s.fctx.ElementFromBytes(nil),
		Infinity: true,
		OnCurve:  true,
	}
	return Handle(s.points.Put(obj)), nil
}

// SampleRandomPoint produces a point sampled uniformly among valid points.
// mod is the field-size class bounding candidate magnitudes: candidate x
// values are drawn below 2^mod, and the attempt budget is 2*mod.
//
// The validity flag reports whether a valid point was found within the
// budget. Exhaustion is not an error — the returned point is in an
// indeterminate state, the caller decides whether to retry, and the handle
// must be disposed either way. A non-nil error (closed session, invalid mod,
// random source failure) means no handle was allocated.
func (s *Session) SampleRandomPoint(mod int) (Handle, bool, error) {
	if s.closed {
		return 0, false, ErrSessionClosed
	}
	if mod <= 0 {
		return 0, false, fmt.Errorf("ecf2m: field-size class must be positive, got %d", mod)
	}

	// Arbitrary-precision ceiling: 2^mod never truncates, however large the
	// field-size class.
	ceiling := new(big.Int).Lsh(big.NewInt(1), uint(mod))

	obj := &pointstore.Object{
		X: s.fctx.ElementFromBytes(nil),
		Y: s.fctx.ElementFromBytes(nil),
	}
	attempts := 2 * mod
	for i := 0; i < attempts; i++ {
		x, err := s.fctx.RandomElement(ceiling)
		if err != nil {
			return 0, false, err
		}
		y, ok := s.fctx.SolveForY(x)
		if !ok {
			continue
		}
		obj.X = x
		obj.Y = y
		obj.OnCurve = true
		break
	}
	if !obj.OnCurve {
		s.log.Warn(context.Background(), "point sampling budget exhausted",
			"mod", mod, "attempts", attempts)
	}
	return Handle(s.points.Put(obj)), obj.OnCurve, nil
}

// DisposePoint releases the point behind h and wipes its coordinates.
// Exactly one disposal per handle is required; a second call, or a handle
// that was never issued, returns ErrInvalidHandle.
func (s *Session) DisposePoint(h Handle) error {
	if s.closed {
		return ErrSessionClosed
	}
	obj, err := s.points.Free(pointstore.Ref(h))
	if err != nil {
		return ErrInvalidHandle
	}
	obj.Zeroize()
	return nil
}

// PointCoordinates returns the reduced big-endian coordinate bytes of the
// point behind h. The zero coordinate encodes as an empty slice.
func (s *Session) PointCoordinates(h Handle) (xBytes, yBytes []byte, err error) {
	obj, err := s.get(h)
	if err != nil {
		return nil, nil, err
	}
	return obj.X.Bytes(), obj.Y.Bytes(), nil
}

// PointIsOnCurve returns the validity flag recorded when the point was
// constructed or sampled.
func (s *Session) PointIsOnCurve(h Handle) (bool, error) {
	obj, err := s.get(h)
	if err != nil {
		return false, err
	}
	return obj.OnCurve, nil
}

// PointIsInfinity reports whether the point is the point-at-infinity
// sentinel.
func (s *Session) PointIsInfinity(h Handle) (bool, error) {
	obj, err := s.get(h)
	if err != nil {
		return false, err
	}
	return obj.Infinity, nil
}

func (s *Session) get(h Handle) (*pointstore.Object, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	obj, err := s.points.Get(pointstore.Ref(h))
	if err != nil {
		return nil, ErrInvalidHandle
	}
	return obj, nil
}

// newSessionWithContext wires a session around an existing field context.
// Used by tests that need non-standard field parameters.
func newSessionWithContext(c curve.Curve, fctx *field.Context) *Session {
	return &Session{
		curve:  c,
		fctx:   fctx,
		points: pointstore.New(),
		log:    logging.New(nil),
	}
}
