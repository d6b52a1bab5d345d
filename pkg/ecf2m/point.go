package ecf2m

import (
	"encoding/hex"
	"runtime"
)

// Point is a convenience wrapper around a Handle that carries its validity
// flag and enforces the disposal contract. The handle-level API on Session
// remains available for callers that manage lifetimes themselves.
//
// A finalizer is set as a safety net, but explicit Free is recommended so
// native-style resources are released promptly.
type Point struct {
	sess  *Session
	h     Handle
	valid bool
	freed bool
}

// NewPoint constructs a point from big-endian coordinate bytes. The point is
// always returned, even when the coordinates are off curve; check Valid
// before using it in arithmetic, and Free it either way.
func (s *Session) NewPoint(xBytes, yBytes []byte) (*Point, error) {
	h, valid, err := s.ConstructPoint(xBytes, yBytes)
	if err != nil {
		return nil, err
	}
	return s.wrap(h, valid), nil
}

// NewRandomPoint samples a point with field-size class mod; see
// SampleRandomPoint for the retry semantics.
func (s *Session) NewRandomPoint(mod int) (*Point, error) {
	h, valid, err := s.SampleRandomPoint(mod)
	if err != nil {
		return nil, err
	}
	return s.wrap(h, valid), nil
}

func (s *Session) wrap(h Handle, valid bool) *Point {
	p := &Point{sess: s, h: h, valid: valid}
	runtime.SetFinalizer(p, func(fp *Point) { _ = fp.Free() })
	return p
}

// Handle returns the underlying session handle.
func (p *Point) Handle() Handle {
	return p.h
}

// Valid reports whether the point satisfied the curve equation when it was
// constructed or sampled.
func (p *Point) Valid() bool {
	return p.valid
}

// X returns the reduced big-endian x coordinate.
func (p *Point) X() ([]byte, error) {
	x, _, err := p.sess.PointCoordinates(p.h)
	return x, err
}

// Y returns the reduced big-endian y coordinate.
func (p *Point) Y() ([]byte, error) {
	_, y, err := p.sess.PointCoordinates(p.h)
	return y, err
}

// IsInfinity reports whether the point is the point-at-infinity sentinel.
func (p *Point) IsInfinity() (bool, error) {
	return p.sess.PointIsInfinity(p.h)
}

// Free disposes the underlying point. The first call releases the handle;
// repeated calls return nil rather than reporting the disposal contract
// violation, since the wrapper itself guarantees single disposal.
func (p *Point) Free() error {
	if p == nil || p.freed {
		return nil
	}
	if err := p.sess.DisposePoint(p.h); err != nil {
		return err
	}
	p.freed = true
	runtime.SetFinalizer(p, nil)
	return nil
}

// String renders the point for diagnostics.
func (p *Point) String() string {
	if p == nil {
		return "Point(nil)"
	}
	if p.freed {
		return "Point(freed)"
	}
	if inf, err := p.IsInfinity(); err == nil && inf {
		return "Point(infinity)"
	}
	x, y, err := p.sess.PointCoordinates(p.h)
	if err != nil {
		return "Point(invalid)"
	}
	return "Point(x: " + hex.EncodeToString(x) + ", y: " + hex.EncodeToString(y) + ")"
}
