package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/coinbase/ecf2m-go/pkg/ecf2m"
	"github.com/coinbase/ecf2m-go/pkg/ecf2m/curve"
)

func main() {
	curveName := flag.String("curve", "K-163", "binary curve to sample on (K-163, B-163, K-233, B-233, K-283)")
	flag.Parse()

	log.Printf("ecf2m-go version: %s", ecf2m.LibraryVersion())

	c, ok := curveByName(*curveName)
	if !ok {
		log.Fatalf("unknown curve %q", *curveName)
	}

	sess, err := ecf2m.NewSession(c)
	if err != nil {
		log.Fatalf("opening session: %v", err)
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	h, valid, err := sess.SampleRandomPoint(c.FieldDegree())
	if err != nil {
		log.Fatalf("sampling point: %v", err)
	}
	defer func() {
		if derr := sess.DisposePoint(h); derr != nil {
			log.Printf("dispose error: %v", derr)
		}
	}()

	if !valid {
		fmt.Printf("sampling budget exhausted on %s; retry at a higher level\n", c)
		return
	}

	x, y, err := sess.PointCoordinates(h)
	if err != nil {
		log.Fatalf("reading coordinates: %v", err)
	}
	fmt.Printf("sampled point on %s\n", c)
	fmt.Printf("  x = %s\n", hex.EncodeToString(x))
	fmt.Printf("  y = %s\n", hex.EncodeToString(y))
}

func curveByName(name string) (curve.Curve, bool) {
	for _, c := range curve.All() {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
