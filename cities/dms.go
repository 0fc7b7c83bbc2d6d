package cities

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDMS is returned by ParseDMS for malformed coordinates.
var ErrInvalidDMS = errors.New("cities: invalid DMS coordinate")

const (
	dmsSep       = "_"
	packDegrees  = 10000
	packMinutes  = 100
	minutesInDeg = 60
)

// ParseDMS parses "[-]D[_MM[_SS]]" into the packed form D*10000 + MM*100 + SS,
// negated when the input carries a leading minus. Minutes and seconds must be
// in [0, 60).
//
//	ParseDMS("42_21_29")  → 422129
//	ParseDMS("-71_03_49") → -710349
func ParseDMS(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	sign := 1.0
	switch {
	case strings.HasPrefix(raw, "-"):
		sign, raw = -1, raw[1:]
	case strings.HasPrefix(raw, "+"):
		raw = raw[1:]
	}

	parts := strings.Split(raw, dmsSep)
	if raw == "" || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDMS, s)
	}
	var fields [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDMS, s)
		}
		if i > 0 && v >= minutesInDeg {
			return 0, fmt.Errorf("%w: %q: component %d out of range", ErrInvalidDMS, s, v)
		}
		fields[i] = v
	}

	packed := fields[0]*packDegrees + fields[1]*packMinutes + fields[2]

	return sign * float64(packed), nil
}

// MustParseDMS is ParseDMS for literals known to be valid.
func MustParseDMS(s string) float64 {
	v, err := ParseDMS(s)
	if err != nil {
		panic(err)
	}

	return v
}

// ToDegrees converts a packed DMS value into decimal degrees.
func ToDegrees(packed float64) float64 {
	sign := 1.0
	if packed < 0 {
		sign, packed = -1, -packed
	}
	deg := math.Floor(packed / packDegrees)
	rest := packed - deg*packDegrees
	minutes := math.Floor(rest / packMinutes)
	seconds := rest - minutes*packMinutes

	return sign * (deg + minutes/minutesInDeg + seconds/(minutesInDeg*minutesInDeg))
}
