package raster

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// ErrBadColor is returned for colour strings which are not hex colours.
var ErrBadColor = errors.New("bad colour")

// Hex parses a colour from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", optionally prefixed by '#'.
func Hex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	var short bool
	switch len(s) {
	case 3, 4:
		short = true
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	if len(s) == 3 || len(s) == 6 {
		if short {
			v = v<<4 | 0xf
		} else {
			v = v<<8 | 0xff
		}
	}
	if short {
		r, g, b, a := v>>12&0xf, v>>8&0xf, v>>4&0xf, v&0xf
		return color.NRGBA{R: uint8(r * 17), G: uint8(g * 17), B: uint8(b * 17), A: uint8(a * 17)}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is like Hex, but panics on malformed colours.
func MustHex(hex string) color.NRGBA {
	c, err := Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
