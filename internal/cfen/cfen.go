// Package cfen implements a compact, run-length-encoded text notation for a
// facelet state: six faces in U/R/F/D/L/B order, each nine stickers
// top-left to bottom-right, with runs of a repeated color collapsed to
// "<color><count>". A sticker may also be the wildcard "?", used only for
// pattern matching against a live cube, never for a concrete target state.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/delford/twophase-cube/internal/cube"
)

// wildcard marks a sticker that matches any color.
const wildcard = -1

// State is a parsed CFEN string: six faces of nine stickers, in the fixed
// U, R, F, D, L, B order CFEN uses (independent of the internal Cube
// type's U, D, L, R, F, B field order).
type State struct {
	Faces [6][9]int
}

// cfenFaceOrder maps a CFEN face index (U,R,F,D,L,B) to the internal Face.
var cfenFaceOrder = [6]cube.Face{cube.U, cube.R, cube.F, cube.D, cube.L, cube.B}

var colorChars = [cube.NumColors]byte{'W', 'Y', 'G', 'B', 'R', 'O'}

func colorChar(c cube.Color) byte { return colorChars[c] }

func parseSticker(ch byte) (int, error) {
	for i, cc := range colorChars {
		if cc == ch {
			return i, nil
		}
	}
	if ch == '?' {
		return wildcard, nil
	}
	return 0, fmt.Errorf("unknown sticker character %q", ch)
}

// String renders the state as CFEN, faces separated by "/".
func (s *State) String() string {
	var sb strings.Builder
	for i, face := range s.Faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(runLengthEncode(face))
	}
	return sb.String()
}

func runLengthEncode(face [9]int) string {
	var sb strings.Builder
	run := 1
	for i := 1; i <= 9; i++ {
		if i < 9 && face[i] == face[i-1] {
			run++
			continue
		}
		writeSticker(&sb, face[i-1])
		if run > 1 {
			sb.WriteString(strconv.Itoa(run))
		}
		run = 1
	}
	return sb.String()
}

func writeSticker(sb *strings.Builder, v int) {
	if v == wildcard {
		sb.WriteByte('?')
		return
	}
	sb.WriteByte(colorChar(cube.Color(v)))
}

var tokenRe = regexp.MustCompile(`([WYGBRO?])(\d*)`)

// Parse reads a CFEN string into a State.
func Parse(s string) (*State, error) {
	faceStrs := strings.Split(s, "/")
	if len(faceStrs) != 6 {
		return nil, fmt.Errorf("expected 6 faces separated by '/', got %d", len(faceStrs))
	}

	var state State
	for i, fs := range faceStrs {
		stickers, err := parseFace(fs)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		state.Faces[i] = stickers
	}
	return &state, nil
}

func parseFace(fs string) ([9]int, error) {
	var out [9]int
	matches := tokenRe.FindAllStringSubmatchIndex(fs, -1)
	if matches == nil {
		return out, fmt.Errorf("no valid sticker tokens found in %q", fs)
	}

	pos := 0
	covered := 0
	for _, m := range matches {
		if m[0] != covered {
			return out, fmt.Errorf("unparseable characters before index %d in %q", m[0], fs)
		}
		ch := fs[m[2]]
		v, err := parseSticker(ch)
		if err != nil {
			return out, err
		}
		count := 1
		if m[4] != m[5] {
			n, err := strconv.Atoi(fs[m[4]:m[5]])
			if err != nil || n < 1 {
				return out, fmt.Errorf("invalid run count in %q", fs[m[0]:m[1]])
			}
			count = n
		}
		for i := 0; i < count; i++ {
			if pos >= 9 {
				return out, fmt.Errorf("face %q has more than 9 stickers", fs)
			}
			out[pos] = v
			pos++
		}
		covered = m[1]
	}
	if covered != len(fs) {
		return out, fmt.Errorf("trailing unparseable characters in %q", fs)
	}
	if pos != 9 {
		return out, fmt.Errorf("face %q has %d stickers, want 9", fs, pos)
	}
	return out, nil
}

// Validate parses s and discards the result, returning only the error.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}
