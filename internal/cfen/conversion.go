package cfen

import (
	"fmt"

	"github.com/delford/twophase-cube/internal/cube"
)

// ToCube builds a concrete Cube from the state. It fails if any sticker is
// a wildcard, since a wildcard has no single color to place.
func (s *State) ToCube() (*cube.Cube, error) {
	c := &cube.Cube{}
	for i, face := range s.Faces {
		f := cfenFaceOrder[i]
		for pos, v := range face {
			if v == wildcard {
				return nil, fmt.Errorf("cannot build a concrete cube from a wildcard sticker (face %d, position %d)", i, pos)
			}
			c.Facelets[int(f)*9+pos] = cube.Color(v)
		}
	}
	return c, nil
}

// FromCube renders c as a CFEN State with no wildcards.
func FromCube(c *cube.Cube) *State {
	var s State
	for i, f := range cfenFaceOrder {
		for pos := 0; pos < 9; pos++ {
			s.Faces[i][pos] = int(c.Facelets[int(f)*9+pos])
		}
	}
	return &s
}

// Generate renders c directly as a CFEN string.
func Generate(c *cube.Cube) string {
	return FromCube(c).String()
}

// Matches reports whether c's facelets agree with s everywhere s is not a
// wildcard.
func (s *State) Matches(c *cube.Cube) bool {
	for i, f := range cfenFaceOrder {
		for pos := 0; pos < 9; pos++ {
			v := s.Faces[i][pos]
			if v == wildcard {
				continue
			}
			if cube.Color(v) != c.Facelets[int(f)*9+pos] {
				return false
			}
		}
	}
	return true
}
