// This file is part of c64core.
//
// c64core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// c64core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with c64core.  If not, see <https://www.gnu.org/licenses/>.

// Package sprite implements the VIC-II's eight independent hardware sprite
// state machines: DMA read state, expansion state, and the pixel
// serializer that turns three fetched bytes into a stream of colour
// indices. It has no notion of the raster beam or of screen coordinates
// beyond the x/y attributes a caller sets; driving a sprite through a
// frame (initUpdate/initPainting/readLineData/getNextPixel, in that order)
// is the VIC-II model's job.
package sprite

// MemoryReader is the read-only view of emulated memory a sprite needs for
// DMA. Sprites never write to memory, so they are handed the narrowest
// interface that satisfies their needs rather than the full CPU-facing
// memory type.
type MemoryReader interface {
	Peek(index int) uint8
}

// Sprite is one hardware sprite's state.
type Sprite struct {
	mem MemoryReader

	x, y int

	enabled    bool
	multicolor bool
	expandX    bool
	expandY    bool
	priority   bool

	colors [4]uint8

	painting bool

	pointer, lastPointer int

	lineData uint32
	bitRead  int
	nextByte int

	firstYRead bool

	needsCharCacheRefresh bool
}

// New creates a sprite reading DMA data from mem.
func New(mem MemoryReader) *Sprite {
	return &Sprite{mem: mem}
}

// X returns the sprite's screen X coordinate.
func (s *Sprite) X() int { return s.x }

// SetX sets the sprite's screen X coordinate.
func (s *Sprite) SetX(x int) {
	if s.enabled && s.x != x {
		s.needsCharCacheRefresh = true
	}
	s.x = x
}

// Y returns the sprite's screen Y coordinate.
func (s *Sprite) Y() int { return s.y }

// SetY sets the sprite's screen Y coordinate.
func (s *Sprite) SetY(y int) {
	if s.enabled && s.y != y {
		s.needsCharCacheRefresh = true
	}
	s.y = y
}

// Enabled reports whether the sprite participates in rendering.
func (s *Sprite) Enabled() bool { return s.enabled }

// SetEnabled sets whether the sprite participates in rendering.
func (s *Sprite) SetEnabled(enabled bool) {
	if s.enabled != enabled {
		s.needsCharCacheRefresh = true
	}
	s.enabled = enabled
}

// Multicolor reports whether the sprite uses 2-bit multicolor pixels.
func (s *Sprite) Multicolor() bool { return s.multicolor }

// SetMulticolor sets whether the sprite uses 2-bit multicolor pixels. This
// does not affect the char-cache refresh flag: colour mode alone does not
// change which characters behind the sprite need repainting.
func (s *Sprite) SetMulticolor(multicolor bool) {
	s.multicolor = multicolor
}

// ExpandX reports whether the sprite is doubled horizontally.
func (s *Sprite) ExpandX() bool { return s.expandX }

// SetExpandX sets horizontal doubling. Toggling this attribute mid-line
// rescales the remaining bit count so the serializer neither skips nor
// repeats pixels across the transition.
func (s *Sprite) SetExpandX(expandX bool) {
	if s.expandX != expandX {
		if s.enabled {
			s.needsCharCacheRefresh = true
		}
		if !s.IsLineFinished() {
			if expandX {
				s.bitRead <<= 1
			} else {
				s.bitRead >>= 1
			}
		}
	}
	s.expandX = expandX
}

// ExpandY reports whether the sprite is doubled vertically.
func (s *Sprite) ExpandY() bool { return s.expandY }

// SetExpandY sets vertical doubling.
func (s *Sprite) SetExpandY(expandY bool) {
	if s.enabled && s.expandY != expandY {
		s.needsCharCacheRefresh = true
	}
	s.expandY = expandY
}

// Priority reports whether the sprite draws in front of the background.
func (s *Sprite) Priority() bool { return s.priority }

// SetPriority sets whether the sprite draws in front of the background.
func (s *Sprite) SetPriority(priority bool) {
	if s.enabled && s.priority != priority {
		s.needsCharCacheRefresh = true
	}
	s.priority = priority
}

// Color returns one of the sprite's four palette entries.
func (s *Sprite) Color(n int) uint8 { return s.colors[n] }

// SetColor sets one of the sprite's four palette entries. Like
// multicolor, changing a colour does not by itself require a char-cache
// refresh.
func (s *Sprite) SetColor(n int, c uint8) {
	s.colors[n] = c
}

// SetDataPointer sets the memory offset the next readLineData call fetches
// from.
func (s *Sprite) SetDataPointer(pointer int) {
	s.pointer = pointer
}

// Painting reports whether DMA is active for the current raster band.
func (s *Sprite) Painting() bool { return s.painting }

// SetPainting sets whether DMA is active for the current raster band.
// Transitioning to false clears any pending char-cache refresh request,
// since the sprite is done affecting the background for this band.
func (s *Sprite) SetPainting(painting bool) {
	if !painting {
		s.needsCharCacheRefresh = false
	}
	s.painting = painting
}

// NeedsCharCacheRefresh reports whether a visible attribute changed while
// the sprite was enabled, invalidating the background character cache
// behind it.
func (s *Sprite) NeedsCharCacheRefresh() bool {
	return s.needsCharCacheRefresh
}

// IsLineFinished reports whether the pixel serializer has exhausted the
// current line's fetched data.
func (s *Sprite) IsLineFinished() bool {
	return s.bitRead <= 0
}

// IsBeyondLastByte reports whether DMA has advanced past the sprite's
// 63-byte data block for this frame.
func (s *Sprite) IsBeyondLastByte() bool {
	return s.nextByte >= 63
}

// InitUpdate resets per-frame DMA state. Call once at frame start.
func (s *Sprite) InitUpdate() {
	s.nextByte = 0
	s.painting = false
	s.lineData = 0
}

// InitPainting starts a raster band's DMA. Call at the sprite's first
// visible line.
func (s *Sprite) InitPainting() {
	s.nextByte = 0
	s.painting = true
	s.firstYRead = true
}

// ReadLineData fetches three consecutive bytes from memory starting at
// pointer+nextByte into a 24-bit big-endian shift register, and prepares
// the pixel serializer to walk it. Under Y-expansion, each source line is
// presented twice: the byte-fetch offset only advances on the second of
// each pair of calls.
func (s *Sprite) ReadLineData() {
	nextByte := s.nextByte

	b0 := uint32(s.mem.Peek(s.pointer + nextByte))
	b1 := uint32(s.mem.Peek(s.pointer + nextByte + 1))
	b2 := uint32(s.mem.Peek(s.pointer + nextByte + 2))
	s.lineData = (b0 << 16) | (b1 << 8) | b2

	if s.expandY {
		if !s.firstYRead {
			s.nextByte += 3
		}
		s.firstYRead = !s.firstYRead
	} else {
		s.nextByte += 3
	}

	if s.pointer != s.lastPointer {
		s.needsCharCacheRefresh = true
		s.lastPointer = s.pointer
	}

	if s.expandX {
		s.bitRead = 48
	} else {
		s.bitRead = 24
	}
}

// GetNextPixel returns the colour index (0-3) of the next pixel in the
// current line, or 0 (transparent) once the line is exhausted.
func (s *Sprite) GetNextPixel() int {
	if s.IsLineFinished() {
		return 0
	}

	s.bitRead--

	shift := s.bitRead
	if s.expandX {
		shift = s.bitRead >> 1
	}

	if s.multicolor {
		return int((s.lineData >> uint(shift&^1)) & 3)
	}
	return int(((s.lineData >> uint(shift)) & 1) << 1)
}

// State is a sprite's complete mutable state, in the field order the
// snapshot codec writes it: x, y, priority, enabled, expandX, expandY,
// firstYRead, multicolor, painting, needsCharCacheRefresh, colors,
// bitRead, lastPointer, lineData, nextByte, pointer.
type State struct {
	X, Y                  int
	Priority              bool
	Enabled               bool
	ExpandX, ExpandY      bool
	FirstYRead            bool
	Multicolor            bool
	Painting              bool
	NeedsCharCacheRefresh bool
	Colors                [4]uint8
	BitRead               int
	LastPointer           int
	LineData              uint32
	NextByte              int
	Pointer               int
}

// Snapshot returns a value copy of the sprite's mutable state.
func (s *Sprite) Snapshot() State {
	return State{
		X: s.x, Y: s.y,
		Priority:              s.priority,
		Enabled:               s.enabled,
		ExpandX:               s.expandX,
		ExpandY:               s.expandY,
		FirstYRead:            s.firstYRead,
		Multicolor:            s.multicolor,
		Painting:              s.painting,
		NeedsCharCacheRefresh: s.needsCharCacheRefresh,
		Colors:                s.colors,
		BitRead:               s.bitRead,
		LastPointer:           s.lastPointer,
		LineData:              s.lineData,
		NextByte:              s.nextByte,
		Pointer:               s.pointer,
	}
}

// Restore replaces the sprite's mutable state wholesale. The memory
// reference given to New is untouched.
func (s *Sprite) Restore(state State) {
	s.x, s.y = state.X, state.Y
	s.priority = state.Priority
	s.enabled = state.Enabled
	s.expandX = state.ExpandX
	s.expandY = state.ExpandY
	s.firstYRead = state.FirstYRead
	s.multicolor = state.Multicolor
	s.painting = state.Painting
	s.needsCharCacheRefresh = state.NeedsCharCacheRefresh
	s.colors = state.Colors
	s.bitRead = state.BitRead
	s.lastPointer = state.LastPointer
	s.lineData = state.LineData
	s.nextByte = state.NextByte
	s.pointer = state.Pointer
}
