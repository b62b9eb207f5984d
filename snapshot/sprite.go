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

package snapshot

import "github.com/finnhauge/c64core/hardware/sprite"

// WriteSprite writes s's state in the field order sprite.State documents:
// x, y, priority, enabled, expandX, expandY, firstYRead, multicolor,
// painting, needsCharCacheRefresh, colors, bitRead, lastPointer,
// lineData, nextByte, pointer.
func WriteSprite(w *Writer, s *sprite.Sprite) {
	st := s.Snapshot()
	w.WriteInt32(st.X)
	w.WriteInt32(st.Y)
	w.WriteBool(st.Priority)
	w.WriteBool(st.Enabled)
	w.WriteBool(st.ExpandX)
	w.WriteBool(st.ExpandY)
	w.WriteBool(st.FirstYRead)
	w.WriteBool(st.Multicolor)
	w.WriteBool(st.Painting)
	w.WriteBool(st.NeedsCharCacheRefresh)
	w.WriteBytes(st.Colors[:])
	w.WriteInt32(st.BitRead)
	w.WriteInt32(st.LastPointer)
	w.WriteUint32(st.LineData)
	w.WriteInt32(st.NextByte)
	w.WriteInt32(st.Pointer)
}

// ReadSprite reads a sprite.State in the order WriteSprite wrote it and
// restores it into s.
func ReadSprite(r *Reader, s *sprite.Sprite) {
	var st sprite.State
	st.X = r.ReadInt32()
	st.Y = r.ReadInt32()
	st.Priority = r.ReadBool()
	st.Enabled = r.ReadBool()
	st.ExpandX = r.ReadBool()
	st.ExpandY = r.ReadBool()
	st.FirstYRead = r.ReadBool()
	st.Multicolor = r.ReadBool()
	st.Painting = r.ReadBool()
	st.NeedsCharCacheRefresh = r.ReadBool()
	copy(st.Colors[:], r.ReadBytes(len(st.Colors)))
	st.BitRead = r.ReadInt32()
	st.LastPointer = r.ReadInt32()
	st.LineData = r.ReadUint32()
	st.NextByte = r.ReadInt32()
	st.Pointer = r.ReadInt32()
	if r.Err() != nil {
		return
	}
	s.Restore(st)
}
