//-----------------------------------------------------------------------------
/*

History Ring

Fixed-capacity circular byte store holding submitted lines as
NUL-terminated entries. New entries may wrap across the end of the buffer.
When space runs out the oldest entries are evicted whole, never partially.
An explicit used-byte count resolves the classic begin == end ambiguity
between an empty and an exactly-full ring.

*/
//-----------------------------------------------------------------------------

package tokenline

//-----------------------------------------------------------------------------

type historyRing struct {
	buf   [MaxHistorySize]byte
	begin int // offset of the oldest entry
	end   int // next write offset
	used  int // bytes in use, begin == end is empty iff used == 0
}

//-----------------------------------------------------------------------------

// evictOldest removes the entry at begin, zeroing its bytes so backward
// scans stop at the gap.
func (h *historyRing) evictOldest() {
	if h.used == 0 {
		return
	}
	i := h.begin
	for h.buf[i] != 0 {
		h.buf[i] = 0
		h.used--
		i++
		if i == len(h.buf) {
			i = 0
		}
	}
	// the terminator, already zero
	h.used--
	i++
	if i == len(h.buf) {
		i = 0
	}
	h.begin = i
}

// add appends a line to the ring, evicting whole entries from the oldest
// end until the serialized entry (line plus terminator) fits.
func (h *historyRing) add(line string) {
	size := len(line) + 1
	if size > len(h.buf) {
		return
	}
	for h.used+size > len(h.buf) {
		h.evictOldest()
	}
	i := h.end
	for k := 0; k < len(line); k++ {
		h.buf[i] = line[k]
		i++
		if i == len(h.buf) {
			i = 0
		}
	}
	h.buf[i] = 0
	i++
	if i == len(h.buf) {
		i = 0
	}
	h.end = i
	h.used += size
}

//-----------------------------------------------------------------------------
// navigation

// newest returns the offset of the most recent entry, or -1 if the ring is
// empty. This is distinct from previous(end) because an exactly-full ring
// has begin == end.
func (h *historyRing) newest() int {
	if h.used == 0 {
		return -1
	}
	return h.prevFrom(h.end)
}

// previous returns the offset of the entry before the one at entry, or -1
// if entry is the oldest.
func (h *historyRing) previous(entry int) int {
	if h.used == 0 || entry == h.begin {
		return -1
	}
	return h.prevFrom(entry)
}

// prevFrom walks backward from an entry offset (or the end offset) to the
// start of the entry before it. The byte before any entry start is always
// zero (a terminator or the zeroed gap), so the scan is well-bounded.
func (h *historyRing) prevFrom(entry int) int {
	n := len(h.buf)
	// onto the terminator of the previous entry
	entry--
	if entry < 0 {
		entry = n - 1
	}
	// back up to the first byte of the previous entry
	prev := entry
	entry--
	if entry < 0 {
		entry = n - 1
	}
	for h.buf[entry] != 0 {
		prev = entry
		entry--
		if entry < 0 {
			entry = n - 1
		}
	}
	return prev
}

// next returns the offset just past the terminator of the entry at entry.
// If the entry is the newest this is the ring's end offset.
func (h *historyRing) next(entry int) int {
	i := entry
	for h.buf[i] != 0 {
		i++
		if i == len(h.buf) {
			i = 0
		}
	}
	i++
	if i == len(h.buf) {
		i = 0
	}
	return i
}

// get reassembles the entry at the given offset, following any wrap
// across the end of the buffer.
func (h *historyRing) get(entry int) string {
	b := make([]byte, 0, 32)
	i := entry
	for h.buf[i] != 0 {
		b = append(b, h.buf[i])
		i++
		if i == len(h.buf) {
			i = 0
		}
	}
	return string(b)
}

// eachEntry calls fn for every entry, most recent first, until fn returns
// false.
func (h *historyRing) eachEntry(fn func(s string) bool) {
	for entry := h.newest(); entry != -1; entry = h.previous(entry) {
		if !fn(h.get(entry)) {
			return
		}
	}
}

//-----------------------------------------------------------------------------
