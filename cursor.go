package rulematch

// Cursor is a read position over an immutable sequence of characters.
//
// A single Cursor is shared by every rule evaluated during one match attempt.
type Cursor struct {
	input  []rune
	offset int
}

// NewCursor creates a Cursor at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{input: []rune(s)}
}

// Offset of the cursor in characters.
func (c *Cursor) Offset() int {
	return c.offset
}

// Len returns the total number of characters in the input.
func (c *Cursor) Len() int {
	return len(c.input)
}

// EOF returns true if all input has been consumed.
func (c *Cursor) EOF() bool {
	return c.offset >= len(c.input)
}

// Remaining returns the unconsumed input.
func (c *Cursor) Remaining() string {
	return string(c.input[c.offset:])
}

// Peek returns the next character without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.offset >= len(c.input) {
		return 0, false
	}
	return c.input[c.offset], true
}

// Next consumes and returns the next character.
//
// At the end of input it returns false and the cursor does not move.
func (c *Cursor) Next() (rune, bool) {
	if c.offset >= len(c.input) {
		return 0, false
	}
	r := c.input[c.offset]
	c.offset++
	return r, true
}

// Seek moves the cursor to an absolute offset, clamped to the input.
func (c *Cursor) Seek(offset int) {
	switch {
	case offset < 0:
		offset = 0
	case offset > len(c.input):
		offset = len(c.input)
	}
	c.offset = offset
}

// Mark captures the current offset.
func (c *Cursor) Mark() *SavePoint {
	return &SavePoint{cursor: c, offset: c.offset}
}

// SavePoint is a checkpoint of a Cursor's offset.
//
// The usual pattern is:
//
//	sp := cursor.Mark()
//	defer sp.Release()
//	...
//	sp.Commit()
type SavePoint struct {
	cursor    *Cursor
	offset    int
	committed bool
}

// Offset captured by the SavePoint.
func (s *SavePoint) Offset() int {
	return s.offset
}

// Restore moves the cursor back to the captured offset.
//
// Offsets are absolute, so restoring is valid wherever the cursor currently is.
func (s *SavePoint) Restore() {
	s.cursor.Seek(s.offset)
}

// Commit keeps any progress made since the mark.
func (s *SavePoint) Commit() {
	s.committed = true
}

// Release restores the cursor unless the SavePoint was committed.
func (s *SavePoint) Release() {
	if !s.committed {
		s.Restore()
	}
}
