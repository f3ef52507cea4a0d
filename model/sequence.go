package model

import "github.com/google/uuid"

// Sequence is the ordered collection of blocks that makes up a document
// body. It exclusively owns its blocks: callers receive copies, and every
// mutation renumbers Order fields so they always form a dense 0..N-1 run.
//
// A Sequence expects a single writer. Mutations are synchronous and atomic
// from the caller's perspective; exports operate on a Blocks() snapshot.
type Sequence struct {
	blocks []Block
}

// NewSequence creates a sequence from the given blocks. Blocks with an
// empty ID are assigned a fresh one, and Order fields are normalized to
// match position.
func NewSequence(blocks ...Block) *Sequence {
	s := &Sequence{blocks: make([]Block, 0, len(blocks))}
	for _, b := range blocks {
		c := b.Clone()
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		s.blocks = append(s.blocks, c)
	}
	s.renumber()
	return s
}

// Len returns the number of blocks.
func (s *Sequence) Len() int { return len(s.blocks) }

// Blocks returns a deep-copied snapshot of the sequence in order. The
// snapshot is detached: later mutations of the sequence do not affect it.
func (s *Sequence) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = b.Clone()
	}
	return out
}

// newBlock builds a block of the given type with default content: empty
// text, level 2 for headings, a single empty item for lists.
func newBlock(t BlockType) Block {
	b := Block{
		ID:   uuid.NewString(),
		Type: t,
	}
	switch t {
	case Heading:
		b.Level = 2
	case List:
		b.Items = []string{""}
	}
	return b
}

// Append creates a block of the given type at the end of the sequence and
// returns a copy of it.
func (s *Sequence) Append(t BlockType) Block {
	return s.Insert(t, len(s.blocks)-1)
}

// Insert creates a block of the given type immediately after afterIndex
// and returns a copy of it. An afterIndex outside the current range
// appends at the end. All Order fields are renumbered before returning.
func (s *Sequence) Insert(t BlockType, afterIndex int) Block {
	b := newBlock(t)
	if afterIndex < 0 || afterIndex >= len(s.blocks) {
		s.blocks = append(s.blocks, b)
	} else {
		at := afterIndex + 1
		s.blocks = append(s.blocks, Block{})
		copy(s.blocks[at+1:], s.blocks[at:])
		s.blocks[at] = b
	}
	s.renumber()
	return s.mustFind(b.ID).Clone()
}

// Update merges patch into the block with the given id. An unknown id is
// a silent no-op: stale ids arise benignly from UI event ordering. Order
// is never affected.
func (s *Sequence) Update(id string, patch BlockPatch) {
	b := s.find(id)
	if b == nil {
		return
	}
	if patch.Content != nil {
		b.Content = *patch.Content
	}
	if patch.Level != nil {
		b.Level = *patch.Level
	}
	if patch.Items != nil {
		b.Items = make([]string, len(patch.Items))
		copy(b.Items, patch.Items)
	}
	if patch.ImageURL != nil {
		b.ImageURL = *patch.ImageURL
	}
}

// Delete removes the block with the given id and renumbers the remainder
// densely from zero. An unknown id is a silent no-op.
func (s *Sequence) Delete(id string) {
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			s.renumber()
			return
		}
	}
}

// Move removes the block at from and reinserts it at to, with standard
// splice semantics: when to > from, the indices of the untouched tail
// shift down by one first. Out-of-range indices are clamped.
func (s *Sequence) Move(from, to int) {
	n := len(s.blocks)
	if n == 0 {
		return
	}
	from = clamp(from, 0, n-1)
	to = clamp(to, 0, n-1)
	if from == to {
		return
	}
	b := s.blocks[from]
	s.blocks = append(s.blocks[:from], s.blocks[from+1:]...)
	s.blocks = append(s.blocks, Block{})
	copy(s.blocks[to+1:], s.blocks[to:])
	s.blocks[to] = b
	s.renumber()
}

// UpdateItem replaces item index of the list block with the given id.
// Unknown ids, non-list blocks, and out-of-range indices are no-ops.
func (s *Sequence) UpdateItem(id string, index int, text string) {
	b := s.find(id)
	if b == nil || b.Type != List || index < 0 || index >= len(b.Items) {
		return
	}
	b.Items[index] = text
}

// AppendItem adds an item to the end of the list block with the given id.
func (s *Sequence) AppendItem(id, text string) {
	b := s.find(id)
	if b == nil || b.Type != List {
		return
	}
	b.Items = append(b.Items, text)
}

// DeleteItem removes item index from the list block with the given id.
// A list never becomes empty: deleting the last remaining item leaves a
// single empty item instead.
func (s *Sequence) DeleteItem(id string, index int) {
	b := s.find(id)
	if b == nil || b.Type != List || index < 0 || index >= len(b.Items) {
		return
	}
	b.Items = append(b.Items[:index], b.Items[index+1:]...)
	if len(b.Items) == 0 {
		b.Items = []string{""}
	}
}

func (s *Sequence) find(id string) *Block {
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			return &s.blocks[i]
		}
	}
	return nil
}

func (s *Sequence) mustFind(id string) *Block {
	b := s.find(id)
	if b == nil {
		panic("model: block vanished during mutation")
	}
	return b
}

// renumber restores the dense 0..N-1 Order invariant.
func (s *Sequence) renumber() {
	for i := range s.blocks {
		s.blocks[i].Order = i
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
