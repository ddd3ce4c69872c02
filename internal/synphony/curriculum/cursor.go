package curriculum

// Cursor tracks the current stage and level of an editing session. Moves
// that would leave the valid range are refused: the cursor stays put and
// the method reports false, which is what disables the UI buttons.
type Cursor struct {
	stages int
	levels int
	stage  int
	level  int
}

// NewCursor returns a cursor at stage 1 and level 1, or 0 where the model
// has no stages or levels.
func NewCursor(m *Model) *Cursor {
	c := &Cursor{stages: m.StageCount(), levels: m.LevelCount()}
	if c.stages > 0 {
		c.stage = 1
	}
	if c.levels > 0 {
		c.level = 1
	}
	return c
}

// Stage returns the current stage number.
func (c *Cursor) Stage() int { return c.stage }

// Level returns the current level number.
func (c *Cursor) Level() int { return c.level }

// SetStage moves to stage n.
func (c *Cursor) SetStage(n int) bool {
	if n < 1 || n > c.stages {
		return false
	}
	c.stage = n
	return true
}

func (c *Cursor) NextStage() bool { return c.SetStage(c.stage + 1) }
func (c *Cursor) PrevStage() bool { return c.SetStage(c.stage - 1) }

func (c *Cursor) CanNextStage() bool { return c.stage < c.stages }
func (c *Cursor) CanPrevStage() bool { return c.stage > 1 }

// SetLevel moves to level n.
func (c *Cursor) SetLevel(n int) bool {
	if n < 1 || n > c.levels {
		return false
	}
	c.level = n
	return true
}

func (c *Cursor) NextLevel() bool { return c.SetLevel(c.level + 1) }
func (c *Cursor) PrevLevel() bool { return c.SetLevel(c.level - 1) }

func (c *Cursor) CanNextLevel() bool { return c.level < c.levels }
func (c *Cursor) CanPrevLevel() bool { return c.level > 1 }
