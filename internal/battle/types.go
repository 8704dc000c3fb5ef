package battle

import "fmt"

// Face is the value shown on one die.
type Face int

const (
	MinFace Face = 1
	MaxFace Face = 6
)

func (f Face) Valid() bool {
	return f >= MinFace && f <= MaxFace
}

const (
	MaxAttackers = 3
	MaxDefenders = 2
)

// Side identifies which pool a die slot belongs to.
type Side int

const (
	Attacker Side = iota
	Defender
)

func (s Side) String() string {
	if s == Defender {
		return "defender"
	}
	return "attacker"
}

// Config is the editable battle setup. Faces beyond the active count keep
// their value so cycling a count back up restores them.
type Config struct {
	Attacker      [MaxAttackers]Face
	Defender      [MaxDefenders]Face
	AttackerCount int
	DefenderCount int
	Cursor        int
}

func NewConfig() Config {
	return Config{
		Attacker:      [MaxAttackers]Face{1, 1, 1},
		Defender:      [MaxDefenders]Face{1, 1},
		AttackerCount: MaxAttackers,
		DefenderCount: MaxDefenders,
	}
}

// Slots is the number of selectable dice across both pools.
func (c Config) Slots() int {
	return c.AttackerCount + c.DefenderCount
}

// Slot resolves a cursor index into its side and offset within that pool.
func (c Config) Slot(i int) (Side, int) {
	if i < c.AttackerCount {
		return Attacker, i
	}
	return Defender, i - c.AttackerCount
}

func (c Config) AttackerPool() []Face {
	return append([]Face(nil), c.Attacker[:c.AttackerCount]...)
}

func (c Config) DefenderPool() []Face {
	return append([]Face(nil), c.Defender[:c.DefenderCount]...)
}

// SetFace sets the die under the cursor.
func (c *Config) SetFace(f Face) {
	side, idx := c.Slot(c.Cursor)
	if side == Attacker {
		c.Attacker[idx] = f
		return
	}
	c.Defender[idx] = f
}

func (c *Config) MoveCursor(delta int) {
	n := c.Slots()
	c.Cursor = ((c.Cursor+delta)%n + n) % n
}

// CycleAttackers steps the attacker count through 1,2,3 and back to 1.
func (c *Config) CycleAttackers() {
	c.AttackerCount = c.AttackerCount%MaxAttackers + 1
	c.clampCursor()
}

// CycleDefenders steps the defender count through 1,2 and back to 1.
func (c *Config) CycleDefenders() {
	c.DefenderCount = c.DefenderCount%MaxDefenders + 1
	c.clampCursor()
}

func (c *Config) clampCursor() {
	if c.Cursor >= c.Slots() {
		c.Cursor = 0
	}
}

func (c Config) Validate() error {
	if c.AttackerCount < 1 || c.AttackerCount > MaxAttackers {
		return fmt.Errorf("attacker count %d out of range 1-%d", c.AttackerCount, MaxAttackers)
	}
	if c.DefenderCount < 1 || c.DefenderCount > MaxDefenders {
		return fmt.Errorf("defender count %d out of range 1-%d", c.DefenderCount, MaxDefenders)
	}
	if c.Cursor < 0 || c.Cursor >= c.Slots() {
		return fmt.Errorf("cursor %d out of range 0-%d", c.Cursor, c.Slots()-1)
	}
	for i, f := range c.AttackerPool() {
		if !f.Valid() {
			return fmt.Errorf("attacker die %d has face %d", i, f)
		}
	}
	for i, f := range c.DefenderPool() {
		if !f.Valid() {
			return fmt.Errorf("defender die %d has face %d", i, f)
		}
	}
	return nil
}

// Result holds the units each side loses in one exchange.
type Result struct {
	AttackerLosses int
	DefenderLosses int
}

func (r Result) Total() int {
	return r.AttackerLosses + r.DefenderLosses
}
