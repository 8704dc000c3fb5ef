package keypad

// Matrix is a raw scan of the calculator keypad: eight groups of eight bits.
type Matrix [8]uint8

type matrixBit struct {
	group int
	mask  uint8
}

var matrixLayout = [keyCount]matrixBit{
	KeyCancel:  {group: 6, mask: 1 << 6},
	KeyConfirm: {group: 6, mask: 1 << 0},
	KeyHelp:    {group: 2, mask: 1 << 7},
	KeyDown:    {group: 7, mask: 1 << 0},
	KeyLeft:    {group: 7, mask: 1 << 1},
	KeyRight:   {group: 7, mask: 1 << 2},
	KeyUp:      {group: 7, mask: 1 << 3},
	KeyDigit1:  {group: 3, mask: 1 << 1},
	KeyDigit4:  {group: 3, mask: 1 << 2},
	KeyDigit2:  {group: 4, mask: 1 << 1},
	KeyDigit5:  {group: 4, mask: 1 << 2},
	KeyDigit3:  {group: 5, mask: 1 << 1},
	KeyDigit6:  {group: 5, mask: 1 << 2},
}

// Keys decodes the logical keys present in the scan. Bits without a logical
// key are ignored.
func (m Matrix) Keys() Set {
	var s Set
	for k := Key(0); k < keyCount; k++ {
		b := matrixLayout[k]
		if m[b.group]&b.mask != 0 {
			s = s.With(k)
		}
	}
	return s
}
