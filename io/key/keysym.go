// SPDX-License-Identifier: Unlicense OR MIT

package key

// SymToRune converts a key symbol to the corresponding ISO 10646
// (Unicode) character, or 0 if there is no corresponding character.
func SymToRune(keysym uint32) rune {
	// Latin-1 characters map 1:1.
	if (keysym >= 0x0020 && keysym <= 0x007e) ||
		(keysym >= 0x00a0 && keysym <= 0x00ff) {
		return rune(keysym)
	}

	// Directly encoded 24-bit UCS characters.
	if keysym&0xff000000 == 0x01000000 {
		return rune(keysym & 0x00ffffff)
	}

	min, max := 0, len(keysymTab)-1
	for max >= min {
		mid := (min + max) / 2
		switch {
		case uint32(keysymTab[mid].keysym) < keysym:
			min = mid + 1
		case uint32(keysymTab[mid].keysym) > keysym:
			max = mid - 1
		default:
			return rune(keysymTab[mid].ucs)
		}
	}

	return 0
}
