package host

import "unicode"

// keypad maps the left side of a QWERTY keyboard to the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keypad = map[rune]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyFor returns the keypad key of a keyboard character.
func KeyFor(ch rune) (byte, bool) {
	key, ok := keypad[unicode.ToLower(ch)]
	return key, ok
}

// keyboardRunes returns all characters that map to a keypad key, letters
// in both cases.
func keyboardRunes() []rune {
	runes := make([]rune, 0, 2*len(keypad))
	for ch := range keypad {
		runes = append(runes, ch)
		if upper := unicode.ToUpper(ch); upper != ch {
			runes = append(runes, upper)
		}
	}
	return runes
}
