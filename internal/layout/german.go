package layout

import "passkey/internal/keycode"

// german is the ISO German (T1) layout. Ö shares the unshifted SEMICOLON
// entry with ö; the device firmware has always received it that way.
var german = map[rune][]keycode.Key{
	'^':  {"GRAVE"},
	'°':  {shift, "GRAVE"},
	'1':  {"1"},
	'!':  {shift, "1"},
	'2':  {"2"},
	'"':  {shift, "2"},
	'²':  {altGr, "2"},
	'3':  {"3"},
	'§':  {shift, "3"},
	'³':  {altGr, "3"},
	'4':  {"4"},
	'$':  {shift, "4"},
	'5':  {"5"},
	'%':  {shift, "5"},
	'6':  {"6"},
	'&':  {shift, "6"},
	'7':  {"7"},
	'/':  {shift, "7"},
	'{':  {altGr, "7"},
	'8':  {"8"},
	'(':  {shift, "8"},
	'[':  {altGr, "8"},
	'9':  {"9"},
	')':  {shift, "9"},
	']':  {altGr, "9"},
	'0':  {"0"},
	'=':  {shift, "0"},
	'}':  {altGr, "0"},
	'ß':  {"MINUS"},
	'?':  {shift, "MINUS"},
	'\\': {altGr, "MINUS"},
	'\t': {"TAB"},
	'\n': {"ENTER"},
	'q':  {"Q"},
	'Q':  {shift, "Q"},
	'@':  {altGr, "Q"},
	'w':  {"W"},
	'W':  {shift, "W"},
	'e':  {"E"},
	'E':  {shift, "E"},
	'€':  {altGr, "E"},
	'r':  {"R"},
	'R':  {shift, "R"},
	't':  {"T"},
	'T':  {shift, "T"},
	'z':  {"Y"},
	'Z':  {shift, "Y"},
	'u':  {"U"},
	'U':  {shift, "U"},
	'i':  {"I"},
	'I':  {shift, "I"},
	'o':  {"O"},
	'O':  {shift, "O"},
	'p':  {"P"},
	'P':  {shift, "P"},
	'ü':  {"LEFTBRACE"},
	'Ü':  {shift, "LEFTBRACE"},
	'+':  {"RIGHTBRACE"},
	'*':  {shift, "RIGHTBRACE"},
	'~':  {alt, "RIGHTBRACE"},
	'a':  {"A"},
	'A':  {shift, "A"},
	's':  {"S"},
	'S':  {shift, "S"},
	'd':  {"D"},
	'D':  {shift, "D"},
	'f':  {"F"},
	'F':  {shift, "F"},
	'g':  {"G"},
	'G':  {shift, "G"},
	'h':  {"H"},
	'H':  {shift, "H"},
	'j':  {"J"},
	'J':  {shift, "J"},
	'k':  {"K"},
	'K':  {shift, "K"},
	'l':  {"L"},
	'L':  {shift, "L"},
	'ö':  {"SEMICOLON"},
	'Ö':  {"SEMICOLON"},
	'ä':  {"APOSTROPHE"},
	'Ä':  {shift, "APOSTROPHE"},
	'#':  {"HASHTILDE"},
	'\'': {shift, "HASHTILDE"},
	'<':  {"BACKSLASH"},
	'>':  {shift, "BACKSLASH"},
	'|':  {altGr, "BACKSLASH"},
	'y':  {"Z"},
	'Y':  {shift, "Z"},
	'x':  {"X"},
	'X':  {shift, "X"},
	'c':  {"C"},
	'C':  {shift, "C"},
	'v':  {"V"},
	'V':  {shift, "V"},
	'b':  {"B"},
	'B':  {shift, "B"},
	'n':  {"N"},
	'N':  {shift, "N"},
	'm':  {"M"},
	'M':  {shift, "M"},
	'µ':  {altGr, "M"}, // AltGr+M
	',':  {"COMMA"},
	';':  {shift, "COMMA"},
	'.':  {"DOT"},
	':':  {shift, "DOT"},
	'-':  {"SLASH"},
	'_':  {shift, "SLASH"},
	' ':  {"SPACE"},
}
