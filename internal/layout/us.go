package layout

import "passkey/internal/keycode"

// usEnglish is the ANSI US layout.
var usEnglish = map[rune][]keycode.Key{
	'\t': {"TAB"},
	'\n': {"ENTER"},
	' ':  {"SPACE"},
	'a':  {"A"},
	'b':  {"B"},
	'c':  {"C"},
	'd':  {"D"},
	'e':  {"E"},
	'f':  {"F"},
	'g':  {"G"},
	'h':  {"H"},
	'i':  {"I"},
	'j':  {"J"},
	'k':  {"K"},
	'l':  {"L"},
	'm':  {"M"},
	'n':  {"N"},
	'o':  {"O"},
	'p':  {"P"},
	'q':  {"Q"},
	'r':  {"R"},
	's':  {"S"},
	't':  {"T"},
	'u':  {"U"},
	'v':  {"V"},
	'w':  {"W"},
	'x':  {"X"},
	'y':  {"Y"},
	'z':  {"Z"},
	'A':  {shift, "A"},
	'B':  {shift, "B"},
	'C':  {shift, "C"},
	'D':  {shift, "D"},
	'E':  {shift, "E"},
	'F':  {shift, "F"},
	'G':  {shift, "G"},
	'H':  {shift, "H"},
	'I':  {shift, "I"},
	'J':  {shift, "J"},
	'K':  {shift, "K"},
	'L':  {shift, "L"},
	'M':  {shift, "M"},
	'N':  {shift, "N"},
	'O':  {shift, "O"},
	'P':  {shift, "P"},
	'Q':  {shift, "Q"},
	'R':  {shift, "R"},
	'S':  {shift, "S"},
	'T':  {shift, "T"},
	'U':  {shift, "U"},
	'V':  {shift, "V"},
	'W':  {shift, "W"},
	'X':  {shift, "X"},
	'Y':  {shift, "Y"},
	'Z':  {shift, "Z"},
	'1':  {"1"},
	'2':  {"2"},
	'3':  {"3"},
	'4':  {"4"},
	'5':  {"5"},
	'6':  {"6"},
	'7':  {"7"},
	'8':  {"8"},
	'9':  {"9"},
	'0':  {"0"},
	'!':  {shift, "1"},
	'@':  {shift, "2"},
	'#':  {shift, "3"},
	'$':  {shift, "4"},
	'%':  {shift, "5"},
	'^':  {shift, "6"},
	'&':  {shift, "7"},
	'*':  {shift, "8"},
	'(':  {shift, "9"},
	')':  {shift, "0"},
	'-':  {"MINUS"},
	'=':  {"EQUAL"},
	'[':  {"LEFTBRACE"},
	']':  {"RIGHTBRACE"},
	'\\': {"BACKSLASH"},
	';':  {"SEMICOLON"},
	'\'': {"APOSTROPHE"},
	'`':  {"GRAVE"},
	',':  {"COMMA"},
	'.':  {"DOT"},
	'/':  {"SLASH"},
	'_':  {shift, "MINUS"},
	'+':  {shift, "EQUAL"},
	'{':  {shift, "LEFTBRACE"},
	'}':  {shift, "RIGHTBRACE"},
	'|':  {shift, "BACKSLASH"},
	':':  {shift, "SEMICOLON"},
	'"':  {shift, "APOSTROPHE"},
	'~':  {shift, "GRAVE"},
	'<':  {shift, "COMMA"},
	'>':  {shift, "DOT"},
	'?':  {shift, "SLASH"},
}
