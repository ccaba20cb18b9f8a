package osgrid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Errors returned by the grid reference functions.
var (
	ErrOutsideGrid    = errors.New("coordinate outside the national grid")
	ErrInvalidDigits  = errors.New("digits must be 4, 6, 8 or 10")
	ErrInvalidGridRef = errors.New("invalid grid reference")
)

// DefaultDigits is the resolution of a full grid reference, 1 metre.
const DefaultDigits = 10

const squareSize = 100000.0 // metres per side of a lettered square

// The lettered squares cover a 7 x 13 block.
const (
	maxSquareEasting  = 6
	maxSquareNorthing = 12
)

const letterI = 8

// squareIndex returns the 100km square indices of g and whether the square
// has a letter code.
func (g GridCoordinate) squareIndex() (e100k, n100k int, ok bool) {
	e := math.Floor(g.Easting / squareSize)
	n := math.Floor(g.Northing / squareSize)
	if !(e >= 0 && e <= maxSquareEasting && n >= 0 && n <= maxSquareNorthing) {
		return 0, 0, false
	}
	return int(e), int(n), true
}

// squareLetters returns the two letter code of a square. The indices must
// already be in range.
func squareLetters(e100k, n100k int) string {
	l1 := (19 - n100k) - (19-n100k)%5 + (e100k+10)/5
	l2 := (19-n100k)*5%25 + e100k%5

	// the alphabet skips I
	if l1 >= letterI {
		l1++
	}
	if l2 >= letterI {
		l2++
	}
	return string([]byte{byte('A' + l1), byte('A' + l2)})
}

// squareFromLetters is the inverse of squareLetters.
func squareFromLetters(c1, c2 byte) (e100k, n100k int, err error) {
	l1 := int(toupper(c1) - 'A')
	l2 := int(toupper(c2) - 'A')
	if l1 == letterI || l2 == letterI {
		return 0, 0, fmt.Errorf("%w: letter I is not used", ErrInvalidGridRef)
	}
	if l1 > letterI {
		l1--
	}
	if l2 > letterI {
		l2--
	}

	col := l1%5 - 2
	if col < 0 || col > 1 {
		return 0, 0, fmt.Errorf("%w: square %c%c", ErrOutsideGrid, c1, c2)
	}
	e100k = col*5 + l2%5
	n100k = 19 - (l1/5)*5 - l2/5
	if e100k > maxSquareEasting || n100k < 0 || n100k > maxSquareNorthing {
		return 0, 0, fmt.Errorf("%w: square %c%c", ErrOutsideGrid, c1, c2)
	}
	return e100k, n100k, nil
}

func checkDigits(digits int) error {
	switch digits {
	case 4, 6, 8, 10:
		return nil
	}
	return fmt.Errorf("%w, got %d", ErrInvalidDigits, digits)
}

// computeScale returns the size in metres of one unit of a digit group at
// the given resolution.
func computeScale(digits int) int {
	scale := 1
	for d := digits / 2; d < 5; d++ {
		scale *= 10
	}
	return scale
}

// Letters returns the two letter code of the 100km square containing g, for
// example "TG". It returns ErrOutsideGrid if the square has no code.
func (g GridCoordinate) Letters() (string, error) {
	e100k, n100k, ok := g.squareIndex()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrOutsideGrid, g)
	}
	return squareLetters(e100k, n100k), nil
}

// Numbers returns the easting and northing within the 100km square as two
// space separated, zero padded groups of digits/2 figures each, for example
// "514 131" for digits 6. Figures are truncated, never rounded.
func (g GridCoordinate) Numbers(digits int) (string, error) {
	if err := checkDigits(digits); err != nil {
		return "", err
	}
	if _, _, ok := g.squareIndex(); !ok {
		return "", fmt.Errorf("%w: %s", ErrOutsideGrid, g)
	}

	// Reduce from whole metres so every resolution is a prefix of the next.
	scale := computeScale(digits)
	east := int(math.Mod(g.Easting, squareSize)) / scale
	north := int(math.Mod(g.Northing, squareSize)) / scale

	d := digits / 2
	return fmt.Sprintf("%0*d %0*d", d, east, d, north), nil
}

// GridRef returns the full grid reference of g at the given resolution, for
// example "TG 51409 13177" for digits 10.
func (g GridCoordinate) GridRef(digits int) (string, error) {
	numbers, err := g.Numbers(digits)
	if err != nil {
		return "", err
	}
	letters, err := g.Letters()
	if err != nil {
		return "", err
	}
	return letters + " " + numbers, nil
}

// ParseGridRef parses a grid reference such as "TG 51409 13177" or
// "tg5140913177". It returns the south west corner of the referenced square
// and the number of digits the reference was given with.
func ParseGridRef(gridRef string) (GridCoordinate, int, error) {
	buf := strings.Builder{}
	for i := 0; i < len(gridRef); i++ {
		b := gridRef[i]
		if b == ' ' {
			continue
		}
		if !isdigit(b) && !isalpha(b) {
			return GridCoordinate{}, 0, fmt.Errorf("%w: invalid character %q", ErrInvalidGridRef, b)
		}
		buf.WriteByte(b)
	}
	s := buf.String()

	i := 0
	for i < len(s) && isalpha(s[i]) {
		i++
	}
	if i != 2 {
		return GridCoordinate{}, 0, fmt.Errorf("%w: expected 2 letters, got %d", ErrInvalidGridRef, i)
	}
	e100k, n100k, err := squareFromLetters(s[0], s[1])
	if err != nil {
		return GridCoordinate{}, 0, err
	}

	figures := s[2:]
	for j := 0; j < len(figures); j++ {
		if !isdigit(figures[j]) {
			return GridCoordinate{}, 0, fmt.Errorf("%w: letter after figures", ErrInvalidGridRef)
		}
	}
	digits := len(figures)
	if err := checkDigits(digits); err != nil {
		return GridCoordinate{}, 0, fmt.Errorf("%w: %w", ErrInvalidGridRef, err)
	}

	n := digits / 2
	scale := computeScale(digits)
	east := atoi(figures[:n]) * scale
	north := atoi(figures[n:]) * scale

	return GridCoordinate{
		Easting:  float64(e100k)*squareSize + float64(east),
		Northing: float64(n100k)*squareSize + float64(north),
	}, digits, nil
}

// atoi converts a string of at most five ASCII digits.
func atoi(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v
}

func isdigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func isalpha(r byte) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z'
}

func toupper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
