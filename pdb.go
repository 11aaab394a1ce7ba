package molviz

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type Atom struct {
	Serial    int
	Name      string
	AltLoc    byte
	ResName   string
	Chain     byte
	ResSeq    int
	Position  mgl32.Vec3 // Å
	Occupancy float32
	BFactor   float32
	Element   string
	Charge    string
	Hetero    bool
}

// Bond joins two atoms by their index in Structure.Atoms.
type Bond struct {
	A, B int
}

type Structure struct {
	Header string
	Title  string
	Atoms  []Atom
	Bonds  []Bond
}

// Bounds returns the axis aligned box around every atom center. An empty
// structure has a zero box.
func (s *Structure) Bounds() (lo, hi mgl32.Vec3) {
	if len(s.Atoms) == 0 {
		return lo, hi
	}
	lo, hi = s.Atoms[0].Position, s.Atoms[0].Position
	for _, a := range s.Atoms[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], a.Position[i])
			hi[i] = max(hi[i], a.Position[i])
		}
	}
	return lo, hi
}

func (s *Structure) Center() mgl32.Vec3 {
	lo, hi := s.Bounds()
	return lo.Add(hi).Mul(0.5)
}

func LoadPDBFile(fileName string) (*Structure, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open PDB file %s", fileName)
	}
	defer file.Close()

	s, err := ReadPDB(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing PDB file %s", fileName)
	}
	return s, nil
}

// ReadPDB reads ATOM, HETATM, CONECT, HEADER and TITLE records. Only the first
// model of a multi-model file is kept and alternate locations other than blank
// or 'A' are dropped. CONECT records follow the last ENDMDL, so reading goes on
// until END or the end of input.
func ReadPDB(reader io.Reader) (*Structure, error) {
	s := &Structure{}
	serialIndex := make(map[int]int)
	var conect [][]int
	var title []string

	scanner := bufio.NewScanner(reader)
	lineNo := 0
	modelDone := false

records:
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")

		switch recordName(line) {
		case "ATOM", "HETATM":
			if modelDone {
				continue
			}
			atom, err := parseAtom(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			if atom.AltLoc != ' ' && atom.AltLoc != 'A' {
				continue
			}
			serialIndex[atom.Serial] = len(s.Atoms)
			s.Atoms = append(s.Atoms, atom)

		case "CONECT":
			serials, err := parseConect(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			conect = append(conect, serials)

		case "HEADER":
			s.Header = strings.TrimSpace(column(line, 11, 50))

		case "TITLE":
			title = append(title, strings.TrimSpace(column(line, 11, 80)))

		case "ENDMDL":
			modelDone = true

		case "END":
			break records
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading PDB source")
	}

	s.Title = strings.Join(title, " ")
	s.Bonds = conectBonds(conect, serialIndex)
	return s, nil
}

func recordName(line string) string {
	return strings.TrimSpace(column(line, 1, 6))
}

// column returns the 1-based inclusive column range [from, to] of line,
// clipped to the line length.
func column(line string, from, to int) string {
	if from > len(line) {
		return ""
	}
	return line[from-1 : min(to, len(line))]
}

func parseAtom(line string) (Atom, error) {
	var a Atom
	var err error

	a.Hetero = recordName(line) == "HETATM"

	if a.Serial, err = parseInt(column(line, 7, 11)); err != nil {
		return a, errors.Wrap(err, "bad atom serial")
	}
	a.Name = strings.TrimSpace(column(line, 13, 16))
	a.AltLoc = columnByte(line, 17)
	a.ResName = strings.TrimSpace(column(line, 18, 20))
	a.Chain = columnByte(line, 22)
	if rs := strings.TrimSpace(column(line, 23, 26)); rs != "" {
		if a.ResSeq, err = strconv.Atoi(rs); err != nil {
			return a, errors.Wrapf(err, "bad residue number %q", rs)
		}
	}

	for i, cols := range [3][2]int{{31, 38}, {39, 46}, {47, 54}} {
		v, err := parseFloat(column(line, cols[0], cols[1]))
		if err != nil {
			return a, errors.Wrapf(err, "bad %c coordinate", "xyz"[i])
		}
		a.Position[i] = v
	}

	// occupancy and temperature factor are optional in plenty of files
	a.Occupancy = 1
	if v, err := parseFloat(column(line, 55, 60)); err == nil {
		a.Occupancy = v
	}
	if v, err := parseFloat(column(line, 61, 66)); err == nil {
		a.BFactor = v
	}

	a.Element = strings.TrimSpace(column(line, 77, 78))
	if a.Element == "" {
		a.Element = elementFromName(column(line, 13, 16))
	}
	a.Charge = strings.TrimSpace(column(line, 79, 80))

	return a, nil
}

// elementFromName guesses the element from the raw four column atom name.
// Names of one letter elements start in column 14, so a leading space or
// digit means the symbol is the next letter.
func elementFromName(raw string) string {
	if raw == "" {
		return ""
	}
	if raw[0] == ' ' || unicode.IsDigit(rune(raw[0])) {
		trimmed := strings.TrimLeftFunc(raw, func(r rune) bool {
			return r == ' ' || unicode.IsDigit(r)
		})
		if trimmed == "" {
			return ""
		}
		return strings.ToUpper(trimmed[:1])
	}

	if len(raw) >= 2 && unicode.IsLetter(rune(raw[1])) && KnownElement(raw[:2]) {
		return strings.ToUpper(raw[:2])
	}
	return strings.ToUpper(raw[:1])
}

func parseConect(line string) ([]int, error) {
	var serials []int
	for from := 7; from <= 31; from += 5 {
		field := strings.TrimSpace(column(line, from, from+4))
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "bad CONECT serial %q", field)
		}
		serials = append(serials, n)
	}
	if len(serials) == 0 {
		return nil, errors.Errorf("CONECT record without an atom serial")
	}
	return serials, nil
}

// conectBonds resolves CONECT serial lists into atom index pairs. Bonds are
// usually listed from both ends so duplicates are folded, as are references
// to atoms that were skipped.
func conectBonds(records [][]int, serialIndex map[int]int) []Bond {
	seen := make(map[Bond]bool)
	var bonds []Bond
	for _, r := range records {
		from, ok := serialIndex[r[0]]
		if !ok {
			continue
		}
		for _, serial := range r[1:] {
			to, ok := serialIndex[serial]
			if !ok || to == from {
				continue
			}
			b := orderedBond(from, to)
			if seen[b] {
				continue
			}
			seen[b] = true
			bonds = append(bonds, b)
		}
	}
	return bonds
}

func orderedBond(a, b int) Bond {
	if a > b {
		a, b = b, a
	}
	return Bond{A: a, B: b}
}

func columnByte(line string, col int) byte {
	if col > len(line) {
		return ' '
	}
	return line[col-1]
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	return float32(v), err
}
