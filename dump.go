package molviz

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
	spewConfig.SortKeys = true
}

// StructureSummary is the --dump view of a loaded structure.
type StructureSummary struct {
	Header   string
	Title    string
	Atoms    int
	Hetero   int
	Bonds    int
	Elements map[string]int
	Chains   []string
	Min, Max [3]float32
}

func Summarize(s *Structure, bonds []Bond) StructureSummary {
	sum := StructureSummary{
		Header:   s.Header,
		Title:    s.Title,
		Atoms:    len(s.Atoms),
		Bonds:    len(bonds),
		Elements: make(map[string]int),
	}

	seenChain := make(map[byte]bool)
	for _, a := range s.Atoms {
		if a.Hetero {
			sum.Hetero++
		}
		sum.Elements[LookupElement(a.Element).Symbol]++
		if !seenChain[a.Chain] {
			seenChain[a.Chain] = true
			sum.Chains = append(sum.Chains, string(a.Chain))
		}
	}

	lo, hi := s.Bounds()
	sum.Min, sum.Max = lo, hi
	return sum
}

func Dump(w io.Writer, a ...interface{}) {
	spewConfig.Fdump(w, a...)
}

func SDump(a ...interface{}) string {
	return spewConfig.Sdump(a...)
}
