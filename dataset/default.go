package dataset

import (
	"embed"
	"sync"

	"github.com/qcforge/chemref/codec"
)

//go:embed data/dataset.json
var embedded embed.FS

var defaultDataset = sync.OnceValues(func() (*Dataset, error) {
	data, err := embedded.ReadFile("data/dataset.json")
	if err != nil {
		return nil, err
	}
	return Load(data, codec.JSON{})
})

// Default returns the dataset embedded into the binary: NIST standard
// atomic weights for all 118 elements, NIST isotopic masses for the
// commonly tabulated nuclides, and the CODATA 2014 physical constants.
//
// The dataset is decoded and validated exactly once per process; all
// callers share the same immutable instance.
func Default() (*Dataset, error) {
	return defaultDataset()
}
