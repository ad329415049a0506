package masking

// #region imports
import (
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

// #endregion imports

// #region hole-instance

// HoleInstance records one placed hole or mask.
//
// During construction Position indexes the original sequence; after assembly
// it indexes the masked buffer (where the placeholder token sits). A
// HoleLength of 0 marks an empty hole whose target is the end-hole sentinel.
// Padding entries carry Weight 0 and HoleLength -1.
type HoleInstance struct {
	Position   int
	Target     vocab.Token
	HoleLength int
	Weight     float32
}

// #endregion hole-instance

// #region masked-instance

// MaskedInstance is the result of masking one fixed-length sequence.
type MaskedInstance struct {
	SeenInTraining bool
	Original       []vocab.Token
	InputIDs       []vocab.Token
	InputMask      []int32

	// Holes has exactly MaxPredictions entries: NumHoles real instances
	// sorted by buffer position, then padding entries.
	Holes    []HoleInstance
	NumHoles int
}

// #endregion masked-instance

// #region config

// Config holds the masking parameters shared by both modes.
type Config struct {
	MaxPredictions int     // cap on prediction slots per sequence
	MaskProb       float64 // fraction of real tokens targeted
	RandomPlaced   bool    // simple mode only: BERT-style 80/10/10 replacement
}

// DefaultConfig returns the masking defaults used across the corpus tools.
func DefaultConfig() Config {
	return Config{
		MaxPredictions: 20,
		MaskProb:       0.15,
		RandomPlaced:   false,
	}
}

// #endregion config
