package solver

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeParams decodes a ProblemInstance.Parameters map into a typed
// parameter struct (e.g., generate.ThreeSATParams). Field matching is by
// mapstructure tag, falling back to case-insensitive field names.
//
// Unknown keys are ignored; type mismatches fail with ErrBadParameters.
//
// Complexity: O(len(params)).
func DecodeParams(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadParameters, err)
	}
	if err = dec.Decode(params); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParameters, err)
	}

	return nil
}
