package construct

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// NativeValue converts a native Go value into its corresponding cty.Value.
func NativeValue(v any) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// NativeBag converts a map of native Go values into a parameter bag. It is a
// convenience for embedders that do not already work in cty values.
func NativeBag(params map[string]any) (map[string]cty.Value, error) {
	bag := make(map[string]cty.Value, len(params))
	for name, v := range params {
		val, err := NativeValue(v)
		if err != nil {
			return nil, fmt.Errorf("parameter '%s': %w", name, err)
		}
		bag[name] = val
	}
	return bag, nil
}
