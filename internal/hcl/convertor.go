package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// listToStrings renders every element of a list or tuple value as text.
// Numbers keep their exact decimal form; strings pass through untouched so the
// caller's numeric parser decides whether they are acceptable.
func listToStrings(val cty.Value) ([]string, error) {
	if val.IsNull() {
		return nil, fmt.Errorf("'values' must not be null")
	}
	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return nil, fmt.Errorf("'values' must be a list, got %s", ty.FriendlyName())
	}

	out := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		idx, el := it.Element()
		i, _ := idx.AsBigFloat().Int64()

		if el.IsNull() {
			return nil, fmt.Errorf("values[%d] must not be null", i)
		}
		if !el.Type().Equals(cty.Number) && !el.Type().Equals(cty.String) {
			return nil, fmt.Errorf("values[%d] must be a number, got %s", i, el.Type().FriendlyName())
		}

		str, err := convert.Convert(el, cty.String)
		if err != nil {
			return nil, fmt.Errorf("cannot convert values[%d] to text: %w", i, err)
		}
		out = append(out, str.AsString())
	}
	return out, nil
}
