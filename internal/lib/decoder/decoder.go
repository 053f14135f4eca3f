package decoder

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

// URLDecoder fills structs from query strings and urlencoded forms using
// `schema` struct tags. Keys missing from the source keep the destination's
// current value, so callers can pre-fill defaults. Unknown keys are ignored.
type URLDecoder struct {
	decoder *schema.Decoder
}

func New() *URLDecoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return &URLDecoder{decoder: d}
}

// Decode returns a map of field -> message for values that could not be
// converted, or an error for anything else.
func (d *URLDecoder) Decode(dst any, src url.Values) (map[string]string, error) {
	err := d.decoder.Decode(dst, src)
	if err == nil {
		return nil, nil
	}
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return nil, err
	}
	fieldErrs := make(map[string]string, len(multi))
	for key, e := range multi {
		var convErr schema.ConversionError
		if errors.As(e, &convErr) {
			fieldErrs[key] = fmt.Sprintf("Value must be of type %s", convErr.Type)
			continue
		}
		fieldErrs[key] = "This field is invalid"
	}
	return fieldErrs, nil
}
