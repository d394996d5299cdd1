package routeprofit

import(
	"encoding/json"
	"fmt"
)

// NullFloat is a float64 that may be undefined, e.g. a margin over zero revenue.
// The zero value is undefined.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

func Defined(f float64) NullFloat { return NullFloat{Float64: f, Valid: true} }

// Percent returns num/den*100, or an undefined value when den is zero.
func Percent(num, den float64) NullFloat {
	if den == 0 { return NullFloat{} }
	return Defined(num / den * 100.0)
}

// String renders to two decimal places; undefined renders as the empty string, which
// is how the exported tables represent null.
func (n NullFloat)String() string {
	if !n.Valid { return "" }
	return fmt.Sprintf("%.2f", n.Float64)
}

func (n NullFloat)MarshalJSON() ([]byte, error) {
	if !n.Valid { return []byte("null"), nil }
	return json.Marshal(n.Float64)
}

func (n *NullFloat)UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NullFloat{}
		return nil
	}
	if err := json.Unmarshal(b, &n.Float64); err != nil { return err }
	n.Valid = true
	return nil
}
