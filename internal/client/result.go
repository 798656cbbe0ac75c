// ABOUTME: Schema-free view of a simulate_auth reply
// ABOUTME: Keeps each field as sent so absent and odd-typed values still render

package client

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ResultSuccess is the only verdict treated as a successful authentication
const ResultSuccess = "SUCCESS"

// ErrInvalidResponse is returned for bodies that are not a usable JSON value
var ErrInvalidResponse = errors.New("invalid response from backend")

// AuthResult is the verdict returned by the authentication service.
// No field is required and none is type-checked.
type AuthResult struct {
	Result         Field
	EmployeeName   Field
	Confidence     Field
	ProcessingTime Field
	Timestamp      Field
	// Error is set by the service when it rejects the request
	Error Field

	// StatusCode is the HTTP status the reply came with
	StatusCode int

	raw []byte
}

// Parse reads a reply body. The body must be exactly one JSON value; a
// literal null carries no fields to read and is rejected as well.
func Parse(body []byte) (*AuthResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidResponse
	}
	doc := gjson.ParseBytes(body)
	if doc.Type == gjson.Null {
		return nil, ErrInvalidResponse
	}

	get := func(name string) Field {
		return Field{r: doc.Get(name)}
	}
	return &AuthResult{
		Result:         get("result"),
		EmployeeName:   get("employee_name"),
		Confidence:     get("confidence"),
		ProcessingTime: get("processing_time"),
		Timestamp:      get("timestamp"),
		Error:          get("error"),
		raw:            append([]byte(nil), body...),
	}, nil
}

// Succeeded reports whether the verdict is exactly the string SUCCESS
func (r AuthResult) Succeeded() bool {
	return r.Result.r.Type == gjson.String && r.Result.r.Str == ResultSuccess
}

// Raw returns the reply body as received
func (r AuthResult) Raw() []byte {
	return r.raw
}

// Field is one member of a reply, kept as the service sent it
type Field struct {
	r gjson.Result
}

// Present reports whether the reply carried the field at all
func (f Field) Present() bool {
	return f.r.Exists()
}

// String is the field as text: strings unquoted, numbers in shortest form,
// null as "null", objects and arrays as raw JSON. Absent fields are empty.
func (f Field) String() string {
	switch {
	case !f.r.Exists():
		return ""
	case f.r.Type == gjson.Null:
		return "null"
	case f.r.Type == gjson.JSON:
		return f.r.Raw
	default:
		return f.r.String()
	}
}

// Number coerces the field for arithmetic. Numeric strings parse, booleans
// are 0 or 1, null and blank strings are 0, and everything else (absent
// fields included) is NaN.
func (f Field) Number() float64 {
	if !f.r.Exists() {
		return math.NaN()
	}
	switch f.r.Type {
	case gjson.Number:
		return f.r.Num
	case gjson.True:
		return 1
	case gjson.False, gjson.Null:
		return 0
	case gjson.String:
		s := strings.TrimSpace(f.r.Str)
		if s == "" {
			return 0
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN()
		}
		return n
	}
	return math.NaN()
}
