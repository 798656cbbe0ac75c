// ABOUTME: HTML rendering of authentication verdicts into a render target
// ABOUTME: Maps an AuthResult onto the alert fragment shown in the result panel

package render

import (
	"bytes"
	"html/template"
	"math"
	"math/big"
	"strconv"
	"sync"

	"github.com/markalston/facerec-auth/internal/client"
)

// Presentation classes and glyphs for the two verdict branches
const (
	ClassSuccess = "alert-success"
	ClassFailure = "alert-danger"
	IconSuccess  = "✅"
	IconFailure  = "❌"
)

// Target is the container whose content is replaced by each render
type Target interface {
	SetContent(fragment string)
}

// Panel is an in-memory Target. Concurrent writes are serialized and the
// last one wins.
type Panel struct {
	mu      sync.RWMutex
	content string
	writes  int
}

// NewPanel creates a panel holding initial content
func NewPanel(initial string) *Panel {
	return &Panel{content: initial}
}

// SetContent replaces the panel content
func (p *Panel) SetContent(fragment string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.content = fragment
	p.writes++
}

// Content returns the current panel content
func (p *Panel) Content() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.content
}

// Writes returns how many times the panel has been rendered into
func (p *Panel) Writes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.writes
}

var fragmentTemplate = template.Must(template.New("authResult").Parse(`
    <div class="alert {{.Class}}">
        <h5>{{.Icon}} Authentication {{.Result}}</h5>
        <p><strong>Employee:</strong> {{.EmployeeName}}</p>
        <p><strong>Confidence:</strong> {{.Confidence}}%</p>
        <p><strong>Processing Time:</strong> {{.ProcessingTime}}ms</p>
    </div>
`))

type fragmentData struct {
	Class          string
	Icon           string
	Result         string
	EmployeeName   string
	Confidence     string
	ProcessingTime string
}

// Fragment renders the alert markup for a verdict. Fields the reply did not
// carry render blank.
func Fragment(data client.AuthResult) string {
	fd := fragmentData{
		Class:          ClassFailure,
		Icon:           IconFailure,
		Result:         data.Result.String(),
		EmployeeName:   data.EmployeeName.String(),
		ProcessingTime: data.ProcessingTime.String(),
	}
	if data.Confidence.Present() {
		fd.Confidence = FormatConfidence(data.Confidence.Number())
	}
	if data.Succeeded() {
		fd.Class = ClassSuccess
		fd.Icon = IconSuccess
	}

	var buf bytes.Buffer
	// Executing a parsed template over plain strings cannot fail.
	_ = fragmentTemplate.Execute(&buf, fd)
	return buf.String()
}

// FormatConfidence renders a 0-1 score as a percentage with one decimal.
// The digit is chosen on the exact value of confidence*100 and a tie goes
// to the larger magnitude, so 0.0025 gives "0.3".
func FormatConfidence(confidence float64) string {
	x := confidence * 100
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	if x >= 1e21 {
		return sign + strconv.FormatFloat(x, 'g', -1, 64)
	}

	// tenths = floor(x*10 + 1/2), computed without rounding
	r := new(big.Rat).SetFloat64(x)
	r.Mul(r, big.NewRat(10, 1))
	r.Add(r, big.NewRat(1, 2))
	tenths := new(big.Int).Quo(r.Num(), r.Denom()).String()
	if len(tenths) < 2 {
		tenths = "0" + tenths
	}
	return sign + tenths[:len(tenths)-1] + "." + tenths[len(tenths)-1:]
}

// DisplayAuthResult replaces the target's content with the rendered verdict
func DisplayAuthResult(target Target, data client.AuthResult) {
	target.SetContent(Fragment(data))
}

// HTML displays verdicts as HTML fragments into a Target
type HTML struct {
	Target Target
}

// Display implements authsim.Display
func (h HTML) Display(result client.AuthResult) {
	DisplayAuthResult(h.Target, result)
}
