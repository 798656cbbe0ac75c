// ABOUTME: Tests for HTML verdict rendering
// ABOUTME: Verifies class and icon branching, number formatting, and panel overwrites

package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/markalston/facerec-auth/internal/client"
)

// reply parses a response body the way the client does
func reply(t *testing.T, body string) client.AuthResult {
	t.Helper()
	r, err := client.Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse(%s): %v", body, err)
	}
	return *r
}

func TestFragment_Success(t *testing.T) {
	out := Fragment(reply(t, `{"result":"SUCCESS","employee_name":"Alice","confidence":0.873,"processing_time":42}`))

	for _, want := range []string{ClassSuccess, IconSuccess, "Authentication SUCCESS", "Alice", "87.3%", "42ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected fragment to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, ClassFailure) || strings.Contains(out, IconFailure) {
		t.Errorf("success fragment must not contain failure markers:\n%s", out)
	}
}

func TestFragment_Failure(t *testing.T) {
	out := Fragment(reply(t, `{"result":"FAILURE","employee_name":"Bob","confidence":0.12,"processing_time":15}`))

	for _, want := range []string{ClassFailure, IconFailure, "Bob", "12.0%", "15ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected fragment to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, ClassSuccess) || strings.Contains(out, IconSuccess) {
		t.Errorf("failure fragment must not contain success markers:\n%s", out)
	}
}

func TestFragment_NonSentinelVerdictsFail(t *testing.T) {
	for _, verdict := range []string{"", "FAILED", "success", "Success", "SUCCES", "SUCCESS!"} {
		t.Run(verdict, func(t *testing.T) {
			body, _ := json.Marshal(map[string]string{"result": verdict})
			out := Fragment(reply(t, string(body)))
			if !strings.Contains(out, ClassFailure) {
				t.Errorf("expected failure class for %q", verdict)
			}
		})
	}
}

func TestFragment_Layout(t *testing.T) {
	out := Fragment(reply(t, `{"result":"SUCCESS","employee_name":"Alice","confidence":0.5,"processing_time":1200}`))

	want := `<div class="alert alert-success">`
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in fragment:\n%s", want, out)
	}
	for _, label := range []string{"<strong>Employee:</strong>", "<strong>Confidence:</strong>", "<strong>Processing Time:</strong>"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected label %q in fragment", label)
		}
	}
}

func TestFragment_EscapesMarkup(t *testing.T) {
	out := Fragment(reply(t, `{"result":"SUCCESS","employee_name":"<script>alert(1)</script>"}`))
	if strings.Contains(out, "<script>") {
		t.Errorf("expected employee name to be escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag in fragment:\n%s", out)
	}
}

func TestFormatConfidence(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "100.0"},
		{0.873, "87.3"},
		{0.12, "12.0"},
		{0.95, "95.0"},
		{0.6, "60.0"},
		{0.0025, "0.3"},
		{0.1225, "12.3"},
		{0.00125, "0.1"},
		{-0.0025, "-0.3"},
		{0.0004, "0.0"},
		{math.NaN(), "NaN"},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.in), func(t *testing.T) {
			if got := FormatConfidence(tc.in); got != tc.want {
				t.Errorf("FormatConfidence(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFragment_ConfidenceBoundaries(t *testing.T) {
	if out := Fragment(reply(t, `{"confidence":0}`)); !strings.Contains(out, "0.0%") {
		t.Errorf("expected 0.0%% in fragment:\n%s", out)
	}
	if out := Fragment(reply(t, `{"confidence":1}`)); !strings.Contains(out, "100.0%") {
		t.Errorf("expected 100.0%% in fragment:\n%s", out)
	}
}

func TestFragment_ProcessingTimeVerbatim(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"processing_time":42}`, "42ms"},
		{`{"processing_time":1800}`, "1800ms"},
		{`{"processing_time":0}`, "0ms"},
		{`{"processing_time":12.5}`, "12.5ms"},
		{`{"processing_time":"15"}`, "15ms"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if out := Fragment(reply(t, tc.body)); !strings.Contains(out, "</strong> "+tc.want+"</p>") {
				t.Errorf("expected %q in fragment:\n%s", tc.want, out)
			}
		})
	}
}

func TestFragment_MissingFieldsRenderBlank(t *testing.T) {
	out := Fragment(reply(t, `{"result":"SUCCESS"}`))

	for _, want := range []string{
		"<strong>Employee:</strong> </p>",
		"<strong>Confidence:</strong> %</p>",
		"<strong>Processing Time:</strong> ms</p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected blank value %q in fragment:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0.0%") {
		t.Errorf("a missing confidence must not render as a score:\n%s", out)
	}
}

func TestFragment_NumericStringConfidence(t *testing.T) {
	out := Fragment(reply(t, `{"result":"FAILED","confidence":"0.9"}`))
	if !strings.Contains(out, "90.0%") {
		t.Errorf("expected numeric string confidence to render as 90.0%%:\n%s", out)
	}
}

func TestFragment_ErrorReply(t *testing.T) {
	out := Fragment(reply(t, `{"error":"Employee not found"}`))
	for _, want := range []string{ClassFailure, IconFailure, "Authentication </h5>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in fragment:\n%s", want, out)
		}
	}
}

func TestDisplayAuthResult_Overwrites(t *testing.T) {
	panel := NewPanel("initial")

	DisplayAuthResult(panel, reply(t, `{"result":"SUCCESS","employee_name":"Alice"}`))
	first := panel.Content()
	if !strings.Contains(first, "Alice") {
		t.Fatalf("expected Alice after first render, got:\n%s", first)
	}

	DisplayAuthResult(panel, reply(t, `{"result":"FAILED","employee_name":"Bob"}`))
	second := panel.Content()
	if strings.Contains(second, "Alice") || !strings.Contains(second, "Bob") {
		t.Errorf("expected second render to replace the first, got:\n%s", second)
	}
	if panel.Writes() != 2 {
		t.Errorf("expected 2 writes, got %d", panel.Writes())
	}
}

func TestDisplayAuthResult_Idempotent(t *testing.T) {
	panel := NewPanel("")
	data := reply(t, `{"result":"SUCCESS","employee_name":"Alice","confidence":0.9,"processing_time":900}`)

	DisplayAuthResult(panel, data)
	first := panel.Content()
	DisplayAuthResult(panel, data)

	if panel.Content() != first {
		t.Error("expected identical renders for identical data")
	}
}

func TestHTMLDisplay(t *testing.T) {
	panel := NewPanel("")
	HTML{Target: panel}.Display(reply(t, `{"result":"SUCCESS","employee_name":"Carol"}`))

	if !strings.Contains(panel.Content(), "Carol") {
		t.Errorf("expected HTML display to write into the panel, got %q", panel.Content())
	}
}

func TestPanel_ConcurrentWrites(t *testing.T) {
	panel := NewPanel("")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			panel.SetContent("x")
			_ = panel.Content()
		}()
	}
	wg.Wait()

	if panel.Writes() != 50 {
		t.Errorf("expected 50 writes, got %d", panel.Writes())
	}
}
