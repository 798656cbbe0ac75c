// ABOUTME: Asynchronous authentication simulation against the recognition service
// ABOUTME: Fires simulate_auth without blocking and hands verdicts to a display

package authsim

import (
	"context"
	"log/slog"
	"sync"

	"github.com/markalston/facerec-auth/internal/client"
)

// ReadyMessage is logged once when the client starts up
const ReadyMessage = "Facial Recognition System loaded"

// Display receives every verdict the service answered with JSON
type Display interface {
	Display(result client.AuthResult)
}

// DisplayFunc adapts a function to Display
type DisplayFunc func(result client.AuthResult)

// Display calls f(result)
func (f DisplayFunc) Display(result client.AuthResult) {
	f(result)
}

// Authenticator performs a single simulate_auth round trip
type Authenticator interface {
	Authenticate(ctx context.Context, employeeID string) (*client.AuthResult, error)
}

// Simulator issues authentication simulations and renders their verdicts.
// Transport and parse failures are logged and never reach the display.
type Simulator struct {
	auth    Authenticator
	display Display
	logger  *slog.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithLogger sets the diagnostic logger (default slog.Default())
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = l
	}
}

// New creates a simulator that renders into d
func New(auth Authenticator, d Display, opts ...Option) *Simulator {
	s := &Simulator{
		auth:    auth,
		display: d,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SimulateAuthentication starts a simulation and returns immediately.
// There is no ordering between concurrent calls: each verdict is displayed
// when its response arrives, so the last one to resolve wins.
func (s *Simulator) SimulateAuthentication(ctx context.Context, employeeID string) *Pending {
	p := &Pending{
		employeeID: employeeID,
		done:       make(chan struct{}),
	}

	go func() {
		defer close(p.done)

		result, err := s.auth.Authenticate(ctx, employeeID)
		if err != nil {
			p.err = err
			s.logger.Error("Authentication error", "employee_id", employeeID, "error", err)
			return
		}

		p.result = result
		s.logger.Debug("Authentication result received",
			"employee_id", employeeID,
			"status", result.StatusCode,
			"result", result.Result.String(),
			"confidence", result.Confidence.String(),
			"processing_time_ms", result.ProcessingTime.String(),
		)
		s.display.Display(*result)
	}()

	return p
}

// Pending is the outcome of an in-flight simulation
type Pending struct {
	employeeID string
	done       chan struct{}
	result     *client.AuthResult
	err        error
}

// EmployeeID returns the identifier the simulation was started for
func (p *Pending) EmployeeID() string {
	return p.employeeID
}

// Done is closed once the verdict has been displayed or the failure logged
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the simulation finishes or ctx ends. A ctx ending here
// does not cancel the request itself.
func (p *Pending) Wait(ctx context.Context) (*client.AuthResult, error) {
	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result returns the verdict, or nil if not finished or failed
func (p *Pending) Result() *client.AuthResult {
	select {
	case <-p.done:
		return p.result
	default:
		return nil
	}
}

// Err returns the failure, or nil if not finished or successful
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

var announceOnce sync.Once

// Announce logs the readiness message once per process
func Announce(logger *slog.Logger) {
	announceOnce.Do(func() {
		logger.Info(ReadyMessage)
	})
}
