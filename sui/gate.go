package sui

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/miao-wallet/internal/client"
	"github.com/AlexZinkM/miao-wallet/internal/keys"
)

// GateState is a state of the confirmation gate
type GateState int

const (
	AwaitingSimulation GateState = iota
	SimulationFailed
	AwaitingConfirmation
	Confirmed
	Cancelled
)

func (s GateState) String() string {
	switch s {
	case AwaitingSimulation:
		return "awaiting_simulation"
	case SimulationFailed:
		return "simulation_failed"
	case AwaitingConfirmation:
		return "awaiting_confirmation"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("GateState(%d)", int(s))
	}
}

// Gate enforces simulate, then confirm, then sign. It is used once per
// transfer; the only way to a signature is the Authorization it hands out.
type Gate struct {
	state      GateState
	reason     string
	authorized bool
}

// NewGate returns a gate in AwaitingSimulation
func NewGate() *Gate {
	return &Gate{state: AwaitingSimulation}
}

// State returns the current state
func (g *Gate) State() GateState {
	return g.state
}

// Observe records the simulation result. A failed prediction moves the gate
// to the terminal SimulationFailed state and returns *SimulationFailedError.
func (g *Gate) Observe(res *client.SimulationResult) error {
	if g.state != AwaitingSimulation {
		return fmt.Errorf("%w: observe in %s", ErrGateState, g.state)
	}
	switch {
	case res == nil:
		g.state, g.reason = SimulationFailed, "no simulation result"
	case !res.Effects.Status.Success():
		g.state, g.reason = SimulationFailed, res.Effects.Status.Error
		if g.reason == "" {
			g.reason = res.Effects.Status.Status
		}
	default:
		g.state = AwaitingConfirmation
		return nil
	}
	return &SimulationFailedError{Reason: g.reason}
}

// Confirm asks c to approve preview. Anything but an explicit yes cancels.
func (g *Gate) Confirm(ctx context.Context, c Confirmer, preview *Preview) error {
	if g.state != AwaitingConfirmation {
		return fmt.Errorf("%w: confirm in %s", ErrGateState, g.state)
	}
	if c == nil {
		g.state = Cancelled
		return ErrUserCancelled
	}

	ok, err := c.Confirm(ctx, preview)
	if err != nil {
		g.state = Cancelled
		return fmt.Errorf("%w: %w", ErrUserCancelled, err)
	}
	if !ok {
		g.state = Cancelled
		return ErrUserCancelled
	}
	g.state = Confirmed
	return nil
}

// Authorize hands out the single signing authorization. It succeeds once,
// and only in Confirmed.
func (g *Gate) Authorize() (*Authorization, error) {
	if g.state != Confirmed {
		return nil, fmt.Errorf("%w: authorize in %s", ErrGateState, g.state)
	}
	if g.authorized {
		return nil, fmt.Errorf("%w: already authorized", ErrGateState)
	}
	g.authorized = true
	return &Authorization{}, nil
}

// Authorization permits exactly one signature
type Authorization struct {
	used bool
}

// Sign produces the signature envelope for txBytes and consumes the authorization
func (a *Authorization) Sign(txBytes []byte, m *keys.SecretMaterial) (keys.SignatureEnvelope, error) {
	if a == nil || a.used {
		return keys.SignatureEnvelope{}, fmt.Errorf("%w: authorization already used", ErrGateState)
	}
	a.used = true
	return keys.SignTransaction(txBytes, m)
}
