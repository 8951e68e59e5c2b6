package sui

import (
	"errors"
	"fmt"
)

// Error kinds of a transfer. Every error returned by Service matches at most
// one of these with errors.Is, besides keys.ErrDecode for malformed secrets.
var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrNameResolution      = errors.New("name resolution failed")
	ErrKeyUnavailable      = errors.New("key unavailable")
	ErrAddressUnknown      = errors.New("wallet address unknown")
	ErrCooldown            = errors.New("cooldown active")
	ErrCoinSource          = errors.New("failed to list coins")
	ErrNoFunds             = errors.New("no spendable coin")
	ErrBuilder             = errors.New("failed to build transaction")
	ErrSimulationTransport = errors.New("failed to simulate transaction")
	ErrSimulationFailed    = errors.New("simulation failed")
	ErrUserCancelled       = errors.New("cancelled by user")
	ErrGateState           = errors.New("illegal confirmation gate transition")
	ErrBroadcastTransport  = errors.New("failed to broadcast transaction")
	ErrExecutionFailed     = errors.New("execution failed")
)

// SimulationFailedError is returned when the dry run predicts an on-chain failure
type SimulationFailedError struct {
	Reason string
}

func (e *SimulationFailedError) Error() string {
	return fmt.Sprintf("simulation failed: %s", e.Reason)
}

func (e *SimulationFailedError) Is(target error) bool {
	return target == ErrSimulationFailed
}

// ExecutionError is returned when the broadcast call went through but the
// chain did not apply the transaction. Digest is set when the node assigned one.
type ExecutionError struct {
	Digest  string
	Status  string
	Reason  string
	Outcome *TransferOutcome
}

func (e *ExecutionError) Error() string {
	if e.Digest == "" {
		return fmt.Sprintf("execution failed (%s): %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("execution failed (%s) for %s: %s", e.Status, e.Digest, e.Reason)
}

func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecutionFailed
}
