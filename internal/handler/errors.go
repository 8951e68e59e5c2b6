package handler

import (
	"errors"
	"net/http"

	"github.com/AlexZinkM/miao-wallet/internal/crypto"
	"github.com/AlexZinkM/miao-wallet/internal/keys"
	"github.com/AlexZinkM/miao-wallet/internal/store"
	"github.com/AlexZinkM/miao-wallet/sui"
)

// errorKinds maps error kinds to HTTP status and a stable error code.
// Order matters: the first match wins.
var errorKinds = []struct {
	err    error
	status int
	code   string
}{
	{crypto.ErrInvalidPassword, http.StatusInternalServerError, "invalid_password"},
	{sui.ErrInvalidRequest, http.StatusBadRequest, "invalid_request"},
	{keys.ErrDecode, http.StatusBadRequest, "decode_error"},
	{sui.ErrNameResolution, http.StatusBadRequest, "name_resolution"},
	{store.ErrInvalidAlias, http.StatusBadRequest, "invalid_alias"},
	{store.ErrNotFound, http.StatusNotFound, "wallet_not_found"},
	{sui.ErrKeyUnavailable, http.StatusNotFound, "key_unavailable"},
	{sui.ErrAddressUnknown, http.StatusNotFound, "address_unknown"},
	{sui.ErrCooldown, http.StatusTooManyRequests, "cooldown"},
	{sui.ErrNoFunds, http.StatusUnprocessableEntity, "no_funds"},
	{sui.ErrSimulationFailed, http.StatusUnprocessableEntity, "simulation_failed"},
	{sui.ErrExecutionFailed, http.StatusUnprocessableEntity, "execution_failed"},
	{sui.ErrUserCancelled, http.StatusConflict, "cancelled"},
	{sui.ErrCoinSource, http.StatusBadGateway, "coin_source_error"},
	{sui.ErrBuilder, http.StatusBadGateway, "builder_error"},
	{sui.ErrSimulationTransport, http.StatusBadGateway, "simulation_transport_error"},
	{sui.ErrBroadcastTransport, http.StatusBadGateway, "broadcast_transport_error"},
}

func classify(err error) (int, string) {
	if store.IsExistsError(err) {
		return http.StatusConflict, "wallet_exists"
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, "internal"
}
