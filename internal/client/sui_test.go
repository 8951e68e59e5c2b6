package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcCall struct {
	Method string
	Params []json.RawMessage
}

// fakeNode answers JSON-RPC calls from a method -> result table.
// A value of type *RPCError is returned as the error member.
func fakeNode(t *testing.T, results map[string]any) (*httptest.Server, *[]rpcCall) {
	t.Helper()
	var calls []rpcCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64            `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		calls = append(calls, rpcCall{Method: req.Method, Params: req.Params})

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		switch v := results[req.Method].(type) {
		case nil:
			resp["error"] = &RPCError{Code: -32601, Message: "Method not found"}
		case *RPCError:
			resp["error"] = v
		default:
			resp["result"] = v
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func param[T any](t *testing.T, c rpcCall, i int) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(c.Params[i], &v))
	return v
}

func TestSuiClient_GetCoins(t *testing.T) {
	srv, calls := fakeNode(t, map[string]any{
		"suix_getCoins": json.RawMessage(`{
			"data": [{"coinType":"0x2::sui::SUI","coinObjectId":"0xc1","version":"7","digest":"d1","balance":"1500000000"}],
			"nextCursor": "0xc1", "hasNextPage": false}`),
	})
	c := NewSuiClient(srv.URL, time.Second, "")

	page, err := c.GetCoins(context.Background(), "0xabc", nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "0xc1", page.Data[0].CoinObjectID)
	assert.Equal(t, uint64(1_500_000_000), page.Data[0].Balance)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "suix_getCoins", call.Method)
	assert.Equal(t, "0xabc", param[string](t, call, 0))
	assert.Equal(t, SUICoinType, param[string](t, call, 1))
	assert.Equal(t, "null", string(call.Params[2]))
	assert.Equal(t, 10, param[int](t, call, 3))
}

func TestSuiClient_PaySui(t *testing.T) {
	srv, calls := fakeNode(t, map[string]any{
		"unsafe_paySui": map[string]any{"txBytes": "AAEC"},
	})
	c := NewSuiClient(srv.URL, time.Second, "")

	tx, err := c.PaySui(context.Background(), PayRequest{
		Sender:     "0xs",
		CoinIDs:    []string{"0xc1"},
		Recipients: []string{"0xr"},
		Amounts:    []uint64{10_000_000},
		GasBudget:  5_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "AAEC", tx)

	call := (*calls)[0]
	assert.Equal(t, "0xs", param[string](t, call, 0))
	assert.Equal(t, []string{"0xc1"}, param[[]string](t, call, 1))
	assert.Equal(t, []string{"0xr"}, param[[]string](t, call, 2))
	assert.Equal(t, []string{"10000000"}, param[[]string](t, call, 3))
	assert.Equal(t, "5000000", param[string](t, call, 4))
}

func TestSuiClient_PaySui_MismatchedLengths(t *testing.T) {
	c := NewSuiClient("http://127.0.0.1:1/", time.Second, "")
	_, err := c.PaySui(context.Background(), PayRequest{Recipients: []string{"0xr"}})
	assert.Error(t, err)
}

func TestSuiClient_DryRun(t *testing.T) {
	srv, _ := fakeNode(t, map[string]any{
		"sui_dryRunTransactionBlock": json.RawMessage(`{
			"effects": {
				"status": {"status": "failure", "error": "InsufficientGas"},
				"gasUsed": {"computationCost":"1000000","storageCost":"1976000","storageRebate":"978120","nonRefundableStorageFee":"9880"}
			},
			"balanceChanges": [
				{"owner": {"AddressOwner": "0xs"}, "coinType": "0x2::sui::SUI", "amount": "-11997880"},
				{"owner": "Immutable", "coinType": "0x2::sui::SUI", "amount": "0"}
			]}`),
	})
	c := NewSuiClient(srv.URL, time.Second, "")

	res, err := c.DryRun(context.Background(), "AAEC")
	require.NoError(t, err)
	assert.False(t, res.Effects.Status.Success())
	assert.Equal(t, "InsufficientGas", res.Effects.Status.Error)
	assert.Equal(t, int64(1_997_880), res.Effects.GasUsed.Net())
	require.Len(t, res.BalanceChanges, 2)
	assert.Equal(t, "0xs", res.BalanceChanges[0].Owner.String())
	assert.Equal(t, int64(-11_997_880), res.BalanceChanges[0].Amount)
	assert.Equal(t, "Immutable", res.BalanceChanges[1].Owner.String())
}

func TestSuiClient_Execute(t *testing.T) {
	srv, calls := fakeNode(t, map[string]any{
		"sui_executeTransactionBlock": json.RawMessage(`{
			"digest": "9xDigest",
			"effects": {"status": {"status": "success"}, "gasUsed": {"computationCost":"1","storageCost":"2","storageRebate":"1"}},
			"balanceChanges": []}`),
	})
	c := NewSuiClient(srv.URL, time.Second, "")

	res, err := c.Execute(context.Background(), "AAEC", []string{"c2ln"})
	require.NoError(t, err)
	assert.Equal(t, "9xDigest", res.Digest)
	require.NotNil(t, res.Effects)
	assert.True(t, res.Effects.Status.Success())

	call := (*calls)[0]
	assert.Equal(t, "AAEC", param[string](t, call, 0))
	assert.Equal(t, []string{"c2ln"}, param[[]string](t, call, 1))
	assert.Equal(t, ExecuteOptions{ShowEffects: true, ShowBalanceChanges: true}, param[ExecuteOptions](t, call, 2))
	assert.Equal(t, WaitForLocalExecution, param[string](t, call, 3))
}

func TestSuiClient_ResolveName(t *testing.T) {
	srv, _ := fakeNode(t, map[string]any{
		"suix_resolveNameServiceAddress": "0xalice",
	})
	c := NewSuiClient(srv.URL, time.Second, "")

	addr, err := c.ResolveNameServiceAddress(context.Background(), "alice.sui")
	require.NoError(t, err)
	assert.Equal(t, "0xalice", addr)
}

func TestSuiClient_RPCError(t *testing.T) {
	srv, _ := fakeNode(t, map[string]any{
		"unsafe_paySui": &RPCError{Code: -32602, Message: "Invalid params"},
	})
	c := NewSuiClient(srv.URL, time.Second, "")

	_, err := c.PaySui(context.Background(), PayRequest{})
	require.Error(t, err)

	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, -32602, rpcErr.Code)
}

func TestRPCClient_InvalidEndpoint(t *testing.T) {
	c := NewRPCClient("http://127.0.0.1:1/", time.Second) // port 1 should refuse
	err := c.Call(context.Background(), "sui_getChainIdentifier", nil, nil)
	assert.Error(t, err)
}

func TestRPCClient_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewRPCClient(srv.URL, time.Second).Call(context.Background(), "m", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCoinGeckoClient_GetSUIRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "sui", r.URL.Query().Get("ids"))
		w.Write([]byte(`{"sui":{"usd":3.41}}`))
	}))
	defer srv.Close()

	rate, err := NewCoinGeckoClientWithURL(srv.URL).GetSUIRate(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, "3.41", rate.String())

	_, err = NewCoinGeckoClientWithURL(srv.URL).GetSUIRate(context.Background(), "eur")
	assert.Error(t, err)
}

// rawNode answers every request with the given status and body.
func rawNode(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSuiClient_TransportShapes(t *testing.T) {
	shapes := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"gateway json", http.StatusBadGateway, `{"message":"bad gateway"}`, "http status 502"},
		{"gateway text", http.StatusBadGateway, `bad gateway`, "http status 502"},
		{"unavailable envelope", http.StatusServiceUnavailable, `{"jsonrpc":"2.0","id":1,"result":{"data":[]}}`, "http status 503"},
		{"empty envelope", http.StatusOK, `{"jsonrpc":"2.0","id":1}`, ErrEmptyResult.Error()},
		{"null result", http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":null}`, ErrNullResult.Error()},
		{"not json", http.StatusOK, `<html>ok</html>`, "decode response"},
	}
	calls := map[string]func(*SuiClient) error{
		"GetCoins": func(c *SuiClient) error {
			_, err := c.GetCoins(context.Background(), "0xabc", nil, 10)
			return err
		},
		"PaySui": func(c *SuiClient) error {
			_, err := c.PaySui(context.Background(), PayRequest{})
			return err
		},
		"DryRun": func(c *SuiClient) error {
			_, err := c.DryRun(context.Background(), "AAEC")
			return err
		},
		"Execute": func(c *SuiClient) error {
			_, err := c.Execute(context.Background(), "AAEC", []string{"c2ln"})
			return err
		},
	}

	for _, s := range shapes {
		for method, call := range calls {
			t.Run(s.name+"/"+method, func(t *testing.T) {
				srv := rawNode(t, s.status, s.body)
				err := call(NewSuiClient(srv.URL, time.Second, ""))
				require.Error(t, err)
				assert.Contains(t, err.Error(), s.want)

				var rpcErr *RPCError
				assert.False(t, errors.As(err, &rpcErr), "transport failure must not look like a node error")
			})
		}
	}
}

func TestSuiClient_Execute_NoDigest(t *testing.T) {
	srv, _ := fakeNode(t, map[string]any{
		"sui_executeTransactionBlock": json.RawMessage(`{"balanceChanges": []}`),
	})
	_, err := NewSuiClient(srv.URL, time.Second, "").Execute(context.Background(), "AAEC", []string{"c2ln"})
	assert.Error(t, err)
}

func TestSuiClient_ResolveName_Unknown(t *testing.T) {
	srv := rawNode(t, http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":null}`)

	addr, err := NewSuiClient(srv.URL, time.Second, "").ResolveNameServiceAddress(context.Background(), "nobody.sui")
	require.NoError(t, err)
	assert.Empty(t, addr)
}

func TestRPCClient_ErrorMemberOnNon200(t *testing.T) {
	srv := rawNode(t, http.StatusInternalServerError, `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"overloaded"}}`)

	err := NewRPCClient(srv.URL, time.Second).Call(context.Background(), "m", nil, nil)
	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, "overloaded", rpcErr.Message)
}
