package paygate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiateSessionSuccess(t *testing.T) {
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"store_id":     r.PostFormValue("store_id"),
			"total_amount": r.PostFormValue("total_amount"),
			"tran_id":      r.PostFormValue("tran_id"),
			"currency":     r.PostFormValue("currency"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://gateway.example/pay/abc"}`))
	}))
	defer srv.Close()

	client := NewSSLCommerzClient(srv.URL, "store-1", "pass-1")
	url, err := client.InitiateSession(context.Background(), &SessionRequest{
		Amount:   decimal.NewFromInt(1000),
		Currency: "BDT",
		TranRef:  "ref-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://gateway.example/pay/abc", url)
	assert.Equal(t, "store-1", gotForm["store_id"])
	assert.Equal(t, "1000.00", gotForm["total_amount"])
	assert.Equal(t, "ref-1", gotForm["tran_id"])
	assert.Equal(t, "BDT", gotForm["currency"])
}

func TestInitiateSessionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"FAILED","failedreason":"store credential mismatch"}`))
	}))
	defer srv.Close()

	client := NewSSLCommerzClient(srv.URL, "store-1", "wrong")
	_, err := client.InitiateSession(context.Background(), &SessionRequest{
		Amount:   decimal.NewFromInt(50),
		Currency: "BDT",
		TranRef:  "ref-2",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store credential mismatch")
}
