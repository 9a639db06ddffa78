package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-go/v2"
)

const (
	ServerKey = "defaultkey"
	Host      = "127.0.0.1"
	Port      = 7350
)

// TestClient is an authenticated device session against a running Nakama with the
// westscore module loaded.
type TestClient struct {
	Client  *nakama.Client
	Session *nakama.Session
	UserID  string
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()
	if os.Getenv("WESTSCORE_INTEGRATION") != "1" {
		t.Skip("set WESTSCORE_INTEGRATION=1 to run against a live Nakama")
	}

	client := nakama.NewClient(ServerKey, Host, Port, false)
	deviceID := fmt.Sprintf("westscore_test_%d", time.Now().UnixNano())
	session, err := client.AuthenticateDevice(context.Background(), deviceID, true, "")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}

	return &TestClient{
		Client:  client,
		Session: session,
		UserID:  session.UserId,
	}
}

// Call invokes rpc with req marshalled as JSON and decodes the response into resp.
func (tc *TestClient) Call(t *testing.T, rpc string, req, resp interface{}) {
	t.Helper()
	if err := tc.TryCall(rpc, req, resp); err != nil {
		t.Fatalf("RPC %s failed: %v", rpc, err)
	}
}

func (tc *TestClient) TryCall(rpc string, req, resp interface{}) error {
	payload := ""
	if req != nil {
		b, err := json.Marshal(req)
		if err != nil {
			return err
		}
		payload = string(b)
	}

	res, err := tc.Client.RpcFunc(context.Background(), tc.Session, rpc, payload)
	if err != nil {
		return err
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal([]byte(res.Payload), resp)
}
