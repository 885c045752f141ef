package audit_test

import (
	"context"
	"encoding/json"
	"it-inventory/audit"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func TestHubBroadcastsPublishedEntries(t *testing.T) {
	l := testLogger()
	hub := audit.NewHub()
	srv := httptest.NewServer(hub.Serve(l))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("Subscriber never registered.")
		}
		time.Sleep(10 * time.Millisecond)
	}

	db := testDatabase(t)
	p := audit.NewProcessor(l, context.Background(), db).WithHub(hub)
	m, err := p.Record(uuid.New(), audit.ActionDelete, "IT-0009", "Deleted asset: Switch")
	if err != nil {
		t.Fatalf("Failed to record entry: %v", err)
	}
	p.Publish(m)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, b, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read broadcast: %v", err)
	}
	var rm audit.RestModel
	if err = json.Unmarshal(b, &rm); err != nil {
		t.Fatalf("Failed to decode broadcast: %v", err)
	}
	if rm.Action != "DELETE" || rm.AssetCode != "IT-0009" || rm.Details != "Deleted asset: Switch" || rm.User != "Admin" {
		t.Errorf("Unexpected broadcast: %+v", rm)
	}
}

func TestHistoryResource(t *testing.T) {
	db := testDatabase(t)
	p := audit.NewProcessor(testLogger(), context.Background(), db).WithHub(audit.NewHub())
	for _, code := range []string{"IT-0001", "IT-0002"} {
		if _, err := p.Record(uuid.New(), audit.ActionCreate, code, "Created new asset: "+code); err != nil {
			t.Fatalf("Failed to record entry: %v", err)
		}
	}

	r := muxRouter(db)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d.", w.Code)
	}
	var rms []audit.RestModel
	if err := json.Unmarshal(w.Body.Bytes(), &rms); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(rms) != 2 || rms[0].AssetCode != "IT-0002" {
		t.Errorf("Unexpected history: %+v", rms)
	}
	if _, err := time.Parse(time.RFC3339Nano, rms[0].Timestamp); err != nil {
		t.Errorf("Timestamp not RFC3339: %s", rms[0].Timestamp)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history?assetCode=IT-0001", nil))
	rms = nil
	_ = json.Unmarshal(w.Body.Bytes(), &rms)
	if len(rms) != 1 || rms[0].AssetCode != "IT-0001" {
		t.Errorf("Unexpected filtered history: %+v", rms)
	}
}
