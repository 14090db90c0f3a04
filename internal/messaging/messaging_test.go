package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

func TestWebhookSendPostsPrefixedPhone(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	gw := NewWebhookGateway(srv.URL, time.Second)
	if err := gw.Send(context.Background(), "(11) 98765-4321", "hi"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.Phone != "5511987654321" {
		t.Errorf("phone = %q", got.Phone)
	}
	if got.Message != "hi" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestWebhookShortPhoneNeverCallsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	gw := NewWebhookGateway(srv.URL, time.Second)
	err := gw.Send(context.Background(), "123", "hi")

	if !httperr.IsMessaging(err) {
		t.Fatalf("err = %v, want MessagingError", err)
	}
	if !strings.Contains(err.Error(), "invalid_phone") {
		t.Errorf("err = %v", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Errorf("webhook was called %d times", hits)
	}
}

func TestWebhookEmptyPhone(t *testing.T) {
	gw := NewWebhookGateway("http://127.0.0.1:1", time.Second)
	if err := gw.Send(context.Background(), "", "hi"); !httperr.IsMessaging(err) {
		t.Fatalf("err = %v, want MessagingError", err)
	}
}

func TestWebhookFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		reason string
	}{
		{"non 2xx with message", http.StatusInternalServerError, `{"message":"workflow inactive"}`, "workflow inactive"},
		{"non 2xx plain", http.StatusBadRequest, "bad", "bad"},
		{"non json body", http.StatusOK, "Workflow was started", "malformed_response"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := NewWebhookGateway(srv.URL, time.Second).Send(context.Background(), "11987654321", "hi")
			if !httperr.IsMessaging(err) {
				t.Fatalf("err = %v, want MessagingError", err)
			}
			if !strings.Contains(err.Error(), tc.reason) {
				t.Errorf("err = %q, want it to mention %q", err, tc.reason)
			}
		})
	}
}

func TestWebhookNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewWebhookGateway(url, time.Second).Send(context.Background(), "11987654321", "hi")
	if !httperr.IsMessaging(err) {
		t.Fatalf("err = %v, want MessagingError", err)
	}
}

func TestReminderMessage(t *testing.T) {
	got := ReminderMessage("Ana", "2025-03-10", "14:30")
	want := "Oi, Ana! Tudo pronto para te receber no salão 💇‍♀️\n📍 Seu horário é: 10/03, às 14:30\nPosso confirmar sua presença?"
	if got != want {
		t.Errorf("ReminderMessage =\n%q\nwant\n%q", got, want)
	}
}

func TestBirthdayMessage(t *testing.T) {
	got := BirthdayMessage("Ana", "")
	if !strings.HasPrefix(got, "🎉 Feliz Aniversário, Ana!") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.HasSuffix(got, "Com carinho,\nnosso estúdio") {
		t.Errorf("missing default signature: %q", got)
	}

	if got := BirthdayMessage("Ana", "Studio Bela"); !strings.HasSuffix(got, "Studio Bela") {
		t.Errorf("signature = %q", got)
	}
}
