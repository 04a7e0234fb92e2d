package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_ServiceAndComponentFields(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Init(Options{Level: "info", Output: &buf, Service: "connects"})
	log := Component("ledger")
	log.Info().Msg("hello")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if event["service"] != "connects" || event["component"] != "ledger" || event["message"] != "hello" {
		t.Fatalf("unexpected event: %v", event)
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = Get()
}

func TestFor_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("component", "ledger").Logger()

	ctx := WithRequestID(context.Background(), "req-42")
	log := For(ctx, base)
	log.Info().Msg("connects ledger updated")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if event["request_id"] != "req-42" || event["component"] != "ledger" {
		t.Fatalf("unexpected event: %v", event)
	}
}

func TestFor_WithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	if got := RequestID(WithRequestID(context.Background(), "")); got != "" {
		t.Fatalf("empty id stored: %q", got)
	}
	log := For(context.Background(), base)
	log.Info().Msg("hello")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if _, ok := event["request_id"]; ok {
		t.Fatalf("request_id set without one in context: %v", event)
	}
}
