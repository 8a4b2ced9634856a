package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/beichen-observer/models"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, models.ID("u-1"))

	id, ok := GetUserIDFromContext(ctx)
	if !ok || id != "u-1" {
		t.Errorf("expected u-1, got %q (%v)", id, ok)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"absent", context.Background()},
		{"wrong type", context.WithValue(context.Background(), UserIDCtxKey, int64(1))},
		{"empty", context.WithValue(context.Background(), UserIDCtxKey, models.ID(""))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := GetUserIDFromContext(tt.ctx); ok {
				t.Error("expected ok == false")
			}
		})
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	id, ok := GetTraceIDFromContext(ctx)
	if !ok || id != "trace-1" {
		t.Errorf("expected trace-1, got %q", id)
	}
	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected no trace id")
	}
}

func TestContextKey_String(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("unexpected key name %q", UserIDCtxKey.String())
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()
	if len(a) != 36 || a == b {
		t.Errorf("expected distinct UUIDs, got %q and %q", a, b)
	}
	if a[14] != '7' {
		t.Errorf("expected a version 7 UUID, got %q", a)
	}
}
