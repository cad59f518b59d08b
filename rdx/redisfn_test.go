package rdx

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestConnect(t *testing.T) {
	srv := miniredis.RunT(t)

	conn, err := Connect(context.Background(), srv.Addr(), "", 0)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer conn.Close()

	if err := conn.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatal(err)
	}
	if got, _ := srv.Get("k"); got != "v" {
		t.Errorf("value = %q", got)
	}
}

func TestConnectFailsWhenServerIsDown(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	if _, err := Connect(context.Background(), addr, "", 0); err == nil {
		t.Fatal("expected error")
	}
}
