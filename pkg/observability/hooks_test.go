package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopCodecHooks{}
	c.OnOperationStart(ctx, OpNth, 5)
	c.OnOperationComplete(ctx, OpNth, 5, time.Millisecond, nil)

	cfg := NoopConfigHooks{}
	cfg.OnConfigLoad(ctx, "config.toml", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Codec().(NoopCodecHooks); !ok {
		t.Error("Codec() should return NoopCodecHooks by default")
	}
	if _, ok := Config().(NoopConfigHooks); !ok {
		t.Error("Config() should return NoopConfigHooks by default")
	}

	customCodec := &testCodecHooks{}
	SetCodecHooks(customCodec)
	if Codec() != customCodec {
		t.Error("SetCodecHooks should set custom hooks")
	}

	customConfig := &testConfigHooks{}
	SetConfigHooks(customConfig)
	if Config() != customConfig {
		t.Error("SetConfigHooks should set custom hooks")
	}

	Reset()
	if _, ok := Codec().(NoopCodecHooks); !ok {
		t.Error("Reset() should restore NoopCodecHooks")
	}
	if _, ok := Config().(NoopConfigHooks); !ok {
		t.Error("Reset() should restore NoopConfigHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testCodecHooks{}
	SetCodecHooks(custom)
	SetCodecHooks(nil)

	if Codec() != custom {
		t.Error("SetCodecHooks(nil) should not replace existing hooks")
	}
}

func TestTrack(t *testing.T) {
	Reset()
	defer Reset()

	h := &testCodecHooks{}
	SetCodecHooks(h)

	wantErr := errors.New("boom")
	done := Track(context.Background(), OpIndex, 7)
	done(wantErr)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.starts != 1 || h.completes != 1 {
		t.Fatalf("starts=%d completes=%d, want 1 and 1", h.starts, h.completes)
	}
	if h.lastOp != OpIndex || h.lastN != 7 {
		t.Errorf("last event = %s/%d, want %s/7", h.lastOp, h.lastN, OpIndex)
	}
	if !errors.Is(h.lastErr, wantErr) {
		t.Errorf("last error = %v, want %v", h.lastErr, wantErr)
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetCodecHooks(&testCodecHooks{})
		}()
		go func() {
			defer wg.Done()
			Track(context.Background(), OpNth, 3)(nil)
		}()
	}
	wg.Wait()
}

type testCodecHooks struct {
	mu        sync.Mutex
	starts    int
	completes int
	lastOp    string
	lastN     int
	lastErr   error
}

func (h *testCodecHooks) OnOperationStart(_ context.Context, op string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
	h.lastOp, h.lastN = op, n
}

func (h *testCodecHooks) OnOperationComplete(_ context.Context, op string, n int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completes++
	h.lastOp, h.lastN, h.lastErr = op, n, err
}

type testConfigHooks struct{}

func (testConfigHooks) OnConfigLoad(context.Context, string, error) {}
