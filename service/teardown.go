package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type Manager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        *sync.WaitGroup
	mu        sync.Mutex
	teardowns []func()
}

var m *Manager
var once sync.Once

// GetTeardownManager returns the process-wide manager whose context is cancelled on SIGINT or SIGTERM.
func GetTeardownManager() *Manager {
	once.Do(func() {
		m = NewManager(context.Background())
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-sig:
				m.cancel()
			case <-m.ctx.Done():
			}
			signal.Stop(sig)
		}()
	})
	return m
}

func NewManager(parent context.Context) *Manager {
	ctx, cancel := context.WithCancel(parent)
	return &Manager{ctx: ctx, cancel: cancel, wg: &sync.WaitGroup{}}
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) WaitGroup() *sync.WaitGroup {
	return m.wg
}

func (m *Manager) TeardownFunc(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardowns = append(m.teardowns, f)
}

func (m *Manager) Cancel() {
	m.cancel()
}

// Wait blocks until the context is cancelled and every tracked goroutine finished, then runs the
// registered teardown functions in reverse registration order.
func (m *Manager) Wait() {
	<-m.ctx.Done()
	m.wg.Wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.teardowns) - 1; i >= 0; i-- {
		m.teardowns[i]()
	}
}
