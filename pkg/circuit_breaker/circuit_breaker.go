package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed Status = iota + 1
	Open
	HalfOpen
)

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	Reset()
}

type circuitBreaker struct {
	mu sync.Mutex

	state Status
	// consecutive failures observed while CLOSED
	failures int
	// failures needed to trip OPEN
	threshold int
	// how long to stay OPEN before probing
	cooldown time.Duration

	openedAt time.Time
}

func New(threshold int, cooldown time.Duration) CircuitBreaker {
	return &circuitBreaker{
		state:     Closed,
		threshold: threshold,
		cooldown:  cooldown,
	}
}

// Call runs service unless the breaker is OPEN. After the cooldown a single
// probe call is let through; its outcome decides between CLOSED and OPEN.
func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if time.Since(cb.openedAt) < cb.cooldown {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case HalfOpen:
		if err != nil {
			cb.state = Open
			cb.openedAt = time.Now()
		} else {
			cb.reset()
		}
	case Closed:
		if err != nil {
			cb.failures++
			if cb.failures >= cb.threshold {
				cb.state = Open
				cb.openedAt = time.Now()
			}
		} else {
			cb.failures = 0
		}
	}
	return err
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	cb.state = Closed
	cb.failures = 0
}
