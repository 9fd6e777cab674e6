package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"syscall"
	"time"

	"github.com/yourusername/telegram-deals-bot/internal/domain/constants"
)

type pollErrorKind int

const (
	pollErrReadTimeout pollErrorKind = iota
	pollErrConnection
	pollErrOther
)

// classifyPollError buckets a polling failure for the retry policy
func classifyPollError(err error) pollErrorKind {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return pollErrReadTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return pollErrConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return pollErrConnection
	}
	return pollErrOther
}

// Supervisor owns the reconnection policy of the polling loop so the
// handlers themselves never know about it. Read timeouts and connection
// drops get fixed delays; anything else backs off progressively and is
// counted. After MaxPollRetries unclassified failures the
// supervisor gives up and the process is expected to exit.
type Supervisor struct {
	handler    *BotHandler
	maxRetries int
}

// NewSupervisor wraps a bot handler with the retry policy
func NewSupervisor(handler *BotHandler) *Supervisor {
	return &Supervisor{
		handler:    handler,
		maxRetries: constants.MaxPollRetries,
	}
}

// Run drives the polling loop until clean shutdown or retry exhaustion
func (s *Supervisor) Run(ctx context.Context) error {
	retryCount := 0

	for {
		err := s.handler.Start(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		var wait time.Duration
		switch classifyPollError(err) {
		case pollErrReadTimeout:
			log.Printf("polling timeout, reconnecting: %v", err)
			wait = constants.ReadTimeoutRetryDelay
		case pollErrConnection:
			log.Printf("connection error, waiting before retry: %v", err)
			wait = constants.ConnectionErrorRetryDelay
		default:
			retryCount++
			if retryCount >= s.maxRetries {
				return fmt.Errorf("polling failed %d times, giving up: %w", retryCount, err)
			}
			wait = retryBackoff(retryCount)
			log.Printf("polling stopped: %v, retrying in %s (attempt %d/%d)", err, wait, retryCount, s.maxRetries)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// retryBackoff is the progressive delay for unclassified errors, capped
func retryBackoff(attempt int) time.Duration {
	wait := time.Duration(attempt) * constants.RetryBackoffStep
	if wait > constants.MaxRetryBackoff {
		wait = constants.MaxRetryBackoff
	}
	return wait
}
