package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// HealthChecker pings the database periodically and retries with
// backoff when the connection drops.
type HealthChecker struct {
	db            *sql.DB
	logger        *logrus.Logger
	checkInterval time.Duration
	retryDelay    time.Duration
	maxRetries    int
	isHealthy     bool
	lastCheck     time.Time
	lastError     error
	mu            sync.RWMutex
	stopChan      chan struct{}
	running       bool
}

// HealthCheckResult is the reportable snapshot of the checker state.
type HealthCheckResult struct {
	Healthy   bool      `json:"healthy"`
	LastCheck time.Time `json:"last_check"`
	LastError string    `json:"last_error,omitempty"`
}

func NewHealthChecker(db *sql.DB, logger *logrus.Logger) *HealthChecker {
	return &HealthChecker{
		db:            db,
		logger:        logger,
		checkInterval: 30 * time.Second,
		retryDelay:    5 * time.Second,
		maxRetries:    3,
		isHealthy:     false,
		stopChan:      make(chan struct{}),
	}
}

func (hc *HealthChecker) SetCheckInterval(interval time.Duration) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checkInterval = interval
}

func (hc *HealthChecker) SetRetryConfig(delay time.Duration, maxRetries int) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.retryDelay = delay
	hc.maxRetries = maxRetries
}

// Start runs the periodic check loop until ctx is done or Stop is
// called.
func (hc *HealthChecker) Start(ctx context.Context) {
	hc.mu.Lock()
	if hc.running {
		hc.mu.Unlock()
		return
	}
	hc.running = true
	hc.mu.Unlock()

	hc.logger.Info("Starting database health checker")

	go hc.checkAndUpdate()

	ticker := time.NewTicker(hc.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			hc.markStopped()
			return
		case <-hc.stopChan:
			hc.markStopped()
			return
		case <-ticker.C:
			go hc.checkAndUpdate()
		}
	}
}

func (hc *HealthChecker) markStopped() {
	hc.mu.Lock()
	hc.running = false
	hc.mu.Unlock()
	hc.logger.Info("Database health checker stopped")
}

// Stop ends the check loop.
func (hc *HealthChecker) Stop() {
	hc.mu.Lock()
	if !hc.running {
		hc.mu.Unlock()
		return
	}
	close(hc.stopChan)
	hc.mu.Unlock()
}

// Check runs one ping with a 5 second deadline and records the result.
func (hc *HealthChecker) Check(ctx context.Context) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := hc.db.PingContext(ctx)
	responseTime := time.Since(start)

	hc.mu.Lock()
	hc.lastCheck = time.Now()
	if err != nil {
		hc.lastError = err
		hc.isHealthy = false
		hc.mu.Unlock()

		hc.logger.WithFields(logrus.Fields{
			"error":         err.Error(),
			"response_time": responseTime,
		}).Warn("Database health check failed")
		return err
	}

	if !hc.isHealthy {
		hc.logger.WithField("response_time", responseTime).Info("Database connection restored")
	}
	hc.lastError = nil
	hc.isHealthy = true
	hc.mu.Unlock()

	return nil
}

func (hc *HealthChecker) checkAndUpdate() {
	ctx := context.Background()
	if err := hc.Check(ctx); err != nil {
		hc.retryWithBackoff(ctx)
	}
}

func (hc *HealthChecker) retryWithBackoff(ctx context.Context) {
	for i := 0; i < hc.maxRetries; i++ {
		hc.logger.WithField("attempt", i+1).Info("Retrying database connection")

		select {
		case <-time.After(hc.retryDelay * time.Duration(i+1)):
			if err := hc.Check(ctx); err == nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}

	hc.logger.Error("Database connection failed after all retries")
}

func (hc *HealthChecker) IsHealthy() bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.isHealthy
}

func (hc *HealthChecker) GetHealthResult() HealthCheckResult {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	result := HealthCheckResult{
		Healthy:   hc.isHealthy,
		LastCheck: hc.lastCheck,
	}
	if hc.lastError != nil {
		result.LastError = hc.lastError.Error()
	}
	return result
}
