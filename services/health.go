// File: services/health.go
package services

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/FADHEEL1234/Online-Medical/apiclient"
	"github.com/FADHEEL1234/Online-Medical/utils"
)

// BackendStatus is the latest result of probing the backend's health
// endpoint.
type BackendStatus struct {
	Up        bool      `json:"up"`
	CheckedAt time.Time `json:"checkedAt"`
	Err       string    `json:"error,omitempty"`
}

// BackendMonitor probes GET /health/ on a schedule and keeps the latest
// snapshot in memory. Views read it to disable forms and show the
// persistent "backend unreachable" banner.
type BackendMonitor struct {
	api  *apiclient.Client
	mu   sync.RWMutex
	last BackendStatus
	cron *cron.Cron
}

func NewBackendMonitor(api *apiclient.Client) *BackendMonitor {
	return &BackendMonitor{api: api}
}

// Start runs one immediate probe and then schedules recurring ones with the
// given cron spec.
func (m *BackendMonitor) Start(spec string) error {
	m.Probe(context.Background())

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		m.Probe(context.Background())
	}); err != nil {
		return err
	}
	c.Start()
	m.cron = c
	return nil
}

// Stop halts the recurring probes.
func (m *BackendMonitor) Stop() {
	if m.cron != nil {
		m.cron.Stop()
	}
}

// Probe performs a single health check and records the result.
func (m *BackendMonitor) Probe(ctx context.Context) BackendStatus {
	err := m.api.Do(ctx, "", http.MethodGet, "/health/", nil, nil)
	status := BackendStatus{Up: err == nil, CheckedAt: time.Now()}
	if err != nil {
		status.Err = "Unable to reach backend. Please make sure the server is running."
		utils.GetLogger().Warn("backend health probe failed", zap.Error(err))
	}

	m.mu.Lock()
	m.last = status
	m.mu.Unlock()
	return status
}

// Status returns the latest stored snapshot.
func (m *BackendMonitor) Status() BackendStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}
