package diag

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	cb "github.com/bookmart/admin-service/pkg/circuit_breaker"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

type Check struct {
	Name        string
	URL         string
	Description string
}

type Result struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Message     string `json:"message"`
}

// DefaultChecks mirrors the probe list of the admin frontend.
func DefaultChecks(catalogURL, recsURL string) []Check {
	return []Check{
		{
			Name:        "E-commerce API Health",
			URL:         catalogURL,
			Description: "Checking if the main backend is running",
		},
		{
			Name:        "Books Endpoint",
			URL:         catalogURL + "/books",
			Description: "Checking if books can be fetched",
		},
		{
			Name:        "Categories Endpoint",
			URL:         catalogURL + "/categories",
			Description: "Checking if categories can be fetched",
		},
		{
			Name:        "Recommendations API",
			URL:         recsURL,
			Description: "Checking if recommendation backend is running",
		},
	}
}

type Prober struct {
	client   *http.Client
	checks   []Check
	breakers []cb.CircuitBreaker
	log      *zap.Logger
}

func NewProber(checks []Check, log *zap.Logger) *Prober {
	breakers := make([]cb.CircuitBreaker, len(checks))
	for i := range breakers {
		breakers[i] = cb.New(3, 30*time.Second)
	}
	return &Prober{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		checks:   checks,
		breakers: breakers,
		log:      log.Named("diag"),
	}
}

// Run probes every check sequentially and never fails as a whole; each
// target reports its own pass/fail state.
func (p *Prober) Run(ctx context.Context) []Result {
	results := make([]Result, 0, len(p.checks))
	for i, check := range p.checks {
		res := Result{
			Name:        check.Name,
			URL:         check.URL,
			Description: check.Description,
			Status:      StatusOK,
			Message:     "Connected successfully",
		}
		if err := p.breakers[i].Call(func() error {
			return p.probe(ctx, check.URL)
		}); err != nil {
			res.Status = StatusError
			res.Message = err.Error()
			p.log.Debug("probe failed", zap.String("url", check.URL), zap.Error(err))
		}
		results = append(results, res)
	}
	return results
}

func (p *Prober) probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}
