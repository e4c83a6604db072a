// internal/search/orchestrator.go

// Package search mediates job search between the local cache and the
// remote API. Cache hits are filtered locally and shuffled; only an empty
// filtered cache result triggers a remote call, and freshly fetched jobs
// bypass the local filters entirely (the remote query was already biased
// by query, skills and level).
package search

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	apperrors "quickq/internal/common/errors"
	"quickq/internal/common/logger"
	"quickq/internal/common/metrics"
	"quickq/internal/gateway"
	"quickq/internal/models"
)

// featuredQuery seeds the featured-jobs rail.
const featuredQuery = "Software Engineer Google Apple Microsoft Amazon Meta Netflix"

// Gateway is the remote-search surface the orchestrator consumes.
type Gateway interface {
	SearchJobs(ctx context.Context, req gateway.JobSearchRequest) (*gateway.JobSearchResponse, error)
}

// Cache is the local job store surface the orchestrator consumes.
type Cache interface {
	Search(ctx context.Context, query string) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (models.Job, bool, error)
	Upsert(ctx context.Context, jobs []models.Job) error
}

// Orchestrator answers job searches, cache first.
type Orchestrator struct {
	gateway       Gateway
	cache         Cache
	log           logger.Logger
	searchTimeout time.Duration

	mu           sync.Mutex
	generation   uint64
	cancelActive context.CancelFunc
}

// NewOrchestrator creates an Orchestrator. searchTimeout caps the remote
// call; 0 falls back to the contract's 180 seconds.
func NewOrchestrator(gw Gateway, cache Cache, searchTimeout time.Duration, log logger.Logger) *Orchestrator {
	if searchTimeout <= 0 {
		searchTimeout = 180 * time.Second
	}
	return &Orchestrator{
		gateway:       gw,
		cache:         cache,
		log:           log.WithFields(map[string]interface{}{"component": "search"}),
		searchTimeout: searchTimeout,
	}
}

// Search finds jobs for query under filters. A new Search supersedes any
// still-running one: the previous call's context is cancelled.
func (o *Orchestrator) Search(ctx context.Context, query string, filters models.JobFilters) ([]models.Job, error) {
	ctx, cancel, gen := o.supersede(ctx)
	defer o.release(cancel, gen)

	cached, err := o.cache.Search(ctx, query)
	if err != nil {
		// A broken cache read falls through to the remote path rather
		// than failing the search.
		o.log.WithError(err).Warn("job cache search failed", map[string]interface{}{"query": query})
		cached = nil
	}

	filtered := make([]models.Job, 0, len(cached))
	for _, job := range cached {
		if filters.Matches(job) {
			filtered = append(filtered, job)
		}
	}

	if len(filtered) > 0 {
		metrics.SearchCacheHits.Inc()
		shuffle(filtered)
		return filtered, nil
	}

	metrics.SearchCacheMisses.Inc()
	return o.searchRemote(ctx, query, filters)
}

// FeaturedJobs returns a mix of popular tech jobs from top companies.
func (o *Orchestrator) FeaturedJobs(ctx context.Context) ([]models.Job, error) {
	return o.Search(ctx, featuredQuery, models.JobFilters{})
}

// JobDetail looks a job up in the cache. It never calls the remote API:
// there is no job-by-id endpoint. found is false when the id is unknown.
func (o *Orchestrator) JobDetail(ctx context.Context, jobID string) (models.Job, bool, error) {
	return o.cache.GetByID(ctx, jobID)
}

func (o *Orchestrator) searchRemote(ctx context.Context, query string, filters models.JobFilters) ([]models.Job, error) {
	req := gateway.JobSearchRequest{
		Query: query,
		Limit: gateway.DefaultSearchLimit,
	}
	if len(filters.Skills) > 0 {
		req.TechSkills = filters.Skills
	}
	if len(filters.ExperienceLevels) > 0 {
		req.JobLevel = strings.ToLower(string(filters.ExperienceLevels[0]))
	}

	ctx, cancel := context.WithTimeout(ctx, o.searchTimeout)
	defer cancel()

	resp, err := o.gateway.SearchJobs(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Jobs) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeEmptyResponse, "No jobs received from API")
	}

	jobs := make([]models.Job, 0, len(resp.Jobs))
	for _, dto := range resp.Jobs {
		job, err := parseRemoteJob(dto)
		if err != nil {
			// One bad record drops, the rest survive.
			o.log.WithError(err).Warn("dropping unparseable job record", map[string]interface{}{
				"company": dto.Company,
			})
			continue
		}
		jobs = append(jobs, job)
	}
	if len(jobs) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeEmptyResponse,
			"No valid jobs could be parsed from API response")
	}

	if err := o.cache.Upsert(ctx, jobs); err != nil {
		o.log.WithError(err).Warn("failed to cache fresh jobs", map[string]interface{}{
			"count": len(jobs),
		})
	}

	// Fresh results are returned unfiltered.
	return jobs, nil
}

// supersede cancels any in-flight search and registers this one.
func (o *Orchestrator) supersede(ctx context.Context) (context.Context, context.CancelFunc, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancelActive != nil {
		o.cancelActive()
	}
	ctx, cancel := context.WithCancel(ctx)
	o.generation++
	o.cancelActive = cancel
	return ctx, cancel, o.generation
}

func (o *Orchestrator) release(cancel context.CancelFunc, gen uint64) {
	cancel()
	o.mu.Lock()
	defer o.mu.Unlock()
	// Only clear the slot when a newer search hasn't replaced it.
	if o.generation == gen {
		o.cancelActive = nil
	}
}

// shuffle randomizes order in place so repeated cache-served searches feel
// fresh.
func shuffle(jobs []models.Job) {
	rand.Shuffle(len(jobs), func(i, j int) {
		jobs[i], jobs[j] = jobs[j], jobs[i]
	})
}
