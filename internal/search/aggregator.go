package search

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"jobquest-utils/internal/logging"
	"jobquest-utils/internal/search/providers"
	"jobquest-utils/pkg/models"
)

// Aggregator fans a search out to every provider client, merges the
// results, and applies filtering and ordering. Provider failures
// degrade to empty lists so one upstream outage never hides results
// from the others.
type Aggregator struct {
	baseLocation string
	clients      []providers.Client
}

// NewAggregator creates an aggregator over the given provider clients.
// Clients are queried concurrently but results keep the order clients
// are listed in, so output is deterministic for a fixed input.
func NewAggregator(baseLocation string, clients ...providers.Client) *Aggregator {
	if baseLocation == "" {
		baseLocation = "Remote"
	}
	return &Aggregator{
		baseLocation: baseLocation,
		clients:      clients,
	}
}

// Search runs the full aggregation pipeline: query augmentation,
// concurrent provider dispatch, merge, optional filtering, and sort.
// It never returns an error; pipeline-level panics are converted into
// a status=error result and provider failures into empty lists.
func (a *Aggregator) Search(ctx context.Context, query string, params *models.SearchParams) (result *models.SearchResult) {
	augmented := a.augmentQuery(query, params)
	location := a.resolveLocation(params)

	metadata := models.SearchMetadata{
		Query:     augmented,
		Location:  location,
		Sources:   a.sourceNames(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	defer func() {
		if r := recover(); r != nil {
			logging.Error("search pipeline panic", map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
				"query": augmented,
			})
			result = &models.SearchResult{
				Status:       models.StatusError,
				Error:        fmt.Sprintf("search failed: %v", r),
				Jobs:         []models.JobRecord{},
				SearchParams: params,
				Metadata:     metadata,
			}
		}
	}()

	jobs := a.dispatch(ctx, augmented, location)

	if params != nil {
		jobs = a.filter(jobs, params)
	}

	sortByPostedDate(jobs)

	return &models.SearchResult{
		Status:       models.StatusSuccess,
		TotalJobs:    len(jobs),
		Jobs:         jobs,
		SearchParams: params,
		Metadata:     metadata,
	}
}

// augmentQuery folds the extracted parameters into the raw query as a
// plain textual concatenation, in a fixed order.
func (a *Aggregator) augmentQuery(query string, params *models.SearchParams) string {
	if params == nil {
		return strings.TrimSpace(query)
	}

	var parts []string
	if params.Title != "" {
		parts = append(parts, params.Title)
	}
	if query != "" {
		parts = append(parts, query)
	}
	if params.Type != "" {
		parts = append(parts, params.Type)
	}
	if params.Experience != "" {
		parts = append(parts, params.Experience)
	}
	if params.Salary != "" {
		parts = append(parts, params.Salary)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// resolveLocation picks the search location from params, falling back
// to the configured base location.
func (a *Aggregator) resolveLocation(params *models.SearchParams) string {
	if params != nil && params.Location != "" {
		return params.Location
	}
	return a.baseLocation
}

func (a *Aggregator) sourceNames() []string {
	names := make([]string, 0, len(a.clients))
	for _, client := range a.clients {
		names = append(names, client.Name())
	}
	return names
}

// dispatch queries all clients concurrently and concatenates their
// results in client order. A client error is logged and contributes
// an empty list.
func (a *Aggregator) dispatch(ctx context.Context, query, location string) []models.JobRecord {
	results := make([][]models.JobRecord, len(a.clients))

	var wg sync.WaitGroup
	for i, client := range a.clients {
		wg.Add(1)
		go func(i int, client providers.Client) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logging.Error("provider panic", map[string]interface{}{
						"provider": client.Name(),
						"panic":    fmt.Sprintf("%v", r),
					})
				}
			}()

			jobs, err := client.Search(ctx, query, location)
			if err != nil {
				logging.Warn("provider search failed", map[string]interface{}{
					"provider": client.Name(),
					"error":    err.Error(),
				})
				return
			}
			results[i] = jobs
		}(i, client)
	}
	wg.Wait()

	var merged []models.JobRecord
	for _, jobs := range results {
		merged = append(merged, jobs...)
	}
	if merged == nil {
		merged = []models.JobRecord{}
	}
	return merged
}

// filter keeps jobs whose salary range overlaps the target salary and
// whose type contains the target type. Both checks are skipped when
// the corresponding parameter is absent.
func (a *Aggregator) filter(jobs []models.JobRecord, params *models.SearchParams) []models.JobRecord {
	filtered := make([]models.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		if params.Salary != "" && !matchesSalary(job.Salary, params.Salary) {
			continue
		}
		if params.Type != "" && !matchesType(job.JobType, params.Type) {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered
}

// salaryNumberPattern matches an integer with optional comma grouping
// and an optional thousands suffix, e.g. "50,000" or "90k".
var salaryNumberPattern = regexp.MustCompile(`(?i)(\d[\d,]*)\s*(k?)`)

// parseSalaryNumbers extracts every numeric amount from a free-form
// salary string. Comma groups are merged and a trailing "k" multiplies
// by one thousand, so "$50,000 - $60k" yields [50000, 60000].
func parseSalaryNumbers(s string) []int {
	matches := salaryNumberPattern.FindAllStringSubmatch(s, -1)

	var numbers []int
	for _, m := range matches {
		digits := strings.ReplaceAll(m[1], ",", "")
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		if m[2] != "" {
			n *= 1000
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// matchesSalary reports whether the job's salary range overlaps the
// target range. A side with no parseable numbers always matches; an
// unparseable salary must never exclude a job.
func matchesSalary(jobSalary, targetSalary string) bool {
	jobNumbers := parseSalaryNumbers(jobSalary)
	targetNumbers := parseSalaryNumbers(targetSalary)

	if len(jobNumbers) == 0 || len(targetNumbers) == 0 {
		return true
	}

	jobMin, jobMax := minMax(jobNumbers)
	targetMin, targetMax := minMax(targetNumbers)

	return !(jobMax < targetMin || jobMin > targetMax)
}

// matchesType reports whether the job's type contains the target type,
// case-insensitively.
func matchesType(jobType, targetType string) bool {
	return strings.Contains(strings.ToLower(jobType), strings.ToLower(targetType))
}

func minMax(numbers []int) (int, int) {
	min, max := numbers[0], numbers[0]
	for _, n := range numbers[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return min, max
}

// postedDateLayouts are tried in order when parsing a posted date.
var postedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parsePostedDate parses a provider posted date. Empty or unparseable
// dates come back as the zero time so they sort after every dated job.
func parsePostedDate(s string) time.Time {
	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// sortByPostedDate orders jobs newest first, keeping the incoming
// order among equal or undated entries.
func sortByPostedDate(jobs []models.JobRecord) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return parsePostedDate(jobs[i].PostedDate).After(parsePostedDate(jobs[j].PostedDate))
	})
}
