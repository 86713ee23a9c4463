package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/treinoapp/internal/telemetry/tracing"
)

const (
	planCacheSize = 4 * 1024 * 1024
	// remote plans are refetched after this many seconds
	planCacheExpire = 10 * 60
	maxPlanBytes    = 2 * 1024 * 1024
)

type Params struct {
	// Dir and BaseURL are alternatives; Dir wins when both are set.
	Dir     string
	BaseURL string
	// Users maps a user id to its plan file name.
	Users      map[string]string
	HTTPClient *http.Client
}

// Catalog serves the static workout plans.
type Catalog struct {
	dir        string
	baseURL    string
	users      map[string]string
	httpClient *http.Client
	cache      *freecache.Cache
}

func New(params Params) (*Catalog, error) {
	if params.Dir == "" && params.BaseURL == "" {
		return nil, fmt.Errorf("catalog needs a directory or a base url")
	}
	if len(params.Users) == 0 {
		return nil, fmt.Errorf("catalog has no users")
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Catalog{
		dir:        params.Dir,
		baseURL:    strings.TrimSuffix(params.BaseURL, "/"),
		users:      params.Users,
		httpClient: httpClient,
		cache:      freecache.NewCache(planCacheSize),
	}, nil
}

// Users returns the configured user ids, sorted.
func (c *Catalog) Users() []string {
	users := make([]string, 0, len(c.users))
	for u := range c.users {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}

func (c *Catalog) Plan(ctx context.Context, userID string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.plan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	file, ok := c.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	if cached, err := c.cache.Get([]byte(file)); err == nil {
		if plan, err := ParsePlan(cached); err == nil {
			return plan, nil
		}
	}

	raw, err := c.read(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("read plan of %s: %w", userID, err)
	}

	plan, err := ParsePlan(raw)
	if err != nil {
		return nil, fmt.Errorf("plan of %s: %w", userID, err)
	}

	if err := c.cache.Set([]byte(file), raw, planCacheExpire); err != nil {
		log.Warnf("catalog, cache plan %s: %s", file, err)
	}
	return plan, nil
}

func (c *Catalog) Workout(ctx context.Context, userID, workoutID string) (Workout, error) {
	plan, err := c.Plan(ctx, userID)
	if err != nil {
		return Workout{}, err
	}
	return plan.Workout(workoutID)
}

// Reload drops cached plans.
func (c *Catalog) Reload() {
	c.cache.Clear()
}

// Check loads every user's plan once.
func (c *Catalog) Check(ctx context.Context) error {
	for _, u := range c.Users() {
		if _, err := c.Plan(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) read(ctx context.Context, file string) ([]byte, error) {
	if c.dir != "" {
		return os.ReadFile(filepath.Join(c.dir, filepath.Base(file)))
	}

	url := c.baseURL + "/" + file
	log.Debugf("catalog, fetching plan: %s", url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxPlanBytes))
}
