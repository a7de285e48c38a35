// README: Bench cases for the itinerary API; scenario checks, Redis connectivity and load.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

// scenario posts body and expects every day to list exactly wantActivities.
type scenario struct {
	name           string
	body           map[string]any
	wantDays       int
	wantActivities []string
}

var scenarios = []scenario{
	{
		name: "Scenario A: landmarks only",
		body: map[string]any{
			"destination": "Paris", "duration_days": 2, "budget": "low", "purpose": "Leisure",
			"preferences": []string{"famous_landmarks"}, "dietary_preference": "none",
		},
		wantDays:       2,
		wantActivities: []string{"Visit a top landmark in Paris."},
	},
	{
		name: "Scenario B: moderate budget adds hidden gems",
		body: map[string]any{
			"destination": "Paris", "duration_days": 3, "budget": "moderate", "purpose": "Leisure",
			"preferences": []string{},
		},
		wantDays:       3,
		wantActivities: []string{"Explore a hidden gem or less-known spot in Paris."},
	},
	{
		name: "Scenario C: adventure adds scenic walks",
		body: map[string]any{
			"destination": "Paris", "duration_days": 1, "budget": "low", "purpose": "Adventure trip",
			"preferences": []string{},
		},
		wantDays:       1,
		wantActivities: []string{"Take a scenic walk around a famous park or area in Paris."},
	},
	{
		name: "Scenario D: vegan food",
		body: map[string]any{
			"destination": "Paris", "duration_days": 1, "budget": "low", "purpose": "Leisure",
			"preferences": []string{"food_experiences"}, "dietary_preference": "vegan",
		},
		wantDays:       1,
		wantActivities: []string{"Enjoy a meal at a local Vegan-friendly restaurant."},
	},
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	cases := []TestCase{
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "HTTP: health",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/health", nil)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				return Result{Status: "PASS", Latency: latency}
			},
		},
		{
			Name: "HTTP: options catalogue",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.do(ctx, http.MethodGet, base+"/api/options", nil)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK || !bytes.Contains(body, []byte(`"famous_landmarks"`)) {
					return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				return Result{Status: "PASS", Latency: latency}
			},
		},
		{
			Name: "HTTP: invalid duration rejected",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodPost, base+"/api/itineraries", map[string]any{"duration_days": 31})
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusBadRequest {
					return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				return Result{Status: "PASS", Latency: latency}
			},
		},
	}

	for _, sc := range scenarios {
		sc := sc
		cases = append(cases, TestCase{
			Name: "HTTP: " + sc.name,
			Run: func(ctx context.Context, r *Runner) Result {
				return r.checkScenario(ctx, base+"/api/itineraries", sc)
			},
		})
	}

	cases = append(cases, TestCase{
		Name: "Perf: itinerary generation load",
		Run: func(ctx context.Context, r *Runner) Result {
			return perfLoad(ctx, r, base+"/api/itineraries", scenarios[0].body)
		},
	})
	return cases
}

func (r *Runner) checkScenario(ctx context.Context, url string, sc scenario) Result {
	status, body, latency, err := r.do(ctx, http.MethodPost, url, sc.body)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	if status != http.StatusOK {
		return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
	}

	var resp struct {
		Itinerary struct {
			Days []struct {
				Activities []string `json:"activities"`
			} `json:"days"`
		} `json:"itinerary"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{Status: "FAIL", Latency: latency, Note: err.Error()}
	}
	if len(resp.Itinerary.Days) != sc.wantDays {
		return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("days=%d want %d", len(resp.Itinerary.Days), sc.wantDays)}
	}
	for i, d := range resp.Itinerary.Days {
		if !reflect.DeepEqual(d.Activities, sc.wantActivities) {
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("day %d activities=%q", i+1, d.Activities)}
		}
	}
	return Result{Status: "PASS", Latency: latency}
}

func (r *Runner) do(ctx context.Context, method, url string, payload any) (int, []byte, time.Duration, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, 0, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.httpc.Do(req)
	latency := time.Since(start)
	if err != nil {
		return 0, nil, latency, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, latency, err
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount, limited int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				if resp.StatusCode == http.StatusTooManyRequests {
					limited++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d rate_limited=%d", rps, errCount, limited)}
}
