// Command parity_compare replays report requests against the legacy service
// and this API and reports status or body differences per endpoint.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type target struct {
	Name       string `json:"name"`
	LegacyPath string `json:"legacy_path"`
	Path       string `json:"path"`
	Critical   bool   `json:"critical"`
}

type targetFile struct {
	Targets []target `json:"targets"`
	// Ignore lists top-level keys dropped from both bodies before comparing.
	Ignore []string `json:"ignore"`
}

type result struct {
	Target        target
	LegacyStatus  int
	GoStatus      int
	BodyMatch     bool
	Err           error
	GoLatency     time.Duration
	LegacyLatency time.Duration
}

func (r result) diff() bool {
	return r.Err != nil || r.LegacyStatus != r.GoStatus || !r.BodyMatch
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
		parallel    int
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:3000", "Legacy service base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "parity_compare", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "Per request timeout")
	flag.IntVar(&parallel, "parallel", 4, "Endpoints compared at once")
	flag.Parse()

	logr, _ := zap.NewDevelopment()
	defer logr.Sync() //nolint:errcheck

	plan, err := loadTargets(targetsPath)
	if err != nil {
		logr.Fatal("failed to load targets", zap.String("path", targetsPath), zap.Error(err))
	}

	client := &http.Client{Timeout: timeout}
	results := make([]result, len(plan.Targets))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(parallel)
	for i, t := range plan.Targets {
		i, t := i, t
		g.Go(func() error {
			results[i] = compare(ctx, client, goBase, legacyBase, t, plan.Ignore)
			return nil
		})
	}
	_ = g.Wait()

	breaking, optional := 0, 0
	for _, res := range results {
		if !res.diff() {
			continue
		}
		if res.Target.Critical {
			breaking++
		} else {
			optional++
		}
	}
	printReport(results)
	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) (*targetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan targetFile
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	if len(plan.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return &plan, nil
}

func compare(ctx context.Context, client *http.Client, goBase, legacyBase string, t target, ignore []string) result {
	res := result{Target: t}
	legacyPath := t.LegacyPath
	if legacyPath == "" {
		legacyPath = t.Path
	}

	goStatus, goBody, goDur, err := fetch(ctx, client, goBase, t.Path)
	if err != nil {
		res.Err = fmt.Errorf("go request: %w", err)
		return res
	}
	legacyStatus, legacyBody, legacyDur, err := fetch(ctx, client, legacyBase, legacyPath)
	if err != nil {
		res.Err = fmt.Errorf("legacy request: %w", err)
		return res
	}

	res.GoStatus, res.LegacyStatus = goStatus, legacyStatus
	res.GoLatency, res.LegacyLatency = goDur, legacyDur
	res.BodyMatch = sameJSON(goBody, legacyBody, ignore)
	return res
}

func fetch(ctx context.Context, client *http.Client, base, path string) (int, []byte, time.Duration, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// sameJSON compares two bodies after dropping ignored keys and treating
// integral floats as integers.
func sameJSON(a, b []byte, ignore []string) bool {
	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return strings.TrimSpace(string(a)) == strings.TrimSpace(string(b))
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	return reflect.DeepEqual(normalize(aj, ignore), normalize(bj, ignore))
}

func normalize(v interface{}, ignore []string) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for _, key := range ignore {
			delete(val, key)
		}
		for k, inner := range val {
			val[k] = normalize(inner, nil)
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = normalize(inner, nil)
		}
		return val
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
	}
	return v
}

func printReport(results []result) {
	fmt.Println("Parity Report")
	fmt.Println("=============")
	for _, res := range results {
		status := "OK"
		switch {
		case res.Err != nil:
			status = "ERROR"
		case res.diff():
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Target.Name, res.Target.Path)
		if res.Err != nil {
			fmt.Printf("  Error: %v\n", res.Err)
			continue
		}
		fmt.Printf("  Go: %d (%s) | Legacy: %d (%s)\n", res.GoStatus, res.GoLatency, res.LegacyStatus, res.LegacyLatency)
		fmt.Printf("  Body match: %t | Critical: %t\n", res.BodyMatch, res.Target.Critical)
	}
}
