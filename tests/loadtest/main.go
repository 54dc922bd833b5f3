package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:8090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numUsers     = 100
	numProblems  = 20
	listID       = "loadtest-sheet"
	listProblems = 30
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// fixture holds the ids created while seeding.
type fixture struct {
	users    []string
	problems map[string][]string
}

func main() {
	fmt.Println("=== DSATrack Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Users: %d | Problems/user: %d | List problems: %d\n\n", numUsers, numProblems, listProblems)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding users, problems and a curated list ---")
	fx, err := seed()
	if err != nil {
		fmt.Printf("FAILED: %s\n", err)
		return
	}
	fmt.Printf("Seeded %d users\n", len(fx.users))

	fmt.Println("\n--- Phase 2: Mixed load (60% writes, 40% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.35:
			return doRevise(rng, fx)
		case r < 0.60:
			return doListRevise(rng, fx)
		case r < 0.85:
			return doGetAnalytics(rng, fx)
		default:
			return doListProblems(rng, fx)
		}
	})

	fmt.Println("\n--- Phase 3: Read-heavy load (10% writes, 90% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doRevise(rng, fx)
		case r < 0.70:
			return doGetAnalytics(rng, fx)
		default:
			return doListProblems(rng, fx)
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func send(method, path, userID string, body any) (*http.Response, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	start := time.Now()
	resp, err := httpClient.Do(req)
	return resp, time.Since(start), err
}

func decodeID(resp *http.Response) (string, error) {
	defer resp.Body.Close()
	var doc struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", err
	}
	return doc.ID, nil
}

func seed() (*fixture, error) {
	sections := []map[string]any{{"title": "Load", "problems": []map[string]string{}}}
	problems := make([]map[string]string, 0, listProblems)
	for i := 0; i < listProblems; i++ {
		problems = append(problems, map[string]string{"id": fmt.Sprintf("lp-%d", i), "title": fmt.Sprintf("Sheet problem %d", i)})
	}
	sections[0]["problems"] = problems
	resp, _, err := send(http.MethodPost, "/lists", "", map[string]any{"id": listID, "title": "Load test sheet", "sections": sections})
	if err != nil {
		return nil, err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	fx := &fixture{problems: make(map[string][]string)}
	for u := 0; u < numUsers; u++ {
		resp, _, err := send(http.MethodPost, "/users", "", map[string]string{"name": fmt.Sprintf("user-%d", u)})
		if err != nil {
			return nil, err
		}
		userID, err := decodeID(resp)
		if err != nil {
			return nil, err
		}
		fx.users = append(fx.users, userID)

		for p := 0; p < numProblems; p++ {
			resp, _, err := send(http.MethodPost, "/problems", userID, map[string]any{
				"title":      fmt.Sprintf("Sliding window problem %d", p),
				"difficulty": "medium",
				"isSolved":   p%2 == 0,
			})
			if err != nil {
				return nil, err
			}
			problemID, err := decodeID(resp)
			if err != nil {
				return nil, err
			}
			fx.problems[userID] = append(fx.problems[userID], problemID)
		}
	}
	return fx, nil
}

func finish(endpoint string, resp *http.Response, lat time.Duration, err error) result {
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doRevise(rng *rand.Rand, fx *fixture) result {
	userID := fx.users[rng.Intn(len(fx.users))]
	problemID := fx.problems[userID][rng.Intn(numProblems)]
	resp, lat, err := send(http.MethodPost, "/problems/"+problemID+"/revise", userID, nil)
	return finish("POST /problems/revise", resp, lat, err)
}

func doListRevise(rng *rand.Rand, fx *fixture) result {
	userID := fx.users[rng.Intn(len(fx.users))]
	path := fmt.Sprintf("/lists/%s/problems/lp-%d/revise", listID, rng.Intn(listProblems))
	resp, lat, err := send(http.MethodPost, path, userID, nil)
	return finish("POST /lists/revise", resp, lat, err)
}

func doGetAnalytics(rng *rand.Rand, fx *fixture) result {
	userID := fx.users[rng.Intn(len(fx.users))]
	resp, lat, err := send(http.MethodGet, "/analytics", userID, nil)
	return finish("GET /analytics", resp, lat, err)
}

func doListProblems(rng *rand.Rand, fx *fixture) result {
	userID := fx.users[rng.Intn(len(fx.users))]
	resp, lat, err := send(http.MethodGet, "/problems?solved=true", userID, nil)
	return finish("GET /problems", resp, lat, err)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
