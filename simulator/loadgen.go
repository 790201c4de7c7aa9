package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"
)

// Posts randomized but physically plausible pumping systems against a running
// instance. Used for smoke tests and rough load probing.

const requestTimeout = 10 * time.Second

var materials = []string{"pvc", "aco_novo", "aco_comercial", "ferro_fundido", "ferro_galvanizado", "cimento_amianto"}

func main() {
	addr := flag.String("addr", "http://localhost:12581", "base url of the service")
	count := flag.Int("n", 100, "number of requests, 0 keeps going")
	interval := flag.Duration("interval", 500*time.Millisecond, "pause between requests")
	flag.Parse()

	client := &http.Client{Timeout: requestTimeout}
	url := *addr + "/v1/systems/calculate"

	sent, failed := 0, 0
	for i := 0; *count == 0 || i < *count; i++ {
		payload := randomSystem()
		body, err := json.Marshal(payload)
		if err != nil {
			log.Fatal("encode payload:", err)
		}

		resp, err := client.Post(url, "application/json", bytes.NewReader(body))
		if err != nil {
			failed++
			log.Println("request failed:", err)
			time.Sleep(*interval)
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		sent++
		if resp.StatusCode != http.StatusOK {
			failed++
			log.Printf("got %d for flow %.1f m³/h", resp.StatusCode, payload["flowRate"])
		} else if sent%25 == 0 {
			log.Printf("%d requests sent, %d failed", sent, failed)
		}
		time.Sleep(*interval)
	}

	fmt.Printf("done: %d sent, %d failed\n", sent, failed)
}

// randomSystem builds a plausible transfer duty: a short suction line, tens
// of meters of discharge line, water between 10 and 80 °C.
func randomSystem() map[string]any {
	jitter := func(base float64) float64 {
		return base + (rand.Float64()-0.5)*base*0.05 // ±5% swing
	}

	material := materials[rand.Intn(len(materials))]
	return map[string]any{
		"projectName":  fmt.Sprintf("loadgen-%03d", rand.Intn(1000)),
		"flowRate":     jitter(20),
		"flowUnit":     "m3/h",
		"temperature":  10 + rand.Float64()*70,
		"requiredNpsh": jitter(3),
		"suction": map[string]any{
			"diameter":        jitter(0.1),
			"length":          jitter(6),
			"material":        material,
			"staticElevation": -1 + rand.Float64()*4,
			"fittings": []map[string]any{
				{"type": "foot-valve", "k": jitter(1.75)},
				{"type": "elbow-90", "k": jitter(0.9)},
			},
		},
		"discharge": map[string]any{
			"diameter":        jitter(0.08),
			"length":          jitter(60),
			"material":        material,
			"staticElevation": 5 + rand.Float64()*20,
			"fittings": []map[string]any{
				{"type": "elbow-90", "k": jitter(0.9), "count": 3},
				{"type": "check-valve", "k": jitter(2.5)},
				{"type": "gate-valve", "k": jitter(0.2)},
			},
		},
	}
}
