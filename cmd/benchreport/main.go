// Command benchreport runs the lfring throughput/ping-pong benchmarks
// and writes an HTML chart of the results. It is ambient tooling, not
// part of the queue's public contract — the core package never
// imports it.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mpmcq/lfring/internal/benchreport"
)

func main() {
	out := flag.String("out", "benchreport.html", "path to write the rendered HTML chart")
	flag.Parse()

	log.Printf("running lfring benchmark sweep")
	results := benchreport.Run()
	for _, r := range results {
		log.Printf("%-28s %12.1f ns/op %14.0f ops/sec", r.Name, r.NsPerOp, r.OpsPerSec)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := benchreport.Render(results, f); err != nil {
		log.Fatalf("render chart: %v", err)
	}
	log.Printf("wrote %s", *out)
}
