// Command otbench drives the core algebra with randomly generated
// documents and operations at a scale larger than the package test
// suite bothers with, timing each scenario and optionally profiling
// the run; it reports errors but does not check the algebraic laws.
// Scenarios (document length, operation count, iteration count, and
// the insert/delete/skip weighting) come from a YAML file; each run
// prints a UUID run ID before its results.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/google/pprof/profile"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/coreseekdev/ottype/pkg/ot"
)

// Scenario is one fuzz configuration, loaded from the YAML config file.
type Scenario struct {
	Name       string     `yaml:"name"`
	DocLength  int        `yaml:"doc_length"`
	OpsPerDoc  int        `yaml:"ops_per_doc"`
	Iterations int        `yaml:"iterations"`
	Weights    [3]float64 `yaml:"weights"` // insert, delete, skip
}

type config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

func main() {
	configPath := flag.String("config", "", "path to a YAML scenario file")
	cpuProfilePath := flag.String("cpuprofile", "", "write a CPU profile to this path")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("otbench: -config is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("otbench: %v", err)
	}

	runID := uuid.New().String()

	var profileFile *os.File
	if *cpuProfilePath != "" {
		profileFile, err = os.Create(*cpuProfilePath)
		if err != nil {
			log.Fatalf("otbench: %v", err)
		}
		if err := pprof.StartCPUProfile(profileFile); err != nil {
			log.Fatalf("otbench: %v", err)
		}
	}

	fmt.Printf("otbench run %s\n", runID)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, sc := range cfg.Scenarios {
		runScenario(rng, sc)
	}

	if profileFile != nil {
		pprof.StopCPUProfile()
		profileFile.Close()
		summarizeProfile(*cpuProfilePath)
	}
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// runScenario exercises apply/inverse_apply/transform/compose against
// randomly generated documents and operations, the way
// tests/utils.py's make_random_doc/make_random_ots do in the
// reference property tests, just run many more times and without
// assertions — this command measures, the package tests verify.
func runScenario(rng *rand.Rand, sc Scenario) {
	start := time.Now()
	applied := 0

	for i := 0; i < sc.Iterations; i++ {
		doc := makeRandomDoc(rng, sc.DocLength)
		opA := makeRandomOps(rng, doc, sc.OpsPerDoc, sc.Weights)
		opB := makeRandomOps(rng, doc, sc.OpsPerDoc, sc.Weights)

		newDoc, err := ot.Apply(doc, opA)
		if err != nil {
			continue
		}
		applied++

		if _, err := ot.InverseApply(newDoc, opA); err != nil {
			log.Printf("otbench: scenario %q: inverse_apply mismatch: %v", sc.Name, err)
		}

		if _, err := ot.Transform(opA, opB, ot.Left); err != nil {
			log.Printf("otbench: scenario %q: transform failed: %v", sc.Name, err)
		}

		if _, err := ot.Compose(opA, opB); err != nil {
			// composing two independently-generated edits commonly
			// fails the delete-consistency check; that's expected,
			// not a bug in either op.
			continue
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("  %-20s iterations=%-6d applied=%-6d elapsed=%s\n", sc.Name, sc.Iterations, applied, elapsed)
}

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func makeRandomDoc(rng *rand.Rand, n int) string {
	if n < 10 {
		n = 10
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

// makeRandomOps mirrors tests/utils.py's make_random_ots: walk the
// document left to right, at each step choosing insert, delete, or
// skip by weight (skip is unavailable once the document is
// exhausted), then building a canonical operation via ot.Builder.
func makeRandomOps(rng *rand.Rand, doc string, n int, weights [3]float64) []ot.Raw {
	b := ot.NewBuilder()
	offset := 0

	for i := 0; i < n; i++ {
		remaining := len(doc) - offset
		if remaining == 0 {
			if rng.Float64() < weights[0]/(weights[0]+weights[1]) {
				b.Insert(makeRandomDoc(rng, 1))
			} else {
				break
			}
			continue
		}

		maxAmount := remaining
		if n > 0 && len(doc)/n < maxAmount {
			maxAmount = len(doc) / n
		}
		if maxAmount < 1 {
			maxAmount = 1
		}
		amount := 1 + rng.Intn(maxAmount)

		switch pickAction(rng, weights) {
		case 'i':
			b.Insert(makeRandomDoc(rng, amount))
		case 'd':
			b.Delete(doc[offset : offset+amount])
			offset += amount
		case 's':
			b.Skip(amount)
			offset += amount
		}
	}

	return b.Build().ToRaw()
}

func pickAction(rng *rand.Rand, weights [3]float64) byte {
	total := weights[0] + weights[1] + weights[2]
	r := rng.Float64() * total
	if r < weights[0] {
		return 'i'
	}
	if r < weights[0]+weights[1] {
		return 'd'
	}
	return 's'
}

func summarizeProfile(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("otbench: %v", err)
		return
	}
	defer f.Close()

	prof, err := profile.Parse(f)
	if err != nil {
		log.Printf("otbench: parsing profile: %v", err)
		return
	}

	var totalSamples int64
	for _, s := range prof.Sample {
		for _, v := range s.Value {
			totalSamples += v
		}
	}
	fmt.Printf("profile %s: %d samples across %d stack traces\n", path, totalSamples, len(prof.Sample))
}
