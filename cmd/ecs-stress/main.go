package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/ember/ecs"
)

func main() {
	scenarioPath := flag.String("scenario", "", "Path to a YAML scenario file. Flags override its values.")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 0, "Entities destroyed and respawned per frame.")
	profileMode := flag.String("profile", "", "Write a profile: cpu or mem.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	scn := DefaultScenario()
	if *scenarioPath != "" {
		var err error
		scn, err = LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			scn.Duration = *duration
		case "entities":
			scn.Entities = *entityCount
		case "churn":
			scn.ChurnPerFrame = *churn
		case "profile":
			scn.Profile = *profileMode
		case "gc-pause-metrics":
			scn.GCPauseMetrics = *gcPauseMetrics
		}
	})

	switch scn.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatalf("Unknown profile mode %q (want cpu or mem)", scn.Profile)
	}

	log.Println("Starting ECS stress test...")

	// 1. Set up registry, world, and systems
	registry := ecs.NewComponentRegistry()
	RegisterAllGeneratedComponents(registry)
	world := ecs.NewWorld(registry)
	RegisterAllGeneratedSystems(world)
	if scn.ChurnPerFrame > 0 {
		world.AddSystem("churn", churnSystem(scn.ChurnPerFrame, scn.MaxComponents), 1000, false)
	}

	// 2. Populate the world with initial entities
	log.Printf("Populating world with %d entities...\n", scn.Entities)
	for i := 0; i < scn.Entities; i++ {
		// Spawn an entity with 1 to MaxComponents random components
		SpawnRandomEntity(world, rand.Intn(scn.MaxComponents)+1)
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       scn.Duration,
		Entities:       scn.Entities,
		Components:     generatedComponentCount,
		Systems:        generatedSystemCount,
		ChurnPerFrame:  scn.ChurnPerFrame,
		GCPauseMetrics: scn.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", scn.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), scn.Duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			if err := world.Update(float64(deltaTime) / float64(time.Second)); err != nil {
				log.Fatalf("Update failed: %v", err)
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.WorldStats = world.Stats()

	log.Println("Simulation finished.")

	// 4. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// churnSystem destroys n random live entities each frame and queues an equal
// number of respawns. Destroys go through Commands so they land between
// frames, never mid-iteration. Respawned entities get fresh, never-recycled
// ids, so sparse arrays grow with total spawns; the report's world stats
// section makes that growth visible.
func churnSystem(n, maxComponents int) ecs.SystemFunc {
	return func(w *ecs.World) error {
		var live []ecs.Entity
		for e := range w.Entities() {
			live = append(live, e)
		}
		if len(live) == 0 {
			return nil
		}

		cmd := w.Commands()
		for i := 0; i < n; i++ {
			cmd.Destroy(live[rand.Intn(len(live))])
		}
		cmd.Defer(func() {
			for i := 0; i < n; i++ {
				SpawnRandomEntity(w, rand.Intn(maxComponents)+1)
			}
		})
		return nil
	}
}
