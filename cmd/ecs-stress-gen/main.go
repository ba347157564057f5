// Command ecs-stress-gen generates the component and system source file used
// by cmd/ecs-stress. Each generated system queries a disjoint pair of
// generated components, so the system count may be at most half the
// component count.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by ecs-stress-gen. DO NOT EDIT.

package main

import (
	"fmt"
	"math/rand"

	"github.com/plus3/ember/ecs"
)

const (
	generatedComponentCount = {{.Components}}
	generatedSystemCount    = {{.Systems}}
)
{{range .ComponentIDs}}
type Stress{{.}} struct {
	Value float64
	Ticks uint32
}
{{end}}
func RegisterAllGeneratedComponents(r *ecs.ComponentRegistry) {
{{- range .ComponentIDs}}
	ecs.RegisterComponent[Stress{{.}}](r)
{{- end}}
}

var generatedSetters = []func(*ecs.World, ecs.Entity){
{{- range .ComponentIDs}}
	func(w *ecs.World, e ecs.Entity) { ecs.SetComponent(w, e, Stress{{.}}{Value: rand.Float64()}) },
{{- end}}
}

// SpawnRandomEntity spawns an entity carrying numComponents distinct random
// generated components, each initialized with a random value.
func SpawnRandomEntity(w *ecs.World, numComponents int) ecs.Entity {
	if numComponents > generatedComponentCount {
		numComponents = generatedComponentCount
	}
	e := w.Spawn()
	for _, idx := range rand.Perm(generatedComponentCount)[:numComponents] {
		generatedSetters[idx](w, e)
	}
	return e
}
{{range .SystemIDs}}
type stressView{{.}} struct {
	A *Stress{{pair . 0}}
	B *Stress{{pair . 1}}
}

func stressSystem{{.}}(w *ecs.World) error {
	for _, row := range ecs.NewQuery[stressView{{.}}](w).Iter() {
		row.A.Value += row.B.Value * 0.001
		row.A.Ticks++
	}
	return nil
}
{{end}}
func RegisterAllGeneratedSystems(w *ecs.World) {
{{- range .SystemIDs}}
	w.AddSystem(fmt.Sprintf("stress-%d", {{.}}), stressSystem{{.}}, {{.}}, false)
{{- end}}
}
`

type templateData struct {
	Components   int
	Systems      int
	ComponentIDs []int
	SystemIDs    []int
}

func main() {
	components := flag.Int("components", 12, "Number of component types to generate.")
	systems := flag.Int("systems", 6, "Number of systems to generate (at most components/2).")
	out := flag.String("out", "cmd/ecs-stress/components_gen.go", "Output file path.")
	flag.Parse()

	if *components < 2 {
		log.Fatal("need at least 2 components")
	}
	if *systems*2 > *components {
		log.Fatalf("%d systems need %d components, only %d configured", *systems, *systems*2, *components)
	}

	data := templateData{
		Components:   *components,
		Systems:      *systems,
		ComponentIDs: seq(*components),
		SystemIDs:    seq(*systems),
	}

	fm := template.FuncMap{
		// pair maps system i to its component pair (2i, 2i+1).
		"pair": func(system, which int) int {
			return system*2 + which
		},
	}

	tmpl, err := template.New("gen").Funcs(fm).Parse(fileTemplate)
	if err != nil {
		log.Fatalf("parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	// imports.Process both gofmts the output and prunes unused imports.
	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("Generated %s: %d components, %d systems", *out, *components, *systems)
}

func seq(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}
