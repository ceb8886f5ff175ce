// Command meshrepair runs the mesh repair pipeline over one or more
// mesh JSON files (see the meshio package for the document shape),
// printing a diagnosis summary per object and, unless -diagnose-only
// is set, writing a repaired sibling file next to each input.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kilnforge/meshrepair/meshio"
	"github.com/kilnforge/meshrepair/repair"
	"github.com/kilnforge/meshrepair/types"
)

var (
	configPath   = flag.String("config", "", "path to a YAML tunables file (optional)")
	workers      = flag.Int("workers", 1, "number of mesh files to repair concurrently")
	diagnoseOnly = flag.Bool("diagnose-only", false, "only print diagnosis, never write a repaired file")
	outputSuffix = flag.String("suffix", ".repaired.json", "suffix that replaces the input path's .json extension for repaired output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: meshrepair [options] <mesh.json> [more.json ...]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts, err := resolveOptions(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	files := flag.Args()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)

	for _, path := range files {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return processFile(path, opts)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Failed: %v", err)
	}
}

func resolveOptions(path string) ([]repair.Option, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := loadFileConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.options(), nil
}

func processFile(path string, opts []repair.Option) error {
	log.Printf("Loading %s...", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	ingested, err := meshio.Ingest(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("ingest %s: %w", path, err)
	}

	if *diagnoseOnly {
		for _, obj := range ingested.Objects {
			diag := repair.Diagnose(obj.Vertices, obj.Triangles)
			logDiagnosis(path, obj.ID, diag)
		}
		return nil
	}

	result := repair.New(opts...).RepairAll(ingested.Objects)

	repaired := make([]types.Object, len(result.Objects))
	for i, obj := range result.Objects {
		logDiagnosis(path, obj.ID, obj.Diagnosis)
		log.Printf("   merged=%d nmFixed=%d holesFilled=%d", obj.Report.Merged, obj.Report.NMFixed, obj.Report.HolesFilled)
		repaired[i] = types.Object{ID: obj.ID, Vertices: obj.Vertices, Triangles: obj.Triangles}
	}

	outPath := strings.TrimSuffix(path, ".json") + *outputSuffix
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := meshio.Emit(out, repaired, ingested.Passthrough); err != nil {
		return fmt.Errorf("emit %s: %w", outPath, err)
	}

	log.Printf("Wrote %s", outPath)
	return nil
}

func logDiagnosis(path, id string, diag repair.Diagnosis) {
	status := "✓ watertight"
	if !diag.IsWatertight {
		status = "❌ not watertight"
	}
	log.Printf("%s [%s]: %d vertices, %d triangles, %d boundary edges, %d non-manifold edges — %s",
		path, id, diag.VertexCount, diag.TriangleCount, diag.BoundaryEdgeCount, diag.NonManifoldEdgeCount, status)
}
