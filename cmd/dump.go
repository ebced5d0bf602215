package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/scene"
)

// DumpScene loads a scene, builds a tree over it top-down, and writes either
// a tabular info dump or a Graphviz digraph of its structure to stdout.
func DumpScene(ctx *cli.Context) error {
	setupLogging(ctx)

	primitives, err := loadScenePrimitives(ctx)
	if err != nil {
		return err
	}
	sc := scene.NewScene()
	for _, p := range primitives {
		if err := sc.AddPrimitive(p); err != nil {
			return err
		}
	}
	sc.BuildTopDown(buildConfigFromFlags(ctx))

	switch format := ctx.String("format"); format {
	case "", "info":
		sc.Tree.DumpInfo(os.Stdout)
	case "graph":
		sc.Tree.DumpGraph(os.Stdout)
	default:
		return fmt.Errorf("dump: unknown --format %q, want info or graph", format)
	}
	return nil
}
