package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/bvh"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/scene"
)

// BuildScene loads the scene referenced by --scene, builds a bvh.Tree over
// its mesh primitives using either the top-down or incremental strategy and
// dumps a summary of the result.
func BuildScene(ctx *cli.Context) error {
	setupLogging(ctx)

	primitives, err := loadScenePrimitives(ctx)
	if err != nil {
		return err
	}

	sc := scene.NewScene()
	config := buildConfigFromFlags(ctx)

	switch mode := ctx.String("mode"); mode {
	case "", "topdown":
		for _, p := range primitives {
			if err := sc.AddPrimitive(p); err != nil {
				return err
			}
		}
		sc.BuildTopDown(config)
	case "insert":
		for _, p := range primitives {
			if err := sc.InsertPrimitive(p, config); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("build: unknown --mode %q, want topdown or insert", mode)
	}

	logger.Infof("built tree over %d primitives from %q", len(sc.Primitives), ctx.String("scene"))
	sc.Tree.DumpInfo(os.Stdout)
	return nil
}

// loadScenePrimitives resolves the --scene flag and loads its mesh
// primitives, ready to be added to a fresh scene.Scene by the caller.
func loadScenePrimitives(ctx *cli.Context) ([]*scene.Primitive, error) {
	path := ctx.String("scene")
	if path == "" {
		return nil, fmt.Errorf("--scene is required")
	}
	return scene.LoadGLTF(path)
}

func buildConfigFromFlags(ctx *cli.Context) bvh.BuildConfig {
	config := bvh.DefaultBuildConfig()
	if ctx.IsSet("min-objects") {
		config.MinObjects = uint32(ctx.Int("min-objects"))
	}
	if ctx.IsSet("min-volume") {
		config.MinVolume = float32(ctx.Float64("min-volume"))
	}
	if ctx.IsSet("max-depth") {
		config.MaxDepth = uint32(ctx.Int("max-depth"))
	}
	return config
}

// parseVec3 parses a "x,y,z" flag value into three float32s.
func parseVec3(s string) (x, y, z float32, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected \"x,y,z\", got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%g", &v[i]); err != nil {
			return 0, 0, 0, fmt.Errorf("parsing %q: %w", s, err)
		}
	}
	return float32(v[0]), float32(v[1]), float32(v[2]), nil
}
