package cmd

import (
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/scene"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/stats"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

// QueryFrustum loads a scene, builds a camera from --eye/--look/--fov, and
// reports every primitive the camera's frustum does not fully exclude.
func QueryFrustum(ctx *cli.Context) error {
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

	camera, err := cameraFromFlags(ctx)
	if err != nil {
		return err
	}
	sc.SetCamera(camera)

	stats.Reset()
	hits := sc.QueryFrustum(camera.Frustum())

	logger.Infof("frustum query matched %d/%d primitives", len(hits), len(sc.Primitives))
	for _, p := range hits {
		fmt.Printf("%s\t%s\n", p.Name, p.Type)
	}
	fmt.Printf("frustum_vs_aabb tests: %d\n", stats.FrustumVsAabb())
	return nil
}

// QueryRay loads a scene, builds a ray from --from/--to, and reports the
// closest primitive it hits.
func QueryRay(ctx *cli.Context) error {
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

	fromStr, toStr := ctx.String("from"), ctx.String("to")
	if fromStr == "" || toStr == "" {
		return fmt.Errorf("query-ray: --from and --to are required")
	}
	fx, fy, fz, err := parseVec3(fromStr)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	tx, ty, tz, err := parseVec3(toStr)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	start := types.XYZ(fx, fy, fz)
	end := types.XYZ(tx, ty, tz)
	ray := geom.NewRay(start, end.Sub(start))

	stats.Reset()
	closestOnly := ctx.Bool("closest-only")
	hit := sc.Tree.QueryDebug(ray, closestOnly)

	if !hit.Found {
		logger.Info("query-ray: no hit")
	} else {
		p := sc.Primitives[hit.ID]
		logger.Infof("query-ray: closest hit id=%d name=%s", hit.ID, p.Name)
	}
	fmt.Printf("tested nodes: %d\n", len(hit.TestedNodes))
	fmt.Printf("ray_vs_aabb tests: %d\n", stats.RayVsAabb())
	return nil
}

func cameraFromFlags(ctx *cli.Context) (*scene.Camera, error) {
	fov := ctx.Float64("fov")
	if fov == 0 {
		fov = 60
	}
	camera := scene.NewCamera(float32(fov) * float32(math.Pi) / 180)

	if eye := ctx.String("eye"); eye != "" {
		x, y, z, err := parseVec3(eye)
		if err != nil {
			return nil, fmt.Errorf("--eye: %w", err)
		}
		camera.Position = types.XYZ(x, y, z)
	}
	if look := ctx.String("look"); look != "" {
		x, y, z, err := parseVec3(look)
		if err != nil {
			return nil, fmt.Errorf("--look: %w", err)
		}
		camera.LookAt = types.XYZ(x, y, z)
	}
	camera.SetupProjection(1.0)
	return camera, nil
}
