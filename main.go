package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bvh-demo"
	app.Usage = "build and query a bounding volume hierarchy over glTF scene geometry"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "build",
			Usage: "build a bvh over a scene's mesh primitives and print a summary",
			Description: `
Load mesh primitives from a glTF/glb file, build a bounding volume hierarchy
over their world-space AABBs using either the top-down median-split builder
or the incremental branch-and-bound inserter, and print the resulting tree's
depth, size and per-node table.`,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene", Usage: "path to a .gltf/.glb file"},
				cli.StringFlag{Name: "mode", Value: "topdown", Usage: "topdown or insert"},
				cli.IntFlag{Name: "min-objects", Usage: "leaves stay leaves at or below this object count"},
				cli.Float64Flag{Name: "min-volume", Usage: "nodes stay leaves at or below this volume"},
				cli.IntFlag{Name: "max-depth", Usage: "stop splitting at this depth"},
			},
			Action: cmd.BuildScene,
		},
		{
			Name:  "query-frustum",
			Usage: "list every primitive a camera frustum does not exclude",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene", Usage: "path to a .gltf/.glb file"},
				cli.StringFlag{Name: "eye", Usage: "camera position \"x,y,z\""},
				cli.StringFlag{Name: "look", Usage: "camera look-at point \"x,y,z\""},
				cli.Float64Flag{Name: "fov", Value: 60, Usage: "vertical field of view in degrees"},
			},
			Action: cmd.QueryFrustum,
		},
		{
			Name:  "query-ray",
			Usage: "find the primitive a ray hits closest to its origin",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene", Usage: "path to a .gltf/.glb file"},
				cli.StringFlag{Name: "from", Usage: "ray origin \"x,y,z\""},
				cli.StringFlag{Name: "to", Usage: "point defining the ray direction \"x,y,z\""},
				cli.BoolFlag{Name: "closest-only", Usage: "prune subtrees once a closer hit is known"},
			},
			Action: cmd.QueryRay,
		},
		{
			Name:  "dump",
			Usage: "print a tree's structure",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene", Usage: "path to a .gltf/.glb file"},
				cli.StringFlag{Name: "format", Value: "info", Usage: "info or graph"},
			},
			Action: cmd.DumpScene,
		},
	}

	app.Run(os.Args)
}
