package cmd

import (
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/log"
	"github.com/urfave/cli"
)

var logger = log.New("bvh-demo")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
