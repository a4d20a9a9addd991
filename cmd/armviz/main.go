// Package main is the armviz command: it loads an arm definition and serves
// it as a live 3D scene over websockets.
package main

import (
	"context"
	"math"
	"time"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
	goutils "go.viam.com/utils"

	"github.com/viam-labs/armviz/config"
	"github.com/viam-labs/armviz/kinematics"
	"github.com/viam-labs/armviz/render/webscene"
	"github.com/viam-labs/armviz/robot"
	"github.com/viam-labs/armviz/utils"
)

const (
	// Flags.
	flagConfig  = "config"
	flagAddress = "address"
	flagFrames  = "frames"
	flagSweep   = "sweep"

	sweepAmplitudeDeg = 45
	sweepPeriod       = 5 * time.Second
	sweepStep         = 50 * time.Millisecond
)

var logger = golog.NewDevelopmentLogger("armviz")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	app := &cli.App{
		Name:  "armviz",
		Usage: "visualize an articulated arm in a live 3D scene",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve an arm definition to websocket viewers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagConfig,
						Required: true,
						Usage:    "path to the arm definition JSON",
					},
					&cli.StringFlag{
						Name:  flagAddress,
						Value: ":8080",
						Usage: "address to listen on",
					},
					&cli.BoolFlag{
						Name:  flagFrames,
						Usage: "draw reference frame axes at every tool point",
					},
					&cli.BoolFlag{
						Name:  flagSweep,
						Usage: "sweep the first rotational joint back and forth",
					},
				},
				Action: func(c *cli.Context) error {
					return serve(
						ctx,
						logger,
						c.String(flagConfig),
						c.String(flagAddress),
						c.Bool(flagFrames),
						c.Bool(flagSweep),
					)
				},
			},
		},
	}
	return app.RunContext(ctx, args)
}

func serve(ctx context.Context, logger golog.Logger, configPath, address string, frames, sweepJoint bool) error {
	cfg, err := config.FromFile(configPath)
	if err != nil {
		return err
	}

	scene := webscene.NewScene(logger)
	defer scene.Close()
	rob, err := cfg.Build(scene, logger)
	if err != nil {
		return err
	}
	defer rob.Close()
	if frames {
		rob.DrawReferenceFrames(true)
	}
	logger.Infow("arm loaded", "name", cfg.Name, "joints", len(rob.Joints()))

	if sweepJoint {
		goutils.PanicCapturingGo(func() {
			sweep(ctx, logger, rob)
		})
	}

	return scene.ListenAndServe(ctx, address)
}

// sweep drives the first rotational joint of the chain through a sinusoidal
// arc until ctx is canceled.
func sweep(ctx context.Context, logger golog.Logger, rob *robot.Robot) {
	var joint *kinematics.Joint
	for _, j := range rob.Joints() {
		if j.Kind() == kinematics.KindRotational {
			joint = j
			break
		}
	}
	if joint == nil {
		logger.Warn("no rotational joint to sweep")
		return
	}

	start := time.Now()
	ticker := time.NewTicker(sweepStep)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		phase := 2 * math.Pi * time.Since(start).Seconds() / sweepPeriod.Seconds()
		target := utils.DegToRad(sweepAmplitudeDeg) * math.Sin(phase)
		if err := joint.RotateTo(target); err != nil {
			logger.Errorw("sweep rotation failed", "error", err)
			return
		}
	}
}
