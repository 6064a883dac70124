package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xernobyl/pvector/src/sketch"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "pvector",
		Short:         "Batch vector transforms and unit vector sampling",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./pvector.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newTransformCmd(a), newSampleCmd(a), newVersionCmd())
	return root
}

// setup loads the config and binds the flags of the command being run, so
// flags override the file and the environment.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := newViper(a.cfgFile)
	if err != nil {
		return err
	}

	binds := map[string]string{
		"log.level":         "log-level",
		"transform.workers": "workers",
		"transform.degrees": "degrees",
		"transform.sort":    "sort",
		"transform.output":  "output",
		"transform.seed":    "seed",
		"sample.count":      "count",
		"sample.dims":       "dims",
		"sample.seed":       "seed",
		"sample.output":     "output",
	}
	for key, name := range binds {
		if !strings.HasPrefix(key, "log.") && !strings.HasPrefix(key, cmd.Name()+".") {
			continue
		}
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	a.v, a.cfg = v, cfg
	a.log = stderrLogger(cfg.Log)
	a.log.Debug("config loaded", zap.String("file", v.ConfigFileUsed()))
	return nil
}

func newTransformCmd(a *app) *cobra.Command {
	var stepFlags []string

	cmd := &cobra.Command{
		Use:   "transform <mesh.obj>",
		Short: "Apply a vector pipeline to every vertex of an OBJ file",
		Long: `Loads an OBJ file, runs each vertex through the configured steps and
writes <output>.obj, <output>.bin (packed float32) and <output>.json.

Steps come from transform.steps in the config file, followed by any --step
flags, written as op or op:key=value,key=value. Ops: translate, scale, mult,
div, mod, rotate, rotateX, rotateY, rotateZ, normalize, limit, setMag,
negate, lerp, jitter.

jitter adds a random offset of the given amount. Without --seed it differs
on every run. With --seed, pipelines that jitter run on one worker so the
draws happen in vertex order and the output is reproducible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := append([]Step(nil), a.cfg.Transform.Steps...)
			for _, s := range stepFlags {
				step, err := ParseStep(s)
				if err != nil {
					return err
				}
				steps = append(steps, step)
			}
			return a.runTransform(cmd, args[0], steps)
		},
	}

	cmd.Flags().StringArrayVarP(&stepFlags, "step", "s", nil, "pipeline step, repeatable")
	cmd.Flags().IntP("workers", "w", 4, "parallel workers")
	cmd.Flags().Bool("degrees", false, "step angles are in degrees")
	cmd.Flags().Bool("sort", false, "sort vertices by x, y, z before writing")
	cmd.Flags().StringP("output", "o", "", "output path without extension")
	cmd.Flags().Uint64("seed", 0, "jitter seed, 0 for a random one")
	return cmd
}

func (a *app) runTransform(cmd *cobra.Command, input string, steps []Step) error {
	tc := a.cfg.Transform

	mode := sketch.Radians
	if tc.Degrees {
		mode = sketch.Degrees
	}
	opts := []sketch.Option{sketch.WithAngleMode(mode), sketch.WithLogger(a.log)}
	workers := tc.Workers
	if tc.Seed != 0 {
		opts = append(opts, sketch.WithSeed(tc.Seed))
		if hasJitter(steps) {
			workers = 1
			a.log.Debug("seeded jitter, running on one worker", zap.Uint64("seed", tc.Seed))
		}
	}
	sk := sketch.New(opts...)

	fns, err := Compile(steps, sk)
	if err != nil {
		return err
	}

	a.log.Info("loading mesh", zap.String("file", input))
	mesh, err := LoadOBJ(input, a.log)
	if err != nil {
		return fmt.Errorf("error loading mesh: %w", err)
	}

	if err := Apply(cmd.Context(), mesh.Vertices, fns, workers); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if tc.Sort {
		mesh.SortVertices()
	}
	mesh.UpdateBounds()

	out := tc.Output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".out"
	}

	summary := Summarize(mesh, steps)
	if summary.NaNVertices > 0 {
		a.log.Warn("transform produced NaN coordinates", zap.Int("vertices", summary.NaNVertices))
	}

	if err := a.writeMesh(out, mesh); err != nil {
		return err
	}
	if err := writeJSON(out+".json", summary); err != nil {
		return err
	}

	a.log.Info("transform done",
		zap.String("output", out),
		zap.Int("vertices", summary.Vertices),
		zap.Int("steps", len(steps)))
	return nil
}

func (a *app) writeMesh(out string, mesh *Mesh) error {
	objFile, err := os.Create(out + ".obj")
	if err != nil {
		return err
	}
	if err := mesh.WriteOBJ(objFile); err != nil {
		objFile.Close()
		return err
	}
	if err := objFile.Close(); err != nil {
		return err
	}

	binFile, err := os.Create(out + ".bin")
	if err != nil {
		return err
	}
	nonFinite, err := WriteFloat32(binFile, mesh.Vertices)
	if err != nil {
		binFile.Close()
		return err
	}
	if nonFinite > 0 {
		a.log.Warn("vertices do not fit in float32",
			zap.String("file", out+".bin"),
			zap.Int("vertices", nonFinite))
	}
	return binFile.Close()
}

func newSampleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw random unit vectors and report how close to unit length they are",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runSample()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"samples: %d\nmean magnitude: %.12f\nmax deviation: %.3e\ncentroid: %s\n",
				res.Count, res.MeanMag, res.MaxDeviation, res.Centroid)
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 1000, "number of vectors")
	cmd.Flags().Int("dims", 3, "2 for the unit circle, 3 for the unit sphere")
	cmd.Flags().Uint64("seed", 0, "random seed, 0 for a random one")
	cmd.Flags().StringP("output", "o", "", "also write the samples as OBJ vertices to this file")
	return cmd
}

func (a *app) runSample() (*SampleResult, error) {
	sc := a.cfg.Sample

	opts := []sketch.Option{sketch.WithLogger(a.log)}
	if sc.Seed != 0 {
		opts = append(opts, sketch.WithSeed(sc.Seed))
	}
	sk := sketch.New(opts...)

	vs := Sample(sk, sc.Count, sc.Dims)
	res := Measure(vs)

	if sc.Output != "" {
		f, err := os.Create(sc.Output)
		if err != nil {
			return nil, err
		}
		if err := (&Mesh{Vertices: vs}).WriteOBJ(f); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
		a.log.Info("samples written", zap.String("file", sc.Output))
	}
	return &res, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return nil
		},
	}
}
