package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/geosim/internal/config"
	"github.com/san-kum/geosim/internal/export"
	"github.com/san-kum/geosim/internal/integrate"
	"github.com/san-kum/geosim/internal/material"
	"github.com/san-kum/geosim/internal/path"
	"github.com/san-kum/geosim/internal/viz"
)

var (
	gref       float64
	nu         float64
	mExp       float64
	nExp       float64
	pa         float64
	p0         float64
	q0         float64
	epsV       float64
	epsQ       float64
	subSteps   int
	configFile string
	preset     string
	stepper    string
	svgOut     bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geosim",
		Short: "pressure-dependent elastic stress update lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "run one macro step with both integrators and compare",
		RunE:  runUpdate,
	}
	addScenarioFlags(updateCmd)

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "sweep sub-step counts and report convergence to the closed form",
		RunE:  runConverge,
	}
	addScenarioFlags(convergeCmd)

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "walk a multi-increment load path",
		RunE:  runPath,
	}
	addScenarioFlags(pathCmd)
	pathCmd.Flags().StringVar(&stepper, "integrator", "closed-form", "integrator (closed-form, euler)")
	pathCmd.Flags().BoolVar(&svgOut, "svg", false, "emit the p-q path as SVG on stdout")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the forward-Euler sub-stepping live",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list material and scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("materials:")
			for _, name := range material.ListPresets() {
				p, _ := material.Preset(name)
				fmt.Printf("  %-22s Gref=%g nu=%g m=%g n=%g\n", name, p.Gref, p.Nu, p.M, p.N)
			}
			fmt.Println("scenarios:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(updateCmd, convergeCmd, pathCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gref, "gref", 80000, "reference shear modulus")
	cmd.Flags().Float64Var(&nu, "nu", 0.3, "Poisson's ratio")
	cmd.Flags().Float64Var(&mExp, "m", 1, "bulk modulus exponent")
	cmd.Flags().Float64Var(&nExp, "n", 0.5, "shear modulus exponent")
	cmd.Flags().Float64Var(&pa, "pa", material.StandardPa, "atmospheric pressure")
	cmd.Flags().Float64Var(&p0, "p0", config.DefaultP0, "initial mean stress")
	cmd.Flags().Float64Var(&q0, "q0", 0, "initial deviatoric stress")
	cmd.Flags().Float64Var(&epsV, "eps-v", 0.01, "volumetric strain increment")
	cmd.Flags().Float64Var(&epsQ, "eps-q", 0.02, "deviatoric strain increment")
	cmd.Flags().IntVar(&subSteps, "steps", config.DefaultSubSteps, "explicit sub-step count")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "scenario preset")
}

// resolveConfig builds the scenario from preset, then config file, then
// changed flags, in increasing priority.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("gref") {
		cfg.Material.Gref = gref
	}
	if flags.Changed("nu") {
		cfg.Material.Nu = nu
	}
	if flags.Changed("m") {
		cfg.Material.M = mExp
	}
	if flags.Changed("n") {
		cfg.Material.N = nExp
	}
	if flags.Changed("pa") {
		cfg.Material.Pa = pa
	}
	if flags.Changed("p0") {
		cfg.Initial.P = p0
	}
	if flags.Changed("q0") {
		cfg.Initial.Q = q0
	}
	if flags.Changed("eps-v") {
		cfg.Step.EpsV = epsV
	}
	if flags.Changed("eps-q") {
		cfg.Step.EpsQ = epsQ
	}
	if flags.Changed("steps") {
		cfg.SubSteps = subSteps
	}

	if err := cfg.Material.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	slog.Debug("running macro step",
		"kref", cfg.Material.Kref(), "p0", cfg.Initial.P, "steps", cfg.SubSteps)

	start := time.Now()
	closed, err := integrate.NewClosedForm().Update(cfg.Initial, cfg.Material, cfg.Step)
	if err != nil {
		return err
	}
	explicit, err := integrate.NewEuler(cfg.SubSteps).Update(cfg.Initial, cfg.Material, cfg.Step)
	if err != nil {
		return err
	}
	slog.Debug("done", "elapsed", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tP\tQ")
	fmt.Fprintf(w, "closed-form\t%.6f\t%.6f\n", closed.P, closed.Q)
	fmt.Fprintf(w, "euler (N=%d)\t%.6f\t%.6f\n", cfg.SubSteps, explicit.P, explicit.Q)
	if err := w.Flush(); err != nil {
		return err
	}

	dp := math.Abs(explicit.P - closed.P)
	dq := math.Abs(explicit.Q - closed.Q)
	fmt.Printf("\n|dp| = %.6g (rel %.3e)\n", dp, dp/math.Abs(closed.P))
	if closed.Q != 0 {
		fmt.Printf("|dq| = %.6g (rel %.3e)\n", dq, dq/math.Abs(closed.Q))
	} else {
		fmt.Printf("|dq| = %.6g\n", dq)
	}
	return nil
}

func runConverge(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	closed, err := integrate.NewClosedForm().Update(cfg.Initial, cfg.Material, cfg.Step)
	if err != nil {
		return err
	}

	ns := []int{100, 1000, 10000, 100000}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tP_ERR\tQ_ERR\tORDER")

	logErrs := make([]float64, 0, len(ns))
	prevErr := 0.0
	for i, n := range ns {
		res, err := integrate.NewEuler(n).Update(cfg.Initial, cfg.Material, cfg.Step)
		if err != nil {
			return err
		}
		pErr := math.Abs(res.P - closed.P)
		qErr := math.Abs(res.Q - closed.Q)
		logErrs = append(logErrs, math.Log10(pErr))

		if i == 0 {
			fmt.Fprintf(w, "%d\t%.6g\t%.6g\t-\n", n, pErr, qErr)
		} else {
			// Observed order from consecutive decades; ~1 for forward Euler.
			order := math.Log10(prevErr/pErr) / math.Log10(float64(ns[i])/float64(ns[i-1]))
			fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.3f\n", n, pErr, qErr, order)
		}
		prevErr = pErr
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(logErrs,
		asciigraph.Height(8),
		asciigraph.Width(40),
		asciigraph.Caption("log10 |p error| per decade of N"),
	))
	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var s integrate.Stepper
	switch stepper {
	case "closed-form":
		s = integrate.NewClosedForm()
	case "euler":
		s = integrate.NewEuler(cfg.SubSteps)
	default:
		return fmt.Errorf("unknown integrator: %s", stepper)
	}

	result, err := path.New(s).Run(context.Background(), cfg.Initial, cfg.Material, cfg.Increments())
	if err != nil {
		return err
	}

	if svgOut {
		fmt.Println(export.PathSVG(result.States, 640, 480, ""))
		return nil
	}

	fmt.Printf("load path · %s · %d increments\n\n", s.Name(), len(result.States)-1)
	fmt.Println(asciigraph.Plot(result.P(),
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("mean stress p"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(result.Q(),
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("deviatoric stress q"),
	))

	last := result.States[len(result.States)-1]
	fmt.Printf("\nfinal state: p=%.4f q=%.4f\n", last.P, last.Q)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Material, cfg.Initial, cfg.Step, cfg.SubSteps)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
