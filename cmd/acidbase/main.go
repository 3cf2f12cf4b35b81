package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/acidbase/internal/bars"
	"github.com/san-kum/acidbase/internal/chem"
	"github.com/san-kum/acidbase/internal/config"
	"github.com/san-kum/acidbase/internal/export"
	"github.com/san-kum/acidbase/internal/particles"
	"github.com/san-kum/acidbase/internal/storage"
	"github.com/san-kum/acidbase/internal/sweep"
	"github.com/san-kum/acidbase/internal/tui"
	"github.com/san-kum/acidbase/internal/viz"
)

var (
	dataDir       string
	configFile    string
	themeName     string
	seed          int64
	preset        string
	concentration float64
	strength      float64
	// sweep
	minC      float64
	maxC      float64
	points    int
	live      bool
	frameRate int
	// render
	svgPath string
	pngPath string
	size    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "acidbase",
		Short: "acid/base equilibrium visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".acidbase", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", config.DefaultSeed, "particle layout seed")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return viz.ThemeNames(), cobra.ShellCompDirectiveNoFileComp
	})

	showCmd := &cobra.Command{
		Use:       "show [kind]",
		Short:     "print the equilibrium of a solution",
		Args:      cobra.ExactArgs(1),
		ValidArgs: chem.KindNames(),
		RunE:  showSolution,
	}
	solutionFlags(showCmd)

	sweepCmd := &cobra.Command{
		Use:       "sweep [kind|all]",
		Short:     "sweep concentration and store the equilibria",
		Args:      cobra.ExactArgs(1),
		ValidArgs: append(chem.KindNames(), "all"),
		RunE:  runSweep,
	}
	solutionFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&minC, "min", chem.MinConcentration, "lowest concentration (mol/L)")
	sweepCmd.Flags().Float64Var(&maxC, "max", chem.MaxConcentration, "highest concentration (mol/L)")
	sweepCmd.Flags().IntVar(&points, "points", 61, "number of log-spaced points")
	sweepCmd.Flags().BoolVar(&live, "live", false, "draw the lens while sweeping")
	sweepCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate for --live")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	renderCmd := &cobra.Command{
		Use:       "render [kind]",
		Short:     "render the lens and bars to svg or the bar chart to png",
		Args:      cobra.ExactArgs(1),
		ValidArgs: chem.KindNames(),
		RunE:  renderSolution,
	}
	solutionFlags(renderCmd)
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "svg output prefix (writes <prefix>_lens.svg and <prefix>_bars.svg)")
	renderCmd.Flags().StringVar(&pngPath, "png", "", "png bar chart output path")
	renderCmd.Flags().IntVar(&size, "size", 480, "image size in pixels")

	presetsCmd := &cobra.Command{
		Use:       "presets [kind]",
		Short:     "list named solutions",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: chem.KindNames(),
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(showCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, renderCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solutionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use a named solution")
	cmd.Flags().Float64Var(&concentration, "concentration", chem.DefaultConcentration, "solute concentration (mol/L)")
	cmd.Flags().Float64Var(&strength, "strength", chem.DefaultWeakStrength, "Ka or Kb of a weak solute")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("theme") {
		if _, err := viz.ThemeByName(themeName); err != nil {
			return nil, err
		}
		cfg.Theme = themeName
	}
	return cfg, nil
}

// resolveSolution layers defaults, config file, preset and flags.
func resolveSolution(cmd *cobra.Command, kindArg string) (*config.Config, chem.Solution, error) {
	kind, err := chem.ParseKind(kindArg)
	if err != nil {
		return nil, chem.Solution{}, err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, chem.Solution{}, err
	}

	if preset != "" {
		p, ok := config.GetPreset(kind.String(), preset)
		if !ok {
			return nil, chem.Solution{}, fmt.Errorf("unknown preset %q for %s (available: %s)",
				preset, kind, strings.Join(config.ListPresets(kind.String()), ", "))
		}
		cfg.SetSolution(p)
	}

	set, err := cfg.Set()
	if err != nil {
		return nil, chem.Solution{}, err
	}
	if cmd.Flags().Changed("concentration") {
		if err := set.SetConcentration(kind, concentration); err != nil {
			return nil, chem.Solution{}, err
		}
	}
	if cmd.Flags().Changed("strength") {
		if err := set.SetStrength(kind, strength); err != nil {
			return nil, chem.Solution{}, err
		}
	}
	if err := set.Select(kind); err != nil {
		return nil, chem.Solution{}, err
	}
	return cfg, set.Selected(), nil
}

func showSolution(cmd *cobra.Command, args []string) error {
	cfg, sol, err := resolveSolution(cmd, args[0])
	if err != nil {
		return err
	}
	theme := viz.GetTheme(cfg.Theme)

	fmt.Printf("%s\n", sol)
	fmt.Printf("pH %.2f  %s\n", sol.PH(), viz.PHSwatch(sol.PH()))
	if sol.Kind != chem.Water {
		fmt.Printf("dissociated: %.3g%%\n", sol.PercentDissociated())
	}
	fmt.Println()
	fmt.Println(viz.SpeciesTable(sol, theme))
	fmt.Println()

	m := particles.New(cfg.LensRadius, cfg.Seed)
	m.Update(sol)
	lens := viz.NewLens(40, 16, cfg.LensRadius)
	m.Draw(lens)
	fmt.Println(lens.Render(theme))
	fmt.Println()

	rows := int(cfg.BarHeight)
	scaler := bars.NewScaler(float64(rows))
	fmt.Println(viz.RenderBars(scaler.Bars(sol), func(b bars.Bar) float64 { return b.Height }, rows, theme))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	if args[0] == "all" {
		return runSweepAll(cmd)
	}
	cfg, sol, err := resolveSolution(cmd, args[0])
	if err != nil {
		return err
	}

	sc := sweep.DefaultConfig(sol.Kind)
	sc.Strength = sol.Strength
	sc.MinC, sc.MaxC, sc.Points = minC, maxC, points

	runner := sweep.New()
	for _, m := range sweep.DefaultMetrics() {
		runner.AddMetric(m)
	}

	var lr *tui.LiveRenderer
	if live {
		lr = tui.NewLiveRenderer(sc, frameRate, cfg.Seed, viz.GetTheme(cfg.Theme))
		runner.AddObserver(lr)
		lr.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := runner.Run(ctx, sc)
	if lr != nil {
		lr.Stop()
	}
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sc, result)
	if err != nil {
		return err
	}

	fmt.Printf("run saved: %s\n", runID)
	fmt.Printf("points: %d\n", len(result.Points))
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Printf("  %s: %.4g\n", name, result.Metrics[name])
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(result.PH(),
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("pH vs log C (%s)", sol.Kind)),
	))
	return nil
}

// runSweepAll sweeps every archetype in parallel with the strengths from the
// config.
func runSweepAll(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	kinds := chem.Kinds()
	cfgs := make([]sweep.Config, len(kinds))
	for i, kind := range kinds {
		sc := sweep.DefaultConfig(kind)
		sc.Strength = cfg.Solution(kind).Strength
		sc.MinC, sc.MaxC, sc.Points = minC, maxC, points
		cfgs[i] = sc
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sweep.NewBatch(sweep.DefaultMetrics).Run(ctx, cfgs)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tPH SPAN\tDISSOCIATED\tNEUTRAL")
	for i, result := range results {
		runID, err := st.Save(cfgs[i], result)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.3g%%\t%.2f\n",
			runID,
			cfgs[i].Kind,
			result.Metrics["ph_span"],
			result.Metrics["mean_dissociation"],
			result.Metrics["neutral_fraction"],
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tSTRENGTH\tMIN C\tMAX C\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3g\t%.3g\t%.3g\t%d\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Strength,
			run.MinC,
			run.MaxC,
			run.Points,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pts, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s\n", meta.Kind)
	fmt.Printf("points: %d\n\n", len(pts))

	result := &sweep.Result{Points: pts}
	fmt.Println(asciigraph.Plot(result.PH(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("pH"),
	))
	fmt.Println()

	scaler := bars.NewScaler(10)
	for _, sp := range chem.SpeciesOf(meta.Kind) {
		col := result.Column(sp.Key)
		heights := make([]float64, len(col))
		for i, v := range col {
			heights[i] = scaler.ValueToHeight(v)
		}
		fmt.Println(asciigraph.Plot(heights,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("[%s] bar height", sp.Symbol)),
		))
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	pts, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, *meta, pts)
}

func renderSolution(cmd *cobra.Command, args []string) error {
	cfg, sol, err := resolveSolution(cmd, args[0])
	if err != nil {
		return err
	}
	if svgPath == "" && pngPath == "" {
		return fmt.Errorf("nothing to render: pass --svg or --png")
	}
	theme := viz.GetTheme(cfg.Theme)

	if svgPath != "" {
		m := particles.New(cfg.LensRadius, cfg.Seed)
		m.Update(sol)
		lensFile := svgPath + "_lens.svg"
		if err := os.WriteFile(lensFile, []byte(export.LensToSVG(m, size, theme)), 0644); err != nil {
			return err
		}
		barsFile := svgPath + "_bars.svg"
		if err := os.WriteFile(barsFile, []byte(export.BarsToSVG(sol, size, size*2/3, theme)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s, %s\n", lensFile, barsFile)
	}

	if pngPath != "" {
		f, err := os.Create(pngPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.BarChartPNG(f, sol, size, size*2/3, theme); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	kinds := chem.Kinds()
	if len(args) == 1 {
		kind, err := chem.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []chem.Kind{kind}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tPRESET\tC (mol/L)\tK\tpH")
	for _, kind := range kinds {
		for _, name := range config.ListPresets(kind.String()) {
			sol, _ := config.GetPreset(kind.String(), name)
			k := "-"
			if kind.IsWeak() {
				k = fmt.Sprintf("%.2g", sol.Strength)
			}
			fmt.Fprintf(w, "%s\t%s\t%.3g\t%s\t%.2f\n", kind, name, sol.Concentration, k, sol.PH())
		}
	}
	return w.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
