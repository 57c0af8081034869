package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/qrand/internal/analysis"
	"github.com/san-kum/qrand/internal/config"
	"github.com/san-kum/qrand/internal/experiment"
	"github.com/san-kum/qrand/internal/live"
	"github.com/san-kum/qrand/internal/qrand"
	"github.com/san-kum/qrand/internal/render"
	"github.com/san-kum/qrand/internal/source"
	"github.com/san-kum/qrand/internal/storage"
)

var (
	dataDir   string
	samples   int
	seed      int64
	angle     float64
	p1        float64
	mitigate  bool
	shots     int
	errorRate float64
	alpha     float64
	showPlots bool
	// Word generation
	wordBits int
	// SVG output directory
	plotDir string
	// Config file
	configFile string
	// Preset name
	preset string
	// Source named by a preset or config file, used when no flag implies one
	fileSource string
)

// main is the entry point for the qrand CLI; it registers commands and
// flags and executes the root command. It exits the process with status 1
// if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "qrand",
		Short: "quantum randomness analysis lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qrand", "data directory")

	tossCmd := &cobra.Command{
		Use:   "toss",
		Short: "toss a quantum coin and analyze the outcomes",
		RunE:  runToss,
	}
	addSourceFlags(tossCmd)

	qutritCmd := &cobra.Command{
		Use:   "qutrit",
		Short: "sample a three-level generator and analyze the outcomes",
		RunE:  runQutrit,
	}
	qutritCmd.Flags().IntVar(&samples, "samples", 100, "number of outcomes")
	qutritCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	qutritCmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "chi-squared significance level")
	qutritCmd.Flags().BoolVar(&showPlots, "plot", false, "render terminal plots")

	rngCmd := &cobra.Command{
		Use:   "rng",
		Short: "generate multi-bit random words",
		RunE:  runWords,
	}
	rngCmd.Flags().IntVar(&wordBits, "bits", 8, "bits per word (1-16)")
	rngCmd.Flags().IntVar(&samples, "samples", 10, "number of words")
	rngCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "run the comparison suite across all source types",
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&samples, "samples", 200, "outcomes per experiment")
	batchCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "base random seed")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "generate outcomes with a live statistics dashboard",
		RunE:  runLive,
	}
	addSourceFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	reportCmd := &cobra.Command{
		Use:   "report [run_id]",
		Short: "re-analyze a stored run and print the report",
		Args:  cobra.ExactArgs(1),
		RunE:  reportRun,
	}
	reportCmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "chi-squared significance level")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata and outcomes as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run outcomes to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "write the four descriptive plots as SVG files",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&plotDir, "out", "plots", "output directory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available experiment presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCE\tSAMPLES")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\n", name, cfg.Source, cfg.Samples)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(tossCmd, qutritCmd, rngCmd, batchCmd, liveCmd, listCmd, reportCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&samples, "samples", 100, "number of outcomes")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&angle, "angle", 0, "Ry rotation in radians (biased coin)")
	cmd.Flags().Float64Var(&p1, "p1", -1, "target P(1) for a biased coin, overrides --angle")
	cmd.Flags().BoolVar(&mitigate, "mitigate", false, "apply majority-vote error mitigation")
	cmd.Flags().IntVar(&shots, "shots", config.DefaultShots, "majority-vote shots (odd)")
	cmd.Flags().Float64Var(&errorRate, "error-rate", 0, "simulated bit-flip rate")
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "chi-squared significance level")
	cmd.Flags().BoolVar(&showPlots, "plot", false, "render terminal plots")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and flags into one experiment
// config. Precedence from lowest to highest: preset, config file, flags
// explicitly set on the command line.
func resolveConfig(cmd *cobra.Command) (experiment.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return experiment.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyFileConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return experiment.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		applyFileConfig(cmd, cfg)
	}

	if p1 >= 0 {
		angle = source.AngleForProbability(p1)
	}

	ec := experiment.Config{
		Source:    sourceName(),
		Samples:   samples,
		Seed:      seed,
		Angle:     angle,
		Shots:     shots,
		ErrorRate: errorRate,
		Alpha:     alpha,
	}
	ec.Normalize()
	return ec, nil
}

func applyFileConfig(cmd *cobra.Command, cfg *config.Config) {
	if cfg.Source != "" {
		fileSource = cfg.Source
	}
	if !cmd.Flags().Changed("samples") && cfg.Samples > 0 {
		samples = cfg.Samples
	}
	if !cmd.Flags().Changed("seed") && cfg.Seed != 0 {
		seed = cfg.Seed
	}
	if !cmd.Flags().Changed("angle") && cfg.Angle != 0 {
		angle = cfg.Angle
	}
	if !cmd.Flags().Changed("p1") && cfg.Probability > 0 {
		p1 = cfg.Probability
	}
	if !cmd.Flags().Changed("shots") && cfg.Shots > 0 {
		shots = cfg.Shots
	}
	// An error rate only means something to the noisy variants; a fair-coin
	// config carries the default rate without asking for noise.
	if !cmd.Flags().Changed("error-rate") && cfg.ErrorRate > 0 &&
		(cfg.Source == "noisy" || cfg.Source == "mitigated") {
		errorRate = cfg.ErrorRate
	}
	if !cmd.Flags().Changed("alpha") && cfg.Alpha > 0 {
		alpha = cfg.Alpha
	}
	if !cmd.Flags().Changed("mitigate") && cfg.Source == "mitigated" {
		mitigate = true
	}
}

func sourceName() string {
	switch {
	case mitigate:
		return "mitigated"
	case errorRate > 0:
		return "noisy"
	case angle != 0:
		return "biased"
	case fileSource != "":
		return fileSource
	default:
		return "coin"
	}
}

func runToss(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return runExperiment(cfg)
}

func runQutrit(cmd *cobra.Command, args []string) error {
	cfg := experiment.Config{
		Source:  "qutrit",
		Samples: samples,
		Seed:    seed,
		Alpha:   alpha,
	}
	cfg.Normalize()
	return runExperiment(cfg)
}

func runExperiment(cfg experiment.Config) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	src, err := registry.GetSource(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s experiment (%d samples, seed %d)...\n\n", cfg.Source, cfg.Samples, cfg.Seed)
	start := time.Now()

	result, err := experiment.New(cfg, src).Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Source, cfg.Seed, result.Sequence, result.Report)
	if err != nil {
		return err
	}

	fmt.Print(render.Text(result.Report))

	if showPlots {
		fmt.Println()
		fmt.Print(render.Plots(result.Sequence, result.Report, cfg.Source))
	}

	fmt.Printf("\ncompleted in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runWords(cmd *cobra.Command, args []string) error {
	gen, err := source.NewWords(wordBits, seed)
	if err != nil {
		return err
	}

	words, err := gen.Generate(context.Background(), samples)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BITS\tVALUE")
	for _, word := range words {
		fmt.Fprintf(w, "%s\t%d\n", word.Bits, word.Value)
	}
	return w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXPERIMENT\tRUN\tBIAS\tENTROPY\tCHI2\tP\tVERDICT")

	for _, named := range experiment.Suite(samples, seed) {
		src, err := registry.GetSource(named.Config)
		if err != nil {
			return err
		}

		result, err := experiment.New(named.Config, src).Run(context.Background())
		if err != nil {
			return fmt.Errorf("%s: %w", named.Name, err)
		}

		runID, err := st.Save(named.Config.Source, named.Config.Seed, result.Sequence, result.Report)
		if err != nil {
			return err
		}

		r := result.Report
		verdict := "random"
		if !r.Random {
			verdict = "not random"
		}
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%.3f\t%.4f\t%s\n",
			named.Name, runID, r.Bias, r.Entropy, r.ChiSquare, r.PValue, verdict)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	src, err := registry.GetSource(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(live.NewModel(src, cfg.Samples, cfg.Source+" (live)"))
	final, err := p.Run()
	if err != nil {
		return err
	}

	seq := final.(live.Model).Sequence()
	if len(seq) == 0 {
		return nil
	}

	report, err := analysis.Analyze(seq, src.Alphabet(), analysis.WithSignificance(cfg.Alpha))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(render.Text(report))
	return nil
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
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tSAMPLES\tENTROPY\tP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%.4f\n",
			run.ID,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Summary["entropy"],
			run.Summary["p_value"],
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *analysis.Report, []int, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	seq, err := st.LoadOutcomes(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	report, err := analysis.Analyze(seq, qrand.Alphabet(meta.Alphabet), analysis.WithSignificance(alpha))
	if err != nil {
		return nil, nil, nil, err
	}

	return meta, report, seq, nil
}

func reportRun(cmd *cobra.Command, args []string) error {
	meta, report, _, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("source: %s\n\n", meta.Source)
	fmt.Print(render.Text(report))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, report, seq, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n\n", meta.ID)
	fmt.Print(render.Plots(seq, report, meta.Source))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	seq, err := st.LoadOutcomes(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, seq)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	seq, err := st.LoadOutcomes(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"index", "outcome"}); err != nil {
		return err
	}
	for i, v := range seq {
		if err := w.Write([]string{strconv.Itoa(i), strconv.Itoa(v)}); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, report, seq, err := loadRun(args[0])
	if err != nil {
		return err
	}

	files, err := render.SavePlots(seq, report, meta.Source, plotDir)
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
