package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/worldsim/internal/chart"
	"github.com/san-kum/worldsim/internal/storage"
	"github.com/san-kum/worldsim/internal/tui"
	"github.com/san-kum/worldsim/internal/world"
)

var (
	dataDir      string
	configFile   string
	dt           float64
	endTime      float64
	samplePeriod int
	// Policy levers, applied at the 1970 switch time
	brn1  float64
	nrun1 float64
	cign1 float64
	poln1 float64
	fc1   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "worldsim",
		Short: "forrester world model simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			selfCheck(os.Stdout)
			for _, f := range chart.Figures {
				out, err := chart.Render(f)
				if err != nil {
					return err
				}
				fmt.Print(out)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".worldsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and save the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().Float64Var(&dt, "dt", 0.2, "timestep (years)")
	runCmd.Flags().Float64Var(&endTime, "end-time", 2100, "run horizon (calendar year)")
	runCmd.Flags().IntVar(&samplePeriod, "sample", 20, "ticks between saved samples")
	runCmd.Flags().Float64Var(&brn1, "brn1", .04, "birth rate normal after 1970")
	runCmd.Flags().Float64Var(&nrun1, "nrun1", 1, "natural-resource usage normal after 1970")
	runCmd.Flags().Float64Var(&cign1, "cign1", .05, "capital-investment generation normal after 1970")
	runCmd.Flags().Float64Var(&poln1, "poln1", 1, "pollution normal after 1970")
	runCmd.Flags().Float64Var(&fc1, "fc1", 1, "food coefficient after 1970")

	figuresCmd := &cobra.Command{
		Use:   "figures [name...]",
		Short: "print the published strip charts",
		RunE:  printFigures,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id] [field...]",
		Short: "plot a saved run",
		Args:  cobra.MinimumNArgs(1),
		RunE:  plotRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range world.ListScenarios() {
				fmt.Fprintf(w, "%s\t%s\n", name, world.Scenarios[name].Desc)
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(runCmd, figuresCmd, plotCmd, listCmd, exportCSVCmd, exportJSONCmd, scenariosCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveConfig(cmd *cobra.Command, args []string) (string, world.Config, error) {
	scenario := "orig"
	if len(args) > 0 {
		scenario = args[0]
	}

	cfg, ok := world.GetScenario(scenario)
	if !ok {
		return "", world.Config{}, fmt.Errorf("unknown scenario: %s (available: %v)", scenario, world.ListScenarios())
	}

	if configFile != "" {
		loaded, err := world.Load(configFile)
		if err != nil {
			return "", world.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		world.Scenarios[scenario].Apply(&cfg)
	}

	// CLI flags override scenario and config file
	if cmd.Flags().Changed("dt") {
		cfg.DT = dt
	}
	if cmd.Flags().Changed("end-time") {
		cfg.EndTime = endTime
	}
	if cmd.Flags().Changed("brn1") {
		cfg.BRN1 = brn1
	}
	if cmd.Flags().Changed("nrun1") {
		cfg.NRUN1 = nrun1
	}
	if cmd.Flags().Changed("cign1") {
		cfg.CIGN1 = cign1
	}
	if cmd.Flags().Changed("poln1") {
		cfg.POLN1 = poln1
	}
	if cmd.Flags().Changed("fc1") {
		cfg.FC1 = fc1
	}

	return scenario, cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	fmt.Printf("running %s scenario...\n", scenario)
	start := time.Now()

	eng := world.New(cfg)
	var samples []world.Snapshot
	var last world.Snapshot
	for tick := 0; !eng.Completed(); tick++ {
		snap, err := eng.Tick()
		if err != nil {
			return err
		}
		if tick%samplePeriod == 0 {
			samples = append(samples, snap)
		}
		last = snap
	}
	elapsed := time.Since(start)

	runID, err := st.Save(scenario, cfg, samplePeriod, samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(samples))
	fmt.Printf("\nyear %.0f:\n", last.Time)
	fmt.Printf("  population:        %s\n", chart.FormatMagnitude(last.P))
	fmt.Printf("  capital:           %s\n", chart.FormatMagnitude(last.CI))
	fmt.Printf("  natural resources: %s\n", chart.FormatMagnitude(last.NR))
	fmt.Printf("  pollution ratio:   %.2f\n", last.POLR)
	fmt.Printf("  quality of life:   %.2f\n", last.QL)

	return nil
}

func printFigures(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = chart.ListFigures()
	}

	for _, name := range names {
		f, ok := chart.GetFigure(name)
		if !ok {
			return fmt.Errorf("unknown figure: %s (available: %v)", name, chart.ListFigures())
		}
		out, err := chart.Render(f)
		if err != nil {
			return err
		}
		fmt.Print(out)
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	fields := args[1:]
	if len(fields) == 0 {
		fields = []string{"p", "polr", "ql"}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	header, rows, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(rows))

	for _, field := range fields {
		idx, ok := col[field]
		if !ok {
			return fmt.Errorf("unknown field: %s", field)
		}
		data := make([]float64, len(rows))
		for i, row := range rows {
			data[i] = row[idx]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(field+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tYEARS\tDT\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f-%.0f\t%.2f\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.StartTime,
			run.EndTime,
			run.DT,
			run.Samples,
		)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	header, rows, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	header, rows, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Metadata *storage.RunMetadata `json:"metadata"`
		Fields   []string             `json:"fields"`
		Samples  [][]float64          `json:"samples"`
	}{meta, header, rows}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runLive(cmd *cobra.Command, args []string) error {
	scenario, cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	m := tui.NewModel(scenario, cfg)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
