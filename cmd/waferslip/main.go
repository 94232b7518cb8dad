package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fab-twin/waferslip/internal/config"
	"github.com/fab-twin/waferslip/internal/cosim"
	"github.com/fab-twin/waferslip/internal/fmi"
	"github.com/fab-twin/waferslip/internal/storage"
	"github.com/fab-twin/waferslip/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	noSave     bool
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waferslip",
		Short: "wafer slip co-simulation lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".waferslip", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario against the slip model",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")
	runCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list stock scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	varsCmd := &cobra.Command{
		Use:   "vars",
		Short: "print the model's FMI variable table",
		RunE:  printVariables,
	}

	rootCmd.AddCommand(runCmd, presetsCmd, listCmd, plotCmd, exportCmd, varsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenario(args []string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if len(args) == 1 {
		cfg := config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(args)
	if err != nil {
		return err
	}
	sc := cfg.Scenario()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	master := cosim.New(fmi.NewAdapter())
	trace, err := master.Run(ctx, sc)
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotTrace(trace, plotWidth, plotHeight))
	fmt.Println()
	fmt.Println(viz.Summary(sc.Name, trace))

	if !noSave {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(sc, trace)
		if err != nil {
			return err
		}
		fmt.Printf("saved as %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tWAFER\tALARMS\tMAX SLIP\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%s\n",
			r.ID, r.Scenario, r.WaferType, r.SlipAlarms, r.MaxSlipFactor,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := store.LoadTrace(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotTrace(trace, plotWidth, plotHeight))
	fmt.Println()
	fmt.Println(viz.Summary(meta.Scenario, trace))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func printVariables(cmd *cobra.Command, args []string) error {
	fmt.Printf("model: %s\nguid:  %s\nfmi:   %s (%s)\n\n", fmi.ModelName, fmi.ModelGUID, fmi.Version(), fmi.TypesPlatform())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REF\tNAME\tTYPE\tCAUSALITY")
	for _, v := range fmi.ModelVariables() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", v.Ref, v.Name, v.Type, v.Causality)
	}
	return w.Flush()
}
