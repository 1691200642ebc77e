// The breath command runs the breath-cycle orchestrator against a simulated
// line bank.
package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ventlab/breath/breath"
	"github.com/ventlab/breath/hal"
	"github.com/ventlab/breath/indicator"
	"github.com/ventlab/breath/monitoring"
	"github.com/ventlab/breath/persist"
	"github.com/ventlab/breath/timing"
)

var rootCmd = &cobra.Command{
	Use:   "breath",
	Short: "breath sequences a periodic mechanical breath cycle on a line bank",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the breath cycle",
	Run:   runBreath,
}

var (
	period            time.Duration
	cycles            uint64
	violateAtCycle    uint64
	dbPath            string
	recordTransitions bool
	withMonitor       bool
	monitorPort       int
	openDashboard     bool
	logEvents         bool
	logTransitions    bool
)

func init() {
	_ = godotenv.Load()

	f := runCmd.Flags()
	f.DurationVar(&period, "period", 100*time.Millisecond,
		"tick period of the rhythm timer")
	f.Uint64Var(&cycles, "cycles", 64,
		"number of cycles to run, 0 to run forever")
	f.Uint64Var(&violateAtCycle, "violate-at-cycle", 0,
		"assert the violation interlock during the exhale of the n-th "+
			"cycle, 0 to never")
	f.StringVar(&dbPath, "db", os.Getenv("BREATH_DB"),
		"sqlite database path for toll remainders, empty to discard them")
	f.BoolVar(&recordTransitions, "record-transitions", false,
		"also record every state transition into the database")
	f.BoolVar(&withMonitor, "monitor", false,
		"serve the monitoring API while running")
	f.IntVar(&monitorPort, "monitor-port", 0,
		"port for the monitoring API, 0 picks a free port")
	f.BoolVar(&openDashboard, "open-dashboard", false,
		"open the monitoring API in the default browser")
	f.BoolVar(&logEvents, "log-events", false,
		"log every engine event")
	f.BoolVar(&logTransitions, "log-transitions", false,
		"log every state transition")

	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func runBreath(_ *cobra.Command, _ []string) {
	engine := timing.NewSerialEngine()
	bank := hal.NewMemBank()
	logger := log.New(os.Stderr, "", 0)

	var store breath.PersistStore = persist.NullStore{}
	var recorder persist.DataRecorder
	if dbPath != "" {
		recorder = persist.NewRecorder(dbPath)
		store = persist.NewTollStore(recorder, engine)
	}

	cycle := breath.Builder{}.
		WithEngine(engine).
		WithFreq(timing.Freq(1.0/period.Seconds()) * timing.Hz).
		WithBank(bank).
		WithStore(store).
		WithIndicator(indicator.Multi{
			indicator.NewLogIndicator(logger),
			indicator.NewLineIndicator(bank),
		}).
		WithMaxCycles(cycles).
		Build("BreathCycle")

	if logEvents {
		engine.AcceptHook(timing.NewEventLogger(logger))
	}

	if logTransitions {
		cycle.AcceptHook(breath.NewTransitionLogger(logger))
	}

	if recorder != nil && recordTransitions {
		cycle.AcceptHook(persist.NewTransitionRecorder(recorder, engine))
	}

	if violateAtCycle > 0 {
		cycle.AcceptHook(&violationInjector{
			bank:    bank,
			atCycle: violateAtCycle,
		})
	}

	if withMonitor {
		m := monitoring.NewMonitor().WithPortNumber(monitorPort)
		m.RegisterEngine(engine)
		m.RegisterCycle(cycle)
		m.RegisterBank(bank)
		m.StartServer()

		if openDashboard {
			m.OpenDashboard()
		}
	}

	cycle.TickNow()

	if err := engine.Run(); err != nil {
		logger.Printf("engine: %v", err)
		atexit.Exit(1)
	}

	logger.Printf(
		"completed %d cycles with %d violations in %.1fs of bank time, "+
			"torque toll %d",
		cycle.CompletedCycles(), cycle.Violations(),
		float64(engine.CurrentTime()), cycle.TorqueToll())
}
