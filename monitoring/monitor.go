// Package monitoring turns a breath-cycle run into a small web server so
// that the live state can be inspected and the engine paused and resumed
// from outside the process.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/ventlab/breath/breath"
	"github.com/ventlab/breath/hal"
	"github.com/ventlab/breath/timing"
)

// Monitor exposes a running breath cycle over HTTP.
type Monitor struct {
	engine     timing.Engine
	cycle      *breath.Cycle
	bank       hal.Bank
	portNumber int
	url        string
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port the monitor listens on. Port 0 picks a
// random free port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine registers the engine that drives the run.
func (m *Monitor) RegisterEngine(e timing.Engine) {
	m.engine = e
}

// RegisterCycle registers the breath cycle to be monitored.
func (m *Monitor) RegisterCycle(c *breath.Cycle) {
	m.cycle = c
}

// RegisterBank registers the line bank whose levels are reported.
func (m *Monitor) RegisterBank(b hal.Bank) {
	m.bank = b
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := m.router()

	actualPort := ":0"
	if m.portNumber != 0 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring breath cycle with %s\n", m.url)

	go func() {
		err := http.Serve(listener, r)
		dieOnErr(err)
	}()
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/pause", m.pauseEngine)
	r.HandleFunc("/api/continue", m.continueEngine)
	r.HandleFunc("/api/run", m.run)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/cycle", m.cycleDetails)
	r.HandleFunc("/api/lines", m.lines)
	r.HandleFunc("/api/resource", m.listResources)

	return r
}

// OpenDashboard opens the monitor in the default browser.
func (m *Monitor) OpenDashboard() {
	if m.url == "" {
		panic("the server must be started before opening the dashboard")
	}

	err := browser.OpenURL(m.url + "/api/cycle")
	dieOnErr(err)
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) run(_ http.ResponseWriter, _ *http.Request) {
	go func() {
		err := m.engine.Run()
		dieOnErr(err)
	}()
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%.10f}", m.engine.CurrentTime())
}

func (m *Monitor) cycleDetails(w http.ResponseWriter, _ *http.Request) {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(m.cycle)
	serializer.SetMaxDepth(1)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

func (m *Monitor) lines(w http.ResponseWriter, _ *http.Request) {
	levels := make(map[string]bool, hal.NumLines)
	for i := 0; i < hal.NumLines; i++ {
		l := hal.Line(i)
		levels[l.String()] = m.bank.Read(l)
	}

	err := json.NewEncoder(w).Encode(levels)
	dieOnErr(err)
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	p, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	memInfo, err := p.MemoryInfo()
	dieOnErr(err)

	cpuPercent, err := p.CPUPercent()
	dieOnErr(err)

	fmt.Fprintf(w, "{\"rss\":%d,\"cpu_percent\":%.2f}",
		memInfo.RSS, cpuPercent)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
