// Command spviz records and replays step-by-step traces of Dijkstra and
// Bellman-Ford over generated or hand-authored graphs.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spviz/builder"
	"github.com/katalvlaran/spviz/config"
	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/session"
	"github.com/katalvlaran/spviz/timeline"
	"github.com/katalvlaran/spviz/trace"
)

// Version is the current spviz CLI version
var Version = "0.1.0"

var (
	configPath    string
	algorithmFlag string
	sourceFlag    int
	destFlag      int
	seedFlag      int64
	nodesFlag     int
	densityFlag   float64
	negativeFlag  bool
	intervalFlag  time.Duration
	speedFlag     int
	verboseFlag   bool
	jsonFlag      bool
	eventsFlag    bool
	outPath       string
)

var rootCmd = &cobra.Command{
	Use:     "spviz",
	Short:   "spviz - step-by-step shortest-path tracer",
	Long:    `spviz records every decision Dijkstra's algorithm or Bellman-Ford makes on a directed weighted graph and replays it one step at a time.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			GetLogger().SetLevel(LogLevelDebug)
		}
	},
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print every step of the trace",
	Long: `Record the trace and print each step: explanation, distance table,
priority queue or iteration, and touched edges.

With --events only significant steps are printed (a path edge confirmed, a
node visited, a negative cycle found). With --json the whole trace is
written as JSON.`,
	RunE: runRun,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Replay the trace on a timer",
	Long:  `Replay the trace at --interval (or --speed 1..5) until it finishes or is interrupted.`,
	RunE:  runPlay,
}

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Print the final shortest-path answer",
	RunE:  runAnswer,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random graph as a YAML document",
	Long:  `Generate a random graph and write it as a config document that the other commands accept via --config.`,
	RunE:  runGenerate,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&algorithmFlag, "algorithm", "a", "", "dijkstra | bellmanford (overrides config)")
	pf.IntVarP(&sourceFlag, "source", "s", 0, "Source node ID (overrides config and generator)")
	pf.IntVarP(&destFlag, "dest", "d", -1, "Destination node ID for the answer view")
	pf.Int64Var(&seedFlag, "seed", 0, "Seed for random generation")
	pf.IntVarP(&nodesFlag, "nodes", "n", 0, "Node count for random generation")
	pf.Float64Var(&densityFlag, "density", 0, "Edge density for random generation, 0..1")
	pf.BoolVar(&negativeFlag, "allow-negative", false, "Allow negative edges (Bellman-Ford only)")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "Debug logging on stderr")

	runCmd.Flags().BoolVar(&jsonFlag, "json", false, "Output the trace as JSON")
	runCmd.Flags().BoolVar(&eventsFlag, "events", false, "Print significant steps only")

	playCmd.Flags().DurationVar(&intervalFlag, "interval", 0, "Replay tick (overrides config)")
	playCmd.Flags().IntVar(&speedFlag, "speed", 0, "Replay speed 1 (slow) .. 5 (fast)")

	answerCmd.Flags().BoolVar(&jsonFlag, "json", false, "Output the answer view as JSON")

	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")

	rootCmd.AddCommand(runCmd, playCmd, answerCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config (or the defaults) and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
		GetLogger().Debugf("loaded %s", configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		alg, err := trace.ParseAlgorithm(algorithmFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Algorithm = alg
	}
	if flags.Changed("source") {
		cfg.Source = sourceFlag
	}
	if flags.Changed("dest") {
		d := destFlag
		cfg.Destination = &d
	}
	if flags.Changed("seed") {
		s := seedFlag
		cfg.Random.Seed = &s
	}
	if flags.Changed("nodes") {
		cfg.Random.Nodes = nodesFlag
	}
	if flags.Changed("density") {
		cfg.Random.Density = densityFlag
	}
	if flags.Changed("allow-negative") {
		cfg.Random.AllowNegative = negativeFlag
	}
	if flags.Changed("interval") {
		cfg.Interval = intervalFlag
	}
	if flags.Changed("speed") {
		cfg.Interval = session.SpeedInterval(speedFlag)
	}
	if cfg.Algorithm == trace.Dijkstra && cfg.Random.AllowNegative {
		GetLogger().Warnf("negative edges are not generated for Dijkstra")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openSession builds the graph and a Session over it.
func openSession(cmd *cobra.Command, opts ...session.Option) (*session.Session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	g, src, err := cfg.BuildGraph()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("source") {
		src = core.NodeID(sourceFlag)
	}
	GetLogger().Debugf("graph: %d nodes, %d edges, source %s, %s", g.NodeCount(), g.EdgeCount(), core.Label(src), cfg.Algorithm)

	s := session.New(append([]session.Option{session.WithInterval(cfg.Interval)}, opts...)...)
	s.SetAlgorithm(cfg.Algorithm)
	if err := s.LoadGraph(g, src); err != nil {
		s.Close()
		return nil, err
	}
	if dest := cfg.DestinationID(); dest != timeline.NoDestination {
		if err := s.SetDestination(dest); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	tr, err := s.Trace()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonFlag {
		return printJSON(out, tr)
	}

	nodes := s.Graph().Nodes()
	for {
		var v timeline.View
		if eventsFlag {
			v, err = s.SkipToEvent()
		} else {
			v, err = s.Step()
		}
		if err != nil {
			return err
		}
		printView(out, v, nodes)
		if v.Index >= tr.Len() {
			break
		}
	}
	printResult(out, tr, nodes)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var nodes []core.Node
	done := make(chan struct{})

	s, err := openSession(cmd,
		session.WithOnStep(func(v timeline.View) { printView(out, v, nodes) }),
		session.WithOnFinish(func(timeline.View) { close(done) }),
	)
	if err != nil {
		return err
	}
	defer s.Close()
	nodes = s.Graph().Nodes()

	tr, err := s.Trace()
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		fmt.Fprintln(out, "empty graph, nothing to replay")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	GetLogger().Infof("replaying %d steps every %s", tr.Len(), s.Interval())
	if err := s.Start(ctx); err != nil {
		return err
	}
	select {
	case <-done:
		printResult(out, tr, nodes)
	case <-ctx.Done():
		s.Close()
		GetLogger().Warnf("interrupted at step %d of %d", s.View().Index, tr.Len())
	}
	return nil
}

func runAnswer(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	v, err := s.ShowAnswer()
	if err != nil {
		return err
	}
	if jsonFlag {
		return printJSON(cmd.OutOrStdout(), v)
	}
	printView(cmd.OutOrStdout(), v, s.Graph().Nodes())
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, meta, err := builder.Generate(cfg.RandomParams(), cfg.BuilderOptions()...)
	if err != nil {
		return err
	}
	GetLogger().Infof("generated %d nodes, %d edges, source %s, negative cycle %t",
		g.NodeCount(), g.EdgeCount(), core.Label(meta.Source), meta.NegativeCycle)

	data, err := config.MarshalGraph(g, cfg.Algorithm, meta.Source)
	if err != nil {
		return err
	}
	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	GetLogger().Infof("wrote %s", outPath)
	return nil
}

// printResult writes the final distances and, without a negative cycle,
// the path to every reachable node.
func printResult(w io.Writer, tr *trace.Trace, nodes []core.Node) {
	if tr.NegativeCycle {
		fmt.Fprintln(w, "negative cycle: no shortest paths exist")
		return
	}
	ids := make([]int, 0, len(tr.Result.Paths))
	for id := range tr.Result.Paths {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		path := tr.Result.Paths[core.NodeID(id)]
		hops := make([]string, len(path))
		for i, n := range path {
			hops[i] = label(nodes, n)
		}
		fmt.Fprintf(w, "%s: %s via %s\n", label(nodes, core.NodeID(id)), tr.Result.Distances[id], strings.Join(hops, "→"))
	}
}
