// Command netlocality drives the network-locality analysis pipeline.
//
// Usage:
//
//	netlocality SOURCE... ACTION...
//
// Sources:
//
//	gen_watts_strogatz SIZE AVG_DEG REWIRING_PROB
//	load_file PATH WEIGHTED{0,1} DIRECTED{0,1}
//
// Actions:
//
//	convert_g_tilda PATH     derive L and g̃, write g̃ as plaintext
//	dtv_k SRC K              single-source k-bounded distances
//	dtv_tau SRC TAU          single-source τ-bounded distances
//	dbv_k K                  all-pairs k-bounded distances
//	dbv_tau TAU              all-pairs τ-bounded distances
//	s_avg GAMMA              average γ-neighborhood size
//	l_reduction_avg NET_ID   L-reduction sweep (L=1..100) into results.db
//
// Worker-pool concurrency follows NETLOCALITY_WORKERS when set. Exit code 0
// on success, 1 on any fatal error.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/LivelyCarpet87/network-locality-exploration/builder"
	"github.com/LivelyCarpet87/network-locality-exploration/edgeio"
	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
	"github.com/LivelyCarpet87/network-locality-exploration/geodesic"
	"github.com/LivelyCarpet87/network-locality-exploration/laplacian"
	"github.com/LivelyCarpet87/network-locality-exploration/neighborhood"
	"github.com/LivelyCarpet87/network-locality-exploration/store"
)

const (
	resultsDB = "results.db"
	sweepMaxL = 100
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	el, rest, err := loadSource(args)
	if err != nil {
		return err
	}
	return runAction(el, rest)
}

// workerCount reads NETLOCALITY_WORKERS; 0 (unset or not a positive integer)
// leaves each package's default worker count in place.
func workerCount() int {
	if s := os.Getenv("NETLOCALITY_WORKERS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func geodesicOpts() []geodesic.Option {
	if n := workerCount(); n > 0 {
		return []geodesic.Option{geodesic.WithWorkers(n)}
	}
	return nil
}

func neighborhoodOpts() []neighborhood.Option {
	if n := workerCount(); n > 0 {
		return []neighborhood.Option{neighborhood.WithWorkers(n)}
	}
	return nil
}

func laplacianOpts() []laplacian.Option {
	if n := workerCount(); n > 0 {
		return []laplacian.Option{laplacian.WithWorkers(n)}
	}
	return nil
}

// loadSource consumes the source arguments and returns the input graph plus
// the remaining (action) arguments.
func loadSource(args []string) (*edgelist.EdgeList, []string, error) {
	if len(args) < 1 {
		return nil, nil, fmt.Errorf("netlocality: missing edgelist source")
	}
	switch args[0] {
	case "gen_watts_strogatz":
		if len(args) < 4 {
			return nil, nil, fmt.Errorf("netlocality: gen_watts_strogatz needs SIZE AVG_DEG REWIRING_PROB")
		}
		size, err := strconv.Atoi(args[1])
		if err != nil || size <= 0 {
			return nil, nil, fmt.Errorf("netlocality: invalid network size %q", args[1])
		}
		avgDeg, err := strconv.Atoi(args[2])
		if err != nil || avgDeg <= 0 || avgDeg%2 != 0 {
			return nil, nil, fmt.Errorf("netlocality: invalid AVG_DEG %q (must be positive and even)", args[2])
		}
		p, err := strconv.ParseFloat(args[3], 64)
		if err != nil || p < 0 || p > 1 {
			return nil, nil, fmt.Errorf("netlocality: invalid REWIRING_PROB %q (must be in [0,1])", args[3])
		}
		el, err := builder.WattsStrogatz(size, avgDeg, p, rand.New(rand.NewSource(rand.Int63())))
		if err != nil {
			return nil, nil, fmt.Errorf("netlocality: %w", err)
		}
		return el, args[4:], nil

	case "load_file":
		if len(args) < 4 {
			return nil, nil, fmt.Errorf("netlocality: load_file needs PATH WEIGHTED DIRECTED")
		}
		weighted := args[2] == "1"
		directed := args[3] == "1"
		el, err := edgeio.FromFile(args[1], weighted)
		if err != nil {
			return nil, nil, fmt.Errorf("netlocality: %w", err)
		}
		el.SetDirectional(directed)
		return el, args[4:], nil

	default:
		return nil, nil, fmt.Errorf("netlocality: invalid edgelist source %q", args[0])
	}
}

func runAction(el *edgelist.EdgeList, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("netlocality: missing action")
	}
	switch args[0] {
	case "convert_g_tilda":
		if len(args) < 2 {
			return fmt.Errorf("netlocality: convert_g_tilda needs PATH")
		}
		lap, err := laplacian.NegLaplacian(el, laplacianOpts()...)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		gt, err := laplacian.GTilde(lap, laplacianOpts()...)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		return edgeio.Save(args[1], gt)

	case "dtv_k":
		src, k, err := twoInts(args, "SRC", "K")
		if err != nil {
			return err
		}
		if src < 0 || src > el.MaxVertex() {
			return fmt.Errorf("netlocality: SRC %d outside [0,%d]", src, el.MaxVertex())
		}
		dtv, err := geodesic.DistanceK(el, src, k)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		printDTV(dtv)
		return nil

	case "dtv_tau":
		if len(args) < 3 {
			return fmt.Errorf("netlocality: dtv_tau needs SRC TAU")
		}
		src, err := strconv.Atoi(args[1])
		if err != nil || src < 0 || src > el.MaxVertex() {
			return fmt.Errorf("netlocality: invalid SRC %q", args[1])
		}
		tau, err := strconv.ParseFloat(args[2], 64)
		if err != nil || tau <= 0 {
			return fmt.Errorf("netlocality: invalid TAU %q", args[2])
		}
		dtv, err := geodesic.DistanceTau(el, src, tau)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		printDTV(dtv)
		return nil

	case "dbv_k":
		if len(args) < 2 {
			return fmt.Errorf("netlocality: dbv_k needs K")
		}
		k, err := strconv.Atoi(args[1])
		if err != nil || k <= 0 {
			return fmt.Errorf("netlocality: invalid K %q", args[1])
		}
		dbv, err := geodesic.CrossDistanceK(el, k, geodesicOpts()...)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		printDBV(dbv)
		return nil

	case "dbv_tau":
		if len(args) < 2 {
			return fmt.Errorf("netlocality: dbv_tau needs TAU")
		}
		tau, err := strconv.ParseFloat(args[1], 64)
		if err != nil || tau <= 0 {
			return fmt.Errorf("netlocality: invalid TAU %q", args[1])
		}
		dbv, err := geodesic.CrossDistanceTau(el, tau, geodesicOpts()...)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		printDBV(dbv)
		return nil

	case "s_avg":
		if len(args) < 2 {
			return fmt.Errorf("netlocality: s_avg needs GAMMA")
		}
		gamma, err := strconv.ParseFloat(args[1], 64)
		if err != nil || gamma <= 0 || gamma >= 1 {
			return fmt.Errorf("netlocality: invalid GAMMA %q (must be in (0,1))", args[1])
		}
		lap, err := laplacian.NegLaplacian(el, laplacianOpts()...)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		gt, err := laplacian.GTilde(lap, laplacianOpts()...)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		sAvg, err := neighborhood.SAvg(lap, gt, gamma, neighborhoodOpts()...)
		if err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
		fmt.Printf("S_avg= %g\n", sAvg)
		return nil

	case "l_reduction_avg":
		if len(args) < 2 {
			return fmt.Errorf("netlocality: l_reduction_avg needs NET_ID")
		}
		return reductionSweep(el, args[1])

	default:
		return fmt.Errorf("netlocality: invalid action %q", args[0])
	}
}

// reductionSweep derives (L, g̃) once and records the reduction average for
// every neighborhood size 1..sweepMaxL into the results database.
func reductionSweep(el *edgelist.EdgeList, netID string) error {
	lap, err := laplacian.NegLaplacian(el, laplacianOpts()...)
	if err != nil {
		return fmt.Errorf("netlocality: %w", err)
	}
	gt, err := laplacian.GTilde(lap, laplacianOpts()...)
	if err != nil {
		return fmt.Errorf("netlocality: %w", err)
	}

	db, err := store.Open(resultsDB)
	if err != nil {
		return fmt.Errorf("netlocality: %w", err)
	}
	defer db.Close()

	for l := 1; l <= sweepMaxL; l++ {
		avg, err := neighborhood.ReductionRateAverage(lap, gt, l, neighborhoodOpts()...)
		if err != nil {
			return fmt.Errorf("netlocality: L=%d: %w", l, err)
		}
		if err := store.SaveReductionAverage(db, netID, l, avg); err != nil {
			return fmt.Errorf("netlocality: %w", err)
		}
	}
	return nil
}

func twoInts(args []string, aName, bName string) (int, int, error) {
	if len(args) < 3 {
		return 0, 0, fmt.Errorf("netlocality: %s needs %s %s", args[0], aName, bName)
	}
	a, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("netlocality: invalid %s %q", aName, args[1])
	}
	b, err := strconv.Atoi(args[2])
	if err != nil || b <= 0 {
		return 0, 0, fmt.Errorf("netlocality: invalid %s %q", bName, args[2])
	}
	return a, b, nil
}

func printDTV(dtv geodesic.DistanceToVertices) {
	for _, dest := range sortedKeys(dtv) {
		dp := dtv[dest]
		fmt.Printf("-> %d = INFO:%g | NET:%d\n", dest, dp.InfoDistance, dp.NetDistance)
	}
}

func printDBV(dbv geodesic.DistanceBetweenVertices) {
	srcs := make([]int, 0, len(dbv))
	for s := range dbv {
		srcs = append(srcs, s)
	}
	sort.Ints(srcs)
	for _, src := range srcs {
		dtv := dbv[src]
		for _, dest := range sortedKeys(dtv) {
			dp := dtv[dest]
			fmt.Printf("%d -> %d = INFO:%g | NET:%d\n", src, dest, dp.InfoDistance, dp.NetDistance)
		}
	}
}

func sortedKeys(dtv geodesic.DistanceToVertices) []int {
	keys := make([]int, 0, len(dtv))
	for k := range dtv {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
