// Command zkgraph runs demo instances of the GI and GNI interactive
// proofs and prints the aggregated verdict. It is a plain caller of the
// protocol engine: it builds two graphs, picks a protocol, and reads
// back a boolean.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"go.dedis.ch/zkgraph/graph"
	"go.dedis.ch/zkgraph/proof"
)

func main() {
	app := &cli.App{
		Name:  "zkgraph",
		Usage: "interactive zero-knowledge proofs over labeled graphs",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "rounds",
				Usage: "independent rounds; soundness error is 2^-rounds",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "parallel",
				Usage: "run the rounds concurrently",
			},
			&cli.BoolFlag{
				Name:  "cheat",
				Usage: "replace the honest prover with a cheating one",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every round verdict",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:   "gi",
				Usage:  "prove that the two demo graphs are isomorphic",
				Action: runGI,
			},
			{
				Name:   "gni",
				Usage:  "prove that the two demo graphs are not isomorphic",
				Action: runGNI,
			},
		},
		Action: pickProtocol,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Msgf("zkgraph: %v", err)
	}
}

func setupLogging(c *cli.Context) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return nil
}

// pickProtocol asks interactively when no command was given.
func pickProtocol(c *cli.Context) error {
	choice := ""
	prompt := &survey.Select{
		Message: "Which relation do you want proven?",
		Options: []string{"gi: the demo graphs are isomorphic", "gni: the demo graphs are not isomorphic"},
	}

	err := survey.AskOne(prompt, &choice)
	if err != nil {
		return xerrors.Errorf("prompt: %v", err)
	}

	if strings.HasPrefix(choice, "gi:") {
		return runGI(c)
	}
	return runGNI(c)
}

// giInstance is the isomorphic demo pair: a triangle 0-1-3 with the
// pendant vertex 2, and its relabeling under the witness [2,1,0,3].
func giInstance() (*graph.Graph, *graph.Graph, graph.Permutation) {
	g0 := graph.MustNew(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 0, V: 3}})
	g1 := graph.MustNew(4, []graph.Edge{{U: 2, V: 1}, {U: 1, V: 0}, {U: 1, V: 3}, {U: 2, V: 3}})
	return g0, g1, graph.Permutation{2, 1, 0, 3}
}

// gniInstance is the non-isomorphic demo pair: 4 edges vs 5 edges.
func gniInstance() (*graph.Graph, *graph.Graph) {
	g0 := graph.MustNew(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 0, V: 3}})
	g1 := graph.MustNew(4, []graph.Edge{{U: 0, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}, {U: 2, V: 1}, {U: 3, V: 0}})
	return g0, g1
}

func runGI(c *cli.Context) error {
	g0, g1, w := giInstance()

	var proto proof.Protocol
	if c.Bool("cheat") {
		// the cheater gets the harder job: a pair that is in fact
		// non-isomorphic, so every round catches it with probability 1/2
		h0, h1 := gniInstance()
		proto = proof.NewCheatingGI(h0, h1, nil)
		g0, g1 = h0, h1
	} else {
		var err error
		proto, err = proof.NewGI(g0, g1, w, nil)
		if err != nil {
			return xerrors.Errorf("build GI protocol: %v", err)
		}
	}

	return run(c, proto, g0, g1)
}

func runGNI(c *cli.Context) error {
	g0, g1 := gniInstance()

	var proto proof.Protocol
	if c.Bool("cheat") {
		// guessing prover against an isomorphic pair
		h0, h1, _ := giInstance()
		proto = proof.NewGuessingGNI(h0, h1, nil)
		g0, g1 = h0, h1
	} else {
		proto = proof.NewGNI(g0, g1, nil)
	}

	return run(c, proto, g0, g1)
}

func run(c *cli.Context, proto proof.Protocol, g0, g1 *graph.Graph) error {
	rounds := c.Int("rounds")

	log.Info().
		Str("protocol", proto.Name).
		Int("rounds", rounds).
		Msgf("G0 = %v, G1 = %v", g0, g1)

	var accept bool
	var err error
	if c.Bool("parallel") {
		accept, err = proof.RunParallel(proto, rounds)
	} else {
		accept, err = proof.Run(proto, rounds)
	}
	if err != nil {
		return xerrors.Errorf("run %q: %v", proto.Name, err)
	}

	if accept {
		fmt.Printf("verifier ACCEPTS after %d rounds (soundness error 2^-%d)\n", rounds, rounds)
	} else {
		fmt.Println("verifier REJECTS")
	}
	return nil
}
