package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler/refinement"
	"github.com/katalvlaran/symreduce/problem"
	"github.com/katalvlaran/symreduce/search"
	"github.com/katalvlaran/symreduce/symio"
)

type cliFlags struct {
	verbose      bool
	graphPath    string
	noCNF        bool
	symmetryOnly bool
	incremental  bool
	threshold    int
	length       int
	prefix       []int
	inputPath    string
	outputPath   string
	configPath   string
}

func rootCommand() *cobra.Command {
	var f cliFlags

	cmd := &cobra.Command{
		Use:          "symreduce",
		Short:        "symreduce enumerates canonical symmetry-reduced prefixes of a CNF/graph instance",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(&f, cmd); err != nil {
				return err
			}
			return run(&f)
		},
	}

	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable diagnostic logging")
	cmd.Flags().StringVarP(&f.graphPath, "graph", "g", "", "path to an explicit symmetry graph block")
	cmd.Flags().BoolVarP(&f.noCNF, "no-cnf", "n", false, "skip the CNF block")
	cmd.Flags().BoolVarP(&f.symmetryOnly, "symmetry-only", "s", false, "check the input's symmetry invariants only, emit nothing")
	cmd.Flags().BoolVarP(&f.incremental, "incremental", "i", false, "emit incremental cube format instead of textual")
	cmd.Flags().IntVarP(&f.threshold, "threshold", "t", 0, "automorphism-group size threshold")
	cmd.Flags().IntVarP(&f.length, "length", "l", 0, "target prefix length K")
	cmd.Flags().IntSliceVarP(&f.prefix, "prefix", "p", nil, "initial prefix vertices")
	cmd.Flags().StringVarP(&f.inputPath, "file", "f", "", "input file path (default stdin)")
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "optional TOML/YAML config file for threshold/length defaults")

	return cmd
}

func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loadConfig layers viper defaults, an optional config file and
// SYMREDUCE_* environment variables under the threshold/length flags
// (spec SPEC_FULL.md §B.3); CLI flags always win.
func loadConfig(f *cliFlags, flags *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("SYMREDUCE")
	v.AutomaticEnv()
	v.SetDefault("threshold", 0)
	v.SetDefault("length", 0)

	if f.configPath != "" {
		v.SetConfigFile(f.configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("symreduce: reading config %s: %w", f.configPath, err)
		}
	}

	if !flags.Flags().Changed("threshold") {
		f.threshold = v.GetInt("threshold")
	}
	if !flags.Flags().Changed("length") {
		f.length = v.GetInt("length")
	}
	return nil
}

func run(f *cliFlags) error {
	logger := newLogger(f.verbose)

	var in io.Reader = os.Stdin
	if f.inputPath != "" {
		file, err := os.Open(f.inputPath)
		if err != nil {
			return fmt.Errorf("symreduce: %w", err)
		}
		defer file.Close()
		in = file
	}

	blocks, err := symio.SplitBlocks(in)
	if err != nil {
		return err
	}

	prob, baseCNF, err := buildProblem(f, blocks, logger)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if f.outputPath != "" {
		file, err := os.Create(f.outputPath)
		if err != nil {
			return fmt.Errorf("symreduce: %w", err)
		}
		defer file.Close()
		out = file
	}

	eng, err := search.New(prob, refinement.New(), search.WithLogger(logger))
	if err != nil {
		return err
	}
	if f.symmetryOnly {
		return prob.Validate(refinement.New())
	}

	var emissions []symio.Emission
	var cubes [][]int
	for {
		rec, err := eng.Next()
		if err != nil {
			return err
		}
		if rec == nil {
			break
		}
		emissions = append(emissions, toEmission(rec))
		cubes = append(cubes, toCubeLiterals(rec, prob.Values[0]))
	}

	_ = baseCNF
	if f.incremental {
		return symio.WriteIncrementalCube(out, cubes)
	}
	return symio.WriteTextual(out, emissions)
}

func toEmission(rec *search.Record) symio.Emission {
	varLegend := make([]string, rec.Size)
	valLegend := make([]string, rec.Size)
	for i := range rec.Vars {
		varLegend[i] = fmt.Sprintf("x%d", rec.Vars[i])
		valLegend[i] = fmt.Sprintf("v%d", rec.Values[i])
	}
	return symio.Emission{VarLegend: varLegend, ValLegend: valLegend, Aut: rec.Aut}
}

// toCubeLiterals negates the literal of every position whose value
// vertex is falseVertex (R[0]).
func toCubeLiterals(rec *search.Record, falseVertex int) []int {
	lits := make([]int, rec.Size)
	for i := range rec.Vars {
		lits[i] = rec.Vars[i] + 1
		if rec.Values[i] == falseVertex {
			lits[i] = -lits[i]
		}
	}
	return lits
}

// buildProblem assembles a problem.Problem from the parsed blocks: a
// symmetry graph (from -g or a "p edge" block), a variable declaration
// and a value declaration are mandatory; a prefix block is optional. A
// CNF block does not yield a base graph; it only makes the value
// declaration go through NormalizeCNFValues.
func buildProblem(f *cliFlags, blocks []symio.Block, logger *log.Logger) (*problem.Problem, *symio.CNF, error) {
	var baseCNF *symio.CNF
	var symGraph *symio.SymmetryGraph
	var varsDecl, valsDecl *symio.Declaration
	var prefixBlock *symio.Prefix

	for _, b := range blocks {
		switch b.Keyword {
		case "prefix":
			p, err := symio.ParsePrefix(newStringReader(b.Body))
			if err != nil {
				return nil, nil, err
			}
			prefixBlock = p
		case "cnf":
			if f.noCNF {
				continue
			}
			cnf, err := symio.ParseCNF(newStringReader(b.Body))
			if err != nil {
				return nil, nil, err
			}
			baseCNF = cnf
		case "edge":
			g, err := symio.ParseSymmetryGraph(newStringReader(b.Body))
			if err != nil {
				return nil, nil, err
			}
			symGraph = g
		case "variable":
			d, err := symio.ParseVariableDeclaration(newStringReader(b.Body))
			if err != nil {
				return nil, nil, err
			}
			varsDecl = d
		case "value":
			d, err := symio.ParseValueDeclaration(newStringReader(b.Body))
			if err != nil {
				return nil, nil, err
			}
			if baseCNF != nil {
				d, err = symio.NormalizeCNFValues(d)
				if err != nil {
					return nil, nil, err
				}
			}
			valsDecl = d
		}
	}

	if f.graphPath != "" {
		file, err := os.Open(f.graphPath)
		if err != nil {
			return nil, nil, fmt.Errorf("symreduce: %w", err)
		}
		defer file.Close()
		g, err := symio.ParseSymmetryGraph(file)
		if err != nil {
			return nil, nil, err
		}
		symGraph = g
	}

	if symGraph == nil {
		return nil, nil, fmt.Errorf("symreduce: no symmetry graph available (supply -g or a \"p edge\" block)")
	}
	if varsDecl == nil || valsDecl == nil {
		return nil, nil, fmt.Errorf("symreduce: both a variable and a value declaration block are required")
	}

	edges := make([][2]int, len(symGraph.Edges))
	for i, e := range symGraph.Edges {
		edges[i] = [2]int{e[0] - 1, e[1] - 1}
	}
	g0, err := colgraph.NewGraph(symGraph.N, symGraph.Colors, edges)
	if err != nil {
		return nil, nil, err
	}

	vars := make([]int, len(varsDecl.Vertices))
	for i, v := range varsDecl.Vertices {
		vars[i] = v - 1
	}
	values := make([]int, len(valsDecl.Vertices))
	for i, v := range valsDecl.Vertices {
		values[i] = v - 1
	}

	var initialPrefix []int
	if len(f.prefix) > 0 {
		initialPrefix = make([]int, len(f.prefix))
		for i, v := range f.prefix {
			initialPrefix[i] = v - 1
		}
	} else if prefixBlock != nil {
		initialPrefix = prefixVerticesFromBlock(prefixBlock)
	}

	logger.Debug("problem assembled", "n", symGraph.N, "vars", len(vars), "values", len(values))

	return &problem.Problem{
		G0:            g0,
		Vars:          vars,
		Values:        values,
		InitialPrefix: initialPrefix,
		K:             f.length,
		Threshold:     f.threshold,
	}, baseCNF, nil
}

// prefixVerticesFromBlock flattens a parsed "p prefix" block into the
// ordered list of 0-indexed prefix vertices: the "a" assignment lines
// first (in order; their declared value is not consulted, per spec's
// dead-branch note), then the "f" fixed-vertex lines.
func prefixVerticesFromBlock(p *symio.Prefix) []int {
	out := make([]int, 0, len(p.Assignments)+len(p.FixedVertices))
	for _, a := range p.Assignments {
		out = append(out, a.Vertex-1)
	}
	for _, v := range p.FixedVertices {
		out = append(out, v-1)
	}
	return out
}

func newStringReader(s string) io.Reader {
	return strings.NewReader(s)
}
