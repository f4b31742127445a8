// Command sfstool inspects site frequency spectra stored as
// whitespace-delimited text tables and prints diversity statistics.
//
// Examples:
//
//	sfstool view spectrum.txt
//	sfstool stats --persite spectrum.txt
//	sfstool summary --dxy --dims 5,5 spectrum.txt
//	cat spectrum.txt | sfstool stats -
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/apmorgan/gosfs/internal/cliconfig"
	"github.com/apmorgan/gosfs/sfs"
	"github.com/apmorgan/gosfs/table"
)

var version = "0.1.0"

type globalFlags struct {
	configPath string
	comment    string
	delimiter  string
	dims       string
	length     float64
	repolarize bool
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "sfstool",
		Short:         "Summary statistics from site frequency spectra",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML file with default settings")
	pf.StringVar(&flags.comment, "comment", "", "comment marker in input tables (default \"#\")")
	pf.StringVar(&flags.delimiter, "delimiter", "", "field delimiter (default: any whitespace)")
	pf.StringVar(&flags.dims, "dims", "", "reshape the spectrum, e.g. 5,5 (overrides a #dims= directive)")
	pf.Float64Var(&flags.length, "length", 0, "total sequence length in sites (adjusts the ancestral corner)")
	pf.BoolVar(&flags.repolarize, "repolarize", false, "flip ancestral/derived polarity before computing")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sfstool v%s\n", version)
		},
	})

	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Echo a spectrum after any reshape/repolarize/length fixup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, _ := cmd.Flags().GetBool("mask-corners")
			s, _, err := loadSpectrum(&flags, args)
			if err != nil {
				return err
			}
			if mask {
				s = s.MaskCorners()
			}
			fmt.Println(s)
			return nil
		},
	}
	viewCmd.Flags().Bool("mask-corners", false, "zero the two monomorphic corner cells")
	rootCmd.AddCommand(viewCmd)

	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Per-population diversity statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persiteFlag, _ := cmd.Flags().GetBool("persite")
			s, cfg, err := loadSpectrum(&flags, args)
			if err != nil {
				return err
			}
			persite := persiteFlag || cfg.PerSite
			return printStats(os.Stdout, s, persite)
		},
	}
	statsCmd.Flags().Bool("persite", false, "report per-site values (needs --length or #dims total)")
	rootCmd.AddCommand(statsCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Flat summary vector for downstream inference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persiteFlag, _ := cmd.Flags().GetBool("persite")
			dxyFlag, _ := cmd.Flags().GetBool("dxy")
			s, cfg, err := loadSpectrum(&flags, args)
			if err != nil {
				return err
			}
			vec, err := s.BigSummary(persiteFlag || cfg.PerSite, dxyFlag || cfg.IncludeDxy)
			if err != nil {
				return err
			}
			parts := make([]string, len(vec))
			for i, v := range vec {
				parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			fmt.Println(strings.Join(parts, " "))
			return nil
		},
	}
	summaryCmd.Flags().Bool("persite", false, "report per-site values")
	summaryCmd.Flags().Bool("dxy", false, "append pairwise D_xy to the vector")
	rootCmd.AddCommand(summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sfstool: %v\n", err)
		os.Exit(1)
	}
}

// loadSpectrum reads the first data record from the named file (or
// stdin for "-"/no argument) and builds a spectrum from the flags and
// config defaults.
func loadSpectrum(flags *globalFlags, args []string) (*sfs.Spectrum, cliconfig.Config, error) {
	cfg := cliconfig.Default()
	if flags.configPath != "" {
		var err error
		cfg, err = cliconfig.Load(flags.configPath)
		if err != nil {
			return nil, cfg, err
		}
	}
	if flags.comment != "" {
		cfg.Comment = flags.comment
	}
	if flags.delimiter != "" {
		cfg.Delimiter = flags.delimiter
	}

	var in io.ReadCloser = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, cfg, err
		}
		in = f
	}
	defer in.Close()

	opts := []table.Option{table.WithComment(cfg.Comment)}
	if cfg.Delimiter != "" {
		opts = append(opts, table.WithDelimiter(cfg.Delimiter))
	}
	rec, err := table.NewReader(in, opts...).Next()
	if err != nil {
		return nil, cfg, fmt.Errorf("reading spectrum: %w", err)
	}

	dims := rec.Dims
	if flags.dims != "" {
		dims, err = parseDims(flags.dims)
		if err != nil {
			return nil, cfg, err
		}
	}

	var sfsOpts []sfs.Option
	if dims != nil {
		sfsOpts = append(sfsOpts, sfs.WithDims(dims...))
	}
	if flags.repolarize {
		sfsOpts = append(sfsOpts, sfs.Repolarized())
	}
	if flags.length > 0 {
		sfsOpts = append(sfsOpts, sfs.WithLength(flags.length))
	}
	s, err := sfs.New(rec.Values, sfsOpts...)
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

func parseDims(arg string) ([]int, error) {
	fields := strings.Split(arg, ",")
	dims := make([]int, len(fields))
	for i, f := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("bad --dims value %q", arg)
		}
		dims[i] = d
	}
	return dims, nil
}

// printStats reports the single-population statistics for every
// marginal of the spectrum.
func printStats(w io.Writer, s *sfs.Spectrum, persite bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "pop\tn\tsegsites\ttheta_pi\ttheta_w\ttheta_zeta\ttajima_D\tfuli_D\td_xy")
	for p := 0; p < s.NumPops(); p++ {
		m, err := s.Marginalize(p)
		if err != nil {
			return err
		}
		tp, err := m.ThetaPi(persite, false)
		if err != nil {
			return err
		}
		tws, err := m.ThetaW(persite)
		if err != nil {
			return err
		}
		zeta, err := m.ThetaZeta(persite)
		if err != nil {
			return err
		}
		td, err := m.TajimaD()
		if err != nil {
			return err
		}
		fd, err := m.FuLiD()
		if err != nil {
			return err
		}
		dxy, err := m.DXY(persite)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%d\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			p, m.PopSizes()[0], m.CountSegsites(), tp, tws, zeta, td, fd, dxy)
	}
	if s.NumPops() == 2 {
		fstW, err := s.Fst(true)
		if err != nil {
			return err
		}
		fstU, err := s.Fst(false)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "\nf_st\tweighted=%g\tunweighted=%g\n", fstW, fstU)
	}
	return tw.Flush()
}
