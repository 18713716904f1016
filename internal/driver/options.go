package driver

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options holds every parsed flag from spec.md §6's CLI surface. Flags
// that the original tool expresses as a doubled letter (-jj, -qq, -rr,
// -zz, -pp) are parsed as repeatable counts, the same mechanism -d
// already needs for its own verbosity levels; finalize derives the
// boolean "which variant is this" fields from the raw counts once
// parsing is done. -qq has no variant field of its own: it sets the
// same strict-solidus mode as -q.
type Options struct {
	AllStream     bool // -a
	CompareArg    string
	HasCompare    bool // -c
	DebugLevel    int  // -d...
	InPlace       bool // -f
	ShowGuide     bool // -g
	InsertArg     string
	HasInsert     bool // -i
	WrapAllStream bool // -J
	WrapCount     int  // raw count behind -j / -jj
	WrapArray     bool // -j
	WrapObject    bool // -jj
	Labels        bool // -l
	Merge         bool // -m
	Sequential    bool // -n
	PurgeCount    int  // raw count behind -p / -pp
	HasPurge      bool
	Purge         bool // -p
	DoublePurge   bool // -pp
	StrictCount   int  // raw count behind -q / -qq
	StrictSolidus bool // -q
	RawCount      int  // raw count behind -r / -rr
	Raw           bool // -r
	Stringify     bool // -rr
	Swap          bool // -s
	Template      string
	HasTemplate   bool // -T
	IndentWidth   int  // -t
	UpdateArg     string
	HasUpdate     bool // -u
	walks         walkArgs
	CountCount    int // raw count behind -z / -zz
	Count         bool
	CountOnly     bool
	ExecTemplate  string
	HasExec       bool
	InputFile     string
}

// Walks returns the resolved walk-path list, -x/-y shorthand already
// expanded in command-line order.
func (o *Options) Walks() []string { return o.walks.expand() }

// newCommand builds the single root command jtc's flat getopt-style
// surface needs (no subcommands, unlike joshuapare-hivekit's hivectl):
// cobra supplies usage/help generation and the SilenceErrors/RunE
// discipline of eykd-prosemark-go's cmd/root.go, while flag registration
// itself still goes through cmd.Flags(), the same *pflag.FlagSet either
// teacher binds its own flags to.
func newCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jtc [file]",
		Short:         "walk-path driven JSON processor",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	registerFlags(opts, cmd.Flags())
	return cmd
}

// registerFlags registers every flag in spec.md §6 onto fs, bound to
// opts, grounded on joshuapare-hivekit/cmd/hivectl's
// PersistentFlags()-registration style.
func registerFlags(opts *Options, fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.AllStream, "all", "a", false, "process each top-level JSON when input is a stream")
	fs.StringVarP(&opts.CompareArg, "compare", "c", "", "compare JSONs (file/literal/walk-path)")
	fs.CountVarP(&opts.DebugLevel, "debug", "d", "debug verbosity (repeatable)")
	fs.BoolVarP(&opts.InPlace, "in-place", "f", false, "rewrite the input file in place (ignored with -a)")
	fs.BoolVarP(&opts.ShowGuide, "guide", "g", false, "print the walk-path guide and exit")
	fs.StringVarP(&opts.InsertArg, "insert", "i", "", "insert; src is file/literal/walk-path")
	fs.BoolVarP(&opts.WrapAllStream, "wrap-stream", "J", false, "wrap all processed JSONs into an array")
	fs.CountVarP(&opts.WrapCount, "wrap", "j", "wrap walked elements into a JSON array (-jj: into an object)")
	fs.BoolVarP(&opts.Labels, "labels", "l", false, "print labels; with -j groups by label")
	fs.BoolVarP(&opts.Merge, "merge", "m", false, "enable merge mode for -i/-u")
	fs.BoolVarP(&opts.Sequential, "sequential", "n", false, "sequential (non-interleaved) walk emission")
	fs.CountVarP(&opts.PurgeCount, "purge", "p", "purge walked nodes (-pp: keep only walked nodes and their ancestors)")
	fs.CountVarP(&opts.StrictCount, "strict", "q", "strict quoted-solidus parsing (-qq: same as -q; isolated strings are not unquoted)")
	fs.CountVarP(&opts.RawCount, "raw", "r", "raw compact output (-rr: stringify)")
	fs.BoolVarP(&opts.Swap, "swap", "s", false, "swap two walks")
	fs.StringVarP(&opts.Template, "template", "T", "", "interpolation template for walked output")
	fs.IntVarP(&opts.IndentWidth, "indent", "t", 2, "indent width for pretty printing")
	fs.StringVarP(&opts.UpdateArg, "update", "u", "", "update; same parameter semantics as -i")
	fs.CountVarP(&opts.CountCount, "count", "z", "print node count (-zz: only the count)")
	opts.walks.register(fs)
}

// finalize derives every boolean "which variant" field from its raw
// count, and the Has* fields from Changed() (a zero-value -i="" is still
// "insert was requested").
func finalize(opts *Options, fs *pflag.FlagSet) {
	opts.WrapArray = opts.WrapCount == 1
	opts.WrapObject = opts.WrapCount >= 2
	opts.Purge = opts.PurgeCount == 1
	opts.DoublePurge = opts.PurgeCount >= 2
	opts.HasPurge = opts.PurgeCount >= 1
	opts.StrictSolidus = opts.StrictCount >= 1
	opts.Raw = opts.RawCount == 1
	opts.Stringify = opts.RawCount >= 2
	opts.Count = opts.CountCount == 1
	opts.CountOnly = opts.CountCount >= 2

	opts.HasCompare = fs.Changed("compare")
	opts.HasInsert = fs.Changed("insert")
	opts.HasUpdate = fs.Changed("update")
	opts.HasTemplate = fs.Changed("template")
	opts.HasExec = opts.ExecTemplate != ""
}
