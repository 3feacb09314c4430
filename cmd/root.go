package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"indexgen/pkg/env"
	"indexgen/pkg/generate"
	"indexgen/pkg/logger"
	"indexgen/pkg/render"
)

const (
	appName    = "indexgen"
	appVersion = "1.2.0"
	appURL     = "https://github.com/indexgen/indexgen"
)

var opts struct {
	theme       string
	template    string
	noRecursive bool
	name        string
	print       bool
	depth       uint
	root        string
	human       bool
	iconset     string
}

var rootCmd = &cobra.Command{
	Use:   "indexgen [flags] PATH",
	Short: "Generate static HTML directory listings for a filesystem subtree",
	Long: `indexgen recursively walks a directory tree and writes one static HTML
listing page into every visited directory, with per-entry size, modification
time and a MIME-derived icon. Pages come from bundled themes or a custom
template directory.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       appVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command and exits non-zero on the first error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.theme, "theme", "t", "default", "builtin theme to generate html (default, default-dark)")
	f.StringVarP(&opts.template, "template", "T", "", "custom template directory to generate html")
	f.BoolVar(&opts.noRecursive, "no-recursive", false, "do not generate recursively")
	f.StringVarP(&opts.name, "name", "n", "index.html", "output filename")
	f.BoolVarP(&opts.print, "print", "P", false, "whether to print each page to stdout")
	f.UintVarP(&opts.depth, "depth", "d", ^uint(0), "cutoff depth")
	f.StringVarP(&opts.root, "root", "r", "/", "base root dir for display paths")
	f.BoolVar(&opts.human, "human", false, "make sizes human readable")
	f.StringVar(&opts.iconset, "iconset", "papirus", "choose iconset")
	f.BoolP("version", "V", false, "print version information and quit")

	rootCmd.SetVersionTemplate(fmt.Sprintf("%s {{.Version}} %s\n", appName, appURL))
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger.Init()
	env.LoadEnv()
	applyEnvDefaults(cmd)

	if len(args) == 0 {
		return cmd.Help()
	}
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("target path %s: %w", path, err)
	}

	depth := opts.depth
	if opts.noRecursive {
		depth = 1
	}

	return generate.Run(generate.Options{
		Path:     path,
		Theme:    opts.theme,
		Template: opts.template,
		Name:     opts.name,
		Print:    opts.print,
		MaxDepth: depth,
		Root:     opts.root,
		Human:    opts.human,
		Iconset:  opts.iconset,
		Generator: render.Generator{
			Name:    appName,
			Version: appVersion,
			URL:     appURL,
		},
	})
}

// applyEnvDefaults lets INDEXGEN_* environment variables (including ones
// loaded from .env) stand in for flags the user did not pass.
func applyEnvDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("theme") {
		opts.theme = env.GetString("INDEXGEN_THEME", opts.theme)
	}
	if !flags.Changed("name") {
		opts.name = env.GetString("INDEXGEN_NAME", opts.name)
	}
	if !flags.Changed("depth") {
		opts.depth = env.GetUint("INDEXGEN_DEPTH", opts.depth)
	}
	if !flags.Changed("root") {
		opts.root = env.GetString("INDEXGEN_ROOT", opts.root)
	}
	if !flags.Changed("human") {
		opts.human = env.IsBool("INDEXGEN_HUMAN", opts.human)
	}
	if !flags.Changed("iconset") {
		opts.iconset = env.GetString("INDEXGEN_ICONSET", opts.iconset)
	}
}
