// packlang — Minecraft modpack language file manager.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/start-modpack/packlang/config"
	"github.com/start-modpack/packlang/export"
	"github.com/start-modpack/packlang/i18n"
	"github.com/start-modpack/packlang/langmeta"
	"github.com/start-modpack/packlang/lockfile"
	"github.com/start-modpack/packlang/merge"
	"github.com/start-modpack/packlang/stats"
	"github.com/start-modpack/packlang/validate"
	"github.com/start-modpack/packlang/workspace"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "packlang",
		Short: "Minecraft modpack language file manager",
		Long: `packlang — Minecraft modpack language file manager.

Manages a lang/ tree of one sub-directory per mod category, each holding one
flat JSON file per language (en_us.json, ru_ru.json, ...). The base language
defines the canonical key set and order; packlang keeps every translation
structurally aligned with it.

Commands:
  status        Show workspace info and translation statistics
  languages     List languages with completion
  categories    List categories with key counts
  add-language  Scaffold a new language across every category
  sync          Reconcile all translations against the base language
  validate      Check translations for structural problems
  export        Export untranslated keys as a contributor report
  set           Update one translated entry`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newStatusCmd(),
		newLanguagesCmd(),
		newCategoriesCmd(),
		newAddLanguageCmd(),
		newSyncCmd(),
		newValidateCmd(),
		newExportCmd(),
		newSetCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// loadWorkspace loads .packlang.yaml and the language tree under it,
// reporting any broken categories as warnings.
func loadWorkspace() (*config.Config, *workspace.Workspace, error) {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return nil, nil, err
	}
	ws, err := workspace.Load(cfg.LangRoot(rootDir), cfg.BaseLang)
	if err != nil {
		return nil, nil, err
	}
	for _, b := range ws.Broken {
		if b.Language == "" {
			logWarning("skipping category %s: %v", b.Category, b.Err)
		} else {
			logWarning("skipping %s/%s: %v", b.Category, b.Language, b.Err)
		}
	}
	return cfg, ws, nil
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("packlang version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// status (read-only: workspace info + translation stats)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show workspace info and translation statistics",
		Long: `Show the workspace layout and per-language translation progress.

Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ws, err := loadWorkspace()
			if err != nil {
				return err
			}
			runStatus(cfg, ws)
			return nil
		},
	}
}

func runStatus(cfg *config.Config, ws *workspace.Workspace) {
	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, i18n.T("Workspace"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	absRoot, _ := filepath.Abs(ws.Root)
	fmt.Fprintf(os.Stderr, "  Root:       %s\n", absRoot)
	fmt.Fprintf(os.Stderr, "  Base lang:  %s\n", ws.BaseLang)

	cats := ws.Categories()
	totalKeys := 0
	for _, c := range cats {
		totalKeys += c.Base.Len()
	}
	fmt.Fprintf(os.Stderr, "  Categories: %d\n", len(cats))
	fmt.Fprintf(os.Stderr, "  Keys:       %d\n", totalKeys)

	langs := ws.Languages()
	if len(langs) > 0 {
		fmt.Fprintf(os.Stderr, "  Languages:  %s\n", strings.Join(langs, ", "))
	} else {
		fmt.Fprintf(os.Stderr, "  Languages:  none (use 'packlang add-language')\n")
	}
	fmt.Fprintln(os.Stderr)

	if len(langs) == 0 || totalKeys == 0 {
		return
	}

	showStatsTable(cfg, ws, langs)
}

func showStatsTable(cfg *config.Config, ws *workspace.Workspace, langs []string) {
	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorBlue, i18n.T("Translation Statistics"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "\n%-10s %-12s %-8s %-10s %-8s\n", "Lang", "Translated", "TODO", "Empty", "Percent")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 52))

	type langIssue struct {
		lang  string
		empty int
		todo  int
	}
	var issues []langIssue

	for _, lang := range langs {
		if !cfg.Wants(lang) {
			continue
		}
		c := stats.Language(ws, lang, cfg.TodoMarker)
		fmt.Fprintf(os.Stderr, "%-10s %-12d %-8d %-10d %d%%\n",
			lang, c.Translated, c.Todo, c.Empty, c.Percent())
		if c.Empty > 0 || c.Todo > 0 {
			issues = append(issues, langIssue{lang, c.Empty, c.Todo})
		}
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("─", 52))

	if len(issues) > 0 {
		fmt.Fprintln(os.Stderr)
		logInfo("Translation gaps:")
		for _, issue := range issues {
			var parts []string
			if issue.empty > 0 {
				parts = append(parts, fmt.Sprintf("%d untranslated", issue.empty))
			}
			if issue.todo > 0 {
				parts = append(parts, fmt.Sprintf("%d marked TODO", issue.todo))
			}
			fmt.Fprintf(os.Stderr, "  %s: %s\n", issue.lang, strings.Join(parts, ", "))
		}
	}
	fmt.Fprintln(os.Stderr)
}

// ---------------------------------------------------------------------------
// languages
// ---------------------------------------------------------------------------

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List languages with completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ws, err := loadWorkspace()
			if err != nil {
				return err
			}
			fmt.Println(i18n.T("Available languages:"))
			for _, lang := range ws.Languages() {
				c := stats.Language(ws, lang, cfg.TodoMarker)
				meta := langmeta.Resolve(lang)
				label := meta.Name
				if meta.Flag != "" {
					label = meta.Flag + " " + label
				}
				fmt.Printf("  %-8s %s: %d/%d (%d%%)\n",
					lang, label, c.Translated, c.Total, c.Percent())
			}
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// categories
// ---------------------------------------------------------------------------

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with key counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ws, err := loadWorkspace()
			if err != nil {
				return err
			}
			cats := ws.Categories()
			if len(cats) == 0 {
				fmt.Println(i18n.T("No categories found"))
				return nil
			}
			fmt.Println(i18n.T("Available categories:"))
			for _, cat := range cats {
				langs := cat.Langs()
				fmt.Printf("  %s: %d keys", cat.ID, cat.Base.Len())
				if len(langs) > 0 {
					fmt.Printf(" (%s)", strings.Join(langs, ", "))
				}
				fmt.Println()
			}
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// add-language
// ---------------------------------------------------------------------------

func newAddLanguageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-language CODE",
		Short: "Scaffold a new language across every category",
		Long: `Create a translation file for every category with all base keys mapped
to empty strings, in base key order. CODE is a Minecraft-style language
code such as fr_fr or pt_br.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			_, ws, err := loadWorkspace()
			if err != nil {
				return err
			}
			if err := merge.AddLanguage(ws, code); err != nil {
				return err
			}
			if err := ws.Save(); err != nil {
				return err
			}
			meta := langmeta.Resolve(code)
			logSuccess(i18n.T("Added language %s"), code+" ("+meta.Name+")")
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// sync
// ---------------------------------------------------------------------------

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile all translations against the base language",
		Long: `Bring every translation file in line with its category's base file:
missing keys are inserted empty, orphaned keys (absent from base) are
removed and reported, and key order is rewritten to match base.

Also refreshes packlang.lock with checksums of the current base strings,
which 'validate --stale' uses to spot translations whose base text has
changed since they were written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ws, err := loadWorkspace()
			if err != nil {
				return err
			}

			changed := false
			for _, rep := range merge.SyncAll(ws) {
				if !rep.Changed() {
					continue
				}
				changed = true
				for _, lang := range rep.AddedLangs() {
					logInfo("%s/%s: %d keys added", rep.Category, lang, len(rep.Added[lang]))
				}
				for _, lang := range rep.OrphanLangs() {
					for _, key := range rep.Orphans[lang] {
						logWarning("%s/%s: orphan key %q removed (was %q)",
							rep.Category, lang, key, rep.OrphanValue(lang, key))
					}
				}
			}

			if err := ws.Save(); err != nil {
				return err
			}

			lock, err := lockfile.Load(rootDir)
			if err != nil {
				return err
			}
			for _, cat := range ws.Categories() {
				lock.UpdateBatch(cat.ID, cat.Base.Values())
				lock.Clean(cat.ID, cat.Base.Keys())
			}
			if err := lock.Save(); err != nil {
				return err
			}

			if !changed {
				logInfo("already in sync")
			}
			logSuccess(i18n.T("Workspace synchronized"))
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// validate
// ---------------------------------------------------------------------------

func newValidateCmd() *cobra.Command {
	var showStale bool

	cmd := &cobra.Command{
		Use:   "validate LANG",
		Short: "Check translations for structural problems",
		Long: `Check every translated string of LANG against its base string:
placeholder sets (%1$s, {name}), formatting-code sets (§a, §l, ...),
empty and TODO-marked values, and suspiciously identical text.

Validation is advisory: findings are printed, and the exit status is
non-zero only when structural mismatches (placeholders, formatting)
are present.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := args[0]
			cfg, ws, err := loadWorkspace()
			if err != nil {
				return err
			}
			if !ws.HasLanguage(lang) {
				return fmt.Errorf("unknown language %q (known: %s)",
					lang, strings.Join(ws.Languages(), ", "))
			}
			return runValidate(cfg, ws, lang, showStale)
		},
	}

	cmd.Flags().BoolVar(&showStale, "stale", false, "Also report translations whose base text changed since last sync")
	return cmd
}

func runValidate(cfg *config.Config, ws *workspace.Workspace, lang string, showStale bool) error {
	v := validate.New()
	v.TodoMarker = cfg.TodoMarker

	var lock *lockfile.LockFile
	if showStale {
		var err error
		lock, err = lockfile.Load(rootDir)
		if err != nil {
			return err
		}
	}

	hard, soft, stale := 0, 0, 0
	for _, cat := range ws.Categories() {
		doc, ok := cat.Translations[lang]
		if !ok {
			logWarning("%s: no %s file (run 'packlang sync')", cat.ID, lang)
			continue
		}

		for _, viol := range v.Document(cat.Base, doc) {
			if viol.Kind.Hard() {
				hard++
				fmt.Printf("%s/%s  %s\n", cat.ID, lang, viol)
			} else {
				soft++
			}
		}

		if lock != nil {
			for _, key := range cat.Base.Keys() {
				tv, _ := doc.Get(key)
				if tv == "" || (cfg.TodoMarker != "" && strings.HasPrefix(tv, cfg.TodoMarker)) {
					continue
				}
				bv, _ := cat.Base.Get(key)
				if lock.IsStale(cat.ID, key, bv) {
					stale++
					fmt.Printf("%s/%s  %s: stale: base text changed since translation\n",
						cat.ID, lang, key)
				}
			}
		}
	}

	if soft > 0 {
		logInfo("%d entries empty or marked TODO", soft)
	}
	if stale > 0 {
		logWarning("%d stale translations", stale)
	}
	if hard > 0 {
		return fmt.Errorf("%d structural violations in %s", hard, lang)
	}
	logSuccess(i18n.T("No validation issues found for %s"), lang)
	return nil
}

// ---------------------------------------------------------------------------
// export
// ---------------------------------------------------------------------------

func newExportCmd() *cobra.Command {
	var output string
	var tsv bool

	cmd := &cobra.Command{
		Use:   "export LANG",
		Short: "Export untranslated keys as a contributor report",
		Long: `Write every key of LANG whose value is empty or TODO-marked, together
with its base text, grouped by category in base key order. Defaults to
a human-readable report on stdout; --tsv emits category<TAB>key<TAB>text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := args[0]
			cfg, ws, err := loadWorkspace()
			if err != nil {
				return err
			}
			if !ws.HasLanguage(lang) {
				return fmt.Errorf("unknown language %q (known: %s)",
					lang, strings.Join(ws.Languages(), ", "))
			}

			sections := export.AllUntranslated(ws, lang, cfg.TodoMarker)

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			if tsv {
				err = export.WriteTSV(out, sections)
			} else {
				err = export.WriteReport(out, lang, sections)
			}
			if err != nil {
				return err
			}

			logSuccess("exported %d untranslated keys", export.Count(sections))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write report to file instead of stdout")
	cmd.Flags().BoolVar(&tsv, "tsv", false, "Tab-delimited output")
	return cmd
}

// ---------------------------------------------------------------------------
// set (edit one entry)
// ---------------------------------------------------------------------------

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set CATEGORY LANG KEY VALUE",
		Short: "Update one translated entry",
		Long: `Set the translation of KEY in CATEGORY for language LANG and save the
workspace. The base language cannot be edited.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, lang, key, value := args[0], args[1], args[2], args[3]
			_, ws, err := loadWorkspace()
			if err != nil {
				return err
			}
			if err := ws.Set(category, lang, key, value); err != nil {
				return err
			}
			if err := ws.Save(); err != nil {
				return err
			}
			logSuccess("%s/%s %s = %q", category, lang, key, value)
			return nil
		},
	}
}
