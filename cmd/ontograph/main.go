package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/ont"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/watch"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	_ = logger.Logger.Sync()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ontograph",
		Short: "Ontology model toolkit for OWL, DAML+OIL and RDFS",
		Long: `Ontograph reads RDF ontology documents, follows their imports and
presents them through a language profile: OWL Full, OWL DL, OWL Lite,
DAML+OIL or RDFS.

Documents can be local files or URLs. Remote documents are downloaded into
the cache directory when one is configured, and an ont-policy file can map
public document URIs to local copies.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (YAML)")
	flags.String("lang", "", "Ontology language: owl, owl-dl, owl-lite, daml, rdfs or a language URI")
	flags.Bool("no-imports", false, "Do not follow owl:imports")
	flags.String("policy", "", "Document policy file (YAML)")
	flags.String("cache-dir", "", "Directory for downloaded documents; enables remote fetching")
	flags.Bool("json-log", false, "Log as JSON")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("lax", false, "Allow conversions the structural checks reject")

	rootCmd.AddCommand(profilesCmd())
	rootCmd.AddCommand(loadCmd())
	rootCmd.AddCommand(classesCmd())
	rootCmd.AddCommand(propertiesCmd())
	rootCmd.AddCommand(individualsCmd())
	rootCmd.AddCommand(importsCmd())
	rootCmd.AddCommand(hierarchyCmd())
	rootCmd.AddCommand(writeCmd())
	rootCmd.AddCommand(watchCmd())
	return rootCmd
}

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the supported ontology languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{{"Language", "URI", "Terms"}}
			for _, p := range profile.DefaultRegistry().Profiles() {
				rows = append(rows, []string{p.Label(), p.Language(), fmt.Sprint(len(p.Terms()))})
			}
			return renderTable(rows)
		},
	}
}

func loadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <document>",
		Short: "Load a document with its imports and summarise it",
		Long: `Load a document with its imports and summarise it.

Example:
  ontograph load pizza.owl
  ontograph load --validate --metrics http://example.org/onto.ttl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validate, _ := cmd.Flags().GetBool("validate")
			metrics, _ := cmd.Flags().GetBool("metrics")

			s, err := openSession(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			printSummary(s)

			if validate {
				problems := s.model.Validate()
				if len(problems) == 0 {
					pterm.Success.Println("no consistency problems")
				}
				for _, p := range problems {
					pterm.Warning.Println(p)
				}
			}
			if metrics {
				return printMetrics(s)
			}
			return nil
		},
	}
	cmd.Flags().Bool("validate", false, "Run the structural consistency checks")
	cmd.Flags().Bool("metrics", false, "Print document manager counters")
	return cmd
}

func classesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes <document>",
		Short: "List the classes of an ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			named, _ := cmd.Flags().GetBool("named")
			roots, _ := cmd.Flags().GetBool("roots")

			s, err := openSession(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			var classes []*ont.Class
			switch {
			case roots:
				classes = s.model.ListHierarchyRootClasses()
			case named:
				classes = s.model.ListNamedClasses()
			default:
				classes = s.model.ListClasses()
			}

			rows := [][]string{{"Class", "Kind", "Label", "Superclasses"}}
			for _, c := range classes {
				supers, err := c.SuperClasses(false)
				if err != nil {
					return err
				}
				rows = append(rows, []string{c.String(), c.Kind().String(), labelOf(c.Resource), joinClasses(supers)})
			}
			return renderTable(rows)
		},
	}
	cmd.Flags().Bool("named", false, "Only classes with a URI")
	cmd.Flags().Bool("roots", false, "Only the roots of the class hierarchy")
	return cmd
}

func propertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "properties <document>",
		Short: "List the properties of an ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			rows := [][]string{{"Property", "Kinds", "Domain", "Range"}}
			for _, p := range s.model.ListOntProperties() {
				domains, err := p.Domains()
				if err != nil {
					return err
				}
				ranges, err := p.Ranges()
				if err != nil {
					return err
				}
				rows = append(rows, []string{p.String(), propertyKinds(p), joinClasses(domains), joinResources(ranges)})
			}
			return renderTable(rows)
		},
	}
}

func individualsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "individuals <document>",
		Short: "List the individuals of an ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			rows := [][]string{{"Individual", "Label", "Classes"}}
			for _, i := range s.model.ListIndividuals() {
				rows = append(rows, []string{i.String(), labelOf(i.Resource), joinClasses(i.OntClasses(true))})
			}
			return renderTable(rows)
		},
	}
}

func importsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imports <document>",
		Short: "List the ontologies a document imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			closure, _ := cmd.Flags().GetBool("closure")

			s, err := openSession(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			rows := [][]string{{"Imported ontology", "Loaded"}}
			for _, uri := range s.model.ListImportedOntologyURIs(closure) {
				rows = append(rows, []string{uri, fmt.Sprint(s.model.HasLoadedImport(uri))})
			}
			return renderTable(rows)
		},
	}
	cmd.Flags().Bool("closure", false, "Include imports of imports")
	return cmd
}

func hierarchyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hierarchy <document>",
		Short: "Export the class hierarchy as DOT or JSON",
		Long: `Export the class hierarchy as DOT or JSON.

Example:
  ontograph hierarchy onto.ttl --format dot | dot -Tsvg > onto.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			s, err := openSession(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			export := ont.ExportHierarchy(s.model)
			switch format {
			case "dot":
				fmt.Fprint(cmd.OutOrStdout(), export.ToDOT("hierarchy"))
			case "json":
				data, err := export.ToJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("unknown hierarchy format %q (want dot or json)", format)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "dot", "Output format: dot or json")
	return cmd
}

func writeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <document>",
		Short: "Serialise a document in another RDF syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			all, _ := cmd.Flags().GetBool("all")
			output, _ := cmd.Flags().GetString("output")

			format, err := store.ParseFormat(formatName)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if all {
				return s.model.WriteAll(w, format)
			}
			return s.model.Write(w, format)
		},
	}
	cmd.Flags().String("format", "ttl", "Output syntax: ttl, nt or rdfxml")
	cmd.Flags().Bool("all", false, "Include imported graphs")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <document>",
		Short: "Reload a local document whenever it or its configuration changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")

			s, err := openSession(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			printSummary(s)

			path, ok := localFile(s.source)
			if !ok {
				return fmt.Errorf("watch needs a local document, got %s", s.source)
			}
			paths := []string{path}
			if s.cfg.Documents.PolicyFile != "" {
				paths = append(paths, s.cfg.Documents.PolicyFile)
			}
			if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
				paths = append(paths, configPath)
			}

			w, err := watch.New(paths, debounce, func(ctx context.Context, changed string) error {
				if changed != path {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					s.cfg = cfg
				}
				if err := s.reload(ctx); err != nil {
					return err
				}
				printSummary(s)
				return nil
			})
			if err != nil {
				return err
			}
			defer w.Close()

			pterm.Info.Printf("watching %d files, press Ctrl+C to stop\n", len(paths))
			return w.Run(cmd.Context())
		},
	}
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before reloading")
	return cmd
}
