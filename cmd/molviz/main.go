package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smasonuk/molviz"
	"github.com/smasonuk/molviz/viewer"
)

var (
	pdbPath    string
	configPath string
	dumpOnly   bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "molviz --file <structure.pdb>",
		Short: "Ball and stick PDB viewer",
		Long: `molviz - ball and stick viewer for PDB files

Controls:
  Left drag   - Rotate molecule
  Scroll      - Zoom in/out
  Right click - Toggle silhouette outlines
  R           - Reset view
  Esc         - Quit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().StringVarP(&pdbPath, "file", "f", "", "Path to the PDB file to display")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Optional YAML config file")
	cmd.Flags().BoolVar(&dumpOnly, "dump", false, "Print a summary of the structure and exit")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := molviz.DefaultConfig()
	if configPath != "" {
		loaded, err := molviz.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if pdbPath != "" {
		cfg.File = pdbPath
	}
	if cfg.File == "" {
		return errors.New("no structure given, use --file or set file in the config")
	}

	log.Println("Loading", cfg.File)
	structure, err := molviz.LoadPDBFile(cfg.File)
	if err != nil {
		return err
	}
	log.Printf("Parsed %d atoms, %d CONECT bonds", len(structure.Atoms), len(structure.Bonds))

	if dumpOnly {
		bonds := molviz.MergeBonds(structure.Bonds, molviz.InferBonds(structure.Atoms, cfg.Scene.BondTolerance))
		molviz.Dump(os.Stdout, molviz.Summarize(structure, bonds))
		return nil
	}

	app := molviz.NewApplication(cfg, structure)

	log.Println("Initialization Complete.")
	return viewer.Run(app, cfg)
}
