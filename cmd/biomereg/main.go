// Command biomereg registers the biomes of a biome pack the way a world load
// does and prints the resulting id table.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/dm-vev/biomebridge/server/world/biome"
	"github.com/dm-vev/biomebridge/server/world/biome/biomedb"
	"github.com/dm-vev/biomebridge/server/world/biome/registry"
	"github.com/dm-vev/biomebridge/server/world/biome/vanilla"
	"github.com/dm-vev/biomebridge/server/world/biomereg"
)

func main() {
	packPath := flag.String("pack", "biomes.toml", "path of the biome pack to register")
	dbDir := flag.String("db", "", "directory of the biome database used to allocate missing ids")
	defsPath := flag.String("definitions", "", "file to write the encoded biome definitions to")
	debug := flag.Bool("debug", false, "log every registration")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, *packPath, *dbDir, *defsPath); err != nil {
		log.Error("Biome registration failed.", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, packPath, dbDir, defsPath string) error {
	p, err := loadPack(packPath)
	if err != nil {
		return err
	}

	var ids idSource
	if dbDir != "" {
		db, err := biomedb.Config{Log: log}.Open(dbDir)
		if err != nil {
			return err
		}
		defer db.Close()
		ids = db
	}
	confs, err := p.configs(ids)
	if err != nil {
		return err
	}

	reg := registry.NewMemory(0)
	f := biome.Factory{Log: log}
	if err := vanilla.Install(reg, f); err != nil {
		return err
	}
	r := biomereg.Config{Log: log, Registry: reg, Factory: f}.New()
	s := r.Load(true)
	log.Info("Registering biome pack.", "world", p.World, "biomes", len(confs), "session", s.ID(), "main", s.Main())

	records, regErr := s.RegisterAll(confs)
	if err := printTable(r, records); err != nil {
		return err
	}
	defs, err := biome.EncodeDefinitions(reg.All())
	if err != nil {
		return err
	}
	if defsPath != "" {
		if err := os.WriteFile(defsPath, defs.Data, 0644); err != nil {
			return fmt.Errorf("write biome definitions: %w", err)
		}
	}
	total := r.Metrics().Total()
	log.Info("Registered biome pack.",
		"registered", total.Registered, "overridden", total.Overridden,
		"aliased", total.Aliased, "rejected", total.Rejected,
		"definitions_checksum", fmt.Sprintf("%016x", defs.Checksum))
	return regErr
}

func printTable(r *biomereg.Registrar, records []*biome.Record) error {
	slices.SortFunc(records, func(a, b *biome.Record) int {
		return a.IDs().GenerationID() - b.IDs().GenerationID()
	})
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGENERATION\tSAVED\tSLOT")
	for _, rec := range records {
		ids := rec.IDs()
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\n", rec.Name(), ids.GenerationID(), ids.SavedID(), r.Slot(ids.SavedID()))
	}
	return w.Flush()
}
