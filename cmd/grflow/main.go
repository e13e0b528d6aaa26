// Command grflow computes time-domain drawdown tables for the extended GRF
// model from an ini configuration and writes them as CSV to stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/gwflow/grf/flow"
)

func main() {
	cfgPath := flag.String("config", "grflow.ini", "path to the ini configuration")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := LoadConfig(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("cannot load configuration")
	}
	log.WithFields(log.Fields{
		"disks": len(cfg.Params.K),
		"times": len(cfg.Times),
		"radii": len(cfg.Radii),
	}).Info("solving extended GRF model")

	heads, err := flow.ExtGRF(cfg.Times, cfg.Radii, cfg.Params, cfg.Degree)
	if err != nil {
		log.WithError(err).Fatal("solver failed")
	}

	w := os.Stdout
	fmt.Fprint(w, "time")
	for _, r := range cfg.Radii {
		fmt.Fprintf(w, ",r=%g", r)
	}
	fmt.Fprintln(w)
	for i, t := range cfg.Times {
		fmt.Fprintf(w, "%g", t)
		row := heads.RawRowView(i)
		for _, h := range row {
			fmt.Fprintf(w, ",%.8g", h)
		}
		fmt.Fprintln(w)
	}
	log.Debug("done")
}
