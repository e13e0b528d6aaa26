package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/gwflow/grf/laplace"
)

// Config is the ini-file description of one drawdown computation.
type Config struct {
	Params laplace.Params
	Times  []float64
	Radii  []float64
	Degree int
}

// LoadConfig reads the aquifer, well and query sections from path.
// The last boundary radius may be given as "inf" for an unbounded aquifer.
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	var cfg Config
	aq := file.Section("aquifer")
	if cfg.Params.K, err = parseFloats(aq.Key("k").String()); err != nil {
		return Config{}, fmt.Errorf("aquifer.k: %w", err)
	}
	if cfg.Params.S, err = parseFloats(aq.Key("s").String()); err != nil {
		return Config{}, fmt.Errorf("aquifer.s: %w", err)
	}
	if cfg.Params.R, err = parseFloats(aq.Key("r").String()); err != nil {
		return Config{}, fmt.Errorf("aquifer.r: %w", err)
	}

	well := file.Section("well")
	cfg.Params.Rate = well.Key("rate").MustFloat64(-1e-4)
	cfg.Params.Dim = well.Key("dim").MustFloat64(2)
	cfg.Params.LatExt = well.Key("lat_ext").MustFloat64(1)
	cfg.Params.KWell = well.Key("k_well").MustFloat64(0)

	query := file.Section("query")
	if cfg.Times, err = parseFloats(query.Key("times").String()); err != nil {
		return Config{}, fmt.Errorf("query.times: %w", err)
	}
	if cfg.Radii, err = parseFloats(query.Key("radii").String()); err != nil {
		return Config{}, fmt.Errorf("query.radii: %w", err)
	}

	solver := file.Section("solver")
	cfg.Params.CutoffPrec = solver.Key("cutoff").MustFloat64(0)
	cfg.Degree = solver.Key("degree").MustInt(0)
	return cfg, nil
}

func parseFloats(list string) ([]float64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("empty value list")
	}
	fields := strings.Split(list, ",")
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if strings.EqualFold(f, "inf") {
			vals = append(vals, math.Inf(1))
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", f, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
