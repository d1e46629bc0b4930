package atomtable

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/buger/jsonparser"
	"github.com/shopspring/decimal"

	"github.com/ucum-go/ucum/pkg/dimension"
)

//go:embed data/seed.json
var seedJSON []byte

// Load parses a catalog from raw JSON shaped like data/seed.json:
// {"prefixes": [...], "atoms": [...]}. It is schema-less field access
// via jsonparser rather than encoding/json structs, matching the
// teacher's types.Object access pattern, since atom/prefix records
// have several optional fields best defaulted rather than modeled as
// Go zero values scattered through struct tags.
func Load(raw []byte) (*Table, error) {
	t := newTable()

	var firstErr error
	note := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if _, err := jsonparser.ArrayEach(raw, func(v []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil {
			note(err)
			return
		}
		p, perr := parsePrefix(v)
		if perr != nil {
			note(perr)
			return
		}
		t.addPrefix(p)
	}, "prefixes"); err != nil {
		return nil, fmt.Errorf("atomtable: reading prefixes: %w", err)
	}
	if firstErr != nil {
		return nil, fmt.Errorf("atomtable: parsing prefixes: %w", firstErr)
	}

	if _, err := jsonparser.ArrayEach(raw, func(v []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil {
			note(err)
			return
		}
		a, aerr := parseAtom(v)
		if aerr != nil {
			note(aerr)
			return
		}
		t.addAtom(a)
	}, "atoms"); err != nil {
		return nil, fmt.Errorf("atomtable: reading atoms: %w", err)
	}
	if firstErr != nil {
		return nil, fmt.Errorf("atomtable: parsing atoms: %w", firstErr)
	}

	return t, nil
}

func parsePrefix(v []byte) (*Prefix, error) {
	code, err := jsonparser.GetString(v, "cs")
	if err != nil {
		return nil, fmt.Errorf("prefix missing cs: %w", err)
	}
	valStr, err := jsonparser.GetString(v, "value")
	if err != nil {
		return nil, fmt.Errorf("prefix %q missing value: %w", code, err)
	}
	val, err := decimal.NewFromString(valStr)
	if err != nil {
		return nil, fmt.Errorf("prefix %q bad value %q: %w", code, valStr, err)
	}
	metric, _ := jsonparser.GetBoolean(v, "metric")
	return &Prefix{Code: code, Value: val, IsMetric: metric}, nil
}

func parseAtom(v []byte) (*Atom, error) {
	cs, err := jsonparser.GetString(v, "cs")
	if err != nil {
		return nil, fmt.Errorf("atom missing cs: %w", err)
	}
	ci, _ := jsonparser.GetString(v, "ci")
	name, _ := jsonparser.GetString(v, "name")
	printSymbol, _ := jsonparser.GetString(v, "print")
	property, _ := jsonparser.GetString(v, "property")

	magStr, err := jsonparser.GetString(v, "magnitude")
	if err != nil {
		return nil, fmt.Errorf("atom %q missing magnitude: %w", cs, err)
	}
	mag, err := decimal.NewFromString(magStr)
	if err != nil {
		return nil, fmt.Errorf("atom %q bad magnitude %q: %w", cs, magStr, err)
	}

	var dim [dimension.Size]int32
	idx := 0
	_, _ = jsonparser.ArrayEach(v, func(item []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil || idx >= dimension.Size {
			idx++
			return
		}
		n, perr := jsonparser.ParseInt(item)
		if perr == nil {
			dim[idx] = int32(n)
		}
		idx++
	}, "dim")

	special, _ := jsonparser.GetString(v, "special")
	cnvPfx := decimal.NewFromInt(1)
	if cnvPfxStr, cerr := jsonparser.GetString(v, "cnvPfx"); cerr == nil {
		if parsed, perr := decimal.NewFromString(cnvPfxStr); perr == nil {
			cnvPfx = parsed
		}
	}

	base, _ := jsonparser.GetBoolean(v, "base")
	metric, _ := jsonparser.GetBoolean(v, "metric")
	arbitrary, _ := jsonparser.GetBoolean(v, "arbitrary")
	guidance, _ := jsonparser.GetString(v, "guidance")

	var synonyms []string
	_, _ = jsonparser.ArrayEach(v, func(item []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil {
			return
		}
		if s, serr := jsonparser.ParseString(item); serr == nil {
			synonyms = append(synonyms, s)
		}
	}, "synonyms")

	return &Atom{
		CSCode:       cs,
		CICode:       ci,
		Name:         name,
		PrintSymbol:  printSymbol,
		Property:     property,
		MagnitudeStr: magStr,
		Magnitude:    mag,
		Dim:          dimension.New(dim),
		Special:      special,
		ConvPrefix:   cnvPfx,
		IsBase:       base,
		IsMetric:     metric,
		IsArbitrary:  arbitrary,
		Guidance:     guidance,
		Synonyms:     synonyms,
	}, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the process-wide default catalog, built once from
// the embedded seed data and safe for concurrent reads thereafter
// (spec §5: publish once, never mutate).
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(seedJSON)
	})
	return defaultTable, defaultErr
}

// MustDefault is like Default but panics on error. The embedded seed
// is a build-time asset, so a parse failure here is a programming
// error, not a runtime condition callers need to handle.
func MustDefault() *Table {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}
