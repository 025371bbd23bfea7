package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/accrete/internal/accrete"
	"github.com/san-kum/accrete/internal/storage"
)

type PlanetRecord struct {
	Axis         float64 `json:"axis"`
	Eccentricity float64 `json:"eccentricity"`
	Mass         float64 `json:"mass"`
	EarthMass    float64 `json:"earth_mass"`
	GasGiant     bool    `json:"gas_giant"`
}

type ExportData struct {
	Star    accrete.Star       `json:"star"`
	Seed    int64              `json:"seed"`
	Source  string             `json:"source"`
	Nuclei  int                `json:"nuclei,omitempty"`
	Merges  int                `json:"merges,omitempty"`
	Planets []PlanetRecord     `json:"planets"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func NewExportData(seed int64, source string, result *accrete.Result) ExportData {
	return ExportData{
		Star:    result.Star,
		Seed:    seed,
		Source:  source,
		Nuclei:  result.Nuclei,
		Merges:  result.Merges,
		Planets: Records(result.Planets),
		Metrics: result.Metrics,
	}
}

func Records(planets accrete.Planets) []PlanetRecord {
	out := make([]PlanetRecord, len(planets))
	for i, p := range planets {
		out[i] = PlanetRecord{
			Axis:         p.Axis,
			Eccentricity: p.Eccn,
			Mass:         p.Mass,
			EarthMass:    p.EarthMass(),
			GasGiant:     p.GasGiant,
		}
	}
	return out
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}

func WriteCSV(w io.Writer, planets accrete.Planets) error {
	return storage.WritePlanetsCSV(w, planets)
}

// WriteText prints one planet per line, innermost first.
func WriteText(w io.Writer, planets accrete.Planets) error {
	for _, p := range planets {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile renders planets to path as SVG or PostScript.
func WriteFile(path, format string, planets accrete.Planets) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "svg":
		_, err = io.WriteString(file, PlanetsSVG(planets, 900, 300))
	case "ps":
		err = WritePostScript(file, planets)
	default:
		err = fmt.Errorf("unknown plot format %q", format)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
