package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/springlab/internal/curve"
	"github.com/san-kum/springlab/internal/sweep"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteCSV writes a t,y header and one row per sample.
func WriteCSV(w io.Writer, points []curve.Point) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"t", "y"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write([]string{formatFloat(p.T), formatFloat(p.Y)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSweepCSV writes one row per grid cell. Unsettled responses carry
// +Inf in settling_time.
func WriteSweepCSV(w io.Writer, rows []sweep.Row) error {
	cw := csv.NewWriter(w)

	header := []string{"duration_ms", "bounce", "zeta", "omega_n", "overshoot", "settling_time"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			formatFloat(r.DurationMillis),
			formatFloat(r.Bounce),
			formatFloat(r.Params.Zeta),
			formatFloat(r.Params.OmegaN),
			formatFloat(r.Overshoot),
			formatFloat(r.SettlingTime),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
