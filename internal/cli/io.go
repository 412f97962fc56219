package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"honnef.co/go/airfoil"
	"honnef.co/go/airfoil/dat"
	"honnef.co/go/airfoil/export"
)

// load reads an airfoil coordinate file and logs every trailing-edge repair
// applied while splitting it into surfaces.
func (a *app) load(path string) (*airfoil.Airfoil, []airfoil.Repair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening airfoil")
	}
	defer f.Close()

	af, repairs, err := dat.Load(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "loading %s", path)
	}
	for _, r := range repairs {
		a.log.Warn("trailing edge repaired",
			zap.String("file", path),
			zap.String("airfoil", af.Name),
			zap.Stringer("surface", r.Surface),
			zap.Int("index", r.Index),
			zap.Stringer("old", r.Old),
			zap.Stringer("new", r.New))
	}
	a.log.Debug("airfoil loaded",
		zap.String("file", path),
		zap.String("airfoil", af.Name),
		zap.Int("upper", len(af.Upper)),
		zap.Int("lower", len(af.Lower)))
	return af, repairs, nil
}

// loadResampled loads path and resamples both surfaces to the configured
// point count.
func (a *app) loadResampled(path string) (*airfoil.Airfoil, error) {
	af, _, err := a.load(path)
	if err != nil {
		return nil, err
	}
	n := a.conf.GetInt(keyPoints)
	r, err := af.Resample(n)
	if err != nil {
		return nil, errors.Wrapf(err, "resampling %s to %d points", path, n)
	}
	return r, nil
}

// encode renders af in the given format.
func encode(af *airfoil.Airfoil, format string) ([]byte, error) {
	switch format {
	case "dat":
		var buf bytes.Buffer
		if err := dat.Write(&buf, af); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "geojson":
		return export.GeoJSON(af)
	default:
		return nil, errors.Wrapf(airfoil.ErrInvalidArgument, "unknown output format %q", format)
	}
}

func extension(format string) string {
	if format == "geojson" {
		return ".geojson"
	}
	return ".dat"
}

// output writes af to path, or to stdout if path is empty.
func (a *app) output(stdout io.Writer, path string, af *airfoil.Airfoil) error {
	b, err := encode(af, a.conf.GetString(keyFormat))
	if err != nil {
		return err
	}
	if path == "" {
		_, err := stdout.Write(b)
		return errors.Wrap(err, "writing output")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrap(err, "writing output")
	}
	a.log.Info("airfoil written", zap.String("file", path), zap.String("airfoil", af.Name))
	return nil
}
