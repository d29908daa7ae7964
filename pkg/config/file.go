package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"phased/pkg/phasechange"
	"phased/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		X1:   ptr.To(phasechange.DefaultCurve.P1.X),
		X2:   ptr.To(phasechange.DefaultCurve.P2.X),
		X3:   ptr.To(phasechange.DefaultCurve.P3.X),
		Y1:   ptr.To(phasechange.DefaultCurve.P1.Y),
		Y2:   ptr.To(phasechange.DefaultCurve.P2.Y),
		Y3:   ptr.To(phasechange.DefaultCurve.P3.Y),
		Port: ptr.To(8000),
	}
)

var _ Config = &File{}

// File is a JSON-file-backed Config. Absent fields fall back to the built-in
// calibration and port.
type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = defaultFileConfig
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

// RawFileConfig is the on-disk shape. Pointer fields distinguish "absent"
// from zero so defaults can fill in.
type RawFileConfig struct {
	X1   *float64 `json:"x1,omitempty"`
	X2   *float64 `json:"x2,omitempty"`
	X3   *float64 `json:"x3,omitempty"`
	Y1   *float64 `json:"y1,omitempty"`
	Y2   *float64 `json:"y2,omitempty"`
	Y3   *float64 `json:"y3,omitempty"`
	Port *int     `json:"port,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	curve := c.Curve()
	rawConfig := &RawFileConfig{
		X1:   ptr.To(curve.P1.X),
		X2:   ptr.To(curve.P2.X),
		X3:   ptr.To(curve.P3.X),
		Y1:   ptr.To(curve.P1.Y),
		Y2:   ptr.To(curve.P2.Y),
		Y3:   ptr.To(curve.P3.Y),
		Port: ptr.To(c.Port()),
	}

	return rawConfig, nil
}

func orDefault(v *float64, def *float64) float64 {
	if v != nil {
		return *v
	}
	return *def
}

func (f *File) Curve() phasechange.Curve {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return phasechange.Curve{
		P1: phasechange.Point{
			X: orDefault(f.c.X1, defaultFileConfig.X1),
			Y: orDefault(f.c.Y1, defaultFileConfig.Y1),
		},
		P2: phasechange.Point{
			X: orDefault(f.c.X2, defaultFileConfig.X2),
			Y: orDefault(f.c.Y2, defaultFileConfig.Y2),
		},
		P3: phasechange.Point{
			X: orDefault(f.c.X3, defaultFileConfig.X3),
			Y: orDefault(f.c.Y3, defaultFileConfig.Y3),
		},
	}
}

func (f *File) Port() int {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var port int

	if f.c.Port != nil {
		port = *f.c.Port
	} else {
		port = *defaultFileConfig.Port
	}

	return port
}

func (f *File) SetCurve(c phasechange.Curve) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.c.X1 = ptr.To(c.P1.X)
	f.c.Y1 = ptr.To(c.P1.Y)
	f.c.X2 = ptr.To(c.P2.X)
	f.c.Y2 = ptr.To(c.P2.Y)
	f.c.X3 = ptr.To(c.P3.X)
	f.c.Y3 = ptr.To(c.P3.Y)
}

func (f *File) SetPort(port int) {
	if f.c == nil {
		panic("config is nil")
	}

	if port < 1 || port > 65535 {
		panic("port must be between 1 and 65535")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Port = &port
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}
	configString := string(b)

	if strings.TrimSpace(configString) == "" {
		// If the file is empty, return the empty config.
		f.c = &RawFileConfig{}
		return nil
	}

	c := &RawFileConfig{}
	err = json.Unmarshal([]byte(configString), c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to parse config file %s", f.filepath)
	}

	f.c = c
	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	b, err := json.MarshalIndent(f.c, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "failed to marshal config")
	}

	err = os.WriteFile(f.filepath, b, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to write config file %s", f.filepath)
	}

	return nil
}
