package plan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/parser"
)

// Defaults apply to every statement that does not set its own value.
type Defaults struct {
	Institution string   `yaml:"institution"`
	Rate        *float64 `yaml:"rate"`
	Output      string   `yaml:"output"`
}

type Plan struct {
	Defaults   Defaults    `yaml:"defaults"`
	Statements []Statement `yaml:"statements"`

	dir string
}

type Statement struct {
	File        string   `yaml:"file"`
	Institution string   `yaml:"institution"`
	Rate        *float64 `yaml:"rate"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Statements) == 0 {
		return nil, fmt.Errorf("plan has no statements")
	}
	p.dir = filepath.Dir(path)
	return &p, nil
}

// Resolve turns the plan entries into statements. Relative file paths are
// taken from the plan file's directory; fallbackRate is used when neither
// the entry nor the defaults give one.
func (p *Plan) Resolve(fallbackRate float64) ([]*models.Statement, error) {
	out := make([]*models.Statement, 0, len(p.Statements))
	for i, st := range p.Statements {
		if st.File == "" {
			return nil, fmt.Errorf("plan statement %d: file is required", i+1)
		}

		name := st.Institution
		if name == "" {
			name = p.Defaults.Institution
		}
		inst, err := parser.ParseInstitution(name)
		if err != nil {
			return nil, fmt.Errorf("plan statement %d (%s): %w", i+1, st.File, err)
		}

		rate := fallbackRate
		switch {
		case st.Rate != nil:
			rate = *st.Rate
		case p.Defaults.Rate != nil:
			rate = *p.Defaults.Rate
		}
		if rate < 0 || rate > 100 {
			return nil, fmt.Errorf("plan statement %d (%s): rate %v out of range [0, 100]", i+1, st.File, rate)
		}

		file := st.File
		if !filepath.IsAbs(file) && file[0] != '~' && p.dir != "" {
			file = filepath.Join(p.dir, file)
		}

		out = append(out, &models.Statement{
			Institution: inst,
			FilePath:    file,
			RatePercent: decimal.NewFromFloat(rate),
		})
	}
	return out, nil
}

func (p *Plan) Print(w io.Writer) {
	if p.Defaults.Institution != "" {
		fmt.Fprintf(w, "Default institution: %s\n", p.Defaults.Institution)
	}
	for i, st := range p.Statements {
		fmt.Fprintf(w, "[%d] file=%s institution=%s\n", i+1, st.File, st.Institution)
	}
}
