package factory

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Step is one routing entry: which machine works the part and for how long.
type Step struct {
	Machine  int     `yaml:"machine" validate:"gte=0"`
	Duration float64 `yaml:"duration" validate:"gte=0"`
}

// PartFamily is one production plan entry: Quantity parts named after Name,
// all sharing the same routing sequence.
type PartFamily struct {
	Name     string `yaml:"name" validate:"required"`
	Family   int    `yaml:"family" validate:"gte=0"`
	Quantity int    `yaml:"quantity" validate:"gte=1"`
	Routing  []Step `yaml:"routing" validate:"required,min=1,dive"`
}

// ProductionPlan is the master plan: how many machines the shop has and
// which part families to produce.
type ProductionPlan struct {
	Machines int          `yaml:"machines" validate:"gte=1"`
	Parts    []PartFamily `yaml:"parts" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Validate checks struct constraints and that every routing step references
// an existing machine id.
func (p *ProductionPlan) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("production plan: %w", err)
	}
	for _, family := range p.Parts {
		for _, step := range family.Routing {
			if step.Machine >= p.Machines {
				return fmt.Errorf("production plan: family %q routes to machine %d, shop has %d",
					family.Name, step.Machine, p.Machines)
			}
		}
	}
	return nil
}

// LoadPlan reads and validates a production plan from a YAML file.
func LoadPlan(path string) (*ProductionPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	var plan ProductionPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}
