package cmd

import "github.com/jobshop-sim/jobshop-sim/sim/factory"

// DefaultPlan returns the built-in production plan: four machining centers
// and four part families of ten, each visiting every machine once.
func DefaultPlan() *factory.ProductionPlan {
	return &factory.ProductionPlan{
		Machines: 4,
		Parts: []factory.PartFamily{
			{
				Name:     "Part 0",
				Family:   100000,
				Quantity: 10,
				Routing: []factory.Step{
					{Machine: 0, Duration: 2},
					{Machine: 1, Duration: 4},
					{Machine: 2, Duration: 3},
					{Machine: 3, Duration: 5},
				},
			},
			{
				Name:     "Part 1",
				Family:   200000,
				Quantity: 10,
				Routing: []factory.Step{
					{Machine: 1, Duration: 3},
					{Machine: 0, Duration: 1},
					{Machine: 2, Duration: 4},
					{Machine: 3, Duration: 2},
				},
			},
			{
				Name:     "Part 2",
				Family:   300000,
				Quantity: 10,
				Routing: []factory.Step{
					{Machine: 2, Duration: 4},
					{Machine: 1, Duration: 5},
					{Machine: 0, Duration: 3},
					{Machine: 3, Duration: 2},
				},
			},
			{
				Name:     "Part 3",
				Family:   400000,
				Quantity: 10,
				Routing: []factory.Step{
					{Machine: 3, Duration: 5},
					{Machine: 2, Duration: 1},
					{Machine: 0, Duration: 4},
					{Machine: 1, Duration: 4},
				},
			},
		},
	}
}
